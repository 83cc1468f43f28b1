package responses

type CreateBooking struct {
	BookingID       string `json:"bookingId"`
	AppointmentDate string `json:"appointmentDate"`
	Treatment       string `json:"treatment"`
	Slot            string `json:"slot"`
}
