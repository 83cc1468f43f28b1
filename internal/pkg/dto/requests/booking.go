package requests

type CreateBooking struct {
	AppointmentDate string `json:"appointmentDate" validate:"required"`
	Treatment       string `json:"treatment" validate:"required"`
	Slot            string `json:"slot" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	PatientName     string `json:"patientName" validate:"required"`
	Phone           string `json:"phone"`
	Price           int    `json:"price" validate:"gt=0"`
}
