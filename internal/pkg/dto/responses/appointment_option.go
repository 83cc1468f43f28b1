package responses

// AppointmentOption mirrors the stored option with the slots reduced to the
// ones still bookable for the requested date. Fully booked options keep an
// empty slots list so the client can show "fully booked".
type AppointmentOption struct {
	ID    string   `json:"_id,omitempty"`
	Name  string   `json:"name"`
	Slots []string `json:"slots"`
	Price int      `json:"price"`
}
