package models

// AppointmentOption is a treatment offering with a fixed slot catalog.
// Slots keep their seeded order; the client renders them as-is.
type AppointmentOption struct {
	ID    string   `json:"_id,omitempty" bson:"_id,omitempty"`
	Name  string   `json:"name" bson:"name"`
	Slots []string `json:"slots" bson:"slots"`
	Price int      `json:"price" bson:"price"`
}
