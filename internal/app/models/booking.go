package models

import "time"

type Booking struct {
	ID              string    `json:"_id,omitempty" bson:"_id,omitempty"`
	AppointmentDate string    `json:"appointmentDate" bson:"appointmentDate"`
	Treatment       string    `json:"treatment" bson:"treatment"`
	Slot            string    `json:"slot" bson:"slot"`
	Email           string    `json:"email" bson:"email"`
	PatientName     string    `json:"patientName" bson:"patientName"`
	Phone           string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Price           int       `json:"price" bson:"price"`
	Paid            bool      `json:"paid" bson:"paid"`
	TransactionID   string    `json:"transactionId,omitempty" bson:"transactionId,omitempty"`
	CreatedAt       time.Time `json:"createdAt" bson:"createdAt"`
}
