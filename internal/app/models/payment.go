package models

import "time"

// Payment is append-only; recording one marks the referenced booking paid.
type Payment struct {
	ID            string    `json:"_id,omitempty" bson:"_id,omitempty"`
	BookingID     string    `json:"bookingId" bson:"bookingId"`
	TransactionID string    `json:"transactionId" bson:"transactionId"`
	Price         int       `json:"price" bson:"price"`
	Email         string    `json:"email" bson:"email"`
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt"`
}
