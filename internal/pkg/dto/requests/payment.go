package requests

type CreatePaymentIntent struct {
	Price int `json:"price" validate:"gt=0"`
}

type RecordPayment struct {
	BookingID     string `json:"bookingId" validate:"required"`
	TransactionID string `json:"transactionId" validate:"required"`
	Price         int    `json:"price" validate:"gt=0"`
	Email         string `json:"email" validate:"required,email"`
}
