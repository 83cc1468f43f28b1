package responses

type PaymentIntent struct {
	IntentID     string `json:"intentId,omitempty"`
	ClientSecret string `json:"clientSecret"`
}

type RecordPayment struct {
	PaymentID     string `json:"paymentId"`
	BookingID     string `json:"bookingId"`
	TransactionID string `json:"transactionId"`
}
