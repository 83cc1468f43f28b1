package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "requestID"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "isClientRequestID"
	CONTEXT_TOKEN_EMAIL_KEY          ContextKey = "tokenEmail"
)

const (
	MongoCollectionAppointmentOptions = "appointmentOptions"
	MongoCollectionBookings           = "bookings"
	MongoCollectionUsers              = "users"
	MongoCollectionDoctors            = "doctors"
	MongoCollectionPayments           = "payments"
)

const (
	UserRoleAdmin = "admin"
)

const (
	QueueBookingEvents = "booking.events"
	QueuePaymentEvents = "payment.events"

	EventBookingCreated  = "booking.created"
	EventPaymentRecorded = "payment.recorded"
)

const (
	AvailabilityCacheKeyFormat = "availability:%s"

	PaymentCurrency = "usd"
	// Processor amounts are in the smallest currency unit.
	PaymentSmallestUnitMultiplier = 100
)

const (
	ImageAllowedDoctorFormats = "png,jpg,jpeg"
)
