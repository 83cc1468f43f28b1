package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	LivenessMessage = "Doctors portal server running"

	// Appointment option messages
	AppointmentOptionsGetSuccess = "appointment options fetched successfully"
	DoctorSpecialtiesGetSuccess  = "doctor specialties fetched successfully"

	// Booking messages
	BookingCreatedSuccess = "booking created successfully"
	BookingsGetSuccess    = "bookings fetched successfully"
	BookingGetSuccess     = "booking fetched successfully"

	// Auth messages
	TokenIssuedSuccess = "access token issued successfully"

	// User messages
	UserSavedSuccess    = "user saved successfully"
	UsersGetSuccess     = "users fetched successfully"
	UserPromotedSuccess = "user promoted to admin successfully"
	AdminCheckSuccess   = "admin role checked successfully"

	// Doctor messages
	DoctorCreatedSuccess = "doctor created successfully"
	DoctorsGetSuccess    = "doctors fetched successfully"
	DoctorDeletedSuccess = "doctor deleted successfully"

	// Payment messages
	PaymentIntentCreatedSuccess = "payment intent created successfully"
	PaymentRecordedSuccess      = "payment recorded successfully"
)
