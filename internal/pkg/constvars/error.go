package constvars

// Validation messages, mapped by validator tag
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"gt":       "must be greater than %s",
	"datetime": "must be a valid date",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min": true,
	"max": true,
	"gt":  true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientInvalidImageFormat            = "image format is not supported"
	ErrClientUpstreamFailure               = "an upstream service failed to process your request"
	ErrClientBookingConflictFormat         = "You already have an appointment on %s"
)

// Error messages for developers
const (
	ErrDevCannotParseJSON       = "cannot parse JSON"
	ErrDevValidationFailed      = "validation failed"
	ErrDevMissingRequestID      = "request ID not found in context"
	ErrDevMissingTokenEmail     = "token email not found in context"
	ErrDevImageValidationFailed = "image validation failed"

	// Authentication messages
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenInvalid          = "invalid token"
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthTokenInvalidOrExpired = "token invalid or expired"
	ErrDevAuthGenerateToken         = "failed to generate token"
	ErrDevAuthEmailMismatch         = "token email does not match requested email"
	ErrDevAuthUnknownEmail          = "email is not a registered user"
	ErrDevAuthNotAdmin              = "user does not have the admin role"

	// Booking messages
	ErrDevBookingConflict = "duplicate booking for date, treatment and email"

	// Database messages
	ErrDevDBFailedToInsertDocument   = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document into database"
	ErrDevDBFailedToFindDocument     = "failed when do find document on database"
	ErrDevDBFailedToDeleteDocument   = "failed to delete document from database"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents from database"
	ErrDevDBFailedToCreateIndex      = "failed to create index on database"
	ErrDevDBStringNotObjectID        = "given ID is not valid object ID"

	// Redis messages
	ErrDevRedisSet    = "failed to store data into redis"
	ErrDevRedisGet    = "failed to get data from redis"
	ErrDevRedisDelete = "failed to delete data from redis"

	// Payment messages
	ErrDevPaymentGatewayRequest      = "payment gateway request failed"
	ErrDevPaymentNotReconciledFormat = "payment %s recorded but booking %s is not marked paid"

	// Messaging messages
	ErrDevPublishEvent = "failed to publish event to message queue"

	// Storage messages
	ErrDevStorageUpload = "failed to upload object to storage"

	// Server messages
	ErrDevServerDeadlineExceeded = "deadline exceeded"
)
