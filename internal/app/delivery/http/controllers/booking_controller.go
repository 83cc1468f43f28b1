package controllers

import (
	"net/http"

	"doctorsportal-service/internal/app/config"
	"doctorsportal-service/internal/app/contracts"
	"doctorsportal-service/internal/pkg/constvars"
	"doctorsportal-service/internal/pkg/dto/requests"
	"doctorsportal-service/internal/pkg/exceptions"
	"doctorsportal-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type BookingController struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	BookingUsecase contracts.BookingUsecase
}

func NewBookingController(
	log *zap.Logger,
	internalConfig *config.InternalConfig,
	bookingUsecase contracts.BookingUsecase,
) *BookingController {
	return &BookingController{
		Log:            log,
		InternalConfig: internalConfig,
		BookingUsecase: bookingUsecase,
	}
}

func (c *BookingController) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, c.InternalConfig)
	defer cancel()

	var request requests.CreateBooking
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	c.Log.Info("BookingController.CreateBooking called",
		zap.String("appointment_date", request.AppointmentDate),
		zap.String("treatment", request.Treatment),
	)

	result, err := c.BookingUsecase.CreateBooking(ctx, &request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.BookingCreatedSuccess, result)
}

func (c *BookingController) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, c.InternalConfig)
	defer cancel()

	tokenEmail, ok := ctx.Value(constvars.CONTEXT_TOKEN_EMAIL_KEY).(string)
	if !ok || tokenEmail == "" {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrMissingTokenEmail(nil))
		return
	}
	email := r.URL.Query().Get("email")

	c.Log.Info("BookingController.GetBookings called",
		zap.String("email", email),
	)

	bookings, err := c.BookingUsecase.GetBookingsByEmail(ctx, tokenEmail, email)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BookingsGetSuccess, bookings)
}

func (c *BookingController) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, c.InternalConfig)
	defer cancel()

	bookingID := chi.URLParam(r, "id")
	c.Log.Info("BookingController.GetBookingByID called",
		zap.String("booking_id", bookingID),
	)

	booking, err := c.BookingUsecase.GetBookingByID(ctx, bookingID)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BookingGetSuccess, booking)
}
