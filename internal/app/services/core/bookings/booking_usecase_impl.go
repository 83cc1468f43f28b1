package bookings

import (
	"context"
	"fmt"
	"time"

	"doctorsportal-service/internal/app/contracts"
	"doctorsportal-service/internal/app/models"
	"doctorsportal-service/internal/pkg/constvars"
	"doctorsportal-service/internal/pkg/dto/requests"
	"doctorsportal-service/internal/pkg/dto/responses"
	"doctorsportal-service/internal/pkg/exceptions"
	"doctorsportal-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type bookingUsecase struct {
	BookingRepository contracts.BookingRepository
	RedisRepository   contracts.RedisRepository
	EventPublisher    contracts.EventPublisher
	Log               *zap.Logger
}

type bookingCreatedEvent struct {
	Event           string `json:"event"`
	BookingID       string `json:"bookingId"`
	AppointmentDate string `json:"appointmentDate"`
	Treatment       string `json:"treatment"`
	Slot            string `json:"slot"`
	Email           string `json:"email"`
}

func NewBookingUsecase(
	bookingRepository contracts.BookingRepository,
	redisRepository contracts.RedisRepository,
	eventPublisher contracts.EventPublisher,
	log *zap.Logger,
) contracts.BookingUsecase {
	return &bookingUsecase{
		BookingRepository: bookingRepository,
		RedisRepository:   redisRepository,
		EventPublisher:    eventPublisher,
		Log:               log,
	}
}

// CreateBooking rejects a candidate when the requester already holds a
// booking for the same date and treatment, whatever the slot. The read
// check gives the friendly path; the unique index in the repository decides
// races.
func (uc *bookingUsecase) CreateBooking(ctx context.Context, request *requests.CreateBooking) (*responses.CreateBooking, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	existing, err := uc.BookingRepository.FindByDateTreatmentEmail(ctx, request.AppointmentDate, request.Treatment, request.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrBookingConflict(request.AppointmentDate)
	}

	booking := &models.Booking{
		AppointmentDate: request.AppointmentDate,
		Treatment:       request.Treatment,
		Slot:            request.Slot,
		Email:           request.Email,
		PatientName:     request.PatientName,
		Phone:           request.Phone,
		Price:           request.Price,
		Paid:            false,
		CreatedAt:       time.Now(),
	}

	bookingID, err := uc.BookingRepository.CreateBooking(ctx, booking)
	if err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf(constvars.AvailabilityCacheKeyFormat, request.AppointmentDate)
	if err := uc.RedisRepository.Delete(ctx, cacheKey); err != nil {
		uc.Log.Warn("failed to invalidate availability cache after booking",
			zap.String("cache_key", cacheKey),
			zap.Error(err),
		)
	}

	event := bookingCreatedEvent{
		Event:           constvars.EventBookingCreated,
		BookingID:       bookingID,
		AppointmentDate: booking.AppointmentDate,
		Treatment:       booking.Treatment,
		Slot:            booking.Slot,
		Email:           booking.Email,
	}
	if err := uc.EventPublisher.Publish(ctx, constvars.QueueBookingEvents, event); err != nil {
		uc.Log.Error("failed to publish booking created event",
			zap.String("booking_id", bookingID),
			zap.Error(err),
		)
	}

	return &responses.CreateBooking{
		BookingID:       bookingID,
		AppointmentDate: booking.AppointmentDate,
		Treatment:       booking.Treatment,
		Slot:            booking.Slot,
	}, nil
}

// GetBookingsByEmail only serves the requester's own bookings; the token
// email must match the requested one.
func (uc *bookingUsecase) GetBookingsByEmail(ctx context.Context, tokenEmail, email string) ([]models.Booking, error) {
	if tokenEmail != email {
		return nil, exceptions.ErrEmailMismatch(nil)
	}
	return uc.BookingRepository.FindByEmail(ctx, email)
}

func (uc *bookingUsecase) GetBookingByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	return uc.BookingRepository.FindByID(ctx, bookingID)
}
