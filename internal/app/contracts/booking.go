package contracts

import (
	"context"

	"doctorsportal-service/internal/app/models"
	"doctorsportal-service/internal/pkg/dto/requests"
	"doctorsportal-service/internal/pkg/dto/responses"
)

type BookingUsecase interface {
	CreateBooking(ctx context.Context, request *requests.CreateBooking) (*responses.CreateBooking, error)
	GetBookingsByEmail(ctx context.Context, tokenEmail, email string) ([]models.Booking, error)
	GetBookingByID(ctx context.Context, bookingID string) (*models.Booking, error)
}

type BookingRepository interface {
	CreateBooking(ctx context.Context, booking *models.Booking) (bookingID string, err error)
	FindByDate(ctx context.Context, appointmentDate string) ([]models.Booking, error)
	FindByEmail(ctx context.Context, email string) ([]models.Booking, error)
	FindByID(ctx context.Context, bookingID string) (*models.Booking, error)
	FindByDateTreatmentEmail(ctx context.Context, appointmentDate, treatment, email string) (*models.Booking, error)
	MarkPaid(ctx context.Context, bookingID, transactionID string) error
}
