package bookings

import (
	"context"
	"testing"
	"time"

	"doctorsportal-service/internal/app/models"
	"doctorsportal-service/internal/pkg/dto/requests"
	"doctorsportal-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeBookingRepository struct {
	bookings []models.Booking
	nextID   int
}

func (f *fakeBookingRepository) CreateBooking(ctx context.Context, booking *models.Booking) (string, error) {
	for _, existing := range f.bookings {
		if existing.AppointmentDate == booking.AppointmentDate &&
			existing.Treatment == booking.Treatment &&
			existing.Email == booking.Email {
			return "", exceptions.ErrBookingConflict(booking.AppointmentDate)
		}
	}
	f.nextID++
	stored := *booking
	stored.ID = string(rune('a' + f.nextID))
	f.bookings = append(f.bookings, stored)
	return stored.ID, nil
}

func (f *fakeBookingRepository) FindByDate(ctx context.Context, appointmentDate string) ([]models.Booking, error) {
	result := make([]models.Booking, 0)
	for _, b := range f.bookings {
		if b.AppointmentDate == appointmentDate {
			result = append(result, b)
		}
	}
	return result, nil
}

func (f *fakeBookingRepository) FindByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	result := make([]models.Booking, 0)
	for _, b := range f.bookings {
		if b.Email == email {
			result = append(result, b)
		}
	}
	return result, nil
}

func (f *fakeBookingRepository) FindByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	for i := range f.bookings {
		if f.bookings[i].ID == bookingID {
			return &f.bookings[i], nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepository) FindByDateTreatmentEmail(ctx context.Context, appointmentDate, treatment, email string) (*models.Booking, error) {
	for i := range f.bookings {
		b := f.bookings[i]
		if b.AppointmentDate == appointmentDate && b.Treatment == treatment && b.Email == email {
			return &f.bookings[i], nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepository) MarkPaid(ctx context.Context, bookingID, transactionID string) error {
	for i := range f.bookings {
		if f.bookings[i].ID == bookingID {
			f.bookings[i].Paid = true
			f.bookings[i].TransactionID = transactionID
		}
	}
	return nil
}

type fakeRedisRepository struct {
	deletedKeys []string
}

func (f *fakeRedisRepository) Delete(ctx context.Context, key string) error {
	f.deletedKeys = append(f.deletedKeys, key)
	return nil
}

func (f *fakeRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return nil
}

func (f *fakeRedisRepository) Get(ctx context.Context, key string) (string, error) {
	return "", nil
}

type fakePublisher struct {
	published []string
}

func (f *fakePublisher) Publish(ctx context.Context, queue string, event interface{}) error {
	f.published = append(f.published, queue)
	return nil
}

func newCreateBookingRequest() *requests.CreateBooking {
	return &requests.CreateBooking{
		AppointmentDate: "May 16, 2022",
		Treatment:       "Teeth Cleaning",
		Slot:            "09.00-10.00",
		Email:           "patient@example.com",
		PatientName:     "Pat Example",
		Phone:           "555-0100",
		Price:           80,
	}
}

func TestCreateBooking(t *testing.T) {
	t.Run("first booking for a date and treatment succeeds", func(t *testing.T) {
		repo := &fakeBookingRepository{}
		redis := &fakeRedisRepository{}
		publisher := &fakePublisher{}
		uc := NewBookingUsecase(repo, redis, publisher, zap.NewNop())

		result, err := uc.CreateBooking(context.Background(), newCreateBookingRequest())
		require.NoError(t, err)
		assert.NotEmpty(t, result.BookingID)
		assert.Equal(t, "Teeth Cleaning", result.Treatment)
	})

	t.Run("second booking same date treatment and email is rejected with the date", func(t *testing.T) {
		repo := &fakeBookingRepository{}
		uc := NewBookingUsecase(repo, &fakeRedisRepository{}, &fakePublisher{}, zap.NewNop())

		_, err := uc.CreateBooking(context.Background(), newCreateBookingRequest())
		require.NoError(t, err)

		second := newCreateBookingRequest()
		second.Slot = "10.00-11.00"
		_, err = uc.CreateBooking(context.Background(), second)
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 409, customErr.StatusCode)
		assert.Equal(t, "You already have an appointment on May 16, 2022", customErr.ClientMessage)
	})

	t.Run("same date and treatment with a different email is accepted", func(t *testing.T) {
		repo := &fakeBookingRepository{}
		uc := NewBookingUsecase(repo, &fakeRedisRepository{}, &fakePublisher{}, zap.NewNop())

		_, err := uc.CreateBooking(context.Background(), newCreateBookingRequest())
		require.NoError(t, err)

		other := newCreateBookingRequest()
		other.Email = "other@example.com"
		_, err = uc.CreateBooking(context.Background(), other)
		assert.NoError(t, err)
	})

	t.Run("creating a booking invalidates the availability cache for the date", func(t *testing.T) {
		redis := &fakeRedisRepository{}
		uc := NewBookingUsecase(&fakeBookingRepository{}, redis, &fakePublisher{}, zap.NewNop())

		_, err := uc.CreateBooking(context.Background(), newCreateBookingRequest())
		require.NoError(t, err)
		require.Len(t, redis.deletedKeys, 1)
		assert.Equal(t, "availability:May 16, 2022", redis.deletedKeys[0])
	})

	t.Run("missing required fields fail validation", func(t *testing.T) {
		uc := NewBookingUsecase(&fakeBookingRepository{}, &fakeRedisRepository{}, &fakePublisher{}, zap.NewNop())

		request := newCreateBookingRequest()
		request.Email = ""
		_, err := uc.CreateBooking(context.Background(), request)
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 400, customErr.StatusCode)
	})
}

func TestGetBookingsByEmail(t *testing.T) {
	t.Run("token email must match requested email", func(t *testing.T) {
		uc := NewBookingUsecase(&fakeBookingRepository{}, &fakeRedisRepository{}, &fakePublisher{}, zap.NewNop())

		_, err := uc.GetBookingsByEmail(context.Background(), "token@example.com", "other@example.com")
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 403, customErr.StatusCode)
	})

	t.Run("matching email returns only that requester's bookings", func(t *testing.T) {
		repo := &fakeBookingRepository{}
		uc := NewBookingUsecase(repo, &fakeRedisRepository{}, &fakePublisher{}, zap.NewNop())

		_, err := uc.CreateBooking(context.Background(), newCreateBookingRequest())
		require.NoError(t, err)
		other := newCreateBookingRequest()
		other.Email = "other@example.com"
		_, err = uc.CreateBooking(context.Background(), other)
		require.NoError(t, err)

		bookings, err := uc.GetBookingsByEmail(context.Background(), "patient@example.com", "patient@example.com")
		require.NoError(t, err)
		require.Len(t, bookings, 1)
		assert.Equal(t, "patient@example.com", bookings[0].Email)
	})
}
