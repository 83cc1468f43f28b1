package appointmentoptions

import (
	"context"
	"testing"
	"time"

	"doctorsportal-service/internal/app/config"
	"doctorsportal-service/internal/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeAppointmentOptionRepository struct {
	options   []models.AppointmentOption
	findCalls int
}

func (f *fakeAppointmentOptionRepository) FindAll(ctx context.Context) ([]models.AppointmentOption, error) {
	f.findCalls++
	return f.options, nil
}

func (f *fakeAppointmentOptionRepository) FindDistinctNames(ctx context.Context) ([]string, error) {
	names := make([]string, 0, len(f.options))
	for _, option := range f.options {
		names = append(names, option.Name)
	}
	return names, nil
}

type fakeBookingRepository struct {
	bookings []models.Booking
}

func (f *fakeBookingRepository) CreateBooking(ctx context.Context, booking *models.Booking) (string, error) {
	return "", nil
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
	return nil, nil
}

func (f *fakeBookingRepository) FindByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	return nil, nil
}

func (f *fakeBookingRepository) FindByDateTreatmentEmail(ctx context.Context, appointmentDate, treatment, email string) (*models.Booking, error) {
	return nil, nil
}

func (f *fakeBookingRepository) MarkPaid(ctx context.Context, bookingID, transactionID string) error {
	return nil
}

type inMemoryRedis struct {
	entries map[string]string
}

func (f *inMemoryRedis) Delete(ctx context.Context, key string) error {
	delete(f.entries, key)
	return nil
}

func (f *inMemoryRedis) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	if f.entries == nil {
		f.entries = make(map[string]string)
	}
	switch v := value.(type) {
	case []byte:
		f.entries[key] = string(v)
	case string:
		f.entries[key] = v
	}
	return nil
}

func (f *inMemoryRedis) Get(ctx context.Context, key string) (string, error) {
	return f.entries[key], nil
}

func TestGetOptionsWithAvailability(t *testing.T) {
	options := []models.AppointmentOption{
		{ID: "1", Name: "Teeth Cleaning", Slots: []string{"09.00-10.00", "10.00-11.00"}, Price: 80},
	}
	internalConfig := &config.InternalConfig{
		App: config.App{AvailabilityCacheTTLInSeconds: 30},
	}

	t.Run("computes availability and fills the cache", func(t *testing.T) {
		optionRepo := &fakeAppointmentOptionRepository{options: options}
		bookingRepo := &fakeBookingRepository{bookings: []models.Booking{
			{AppointmentDate: "May 16, 2022", Treatment: "Teeth Cleaning", Slot: "09.00-10.00"},
		}}
		redis := &inMemoryRedis{}
		uc := NewAppointmentOptionUsecase(optionRepo, bookingRepo, redis, internalConfig, zap.NewNop())

		result, err := uc.GetOptionsWithAvailability(context.Background(), "May 16, 2022")
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, []string{"10.00-11.00"}, result[0].Slots)
		assert.Contains(t, redis.entries, "availability:May 16, 2022")
	})

	t.Run("second call for the same date is served from the cache", func(t *testing.T) {
		optionRepo := &fakeAppointmentOptionRepository{options: options}
		redis := &inMemoryRedis{}
		uc := NewAppointmentOptionUsecase(optionRepo, &fakeBookingRepository{}, redis, internalConfig, zap.NewNop())

		_, err := uc.GetOptionsWithAvailability(context.Background(), "May 16, 2022")
		require.NoError(t, err)
		_, err = uc.GetOptionsWithAvailability(context.Background(), "May 16, 2022")
		require.NoError(t, err)

		assert.Equal(t, 1, optionRepo.findCalls)
	})

	t.Run("corrupt cache entry falls back to recomputing", func(t *testing.T) {
		optionRepo := &fakeAppointmentOptionRepository{options: options}
		redis := &inMemoryRedis{entries: map[string]string{
			"availability:May 16, 2022": "{not json",
		}}
		uc := NewAppointmentOptionUsecase(optionRepo, &fakeBookingRepository{}, redis, internalConfig, zap.NewNop())

		result, err := uc.GetOptionsWithAvailability(context.Background(), "May 16, 2022")
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, 1, optionRepo.findCalls)
	})
}

func TestGetSpecialties(t *testing.T) {
	optionRepo := &fakeAppointmentOptionRepository{options: []models.AppointmentOption{
		{Name: "Teeth Cleaning"},
		{Name: "Fluoride Treatment"},
	}}
	uc := NewAppointmentOptionUsecase(optionRepo, &fakeBookingRepository{}, &inMemoryRedis{}, &config.InternalConfig{}, zap.NewNop())

	specialties, err := uc.GetSpecialties(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Teeth Cleaning", "Fluoride Treatment"}, specialties)
}
