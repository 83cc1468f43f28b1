package appointmentoptions

import (
	"context"
	"fmt"
	"time"

	"doctorsportal-service/internal/app/config"
	"doctorsportal-service/internal/app/contracts"
	"doctorsportal-service/internal/pkg/constvars"
	"doctorsportal-service/internal/pkg/dto/responses"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type appointmentOptionUsecase struct {
	AppointmentOptionRepository contracts.AppointmentOptionRepository
	BookingRepository           contracts.BookingRepository
	RedisRepository             contracts.RedisRepository
	InternalConfig              *config.InternalConfig
	Log                         *zap.Logger
}

func NewAppointmentOptionUsecase(
	appointmentOptionRepository contracts.AppointmentOptionRepository,
	bookingRepository contracts.BookingRepository,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	log *zap.Logger,
) contracts.AppointmentOptionUsecase {
	return &appointmentOptionUsecase{
		AppointmentOptionRepository: appointmentOptionRepository,
		BookingRepository:           bookingRepository,
		RedisRepository:             redisRepository,
		InternalConfig:              internalConfig,
		Log:                         log,
	}
}

func (uc *appointmentOptionUsecase) GetOptionsWithAvailability(ctx context.Context, date string) ([]responses.AppointmentOption, error) {
	cacheKey := fmt.Sprintf(constvars.AvailabilityCacheKeyFormat, date)

	cached, err := uc.RedisRepository.Get(ctx, cacheKey)
	if err != nil {
		// Cache trouble must not take availability down; recompute instead.
		uc.Log.Warn("availability cache read failed", zap.Error(err))
	}
	if cached != "" {
		var appointmentOptions []responses.AppointmentOption
		if err := json.Unmarshal([]byte(cached), &appointmentOptions); err == nil {
			return appointmentOptions, nil
		}
		uc.Log.Warn("availability cache entry is not valid JSON, recomputing",
			zap.String("cache_key", cacheKey),
		)
	}

	appointmentOptions, err := uc.AppointmentOptionRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	bookingsForDate, err := uc.BookingRepository.FindByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	result := ComputeAvailability(appointmentOptions, bookingsForDate)

	if serialized, err := json.Marshal(result); err == nil {
		ttl := time.Duration(uc.InternalConfig.App.AvailabilityCacheTTLInSeconds) * time.Second
		if err := uc.RedisRepository.Set(ctx, cacheKey, serialized, ttl); err != nil {
			uc.Log.Warn("availability cache write failed", zap.Error(err))
		}
	}

	return result, nil
}

func (uc *appointmentOptionUsecase) GetSpecialties(ctx context.Context) ([]string, error) {
	return uc.AppointmentOptionRepository.FindDistinctNames(ctx)
}
