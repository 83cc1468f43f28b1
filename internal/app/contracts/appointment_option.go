package contracts

import (
	"context"

	"doctorsportal-service/internal/app/models"
	"doctorsportal-service/internal/pkg/dto/responses"
)

type AppointmentOptionUsecase interface {
	GetOptionsWithAvailability(ctx context.Context, date string) ([]responses.AppointmentOption, error)
	GetSpecialties(ctx context.Context) ([]string, error)
}

type AppointmentOptionRepository interface {
	FindAll(ctx context.Context) ([]models.AppointmentOption, error)
	FindDistinctNames(ctx context.Context) ([]string, error)
}
