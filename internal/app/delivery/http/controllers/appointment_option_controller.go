package controllers

import (
	"net/http"

	"doctorsportal-service/internal/app/config"
	"doctorsportal-service/internal/app/contracts"
	"doctorsportal-service/internal/pkg/constvars"
	"doctorsportal-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type AppointmentOptionController struct {
	Log                      *zap.Logger
	InternalConfig           *config.InternalConfig
	AppointmentOptionUsecase contracts.AppointmentOptionUsecase
}

func NewAppointmentOptionController(
	log *zap.Logger,
	internalConfig *config.InternalConfig,
	appointmentOptionUsecase contracts.AppointmentOptionUsecase,
) *AppointmentOptionController {
	return &AppointmentOptionController{
		Log:                      log,
		InternalConfig:           internalConfig,
		AppointmentOptionUsecase: appointmentOptionUsecase,
	}
}

func (c *AppointmentOptionController) GetAppointmentOptions(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, c.InternalConfig)
	defer cancel()

	date := r.URL.Query().Get("date")
	c.Log.Info("AppointmentOptionController.GetAppointmentOptions called",
		zap.String("date", date),
	)

	options, err := c.AppointmentOptionUsecase.GetOptionsWithAvailability(ctx, date)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentOptionsGetSuccess, options)
}

func (c *AppointmentOptionController) GetDoctorSpecialties(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, c.InternalConfig)
	defer cancel()

	c.Log.Info("AppointmentOptionController.GetDoctorSpecialties called")

	specialties, err := c.AppointmentOptionUsecase.GetSpecialties(ctx)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DoctorSpecialtiesGetSuccess, specialties)
}
