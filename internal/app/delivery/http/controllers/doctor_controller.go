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

type DoctorController struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	DoctorUsecase  contracts.DoctorUsecase
}

func NewDoctorController(
	log *zap.Logger,
	internalConfig *config.InternalConfig,
	doctorUsecase contracts.DoctorUsecase,
) *DoctorController {
	return &DoctorController{
		Log:            log,
		InternalConfig: internalConfig,
		DoctorUsecase:  doctorUsecase,
	}
}

func (c *DoctorController) CreateDoctor(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, c.InternalConfig)
	defer cancel()

	var request requests.CreateDoctor
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	c.Log.Info("DoctorController.CreateDoctor called",
		zap.String("specialty", request.Specialty),
	)

	result, err := c.DoctorUsecase.CreateDoctor(ctx, &request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.DoctorCreatedSuccess, result)
}

func (c *DoctorController) GetAllDoctors(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, c.InternalConfig)
	defer cancel()

	c.Log.Info("DoctorController.GetAllDoctors called")

	doctorsList, err := c.DoctorUsecase.GetAllDoctors(ctx)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DoctorsGetSuccess, doctorsList)
}

func (c *DoctorController) DeleteDoctor(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, c.InternalConfig)
	defer cancel()

	doctorID := chi.URLParam(r, "id")
	c.Log.Info("DoctorController.DeleteDoctor called",
		zap.String("doctor_id", doctorID),
	)

	if err := c.DoctorUsecase.DeleteDoctor(ctx, doctorID); err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DoctorDeletedSuccess, nil)
}
