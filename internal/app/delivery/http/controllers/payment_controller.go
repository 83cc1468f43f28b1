package controllers

import (
	"net/http"

	"doctorsportal-service/internal/app/config"
	"doctorsportal-service/internal/app/contracts"
	"doctorsportal-service/internal/pkg/constvars"
	"doctorsportal-service/internal/pkg/dto/requests"
	"doctorsportal-service/internal/pkg/exceptions"
	"doctorsportal-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type PaymentController struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	PaymentUsecase contracts.PaymentUsecase
}

func NewPaymentController(
	log *zap.Logger,
	internalConfig *config.InternalConfig,
	paymentUsecase contracts.PaymentUsecase,
) *PaymentController {
	return &PaymentController{
		Log:            log,
		InternalConfig: internalConfig,
		PaymentUsecase: paymentUsecase,
	}
}

func (c *PaymentController) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, c.InternalConfig)
	defer cancel()

	var request requests.CreatePaymentIntent
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	c.Log.Info("PaymentController.CreatePaymentIntent called")

	intent, err := c.PaymentUsecase.CreatePaymentIntent(ctx, &request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PaymentIntentCreatedSuccess, intent)
}

func (c *PaymentController) RecordPayment(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, c.InternalConfig)
	defer cancel()

	var request requests.RecordPayment
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	c.Log.Info("PaymentController.RecordPayment called",
		zap.String("booking_id", request.BookingID),
	)

	result, err := c.PaymentUsecase.RecordPayment(ctx, &request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.PaymentRecordedSuccess, result)
}
