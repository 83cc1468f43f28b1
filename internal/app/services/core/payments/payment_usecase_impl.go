package payments

import (
	"context"
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

type paymentUsecase struct {
	PaymentRepository contracts.PaymentRepository
	BookingRepository contracts.BookingRepository
	PaymentGateway    contracts.PaymentGatewayService
	EventPublisher    contracts.EventPublisher
	Log               *zap.Logger
}

type paymentRecordedEvent struct {
	Event         string `json:"event"`
	PaymentID     string `json:"paymentId"`
	BookingID     string `json:"bookingId"`
	TransactionID string `json:"transactionId"`
	Email         string `json:"email"`
}

func NewPaymentUsecase(
	paymentRepository contracts.PaymentRepository,
	bookingRepository contracts.BookingRepository,
	paymentGateway contracts.PaymentGatewayService,
	eventPublisher contracts.EventPublisher,
	log *zap.Logger,
) contracts.PaymentUsecase {
	return &paymentUsecase{
		PaymentRepository: paymentRepository,
		BookingRepository: bookingRepository,
		PaymentGateway:    paymentGateway,
		EventPublisher:    eventPublisher,
		Log:               log,
	}
}

func (uc *paymentUsecase) CreatePaymentIntent(ctx context.Context, request *requests.CreatePaymentIntent) (*responses.PaymentIntent, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	amount := request.Price * constvars.PaymentSmallestUnitMultiplier
	return uc.PaymentGateway.CreatePaymentIntent(ctx, amount, constvars.PaymentCurrency)
}

// RecordPayment writes the payment document and then flips the booking to
// paid. A failure after the insert leaves the two collections out of step,
// so it is reported instead of swallowed.
func (uc *paymentUsecase) RecordPayment(ctx context.Context, request *requests.RecordPayment) (*responses.RecordPayment, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	payment := &models.Payment{
		BookingID:     request.BookingID,
		TransactionID: request.TransactionID,
		Price:         request.Price,
		Email:         request.Email,
		CreatedAt:     time.Now(),
	}
	paymentID, err := uc.PaymentRepository.CreatePayment(ctx, payment)
	if err != nil {
		return nil, err
	}

	if err := uc.BookingRepository.MarkPaid(ctx, request.BookingID, request.TransactionID); err != nil {
		uc.Log.Error("payment recorded but booking not marked paid",
			zap.String("payment_id", paymentID),
			zap.String("booking_id", request.BookingID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPaymentNotReconciled(paymentID, request.BookingID)
	}

	booking, err := uc.BookingRepository.FindByID(ctx, request.BookingID)
	if err != nil {
		return nil, exceptions.ErrPaymentNotReconciled(paymentID, request.BookingID)
	}
	if booking == nil || !booking.Paid {
		return nil, exceptions.ErrPaymentNotReconciled(paymentID, request.BookingID)
	}

	event := paymentRecordedEvent{
		Event:         constvars.EventPaymentRecorded,
		PaymentID:     paymentID,
		BookingID:     request.BookingID,
		TransactionID: request.TransactionID,
		Email:         request.Email,
	}
	if err := uc.EventPublisher.Publish(ctx, constvars.QueuePaymentEvents, event); err != nil {
		uc.Log.Error("failed to publish payment recorded event",
			zap.String("payment_id", paymentID),
			zap.Error(err),
		)
	}

	return &responses.RecordPayment{
		PaymentID:     paymentID,
		BookingID:     request.BookingID,
		TransactionID: request.TransactionID,
	}, nil
}
