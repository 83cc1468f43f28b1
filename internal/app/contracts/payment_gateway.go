package contracts

import (
	"context"

	"doctorsportal-service/internal/pkg/dto/responses"
)

// PaymentGatewayService creates processor-side payment intents. The amount
// is in the smallest currency unit.
type PaymentGatewayService interface {
	CreatePaymentIntent(ctx context.Context, amount int, currency string) (*responses.PaymentIntent, error)
}
