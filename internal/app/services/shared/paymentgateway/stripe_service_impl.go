package paymentgateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"doctorsportal-service/internal/app/config"
	"doctorsportal-service/internal/app/contracts"
	"doctorsportal-service/internal/pkg/constvars"
	"doctorsportal-service/internal/pkg/dto/responses"
	"doctorsportal-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"
)

type stripeService struct {
	BaseUrl    string
	SecretKey  string
	HttpClient *http.Client
	Limiter    *rate.Limiter
}

type paymentIntentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
}

func NewStripeService(internalConfig *config.InternalConfig) contracts.PaymentGatewayService {
	rps := internalConfig.App.PaymentGatewayRequestsPerSecond
	if rps <= 0 {
		rps = 1
	}
	return &stripeService{
		BaseUrl:    internalConfig.PaymentGateway.BaseUrl,
		SecretKey:  internalConfig.PaymentGateway.SecretKey,
		HttpClient: &http.Client{Timeout: 15 * time.Second},
		Limiter:    rate.NewLimiter(rate.Limit(rps), rps),
	}
}

// CreatePaymentIntent asks the processor for an intent and passes the client
// secret through unchanged.
func (s *stripeService) CreatePaymentIntent(ctx context.Context, amount int, currency string) (*responses.PaymentIntent, error) {
	if err := s.Limiter.Wait(ctx); err != nil {
		return nil, exceptions.ErrPaymentGateway(err)
	}

	form := url.Values{}
	form.Set("amount", strconv.Itoa(amount))
	form.Set("currency", currency)
	form.Set("payment_method_types[]", "card")

	endpoint := fmt.Sprintf("%s/v1/payment_intents", s.BaseUrl)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, exceptions.ErrPaymentGateway(err)
	}
	req.Header.Set(constvars.HeaderContentType, "application/x-www-form-urlencoded")
	req.Header.Set(constvars.HeaderAuthorization, "Bearer "+s.SecretKey)

	resp, err := s.HttpClient.Do(req)
	if err != nil {
		return nil, exceptions.ErrPaymentGateway(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, exceptions.ErrPaymentGateway(fmt.Errorf("processor returned status %d", resp.StatusCode))
	}

	var intent paymentIntentResponse
	if err := json.NewDecoder(resp.Body).Decode(&intent); err != nil {
		return nil, exceptions.ErrPaymentGateway(err)
	}
	if intent.ClientSecret == "" {
		return nil, exceptions.ErrPaymentGateway(fmt.Errorf("processor response has no client secret"))
	}

	return &responses.PaymentIntent{
		IntentID:     intent.ID,
		ClientSecret: intent.ClientSecret,
	}, nil
}
