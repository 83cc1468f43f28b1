package paymentgateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"doctorsportal-service/internal/app/config"
	"doctorsportal-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(baseURL string) *stripeService {
	internalConfig := &config.InternalConfig{
		App: config.App{PaymentGatewayRequestsPerSecond: 100},
		PaymentGateway: config.PaymentGateway{
			BaseUrl:   baseURL,
			SecretKey: "sk_test_123",
		},
	}
	return NewStripeService(internalConfig).(*stripeService)
}

func TestCreatePaymentIntent(t *testing.T) {
	t.Run("sends a form encoded request and returns the client secret", func(t *testing.T) {
		var gotAmount, gotCurrency, gotAuth string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/v1/payment_intents", r.URL.Path)
			require.NoError(t, r.ParseForm())
			gotAmount = r.PostFormValue("amount")
			gotCurrency = r.PostFormValue("currency")
			gotAuth = r.Header.Get("Authorization")
			w.Write([]byte(`{"id":"pi_123","client_secret":"pi_123_secret"}`))
		}))
		defer server.Close()

		service := newTestService(server.URL)
		intent, err := service.CreatePaymentIntent(context.Background(), 8000, "usd")
		require.NoError(t, err)

		assert.Equal(t, "8000", gotAmount)
		assert.Equal(t, "usd", gotCurrency)
		assert.Equal(t, "Bearer sk_test_123", gotAuth)
		assert.Equal(t, "pi_123", intent.IntentID)
		assert.Equal(t, "pi_123_secret", intent.ClientSecret)
	})

	t.Run("processor error status becomes a gateway error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusPaymentRequired)
		}))
		defer server.Close()

		service := newTestService(server.URL)
		_, err := service.CreatePaymentIntent(context.Background(), 8000, "usd")
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 502, customErr.StatusCode)
	})

	t.Run("missing client secret in the response is rejected", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"id":"pi_123"}`))
		}))
		defer server.Close()

		service := newTestService(server.URL)
		_, err := service.CreatePaymentIntent(context.Background(), 8000, "usd")
		assert.Error(t, err)
	})
}
