package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"doctorsportal-service/internal/app/config"
	"doctorsportal-service/internal/app/models"
	"doctorsportal-service/internal/pkg/constvars"
	"doctorsportal-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeUserRepository struct {
	users map[string]*models.User
}

func (f *fakeUserRepository) UpsertByEmail(ctx context.Context, user *models.User) (string, error) {
	return "", nil
}

func (f *fakeUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return f.users[email], nil
}

func (f *fakeUserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	return nil, nil
}

func (f *fakeUserRepository) SetRole(ctx context.Context, userID, role string) error {
	return nil
}

func newTestMiddlewares(users map[string]*models.User) *Middlewares {
	internalConfig := &config.InternalConfig{
		JWT: config.JWT{Secret: "test-secret", ExpTimeInHour: 1},
	}
	return NewMiddlewares(zap.NewNop(), &fakeUserRepository{users: users}, internalConfig)
}

func signToken(t *testing.T, email string) string {
	t.Helper()
	token, err := utils.GenerateJWT(email, "test-secret", time.Hour)
	require.NoError(t, err)
	return token
}

func TestAuthenticate(t *testing.T) {
	m := newTestMiddlewares(nil)

	echoEmail := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, _ := r.Context().Value(constvars.CONTEXT_TOKEN_EMAIL_KEY).(string)
		w.Write([]byte(email))
	})

	t.Run("missing authorization header is unauthorized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
		rec := httptest.NewRecorder()

		m.Authenticate(echoEmail).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token is forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer not.a.token")
		rec := httptest.NewRecorder()

		m.Authenticate(echoEmail).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("valid token puts the email in context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+signToken(t, "patient@example.com"))
		rec := httptest.NewRecorder()

		m.Authenticate(echoEmail).ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "patient@example.com", rec.Body.String())
	})
}

func TestRequireAdmin(t *testing.T) {
	adminUsers := map[string]*models.User{
		"admin@example.com": {Email: "admin@example.com", Role: "admin"},
		"plain@example.com": {Email: "plain@example.com"},
	}
	m := newTestMiddlewares(adminUsers)

	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	requestAs := func(email string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+signToken(t, email))
		rec := httptest.NewRecorder()
		m.Authenticate(m.RequireAdmin(ok)).ServeHTTP(rec, req)
		return rec
	}

	t.Run("admin passes", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, requestAs("admin@example.com").Code)
	})

	t.Run("non admin user is forbidden", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, requestAs("plain@example.com").Code)
	})

	t.Run("unknown email is forbidden", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, requestAs("nobody@example.com").Code)
	})
}
