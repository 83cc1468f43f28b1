package middlewares

import (
	"context"
	"net/http"
	"strings"

	"doctorsportal-service/internal/pkg/constvars"
	"doctorsportal-service/internal/pkg/exceptions"
	"doctorsportal-service/internal/pkg/utils"
)

// Authenticate distinguishes a missing credential from a bad one: no
// Authorization header is unauthorized, a present but unverifiable token is
// forbidden.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		email, err := utils.ParseJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(err))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_TOKEN_EMAIL_KEY, email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin must run after Authenticate.
func (m *Middlewares) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, ok := r.Context().Value(constvars.CONTEXT_TOKEN_EMAIL_KEY).(string)
		if !ok || email == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrMissingTokenEmail(nil))
			return
		}

		user, err := m.UserRepository.FindByEmail(r.Context(), email)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}
		if user == nil || !user.IsAdmin() {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrNotAdmin(nil))
			return
		}

		next.ServeHTTP(w, r)
	})
}
