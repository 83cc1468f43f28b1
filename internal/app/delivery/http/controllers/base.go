package controllers

import (
	"context"
	"net/http"
	"time"

	"doctorsportal-service/internal/app/config"
)

// requestContext derives a per-request deadline from the configured timeout.
func requestContext(r *http.Request, internalConfig *config.InternalConfig) (context.Context, context.CancelFunc) {
	timeout := time.Duration(internalConfig.App.RequestTimeoutInSeconds) * time.Second
	return context.WithTimeout(r.Context(), timeout)
}
