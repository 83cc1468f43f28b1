package controllers

import (
	"net/http"

	"doctorsportal-service/internal/pkg/constvars"
	"doctorsportal-service/internal/pkg/utils"
)

type HealthController struct{}

func NewHealthController() *HealthController {
	return &HealthController{}
}

func (c *HealthController) Liveness(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LivenessMessage, nil)
}
