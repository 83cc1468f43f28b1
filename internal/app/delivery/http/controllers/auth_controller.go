package controllers

import (
	"net/http"

	"doctorsportal-service/internal/app/config"
	"doctorsportal-service/internal/app/contracts"
	"doctorsportal-service/internal/pkg/constvars"
	"doctorsportal-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type AuthController struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	AuthUsecase    contracts.AuthUsecase
}

func NewAuthController(
	log *zap.Logger,
	internalConfig *config.InternalConfig,
	authUsecase contracts.AuthUsecase,
) *AuthController {
	return &AuthController{
		Log:            log,
		InternalConfig: internalConfig,
		AuthUsecase:    authUsecase,
	}
}

func (c *AuthController) GetToken(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, c.InternalConfig)
	defer cancel()

	email := r.URL.Query().Get("email")
	c.Log.Info("AuthController.GetToken called")

	token, err := c.AuthUsecase.IssueToken(ctx, email)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.TokenIssuedSuccess, token)
}
