package controllers

import (
	"net/http"

	"doctorsportal-service/internal/app/config"
	"doctorsportal-service/internal/app/contracts"
	"doctorsportal-service/internal/pkg/constvars"
	"doctorsportal-service/internal/pkg/dto/requests"
	"doctorsportal-service/internal/pkg/dto/responses"
	"doctorsportal-service/internal/pkg/exceptions"
	"doctorsportal-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type UserController struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	UserUsecase    contracts.UserUsecase
}

func NewUserController(
	log *zap.Logger,
	internalConfig *config.InternalConfig,
	userUsecase contracts.UserUsecase,
) *UserController {
	return &UserController{
		Log:            log,
		InternalConfig: internalConfig,
		UserUsecase:    userUsecase,
	}
}

func (c *UserController) SaveUser(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, c.InternalConfig)
	defer cancel()

	var request requests.SaveUser
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	c.Log.Info("UserController.SaveUser called")

	result, err := c.UserUsecase.SaveUser(ctx, &request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UserSavedSuccess, result)
}

func (c *UserController) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, c.InternalConfig)
	defer cancel()

	c.Log.Info("UserController.GetAllUsers called")

	users, err := c.UserUsecase.GetAllUsers(ctx)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UsersGetSuccess, users)
}

// CheckAdmin tells the caller whether an email has the admin role. It is
// reachable with any valid token; the answer is a boolean, not a grant.
func (c *UserController) CheckAdmin(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, c.InternalConfig)
	defer cancel()

	email := chi.URLParam(r, "email")
	c.Log.Info("UserController.CheckAdmin called")

	isAdmin, err := c.UserUsecase.IsAdmin(ctx, email)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AdminCheckSuccess, &responses.AdminCheck{IsAdmin: isAdmin})
}

func (c *UserController) PromoteToAdmin(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, c.InternalConfig)
	defer cancel()

	userID := chi.URLParam(r, "id")
	c.Log.Info("UserController.PromoteToAdmin called",
		zap.String("user_id", userID),
	)

	if err := c.UserUsecase.PromoteToAdmin(ctx, userID); err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UserPromotedSuccess, nil)
}
