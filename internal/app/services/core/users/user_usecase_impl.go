package users

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
)

type userUsecase struct {
	UserRepository contracts.UserRepository
}

func NewUserUsecase(userRepository contracts.UserRepository) contracts.UserUsecase {
	return &userUsecase{UserRepository: userRepository}
}

func (uc *userUsecase) SaveUser(ctx context.Context, request *requests.SaveUser) (*responses.SaveUser, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	user := &models.User{
		Email:     request.Email,
		Name:      request.Name,
		CreatedAt: time.Now(),
	}
	userID, err := uc.UserRepository.UpsertByEmail(ctx, user)
	if err != nil {
		return nil, err
	}

	return &responses.SaveUser{
		UserID: userID,
		Email:  request.Email,
	}, nil
}

func (uc *userUsecase) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return uc.UserRepository.FindAll(ctx)
}

func (uc *userUsecase) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := uc.UserRepository.FindByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return user != nil && user.IsAdmin(), nil
}

func (uc *userUsecase) PromoteToAdmin(ctx context.Context, userID string) error {
	return uc.UserRepository.SetRole(ctx, userID, constvars.UserRoleAdmin)
}
