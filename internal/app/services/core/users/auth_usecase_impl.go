package users

import (
	"context"
	"time"

	"doctorsportal-service/internal/app/config"
	"doctorsportal-service/internal/app/contracts"
	"doctorsportal-service/internal/pkg/dto/responses"
	"doctorsportal-service/internal/pkg/exceptions"
	"doctorsportal-service/internal/pkg/utils"
)

type authUsecase struct {
	UserRepository contracts.UserRepository
	InternalConfig *config.InternalConfig
}

func NewAuthUsecase(userRepository contracts.UserRepository, internalConfig *config.InternalConfig) contracts.AuthUsecase {
	return &authUsecase{
		UserRepository: userRepository,
		InternalConfig: internalConfig,
	}
}

// IssueToken refuses unregistered emails; nobody gets a signed token
// without a user document.
func (uc *authUsecase) IssueToken(ctx context.Context, email string) (*responses.AccessToken, error) {
	user, err := uc.UserRepository.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUnknownEmail(nil)
	}

	expTime := time.Duration(uc.InternalConfig.JWT.ExpTimeInHour) * time.Hour
	token, err := utils.GenerateJWT(email, uc.InternalConfig.JWT.Secret, expTime)
	if err != nil {
		return nil, err
	}

	return &responses.AccessToken{AccessToken: token}, nil
}
