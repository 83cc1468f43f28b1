package contracts

import (
	"context"

	"doctorsportal-service/internal/app/models"
	"doctorsportal-service/internal/pkg/dto/requests"
	"doctorsportal-service/internal/pkg/dto/responses"
)

type UserUsecase interface {
	SaveUser(ctx context.Context, request *requests.SaveUser) (*responses.SaveUser, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
	IsAdmin(ctx context.Context, email string) (bool, error)
	PromoteToAdmin(ctx context.Context, userID string) error
}

type AuthUsecase interface {
	IssueToken(ctx context.Context, email string) (*responses.AccessToken, error)
}

type UserRepository interface {
	UpsertByEmail(ctx context.Context, user *models.User) (userID string, err error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	SetRole(ctx context.Context, userID, role string) error
}
