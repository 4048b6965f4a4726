package user

import (
	"context"

	userRepo "consultly/database/repository/user"
	"consultly/models"
)

// AuthService handles account registration, token issuance and revocation.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	Logout(ctx context.Context, token string) error
	GetProfile(ctx context.Context, userID string) (*models.User, error)
}

// DefaultAuthService implements AuthService over the user repository.
type DefaultAuthService struct {
	Repo   userRepo.UserRepository
	Tokens TokenStore
}
