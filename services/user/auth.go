package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"consultly/models"
	"consultly/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenDuration = 72 * time.Hour

// ErrInvalidCredentials hides whether the email or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid email or password")

// Register creates an account and returns it with a fresh token.
func (s *DefaultAuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := &models.User{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         req.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.issueToken(ctx, user)
	if err != nil {
		return nil, err
	}
	utils.GetLogger().Info("User registered", zap.String("userID", user.ID), zap.String("role", user.Role))
	return &models.AuthResponse{User: *user, Token: token}, nil
}

// Login verifies credentials and returns the account with a fresh token.
func (s *DefaultAuthService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(ctx, user)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{User: *user, Token: token}, nil
}

// Logout revokes the token's cached identity. The JWT itself stays
// cryptographically valid until its expiry; revocation only clears the
// cache entry the middleware trusts.
func (s *DefaultAuthService) Logout(ctx context.Context, token string) error {
	if s.Tokens == nil {
		return nil
	}
	if err := s.Tokens.Revoke(ctx, token); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

func (s *DefaultAuthService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	return s.Repo.GetByID(ctx, userID)
}

// issueToken signs a JWT and primes the auth cache so the middleware can
// validate without a DB round-trip.
func (s *DefaultAuthService) issueToken(ctx context.Context, user *models.User) (string, error) {
	token, err := utils.GenerateToken(user.ID, user.Email, tokenDuration)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	if s.Tokens != nil {
		if err := s.Tokens.Prime(ctx, token, user.ID); err != nil {
			utils.GetLogger().Warn("failed to prime auth cache", zap.Error(err))
		}
	}
	return token, nil
}
