package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"trasua/internal/auth"
	"trasua/internal/domain"
	"trasua/internal/repository"
)

// ErrInvalidCredentials hides whether the email or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService authenticates operators and rotates their token pairs.
type AuthService struct {
	users  repository.UserRepository
	tokens *auth.Manager
}

func NewAuthService(users repository.UserRepository, tokens *auth.Manager) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Login verifies credentials and mints a token pair.
func (s *AuthService) Login(ctx context.Context, email, password string) (auth.TokenPair, *domain.User, error) {
	if email == "" || password == "" {
		return auth.TokenPair{}, nil, ErrInvalidInput
	}
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return auth.TokenPair{}, nil, ErrInvalidCredentials
		}
		return auth.TokenPair{}, nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return auth.TokenPair{}, nil, ErrInvalidCredentials
	}

	pair, err := s.tokens.IssuePair(user.ID, user.Email)
	if err != nil {
		return auth.TokenPair{}, nil, err
	}
	return pair, user, nil
}

// Refresh validates a refresh token for the given email and rotates the
// pair.
func (s *AuthService) Refresh(ctx context.Context, email, refreshToken string) (auth.TokenPair, error) {
	if email == "" || refreshToken == "" {
		return auth.TokenPair{}, ErrInvalidInput
	}
	claims, err := s.tokens.ValidateRefresh(refreshToken)
	if err != nil || claims.Email != email {
		return auth.TokenPair{}, ErrInvalidCredentials
	}
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return auth.TokenPair{}, ErrInvalidCredentials
		}
		return auth.TokenPair{}, err
	}
	return s.tokens.IssuePair(user.ID, user.Email)
}

// Me resolves the account behind a validated access token.
func (s *AuthService) Me(ctx context.Context, claims *auth.Claims) (*domain.User, error) {
	if claims == nil {
		return nil, ErrInvalidCredentials
	}
	user, err := s.users.GetUserByEmail(ctx, claims.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	return user, nil
}

// Tokens exposes the manager for middleware wiring.
func (s *AuthService) Tokens() *auth.Manager { return s.tokens }
