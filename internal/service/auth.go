// Package service implements the application workflows: registration, login,
// logout, user management, and dataset search.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/campusgate/campusgate-go/internal/crypto"
	"github.com/campusgate/campusgate-go/internal/model"
	"github.com/campusgate/campusgate-go/internal/repository"
	"github.com/campusgate/campusgate-go/internal/token"
)

// UserStore is the persistence interface the workflows depend on. It is
// implemented by repository.UserRepository.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id int64) error
}

// AuthService handles registration, login, and logout.
type AuthService struct {
	users  UserStore
	tokens *token.Service
	log    zerolog.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(users UserStore, tokens *token.Service, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, log: log}
}

// Register validates the request, creates the user with a hashed password,
// and issues a token. Nothing is persisted when validation fails.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (model.AuthResponse, error) {
	if verr := validateRegister(req); verr != nil {
		return model.AuthResponse{}, verr
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return model.AuthResponse{}, err
	}

	user := &model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return model.AuthResponse{}, &ValidationError{Fields: map[string]string{
				"email": "email has already been taken",
			}}
		}
		s.log.Error().Err(err).Msg("creating user")
		return model.AuthResponse{}, err
	}

	tok, err := s.tokens.Issue(user.ID)
	if err != nil {
		s.log.Error().Err(err).Int64("user_id", user.ID).Msg("issuing token")
		return model.AuthResponse{}, fmt.Errorf("%w: %v", ErrTokenIssuance, err)
	}

	return authResponse(user, tok), nil
}

// Login verifies the credentials and issues a token. Unknown email and wrong
// password both return ErrInvalidCredentials so callers cannot probe which
// accounts exist.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error) {
	if verr := validateLogin(req); verr != nil {
		return model.AuthResponse{}, verr
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.AuthResponse{}, ErrInvalidCredentials
		}
		s.log.Error().Err(err).Msg("looking up user")
		return model.AuthResponse{}, err
	}

	match, err := crypto.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		return model.AuthResponse{}, err
	}
	if !match {
		return model.AuthResponse{}, ErrInvalidCredentials
	}

	tok, err := s.tokens.Issue(user.ID)
	if err != nil {
		s.log.Error().Err(err).Int64("user_id", user.ID).Msg("issuing token")
		return model.AuthResponse{}, fmt.Errorf("%w: %v", ErrTokenIssuance, err)
	}

	return authResponse(user, tok), nil
}

// Logout invalidates the given token for its remaining lifetime.
func (s *AuthService) Logout(ctx context.Context, tokenString string) error {
	if err := s.tokens.Invalidate(tokenString); err != nil {
		s.log.Warn().Err(err).Msg("invalidating token")
		return err
	}
	return nil
}

func authResponse(user *model.User, tok string) model.AuthResponse {
	return model.AuthResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
		Token:     tok,
	}
}
