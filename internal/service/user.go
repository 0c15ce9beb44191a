package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/campusgate/campusgate-go/internal/crypto"
	"github.com/campusgate/campusgate-go/internal/model"
	"github.com/campusgate/campusgate-go/internal/repository"
)

// UserService handles user lookup, update, and deletion.
type UserService struct {
	users UserStore
	log   zerolog.Logger
}

// NewUserService creates a new UserService.
func NewUserService(users UserStore, log zerolog.Logger) *UserService {
	return &UserService{users: users, log: log}
}

// Get retrieves a user by ID.
func (s *UserService) Get(ctx context.Context, id int64) (model.UserResponse, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.UserResponse{}, ErrUserNotFound
		}
		s.log.Error().Err(err).Int64("user_id", id).Msg("fetching user")
		return model.UserResponse{}, err
	}

	return model.UserToResponse(user), nil
}

// Update validates the request and rewrites the user's name, email, and
// password. The password is re-hashed on every update.
func (s *UserService) Update(ctx context.Context, id int64, req model.UpdateUserRequest) (model.UserResponse, error) {
	if verr := validateUpdate(req); verr != nil {
		return model.UserResponse{}, verr
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.UserResponse{}, ErrUserNotFound
		}
		s.log.Error().Err(err).Int64("user_id", id).Msg("fetching user")
		return model.UserResponse{}, err
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return model.UserResponse{}, err
	}

	user.Name = req.Name
	user.Email = req.Email
	user.PasswordHash = hash

	if err := s.users.Update(ctx, user); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateEmail):
			return model.UserResponse{}, &ValidationError{Fields: map[string]string{
				"email": "email has already been taken",
			}}
		case errors.Is(err, repository.ErrUserNotFound):
			return model.UserResponse{}, ErrUserNotFound
		}
		s.log.Error().Err(err).Int64("user_id", id).Msg("updating user")
		return model.UserResponse{}, err
	}

	return model.UserToResponse(user), nil
}

// Delete removes a user by ID.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		s.log.Error().Err(err).Int64("user_id", id).Msg("deleting user")
		return err
	}
	return nil
}
