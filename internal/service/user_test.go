package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusgate/campusgate-go/internal/crypto"
	"github.com/campusgate/campusgate-go/internal/logger"
	"github.com/campusgate/campusgate-go/internal/model"
)

func newTestUserService(t *testing.T) (*UserService, *fakeUserStore, *model.User) {
	t.Helper()

	store := newFakeUserStore()
	hash, err := crypto.HashPassword("password123")
	require.NoError(t, err)

	user := &model.User{
		Name:         "John Doe",
		Email:        "john@example.com",
		PasswordHash: hash,
	}
	require.NoError(t, store.Create(context.Background(), user))

	return NewUserService(store, logger.Nop()), store, user
}

func TestGetUser(t *testing.T) {
	svc, _, user := newTestUserService(t)

	resp, err := svc.Get(context.Background(), user.ID)
	require.NoError(t, err)

	assert.Equal(t, user.ID, resp.ID)
	assert.Equal(t, "John Doe", resp.Name)
	assert.Equal(t, "john@example.com", resp.Email)
}

func TestGetUserNotFound(t *testing.T) {
	svc, _, _ := newTestUserService(t)

	_, err := svc.Get(context.Background(), 999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateUser(t *testing.T) {
	svc, store, user := newTestUserService(t)

	resp, err := svc.Update(context.Background(), user.ID, model.UpdateUserRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "newpassword",
	})
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", resp.Name)
	assert.Equal(t, "jane@example.com", resp.Email)

	stored, err := store.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.NotEqual(t, user.PasswordHash, stored.PasswordHash, "password should be re-hashed")

	match, err := crypto.VerifyPassword("newpassword", stored.PasswordHash)
	require.NoError(t, err)
	assert.True(t, match)
}

func TestUpdateUserNotFound(t *testing.T) {
	svc, _, _ := newTestUserService(t)

	_, err := svc.Update(context.Background(), 999, model.UpdateUserRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "newpassword",
	})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateUserValidation(t *testing.T) {
	svc, store, user := newTestUserService(t)

	_, err := svc.Update(context.Background(), user.ID, model.UpdateUserRequest{
		Name:     "",
		Email:    "bad",
		Password: "x",
	})

	verr, ok := AsValidationError(err)
	require.True(t, ok, "expected ValidationError, got %v", err)
	assert.Contains(t, verr.Fields, "name")
	assert.Contains(t, verr.Fields, "email")
	assert.Contains(t, verr.Fields, "password")

	stored, err := store.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "John Doe", stored.Name, "failed validation must not mutate the user")
}

func TestUpdateUserDuplicateEmail(t *testing.T) {
	svc, store, user := newTestUserService(t)

	other := &model.User{Name: "Other", Email: "other@example.com", PasswordHash: "h"}
	require.NoError(t, store.Create(context.Background(), other))

	_, err := svc.Update(context.Background(), user.ID, model.UpdateUserRequest{
		Name:     "John Doe",
		Email:    "other@example.com",
		Password: "password123",
	})

	verr, ok := AsValidationError(err)
	require.True(t, ok, "expected ValidationError, got %v", err)
	assert.Contains(t, verr.Fields, "email")
}

func TestDeleteUser(t *testing.T) {
	svc, store, user := newTestUserService(t)

	require.NoError(t, svc.Delete(context.Background(), user.ID))
	assert.Zero(t, store.count())
}

func TestDeleteUserNotFound(t *testing.T) {
	svc, _, _ := newTestUserService(t)

	err := svc.Delete(context.Background(), 999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
