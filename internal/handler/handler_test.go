package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/campusgate/campusgate-go/internal/logger"
	"github.com/campusgate/campusgate-go/internal/model"
	"github.com/campusgate/campusgate-go/internal/repository"
	"github.com/campusgate/campusgate-go/internal/service"
	"github.com/campusgate/campusgate-go/internal/token"
)

// memStore is an in-memory service.UserStore for handler tests.
type memStore struct {
	mu     sync.Mutex
	users  map[int64]*model.User
	nextID int64
}

func newMemStore() *memStore {
	return &memStore{users: make(map[int64]*model.User), nextID: 1}
}

func (m *memStore) Create(_ context.Context, user *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	user.ID = m.nextID
	m.nextID++
	user.CreatedAt = time.Now().UTC()
	user.UpdatedAt = user.CreatedAt
	stored := *user
	m.users[user.ID] = &stored
	return nil
}

func (m *memStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (m *memStore) GetByID(_ context.Context, id int64) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (m *memStore) Update(_ context.Context, user *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.users[user.ID]
	if !ok {
		return repository.ErrUserNotFound
	}
	*existing = *user
	return nil
}

func (m *memStore) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[id]; !ok {
		return repository.ErrUserNotFound
	}
	delete(m.users, id)
	return nil
}

type testEnv struct {
	store  *memStore
	tokens *token.Service
	auth   *AuthHandler
	users  *UserHandler
}

func newTestEnv() *testEnv {
	store := newMemStore()
	tokens := token.NewService("test-secret", time.Hour)
	log := logger.Nop()

	return &testEnv{
		store:  store,
		tokens: tokens,
		auth:   NewAuthHandler(service.NewAuthService(store, tokens, log)),
		users:  NewUserHandler(service.NewUserService(store, log)),
	}
}

// envelope mirrors the response body for assertions.
type envelope struct {
	StatusCode int             `json:"statuscode"`
	Data       json.RawMessage `json:"data"`
	Message    string          `json:"message"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.Equal(t, rec.Code, env.StatusCode, "statuscode must mirror the HTTP status")
	return env
}
