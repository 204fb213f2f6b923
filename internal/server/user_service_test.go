package server

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-pilot/internal/config"
	"github.com/jonathan/job-pilot/internal/db"
)

// fakeUserStore is an in-memory UserStore.
type fakeUserStore struct {
	byEmail map[string]*db.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{byEmail: make(map[string]*db.User)}
}

func (f *fakeUserStore) CreateUser(_ context.Context, email, name, passwordHash string) (*db.User, error) {
	user := &db.User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
	}
	f.byEmail[email] = user
	return user, nil
}

func (f *fakeUserStore) GetUserByEmail(_ context.Context, email string) (*db.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeUserStore) GetUserByID(_ context.Context, id uuid.UUID) (*db.User, error) {
	for _, user := range f.byEmail {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, nil
}

func newTestUserService() (*UserService, *fakeUserStore) {
	store := newFakeUserStore()
	return NewUserService(store, &config.PasswordConfig{BcryptCost: 10}), store
}

func TestUserService_Register(t *testing.T) {
	svc, store := newTestUserService()

	user, err := svc.Register(context.Background(), &RegisterRequest{
		Email:    "jane@example.com",
		Name:     "Jane",
		Password: "correct-horse",
	})

	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", user.Email)
	assert.NotEqual(t, "correct-horse", user.PasswordHash, "password must be stored hashed")
	assert.Contains(t, store.byEmail, "jane@example.com")
}

func TestUserService_RegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestUserService()

	req := &RegisterRequest{Email: "jane@example.com", Name: "Jane", Password: "correct-horse"}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	require.Error(t, err)

	var dup *ErrEmailAlreadyExists
	assert.ErrorAs(t, err, &dup)
}

func TestUserService_LoginRoundTrip(t *testing.T) {
	svc, _ := newTestUserService()

	_, err := svc.Register(context.Background(), &RegisterRequest{
		Email:    "jane@example.com",
		Name:     "Jane",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	user, err := svc.Login(context.Background(), &LoginRequest{
		Email:    "jane@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", user.Email)
}

func TestUserService_LoginWrongPassword(t *testing.T) {
	svc, _ := newTestUserService()

	_, err := svc.Register(context.Background(), &RegisterRequest{
		Email:    "jane@example.com",
		Name:     "Jane",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &LoginRequest{
		Email:    "jane@example.com",
		Password: "wrong-password",
	})

	var invalid *ErrInvalidCredentials
	assert.ErrorAs(t, err, &invalid)
}

func TestUserService_LoginUnknownEmail(t *testing.T) {
	svc, _ := newTestUserService()

	_, err := svc.Login(context.Background(), &LoginRequest{
		Email:    "nobody@example.com",
		Password: "anything",
	})

	// Unknown account and wrong password are indistinguishable.
	var invalid *ErrInvalidCredentials
	assert.ErrorAs(t, err, &invalid)
}
