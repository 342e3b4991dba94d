package service

import (
	"context"
	"os"
	"testing"

	"smarthire-api/core/config"
	"smarthire-api/core/errors"
	"smarthire-api/modules/auth/dto"
	"smarthire-api/modules/auth/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	config.Set(&config.Config{
		JWT: config.JWTConfig{
			Secret:         "test-secret",
			AccessTokenTTL: 60,
		},
	})
	os.Exit(m.Run())
}

type memoryAuthRepo struct {
	byEmail map[string]*entity.User
}

func newMemoryAuthRepo() *memoryAuthRepo {
	return &memoryAuthRepo{byEmail: map[string]*entity.User{}}
}

func (r *memoryAuthRepo) CreateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	user.ID = uuid.New()
	r.byEmail[user.Email] = user
	return user, nil
}

func (r *memoryAuthRepo) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.byEmail[email], nil
}

func (r *memoryAuthRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func TestRegisterAndLogin(t *testing.T) {
	svc := NewAuthService(newMemoryAuthRepo())

	registered, appErr := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "Recruiter@Example.com",
		FullName: "Sam Recruiter",
		Password: "correct horse battery",
	})
	require.Nil(t, appErr)
	assert.NotEmpty(t, registered.AccessToken)
	assert.Equal(t, "recruiter@example.com", registered.User.Email)

	loggedIn, appErr := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "recruiter@example.com",
		Password: "correct horse battery",
	})
	require.Nil(t, appErr)
	assert.NotEmpty(t, loggedIn.AccessToken)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := NewAuthService(newMemoryAuthRepo())

	req := &dto.RegisterRequest{Email: "a@example.com", Password: "password123"}
	_, appErr := svc.Register(context.Background(), req)
	require.Nil(t, appErr)

	_, appErr = svc.Register(context.Background(), req)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrAlreadyExists, appErr.Code)
}

func TestRegister_WeakPassword(t *testing.T) {
	svc := NewAuthService(newMemoryAuthRepo())

	_, appErr := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "a@example.com",
		Password: "short",
	})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := NewAuthService(newMemoryAuthRepo())

	_, appErr := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "a@example.com",
		Password: "password123",
	})
	require.Nil(t, appErr)

	_, appErr = svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "a@example.com",
		Password: "wrong password",
	})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrUnauthorized, appErr.Code)
}

func TestLogin_UnknownUser(t *testing.T) {
	svc := NewAuthService(newMemoryAuthRepo())

	_, appErr := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrUnauthorized, appErr.Code)
}
