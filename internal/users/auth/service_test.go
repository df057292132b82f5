// Copyright (c) 2026 Todone. All rights reserved.
// Author: todone.dev@gmail.com

package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/todone-app/todone/internal/platform/apperr"
	"github.com/todone-app/todone/internal/platform/sec"
	"github.com/todone-app/todone/internal/users/auth"
)

// # Test Doubles

// memoryUserRepository is an in-memory UserRepository keyed by username.
type memoryUserRepository struct {
	users map[string]*auth.User
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{users: make(map[string]*auth.User)}
}

func (repository *memoryUserRepository) FindByUsername(_ context.Context, username string) (*auth.User, error) {
	user, ok := repository.users[username]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	return user, nil
}

func (repository *memoryUserRepository) Create(_ context.Context, user *auth.User) error {
	if _, exists := repository.users[user.Username]; exists {
		return apperr.Conflict("Username is already taken")
	}
	repository.users[user.Username] = user
	return nil
}

// captureTokenProvider records the arguments of the last issue call.
type captureTokenProvider struct {
	userID   string
	username string
	role     string
	ttl      time.Duration
}

func (provider *captureTokenProvider) GenerateAccessToken(userID, username, role string, timeToLive time.Duration) (string, error) {
	provider.userID = userID
	provider.username = username
	provider.role = role
	provider.ttl = timeToLive
	return "signed-token", nil
}

func newTestService() (*auth.Service, *memoryUserRepository, *captureTokenProvider) {
	repository := newMemoryUserRepository()
	provider := &captureTokenProvider{}
	return auth.NewService(repository, provider, time.Hour), repository, provider
}

// # Registration

/*
TestRegister verifies that enrollment stores a hashed credential and assigns
the default role.
*/
func TestRegister(t *testing.T) {
	service, repository, _ := newTestService()

	user, err := service.Register(context.Background(), auth.RegisterInput{
		Username: "alice",
		Password: "correct horse battery",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, sec.RoleUser, user.Role)

	stored := repository.users["alice"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "correct horse battery", stored.PasswordHash, "plaintext must never be persisted")
	assert.True(t, sec.CheckPasswordHash("correct horse battery", stored.PasswordHash))
}

/*
TestRegister_DuplicateUsername verifies that a second enrollment under the same
username is rejected with a Conflict and leaves the original account intact.
*/
func TestRegister_DuplicateUsername(t *testing.T) {
	service, repository, _ := newTestService()

	_, err := service.Register(context.Background(), auth.RegisterInput{Username: "alice", Password: "first-password"})
	require.NoError(t, err)
	originalHash := repository.users["alice"].PasswordHash

	_, err = service.Register(context.Background(), auth.RegisterInput{Username: "alice", Password: "second-password"})
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "CONFLICT", appError.Code)

	assert.Equal(t, originalHash, repository.users["alice"].PasswordHash, "existing account must be untouched")
}

// # Login

/*
TestLogin verifies that valid credentials yield a session whose token carries
the stored identity and role.
*/
func TestLogin(t *testing.T) {
	service, _, provider := newTestService()

	registered, err := service.Register(context.Background(), auth.RegisterInput{Username: "alice", Password: "correct horse battery"})
	require.NoError(t, err)

	session, err := service.Login(context.Background(), auth.LoginInput{Username: "alice", Password: "correct horse battery"})
	require.NoError(t, err)

	assert.Equal(t, "signed-token", session.AccessToken)
	assert.Equal(t, registered.ID, provider.userID)
	assert.Equal(t, "alice", provider.username)
	assert.Equal(t, "user", provider.role)
	assert.Equal(t, time.Hour, provider.ttl)
}

/*
TestLogin_BadCredentials verifies that an unknown username and a wrong password
produce the identical error so responses cannot be used for enumeration.
*/
func TestLogin_BadCredentials(t *testing.T) {
	service, _, _ := newTestService()

	_, err := service.Register(context.Background(), auth.RegisterInput{Username: "alice", Password: "correct horse battery"})
	require.NoError(t, err)

	_, unknownErr := service.Login(context.Background(), auth.LoginInput{Username: "nobody", Password: "whatever"})
	_, wrongErr := service.Login(context.Background(), auth.LoginInput{Username: "alice", Password: "wrong password"})

	require.Error(t, unknownErr)
	require.Error(t, wrongErr)

	unknownApp := apperr.As(unknownErr)
	wrongApp := apperr.As(wrongErr)
	require.NotNil(t, unknownApp)
	require.NotNil(t, wrongApp)

	assert.Equal(t, unknownApp.Code, wrongApp.Code)
	assert.Equal(t, unknownApp.Message, wrongApp.Message)
	assert.Equal(t, unknownApp.HTTPStatus, wrongApp.HTTPStatus)
	assert.Equal(t, 401, unknownApp.HTTPStatus)
}
