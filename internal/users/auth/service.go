// Copyright (c) 2026 Todone. All rights reserved.
// Author: todone.dev@gmail.com

package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/todone-app/todone/internal/platform/apperr"
	"github.com/todone-app/todone/internal/platform/sec"
	"github.com/todone-app/todone/pkg/uuid"
)

// # Contracts & Types

// TokenProvider defines the contract for generating security tokens.
type TokenProvider interface {
	// GenerateAccessToken creates a signed JWT string for the given user.
	//
	// # Parameters
	//   - userID: The ID of the account.
	//   - username: The username of the account.
	//   - role: The role of the account.
	//   - timeToLive: The duration before the token expires.
	//
	// # Returns
	//   - A signed JWT string, or an err if signing fails.
	GenerateAccessToken(userID, username, role string, timeToLive time.Duration) (string, error)
}

// Service implements user authentication use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, registration,
// or login logic must be reviewed before merging.
type Service struct {
	userRepository UserRepository
	tokenProvider  TokenProvider
	accessTokenTTL time.Duration
}

// NewService constructs a new [Service] with necessary dependencies.
//
// The access-token lifetime comes from configuration so operators can tune it
// without a rebuild.
func NewService(userRepo UserRepository, tokenProv TokenProvider, accessTokenTTL time.Duration) *Service {
	return &Service{
		userRepository: userRepo,
		tokenProvider:  tokenProv,
		accessTokenTTL: accessTokenTTL,
	}
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new account.
type RegisterInput struct {
	Username string
	Password string
}

/*
Register validates, hashes, and persists a brand new user account.

Description: Enrolls a new account with the default role. The plaintext
password exists only transiently; neither it nor the hash is ever logged
or returned.

Parameters:
  - context: context.Context
  - input: RegisterInput

Returns:
  - *User: Created entity
  - err: Conflict (if the username exists) or storage errors
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*User, error) {

	// Verify username uniqueness up front for a friendly Conflict message.
	// The database unique index remains the authority: a concurrent register
	// racing past this check still maps to Conflict in the repository.
	_, err := service.userRepository.FindByUsername(context, input.Username)
	if err == nil {
		return nil, apperr.Conflict("Username is already taken")
	}

	// Prevent storing plain-text passwords. Default cost is used for balance
	// between security and CPU utilization during registration spikes.
	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	// Construct the new User entity. Time-sortable ID to prevent PG index fragmentation.
	user := &User{
		ID:           uuid.New(),
		Username:     input.Username,
		PasswordHash: hashedPassword,
		Role:         sec.RoleUser,
	}

	// Persist the user to the database
	if err := service.userRepository.Create(context, user); err != nil {
		if appError := apperr.As(err); appError != nil {
			return nil, appError
		}
		return nil, fmt.Errorf("auth_service_register_failed: %w", err)
	}

	return user, nil
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Username string
	Password string
}

// LoginSession represents a successfully issued access token.
type LoginSession struct {
	AccessToken string
	User        *User
}

/*
Login validates user credentials and issues an access token.

Description: Looks the account up by username, performs constant-time password
comparison, and signs a token carrying {subject: username, role}. An unknown
username and a wrong password produce the identical error value so the
response cannot be used for account enumeration.

Parameters:
  - context: context.Context
  - input: LoginInput

Returns:
  - *LoginSession: Transport-ready access token
  - err: InvalidCredentials or internal failures
*/
func (service *Service) Login(context context.Context, input LoginInput) (*LoginSession, error) {

	// Look up the account. A missing row is collapsed into the generic
	// credentials error below.
	user, err := service.userRepository.FindByUsername(context, input.Username)
	if err != nil {
		if apperr.IsAppError(err) {
			return nil, apperr.InvalidCredentials()
		}
		return nil, fmt.Errorf("auth_service_login_lookup_failed: %w", err)
	}

	// Verify password hash using constant-time comparison in bcrypt to prevent timing attacks
	if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		return nil, apperr.InvalidCredentials()
	}

	// Issue the access token. The role claim is frozen at this moment: a later
	// role change in the store does not affect tokens already in circulation.
	accessToken, err := service.tokenProvider.GenerateAccessToken(user.ID, user.Username, string(user.Role), service.accessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	return &LoginSession{
		AccessToken: accessToken,
		User:        user,
	}, nil
}
