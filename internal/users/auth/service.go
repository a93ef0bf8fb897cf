// Copyright (c) 2026 GamerGrid. All rights reserved.
// Author: GamerGrid Team

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/DavidGolding200238/GamerGrid-2.0-sub000/internal/platform/apperr"
	"github.com/DavidGolding200238/GamerGrid-2.0-sub000/internal/platform/ctxutil"
	"github.com/DavidGolding200238/GamerGrid-2.0-sub000/internal/platform/sec"
	"github.com/DavidGolding200238/GamerGrid-2.0-sub000/internal/platform/validate"
	"github.com/DavidGolding200238/GamerGrid-2.0-sub000/pkg/normalize"
)

// # Contracts & Types

// TokenProvider defines the contract for minting and checking access tokens.
type TokenProvider interface {
	// GenerateAccessToken creates a signed JWT string for the given user.
	GenerateAccessToken(userID int64, username, email string) (string, error)

	// VerifyToken validates a JWT string and returns its claims.
	VerifyToken(token string) (*sec.AuthClaims, error)
}

// Service implements the account operations.
//
// # Review Process
//
// This service is critical for security. Failure messages are deliberately
// uniform within each category; keep them that way.
type Service struct {
	userRepository UserRepository
	tokenProvider  TokenProvider
	denylist       TokenDenylist
	now            func() time.Time
}

// NewService constructs a new [Service].
//
// denylist may be nil, in which case logout does not revoke anything and
// tokens stay valid until they expire.
func NewService(userRepo UserRepository, tokenProv TokenProvider, denylist TokenDenylist) *Service {
	return &Service{
		userRepository: userRepo,
		tokenProvider:  tokenProv,
		denylist:       denylist,
		now:            time.Now,
	}
}

// Session is the result of a successful register or login.
type Session struct {
	User        *User
	AccessToken string
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new member.
type RegisterInput struct {
	Username    string
	Email       string
	Password    string
	DisplayName string
}

/*
Register validates, hashes, and persists a brand new user account, then
issues its first access token.

Description: A single combined username-or-email check runs first. A unique
violation raised by the store during insert (two concurrent registrations)
is reported with the same conflict error.

Parameters:
  - context: context.Context
  - input: RegisterInput

Returns:
  - *Session: Created user and access token
  - error: Validation (400), Conflict (409) or internal failures
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*Session, error) {
	username := normalize.Identifier(input.Username)
	email := normalize.Identifier(input.Email)
	displayName := normalize.Identifier(input.DisplayName)

	if err := validateRegistration(username, email, input.Password, displayName); err != nil {
		return nil, err
	}

	exists, err := service.userRepository.ExistsByUsernameOrEmail(context, username, email)
	if err != nil {
		return nil, fmt.Errorf("auth_service_register_lookup_failed: %w", err)
	}
	if exists {
		return nil, apperr.Conflict(MsgUserExists)
	}

	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	if displayName == "" {
		displayName = username
	}

	user := &User{
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
		DisplayName:  displayName,
	}

	if err := service.userRepository.Create(context, user); err != nil {
		if errors.Is(err, ErrDuplicateUser) {
			return nil, apperr.Conflict(MsgUserExists)
		}
		return nil, fmt.Errorf("auth_service_register_failed: %w", err)
	}

	token, err := service.tokenProvider.GenerateAccessToken(user.ID, user.Username, user.Email)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_failed: %w", err)
	}

	ctxutil.GetLogger(context).InfoContext(context, "user_registered", slog.Int64("user_id", user.ID))

	return &Session{User: user, AccessToken: token}, nil
}

// validateRegistration reports missing fields first, then a short password,
// then any remaining length limits.
func validateRegistration(username, email, password, displayName string) error {
	required := &validate.Validator{}
	required.Required(FieldUsername, username).
		Required(FieldEmail, email).
		Present(FieldPassword, password)

	if err := required.ErrWithMessage(MsgMissingRegister); err != nil {
		return err
	}

	short := &validate.Validator{}
	short.MinLen(FieldPassword, password, MinPasswordLength)
	if err := short.ErrWithMessage(MsgPasswordTooShort); err != nil {
		return err
	}

	validator := &validate.Validator{}
	validator.MaxLen(FieldUsername, username, MaxUsernameLength).
		MaxLen(FieldEmail, email, MaxEmailLength).
		MaxLen(FieldDisplayName, displayName, MaxDisplayNameLength).
		MaxBytes(FieldPassword, password, sec.MaxPasswordBytes)

	return validator.Err()
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Login    string // Username or email
	Password string
}

/*
Login validates user credentials and issues an access token.

Description: An unknown identity and a wrong password return the same
Unauthorized error so that callers cannot enumerate usernames.

Parameters:
  - context: context.Context
  - input: LoginInput

Returns:
  - *Session: Authenticated user and access token
  - error: Validation (400), Unauthorized (401) or internal failures
*/
func (service *Service) Login(context context.Context, input LoginInput) (*Session, error) {
	login := normalize.Identifier(input.Login)

	validator := &validate.Validator{}
	validator.Required(FieldUsername, login).Present(FieldPassword, input.Password)
	if err := validator.ErrWithMessage(MsgMissingLogin); err != nil {
		return nil, err
	}

	user, err := service.userRepository.FindByLogin(context, login)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, apperr.Unauthorized(MsgInvalidCredentials)
		}
		return nil, fmt.Errorf("auth_service_login_lookup_failed: %w", err)
	}

	if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		return nil, apperr.Unauthorized(MsgInvalidCredentials)
	}

	token, err := service.tokenProvider.GenerateAccessToken(user.ID, user.Username, user.Email)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_failed: %w", err)
	}

	return &Session{User: user, AccessToken: token}, nil
}

// # Profile

/*
GetProfile returns the account behind an already-verified token.

Parameters:
  - context: context.Context
  - userID: int64 (from verified claims)

Returns:
  - *User: The account
  - error: NotFound (404) when the account no longer exists, or internal failures
*/
func (service *Service) GetProfile(context context.Context, userID int64) (*User, error) {
	user, err := service.userRepository.FindByID(context, userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, apperr.NotFound("User")
		}
		return nil, fmt.Errorf("auth_service_profile_failed: %w", err)
	}

	return user, nil
}

// # Session Termination

/*
Logout acknowledges a logout.

Description: Without a denylist this is a no-op and the token remains valid
until it expires. With one, the presented token's ID is revoked for the rest
of its lifetime. Anonymous calls are always acknowledged.

Parameters:
  - context: context.Context
  - claims: *sec.AuthClaims (nil for anonymous callers)

Returns:
  - error: Denylist write failures
*/
func (service *Service) Logout(context context.Context, claims *sec.AuthClaims) error {
	if service.denylist == nil || claims == nil || claims.ExpiresAt == nil {
		return nil
	}

	remaining := claims.ExpiresAt.Sub(service.now())
	if err := service.denylist.Revoke(context, claims.ID, remaining); err != nil {
		return fmt.Errorf("auth_service_logout_failed: %w", err)
	}

	return nil
}

// # Token Verification

/*
VerifyToken checks a bearer token for the authentication middleware.

Description: Signature, expiry and claims are checked by the TokenProvider.
When a denylist is configured, revoked tokens are rejected too, and a
denylist outage rejects the token rather than letting it through.

Parameters:
  - context: context.Context
  - token: string

Returns:
  - *sec.AuthClaims: Verified claims
  - error: sec.ErrInvalidToken for every rejection
*/
func (service *Service) VerifyToken(context context.Context, token string) (*sec.AuthClaims, error) {
	claims, err := service.tokenProvider.VerifyToken(token)
	if err != nil {
		return nil, sec.ErrInvalidToken
	}

	if service.denylist == nil {
		return claims, nil
	}

	revoked, err := service.denylist.IsRevoked(context, claims.ID)
	if err != nil {
		ctxutil.GetLogger(context).ErrorContext(context, "token_denylist_unavailable", slog.Any("error", err))
		return nil, sec.ErrInvalidToken
	}
	if revoked {
		return nil, sec.ErrInvalidToken
	}

	return claims, nil
}
