// Copyright (c) 2026 GamerGrid. All rights reserved.
// Author: GamerGrid Team

package auth

import (
	"context"
	"time"
)

// # User Data Access

// UserRepository defines the data access contract for user accounts.
//
// Uniqueness of username and email is enforced by the store itself; Create
// reports a rejected insert as [ErrDuplicateUser].
type UserRepository interface {

	/*
		FindByID returns the account with the given ID.

		Parameters:
		  - context: context.Context
		  - id: int64

		Returns:
		  - *User: Hydrated entity
		  - error: ErrUserNotFound or database retrieval failures
	*/
	FindByID(context context.Context, id int64) (*User, error)

	/*
		FindByLogin returns the account whose username or email equals login.
		A username match wins over an email match.

		Parameters:
		  - context: context.Context
		  - login: string

		Returns:
		  - *User: Hydrated entity
		  - error: ErrUserNotFound or database retrieval failures
	*/
	FindByLogin(context context.Context, login string) (*User, error)

	/*
		ExistsByUsernameOrEmail reports whether any account already uses the
		username or the email.

		Parameters:
		  - context: context.Context
		  - username: string
		  - email: string

		Returns:
		  - bool: true when either key is taken
		  - error: Database retrieval failures
	*/
	ExistsByUsernameOrEmail(context context.Context, username, email string) (bool, error)

	/*
		Create persists a brand-new user account and fills in its ID and CreatedAt.

		Parameters:
		  - context: context.Context
		  - user: *User

		Returns:
		  - error: ErrDuplicateUser or persistence failures
	*/
	Create(context context.Context, user *User) error
}

// # Revocation Data Access

// TokenDenylist stores the IDs of access tokens revoked before expiry.
type TokenDenylist interface {

	/*
		Revoke marks a token ID as revoked for ttl.

		Parameters:
		  - context: context.Context
		  - tokenID: string (the "jti" claim)
		  - ttl: time.Duration (remaining token lifetime)

		Returns:
		  - error: Persistence failures
	*/
	Revoke(context context.Context, tokenID string, ttl time.Duration) error

	/*
		IsRevoked reports whether the token ID has been revoked.

		Parameters:
		  - context: context.Context
		  - tokenID: string

		Returns:
		  - bool: true when revoked
		  - error: Retrieval failures
	*/
	IsRevoked(context context.Context, tokenID string) (bool, error)
}
