// Copyright (c) 2026 GamerGrid. All rights reserved.
// Author: GamerGrid Team

/*
Package auth implements the account and session-identity layer of GamerGrid.

It defines the User entity, the credential store contract with its PostgreSQL,
MySQL and in-memory implementations, the account operations (register, login,
profile, logout) and their HTTP endpoints.

# Architecture

Sessions are stateless signed tokens. Nothing about a session is persisted
unless the optional revocation denylist is enabled.
*/
package auth

import (
	"errors"
	"time"
)

// # Domain Entities

// User represents a registered GamerGrid member.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	DisplayName  string    `json:"displayName"`
	ProfileImage *string   `json:"profileImage"`
	CreatedAt    time.Time `json:"createdAt"`
}

// # Domain Errors

var (
	// ErrUserNotFound is returned by repositories when no row matches.
	ErrUserNotFound = errors.New("auth: user not found")

	// ErrDuplicateUser is returned by repositories when a unique key rejects an insert.
	ErrDuplicateUser = errors.New("auth: username or email already exists")
)

// # Field Identifiers

// Field names used in validation details and response bodies.
const (
	FieldUsername    = "username"
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldDisplayName = "displayName"
	FieldUser        = "user"
	FieldMessage     = "message"
)
