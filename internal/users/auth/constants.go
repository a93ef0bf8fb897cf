// Copyright (c) 2026 GamerGrid. All rights reserved.
// Author: GamerGrid Team

package auth

// # Account Constraints

const (
	// MinPasswordLength is the shortest password accepted at registration.
	MinPasswordLength = 6

	// MaxUsernameLength matches the username column width.
	MaxUsernameLength = 64

	// MaxEmailLength matches the email column width.
	MaxEmailLength = 255

	// MaxDisplayNameLength matches the display name column width.
	MaxDisplayNameLength = 100
)

// # Client Messages

const (
	MsgRegistered         = "User registered successfully"
	MsgLoggedIn           = "Login successful"
	MsgLoggedOut          = "Logout successful"
	MsgMissingRegister    = "Username, email, and password are required"
	MsgPasswordTooShort   = "Password must be at least 6 characters long"
	MsgMissingLogin       = "Username and password are required"
	MsgInvalidCredentials = "Invalid username or password"
	MsgUserExists         = "Username or email already exists"
)
