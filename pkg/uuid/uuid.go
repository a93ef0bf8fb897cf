// Copyright (c) 2026 GamerGrid. All rights reserved.
// Author: GamerGrid Team

/*
Package uuid provides time-ordered unique identifiers for the platform.

It wraps the standard UUID library to generate Version 7 values. They are used
for request correlation IDs and for the "jti" claim of access tokens, where
time ordering keeps denylist keys and logs naturally sorted.
*/
package uuid

import "github.com/google/uuid"

// # Generators

// New generates a new UUIDv7 string, falling back to a random v4 value if the
// clock-based generator fails.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
