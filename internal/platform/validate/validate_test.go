// Copyright (c) 2026 GamerGrid. All rights reserved.
// Author: GamerGrid Team

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DavidGolding200238/GamerGrid-2.0-sub000/internal/platform/apperr"
	"github.com/DavidGolding200238/GamerGrid-2.0-sub000/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "username", "alice", false},
		{"empty_string", "username", "", true},
		{"whitespace_only", "username", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)

			if tt.hasError {
				assert.True(t, v.HasErrors())
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				assert.Equal(t, tt.field, ae.Details[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_Present accepts whitespace-only values and rejects only empty ones.
*/
func TestValidator_Present(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		hasError bool
	}{
		{"valid_string", "secret", false},
		{"whitespace_only", "      ", false},
		{"empty_string", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Present("password", tt.value)
			assert.Equal(t, tt.hasError, v.HasErrors())
		})
	}
}

/*
TestValidator_Lengths checks rune-based and byte-based length rules.
*/
func TestValidator_Lengths(t *testing.T) {
	tests := []struct {
		name     string
		apply    func(v *validate.Validator)
		hasError bool
	}{
		{"min_exact", func(v *validate.Validator) { v.MinLen("password", "secret", 6) }, false},
		{"min_short", func(v *validate.Validator) { v.MinLen("password", "12345", 6) }, true},
		{"min_counts_runes", func(v *validate.Validator) { v.MinLen("password", "ééééé", 6) }, true},
		{"max_ok", func(v *validate.Validator) { v.MaxLen("username", "alice", 5) }, false},
		{"max_long", func(v *validate.Validator) { v.MaxLen("username", "alice1", 5) }, true},
		{"bytes_ok", func(v *validate.Validator) { v.MaxBytes("password", "éé", 4) }, false},
		{"bytes_long", func(v *validate.Validator) { v.MaxBytes("password", "ééé", 4) }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			tt.apply(v)
			assert.Equal(t, tt.hasError, v.HasErrors())
		})
	}
}

/*
TestValidator_Chain tests the fluent API (chaining multiple rules).
*/
func TestValidator_Chain(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("username", "alice").
		MinLen("username", "alice", 3).
		MaxLen("username", "alice", 10).
		Present("password", "secret").
		Err()

	assert.NoError(t, err)
	assert.False(t, v.HasErrors())
}

/*
TestValidator_Chain_Failure tests error accumulation in the chain.
*/
func TestValidator_Chain_Failure(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("username", "").
		MinLen("password", "abc", 6).
		Present("email", "").
		ErrWithMessage("Username, email, and password are required")

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)

	assert.Equal(t, "Username, email, and password are required", ae.Message)
	assert.Len(t, ae.Details, 3)
}
