// Copyright (c) 2026 GamerGrid. All rights reserved.
// Author: GamerGrid Team

package sec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/DavidGolding200238/GamerGrid-2.0-sub000/internal/platform/sec"
)

/*
TestHashPassword_RoundTrip verifies only the original password matches its hash.
*/
func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := sec.HashPassword("secret1")
	require.NoError(t, err)

	assert.NotEqual(t, "secret1", hash)
	assert.True(t, sec.CheckPasswordHash("secret1", hash))
	assert.False(t, sec.CheckPasswordHash("secret2", hash))
	assert.False(t, sec.CheckPasswordHash("", hash))
}

/*
TestHashPassword_Salted verifies two hashes of the same input differ and both verify.
*/
func TestHashPassword_Salted(t *testing.T) {
	first, err := sec.HashPassword("hunter22")
	require.NoError(t, err)
	second, err := sec.HashPassword("hunter22")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, sec.CheckPasswordHash("hunter22", first))
	assert.True(t, sec.CheckPasswordHash("hunter22", second))
}

/*
TestHashPassword_FixedCost pins the work factor.
*/
func TestHashPassword_FixedCost(t *testing.T) {
	hash, err := sec.HashPassword("secret1")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, sec.PasswordCost, cost)
}

/*
TestCheckPasswordHash_MalformedHash reports false instead of failing.
*/
func TestCheckPasswordHash_MalformedHash(t *testing.T) {
	assert.False(t, sec.CheckPasswordHash("secret1", "not-a-bcrypt-hash"))
}

/*
TestHashPassword_TooLong surfaces the primitive's error as a generic failure.
*/
func TestHashPassword_TooLong(t *testing.T) {
	long := make([]byte, sec.MaxPasswordBytes+1)
	for i := range long {
		long[i] = 'a'
	}

	_, err := sec.HashPassword(string(long))
	assert.Error(t, err)
}
