// Copyright (c) 2026 GamerGrid. All rights reserved.
// Author: GamerGrid Team

package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DavidGolding200238/GamerGrid-2.0-sub000/internal/users/auth"
)

/*
TestMemoryUserRepository covers create, lookup and uniqueness in one flow.
*/
func TestMemoryUserRepository(t *testing.T) {
	ctx := context.Background()
	repository := auth.NewMemoryUserRepository()

	alice := &auth.User{Username: "alice", Email: "alice@x.com", PasswordHash: "hash", DisplayName: "alice"}
	require.NoError(t, repository.Create(ctx, alice))
	assert.Equal(t, int64(1), alice.ID)
	assert.False(t, alice.CreatedAt.IsZero())

	bob := &auth.User{Username: "bob", Email: "bob@x.com"}
	require.NoError(t, repository.Create(ctx, bob))
	assert.Equal(t, int64(2), bob.ID)

	t.Run("unique_keys", func(t *testing.T) {
		err := repository.Create(ctx, &auth.User{Username: "alice", Email: "new@x.com"})
		assert.ErrorIs(t, err, auth.ErrDuplicateUser)

		err = repository.Create(ctx, &auth.User{Username: "new", Email: "bob@x.com"})
		assert.ErrorIs(t, err, auth.ErrDuplicateUser)
	})

	t.Run("exists", func(t *testing.T) {
		exists, err := repository.ExistsByUsernameOrEmail(ctx, "alice", "nobody@x.com")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repository.ExistsByUsernameOrEmail(ctx, "carol", "carol@x.com")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("find_returns_copies", func(t *testing.T) {
		found, err := repository.FindByID(ctx, alice.ID)
		require.NoError(t, err)
		found.DisplayName = "mutated"

		again, err := repository.FindByID(ctx, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, "alice", again.DisplayName)
	})

	t.Run("find_by_login", func(t *testing.T) {
		byName, err := repository.FindByLogin(ctx, "bob")
		require.NoError(t, err)
		assert.Equal(t, bob.ID, byName.ID)

		byEmail, err := repository.FindByLogin(ctx, "bob@x.com")
		require.NoError(t, err)
		assert.Equal(t, bob.ID, byEmail.ID)

		_, err = repository.FindByLogin(ctx, "carol")
		assert.ErrorIs(t, err, auth.ErrUserNotFound)
	})

	_, err := repository.FindByID(ctx, 99)
	assert.ErrorIs(t, err, auth.ErrUserNotFound)
}
