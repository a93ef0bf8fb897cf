// Copyright (c) 2026 GamerGrid. All rights reserved.
// Author: GamerGrid Team

package auth

import (
	"context"
	"sync"
	"time"
)

// MemoryUserRepository is an in-process UserRepository for tests and
// DATABASE_DRIVER=memory runs. Uniqueness is enforced under the write lock.
type MemoryUserRepository struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]*User
}

// NewMemoryUserRepository creates an empty in-memory repository.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{byID: make(map[int64]*User)}
}

// Create stores a copy of user and assigns its ID and creation time.
func (repository *MemoryUserRepository) Create(_ context.Context, user *User) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	for _, existing := range repository.byID {
		if existing.Username == user.Username || existing.Email == user.Email {
			return ErrDuplicateUser
		}
	}

	repository.nextID++
	user.ID = repository.nextID
	user.CreatedAt = time.Now().UTC()

	stored := *user
	repository.byID[stored.ID] = &stored
	return nil
}

// FindByID returns a copy of the account with the given ID.
func (repository *MemoryUserRepository) FindByID(_ context.Context, id int64) (*User, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	user, ok := repository.byID[id]
	if !ok {
		return nil, ErrUserNotFound
	}

	found := *user
	return &found, nil
}

// FindByLogin returns a copy of the account matching login, preferring a username match.
func (repository *MemoryUserRepository) FindByLogin(_ context.Context, login string) (*User, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	var byEmail *User
	for _, user := range repository.byID {
		if user.Username == login {
			found := *user
			return &found, nil
		}
		if user.Email == login && byEmail == nil {
			byEmail = user
		}
	}

	if byEmail == nil {
		return nil, ErrUserNotFound
	}

	found := *byEmail
	return &found, nil
}

// ExistsByUsernameOrEmail reports whether either key is already taken.
func (repository *MemoryUserRepository) ExistsByUsernameOrEmail(_ context.Context, username, email string) (bool, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	for _, user := range repository.byID {
		if user.Username == username || user.Email == email {
			return true, nil
		}
	}
	return false, nil
}
