// Copyright (c) 2026 GamerGrid. All rights reserved.
// Author: GamerGrid Team

package auth

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/DavidGolding200238/GamerGrid-2.0-sub000/internal/platform/database/schema"
	"github.com/DavidGolding200238/GamerGrid-2.0-sub000/internal/platform/dberr"
)

// # User Repository

// RowQuerier is the slice of the pgx API the repository needs.
// *pgxpool.Pool, pgx.Tx and *pgx.Conn all satisfy it.
type RowQuerier interface {
	QueryRow(context context.Context, sql string, args ...any) pgx.Row
}

// PostgresUserRepository implements the UserRepository interface using pgx.
//
// Rows live in users.account, created by the golang-migrate migrations.
type PostgresUserRepository struct {
	pool RowQuerier
}

// NewPostgresUserRepository creates a new PostgreSQL implementation of the UserRepository.
func NewPostgresUserRepository(pool RowQuerier) *PostgresUserRepository {
	return &PostgresUserRepository{pool: pool}
}

// scanUser hydrates a User from a row selected with schema.UserAccount.SelectList.
func scanUser(row pgx.Row) (*User, error) {
	user := &User{}
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.DisplayName,
		&user.ProfileImage,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

/*
Create persists a new user record into the users.account table.

Description: The identity column assigns the ID; it and the creation timestamp
are written back onto user.

Parameters:
  - context: context.Context
  - user: *User (Entity to persist)

Returns:
  - error: ErrDuplicateUser on a unique violation, or connectivity errors
*/
func (repository *PostgresUserRepository) Create(context context.Context, user *User) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s, %s`,
		schema.UserAccount.Table,
		schema.UserAccount.Username, schema.UserAccount.Email, schema.UserAccount.PasswordHash,
		schema.UserAccount.DisplayName, schema.UserAccount.ProfileImage,
		schema.UserAccount.ID, schema.UserAccount.CreatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.DisplayName,
		user.ProfileImage,
	).Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		if dberr.IsUniqueViolation(err) {
			return ErrDuplicateUser
		}
		return fmt.Errorf("postgres_user_repo_create_failed: %w", err)
	}

	return nil
}

/*
FindByID retrieves a user record by primary key.

Parameters:
  - context: context.Context
  - id: int64

Returns:
  - *User: Hydrated account entity
  - error: ErrUserNotFound or database errors
*/
func (repository *PostgresUserRepository) FindByID(context context.Context, id int64) (*User, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		schema.UserAccount.SelectList(), schema.UserAccount.Table, schema.UserAccount.ID)

	user, err := scanUser(repository.pool.QueryRow(context, query, id))
	if err != nil {
		if dberr.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("postgres_user_repo_find_by_id_failed: %w", err)
	}

	return user, nil
}

/*
FindByLogin retrieves a user record by username or email.

Description: A single query covers both keys; the ORDER BY makes a username
match win when one account's email equals another's username.

Parameters:
  - context: context.Context
  - login: string

Returns:
  - *User: Hydrated account entity
  - error: ErrUserNotFound or database errors
*/
func (repository *PostgresUserRepository) FindByLogin(context context.Context, login string) (*User, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1 OR %s = $1
		ORDER BY (%s = $1) DESC
		LIMIT 1`,
		schema.UserAccount.SelectList(), schema.UserAccount.Table,
		schema.UserAccount.Username, schema.UserAccount.Email, schema.UserAccount.Username,
	)

	user, err := scanUser(repository.pool.QueryRow(context, query, login))
	if err != nil {
		if dberr.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("postgres_user_repo_find_by_login_failed: %w", err)
	}

	return user, nil
}

/*
ExistsByUsernameOrEmail performs the combined uniqueness pre-check.

Parameters:
  - context: context.Context
  - username: string
  - email: string

Returns:
  - bool: true when either key is taken
  - error: Database errors
*/
func (repository *PostgresUserRepository) ExistsByUsernameOrEmail(context context.Context, username, email string) (bool, error) {
	query := fmt.Sprintf(`
		SELECT EXISTS (
			SELECT 1 FROM %s WHERE %s = $1 OR %s = $2
		)`,
		schema.UserAccount.Table, schema.UserAccount.Username, schema.UserAccount.Email,
	)

	var exists bool
	if err := repository.pool.QueryRow(context, query, username, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("postgres_user_repo_exists_failed: %w", err)
	}

	return exists, nil
}
