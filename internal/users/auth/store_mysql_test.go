// Copyright (c) 2026 GamerGrid. All rights reserved.
// Author: GamerGrid Team

package auth_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormmysql "gorm.io/driver/mysql"

	"github.com/DavidGolding200238/GamerGrid-2.0-sub000/internal/platform/mysql"
	"github.com/DavidGolding200238/GamerGrid-2.0-sub000/internal/users/auth"
)

var accountColumns = []string{"id", "username", "email", "password_hash", "display_name", "profile_image", "created_at"}

func newMySQLRepository(t *testing.T) (*auth.MySQLUserRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	dialector := gormmysql.New(gormmysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true})
	db, err := mysql.OpenDialector(context.Background(), dialector, false, slog.New(slog.DiscardHandler))
	require.NoError(t, err)

	return auth.NewMySQLUserRepository(db), mock
}

/*
TestMySQLUserRepository_Create writes back the generated ID.
*/
func TestMySQLUserRepository_Create(t *testing.T) {
	repository, mock := newMySQLRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `account`").WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectCommit()

	user := &auth.User{Username: "alice", Email: "alice@x.com", PasswordHash: "hash", DisplayName: "alice"}
	require.NoError(t, repository.Create(context.Background(), user))

	assert.Equal(t, int64(7), user.ID)
	assert.False(t, user.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

/*
TestMySQLUserRepository_CreateDuplicate maps MySQL error 1062 to ErrDuplicateUser.
*/
func TestMySQLUserRepository_CreateDuplicate(t *testing.T) {
	repository, mock := newMySQLRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `account`").
		WillReturnError(&mysqldriver.MySQLError{Number: 1062, Message: "Duplicate entry 'alice' for key 'username'"})
	mock.ExpectRollback()

	err := repository.Create(context.Background(), &auth.User{Username: "alice", Email: "alice@x.com"})
	assert.ErrorIs(t, err, auth.ErrDuplicateUser)
	assert.NoError(t, mock.ExpectationsWereMet())
}

/*
TestMySQLUserRepository_FindByID hydrates a row and reports missing rows.
*/
func TestMySQLUserRepository_FindByID(t *testing.T) {
	repository, mock := newMySQLRepository(t)
	createdAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectQuery("SELECT \\* FROM `account` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows(accountColumns).
			AddRow(7, "alice", "alice@x.com", "hash", "Alice", nil, createdAt))

	user, err := repository.FindByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, "Alice", user.DisplayName)
	assert.Nil(t, user.ProfileImage)
	assert.Equal(t, createdAt, user.CreatedAt)

	mock.ExpectQuery("SELECT \\* FROM `account` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows(accountColumns))

	_, err = repository.FindByID(context.Background(), 8)
	assert.ErrorIs(t, err, auth.ErrUserNotFound)

	connErr := errors.New("connection refused")
	mock.ExpectQuery("SELECT \\* FROM `account` WHERE id = \\?").WillReturnError(connErr)

	_, err = repository.FindByID(context.Background(), 9)
	assert.ErrorIs(t, err, connErr)
	assert.NotErrorIs(t, err, auth.ErrUserNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

/*
TestMySQLUserRepository_FindByLogin falls back to the email column.
*/
func TestMySQLUserRepository_FindByLogin(t *testing.T) {
	repository, mock := newMySQLRepository(t)

	mock.ExpectQuery("SELECT \\* FROM `account` WHERE username = \\?").
		WillReturnRows(sqlmock.NewRows(accountColumns))
	mock.ExpectQuery("SELECT \\* FROM `account` WHERE email = \\?").
		WillReturnRows(sqlmock.NewRows(accountColumns).
			AddRow(7, "alice", "alice@x.com", "hash", "alice", nil, time.Now()))

	user, err := repository.FindByLogin(context.Background(), "alice@x.com")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	mock.ExpectQuery("SELECT \\* FROM `account` WHERE username = \\?").
		WillReturnRows(sqlmock.NewRows(accountColumns))
	mock.ExpectQuery("SELECT \\* FROM `account` WHERE email = \\?").
		WillReturnRows(sqlmock.NewRows(accountColumns))

	_, err = repository.FindByLogin(context.Background(), "nobody")
	assert.ErrorIs(t, err, auth.ErrUserNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

/*
TestMySQLUserRepository_ExistsByUsernameOrEmail counts matches on either key.
*/
func TestMySQLUserRepository_ExistsByUsernameOrEmail(t *testing.T) {
	repository, mock := newMySQLRepository(t)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `account` WHERE username = \\? OR email = \\?").
		WithArgs("alice", "alice@x.com").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `account` WHERE username = \\? OR email = \\?").
		WithArgs("bob", "bob@x.com").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))

	exists, err := repository.ExistsByUsernameOrEmail(context.Background(), "alice", "alice@x.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repository.ExistsByUsernameOrEmail(context.Background(), "bob", "bob@x.com")
	require.NoError(t, err)
	assert.False(t, exists)

	assert.NoError(t, mock.ExpectationsWereMet())
}
