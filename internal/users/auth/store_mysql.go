// Copyright (c) 2026 GamerGrid. All rights reserved.
// Author: GamerGrid Team

package auth

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/DavidGolding200238/GamerGrid-2.0-sub000/internal/platform/dberr"
)

// accountRecord is the gorm mapping of the MySQL account table.
//
// Username and Email use a binary collation so that lookups and the unique
// indexes compare exact bytes, matching the Postgres text columns.
type accountRecord struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	Username     string    `gorm:"type:varchar(64) CHARACTER SET utf8mb4 COLLATE utf8mb4_bin;uniqueIndex;not null"`
	Email        string    `gorm:"type:varchar(255) CHARACTER SET utf8mb4 COLLATE utf8mb4_bin;uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	DisplayName  string    `gorm:"type:varchar(100);not null"`
	ProfileImage *string   `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName pins the table name instead of gorm's pluralized default.
func (accountRecord) TableName() string {
	return "account"
}

func (record *accountRecord) toUser() *User {
	return &User{
		ID:           record.ID,
		Username:     record.Username,
		Email:        record.Email,
		PasswordHash: record.PasswordHash,
		DisplayName:  record.DisplayName,
		ProfileImage: record.ProfileImage,
		CreatedAt:    record.CreatedAt,
	}
}

// # User Repository

// MySQLUserRepository implements the UserRepository interface using gorm.
type MySQLUserRepository struct {
	db *gorm.DB
}

// NewMySQLUserRepository creates a new MySQL implementation of the UserRepository.
func NewMySQLUserRepository(db *gorm.DB) *MySQLUserRepository {
	return &MySQLUserRepository{db: db}
}

// Migrate creates or updates the account table and its unique indexes.
func (repository *MySQLUserRepository) Migrate(context context.Context) error {
	if err := repository.db.WithContext(context).AutoMigrate(&accountRecord{}); err != nil {
		return fmt.Errorf("mysql_user_repo_migrate_failed: %w", err)
	}
	return nil
}

/*
Create inserts a new account row; gorm writes back the auto-increment ID.

Parameters:
  - context: context.Context
  - user: *User

Returns:
  - error: ErrDuplicateUser on a unique violation, or persistence failures
*/
func (repository *MySQLUserRepository) Create(context context.Context, user *User) error {
	record := &accountRecord{
		Username:     user.Username,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		DisplayName:  user.DisplayName,
		ProfileImage: user.ProfileImage,
		CreatedAt:    time.Now().UTC(),
	}

	if err := repository.db.WithContext(context).Create(record).Error; err != nil {
		if dberr.IsUniqueViolation(err) {
			return ErrDuplicateUser
		}
		return fmt.Errorf("mysql_user_repo_create_failed: %w", err)
	}

	user.ID = record.ID
	user.CreatedAt = record.CreatedAt
	return nil
}

/*
FindByID retrieves an account by primary key.

Parameters:
  - context: context.Context
  - id: int64

Returns:
  - *User: Hydrated entity
  - error: ErrUserNotFound or database errors
*/
func (repository *MySQLUserRepository) FindByID(context context.Context, id int64) (*User, error) {
	var record accountRecord
	if err := repository.db.WithContext(context).Where("id = ?", id).Take(&record).Error; err != nil {
		if dberr.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("mysql_user_repo_find_by_id_failed: %w", err)
	}

	return record.toUser(), nil
}

/*
FindByLogin retrieves an account by username, then by email.

Parameters:
  - context: context.Context
  - login: string

Returns:
  - *User: Hydrated entity
  - error: ErrUserNotFound or database errors
*/
func (repository *MySQLUserRepository) FindByLogin(context context.Context, login string) (*User, error) {
	for _, column := range []string{"username", "email"} {
		var record accountRecord
		err := repository.db.WithContext(context).Where(column+" = ?", login).Take(&record).Error
		if err == nil {
			return record.toUser(), nil
		}
		if !dberr.IsNotFound(err) {
			return nil, fmt.Errorf("mysql_user_repo_find_by_login_failed: %w", err)
		}
	}

	return nil, ErrUserNotFound
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
func (repository *MySQLUserRepository) ExistsByUsernameOrEmail(context context.Context, username, email string) (bool, error) {
	var count int64
	err := repository.db.WithContext(context).
		Model(&accountRecord{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("mysql_user_repo_exists_failed: %w", err)
	}

	return count > 0, nil
}
