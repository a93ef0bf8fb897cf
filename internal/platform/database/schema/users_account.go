// Copyright (c) 2026 GamerGrid. All rights reserved.
// Author: GamerGrid Team

// Package schema names the PostgreSQL tables and columns created by the
// migrations, so that hand-written SQL never spells them inline.
package schema

import "strings"

// UserAccountTable represents the 'users.account' table
type UserAccountTable struct {
	Table        string
	ID           string
	Username     string
	Email        string
	PasswordHash string
	DisplayName  string
	ProfileImage string
	CreatedAt    string
}

// UserAccount is the schema definition for users.account
var UserAccount = UserAccountTable{
	Table:        "users.account",
	ID:           "id",
	Username:     "username",
	Email:        "email",
	PasswordHash: "passwordhash",
	DisplayName:  "displayname",
	ProfileImage: "profileimage",
	CreatedAt:    "createdat",
}

// Columns returns all column names in scan order.
func (t UserAccountTable) Columns() []string {
	return []string{
		t.ID, t.Username, t.Email, t.PasswordHash,
		t.DisplayName, t.ProfileImage, t.CreatedAt,
	}
}

// SelectList returns Columns joined for a SELECT clause.
func (t UserAccountTable) SelectList() string {
	return strings.Join(t.Columns(), ", ")
}
