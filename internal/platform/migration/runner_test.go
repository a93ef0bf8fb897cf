// Copyright (c) 2026 GamerGrid. All rights reserved.
// Author: GamerGrid Team

package migration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DavidGolding200238/GamerGrid-2.0-sub000/internal/platform/migration"
)

func TestPgx5DSN(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"postgres://u:p@localhost:5432/gamergrid", "pgx5://u:p@localhost:5432/gamergrid"},
		{"postgresql://localhost/gamergrid?sslmode=disable", "pgx5://localhost/gamergrid?sslmode=disable"},
		{"pgx5://localhost/gamergrid", "pgx5://localhost/gamergrid"},
		{"host=localhost dbname=gamergrid", "host=localhost dbname=gamergrid"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, migration.Pgx5DSN(tt.in))
	}
}
