// Copyright (c) 2026 GamerGrid. All rights reserved.
// Author: GamerGrid Team

// Package mysql provides the managed gorm connection for the MySQL credential
// store, which is what the GamerGrid backend historically ran on.
//
// # Architecture
//
// gorm is opened with TranslateError so that duplicate-key failures surface
// as [gorm.ErrDuplicatedKey]. The underlying database/sql pool is bounded the
// same way as the PostgreSQL pool.
package mysql

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Pool settings mirror the PostgreSQL store.
const (
	maxOpenConns    = 25
	maxIdleConns    = 5
	maxConnLifetime = 60 * time.Minute
	maxConnIdleTime = 10 * time.Minute
	pingTimeout     = 2 * time.Second
)

// Open connects to MySQL and validates the connection.
//
// # Parameters
//   - ctx: Context for the initial ping.
//   - dsn: A go-sql-driver DSN, e.g. "user:pass@tcp(host:3306)/gamergrid?parseTime=true".
//   - debug: Enables gorm's SQL statement logging.
//   - logger: Structured logger for connection events.
func Open(ctx context.Context, dsn string, debug bool, logger *slog.Logger) (*gorm.DB, error) {
	return OpenDialector(ctx, gormmysql.Open(dsn), debug, logger)
}

// OpenDialector is [Open] for a pre-built dialector.
func OpenDialector(ctx context.Context, dialector gorm.Dialector, debug bool, logger *slog.Logger) (*gorm.DB, error) {
	logLevel := gormlogger.Silent
	if debug {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("mysql: failed to open: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("mysql: failed to access pool: %w", err)
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(maxConnLifetime)
	sqlDB.SetConnMaxIdleTime(maxConnIdleTime)

	if err := Ping(ctx, db); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	logger.Info("mysql_connected", slog.Int("max_open_conns", maxOpenConns))

	return db, nil
}

// Ping verifies that the MySQL connection is healthy.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("mysql: failed to access pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := sqlDB.PingContext(pingCtx); err != nil {
		return fmt.Errorf("mysql: ping failed: %w", err)
	}

	return nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
