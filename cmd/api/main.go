// Copyright (c) 2026 GamerGrid. All rights reserved.
// Author: GamerGrid Team

// Command api is the entry point for the GamerGrid HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Open the credential store selected by DATABASE_DRIVER and migrate it.
//  4. Connect to Redis when REDIS_URL is set.
//  5. Wire the token service, account service and HTTP handlers.
//  6. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DavidGolding200238/GamerGrid-2.0-sub000/internal/api"
	"github.com/DavidGolding200238/GamerGrid-2.0-sub000/internal/platform/config"
	"github.com/DavidGolding200238/GamerGrid-2.0-sub000/internal/platform/constants"
	"github.com/DavidGolding200238/GamerGrid-2.0-sub000/internal/platform/migration"
	mysqlstore "github.com/DavidGolding200238/GamerGrid-2.0-sub000/internal/platform/mysql"
	pgstore "github.com/DavidGolding200238/GamerGrid-2.0-sub000/internal/platform/postgres"
	redisstore "github.com/DavidGolding200238/GamerGrid-2.0-sub000/internal/platform/redis"
	"github.com/DavidGolding200238/GamerGrid-2.0-sub000/internal/platform/sec"
	"github.com/DavidGolding200238/GamerGrid-2.0-sub000/internal/users/auth"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	log := newLogger(slog.LevelInfo)
	slog.SetDefault(log)

	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("database_driver", cfg.DatabaseDriver),
		slog.Bool("token_denylist", cfg.TokenDenylist),
	)

	// Root context for startup. A 30s deadline catches misconfiguration
	// quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. Credential Store ───────────────────────────────────────────────
	store, err := openUserStore(startupCtx, cfg, log)
	must(log, err, "open credential store")
	defer store.close()

	checks := store.checks

	// ── 4. Redis ──────────────────────────────────────────────────────────
	var denylist auth.TokenDenylist
	if cfg.RedisURL != "" {
		rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer func() {
			log.Info("closing_redis_client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis_close_error", slog.Any("error", cerr))
			}
		}()

		checks = append(checks, api.HealthCheck{
			Name:  "redis",
			Check: func(ctx context.Context) error { return redisstore.Ping(ctx, rdb) },
		})

		if cfg.TokenDenylist {
			denylist = auth.NewRedisTokenDenylist(rdb)
		}
	}

	// ── 5. Domain Wiring ──────────────────────────────────────────────────
	tokenService, err := sec.NewTokenService(cfg.JWTSecret, cfg.JWTTTL, constants.AuthIssuer)
	must(log, err, "initialize token service")

	authService := auth.NewService(store.repository, tokenService, denylist)
	authHandler := auth.NewHandler(authService)

	liveness, readiness := api.NewHealthHandlers(checks, log)

	// ── 6. HTTP Server ────────────────────────────────────────────────────
	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Auth:      authHandler,
	})

	// ── 7. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_startup_error", slog.Any("error", err))
	}

	log.Info("shutting_down_server", slog.Duration("timeout", constants.ShutdownTimeout))

	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("shutdown_error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server_stopped_cleanly")
}

// newLogger builds the JSON logger tagged with the application name.
func newLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})).With(slog.String("app", constants.AppName))
}

// userStore bundles the selected repository with its readiness check and cleanup.
type userStore struct {
	repository auth.UserRepository
	checks     []api.HealthCheck
	close      func()
}

// openUserStore connects the credential store chosen by DATABASE_DRIVER and
// brings its schema up to date.
func openUserStore(ctx context.Context, cfg *config.Config, log *slog.Logger) (*userStore, error) {
	switch cfg.DatabaseDriver {
	case config.DriverPostgres:
		pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, log)
		if err != nil {
			return nil, err
		}

		if err := migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, cfg.Debug, log); err != nil {
			pool.Close()
			return nil, err
		}

		return &userStore{
			repository: auth.NewPostgresUserRepository(pool),
			checks: []api.HealthCheck{{
				Name:  "postgres",
				Check: func(ctx context.Context) error { return pgstore.Ping(ctx, pool) },
			}},
			close: func() {
				log.Info("closing_postgres_pool")
				pool.Close()
			},
		}, nil

	case config.DriverMySQL:
		db, err := mysqlstore.Open(ctx, cfg.DatabaseURL, cfg.Debug, log)
		if err != nil {
			return nil, err
		}

		repository := auth.NewMySQLUserRepository(db)
		if err := repository.Migrate(ctx); err != nil {
			_ = mysqlstore.Close(db)
			return nil, err
		}

		return &userStore{
			repository: repository,
			checks: []api.HealthCheck{{
				Name:  "mysql",
				Check: func(ctx context.Context) error { return mysqlstore.Ping(ctx, db) },
			}},
			close: func() {
				log.Info("closing_mysql_pool")
				if err := mysqlstore.Close(db); err != nil {
					log.Error("mysql_close_error", slog.Any("error", err))
				}
			},
		}, nil

	case config.DriverMemory:
		log.Warn("using_in_memory_credential_store")
		return &userStore{
			repository: auth.NewMemoryUserRepository(),
			close:      func() {},
		}, nil
	}

	return nil, fmt.Errorf("unsupported database driver %q", cfg.DatabaseDriver)
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
