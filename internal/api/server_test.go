// Copyright (c) 2026 GamerGrid. All rights reserved.
// Author: GamerGrid Team

package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DavidGolding200238/GamerGrid-2.0-sub000/internal/api"
	"github.com/DavidGolding200238/GamerGrid-2.0-sub000/internal/platform/config"
	"github.com/DavidGolding200238/GamerGrid-2.0-sub000/internal/platform/sec"
	"github.com/DavidGolding200238/GamerGrid-2.0-sub000/internal/users/auth"
)

// # Helpers

func newTestConfig() *config.Config {
	return &config.Config{
		ServerPort:     "0",
		Environment:    "test",
		DatabaseDriver: config.DriverMemory,
		JWTSecret:      "server-test-secret",
		JWTTTL:         time.Hour,
		CORSOrigins:    []string{"http://localhost:3000"},
		RateLimitRPS:   100,
		RateLimitBurst: 100,
	}
}

func newTestServer(t *testing.T, cfg *config.Config, checks []api.HealthCheck) http.Handler {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	logger := slog.New(slog.DiscardHandler)

	tokens, err := sec.NewTokenService(cfg.JWTSecret, cfg.JWTTTL, "gamergrid-api")
	require.NoError(t, err)

	service := auth.NewService(auth.NewMemoryUserRepository(), tokens, nil)
	liveness, readiness := api.NewHealthHandlers(checks, logger)

	server := api.NewServer(ctx, cfg, logger, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Auth:      auth.NewHandler(service),
	})
	return server.Handler()
}

func send(t *testing.T, handler http.Handler, method, path, body, token string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var request *http.Request
	if body == "" {
		request = httptest.NewRequest(method, path, nil)
	} else {
		request = httptest.NewRequest(method, path, strings.NewReader(body))
		request.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	var decoded map[string]any
	if recorder.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &decoded), recorder.Body.String())
	}
	return recorder, decoded
}

// # Health

/*
TestHealth_Liveness always reports ok.
*/
func TestHealth_Liveness(t *testing.T) {
	handler := newTestServer(t, newTestConfig(), nil)

	recorder, body := send(t, handler, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, recorder.Header().Get("X-Request-ID"))
}

/*
TestHealth_Readiness reports 503 with per-check detail when a dependency is down.
*/
func TestHealth_Readiness(t *testing.T) {
	healthy := api.HealthCheck{Name: "postgres", Check: func(context.Context) error { return nil }}
	failing := api.HealthCheck{Name: "redis", Check: func(context.Context) error { return errors.New("dial tcp: refused") }}

	t.Run("ready", func(t *testing.T) {
		handler := newTestServer(t, newTestConfig(), []api.HealthCheck{healthy})

		recorder, body := send(t, handler, http.MethodGet, "/ready", "", "")
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "ready", body["status"])
	})

	t.Run("degraded", func(t *testing.T) {
		handler := newTestServer(t, newTestConfig(), []api.HealthCheck{healthy, failing})

		recorder, body := send(t, handler, http.MethodGet, "/ready", "", "")
		assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
		assert.Equal(t, "degraded", body["status"])

		checks := body["checks"].([]any)
		require.Len(t, checks, 2)
		assert.Equal(t, true, checks[0].(map[string]any)["ok"])
		assert.Equal(t, false, checks[1].(map[string]any)["ok"])
		assert.Equal(t, "dial tcp: refused", checks[1].(map[string]any)["error"])
	})
}

// # Routing

/*
TestServer_AuthFlow runs register, profile and login through the full middleware chain.
*/
func TestServer_AuthFlow(t *testing.T) {
	handler := newTestServer(t, newTestConfig(), nil)

	recorder, body := send(t, handler, http.MethodPost, "/api/auth/register",
		`{"username":"alice","email":"alice@x.com","password":"secret1"}`, "")
	require.Equal(t, http.StatusCreated, recorder.Code)
	token := body["accessToken"].(string)

	recorder, body = send(t, handler, http.MethodGet, "/api/auth/profile", "", token)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "alice", body["user"].(map[string]any)["username"])

	recorder, body = send(t, handler, http.MethodPost, "/api/auth/login",
		`{"username":"alice","password":"wrong"}`, "")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Equal(t, "Invalid username or password", body["error"])

	recorder, _ = send(t, handler, http.MethodGet, "/api/auth/profile", "", "")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

/*
TestServer_CORSPreflight answers preflights for configured origins.
*/
func TestServer_CORSPreflight(t *testing.T) {
	handler := newTestServer(t, newTestConfig(), nil)

	request := httptest.NewRequest(http.MethodOptions, "/api/auth/login", nil)
	request.Header.Set("Origin", "http://localhost:3000")
	request.Header.Set("Access-Control-Request-Method", http.MethodPost)
	request.Header.Set("Access-Control-Request-Headers", "authorization,content-type")

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, "http://localhost:3000", recorder.Header().Get("Access-Control-Allow-Origin"))
}

/*
TestServer_RateLimit returns 429 once a client exhausts its burst.
*/
func TestServer_RateLimit(t *testing.T) {
	cfg := newTestConfig()
	cfg.RateLimitRPS = 1
	cfg.RateLimitBurst = 2
	handler := newTestServer(t, cfg, nil)

	for i := 0; i < 2; i++ {
		recorder, _ := send(t, handler, http.MethodGet, "/health", "", "")
		require.Equal(t, http.StatusOK, recorder.Code)
	}

	recorder, body := send(t, handler, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusTooManyRequests, recorder.Code)
	assert.Equal(t, "1", recorder.Header().Get("Retry-After"))
	assert.Equal(t, "RATE_LIMITED", body["code"])
}

/*
TestServer_UnknownRoute falls through to 404.
*/
func TestServer_UnknownRoute(t *testing.T) {
	handler := newTestServer(t, newTestConfig(), nil)

	request := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
