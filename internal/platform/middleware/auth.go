// Copyright (c) 2026 GamerGrid. All rights reserved.
// Author: GamerGrid Team

package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/DavidGolding200238/GamerGrid-2.0-sub000/internal/platform/apperr"
	"github.com/DavidGolding200238/GamerGrid-2.0-sub000/internal/platform/constants"
	"github.com/DavidGolding200238/GamerGrid-2.0-sub000/internal/platform/ctxutil"
	"github.com/DavidGolding200238/GamerGrid-2.0-sub000/internal/platform/respond"
	"github.com/DavidGolding200238/GamerGrid-2.0-sub000/internal/platform/sec"
)

// TokenVerifier defines the interface needed to verify tokens in middleware.
//
// Defining it here decouples the middleware from the account service, which
// also consults the revocation denylist when one is configured.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (*sec.AuthClaims, error)
}

// AuthMode selects how [Authenticate] treats a missing or invalid token.
type AuthMode int

const (
	// ModeRequired rejects the request when no valid token is presented.
	ModeRequired AuthMode = iota

	// ModeOptional lets the request through anonymously instead.
	ModeOptional
)

var (
	errTokenRequired = apperr.Unauthorized("Access token required")
	errTokenInvalid  = apperr.Forbidden("Invalid or expired token")
)

// Authenticate extracts and verifies the JWT from the Authorization header.
//
// # Flow
//  1. Read 'Authorization: Bearer <token>'. Other schemes count as absent.
//  2. Absent: 401 in required mode, anonymous pass-through in optional mode.
//  3. Verify via [TokenVerifier]. Failure: 403 in required mode, warning log
//     and anonymous pass-through in optional mode.
//  4. Inject [*sec.AuthClaims] into the request context and tag the request
//     logger with the user id.
func Authenticate(verifier TokenVerifier, mode AuthMode) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			token, found := BearerToken(request)

			// ── 1. Missing Credentials ────────────────────────────────────────
			if !found {
				if mode == ModeOptional {
					next.ServeHTTP(writer, request)
					return
				}
				respond.Error(writer, request, errTokenRequired)
				return
			}

			// ── 2. Token Verification ─────────────────────────────────────────
			claims, err := verifier.VerifyToken(request.Context(), token)
			if err != nil {
				if mode == ModeOptional {
					ctxutil.GetLogger(request.Context()).WarnContext(request.Context(), "optional_auth_token_rejected",
						slog.String("error", err.Error()),
					)
					next.ServeHTTP(writer, request)
					return
				}
				respond.Error(writer, request, errTokenInvalid)
				return
			}

			// ── 3. Context Injection ──────────────────────────────────────────
			ctx := ctxutil.WithAuthUser(request.Context(), claims)
			ctx = ctxutil.WithLogger(ctx, ctxutil.GetLogger(ctx).With(slog.Int64("user_id", claims.UserID)))
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireToken is [Authenticate] in [ModeRequired].
func RequireToken(verifier TokenVerifier) func(http.Handler) http.Handler {
	return Authenticate(verifier, ModeRequired)
}

// OptionalToken is [Authenticate] in [ModeOptional].
func OptionalToken(verifier TokenVerifier) func(http.Handler) http.Handler {
	return Authenticate(verifier, ModeOptional)
}

// BearerToken returns the token from an 'Authorization: Bearer' header.
// The scheme is matched case-insensitively; an empty token counts as absent.
func BearerToken(request *http.Request) (string, bool) {
	header := strings.TrimSpace(request.Header.Get(constants.HeaderAuthorization))
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, constants.AuthScheme) {
		return "", false
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}
	return token, true
}
