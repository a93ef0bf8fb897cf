// Copyright (c) 2026 GamerGrid. All rights reserved.
// Author: GamerGrid Team

/*
Package requestutil provides utilities for extracting data from HTTP requests.

It abstracts common body decoding and identity lookups, ensuring consistent
error handling and type safety across handlers.
*/
package requestutil

import (
	"encoding/json"
	"net/http"

	"github.com/DavidGolding200238/GamerGrid-2.0-sub000/internal/platform/apperr"
	"github.com/DavidGolding200238/GamerGrid-2.0-sub000/internal/platform/ctxutil"
	"github.com/DavidGolding200238/GamerGrid-2.0-sub000/internal/platform/sec"
	"github.com/DavidGolding200238/GamerGrid-2.0-sub000/internal/platform/validate"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - writer: http.ResponseWriter (used to enforce the body size cap)
  - request: *http.Request
  - target: interface{} (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(writer http.ResponseWriter, request *http.Request, target interface{}) error {
	request.Body = http.MaxBytesReader(writer, request.Body, maxBodyBytes)
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
Claims extracts the authenticated user claims from the request context.

Returns nil if the request is not authenticated.
*/
func Claims(request *http.Request) *sec.AuthClaims {
	return ctxutil.GetAuthUser(request.Context())
}

/*
RequiredUserID returns the User ID of the currently logged-in user.

Returns:
  - int64: User ID taken from verified token claims
  - error: apperr.Unauthorized if not authenticated
*/
func RequiredUserID(request *http.Request) (int64, error) {
	claims := ctxutil.GetAuthUser(request.Context())
	if claims == nil {
		return 0, apperr.Unauthorized("Access token required")
	}

	return claims.UserID, nil
}
