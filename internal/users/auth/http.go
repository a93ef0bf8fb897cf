// Copyright (c) 2026 GamerGrid. All rights reserved.
// Author: GamerGrid Team

package auth

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/DavidGolding200238/GamerGrid-2.0-sub000/internal/platform/ctxutil"
	"github.com/DavidGolding200238/GamerGrid-2.0-sub000/internal/platform/middleware"
	requestutil "github.com/DavidGolding200238/GamerGrid-2.0-sub000/internal/platform/request"
	"github.com/DavidGolding200238/GamerGrid-2.0-sub000/internal/platform/respond"
)

// # Definitions & Constructors

// Handler implements the account HTTP endpoints consumed by the SPA.
type Handler struct {
	authService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{authService: service}
}

// Routes returns a [chi.Router] configured with authentication-specific routes.
//
// # Endpoints
//   - POST /register : Creates a new account and returns a token.
//   - POST /login    : Authenticates and returns a token.
//   - POST /logout   : Acknowledges logout (revokes the token when a denylist is configured).
//   - GET  /profile  : Returns the caller's account. Token required.
//   - GET  /session  : Reports whether the presented token is usable. Token optional.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/register", handler.register)
	router.Post("/login", handler.login)

	router.Group(func(r chi.Router) {
		r.Use(middleware.OptionalToken(handler.authService))
		r.Post("/logout", handler.logout)
		r.Get("/session", handler.session)
	})

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireToken(handler.authService))
		r.Get("/profile", handler.profile)
	})

	return router
}

// # Request Payloads

type registerRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
}

// loginRequest takes the identity in "username"; it may hold an email.
// A bare "email" field is accepted when "username" is empty.
type loginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// # Response Payloads

type sessionResponse struct {
	Message     string `json:"message"`
	User        *User  `json:"user"`
	AccessToken string `json:"accessToken"`
}

type sessionStatus struct {
	Authenticated bool         `json:"authenticated"`
	User          *sessionUser `json:"user"`
}

type sessionUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

/*
Register handles the creation of a new user account.

POST /api/auth/register

Request:
  - Body: registerRequest (username, email, password, displayName?)

Response:
  - 201: {message, user, accessToken}
  - 400: Missing fields or short password
  - 409: Username or email already exists
*/
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	var input registerRequest
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.authService.Register(request.Context(), RegisterInput{
		Username:    input.Username,
		Email:       input.Email,
		Password:    input.Password,
		DisplayName: input.DisplayName,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, sessionResponse{
		Message:     MsgRegistered,
		User:        session.User,
		AccessToken: session.AccessToken,
	})
}

/*
Login authenticates a user by username or email.

POST /api/auth/login

Request:
  - Body: loginRequest (username, password)

Response:
  - 200: {message, user, accessToken}
  - 400: Missing fields
  - 401: Invalid username or password
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	login := input.Username
	if login == "" {
		login = input.Email
	}

	session, err := handler.authService.Login(request.Context(), LoginInput{
		Login:    login,
		Password: input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, sessionResponse{
		Message:     MsgLoggedIn,
		User:        session.User,
		AccessToken: session.AccessToken,
	})
}

/*
Logout acknowledges the end of a client session.

POST /api/auth/logout

Description: Always succeeds. A denylist failure is logged, not reported,
since the client discards its token either way.

Response:
  - 200: {message}
*/
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	if err := handler.authService.Logout(request.Context(), requestutil.Claims(request)); err != nil {
		ctxutil.GetLogger(request.Context()).ErrorContext(request.Context(), "logout_revoke_failed", slog.Any("error", err))
	}

	respond.OK(writer, map[string]string{FieldMessage: MsgLoggedOut})
}

/*
Profile returns the authenticated caller's account.

GET /api/auth/profile

Response:
  - 200: {user}
  - 401: Access token required
  - 403: Invalid or expired token
  - 404: User not found
*/
func (handler *Handler) profile(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.authService.GetProfile(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]*User{FieldUser: user})
}

/*
Session reports whether the presented token is usable.

GET /api/auth/session

Response:
  - 200: {authenticated, user}; user is null for anonymous callers
*/
func (handler *Handler) session(writer http.ResponseWriter, request *http.Request) {
	claims := requestutil.Claims(request)
	if claims == nil {
		respond.OK(writer, sessionStatus{Authenticated: false})
		return
	}

	respond.OK(writer, sessionStatus{
		Authenticated: true,
		User: &sessionUser{
			ID:       claims.UserID,
			Username: claims.Username,
			Email:    claims.Email,
		},
	})
}
