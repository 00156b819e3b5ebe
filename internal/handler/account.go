package handler

import (
	"log/slog"
	"net/http"
	"time"

	"projectboard/internal/auth"
	"projectboard/internal/domain/models"
	"projectboard/internal/domain/services"
	"projectboard/internal/httputil"
)

// AccountHandler handles registration, login and logout
type AccountHandler struct {
	accounts     services.AccountService
	codec        auth.SessionCodec
	stores       services.StoreProvider
	secureCookie bool
	logger       *slog.Logger
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(
	accounts services.AccountService,
	codec auth.SessionCodec,
	stores services.StoreProvider,
	secureCookie bool,
	logger *slog.Logger,
) *AccountHandler {
	return &AccountHandler{
		accounts:     accounts,
		codec:        codec,
		stores:       stores,
		secureCookie: secureCookie,
		logger:       logger,
	}
}

// LoginResponse is returned by a successful login. The token is also set as
// the session cookie; non-browser clients send it as a bearer token.
type LoginResponse struct {
	Session   models.Session `json:"session"`
	Token     string         `json:"token"`
	ExpiresAt time.Time      `json:"expiresAt"`
}

// Register creates an account
// POST /api/register
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req services.RegisterRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.accounts.Register(r.Context(), &req); err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, map[string]string{"username": req.Username})
}

// Login checks credentials and starts a session
// POST /api/login
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req services.LoginRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	session, err := h.accounts.Login(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	token, expiresAt, err := h.codec.Issue(*session)
	if err != nil {
		h.logger.Error("failed to issue session token", "error", err)
		httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	setSessionCookie(w, token, expiresAt, h.secureCookie)
	httputil.RespondJSON(w, http.StatusOK, LoginResponse{
		Session:   *session,
		Token:     token,
		ExpiresAt: expiresAt,
	})
}

// Logout ends the session and forgets its dashboard state
// POST /api/logout
func (h *AccountHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if session, ok := httputil.GetSession(r); ok {
		h.stores.Drop(session)
		h.logger.Info("user logged out", "username", session.Username, "owner_id", session.OwnerID)
	}

	clearSessionCookie(w, h.secureCookie)
	httputil.RespondNoContent(w)
}
