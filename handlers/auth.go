package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"recipe-service/auth"
	"recipe-service/models"

	"github.com/google/uuid"
	"github.com/umakantv/go-utils/cache"
	"github.com/umakantv/go-utils/errs"
	"github.com/umakantv/go-utils/httpserver"
	"go.uber.org/zap"
)

// Sessions are kept in the cache under session:<id> and referenced by
// an httpOnly cookie.
const (
	sessionKeyPrefix = "session:"
	sessionCookie    = "session_id"
	sessionTTL       = 24 * time.Hour
)

// AuthHandler maps signup/login/logout/me onto the credential service.
type AuthHandler struct {
	service *auth.Service
	cache   cache.Cache
}

func NewAuthHandler(service *auth.Service, c cache.Cache) *AuthHandler {
	return &AuthHandler{service: service, cache: c}
}

// sessionInt64 tolerates the numeric types a cache round trip can
// produce: int64 in memory, float64 after JSON.
func sessionInt64(v interface{}) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		return int64(n)
	}
	return 0
}

func sessionString(v interface{}) string {
	s, _ := v.(string)
	return s
}

// SessionAuth returns a checkAuth func for the http server that admits
// requests carrying a live session cookie.
func SessionAuth(store cache.Cache) func(*http.Request) (bool, httpserver.RequestAuth) {
	return func(r *http.Request) (bool, httpserver.RequestAuth) {
		cookie, err := r.Cookie(sessionCookie)
		if err != nil {
			return false, httpserver.RequestAuth{}
		}
		cached, err := store.Get(sessionKeyPrefix + cookie.Value)
		if err != nil {
			return false, httpserver.RequestAuth{}
		}
		session, ok := cached.(map[string]interface{})
		if !ok {
			return false, httpserver.RequestAuth{}
		}
		return true, httpserver.RequestAuth{
			Type:   "session",
			Client: sessionString(session["email"]),
			Claims: session,
		}
	}
}

// Signup handles POST /signup.
func (h *AuthHandler) Signup(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logRequest(ctx, "error", "Invalid request body", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, errs.NewValidationError("Invalid JSON"))
		return
	}

	if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Mobile == "" || req.Password == "" {
		logRequest(ctx, "error", "Missing signup fields", zap.String("email", req.Email))
		writeJSON(w, http.StatusBadRequest, errs.NewValidationError("All fields are required"))
		return
	}

	logRequest(ctx, "info", "Signup request", zap.String("email", req.Email))

	user, err := h.service.Signup(req.FirstName, req.LastName, req.Email, req.Mobile, req.Password)
	if errors.Is(err, auth.ErrEmailTaken) {
		logRequest(ctx, "error", "Email already registered", zap.String("email", req.Email))
		writeJSON(w, http.StatusBadRequest, errs.NewValidationError("Email already registered"))
		return
	}
	if err != nil {
		logRequest(ctx, "error", "Signup failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errs.NewInternalServerError("Failed to create account"))
		return
	}

	logRequest(ctx, "info", "Account created", zap.Int64("user_id", user.ID))
	writeJSON(w, http.StatusCreated, user)
}

// Login handles POST /login: verifies credentials, stores a session in
// the cache, and sets the session cookie.
func (h *AuthHandler) Login(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logRequest(ctx, "error", "Invalid request body", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, errs.NewValidationError("Invalid JSON"))
		return
	}

	user, err := h.service.Login(req.Email, req.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		logRequest(ctx, "error", "Login rejected", zap.String("email", req.Email))
		writeJSON(w, http.StatusUnauthorized, errs.NewAuthenticationError("Invalid credentials"))
		return
	}
	if err != nil {
		logRequest(ctx, "error", "Login failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errs.NewInternalServerError("Server error"))
		return
	}

	sessionID := uuid.New().String()
	if h.cache != nil {
		h.cache.Set(sessionKeyPrefix+sessionID, map[string]interface{}{
			"user_id":    user.ID,
			"first_name": user.FirstName,
			"email":      user.Email,
		}, sessionTTL)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   int(sessionTTL / time.Second),
	})

	logRequest(ctx, "info", "Login successful", zap.Int64("user_id", user.ID))

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Logged in",
		"user":    user,
	})
}

// Logout handles POST /logout: drops the session and expires the cookie.
func (h *AuthHandler) Logout(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookie); err == nil && h.cache != nil {
		h.cache.Delete(sessionKeyPrefix + cookie.Value)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})

	logRequest(ctx, "info", "Logged out")
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

// Me handles GET /me: returns the session user.
func (h *AuthHandler) Me(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(sessionCookie)
	if err != nil || h.cache == nil {
		logRequest(ctx, "error", "No session cookie")
		writeJSON(w, http.StatusUnauthorized, errs.NewAuthenticationError("Not authenticated"))
		return
	}

	cached, err := h.cache.Get(sessionKeyPrefix + cookie.Value)
	if err != nil {
		logRequest(ctx, "error", "Session not found or expired")
		writeJSON(w, http.StatusUnauthorized, errs.NewAuthenticationError("Session invalid"))
		return
	}

	session, ok := cached.(map[string]interface{})
	if !ok {
		logRequest(ctx, "error", "Invalid session data type")
		writeJSON(w, http.StatusInternalServerError, errs.NewInternalServerError("Session error"))
		return
	}

	writeJSON(w, http.StatusOK, models.SessionUser{
		ID:        sessionInt64(session["user_id"]),
		FirstName: sessionString(session["first_name"]),
		Email:     sessionString(session["email"]),
	})
}
