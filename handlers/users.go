package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"recipe-service/auth"
	"recipe-service/models"

	"github.com/umakantv/go-utils/cache"
	"github.com/umakantv/go-utils/errs"
	"go.uber.org/zap"
)

// UserHandler maps profile routes onto the credential service.
type UserHandler struct {
	service *auth.Service
	cache   cache.Cache
}

func NewUserHandler(service *auth.Service, c cache.Cache) *UserHandler {
	return &UserHandler{service: service, cache: c}
}

// UpdateProfile handles PUT /users/{id} - update any subset of profile
// fields; a provided password is re-hashed.
func (h *UserHandler) UpdateProfile(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		logRequest(ctx, "error", "Invalid user ID", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, errs.NewValidationError("Invalid user ID"))
		return
	}

	var req models.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logRequest(ctx, "error", "Invalid request body", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, errs.NewValidationError("Invalid JSON"))
		return
	}

	logRequest(ctx, "info", "Updating profile", zap.Int64("user_id", id))

	rows, err := h.service.UpdateProfile(id, req)
	if errors.Is(err, auth.ErrNoFields) {
		logRequest(ctx, "error", "No fields to update", zap.Int64("user_id", id))
		writeJSON(w, http.StatusBadRequest, errs.NewValidationError("No fields to update"))
		return
	}
	if err != nil {
		logRequest(ctx, "error", "Failed to update profile", zap.Error(err), zap.Int64("user_id", id))
		writeJSON(w, http.StatusInternalServerError, errs.NewInternalServerError("Failed to update profile"))
		return
	}
	if rows == 0 {
		logRequest(ctx, "info", "User not found for update", zap.Int64("user_id", id))
		writeJSON(w, http.StatusNotFound, errs.NewNotFoundError("User not found"))
		return
	}

	logRequest(ctx, "info", "Profile updated successfully", zap.Int64("user_id", id))
	writeJSON(w, http.StatusOK, map[string]string{"message": "Profile updated successfully"})
}

// DeleteAccount handles DELETE /users/{id}. The store's cascading
// rules clean up owned recipes and bookmarks.
func (h *UserHandler) DeleteAccount(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		logRequest(ctx, "error", "Invalid user ID", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, errs.NewValidationError("Invalid user ID"))
		return
	}

	logRequest(ctx, "info", "Deleting account", zap.Int64("user_id", id))

	rows, err := h.service.DeleteAccount(id)
	if err != nil {
		logRequest(ctx, "error", "Failed to delete account", zap.Error(err), zap.Int64("user_id", id))
		writeJSON(w, http.StatusInternalServerError, errs.NewInternalServerError("Failed to delete account"))
		return
	}
	if rows == 0 {
		logRequest(ctx, "info", "User not found for deletion", zap.Int64("user_id", id))
		writeJSON(w, http.StatusNotFound, errs.NewNotFoundError("User not found"))
		return
	}

	logRequest(ctx, "info", "Account deleted successfully", zap.Int64("user_id", id))
	writeJSON(w, http.StatusOK, map[string]string{"message": "Account deleted successfully"})
}
