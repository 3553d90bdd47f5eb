package handlers

import (
	"context"
	"net/http"

	"github.com/umakantv/go-utils/errs"
	"go.uber.org/zap"
)

// savedIDs extracts the userId/recipeId pair shared by the bookmark routes.
func savedIDs(r *http.Request) (userID, recipeID int64, err error) {
	userID, err = pathID(r, "userId")
	if err != nil {
		return 0, 0, err
	}
	recipeID, err = pathID(r, "recipeId")
	return userID, recipeID, err
}

// SaveRecipe handles POST /users/{userId}/saved/{recipeId}.
func (h *RecipeHandler) SaveRecipe(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	userID, recipeID, err := savedIDs(r)
	if err != nil {
		logRequest(ctx, "error", "Invalid bookmark IDs", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, errs.NewValidationError("Invalid user or recipe ID"))
		return
	}

	logRequest(ctx, "info", "Saving recipe", zap.Int64("user_id", userID), zap.Int64("recipe_id", recipeID))

	res := h.manager.SaveUserRecipe(userID, recipeID)
	writeJSON(w, statusFor(res), res)
}

// ListSavedRecipes handles GET /users/{userId}/saved.
func (h *RecipeHandler) ListSavedRecipes(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		logRequest(ctx, "error", "Invalid user ID", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, errs.NewValidationError("Invalid user ID"))
		return
	}

	logRequest(ctx, "info", "Listing saved recipes", zap.Int64("user_id", userID))

	res := h.manager.FetchSavedRecipes(userID)
	writeJSON(w, statusFor(res), res)
}

// UnsaveRecipe handles DELETE /users/{userId}/saved/{recipeId}.
func (h *RecipeHandler) UnsaveRecipe(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	userID, recipeID, err := savedIDs(r)
	if err != nil {
		logRequest(ctx, "error", "Invalid bookmark IDs", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, errs.NewValidationError("Invalid user or recipe ID"))
		return
	}

	logRequest(ctx, "info", "Removing saved recipe", zap.Int64("user_id", userID), zap.Int64("recipe_id", recipeID))

	res := h.manager.UnsaveUserRecipe(userID, recipeID)
	writeJSON(w, statusFor(res), res)
}
