package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"recipe-service/models"
	"recipe-service/recipes"

	"github.com/umakantv/go-utils/cache"
	"github.com/umakantv/go-utils/errs"
	"go.uber.org/zap"
)

const (
	recipeListCacheKey = "recipes:all"
	recipeListCacheTTL = 5 * time.Minute
)

// RecipeHandler maps recipe routes onto the access layer. The full
// catalogue response is cached and invalidated by every mutation.
type RecipeHandler struct {
	manager *recipes.Manager
	cache   cache.Cache
}

// NewRecipeHandler creates a recipe handler. A nil cache disables
// response caching.
func NewRecipeHandler(manager *recipes.Manager, c cache.Cache) *RecipeHandler {
	return &RecipeHandler{manager: manager, cache: c}
}

func (h *RecipeHandler) cachedList() ([]byte, bool) {
	if h.cache == nil {
		return nil, false
	}
	cached, err := h.cache.Get(recipeListCacheKey)
	if err != nil {
		return nil, false
	}
	body, ok := cached.([]byte)
	return body, ok
}

func (h *RecipeHandler) storeList(body []byte) {
	if h.cache != nil {
		h.cache.Set(recipeListCacheKey, body, recipeListCacheTTL)
	}
}

func (h *RecipeHandler) invalidateList() {
	if h.cache != nil {
		h.cache.Delete(recipeListCacheKey)
	}
}

// CreateRecipe handles POST /recipes.
func (h *RecipeHandler) CreateRecipe(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	var req models.CreateRecipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logRequest(ctx, "error", "Invalid request body", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, errs.NewValidationError("Invalid JSON"))
		return
	}

	logRequest(ctx, "info", "Creating recipe", zap.String("title", req.Title))

	res := h.manager.AddRecipe(req)
	if !res.Success {
		logRequest(ctx, "error", "Create recipe failed", zap.String("reason", res.Message))
		writeJSON(w, statusFor(res), res)
		return
	}

	h.invalidateList()
	logRequest(ctx, "info", "Recipe created successfully")
	writeJSON(w, http.StatusCreated, res)
}

// ListRecipes handles GET /recipes with optional user_id and title
// query filters. The unfiltered catalogue is served from cache when
// possible.
func (h *RecipeHandler) ListRecipes(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	userID, err := queryUserID(r)
	if err != nil {
		logRequest(ctx, "error", "Invalid user_id filter", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, errs.NewValidationError("Invalid user_id"))
		return
	}
	title := r.URL.Query().Get("title")

	unfiltered := userID == nil && title == ""
	if unfiltered {
		if body, ok := h.cachedList(); ok {
			logRequest(ctx, "debug", "Serving recipe list from cache")
			w.Header().Set("Content-Type", "application/json")
			w.Write(body)
			return
		}
	}

	logRequest(ctx, "info", "Listing recipes")

	var res recipes.Result
	if unfiltered {
		res = h.manager.FetchAllRecipes()
	} else {
		res = h.manager.FetchRecipes(userID, title)
	}
	if !res.Success {
		logRequest(ctx, "error", "List recipes failed", zap.String("reason", res.Message))
		writeJSON(w, statusFor(res), res)
		return
	}

	body, _ := json.Marshal(res)
	if unfiltered {
		h.storeList(body)
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}

// SearchRecipes handles GET /recipes/search?title=...&user_id=...
func (h *RecipeHandler) SearchRecipes(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	userID, err := queryUserID(r)
	if err != nil {
		logRequest(ctx, "error", "Invalid user_id filter", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, errs.NewValidationError("Invalid user_id"))
		return
	}
	title := r.URL.Query().Get("title")

	logRequest(ctx, "info", "Searching recipes", zap.String("title", title))

	res := h.manager.SearchRecipesByTitle(title, userID)
	writeJSON(w, statusFor(res), res)
}

// UpdateRecipe handles PUT /recipes/{id}.
func (h *RecipeHandler) UpdateRecipe(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		logRequest(ctx, "error", "Invalid recipe ID", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, errs.NewValidationError("Invalid recipe ID"))
		return
	}

	var req models.UpdateRecipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logRequest(ctx, "error", "Invalid request body", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, errs.NewValidationError("Invalid JSON"))
		return
	}

	logRequest(ctx, "info", "Updating recipe", zap.Int64("recipe_id", id))

	res := h.manager.ModifyRecipe(id, req.Updates)
	if res.Success {
		h.invalidateList()
		logRequest(ctx, "info", "Recipe updated successfully", zap.Int64("recipe_id", id))
	} else {
		logRequest(ctx, "error", "Update recipe failed", zap.Int64("recipe_id", id), zap.String("reason", res.Message))
	}
	writeJSON(w, statusFor(res), res)
}

// DeleteRecipe handles DELETE /recipes/{id}.
func (h *RecipeHandler) DeleteRecipe(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		logRequest(ctx, "error", "Invalid recipe ID", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, errs.NewValidationError("Invalid recipe ID"))
		return
	}

	logRequest(ctx, "info", "Deleting recipe", zap.Int64("recipe_id", id))

	res := h.manager.RemoveRecipe(id)
	if res.Success {
		h.invalidateList()
		logRequest(ctx, "info", "Recipe deleted successfully", zap.Int64("recipe_id", id))
	} else {
		logRequest(ctx, "error", "Delete recipe failed", zap.Int64("recipe_id", id), zap.String("reason", res.Message))
	}
	writeJSON(w, statusFor(res), res)
}
