// Package recipes is the access layer between transport handlers and
// the persistence gateway. Every operation returns a Result envelope;
// validation failures are reported before any store access.
package recipes

import (
	"fmt"
	"time"

	"recipe-service/models"
	"recipe-service/store"
)

// Store is the slice of the persistence gateway the manager needs,
// narrowed to an interface so tests can substitute a fake.
type Store interface {
	Insert(table, idColumn string, record map[string]interface{}) (int64, error)
	Select(dest interface{}, table string, f store.Filters) error
	Update(table string, f store.Filters, patch map[string]interface{}) (int64, error)
	Delete(table string, f store.Filters) (int64, error)
}

// Result is the envelope returned by every manager operation.
type Result struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

const (
	recipesTable = "recipes"
	savedTable   = "saved_recipes"
)

// updatableColumns guards ModifyRecipe against writes to identifier,
// provenance or timestamp columns.
var updatableColumns = map[string]bool{
	"title":        true,
	"description":  true,
	"instructions": true,
	"ingredients":  true,
	"prep_time":    true,
	"image_url":    true,
	"allergens":    true,
}

type Manager struct {
	store Store
}

func NewManager(s Store) *Manager {
	return &Manager{store: s}
}

func failure(message string) Result {
	return Result{Success: false, Message: message}
}

func success(message string, data interface{}) Result {
	return Result{Success: true, Message: message, Data: data}
}

func byRecipe(recipeID int64) store.Filters {
	return store.Filters{Eq: map[string]interface{}{"recipe_id": recipeID}}
}

func byBookmark(userID, recipeID int64) store.Filters {
	return store.Filters{Eq: map[string]interface{}{"user_id": userID, "recipe_id": recipeID}}
}

// AddRecipe validates the mandatory fields and inserts a new recipe.
func (m *Manager) AddRecipe(req models.CreateRecipeRequest) Result {
	if req.Title == "" || req.Description == "" {
		return failure("Title and Description are required")
	}
	now := time.Now()
	record := map[string]interface{}{
		"title":        req.Title,
		"description":  req.Description,
		"instructions": req.Instructions,
		"ingredients":  req.Ingredients,
		"prep_time":    req.PrepTime,
		"image_url":    req.ImageURL,
		"allergens":    req.Allergens,
		"source":       "Custom",
		"created_at":   now,
		"updated_at":   now,
	}
	if req.UserID != nil {
		record["user_id"] = *req.UserID
	}
	id, err := m.store.Insert(recipesTable, "recipe_id", record)
	if err != nil {
		return failure("Failed to add recipe")
	}
	return success("Recipe added successfully", models.Recipe{
		ID:           id,
		UserID:       req.UserID,
		Title:        req.Title,
		Description:  req.Description,
		Instructions: req.Instructions,
		Ingredients:  req.Ingredients,
		PrepTime:     req.PrepTime,
		ImageURL:     req.ImageURL,
		Allergens:    req.Allergens,
		Source:       "Custom",
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

// FetchRecipes lists recipes, optionally filtered by owner and/or a
// case-insensitive title substring. An empty result set is a valid
// result, not an error.
func (m *Manager) FetchRecipes(userID *int64, titleSearch string) Result {
	f := store.Filters{OrderBy: "created_at DESC"}
	if userID != nil {
		f.Eq = map[string]interface{}{"user_id": *userID}
	}
	if titleSearch != "" {
		f.Like = &store.Like{Column: "title", Substring: titleSearch}
	}
	var list []models.Recipe
	if err := m.store.Select(&list, recipesTable, f); err != nil {
		return failure("Failed to fetch recipes")
	}
	if list == nil {
		list = []models.Recipe{}
	}
	return success("Recipes fetched successfully", list)
}

// FetchAllRecipes lists the whole catalogue.
func (m *Manager) FetchAllRecipes() Result {
	res := m.FetchRecipes(nil, "")
	if res.Success {
		res.Message = "All recipes fetched successfully"
	}
	return res
}

// ModifyRecipe applies a column patch to one recipe. Columns outside
// the updatable set are dropped; an effectively empty patch is
// rejected before any store access.
func (m *Manager) ModifyRecipe(recipeID int64, updates map[string]interface{}) Result {
	patch := map[string]interface{}{}
	for col, val := range updates {
		if updatableColumns[col] {
			patch[col] = val
		}
	}
	if len(patch) == 0 {
		return failure("No update data provided")
	}
	patch["updated_at"] = time.Now()

	rows, err := m.store.Update(recipesTable, byRecipe(recipeID), patch)
	if err != nil {
		return failure("Recipe update failed")
	}
	if rows == 0 {
		return failure("Recipe not found")
	}

	var updated []models.Recipe
	if err := m.store.Select(&updated, recipesTable, byRecipe(recipeID)); err == nil && len(updated) > 0 {
		return success("Recipe updated successfully", updated[0])
	}
	return success("Recipe updated successfully", nil)
}

// RemoveRecipe deletes one recipe by identifier.
func (m *Manager) RemoveRecipe(recipeID int64) Result {
	rows, err := m.store.Delete(recipesTable, byRecipe(recipeID))
	if err != nil {
		return failure("Recipe delete failed")
	}
	if rows == 0 {
		return failure("Recipe not found")
	}
	return success("Recipe deleted successfully", nil)
}

// SaveUserRecipe bookmarks a recipe for a user. Saving an already
// saved recipe is idempotent: the existing bookmark is reported as
// success and no second row is written.
func (m *Manager) SaveUserRecipe(userID, recipeID int64) Result {
	var existing []models.SavedRecipe
	if err := m.store.Select(&existing, savedTable, byBookmark(userID, recipeID)); err != nil {
		return failure("Failed to save recipe")
	}
	if len(existing) > 0 {
		return success("Recipe already saved", existing[0])
	}

	now := time.Now()
	record := map[string]interface{}{
		"user_id":    userID,
		"recipe_id":  recipeID,
		"created_at": now,
	}
	if _, err := m.store.Insert(savedTable, "", record); err != nil {
		return failure("Failed to save recipe")
	}
	return success("Recipe saved successfully", models.SavedRecipe{
		UserID:    userID,
		RecipeID:  recipeID,
		CreatedAt: now,
	})
}

// FetchSavedRecipes lists a user's bookmarks.
func (m *Manager) FetchSavedRecipes(userID int64) Result {
	var saved []models.SavedRecipe
	f := store.Filters{Eq: map[string]interface{}{"user_id": userID}, OrderBy: "created_at DESC"}
	if err := m.store.Select(&saved, savedTable, f); err != nil {
		return failure("Failed to fetch saved recipes")
	}
	if saved == nil {
		saved = []models.SavedRecipe{}
	}
	return success("Saved recipes fetched successfully", saved)
}

// SearchRecipesByTitle finds recipes whose title contains the given
// substring, case-insensitively, optionally scoped to one owner.
func (m *Manager) SearchRecipesByTitle(title string, userID *int64) Result {
	if title == "" {
		return failure("Search title required")
	}
	res := m.FetchRecipes(userID, title)
	if res.Success {
		res.Message = fmt.Sprintf("Recipes matching '%s' fetched successfully", title)
	}
	return res
}

// UnsaveUserRecipe removes a bookmark. Returns the same envelope shape
// as every other operation.
func (m *Manager) UnsaveUserRecipe(userID, recipeID int64) Result {
	rows, err := m.store.Delete(savedTable, byBookmark(userID, recipeID))
	if err != nil {
		return failure("Failed to remove saved recipe")
	}
	if rows == 0 {
		return failure("Saved recipe not found")
	}
	return success("Recipe removed from saved recipes", nil)
}
