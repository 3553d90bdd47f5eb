package models

import "time"

// Recipe is a catalogue entry. UserID is nil for ownerless catalogue
// recipes; user-authored recipes carry source "Custom".
type Recipe struct {
	ID           int64     `json:"recipe_id" db:"recipe_id"`
	UserID       *int64    `json:"user_id,omitempty" db:"user_id"`
	Title        string    `json:"title" db:"title"`
	Description  string    `json:"description" db:"description"`
	Instructions string    `json:"instructions,omitempty" db:"instructions"`
	Ingredients  string    `json:"ingredients,omitempty" db:"ingredients"`
	PrepTime     string    `json:"prep_time,omitempty" db:"prep_time"`
	ImageURL     string    `json:"image_url,omitempty" db:"image_url"`
	Allergens    string    `json:"allergens,omitempty" db:"allergens"`
	Source       string    `json:"source" db:"source"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// CreateRecipeRequest carries the fields for recipe creation.
// Title and Description are mandatory; everything else is optional.
type CreateRecipeRequest struct {
	UserID       *int64 `json:"user_id,omitempty"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Instructions string `json:"instructions,omitempty"`
	Ingredients  string `json:"ingredients,omitempty"`
	PrepTime     string `json:"prep_time,omitempty"`
	ImageURL     string `json:"image_url,omitempty"`
	Allergens    string `json:"allergens,omitempty"`
}

// UpdateRecipeRequest wraps a column->value patch for PUT /recipes/{id}.
type UpdateRecipeRequest struct {
	Updates map[string]interface{} `json:"updates"`
}

// SavedRecipe is a bookmark joining a user to a recipe.
type SavedRecipe struct {
	UserID    int64     `json:"user_id" db:"user_id"`
	RecipeID  int64     `json:"recipe_id" db:"recipe_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
