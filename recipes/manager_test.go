package recipes

import (
	"errors"
	"testing"

	"recipe-service/models"
	"recipe-service/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore records gateway calls and plays back canned results.
type fakeStore struct {
	insertCalls  int
	insertTable  string
	insertRecord map[string]interface{}
	insertID     int64
	insertErr    error

	selectCalls   int
	selectTable   string
	selectFilters store.Filters
	selectErr     error
	recipes       []models.Recipe
	saved         []models.SavedRecipe

	updateCalls   int
	updateFilters store.Filters
	updatePatch   map[string]interface{}
	updateRows    int64
	updateErr     error

	deleteCalls   int
	deleteFilters store.Filters
	deleteRows    int64
	deleteErr     error
}

func (f *fakeStore) Insert(table, idColumn string, record map[string]interface{}) (int64, error) {
	f.insertCalls++
	f.insertTable = table
	f.insertRecord = record
	return f.insertID, f.insertErr
}

func (f *fakeStore) Select(dest interface{}, table string, fl store.Filters) error {
	f.selectCalls++
	f.selectTable = table
	f.selectFilters = fl
	if f.selectErr != nil {
		return f.selectErr
	}
	switch d := dest.(type) {
	case *[]models.Recipe:
		*d = f.recipes
	case *[]models.SavedRecipe:
		*d = f.saved
	}
	return nil
}

func (f *fakeStore) Update(table string, fl store.Filters, patch map[string]interface{}) (int64, error) {
	f.updateCalls++
	f.updateFilters = fl
	f.updatePatch = patch
	return f.updateRows, f.updateErr
}

func (f *fakeStore) Delete(table string, fl store.Filters) (int64, error) {
	f.deleteCalls++
	f.deleteFilters = fl
	return f.deleteRows, f.deleteErr
}

func int64ptr(v int64) *int64 { return &v }

func TestAddRecipeRequiresTitleAndDescription(t *testing.T) {
	fs := &fakeStore{}
	m := NewManager(fs)

	for _, req := range []models.CreateRecipeRequest{
		{Description: "no title"},
		{Title: "no description"},
		{},
	} {
		res := m.AddRecipe(req)
		assert.False(t, res.Success)
		assert.Equal(t, "Title and Description are required", res.Message)
	}
	assert.Equal(t, 0, fs.insertCalls, "validation failures must not hit the store")
}

func TestAddRecipeReturnsInsertedRecipe(t *testing.T) {
	fs := &fakeStore{insertID: 11}
	m := NewManager(fs)

	res := m.AddRecipe(models.CreateRecipeRequest{
		UserID:      int64ptr(2),
		Title:       "Shakshuka",
		Description: "eggs in tomato sauce",
		PrepTime:    "25 min",
		Allergens:   "eggs",
	})
	require.True(t, res.Success)
	assert.Equal(t, "Recipe added successfully", res.Message)

	recipe, ok := res.Data.(models.Recipe)
	require.True(t, ok)
	assert.Equal(t, int64(11), recipe.ID)
	assert.Equal(t, "Shakshuka", recipe.Title)
	assert.Equal(t, "25 min", recipe.PrepTime)
	assert.Equal(t, "Custom", recipe.Source)
	assert.Equal(t, int64(2), *recipe.UserID)
	assert.Equal(t, "recipes", fs.insertTable)
	assert.Equal(t, int64(2), fs.insertRecord["user_id"])
}

func TestAddRecipeStoreFailure(t *testing.T) {
	fs := &fakeStore{insertErr: errors.New("constraint violation")}
	m := NewManager(fs)

	res := m.AddRecipe(models.CreateRecipeRequest{Title: "t", Description: "d"})
	assert.False(t, res.Success)
	assert.Equal(t, "Failed to add recipe", res.Message)
}

func TestFetchRecipesEmptyResultIsSuccess(t *testing.T) {
	fs := &fakeStore{}
	m := NewManager(fs)

	res := m.FetchRecipes(nil, "")
	require.True(t, res.Success)
	list, ok := res.Data.([]models.Recipe)
	require.True(t, ok)
	assert.Empty(t, list)
}

func TestFetchRecipesAppliesFilters(t *testing.T) {
	fs := &fakeStore{}
	m := NewManager(fs)

	m.FetchRecipes(int64ptr(4), "soup")
	assert.Equal(t, int64(4), fs.selectFilters.Eq["user_id"])
	require.NotNil(t, fs.selectFilters.Like)
	assert.Equal(t, "title", fs.selectFilters.Like.Column)
	assert.Equal(t, "soup", fs.selectFilters.Like.Substring)
}

func TestModifyRecipeRejectsEmptyUpdates(t *testing.T) {
	fs := &fakeStore{}
	m := NewManager(fs)

	res := m.ModifyRecipe(5, nil)
	assert.False(t, res.Success)
	assert.Equal(t, "No update data provided", res.Message)
	assert.Equal(t, 0, fs.updateCalls)
}

func TestModifyRecipeDropsUnknownColumns(t *testing.T) {
	fs := &fakeStore{}
	m := NewManager(fs)

	// A patch of nothing but non-updatable columns is an empty patch.
	res := m.ModifyRecipe(5, map[string]interface{}{"recipe_id": 99, "source": "evil"})
	assert.False(t, res.Success)
	assert.Equal(t, "No update data provided", res.Message)
	assert.Equal(t, 0, fs.updateCalls)
}

func TestModifyRecipeNotFound(t *testing.T) {
	fs := &fakeStore{updateRows: 0}
	m := NewManager(fs)

	res := m.ModifyRecipe(99, map[string]interface{}{"title": "new"})
	assert.False(t, res.Success)
	assert.Equal(t, "Recipe not found", res.Message)
}

func TestModifyRecipeStoreFailure(t *testing.T) {
	fs := &fakeStore{updateErr: errors.New("connection reset")}
	m := NewManager(fs)

	res := m.ModifyRecipe(5, map[string]interface{}{"title": "new"})
	assert.False(t, res.Success)
	assert.Equal(t, "Recipe update failed", res.Message)
}

func TestModifyRecipeReturnsUpdatedRow(t *testing.T) {
	fs := &fakeStore{
		updateRows: 1,
		recipes:    []models.Recipe{{ID: 5, Title: "Renamed", Description: "d"}},
	}
	m := NewManager(fs)

	res := m.ModifyRecipe(5, map[string]interface{}{"title": "Renamed"})
	require.True(t, res.Success)
	assert.Equal(t, "Recipe updated successfully", res.Message)

	recipe, ok := res.Data.(models.Recipe)
	require.True(t, ok)
	assert.Equal(t, "Renamed", recipe.Title)
	assert.Equal(t, "Renamed", fs.updatePatch["title"])
	assert.Contains(t, fs.updatePatch, "updated_at")
	assert.Equal(t, int64(5), fs.updateFilters.Eq["recipe_id"])
}

func TestRemoveRecipeNotFound(t *testing.T) {
	fs := &fakeStore{deleteRows: 0}
	m := NewManager(fs)

	res := m.RemoveRecipe(99)
	assert.False(t, res.Success)
	assert.Equal(t, "Recipe not found", res.Message)
}

func TestRemoveRecipeSuccess(t *testing.T) {
	fs := &fakeStore{deleteRows: 1}
	m := NewManager(fs)

	res := m.RemoveRecipe(5)
	assert.True(t, res.Success)
	assert.Equal(t, "Recipe deleted successfully", res.Message)
	assert.Equal(t, int64(5), fs.deleteFilters.Eq["recipe_id"])
}

func TestSaveUserRecipeIsIdempotent(t *testing.T) {
	fs := &fakeStore{saved: []models.SavedRecipe{{UserID: 1, RecipeID: 3}}}
	m := NewManager(fs)

	res := m.SaveUserRecipe(1, 3)
	require.True(t, res.Success)
	assert.Equal(t, "Recipe already saved", res.Message)
	assert.Equal(t, 0, fs.insertCalls, "an existing bookmark must not be re-inserted")
}

func TestSaveUserRecipeInsertsBookmark(t *testing.T) {
	fs := &fakeStore{}
	m := NewManager(fs)

	res := m.SaveUserRecipe(1, 3)
	require.True(t, res.Success)
	assert.Equal(t, "Recipe saved successfully", res.Message)
	assert.Equal(t, "saved_recipes", fs.insertTable)
	assert.Equal(t, int64(1), fs.insertRecord["user_id"])
	assert.Equal(t, int64(3), fs.insertRecord["recipe_id"])
}

func TestSaveUserRecipeInsertFailure(t *testing.T) {
	fs := &fakeStore{insertErr: errors.New("constraint violation")}
	m := NewManager(fs)

	res := m.SaveUserRecipe(1, 3)
	assert.False(t, res.Success)
	assert.Equal(t, "Failed to save recipe", res.Message)
}

func TestFetchSavedRecipesEmptyIsSuccess(t *testing.T) {
	fs := &fakeStore{}
	m := NewManager(fs)

	res := m.FetchSavedRecipes(1)
	require.True(t, res.Success)
	saved, ok := res.Data.([]models.SavedRecipe)
	require.True(t, ok)
	assert.Empty(t, saved)
	assert.Equal(t, int64(1), fs.selectFilters.Eq["user_id"])
}

func TestSearchRequiresTitle(t *testing.T) {
	fs := &fakeStore{}
	m := NewManager(fs)

	res := m.SearchRecipesByTitle("", nil)
	assert.False(t, res.Success)
	assert.Equal(t, "Search title required", res.Message)
	assert.Equal(t, 0, fs.selectCalls)
}

func TestSearchMessageNamesTheTerm(t *testing.T) {
	fs := &fakeStore{}
	m := NewManager(fs)

	res := m.SearchRecipesByTitle("pasta", nil)
	require.True(t, res.Success)
	assert.Equal(t, "Recipes matching 'pasta' fetched successfully", res.Message)
}

func TestUnsaveUserRecipeEnvelope(t *testing.T) {
	fs := &fakeStore{deleteRows: 0}
	m := NewManager(fs)

	res := m.UnsaveUserRecipe(1, 3)
	assert.False(t, res.Success)
	assert.Equal(t, "Saved recipe not found", res.Message)

	fs.deleteRows = 1
	res = m.UnsaveUserRecipe(1, 3)
	assert.True(t, res.Success)
	assert.Equal(t, "Recipe removed from saved recipes", res.Message)
	assert.Equal(t, int64(1), fs.deleteFilters.Eq["user_id"])
	assert.Equal(t, int64(3), fs.deleteFilters.Eq["recipe_id"])
}
