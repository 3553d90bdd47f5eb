package recipes

import (
	"testing"

	"recipe-service/models"
	"recipe-service/store"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const recipesDDL = `CREATE TABLE recipes (
	recipe_id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER,
	title TEXT NOT NULL,
	description TEXT NOT NULL,
	instructions TEXT NOT NULL DEFAULT '',
	ingredients TEXT NOT NULL DEFAULT '',
	prep_time TEXT NOT NULL DEFAULT '',
	image_url TEXT NOT NULL DEFAULT '',
	allergens TEXT NOT NULL DEFAULT '',
	source TEXT NOT NULL DEFAULT 'Custom',
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
)`

func newSqliteManager(t *testing.T) *Manager {
	t.Helper()
	db, err := sqlx.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	// One connection, or each pool member gets its own empty :memory: db.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	_, err = db.Exec(recipesDDL)
	require.NoError(t, err)
	return NewManager(store.NewGateway(db))
}

func titles(t *testing.T, res Result) []string {
	t.Helper()
	require.True(t, res.Success, res.Message)
	list, ok := res.Data.([]models.Recipe)
	require.True(t, ok)
	out := make([]string, 0, len(list))
	for _, r := range list {
		out = append(out, r.Title)
	}
	return out
}

func TestSearchIsCaseInsensitiveSubstring(t *testing.T) {
	m := newSqliteManager(t)

	for _, r := range []models.CreateRecipeRequest{
		{UserID: int64ptr(1), Title: "Pasta Carbonara", Description: "roman classic"},
		{UserID: int64ptr(1), Title: "Chicken Soup", Description: "comfort food"},
		{UserID: int64ptr(2), Title: "PASTA primavera", Description: "spring vegetables"},
	} {
		require.True(t, m.AddRecipe(r).Success)
	}

	got := titles(t, m.SearchRecipesByTitle("pasta", nil))
	assert.ElementsMatch(t, []string{"Pasta Carbonara", "PASTA primavera"}, got)

	got = titles(t, m.SearchRecipesByTitle("PASTA", int64ptr(1)))
	assert.Equal(t, []string{"Pasta Carbonara"}, got)

	got = titles(t, m.SearchRecipesByTitle("tiramisu", nil))
	assert.Empty(t, got)
}

func TestModifyRecipeAgainstSqlite(t *testing.T) {
	m := newSqliteManager(t)

	added := m.AddRecipe(models.CreateRecipeRequest{Title: "Dal", Description: "lentils"})
	require.True(t, added.Success)
	id := added.Data.(models.Recipe).ID

	res := m.ModifyRecipe(id, map[string]interface{}{"prep_time": "40 min"})
	require.True(t, res.Success)
	updated := res.Data.(models.Recipe)
	assert.Equal(t, "40 min", updated.PrepTime)
	assert.Equal(t, "Dal", updated.Title, "untouched fields keep their values")

	res = m.ModifyRecipe(id+100, map[string]interface{}{"title": "x"})
	assert.False(t, res.Success)
	assert.Equal(t, "Recipe not found", res.Message)
}
