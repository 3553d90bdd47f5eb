package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvRequiresStoreURL(t *testing.T) {
	t.Setenv("RECIPE_DB_URL", "")

	_, err := FromEnv()
	assert.Error(t, err)
}

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("RECIPE_DB_URL", "./recipes.db")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "sqlite3", cfg.DBDriver)
	assert.Equal(t, "./database/migrations", cfg.MigrationsDir)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 0, cfg.RedisDB)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("RECIPE_ADDR", "9090")
	t.Setenv("RECIPE_DB_DRIVER", "postgres")
	t.Setenv("RECIPE_DB_URL", "postgres://recipes:secret@db:5432/recipes?sslmode=disable")
	t.Setenv("RECIPE_REDIS_ADDR", "redis:6379")
	t.Setenv("RECIPE_REDIS_DB", "3")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
	assert.Equal(t, 3, cfg.RedisDB)
}

func TestFromEnvRejectsBadRedisDB(t *testing.T) {
	t.Setenv("RECIPE_DB_URL", "./recipes.db")
	t.Setenv("RECIPE_REDIS_DB", "not-a-number")

	_, err := FromEnv()
	assert.Error(t, err)
}
