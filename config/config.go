// Package config reads runtime settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds runtime settings for the recipe service.
//
// Fields:
//   - Port: HTTP listen port.
//   - DBDriver: "sqlite3" (default, self-contained) or "postgres" (hosted store).
//   - DBURL: sqlite file path or Postgres DSN. Mandatory.
//   - MigrationsDir: directory of .sql migrations, applied for sqlite only.
//   - RedisAddr / RedisPassword / RedisDB: cache backend for sessions and
//     recipe-list responses.
type Config struct {
	Port          string
	DBDriver      string
	DBURL         string
	MigrationsDir string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// FromEnv builds a Config from the environment. The store location is
// mandatory: a missing RECIPE_DB_URL fails startup instead of running
// without persistence.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:          getenv("RECIPE_ADDR", "8080"),
		DBDriver:      getenv("RECIPE_DB_DRIVER", "sqlite3"),
		DBURL:         os.Getenv("RECIPE_DB_URL"),
		MigrationsDir: getenv("RECIPE_MIGRATIONS_DIR", "./database/migrations"),
		RedisAddr:     getenv("RECIPE_REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("RECIPE_REDIS_PASSWORD"),
	}
	if v := os.Getenv("RECIPE_REDIS_DB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid RECIPE_REDIS_DB %q: %w", v, err)
		}
		cfg.RedisDB = n
	}
	if cfg.DBURL == "" {
		return nil, fmt.Errorf("RECIPE_DB_URL is not set")
	}
	return cfg, nil
}
