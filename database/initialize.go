package database

import (
	"os"

	"recipe-service/config"

	"github.com/jmoiron/sqlx"
	"github.com/umakantv/go-utils/db"
	"github.com/umakantv/go-utils/db/migrations"
	"github.com/umakantv/go-utils/logger"
	"go.uber.org/zap"
)

func InitializeDatabase(cfg *config.Config) *sqlx.DB {
	dbConn := db.GetDBConnection(db.DatabaseConfig{
		DRIVER: cfg.DBDriver,
		DB:     cfg.DBURL,
	})

	// A hosted Postgres store owns its schema; migrations apply only to
	// the embedded sqlite database.
	if cfg.DBDriver == "sqlite3" {
		err := migrations.Migrate(dbConn, cfg.MigrationsDir)
		if err != nil {
			logger.Error("Error while running migration", zap.Error(err))
			os.Exit(1)
		}
	}

	logger.Info("Database initialized successfully", zap.String("driver", cfg.DBDriver))
	return dbConn
}
