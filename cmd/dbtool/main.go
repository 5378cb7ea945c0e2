package main

import (
	"database/sql"
	"os"

	"restaurant-order/internal/adapters/repositories"
	"restaurant-order/internal/config"
	"restaurant-order/internal/platform/db"
	"restaurant-order/internal/platform/obs"
)

// dbtool creates the order-history schema for the SQL store named by ORDER_STORE.
func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.Load("info")
	logger := obs.NewLogger(os.Stderr, cfg.LogLevel)

	var (
		conn *sql.DB
		err  error
		initSchema func(*sql.DB) error
	)

	switch cfg.Store.Driver {
	case config.StorePostgres:
		if cfg.Store.DatabaseURL == "" {
			logger.Error().Msg("DATABASE_URL is required")
			return 1
		}
		conn, err = db.Open(cfg.Store.DatabaseURL)
		initSchema = repositories.InitPostgresSchema
	case config.StoreSQLite:
		conn, err = db.OpenSQLite(cfg.Store.SQLitePath)
		initSchema = repositories.InitSQLiteSchema
	default:
		logger.Error().Str("store", cfg.Store.Driver).Msg("ORDER_STORE must be sqlite or postgres")
		return 1
	}
	if err != nil {
		logger.Error().Err(err).Str("store", cfg.Store.Driver).Msg("open database")
		return 1
	}
	defer conn.Close()

	logger.Info().Str("store", cfg.Store.Driver).Msg("initializing schema")
	if err := initSchema(conn); err != nil {
		logger.Error().Err(err).Msg("schema initialization failed")
		return 1
	}

	logger.Info().Msg("schema ready")
	return 0
}
