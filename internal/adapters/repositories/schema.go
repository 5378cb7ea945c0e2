package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

var sqliteSchema = []string{
	`
	CREATE TABLE IF NOT EXISTS orders (
		order_id TEXT PRIMARY KEY,
		hour INTEGER NOT NULL,
		cuisine TEXT NOT NULL,
		party_size INTEGER NOT NULL,
		created_at INTEGER NOT NULL
	);
	`,
	`
	CREATE TABLE IF NOT EXISTS order_seats (
		order_id TEXT NOT NULL REFERENCES orders(order_id) ON DELETE CASCADE,
		seat INTEGER NOT NULL,
		main_course TEXT,
		drink TEXT,
		repeated INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (order_id, seat)
	);
	`,
	`
	CREATE INDEX IF NOT EXISTS idx_orders_created_at
	ON orders(created_at);
	`,
}

var postgresSchema = []string{
	`
	CREATE TABLE IF NOT EXISTS orders (
		order_id TEXT PRIMARY KEY,
		hour INTEGER NOT NULL,
		cuisine TEXT NOT NULL,
		party_size INTEGER NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	);
	`,
	`
	CREATE TABLE IF NOT EXISTS order_seats (
		order_id TEXT NOT NULL REFERENCES orders(order_id) ON DELETE CASCADE,
		seat INTEGER NOT NULL,
		main_course TEXT,
		drink TEXT,
		repeated BOOLEAN NOT NULL DEFAULT FALSE,
		PRIMARY KEY (order_id, seat)
	);
	`,
	`
	CREATE INDEX IF NOT EXISTS idx_orders_created_at
	ON orders(created_at);
	`,
}

// Initialize the SQLite order-history schema.
func InitSQLiteSchema(db *sql.DB) error {
	return initSchema(db, sqliteSchema)
}

// Initialize the PostgreSQL order-history schema.
func InitPostgresSchema(db *sql.DB) error {
	return initSchema(db, postgresSchema)
}

func initSchema(db *sql.DB, statements []string) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
