package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq" // PostgreSQL driver
)

// DB wraps the database connection
type DB struct {
	*sql.DB
}

// NewDB creates a new database connection
// connectionString should be in the format: "host=localhost port=5432 user=postgres password=postgres dbname=zakat sslmode=disable"
func NewDB(connectionString string) (*DB, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{DB: db}, nil
}

// EnsureSchema creates the tables used by the repositories when they do not exist yet
func (db *DB) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.DB.Close()
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS distribution_records (
		id             UUID PRIMARY KEY,
		ledger         TEXT NOT NULL,
		position       INTEGER NOT NULL,
		recipient_name TEXT NOT NULL,
		category       TEXT NOT NULL,
		amount         NUMERIC(20, 8) NOT NULL CHECK (amount > 0),
		currency       VARCHAR(3) NOT NULL,
		date           DATE NOT NULL,
		notes          TEXT NOT NULL DEFAULT '',
		created_at     TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_distribution_records_ledger ON distribution_records (ledger, position)`,
	`CREATE TABLE IF NOT EXISTS last_obligation (
		id               SMALLINT PRIMARY KEY CHECK (id = 1),
		amount_reference NUMERIC(20, 2) NOT NULL,
		display_currency VARCHAR(3) NOT NULL,
		amount_display   NUMERIC(20, 2) NOT NULL,
		calculated_at    TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS currency_preferences (
		id               SMALLINT PRIMARY KEY CHECK (id = 1),
		gold_currency    VARCHAR(3) NOT NULL,
		silver_currency  VARCHAR(3) NOT NULL,
		display_currency VARCHAR(3) NOT NULL
	)`,
}
