package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	// registers the "postgres" driver
	_ "github.com/lib/pq"
)

const schema = `
	CREATE TABLE IF NOT EXISTS confirmacoes (
		id               SERIAL PRIMARY KEY,
		nome             VARCHAR(100) NOT NULL UNIQUE,
		data_confirmacao TIMESTAMPTZ NOT NULL DEFAULT now(),
		status           VARCHAR(32) NOT NULL DEFAULT 'Confirmado'
	)
`

// Open connects to PostgreSQL and verifies the connection with a ping.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

// EnsureSchema creates the confirmacoes table if it does not exist yet.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}
