package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// AUTOINCREMENT keeps SQLite from handing out the id of a deleted row again.
const sqliteSchema = `
CREATE TABLE IF NOT EXISTS users (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	email TEXT NOT NULL
);`

const pgSchema = `
CREATE TABLE IF NOT EXISTS users (
	id BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL
);`

// InitSQLiteDB creates the users table if it does not exist yet.
func InitSQLiteDB(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		return fmt.Errorf("create sqlite users table: %w", err)
	}
	return nil
}

// InitPgDB creates the users table if it does not exist yet.
func InitPgDB(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, pgSchema); err != nil {
		return fmt.Errorf("create postgres users table: %w", err)
	}
	return nil
}
