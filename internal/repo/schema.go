package repo

import (
	"context"
	"database/sql"
	"fmt"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	user_id INTEGER PRIMARY KEY,
	first_name TEXT,
	last_name TEXT,
	phone TEXT,
	wallet TEXT NOT NULL,
	balance INTEGER DEFAULT 100,
	spins INTEGER DEFAULT 3,
	referral_code TEXT UNIQUE,
	username TEXT,
	registered_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS transactions (
	tx_id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER,
	amount INTEGER,
	tx_type TEXT,
	status TEXT DEFAULT 'pending',
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (user_id) REFERENCES users (user_id)
);`

// Open opens the SQLite file at path and makes sure it is reachable.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("empty sqlite path")
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_foreign_keys=off")
	if err != nil {
		return nil, fmt.Errorf("error sql.Open: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error ping sqlite: %w", err)
	}

	return db, nil
}

// Migrate creates the users and transactions tables if they are missing.
func (r *Repository) Migrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("error Migrate: %w", err)
	}
	return nil
}
