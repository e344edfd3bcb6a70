package storage

import (
	"database/sql"
	"fmt"
)

// EnsureSchema creates the tables the server needs. Statements are
// idempotent so restarts against an existing database are safe.
func EnsureSchema(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			username TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			is_first_login BOOLEAN NOT NULL DEFAULT TRUE,
			role TEXT NOT NULL DEFAULT 'admin'
		)`,
		`CREATE TABLE IF NOT EXISTS settings (
			id SERIAL PRIMARY KEY,
			key TEXT NOT NULL UNIQUE,
			value TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS categories (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			slug TEXT NOT NULL UNIQUE
		)`,
		// category_id carries no FK on purpose: deleting a category must not
		// cascade to menu items, the read path tolerates dangling references.
		`CREATE TABLE IF NOT EXISTS menu_items (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL,
			price DOUBLE PRECISION NOT NULL,
			image TEXT NOT NULL,
			ingredients TEXT NOT NULL,
			category_id INTEGER,
			is_available BOOLEAN NOT NULL DEFAULT TRUE,
			is_featured BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS staff (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			position TEXT NOT NULL,
			bio TEXT NOT NULL,
			image TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS locations (
			id SERIAL PRIMARY KEY,
			address TEXT NOT NULL,
			phone TEXT NOT NULL,
			email TEXT NOT NULL,
			map_coordinates TEXT NOT NULL,
			hours TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS social_media (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			url TEXT NOT NULL,
			icon TEXT NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT TRUE
		)`,
		`CREATE TABLE IF NOT EXISTS reservations (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT NOT NULL,
			date DATE NOT NULL,
			time TEXT NOT NULL,
			guests INTEGER NOT NULL,
			message TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT 'pending',
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}

	return nil
}
