package sqlite

import (
	"context"
	"fmt"
)

// ddl creates the three entity tables. AUTOINCREMENT keeps rowids monotonic
// and never reused, matching the memory store's id discipline.
var ddl = []string{
	`CREATE TABLE IF NOT EXISTS properties (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		price TEXT NOT NULL,
		type TEXT NOT NULL,
		property_type TEXT NOT NULL,
		bedrooms INTEGER NOT NULL,
		bathrooms INTEGER NOT NULL,
		sqft INTEGER NOT NULL,
		address TEXT NOT NULL,
		city TEXT NOT NULL,
		state TEXT NOT NULL,
		zip_code TEXT NOT NULL,
		latitude TEXT,
		longitude TEXT,
		images TEXT NOT NULL DEFAULT '[]',
		amenities TEXT NOT NULL DEFAULT '[]',
		features TEXT NOT NULL DEFAULT '[]',
		year_built INTEGER,
		parking INTEGER NOT NULL DEFAULT 0,
		is_active INTEGER NOT NULL DEFAULT 1,
		is_featured INTEGER NOT NULL DEFAULT 0,
		rating TEXT NOT NULL DEFAULT '0.0',
		agent_name TEXT,
		agent_phone TEXT,
		agent_email TEXT,
		created INTEGER NOT NULL,
		updated INTEGER NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS testimonials (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		location TEXT NOT NULL,
		rating INTEGER NOT NULL DEFAULT 5,
		comment TEXT NOT NULL,
		avatar TEXT,
		is_active INTEGER NOT NULL DEFAULT 1,
		created INTEGER NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL
	);`,
}

// EnsureSchema creates any missing tables.
func (r *SQLiteRepo) EnsureSchema(ctx context.Context) error {
	for _, stmt := range ddl {
		if _, err := r.conn.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
