package storage

import (
	"database/sql"
	"fmt"
)

// InitDB initializes the database schema.
// PRE: db is a valid database connection
// POST: All tables are created, WAL mode enabled
func InitDB(db *sql.DB) error {
	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	// Enable foreign key enforcement
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// Create tables
	schema := `
	CREATE TABLE IF NOT EXISTS account (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL DEFAULT '',
		role TEXT NOT NULL,
		created_at TEXT NOT NULL,
		failed_logins INTEGER NOT NULL DEFAULT 0,
		locked_until TEXT
	);

	CREATE TABLE IF NOT EXISTS unit_configuration (
		id TEXT PRIMARY KEY,
		unit_name TEXT NOT NULL,
		district TEXT NOT NULL DEFAULT '',
		contact_name TEXT NOT NULL DEFAULT '',
		contact_email TEXT NOT NULL DEFAULT '',
		contact_phone TEXT NOT NULL DEFAULT '',
		meeting_night TEXT NOT NULL DEFAULT '',
		meeting_venue TEXT NOT NULL DEFAULT '',
		welcome_message TEXT NOT NULL DEFAULT '',
		updated_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS term (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		start_date TEXT NOT NULL,
		end_date TEXT NOT NULL,
		subs_amount INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS person (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		person_type TEXT NOT NULL,
		section TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL,
		date_of_birth TEXT,
		joined_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS emergency_contact (
		id TEXT PRIMARY KEY,
		person_id TEXT NOT NULL,
		name TEXT NOT NULL,
		phone TEXT NOT NULL,
		relationship TEXT NOT NULL DEFAULT '',
		sort_order INTEGER NOT NULL,
		FOREIGN KEY (person_id) REFERENCES person(id)
	);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// migrations are applied in order on top of the base schema. Each entry runs
// once; PRAGMA user_version tracks the last applied index.
var migrations = []string{
	// 1: index for the active-member scan used by the membership summary
	`CREATE INDEX IF NOT EXISTS idx_person_status ON person(status)`,
	// 2: index for per-person contact lookups
	`CREATE INDEX IF NOT EXISTS idx_contact_person ON emergency_contact(person_id, sort_order)`,
}

// LatestSchemaVersion returns the migration count, logged at startup.
func LatestSchemaVersion() int {
	return len(migrations)
}

// MigrateDB creates the base schema and applies any pending migrations.
// Safe to call on every process start.
// PRE: db is a valid, open database connection
// POST: schema is at LatestSchemaVersion
func MigrateDB(db *sql.DB) error {
	if err := InitDB(db); err != nil {
		return err
	}

	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	for i := version; i < len(migrations); i++ {
		if _, err := db.Exec(migrations[i]); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
		if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", i+1)); err != nil {
			return fmt.Errorf("failed to record schema version %d: %w", i+1, err)
		}
	}
	return nil
}
