package unitconfig

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"gums/internal/adapters/storage"
	domain "gums/internal/domain/unitconfig"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new unit configuration store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Get retrieves the singleton configuration row.
// PRE: none
// POST: Returns the row or an error wrapping sql.ErrNoRows if absent
func (s *SQLiteStore) Get(ctx context.Context) (domain.UnitConfiguration, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, unit_name, district, contact_name, contact_email, contact_phone,
		 meeting_night, meeting_venue, welcome_message, updated_at
		 FROM unit_configuration WHERE id = ?`, domain.SingletonID)
	var c domain.UnitConfiguration
	var updatedStr string
	err := row.Scan(&c.ID, &c.UnitName, &c.District, &c.ContactName, &c.ContactEmail,
		&c.ContactPhone, &c.MeetingNight, &c.MeetingVenue, &c.WelcomeMessage, &updatedStr)
	if err == sql.ErrNoRows {
		return domain.UnitConfiguration{}, fmt.Errorf("unit configuration not found: %w", err)
	}
	if err != nil {
		return domain.UnitConfiguration{}, err
	}
	c.UpdatedAt, _ = time.Parse(time.RFC3339, updatedStr)
	return c, nil
}

// Save writes the singleton configuration row (insert or overwrite).
// PRE: value has been validated and carries the singleton ID
// POST: Row is persisted; last write wins
func (s *SQLiteStore) Save(ctx context.Context, value domain.UnitConfiguration) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO unit_configuration
		 (id, unit_name, district, contact_name, contact_email, contact_phone,
		  meeting_night, meeting_venue, welcome_message, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET unit_name=excluded.unit_name, district=excluded.district,
		 contact_name=excluded.contact_name, contact_email=excluded.contact_email,
		 contact_phone=excluded.contact_phone, meeting_night=excluded.meeting_night,
		 meeting_venue=excluded.meeting_venue, welcome_message=excluded.welcome_message,
		 updated_at=excluded.updated_at`,
		value.ID, value.UnitName, value.District, value.ContactName, value.ContactEmail,
		value.ContactPhone, value.MeetingNight, value.MeetingVenue, value.WelcomeMessage,
		value.UpdatedAt.Format(time.RFC3339),
	)
	return err
}

// Exists reports whether the singleton row is present.
// PRE: none
// POST: Returns true if the configuration row exists
func (s *SQLiteStore) Exists(ctx context.Context) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM unit_configuration WHERE id = ?", domain.SingletonID).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
