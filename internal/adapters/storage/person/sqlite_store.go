package person

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"gums/internal/adapters/storage"
	domain "gums/internal/domain/person"
)

const dateFormat = "2006-01-02"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new person store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const personColumns = "id, name, person_type, section, status, date_of_birth, joined_at"

// scanPerson scans one person row, tolerating a NULL date of birth.
func scanPerson(scan func(dest ...any) error) (domain.Person, error) {
	var p domain.Person
	var dob sql.NullString
	var joinedStr string
	if err := scan(&p.ID, &p.Name, &p.PersonType, &p.Section, &p.Status, &dob, &joinedStr); err != nil {
		return domain.Person{}, err
	}
	if dob.Valid && dob.String != "" {
		p.DateOfBirth, _ = time.Parse(dateFormat, dob.String)
	}
	p.JoinedAt, _ = time.Parse(dateFormat, joinedStr)
	return p, nil
}

// GetByID retrieves a Person by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error wrapping sql.ErrNoRows if absent
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Person, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+personColumns+" FROM person WHERE id = ?", id)
	p, err := scanPerson(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Person{}, fmt.Errorf("person not found: %w", err)
	}
	return p, err
}

// Save persists a Person to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, value domain.Person) error {
	var dob any
	if !value.DateOfBirth.IsZero() {
		dob = value.DateOfBirth.Format(dateFormat)
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO person (id, name, person_type, section, status, date_of_birth, joined_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET name=excluded.name, person_type=excluded.person_type,
		 section=excluded.section, status=excluded.status, date_of_birth=excluded.date_of_birth,
		 joined_at=excluded.joined_at`,
		value.ID, value.Name, value.PersonType, value.Section, value.Status, dob,
		value.JoinedAt.Format(dateFormat),
	)
	return err
}

// Delete removes a Person from the database.
// PRE: id is non-empty; the person's emergency contacts are removed first
// POST: Returns true if a row was removed, false if no such person existed
func (s *SQLiteStore) Delete(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM person WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// List retrieves all Persons ordered by name.
// PRE: none
// POST: Returns all persons regardless of status
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Person, error) {
	return s.list(ctx, "SELECT "+personColumns+" FROM person ORDER BY name")
}

// ListActive retrieves all active Persons ordered by name.
// PRE: none
// POST: Returns only persons with active status
func (s *SQLiteStore) ListActive(ctx context.Context) ([]domain.Person, error) {
	return s.list(ctx,
		"SELECT "+personColumns+" FROM person WHERE status = ? ORDER BY name",
		domain.StatusActive)
}

func (s *SQLiteStore) list(ctx context.Context, query string, args ...any) ([]domain.Person, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Person
	for rows.Next() {
		p, err := scanPerson(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, p)
	}
	return results, rows.Err()
}
