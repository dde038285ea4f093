package contact

import (
	"context"
	"fmt"

	"gums/internal/adapters/storage"
	domain "gums/internal/domain/contact"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new emergency contact store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// ListByPersonID retrieves a person's contacts in SortOrder.
// PRE: personID is non-empty
// POST: Returns contacts ordered by sort_order ascending
func (s *SQLiteStore) ListByPersonID(ctx context.Context, personID string) ([]domain.EmergencyContact, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, person_id, name, phone, relationship, sort_order
		 FROM emergency_contact WHERE person_id = ? ORDER BY sort_order`, personID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.EmergencyContact
	for rows.Next() {
		var c domain.EmergencyContact
		if err := rows.Scan(&c.ID, &c.PersonID, &c.Name, &c.Phone, &c.Relationship, &c.SortOrder); err != nil {
			return nil, err
		}
		results = append(results, c)
	}
	return results, rows.Err()
}

// ReplaceForPerson swaps a person's whole contact list in one transaction,
// so a renumbered list is never partially visible.
// PRE: every contact in the list belongs to personID
// POST: The stored list equals the given list exactly
func (s *SQLiteStore) ReplaceForPerson(ctx context.Context, personID string, contacts []domain.EmergencyContact) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM emergency_contact WHERE person_id = ?", personID); err != nil {
		return err
	}
	for _, c := range contacts {
		if c.PersonID != personID {
			return fmt.Errorf("contact %s belongs to person %s, not %s", c.ID, c.PersonID, personID)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO emergency_contact (id, person_id, name, phone, relationship, sort_order)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			c.ID, c.PersonID, c.Name, c.Phone, c.Relationship, c.SortOrder); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// DeleteForPerson removes all contacts belonging to a person.
// PRE: personID is non-empty
// POST: No contacts remain for the person
func (s *SQLiteStore) DeleteForPerson(ctx context.Context, personID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM emergency_contact WHERE person_id = ?", personID)
	return err
}
