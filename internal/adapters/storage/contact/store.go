package contact

import (
	"context"

	domain "gums/internal/domain/contact"
)

// Store persists EmergencyContact state. Contacts are always read and written
// as a person's whole list so SortOrder renumbering stays atomic.
type Store interface {
	ListByPersonID(ctx context.Context, personID string) ([]domain.EmergencyContact, error)
	ReplaceForPerson(ctx context.Context, personID string, contacts []domain.EmergencyContact) error
	DeleteForPerson(ctx context.Context, personID string) error
}
