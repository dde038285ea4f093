package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	"gums/internal/application/faults"
)

// PersonStoreForDelete defines the store interface needed by DeletePerson.
type PersonStoreForDelete interface {
	Delete(ctx context.Context, id string) (bool, error)
}

// ContactStoreForDelete defines the contact store interface needed by DeletePerson.
type ContactStoreForDelete interface {
	DeleteForPerson(ctx context.Context, personID string) error
}

// DeletePersonInput carries input for the delete-person orchestrator.
type DeletePersonInput struct {
	PersonID string
}

// DeletePersonDeps holds dependencies for DeletePerson.
type DeletePersonDeps struct {
	PersonStore  PersonStoreForDelete
	ContactStore ContactStoreForDelete
}

// ExecuteDeletePerson removes a person and their emergency contacts. The
// contacts go first as an explicit step; the schema does not cascade.
// PRE: PersonID must be non-empty
// POST: Person and all their contacts are removed
func ExecuteDeletePerson(ctx context.Context, input DeletePersonInput, deps DeletePersonDeps) error {
	if input.PersonID == "" {
		return faults.Validation(errors.New("person ID is required"))
	}

	if err := deps.ContactStore.DeleteForPerson(ctx, input.PersonID); err != nil {
		return faults.Storage("delete emergency contacts", err)
	}
	removed, err := deps.PersonStore.Delete(ctx, input.PersonID)
	if err != nil {
		return faults.Storage("delete person", err)
	}
	if !removed {
		return faults.NotFound("person")
	}

	slog.Info("person_event", "event", "person_deleted", "person_id", input.PersonID)
	return nil
}
