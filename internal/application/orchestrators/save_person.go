package orchestrators

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"gums/internal/application/faults"
	"gums/internal/domain/person"
)

// PersonStoreForSave defines the store interface needed by SavePerson.
type PersonStoreForSave interface {
	GetByID(ctx context.Context, id string) (person.Person, error)
	Save(ctx context.Context, value person.Person) error
}

// SavePersonInput carries input for the save-person orchestrator. An empty ID
// means create; a non-empty ID means update an existing person.
type SavePersonInput struct {
	Person person.Person
}

// SavePersonDeps holds dependencies for SavePerson.
type SavePersonDeps struct {
	PersonStore PersonStoreForSave
}

// ExecuteSavePerson validates and persists a person record.
// PRE: input.Person carries the full replacement field set
// POST: Person is persisted; returned person carries its assigned ID
func ExecuteSavePerson(ctx context.Context, input SavePersonInput, deps SavePersonDeps) (person.Person, error) {
	p := input.Person
	if p.Status == "" {
		p.Status = person.StatusActive
	}
	if err := p.Validate(); err != nil {
		return person.Person{}, faults.Validation(err)
	}

	creating := p.ID == ""
	if creating {
		p.ID = uuid.New().String()
		if p.JoinedAt.IsZero() {
			p.JoinedAt = time.Now()
		}
	} else {
		if _, err := deps.PersonStore.GetByID(ctx, p.ID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return person.Person{}, faults.NotFound("person")
			}
			return person.Person{}, faults.Storage("load person", err)
		}
	}

	if err := deps.PersonStore.Save(ctx, p); err != nil {
		return person.Person{}, faults.Storage("save person", err)
	}

	event := "person_updated"
	if creating {
		event = "person_created"
	}
	slog.Info("person_event", "event", event, "person_id", p.ID, "person_type", p.PersonType)
	return p, nil
}

// SetPersonStatusInput carries input for the status-change orchestrator.
type SetPersonStatusInput struct {
	PersonID string
	Active   bool
}

// SetPersonStatusDeps holds dependencies for SetPersonStatus.
type SetPersonStatusDeps struct {
	PersonStore PersonStoreForSave
}

// ExecuteSetPersonStatus deactivates or reactivates a person.
// PRE: PersonID must be non-empty; person must exist
// POST: Person status matches input.Active
func ExecuteSetPersonStatus(ctx context.Context, input SetPersonStatusInput, deps SetPersonStatusDeps) error {
	if input.PersonID == "" {
		return faults.Validation(errors.New("person ID is required"))
	}

	p, err := deps.PersonStore.GetByID(ctx, input.PersonID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return faults.NotFound("person")
		}
		return faults.Storage("load person", err)
	}

	if input.Active {
		err = p.Reactivate()
	} else {
		err = p.Deactivate()
	}
	if err != nil {
		return faults.Validation(err)
	}

	if err := deps.PersonStore.Save(ctx, p); err != nil {
		return faults.Storage("save person", err)
	}
	slog.Info("person_event", "event", "person_status_changed", "person_id", p.ID, "status", p.Status)
	return nil
}
