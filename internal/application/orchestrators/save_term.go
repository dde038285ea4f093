package orchestrators

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"gums/internal/application/faults"
	"gums/internal/domain/term"
)

// TermStoreForSave defines the store interface needed by SaveTerm.
type TermStoreForSave interface {
	GetByID(ctx context.Context, id string) (term.Term, error)
	Save(ctx context.Context, value term.Term) error
}

// SaveTermInput carries input for the save-term orchestrator. An empty ID
// means create; a non-empty ID means update an existing term.
type SaveTermInput struct {
	Term term.Term
}

// SaveTermDeps holds dependencies for SaveTerm.
type SaveTermDeps struct {
	TermStore TermStoreForSave
}

// ExecuteSaveTerm validates and persists a term, assigning a new ID on create.
// PRE: input.Term carries the full replacement field set
// POST: Term is persisted; returned term carries its assigned ID
func ExecuteSaveTerm(ctx context.Context, input SaveTermInput, deps SaveTermDeps) (term.Term, error) {
	t := input.Term
	if err := t.Validate(); err != nil {
		return term.Term{}, faults.Validation(err)
	}

	creating := t.ID == ""
	if creating {
		t.ID = uuid.New().String()
	} else {
		if _, err := deps.TermStore.GetByID(ctx, t.ID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return term.Term{}, faults.NotFound("term")
			}
			return term.Term{}, faults.Storage("load term", err)
		}
	}

	if err := deps.TermStore.Save(ctx, t); err != nil {
		return term.Term{}, faults.Storage("save term", err)
	}

	event := "term_updated"
	if creating {
		event = "term_created"
	}
	slog.Info("term_event", "event", event, "term_id", t.ID, "name", t.Name)
	return t, nil
}
