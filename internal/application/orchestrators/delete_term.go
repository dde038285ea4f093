package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	"gums/internal/application/faults"
)

// TermStoreForDelete defines the store interface needed by DeleteTerm.
type TermStoreForDelete interface {
	Delete(ctx context.Context, id string) (bool, error)
}

// DeleteTermInput carries input for the delete-term orchestrator.
type DeleteTermInput struct {
	TermID string
}

// DeleteTermDeps holds dependencies for DeleteTerm.
type DeleteTermDeps struct {
	TermStore TermStoreForDelete
}

// ExecuteDeleteTerm permanently removes a term. No other entities are touched;
// nothing in the schema cascades off a term.
// PRE: TermID must be non-empty
// POST: Term is removed; a missing id is a not-found fault, never a silent success
func ExecuteDeleteTerm(ctx context.Context, input DeleteTermInput, deps DeleteTermDeps) error {
	if input.TermID == "" {
		return faults.Validation(errors.New("term ID is required"))
	}

	removed, err := deps.TermStore.Delete(ctx, input.TermID)
	if err != nil {
		return faults.Storage("delete term", err)
	}
	if !removed {
		return faults.NotFound("term")
	}

	slog.Info("term_event", "event", "term_deleted", "term_id", input.TermID)
	return nil
}
