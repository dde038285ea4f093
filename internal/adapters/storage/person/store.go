package person

import (
	"context"

	domain "gums/internal/domain/person"
)

// Store persists Person state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Person, error)
	Save(ctx context.Context, value domain.Person) error
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]domain.Person, error)
	ListActive(ctx context.Context) ([]domain.Person, error)
}
