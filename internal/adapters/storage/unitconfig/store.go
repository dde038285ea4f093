package unitconfig

import (
	"context"

	domain "gums/internal/domain/unitconfig"
)

// Store persists the singleton UnitConfiguration row.
type Store interface {
	Get(ctx context.Context) (domain.UnitConfiguration, error)
	Save(ctx context.Context, value domain.UnitConfiguration) error
	Exists(ctx context.Context) (bool, error)
}
