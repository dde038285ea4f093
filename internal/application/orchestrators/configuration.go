package orchestrators

import (
	"context"
	"log/slog"
	"time"

	"gums/internal/application/faults"
	"gums/internal/domain/unitconfig"
)

// ConfigStore defines the store interface needed by the configuration orchestrators.
type ConfigStore interface {
	Save(ctx context.Context, value unitconfig.UnitConfiguration) error
	Exists(ctx context.Context) (bool, error)
}

// EnsureConfigurationDeps holds dependencies for EnsureDefaultConfiguration.
type EnsureConfigurationDeps struct {
	ConfigStore ConfigStore
}

// ExecuteEnsureDefaultConfiguration inserts the default configuration row if
// none exists. Called on every process start, after migration, before the
// server accepts requests.
// PRE: schema has been migrated
// POST: Exactly one configuration row exists; an existing row is untouched
func ExecuteEnsureDefaultConfiguration(ctx context.Context, deps EnsureConfigurationDeps) error {
	exists, err := deps.ConfigStore.Exists(ctx)
	if err != nil {
		return faults.Storage("check unit configuration", err)
	}
	if exists {
		return nil
	}

	if err := deps.ConfigStore.Save(ctx, unitconfig.NewDefault(time.Now())); err != nil {
		return faults.Storage("create default unit configuration", err)
	}
	slog.Info("config_event", "event", "default_configuration_created")
	return nil
}

// UpdateConfigurationInput carries the full replacement configuration.
type UpdateConfigurationInput struct {
	Config unitconfig.UnitConfiguration
}

// UpdateConfigurationDeps holds dependencies for UpdateConfiguration.
type UpdateConfigurationDeps struct {
	ConfigStore ConfigStore
}

// ExecuteUpdateConfiguration overwrites the singleton configuration row.
// Concurrent admin edits are last-write-wins.
// PRE: input.Config carries the full field set
// POST: The stored row equals input.Config
func ExecuteUpdateConfiguration(ctx context.Context, input UpdateConfigurationInput, deps UpdateConfigurationDeps) error {
	c := input.Config
	c.ID = unitconfig.SingletonID
	c.UpdatedAt = time.Now()
	if err := c.Validate(); err != nil {
		return faults.Validation(err)
	}

	if err := deps.ConfigStore.Save(ctx, c); err != nil {
		return faults.Storage("save unit configuration", err)
	}
	slog.Info("config_event", "event", "configuration_updated", "unit_name", c.UnitName)
	return nil
}
