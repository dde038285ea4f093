package orchestrators

import (
	"context"
	"testing"

	"gums/internal/application/faults"
	domainUnitconfig "gums/internal/domain/unitconfig"
)

type mockConfigStore struct {
	row   *domainUnitconfig.UnitConfiguration
	saves int
}

// Save stores the configuration row in memory.
// PRE: value carries the singleton ID
// POST: Row replaced
func (m *mockConfigStore) Save(_ context.Context, value domainUnitconfig.UnitConfiguration) error {
	m.row = &value
	m.saves++
	return nil
}

// Exists reports whether a row has been saved.
// PRE: none
// POST: Returns true if a row exists
func (m *mockConfigStore) Exists(_ context.Context) (bool, error) {
	return m.row != nil, nil
}

// TestExecuteEnsureDefaultConfiguration_Idempotent verifies calling twice
// leaves exactly one identical row.
func TestExecuteEnsureDefaultConfiguration_Idempotent(t *testing.T) {
	store := &mockConfigStore{}
	deps := EnsureConfigurationDeps{ConfigStore: store}

	if err := ExecuteEnsureDefaultConfiguration(context.Background(), deps); err != nil {
		t.Fatalf("first call error = %v", err)
	}
	if store.row == nil {
		t.Fatal("first call should insert the default row")
	}
	first := *store.row

	if err := ExecuteEnsureDefaultConfiguration(context.Background(), deps); err != nil {
		t.Fatalf("second call error = %v", err)
	}
	if store.saves != 1 {
		t.Errorf("saves = %d, want 1 (second call must be a no-op)", store.saves)
	}
	if *store.row != first {
		t.Errorf("row changed across calls: %+v -> %+v", first, *store.row)
	}
	if store.row.ID != domainUnitconfig.SingletonID {
		t.Errorf("row ID = %q, want %q", store.row.ID, domainUnitconfig.SingletonID)
	}
}

// TestExecuteEnsureDefaultConfiguration_PreservesExisting verifies an edited
// row is never overwritten at startup.
func TestExecuteEnsureDefaultConfiguration_PreservesExisting(t *testing.T) {
	existing := domainUnitconfig.UnitConfiguration{
		ID: domainUnitconfig.SingletonID, UnitName: "1st Avondale Brownies",
	}
	store := &mockConfigStore{row: &existing}

	if err := ExecuteEnsureDefaultConfiguration(context.Background(), EnsureConfigurationDeps{ConfigStore: store}); err != nil {
		t.Fatalf("error = %v", err)
	}
	if store.saves != 0 || store.row.UnitName != "1st Avondale Brownies" {
		t.Errorf("existing row was touched: saves=%d row=%+v", store.saves, store.row)
	}
}

// TestExecuteUpdateConfiguration verifies overwrite and validation.
func TestExecuteUpdateConfiguration(t *testing.T) {
	store := &mockConfigStore{}
	deps := UpdateConfigurationDeps{ConfigStore: store}

	err := ExecuteUpdateConfiguration(context.Background(), UpdateConfigurationInput{
		Config: domainUnitconfig.UnitConfiguration{UnitName: "1st Avondale Brownies", ContactEmail: "brownowl@example.org"},
	}, deps)
	if err != nil {
		t.Fatalf("update error = %v", err)
	}
	if store.row == nil || store.row.ID != domainUnitconfig.SingletonID {
		t.Fatalf("row = %+v, want singleton ID forced", store.row)
	}
	if store.row.UpdatedAt.IsZero() {
		t.Error("UpdatedAt should be stamped on update")
	}

	// Invalid input is rejected before any write
	before := store.saves
	err = ExecuteUpdateConfiguration(context.Background(), UpdateConfigurationInput{
		Config: domainUnitconfig.UnitConfiguration{UnitName: ""},
	}, deps)
	if err == nil || faults.KindOf(err) != faults.KindValidation {
		t.Errorf("err = %v, want validation fault", err)
	}
	if store.saves != before {
		t.Error("nothing should be persisted on validation failure")
	}
}
