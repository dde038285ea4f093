package term_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"gums/internal/adapters/storage"
	termStore "gums/internal/adapters/storage/term"
	domain "gums/internal/domain/term"
)

// openStore creates a migrated in-memory database and a term store over it.
func openStore(t *testing.T) *termStore.SQLiteStore {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := storage.MigrateDB(db); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	return termStore.NewSQLiteStore(db)
}

func mkTerm(id, name string, start, end time.Time) domain.Term {
	return domain.Term{ID: id, Name: name, StartDate: start, EndDate: end, SubsAmount: 2000}
}

// TestSQLiteStore_SaveAndList verifies round-trip and start-date ordering.
func TestSQLiteStore_SaveAndList(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	t1 := mkTerm("t1", "Autumn 2025", time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 12, 15, 0, 0, 0, 0, time.UTC))
	t2 := mkTerm("t2", "Spring 2025", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC))
	for _, tm := range []domain.Term{t1, t2} {
		if err := store.Save(ctx, tm); err != nil {
			t.Fatalf("Save(%s) error = %v", tm.ID, err)
		}
	}

	list, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("len = %d, want 2", len(list))
	}
	if list[0].ID != "t2" || list[1].ID != "t1" {
		t.Errorf("list not ordered by start date: %s, %s", list[0].ID, list[1].ID)
	}
	if list[0].SubsAmount != 2000 {
		t.Errorf("SubsAmount = %d, want 2000", list[0].SubsAmount)
	}
	if !list[0].StartDate.Equal(t2.StartDate) {
		t.Errorf("StartDate = %v, want %v", list[0].StartDate, t2.StartDate)
	}
}

// TestSQLiteStore_SaveOverwrites verifies upsert semantics.
func TestSQLiteStore_SaveOverwrites(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	tm := mkTerm("t1", "Spring 2025", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC))
	if err := store.Save(ctx, tm); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	tm.Name = "Spring Term 2025"
	tm.SubsAmount = 2500
	if err := store.Save(ctx, tm); err != nil {
		t.Fatalf("second Save() error = %v", err)
	}

	got, err := store.GetByID(ctx, "t1")
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Name != "Spring Term 2025" || got.SubsAmount != 2500 {
		t.Errorf("got %q/%d, want updated values", got.Name, got.SubsAmount)
	}
}

// TestSQLiteStore_GetByID_NotFound verifies the missing-row error wraps sql.ErrNoRows.
func TestSQLiteStore_GetByID_NotFound(t *testing.T) {
	store := openStore(t)
	_, err := store.GetByID(context.Background(), "missing")
	if err == nil {
		t.Fatal("expected error for missing term")
	}
}

// TestSQLiteStore_Delete verifies delete reports whether a row was removed.
func TestSQLiteStore_Delete(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	tm := mkTerm("t1", "Spring 2025", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC))
	if err := store.Save(ctx, tm); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	removed, err := store.Delete(ctx, "t1")
	if err != nil || !removed {
		t.Fatalf("Delete() = (%v, %v), want (true, nil)", removed, err)
	}
	removed, err = store.Delete(ctx, "t1")
	if err != nil || removed {
		t.Fatalf("repeat Delete() = (%v, %v), want (false, nil)", removed, err)
	}
}
