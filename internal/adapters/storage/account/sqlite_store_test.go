package account_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"gums/internal/adapters/storage"
	accountStore "gums/internal/adapters/storage/account"
	domain "gums/internal/domain/account"
)

func openStore(t *testing.T) *accountStore.SQLiteStore {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:?_pragma=foreign_keys(ON)")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := storage.MigrateDB(db); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	return accountStore.NewSQLiteStore(db)
}

func admin(id, email string) domain.Account {
	return domain.Account{
		ID: id, Email: email, PasswordHash: "$2a$10$fakehash",
		Role:      domain.RoleAdmin,
		CreatedAt: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

// TestSQLiteStore_SaveAndGet verifies the round-trip by ID and by email.
func TestSQLiteStore_SaveAndGet(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, admin("a1", "leader@unit.org.nz")); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	byID, err := store.GetByID(ctx, "a1")
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if byID.Email != "leader@unit.org.nz" || byID.Role != domain.RoleAdmin {
		t.Errorf("GetByID() = %+v", byID)
	}

	byEmail, err := store.GetByEmail(ctx, "leader@unit.org.nz")
	if err != nil {
		t.Fatalf("GetByEmail() error = %v", err)
	}
	if byEmail.ID != "a1" {
		t.Errorf("GetByEmail() ID = %q, want a1", byEmail.ID)
	}
}

// TestSQLiteStore_GetMissing verifies absence wraps sql.ErrNoRows for both lookups.
func TestSQLiteStore_GetMissing(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	if _, err := store.GetByID(ctx, "nope"); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("GetByID() error = %v, want sql.ErrNoRows", err)
	}
	if _, err := store.GetByEmail(ctx, "nope@unit.org.nz"); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("GetByEmail() error = %v, want sql.ErrNoRows", err)
	}
}

// TestSQLiteStore_LockoutRoundTrip verifies failed login state and the
// lockout timestamp survive an update.
func TestSQLiteStore_LockoutRoundTrip(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	a := admin("a1", "leader@unit.org.nz")
	if err := store.Save(ctx, a); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := store.GetByID(ctx, "a1")
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.FailedLogins != 0 || !got.LockedUntil.IsZero() {
		t.Fatalf("fresh account carries lockout state: %+v", got)
	}

	a.FailedLogins = 5
	a.LockedUntil = time.Date(2025, 3, 1, 9, 15, 0, 0, time.UTC)
	if err := store.Save(ctx, a); err != nil {
		t.Fatalf("Save() with lockout error = %v", err)
	}
	got, err = store.GetByID(ctx, "a1")
	if err != nil {
		t.Fatalf("GetByID() after lockout error = %v", err)
	}
	if got.FailedLogins != 5 || !got.LockedUntil.Equal(a.LockedUntil) {
		t.Errorf("lockout state = %d until %v, want 5 until %v",
			got.FailedLogins, got.LockedUntil, a.LockedUntil)
	}
}

// TestSQLiteStore_ListAndCount verifies ordering by email and the count.
func TestSQLiteStore_ListAndCount(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	leader := admin("a2", "alpha@unit.org.nz")
	leader.Role = domain.RoleLeader
	for _, a := range []domain.Account{admin("a1", "zulu@unit.org.nz"), leader} {
		if err := store.Save(ctx, a); err != nil {
			t.Fatalf("Save(%s) error = %v", a.ID, err)
		}
	}

	got, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != 2 || got[0].Email != "alpha@unit.org.nz" || got[1].Email != "zulu@unit.org.nz" {
		t.Errorf("List() = %+v, want alpha then zulu", got)
	}

	n, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if n != 2 {
		t.Errorf("Count() = %d, want 2", n)
	}
}
