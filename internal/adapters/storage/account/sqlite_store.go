package account

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"gums/internal/adapters/storage"
	domain "gums/internal/domain/account"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new account store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const accountColumns = "id, email, password_hash, role, created_at, failed_logins, locked_until"

// scanAccount scans one account row, tolerating a NULL locked_until.
func scanAccount(scan func(dest ...any) error) (domain.Account, error) {
	var a domain.Account
	var createdStr string
	var locked sql.NullString
	if err := scan(&a.ID, &a.Email, &a.PasswordHash, &a.Role, &createdStr, &a.FailedLogins, &locked); err != nil {
		return domain.Account{}, err
	}
	a.CreatedAt, _ = time.Parse(time.RFC3339, createdStr)
	if locked.Valid && locked.String != "" {
		a.LockedUntil, _ = time.Parse(time.RFC3339, locked.String)
	}
	return a, nil
}

// GetByID retrieves an Account by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error wrapping sql.ErrNoRows if absent
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Account, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+accountColumns+" FROM account WHERE id = ?", id)
	a, err := scanAccount(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Account{}, fmt.Errorf("account not found: %w", err)
	}
	return a, err
}

// GetByEmail retrieves an Account by email.
// PRE: email is non-empty
// POST: Returns the entity or an error wrapping sql.ErrNoRows if absent
func (s *SQLiteStore) GetByEmail(ctx context.Context, email string) (domain.Account, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+accountColumns+" FROM account WHERE email = ?", email)
	a, err := scanAccount(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Account{}, fmt.Errorf("account not found: %w", err)
	}
	return a, err
}

// Save persists an Account to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, value domain.Account) error {
	var locked any
	if !value.LockedUntil.IsZero() {
		locked = value.LockedUntil.Format(time.RFC3339)
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO account (id, email, password_hash, role, created_at, failed_logins, locked_until)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET email=excluded.email, password_hash=excluded.password_hash,
		 role=excluded.role, failed_logins=excluded.failed_logins, locked_until=excluded.locked_until`,
		value.ID, value.Email, value.PasswordHash, value.Role,
		value.CreatedAt.Format(time.RFC3339), value.FailedLogins, locked,
	)
	return err
}

// List retrieves all Accounts ordered by email.
// PRE: none
// POST: Returns all accounts
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Account, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+accountColumns+" FROM account ORDER BY email")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Account
	for rows.Next() {
		a, err := scanAccount(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, a)
	}
	return results, rows.Err()
}

// Count returns the total number of accounts.
// PRE: none
// POST: Returns count >= 0
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM account").Scan(&n)
	return n, err
}
