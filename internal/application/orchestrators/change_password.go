package orchestrators

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"gums/internal/application/faults"
	"gums/internal/domain/account"
)

// AccountStoreForPassword defines the store interface needed by ChangePassword.
type AccountStoreForPassword interface {
	GetByID(ctx context.Context, id string) (account.Account, error)
	Save(ctx context.Context, value account.Account) error
}

// ChangePasswordInput carries input for the change-password orchestrator.
type ChangePasswordInput struct {
	AccountID       string
	CurrentPassword string
	NewPassword     string
}

// ChangePasswordDeps holds dependencies for ChangePassword.
type ChangePasswordDeps struct {
	AccountStore AccountStoreForPassword
}

// ExecuteChangePassword verifies the current password and stores a new hash.
// PRE: AccountID refers to an existing account; current password is correct
// POST: PasswordHash replaced
func ExecuteChangePassword(ctx context.Context, input ChangePasswordInput, deps ChangePasswordDeps) error {
	if input.AccountID == "" {
		return faults.Validation(errors.New("account ID is required"))
	}

	acct, err := deps.AccountStore.GetByID(ctx, input.AccountID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return faults.NotFound("account")
		}
		return faults.Storage("load account", err)
	}

	if err := acct.CheckPassword(input.CurrentPassword); err != nil {
		return faults.Validation(err)
	}
	if err := acct.SetPassword(input.NewPassword); err != nil {
		return faults.Validation(err)
	}

	if err := deps.AccountStore.Save(ctx, acct); err != nil {
		return faults.Storage("save account", err)
	}

	slog.Info("account_event", "event", "password_changed", "account_id", input.AccountID)
	return nil
}
