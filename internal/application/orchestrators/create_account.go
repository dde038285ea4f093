package orchestrators

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"gums/internal/adapters/email"
	"gums/internal/application/faults"
	"gums/internal/domain/account"
)

// AccountStoreForCreate defines the store interface needed by CreateAccount.
type AccountStoreForCreate interface {
	GetByEmail(ctx context.Context, email string) (account.Account, error)
	Save(ctx context.Context, value account.Account) error
	Count(ctx context.Context) (int, error)
}

// CreateAccountInput carries input for the orchestrator.
type CreateAccountInput struct {
	Email    string
	Password string
	Role     string
}

// CreateAccountDeps holds dependencies for CreateAccount.
// EmailSender is optional; nil skips the invitation email.
// FromAddress and ReplyTo are passed through to the sender when set.
type CreateAccountDeps struct {
	AccountStore AccountStoreForCreate
	EmailSender  email.Sender
	UnitName     string
	FromAddress  string
	ReplyTo      string
}

// ErrEmailAlreadyExists is returned when a second account reuses an email.
var ErrEmailAlreadyExists = errors.New("an account with this email already exists")

// ExecuteCreateAccount creates a sign-in account and emails an invitation.
// PRE: Valid email, password >= 12 chars, valid role
// POST: Account created with hashed password; invitation sent when a sender is wired
// INVARIANT: Email must be unique
func ExecuteCreateAccount(ctx context.Context, input CreateAccountInput, deps CreateAccountDeps) (string, error) {
	if input.Email == "" {
		return "", faults.Validation(account.ErrEmptyEmail)
	}
	if input.Password == "" {
		return "", faults.Validation(account.ErrEmptyPassword)
	}

	// Uniqueness check
	if _, err := deps.AccountStore.GetByEmail(ctx, input.Email); err == nil {
		return "", faults.Validation(ErrEmailAlreadyExists)
	}

	acct := account.Account{
		ID:        uuid.New().String(),
		Email:     input.Email,
		Role:      input.Role,
		CreatedAt: time.Now(),
	}
	if err := acct.Validate(); err != nil {
		return "", faults.Validation(err)
	}
	if err := acct.SetPassword(input.Password); err != nil {
		return "", faults.Validation(err)
	}

	if err := deps.AccountStore.Save(ctx, acct); err != nil {
		return "", faults.Storage("save account", err)
	}

	slog.Info("account_event", "event", "account_created", "email", input.Email, "role", input.Role)

	// Invitation email is best-effort; account creation already succeeded.
	if deps.EmailSender != nil {
		unit := deps.UnitName
		if unit == "" {
			unit = "your unit"
		}
		_, err := deps.EmailSender.Send(ctx, email.SendRequest{
			To:      []string{input.Email},
			From:    deps.FromAddress,
			ReplyTo: deps.ReplyTo,
			Subject: fmt.Sprintf("You have been given access to GUMS for %s", unit),
			HTML: fmt.Sprintf("<p>An administrator has created a %s account for you on GUMS, the membership system for %s.</p>"+
				"<p>Sign in with this email address and the password they gave you, then change it.</p>", input.Role, unit),
		})
		if err != nil {
			slog.Warn("account_event", "event", "invitation_email_failed", "email", input.Email, "error", err.Error())
		}
	}

	return acct.ID, nil
}

// ExecuteSeedAdmin creates a default admin account if no accounts exist.
// Safe to call on every process start.
// PRE: Database is initialized
// POST: Admin account created if count == 0
func ExecuteSeedAdmin(ctx context.Context, deps CreateAccountDeps, adminEmail, adminPassword string) error {
	count, err := deps.AccountStore.Count(ctx)
	if err != nil {
		return faults.Storage("count accounts", err)
	}
	if count > 0 {
		return nil
	}

	// No invitation for the bootstrap admin
	seedDeps := deps
	seedDeps.EmailSender = nil
	if _, err := ExecuteCreateAccount(ctx, CreateAccountInput{
		Email:    adminEmail,
		Password: adminPassword,
		Role:     account.RoleAdmin,
	}, seedDeps); err != nil {
		return err
	}

	slog.Info("account_event", "event", "admin_seeded", "email", adminEmail)
	return nil
}
