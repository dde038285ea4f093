package unitconfig

import (
	"errors"
	"strings"
	"time"
)

// SingletonID is the fixed row ID of the unit configuration.
// At most one configuration row exists system-wide.
const SingletonID = "unit"

// Max length constants for user-editable fields.
const (
	MaxUnitNameLength = 100
)

// Domain errors
var (
	ErrNotInitialized = errors.New("unit configuration has not been initialized")
	ErrEmptyUnitName  = errors.New("unit name cannot be empty")
	ErrInvalidEmail   = errors.New("contact email must be valid")
)

// UnitConfiguration holds unit-wide settings. Exactly one row exists after
// system initialization; EnsureDefault inserts it on first run.
type UnitConfiguration struct {
	ID             string
	UnitName       string
	District       string
	ContactName    string
	ContactEmail   string
	ContactPhone   string
	MeetingNight   string
	MeetingVenue   string
	WelcomeMessage string // markdown, rendered on the home page
	UpdatedAt      time.Time
}

// NewDefault returns the configuration row inserted on first run.
// POST: Returned configuration passes Validate
func NewDefault(now time.Time) UnitConfiguration {
	return UnitConfiguration{
		ID:             SingletonID,
		UnitName:       "New Unit",
		MeetingNight:   "Wednesday",
		WelcomeMessage: "Welcome to your new unit. Update these details on the configuration page.",
		UpdatedAt:      now,
	}
}

// Validate checks if the UnitConfiguration has valid data.
// PRE: UnitConfiguration struct is populated
// POST: Returns nil if valid, error otherwise
func (c *UnitConfiguration) Validate() error {
	if strings.TrimSpace(c.UnitName) == "" {
		return ErrEmptyUnitName
	}
	if len(c.UnitName) > MaxUnitNameLength {
		return errors.New("unit name cannot exceed 100 characters")
	}
	if c.ContactEmail != "" && !strings.Contains(c.ContactEmail, "@") {
		return ErrInvalidEmail
	}
	return nil
}
