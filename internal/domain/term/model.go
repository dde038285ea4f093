package term

import (
	"errors"
	"strings"
	"time"
)

// Defaults applied when an admin opens the new-term form.
const (
	DefaultSubsAmount   = 2000 // cents ($20.00)
	DefaultLengthMonths = 3
)

// Domain errors
var (
	ErrEmptyName      = errors.New("term name cannot be empty")
	ErrInvalidDates   = errors.New("start date must be before end date")
	ErrEmptyStartDate = errors.New("start date cannot be zero")
	ErrEmptyEndDate   = errors.New("end date cannot be zero")
	ErrNegativeSubs   = errors.New("subs amount cannot be negative")
)

// Term represents one operating period of the unit (e.g. a school term)
// with the subscription fee charged for it. SubsAmount is in cents.
type Term struct {
	ID         string
	Name       string
	StartDate  time.Time
	EndDate    time.Time
	SubsAmount int
}

// NewDefault returns an unsaved term pre-filled with form defaults:
// a three-month range starting today and the standard subs amount.
// POST: Returned term has no ID and no name
func NewDefault(now time.Time) Term {
	start := now.Truncate(24 * time.Hour)
	return Term{
		StartDate:  start,
		EndDate:    start.AddDate(0, DefaultLengthMonths, 0),
		SubsAmount: DefaultSubsAmount,
	}
}

// Validate checks if the Term has valid data.
// PRE: Term struct is populated
// POST: Returns nil if valid, error otherwise
func (t *Term) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return ErrEmptyName
	}
	if t.StartDate.IsZero() {
		return ErrEmptyStartDate
	}
	if t.EndDate.IsZero() {
		return ErrEmptyEndDate
	}
	if !t.StartDate.Before(t.EndDate) {
		return ErrInvalidDates
	}
	if t.SubsAmount < 0 {
		return ErrNegativeSubs
	}
	return nil
}

// Contains returns true if the given date falls within this term,
// inclusive of both the first and last day.
// INVARIANT: Term fields are not mutated
func (t *Term) Contains(date time.Time) bool {
	d := date.Truncate(24 * time.Hour)
	start := t.StartDate.Truncate(24 * time.Hour)
	end := t.EndDate.Truncate(24 * time.Hour)
	return (d.Equal(start) || d.After(start)) && (d.Equal(end) || d.Before(end))
}

// IsFuture returns true if the term has not started yet.
// INVARIANT: Term fields are not mutated
func (t *Term) IsFuture(date time.Time) bool {
	return t.StartDate.Truncate(24 * time.Hour).After(date.Truncate(24 * time.Hour))
}

// IsPast returns true if the term has already ended.
// INVARIANT: Term fields are not mutated
func (t *Term) IsPast(date time.Time) bool {
	return t.EndDate.Truncate(24 * time.Hour).Before(date.Truncate(24 * time.Hour))
}
