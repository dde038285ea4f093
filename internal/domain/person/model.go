package person

import (
	"errors"
	"strings"
	"time"
)

// Max length constants for user-editable fields.
const (
	MaxNameLength = 100
)

// Person type constants
const (
	TypeLeader = "leader"
	TypeGirl   = "girl"
)

// Section constants (age-banded subgroups for girl members).
const (
	SectionRainbow = "rainbow"
	SectionBrownie = "brownie"
	SectionGuide   = "guide"
	SectionRanger  = "ranger"
)

// Status constants
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Sections lists all valid section values in age order.
var Sections = []string{SectionRainbow, SectionBrownie, SectionGuide, SectionRanger}

// Domain errors
var (
	ErrAlreadyActive   = errors.New("person is already active")
	ErrAlreadyInactive = errors.New("person is already inactive")
)

// Person holds a membership record: a leader or a girl member of the unit.
type Person struct {
	ID          string
	Name        string
	PersonType  string
	Section     string // required for girls, empty for leaders
	Status      string
	DateOfBirth time.Time // optional
	JoinedAt    time.Time
}

// Validate checks if the Person has valid data.
// PRE: Person struct is initialized
// POST: Returns error if validation fails, nil otherwise
// INVARIANT: Girls must have a valid section; leaders must not carry one
func (p *Person) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.New("person name cannot be empty")
	}
	if len(p.Name) > MaxNameLength {
		return errors.New("person name cannot exceed 100 characters")
	}
	if p.PersonType != TypeLeader && p.PersonType != TypeGirl {
		return errors.New("person type must be 'leader' or 'girl'")
	}
	if p.PersonType == TypeGirl && !isValidSection(p.Section) {
		return errors.New("section must be one of: rainbow, brownie, guide, ranger")
	}
	if p.PersonType == TypeLeader && p.Section != "" {
		return errors.New("leaders do not belong to a section")
	}
	if p.Status != StatusActive && p.Status != StatusInactive {
		return errors.New("status must be 'active' or 'inactive'")
	}
	return nil
}

// IsActive returns true if the person is a current member.
// INVARIANT: Status field is not mutated
func (p *Person) IsActive() bool {
	return p.Status == StatusActive
}

// Deactivate marks the person as no longer a current member.
// PRE: Person is currently active
// POST: Status is set to inactive
func (p *Person) Deactivate() error {
	if p.Status == StatusInactive {
		return ErrAlreadyInactive
	}
	p.Status = StatusInactive
	return nil
}

// Reactivate restores an inactive person to active membership.
// PRE: Person is currently inactive
// POST: Status is set to active
func (p *Person) Reactivate() error {
	if p.Status == StatusActive {
		return ErrAlreadyActive
	}
	p.Status = StatusActive
	return nil
}

func isValidSection(section string) bool {
	for _, s := range Sections {
		if section == s {
			return true
		}
	}
	return false
}
