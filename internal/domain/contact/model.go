package contact

import (
	"errors"
	"strings"
)

// Domain errors
var (
	ErrEmptyName  = errors.New("contact name cannot be empty")
	ErrEmptyPhone = errors.New("contact phone cannot be empty")
	ErrNotInList  = errors.New("contact is not in the list")
	ErrNoOwner    = errors.New("contact must belong to a person")
)

// EmergencyContact belongs to exactly one person. Contacts for a person are
// kept in a dense zero-based SortOrder sequence; every list edit renumbers.
type EmergencyContact struct {
	ID           string
	PersonID     string
	Name         string
	Phone        string
	Relationship string
	SortOrder    int
}

// Validate checks if the EmergencyContact has valid data.
// PRE: EmergencyContact struct is populated
// POST: Returns nil if valid, error otherwise
func (c *EmergencyContact) Validate() error {
	if c.PersonID == "" {
		return ErrNoOwner
	}
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(c.Phone) == "" {
		return ErrEmptyPhone
	}
	return nil
}

// Append returns the list with c added at the end.
// POST: c.SortOrder = max(existing SortOrder) + 1, or 0 for an empty list
func Append(contacts []EmergencyContact, c EmergencyContact) []EmergencyContact {
	next := 0
	for _, existing := range contacts {
		if existing.SortOrder >= next {
			next = existing.SortOrder + 1
		}
	}
	c.SortOrder = next
	return append(contacts, c)
}

// Remove returns the list without the contact with the given ID, renumbered.
// PRE: id is present in the list
// POST: SortOrder values are 0..n-1 with relative order preserved
func Remove(contacts []EmergencyContact, id string) ([]EmergencyContact, error) {
	found := false
	result := make([]EmergencyContact, 0, len(contacts))
	for _, c := range contacts {
		if c.ID == id {
			found = true
			continue
		}
		result = append(result, c)
	}
	if !found {
		return nil, ErrNotInList
	}
	return Renumber(result), nil
}

// Renumber assigns a dense zero-based SortOrder sequence in place,
// preserving the current relative order.
// POST: SortOrder values equal 0..n-1, no gaps, no duplicates
func Renumber(contacts []EmergencyContact) []EmergencyContact {
	for i := range contacts {
		contacts[i].SortOrder = i
	}
	return contacts
}
