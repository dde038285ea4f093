package projections

import (
	"context"
	"database/sql"
	"errors"

	"gums/internal/application/faults"
	"gums/internal/domain/contact"
	"gums/internal/domain/person"
)

// ProfilePersonStore defines the person lookup needed by the profile projection.
type ProfilePersonStore interface {
	GetByID(ctx context.Context, id string) (person.Person, error)
}

// ProfileContactStore defines the contact lookup needed by the profile projection.
type ProfileContactStore interface {
	ListByPersonID(ctx context.Context, personID string) ([]contact.EmergencyContact, error)
}

// GetMemberProfileQuery carries input for the profile projection.
type GetMemberProfileQuery struct {
	PersonID string
}

// GetMemberProfileDeps holds dependencies for the profile projection.
type GetMemberProfileDeps struct {
	PersonStore  ProfilePersonStore
	ContactStore ProfileContactStore
}

// MemberProfileResult carries a person with their ordered emergency contacts.
type MemberProfileResult struct {
	Person   person.Person
	Contacts []contact.EmergencyContact
}

// QueryGetMemberProfile loads one person and their contacts in SortOrder.
// PRE: PersonID is non-empty
// POST: Contacts are ordered 0..n-1
func QueryGetMemberProfile(ctx context.Context, query GetMemberProfileQuery, deps GetMemberProfileDeps) (MemberProfileResult, error) {
	if query.PersonID == "" {
		return MemberProfileResult{}, faults.Validation(errors.New("person ID is required"))
	}

	p, err := deps.PersonStore.GetByID(ctx, query.PersonID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return MemberProfileResult{}, faults.NotFound("person")
		}
		return MemberProfileResult{}, faults.Storage("load person", err)
	}

	contacts, err := deps.ContactStore.ListByPersonID(ctx, query.PersonID)
	if err != nil {
		return MemberProfileResult{}, faults.Storage("load emergency contacts", err)
	}
	return MemberProfileResult{Person: p, Contacts: contacts}, nil
}
