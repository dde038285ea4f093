package orchestrators

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"gums/internal/application/faults"
	"gums/internal/domain/contact"
	"gums/internal/domain/person"
)

// ContactStoreForEdit defines the store interface needed by the contact editors.
type ContactStoreForEdit interface {
	ListByPersonID(ctx context.Context, personID string) ([]contact.EmergencyContact, error)
	ReplaceForPerson(ctx context.Context, personID string, contacts []contact.EmergencyContact) error
}

// PersonStoreForContacts defines the person lookup needed by the contact editors.
type PersonStoreForContacts interface {
	GetByID(ctx context.Context, id string) (person.Person, error)
}

// AddContactInput carries input for the add-contact orchestrator.
type AddContactInput struct {
	PersonID     string
	Name         string
	Phone        string
	Relationship string
}

// AddContactDeps holds dependencies for AddContact.
type AddContactDeps struct {
	ContactStore ContactStoreForEdit
	PersonStore  PersonStoreForContacts
}

// ExecuteAddContact appends an emergency contact to a person's list.
// PRE: PersonID refers to an existing person
// POST: Contact is stored at SortOrder = max(existing) + 1 (0 for an empty list)
func ExecuteAddContact(ctx context.Context, input AddContactInput, deps AddContactDeps) (contact.EmergencyContact, error) {
	if _, err := deps.PersonStore.GetByID(ctx, input.PersonID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return contact.EmergencyContact{}, faults.NotFound("person")
		}
		return contact.EmergencyContact{}, faults.Storage("load person", err)
	}

	c := contact.EmergencyContact{
		ID:           uuid.New().String(),
		PersonID:     input.PersonID,
		Name:         input.Name,
		Phone:        input.Phone,
		Relationship: input.Relationship,
	}
	if err := c.Validate(); err != nil {
		return contact.EmergencyContact{}, faults.Validation(err)
	}

	existing, err := deps.ContactStore.ListByPersonID(ctx, input.PersonID)
	if err != nil {
		return contact.EmergencyContact{}, faults.Storage("load emergency contacts", err)
	}
	updated := contact.Append(existing, c)
	if err := deps.ContactStore.ReplaceForPerson(ctx, input.PersonID, updated); err != nil {
		return contact.EmergencyContact{}, faults.Storage("save emergency contacts", err)
	}

	slog.Info("contact_event", "event", "contact_added", "person_id", input.PersonID, "contact_id", c.ID)
	return updated[len(updated)-1], nil
}

// RemoveContactInput carries input for the remove-contact orchestrator.
type RemoveContactInput struct {
	PersonID  string
	ContactID string
}

// RemoveContactDeps holds dependencies for RemoveContact.
type RemoveContactDeps struct {
	ContactStore ContactStoreForEdit
}

// ExecuteRemoveContact deletes one contact and renumbers the rest.
// PRE: ContactID is in the person's list
// POST: Remaining SortOrder values are 0..n-1 with relative order preserved
func ExecuteRemoveContact(ctx context.Context, input RemoveContactInput, deps RemoveContactDeps) error {
	if input.PersonID == "" || input.ContactID == "" {
		return faults.Validation(errors.New("person ID and contact ID are required"))
	}

	existing, err := deps.ContactStore.ListByPersonID(ctx, input.PersonID)
	if err != nil {
		return faults.Storage("load emergency contacts", err)
	}
	updated, err := contact.Remove(existing, input.ContactID)
	if err != nil {
		return faults.NotFound("emergency contact")
	}
	if err := deps.ContactStore.ReplaceForPerson(ctx, input.PersonID, updated); err != nil {
		return faults.Storage("save emergency contacts", err)
	}

	slog.Info("contact_event", "event", "contact_removed", "person_id", input.PersonID, "contact_id", input.ContactID)
	return nil
}
