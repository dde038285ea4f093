package orchestrators

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"gums/internal/application/faults"
	domainPerson "gums/internal/domain/person"
)

type mockPersonStore struct {
	people map[string]domainPerson.Person
}

func newMockPersonStore() *mockPersonStore {
	return &mockPersonStore{people: make(map[string]domainPerson.Person)}
}

// GetByID returns a stored person by ID.
// PRE: id is non-empty
// POST: Returns the person or an error wrapping sql.ErrNoRows
func (m *mockPersonStore) GetByID(_ context.Context, id string) (domainPerson.Person, error) {
	p, ok := m.people[id]
	if !ok {
		return domainPerson.Person{}, fmt.Errorf("person not found: %w", sql.ErrNoRows)
	}
	return p, nil
}

// Save stores the person in memory.
// PRE: person has an ID
// POST: Person is stored
func (m *mockPersonStore) Save(_ context.Context, value domainPerson.Person) error {
	m.people[value.ID] = value
	return nil
}

// Delete removes the person, reporting whether they existed.
// PRE: id is non-empty
// POST: Person removed if present
func (m *mockPersonStore) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := m.people[id]; !ok {
		return false, nil
	}
	delete(m.people, id)
	return true, nil
}

type mockContactCleanup struct {
	deleted []string
}

// DeleteForPerson records the cleanup call.
// PRE: personID is non-empty
// POST: personID recorded
func (m *mockContactCleanup) DeleteForPerson(_ context.Context, personID string) error {
	m.deleted = append(m.deleted, personID)
	return nil
}

// TestExecuteSavePerson_CreateDefaults verifies create assigns ID, status, and join date.
func TestExecuteSavePerson_CreateDefaults(t *testing.T) {
	store := newMockPersonStore()
	saved, err := ExecuteSavePerson(context.Background(), SavePersonInput{Person: domainPerson.Person{
		Name: "Amy", PersonType: domainPerson.TypeGirl, Section: domainPerson.SectionBrownie,
	}}, SavePersonDeps{PersonStore: store})
	if err != nil {
		t.Fatalf("ExecuteSavePerson() error = %v", err)
	}
	if saved.ID == "" || saved.Status != domainPerson.StatusActive || saved.JoinedAt.IsZero() {
		t.Errorf("create defaults not applied: %+v", saved)
	}
}

// TestExecuteSavePerson_Faults verifies validation and not-found faults.
func TestExecuteSavePerson_Faults(t *testing.T) {
	store := newMockPersonStore()
	deps := SavePersonDeps{PersonStore: store}

	_, err := ExecuteSavePerson(context.Background(), SavePersonInput{Person: domainPerson.Person{
		Name: "Amy", PersonType: domainPerson.TypeGirl, // no section
	}}, deps)
	if err == nil || faults.KindOf(err) != faults.KindValidation {
		t.Errorf("girl without section: err = %v, want validation fault", err)
	}

	_, err = ExecuteSavePerson(context.Background(), SavePersonInput{Person: domainPerson.Person{
		ID: "missing", Name: "Amy", PersonType: domainPerson.TypeGirl, Section: domainPerson.SectionGuide,
	}}, deps)
	if err == nil || faults.KindOf(err) != faults.KindNotFound {
		t.Errorf("update of missing person: err = %v, want not_found fault", err)
	}
}

// TestExecuteSetPersonStatus verifies deactivate and reactivate round-trip.
func TestExecuteSetPersonStatus(t *testing.T) {
	store := newMockPersonStore()
	saved, err := ExecuteSavePerson(context.Background(), SavePersonInput{Person: domainPerson.Person{
		Name: "Brown Owl", PersonType: domainPerson.TypeLeader,
	}}, SavePersonDeps{PersonStore: store})
	if err != nil {
		t.Fatalf("create error = %v", err)
	}

	deps := SetPersonStatusDeps{PersonStore: store}
	if err := ExecuteSetPersonStatus(context.Background(), SetPersonStatusInput{PersonID: saved.ID, Active: false}, deps); err != nil {
		t.Fatalf("deactivate error = %v", err)
	}
	if store.people[saved.ID].Status != domainPerson.StatusInactive {
		t.Error("person should be inactive")
	}

	// Deactivating again trips the domain guard
	err = ExecuteSetPersonStatus(context.Background(), SetPersonStatusInput{PersonID: saved.ID, Active: false}, deps)
	if err == nil || faults.KindOf(err) != faults.KindValidation {
		t.Errorf("double deactivate: err = %v, want validation fault", err)
	}

	if err := ExecuteSetPersonStatus(context.Background(), SetPersonStatusInput{PersonID: saved.ID, Active: true}, deps); err != nil {
		t.Fatalf("reactivate error = %v", err)
	}
	if store.people[saved.ID].Status != domainPerson.StatusActive {
		t.Error("person should be active again")
	}
}

// TestExecuteDeletePerson verifies contacts are removed before the person.
func TestExecuteDeletePerson(t *testing.T) {
	store := newMockPersonStore()
	contacts := &mockContactCleanup{}
	saved, err := ExecuteSavePerson(context.Background(), SavePersonInput{Person: domainPerson.Person{
		Name: "Amy", PersonType: domainPerson.TypeGirl, Section: domainPerson.SectionRainbow,
	}}, SavePersonDeps{PersonStore: store})
	if err != nil {
		t.Fatalf("create error = %v", err)
	}

	deps := DeletePersonDeps{PersonStore: store, ContactStore: contacts}
	if err := ExecuteDeletePerson(context.Background(), DeletePersonInput{PersonID: saved.ID}, deps); err != nil {
		t.Fatalf("delete error = %v", err)
	}
	if len(contacts.deleted) != 1 || contacts.deleted[0] != saved.ID {
		t.Errorf("contact cleanup calls = %v, want [%s]", contacts.deleted, saved.ID)
	}
	if _, ok := store.people[saved.ID]; ok {
		t.Error("person should be removed")
	}

	// Repeat delete is a not-found fault
	err = ExecuteDeletePerson(context.Background(), DeletePersonInput{PersonID: saved.ID}, deps)
	if err == nil || faults.KindOf(err) != faults.KindNotFound {
		t.Errorf("repeat delete: err = %v, want not_found fault", err)
	}
}
