package contact_test

import (
	"testing"

	"gums/internal/domain/contact"
)

// checkDense verifies the dense zero-based SortOrder invariant.
func checkDense(t *testing.T, contacts []contact.EmergencyContact) {
	t.Helper()
	for i, c := range contacts {
		if c.SortOrder != i {
			t.Errorf("contacts[%d].SortOrder = %d, want %d", i, c.SortOrder, i)
		}
	}
}

// TestEmergencyContact_Validate tests validation of EmergencyContact.
func TestEmergencyContact_Validate(t *testing.T) {
	tests := []struct {
		name    string
		contact contact.EmergencyContact
		wantErr bool
	}{
		{
			name:    "valid contact",
			contact: contact.EmergencyContact{ID: "c1", PersonID: "p1", Name: "Jan Smith", Phone: "021 555 0100", Relationship: "mother"},
			wantErr: false,
		},
		{
			name:    "missing owner",
			contact: contact.EmergencyContact{ID: "c2", Name: "Jan Smith", Phone: "021 555 0100"},
			wantErr: true,
		},
		{
			name:    "empty name",
			contact: contact.EmergencyContact{ID: "c3", PersonID: "p1", Name: " ", Phone: "021 555 0100"},
			wantErr: true,
		},
		{
			name:    "empty phone",
			contact: contact.EmergencyContact{ID: "c4", PersonID: "p1", Name: "Jan Smith", Phone: ""},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.contact.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("EmergencyContact.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestAppend verifies SortOrder assignment on append.
func TestAppend(t *testing.T) {
	var contacts []contact.EmergencyContact

	contacts = contact.Append(contacts, contact.EmergencyContact{ID: "a", PersonID: "p1", Name: "A", Phone: "1"})
	if contacts[0].SortOrder != 0 {
		t.Errorf("first contact SortOrder = %d, want 0", contacts[0].SortOrder)
	}

	contacts = contact.Append(contacts, contact.EmergencyContact{ID: "b", PersonID: "p1", Name: "B", Phone: "2"})
	contacts = contact.Append(contacts, contact.EmergencyContact{ID: "c", PersonID: "p1", Name: "C", Phone: "3"})
	checkDense(t, contacts)
}

// TestRemove verifies renumbering after removal.
func TestRemove(t *testing.T) {
	var contacts []contact.EmergencyContact
	for _, id := range []string{"a", "b", "c", "d"} {
		contacts = contact.Append(contacts, contact.EmergencyContact{ID: id, PersonID: "p1", Name: id, Phone: "1"})
	}

	// Remove from the middle
	contacts, err := contact.Remove(contacts, "b")
	if err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if len(contacts) != 3 {
		t.Fatalf("len = %d, want 3", len(contacts))
	}
	checkDense(t, contacts)
	if contacts[0].ID != "a" || contacts[1].ID != "c" || contacts[2].ID != "d" {
		t.Errorf("relative order not preserved: %v %v %v", contacts[0].ID, contacts[1].ID, contacts[2].ID)
	}

	// Remove head and tail
	contacts, err = contact.Remove(contacts, "a")
	if err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	checkDense(t, contacts)
	contacts, err = contact.Remove(contacts, "d")
	if err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	checkDense(t, contacts)
	if len(contacts) != 1 || contacts[0].ID != "c" {
		t.Errorf("remaining contact = %+v, want ID c", contacts)
	}

	// Removing an absent ID fails
	if _, err := contact.Remove(contacts, "zz"); err == nil {
		t.Error("Remove of absent ID should fail")
	}
}

// TestAppend_AfterRemovalGap verifies append continues from the highest SortOrder.
func TestAppend_AfterRemovalGap(t *testing.T) {
	contacts := []contact.EmergencyContact{
		{ID: "a", PersonID: "p1", Name: "A", Phone: "1", SortOrder: 0},
		{ID: "b", PersonID: "p1", Name: "B", Phone: "2", SortOrder: 5}, // gap from legacy data
	}
	contacts = contact.Append(contacts, contact.EmergencyContact{ID: "c", PersonID: "p1", Name: "C", Phone: "3"})
	if contacts[2].SortOrder != 6 {
		t.Errorf("appended SortOrder = %d, want 6", contacts[2].SortOrder)
	}

	contacts = contact.Renumber(contacts)
	checkDense(t, contacts)
}
