package projections

import (
	"context"
	"testing"

	domainPerson "gums/internal/domain/person"
)

type mockMembershipPersonStore struct {
	people []domainPerson.Person
}

// ListActive returns the seeded people.
// PRE: none
// POST: Returns all seeded people
func (m *mockMembershipPersonStore) ListActive(_ context.Context) ([]domainPerson.Person, error) {
	return m.people, nil
}

func girl(id, section string) domainPerson.Person {
	return domainPerson.Person{ID: id, Name: id, PersonType: domainPerson.TypeGirl,
		Section: section, Status: domainPerson.StatusActive}
}

func leader(id string) domainPerson.Person {
	return domainPerson.Person{ID: id, Name: id, PersonType: domainPerson.TypeLeader,
		Status: domainPerson.StatusActive}
}

// TestQueryGetMembershipSummary_Counts verifies the single-pass tally.
func TestQueryGetMembershipSummary_Counts(t *testing.T) {
	deps := GetMembershipSummaryDeps{PersonStore: &mockMembershipPersonStore{people: []domainPerson.Person{
		leader("l1"), leader("l2"), leader("l3"),
		girl("g1", domainPerson.SectionRainbow), girl("g2", domainPerson.SectionRainbow),
		girl("g3", domainPerson.SectionBrownie),
	}}}

	summary, err := QueryGetMembershipSummary(context.Background(), deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.Total != 6 {
		t.Errorf("Total = %d, want 6", summary.Total)
	}
	if summary.Leaders != 3 {
		t.Errorf("Leaders = %d, want 3", summary.Leaders)
	}
	if summary.Sections[domainPerson.SectionRainbow] != 2 {
		t.Errorf("rainbow = %d, want 2", summary.Sections[domainPerson.SectionRainbow])
	}
	if summary.Sections[domainPerson.SectionBrownie] != 1 {
		t.Errorf("brownie = %d, want 1", summary.Sections[domainPerson.SectionBrownie])
	}
	if summary.Sections[domainPerson.SectionGuide] != 0 || summary.Sections[domainPerson.SectionRanger] != 0 {
		t.Errorf("empty sections should tally zero: %+v", summary.Sections)
	}

	// Total equals leaders plus every section count
	sectionSum := 0
	for _, n := range summary.Sections {
		sectionSum += n
	}
	if summary.Total != summary.Leaders+sectionSum {
		t.Errorf("Total %d != Leaders %d + sections %d", summary.Total, summary.Leaders, sectionSum)
	}
}

// TestQueryGetMembershipSummary_Empty verifies the zero-member tally.
func TestQueryGetMembershipSummary_Empty(t *testing.T) {
	deps := GetMembershipSummaryDeps{PersonStore: &mockMembershipPersonStore{}}
	summary, err := QueryGetMembershipSummary(context.Background(), deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Total != 0 || summary.Leaders != 0 {
		t.Errorf("expected zero counts, got %+v", summary)
	}
	if len(summary.Sections) != len(domainPerson.Sections) {
		t.Errorf("all sections should be present in the tally, got %+v", summary.Sections)
	}
}

// TestQueryGetActiveMembers verifies the pass-through active query.
func TestQueryGetActiveMembers(t *testing.T) {
	deps := GetMembershipSummaryDeps{PersonStore: &mockMembershipPersonStore{people: []domainPerson.Person{
		leader("l1"), girl("g1", domainPerson.SectionGuide),
	}}}
	people, err := QueryGetActiveMembers(context.Background(), deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(people) != 2 {
		t.Errorf("len = %d, want 2", len(people))
	}
}
