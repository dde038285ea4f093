package projections

import (
	"context"

	"gums/internal/application/faults"
	"gums/internal/domain/person"
)

// MembershipPersonStore defines the store interface needed by the membership projections.
type MembershipPersonStore interface {
	ListActive(ctx context.Context) ([]person.Person, error)
}

// GetMembershipSummaryDeps holds dependencies for the summary projection.
type GetMembershipSummaryDeps struct {
	PersonStore MembershipPersonStore
}

// MembershipSummary carries the home-page counts.
type MembershipSummary struct {
	Total    int            // all active members
	Leaders  int            // active members with the leader type
	Sections map[string]int // active girls per section, keyed by section name
}

// QueryGetActiveMembers returns every active person.
// PRE: none
// POST: Returns the active set, single pass in the store
func QueryGetActiveMembers(ctx context.Context, deps GetMembershipSummaryDeps) ([]person.Person, error) {
	people, err := deps.PersonStore.ListActive(ctx)
	if err != nil {
		return nil, faults.Storage("load active members", err)
	}
	return people, nil
}

// QueryGetMembershipSummary tallies the active set in one pass, keyed by
// person type and section, rather than re-scanning the set per bucket.
// PRE: none
// POST: Total equals the size of the active set exactly
func QueryGetMembershipSummary(ctx context.Context, deps GetMembershipSummaryDeps) (MembershipSummary, error) {
	people, err := deps.PersonStore.ListActive(ctx)
	if err != nil {
		return MembershipSummary{}, faults.Storage("load active members", err)
	}

	summary := MembershipSummary{Sections: make(map[string]int, len(person.Sections))}
	for _, s := range person.Sections {
		summary.Sections[s] = 0
	}
	for _, p := range people {
		summary.Total++
		switch p.PersonType {
		case person.TypeLeader:
			summary.Leaders++
		case person.TypeGirl:
			summary.Sections[p.Section]++
		}
	}
	return summary, nil
}
