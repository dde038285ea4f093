package projections

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"gums/internal/application/faults"
	"gums/internal/domain/term"
)

// TermScheduleStore defines the store interface needed by the schedule projection.
type TermScheduleStore interface {
	List(ctx context.Context) ([]term.Term, error)
}

// GetTermScheduleDeps holds dependencies for the schedule projection.
type GetTermScheduleDeps struct {
	TermStore TermScheduleStore
}

// TermScheduleResult buckets every term relative to a single "today".
type TermScheduleResult struct {
	Current *term.Term  // nil when no term contains today
	Future  []term.Term // StartDate > today, ascending by StartDate
	Past    []term.Term // EndDate < today, descending by EndDate
	All     []term.Term // everything, ascending by StartDate
}

// QueryGetTermSchedule classifies all terms against the given date. The
// buckets are recomputed from scratch on every call: "today" moves on its
// own, so a stored current flag would go stale without any write.
// When overlapping ranges make several terms current, the one with the
// latest StartDate wins and the overlap is logged as a data-integrity
// warning.
// PRE: now is the caller's notion of today
// POST: Every term lands in exactly one of current/future/past
func QueryGetTermSchedule(ctx context.Context, now time.Time, deps GetTermScheduleDeps) (TermScheduleResult, error) {
	terms, err := deps.TermStore.List(ctx)
	if err != nil {
		return TermScheduleResult{}, faults.Storage("load terms", err)
	}

	result := TermScheduleResult{All: terms}
	var current []term.Term
	for _, t := range terms {
		switch {
		case t.Contains(now):
			current = append(current, t)
		case t.IsFuture(now):
			result.Future = append(result.Future, t)
		case t.IsPast(now):
			result.Past = append(result.Past, t)
		}
	}

	if len(current) > 0 {
		winner := current[0]
		for _, t := range current[1:] {
			if t.StartDate.After(winner.StartDate) {
				winner = t
			}
		}
		if len(current) > 1 {
			slog.Warn("term_event", "event", "overlapping_current_terms",
				"count", len(current), "winner_id", winner.ID)
		}
		result.Current = &winner
	}

	sort.Slice(result.Future, func(i, j int) bool {
		return result.Future[i].StartDate.Before(result.Future[j].StartDate)
	})
	sort.Slice(result.Past, func(i, j int) bool {
		return result.Past[i].EndDate.After(result.Past[j].EndDate)
	})
	return result, nil
}
