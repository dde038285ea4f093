package projections

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gums/internal/application/faults"
	"gums/internal/domain/term"
	"gums/internal/domain/unitconfig"
)

// HomeConfigStore defines the configuration lookup needed by the home projection.
type HomeConfigStore interface {
	Get(ctx context.Context) (unitconfig.UnitConfiguration, error)
}

// GetHomeDeps holds dependencies for the home projection.
type GetHomeDeps struct {
	ConfigStore HomeConfigStore
	TermStore   TermScheduleStore
	PersonStore MembershipPersonStore
}

// HomeResult aggregates everything the home page shows.
type HomeResult struct {
	Config      unitconfig.UnitConfiguration
	CurrentTerm *term.Term
	NextTerm    *term.Term
	Summary     MembershipSummary
}

// QueryGetHome assembles the home page: unit details, the term in progress,
// the next upcoming term, and the membership counts.
// PRE: EnsureDefaultConfiguration has run at startup
// POST: Returns a complete view or a classified fault
func QueryGetHome(ctx context.Context, now time.Time, deps GetHomeDeps) (HomeResult, error) {
	config, err := deps.ConfigStore.Get(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return HomeResult{}, faults.NotInitialized("unit configuration")
		}
		return HomeResult{}, faults.Storage("load unit configuration", err)
	}

	schedule, err := QueryGetTermSchedule(ctx, now, GetTermScheduleDeps{TermStore: deps.TermStore})
	if err != nil {
		return HomeResult{}, err
	}

	summary, err := QueryGetMembershipSummary(ctx, GetMembershipSummaryDeps{PersonStore: deps.PersonStore})
	if err != nil {
		return HomeResult{}, err
	}

	result := HomeResult{Config: config, CurrentTerm: schedule.Current, Summary: summary}
	if len(schedule.Future) > 0 {
		next := schedule.Future[0]
		result.NextTerm = &next
	}
	return result, nil
}
