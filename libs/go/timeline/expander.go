package timeline

import (
	"fmt"
	"sort"
	"time"

	"github.com/budget-planner/planner-api/libs/go/types/business"
)

// Expander turns recurring operations into concrete dated occurrences
type Expander struct {
	location *time.Location
}

// NewExpander creates an expander working on calendar dates in loc.
// A nil loc means time.Local.
func NewExpander(loc *time.Location) *Expander {
	if loc == nil {
		loc = time.Local
	}
	return &Expander{location: loc}
}

// Expand returns the occurrences of operations up to horizon, sorted by date.
// When horizon is nil the latest operation date is used. Operations dated
// after the horizon's calendar day are dropped.
func (e *Expander) Expand(operations []business.Operation, horizon *time.Time) ([]ExpandedOperation, error) {
	if len(operations) == 0 {
		return []ExpandedOperation{}, nil
	}

	limit := latestDate(operations)
	if horizon != nil {
		limit = *horizon
	}
	limitCode := DayCode(limit, e.location)

	expanded := make([]ExpandedOperation, 0, len(operations))
	for _, op := range operations {
		if DayCode(op.Base().Date, e.location) > limitCode {
			continue
		}

		switch o := op.(type) {
		case business.Recurring:
			occurrences, err := e.expandRecurring(o, limit)
			if err != nil {
				return nil, err
			}
			expanded = append(expanded, occurrences...)
		case business.OneTime, business.Checkpoint:
			expanded = append(expanded, ExpandedOperation{Source: op, Result: op})
		default:
			panic(fmt.Sprintf("timeline: unknown operation kind %T", op))
		}
	}

	sort.SliceStable(expanded, func(i, j int) bool {
		return expanded[i].Result.Base().Date.Before(expanded[j].Result.Base().Date)
	})
	return expanded, nil
}

func (e *Expander) expandRecurring(op business.Recurring, horizon time.Time) ([]ExpandedOperation, error) {
	p := op.Periodicity
	if !p.Interval.Valid() {
		return nil, &InvalidRecurrenceError{Label: op.Label, Periodicity: p, Reason: "unknown interval"}
	}
	if p.Every < 1 {
		return nil, &InvalidRecurrenceError{Label: op.Label, Periodicity: p, Reason: "every must be at least 1"}
	}

	end := horizon
	if op.Until != nil && op.Until.Before(end) {
		end = *op.Until
	}

	units := CountIntervals(op.Date, end, p.Interval, e.location)
	if units < 0 {
		return nil, nil
	}

	count := units/p.Every + 1
	occurrences := make([]ExpandedOperation, count)
	for i := range occurrences {
		occurrences[i] = ExpandedOperation{
			Source: op,
			Result: business.NewOneTime(
				AddIntervals(op.Date, p.Interval, p.Every*i, e.location),
				op.Amount,
				op.Label,
			),
		}
	}
	return occurrences, nil
}

func latestDate(operations []business.Operation) time.Time {
	latest := operations[0].Base().Date
	for _, op := range operations[1:] {
		if d := op.Base().Date; d.After(latest) {
			latest = d
		}
	}
	return latest
}
