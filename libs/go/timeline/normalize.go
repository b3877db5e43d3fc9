package timeline

import (
	"sort"
	"time"

	"github.com/budget-planner/planner-api/libs/go/types/business"
)

// Normalize returns a date-sorted copy of ops with every date, including
// recurrence end dates, moved to midnight of its calendar day in loc.
func Normalize(ops []business.Operation, loc *time.Location) []business.Operation {
	normalized := make([]business.Operation, len(ops))
	for i, op := range ops {
		rounded := business.WithDate(op, StartOfDay(op.Base().Date, loc))
		if r, ok := rounded.(business.Recurring); ok && r.Until != nil {
			until := StartOfDay(*r.Until, loc)
			r.Until = &until
			rounded = r
		}
		normalized[i] = rounded
	}
	sort.SliceStable(normalized, func(i, j int) bool {
		return normalized[i].Base().Date.Before(normalized[j].Base().Date)
	})
	return normalized
}
