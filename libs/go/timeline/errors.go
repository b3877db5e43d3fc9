package timeline

import (
	"fmt"

	"github.com/budget-planner/planner-api/libs/go/types/business"
)

// InvalidRecurrenceError is returned when a recurring operation cannot yield
// a finite number of occurrences, for instance when Every is below 1 or the
// interval is unknown. The offending operation must be rejected by the caller.
type InvalidRecurrenceError struct {
	Label       string
	Periodicity business.Periodicity
	Reason      string
}

func (e *InvalidRecurrenceError) Error() string {
	return fmt.Sprintf("invalid recurrence for operation %q (interval=%q, every=%d): %s",
		e.Label, e.Periodicity.Interval, e.Periodicity.Every, e.Reason)
}
