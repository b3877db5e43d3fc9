package timeline

import (
	"fmt"
	"time"

	"github.com/budget-planner/planner-api/libs/go/types/business"
	"github.com/shopspring/decimal"
)

// Accumulator folds date-sorted occurrences into one data point per day
type Accumulator struct {
	location *time.Location
}

// NewAccumulator creates an accumulator grouping by calendar day in loc.
// A nil loc means time.Local.
func NewAccumulator(loc *time.Location) *Accumulator {
	if loc == nil {
		loc = time.Local
	}
	return &Accumulator{location: loc}
}

// Accumulate groups expanded occurrences by day and computes the running
// balance. The input must be sorted by date, as returned by Expander.Expand.
//
// Each day starts from the previous day's resolved balance. One-time amounts
// move the expected sum; negative amounts also lower the minimum and positive
// amounts raise the maximum. A checkpoint sets the day's actual balance
// without touching the expected bounds, and the last checkpoint of a day wins.
func (a *Accumulator) Accumulate(expanded []ExpandedOperation) []ComputedDataPoint {
	points := make([]ComputedDataPoint, 0)
	carry := decimal.Zero

	for i := 0; i < len(expanded); {
		first := expanded[i].Result.Base().Date
		code := DayCode(first, a.location)
		if n := len(points); n > 0 && points[n-1].Code >= code {
			panic(fmt.Sprintf("timeline: occurrences not sorted by date (day %d after day %d)", code, points[n-1].Code))
		}

		point := ComputedDataPoint{
			Date:     StartOfDay(first, a.location),
			Code:     code,
			Expected: Bounds{Min: carry, Max: carry, Sum: carry},
		}

		j := i
		for ; j < len(expanded) && DayCode(expanded[j].Result.Base().Date, a.location) == code; j++ {
			occurrence := expanded[j]
			switch r := occurrence.Result.(type) {
			case business.Checkpoint:
				actual := r.Amount
				point.Actual = &actual
			case business.OneTime:
				point.Expected.Sum = point.Expected.Sum.Add(r.Amount)
				if r.Amount.IsNegative() {
					point.Expected.Min = point.Expected.Min.Add(r.Amount)
				} else {
					point.Expected.Max = point.Expected.Max.Add(r.Amount)
				}
			case business.Recurring:
				panic(fmt.Sprintf("timeline: recurring operation %q reached the accumulator without expansion", r.Label))
			default:
				panic(fmt.Sprintf("timeline: unknown operation kind %T", occurrence.Result))
			}
			point.Operations = append(point.Operations, occurrence)
		}

		points = append(points, point)
		carry = point.Resolved()
		i = j
	}

	return points
}
