// Package timeline projects an account balance over time from one-time,
// recurring and checkpoint operations.
package timeline

import (
	"sort"
	"sync"
	"time"

	"github.com/budget-planner/planner-api/libs/go/types/business"
	"github.com/shopspring/decimal"
)

// Calculator projects the balance of a fixed list of operations.
// It is safe for concurrent use. The full series is computed once, on first
// access, and shared by every caller; returned slices must not be modified.
type Calculator struct {
	operations  []business.Operation
	location    *time.Location
	expander    *Expander
	accumulator *Accumulator

	once   sync.Once
	points []ComputedDataPoint
	err    error
}

// Option configures a Calculator
type Option func(*Calculator)

// WithLocation sets the time zone used to map dates to calendar days
func WithLocation(loc *time.Location) Option {
	return func(c *Calculator) {
		if loc != nil {
			c.location = loc
		}
	}
}

// For creates a calculator over a date-sorted copy of operations.
// Nothing is computed until the first query.
func For(operations []business.Operation, opts ...Option) *Calculator {
	sorted := make([]business.Operation, len(operations))
	copy(sorted, operations)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Base().Date.Before(sorted[j].Base().Date)
	})

	c := &Calculator{
		operations: sorted,
		location:   time.Local,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.expander = NewExpander(c.location)
	c.accumulator = NewAccumulator(c.location)
	return c
}

// Operations returns a copy of the date-sorted operations
func (c *Calculator) Operations() []business.Operation {
	ops := make([]business.Operation, len(c.operations))
	copy(ops, c.operations)
	return ops
}

// Location returns the time zone used for calendar days
func (c *Calculator) Location() *time.Location {
	return c.location
}

// ComputedDataPoints returns the full series, expanding recurrences up to the
// latest operation date.
func (c *Calculator) ComputedDataPoints() ([]ComputedDataPoint, error) {
	c.once.Do(func() {
		c.points, c.err = c.compute(nil)
	})
	return c.points, c.err
}

type rangeConfig struct {
	includePrevious bool
}

// RangeOption configures ForRange
type RangeOption func(*rangeConfig)

// IncludePrevious keeps the last point before from, so a chart can start
// from the balance carried into the range.
func IncludePrevious() RangeOption {
	return func(rc *rangeConfig) {
		rc.includePrevious = true
	}
}

// ForRange returns the points between from and to. Without bounds it returns
// the cached series. Otherwise the series is recomputed with to as the
// expansion horizon and, when from is set, only points on or after from's
// calendar day are kept.
func (c *Calculator) ForRange(from, to *time.Time, opts ...RangeOption) ([]ComputedDataPoint, error) {
	if from == nil && to == nil {
		return c.ComputedDataPoints()
	}

	var rc rangeConfig
	for _, opt := range opts {
		opt(&rc)
	}

	points, err := c.compute(to)
	if err != nil {
		return nil, err
	}
	if from == nil {
		return points, nil
	}

	fromCode := DayCode(*from, c.location)
	start := sort.Search(len(points), func(i int) bool {
		return points[i].Code >= fromCode
	})
	if rc.includePrevious && start > 0 {
		start--
	}
	return points[start:], nil
}

// AmountAt returns the projected balance at date. Dates between two computed
// days are linearly interpolated on elapsed time. Before the first point the
// balance is zero; after the last point it stays at the last balance.
func (c *Calculator) AmountAt(date time.Time) (decimal.Decimal, error) {
	points, err := c.ComputedDataPoints()
	if err != nil {
		return decimal.Zero, err
	}
	if len(points) == 0 {
		return decimal.Zero, nil
	}

	code := DayCode(date, c.location)
	idx := sort.Search(len(points), func(i int) bool {
		return points[i].Code >= code
	})

	switch {
	case idx < len(points) && points[idx].Code == code:
		return points[idx].Resolved(), nil
	case idx == 0:
		return decimal.Zero, nil
	case idx == len(points):
		return points[len(points)-1].Resolved(), nil
	}

	prev, next := points[idx-1], points[idx]
	elapsed := decimal.NewFromInt(int64(date.Sub(prev.Date)))
	total := decimal.NewFromInt(int64(next.Date.Sub(prev.Date)))
	fraction := elapsed.Div(total)

	from, to := prev.Resolved(), next.Resolved()
	return from.Add(to.Sub(from).Mul(fraction)), nil
}

func (c *Calculator) compute(horizon *time.Time) ([]ComputedDataPoint, error) {
	expanded, err := c.expander.Expand(c.operations, horizon)
	if err != nil {
		return nil, err
	}
	return c.accumulator.Accumulate(expanded), nil
}
