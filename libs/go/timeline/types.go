package timeline

import (
	"time"

	"github.com/budget-planner/planner-api/libs/go/types/business"
	"github.com/shopspring/decimal"
)

// ExpandedOperation pairs a concrete occurrence with the operation it was
// generated from. Result is always a OneTime or a Checkpoint. For
// non-recurring operations Result and Source are the same value.
type ExpandedOperation struct {
	Source business.Operation
	Result business.Operation
}

// Bounds is the projected balance of a day with its uncertainty range
type Bounds struct {
	Min decimal.Decimal `json:"min"`
	Max decimal.Decimal `json:"max"`
	Sum decimal.Decimal `json:"sum"`
}

// ComputedDataPoint is the state of the balance on one calendar day
type ComputedDataPoint struct {
	Date       time.Time
	Code       int64
	Operations []ExpandedOperation
	Expected   Bounds
	// Actual is set when a checkpoint landed on this day
	Actual *decimal.Decimal
}

// Resolved returns the balance carried forward to the next day:
// the checkpoint amount when there is one, the expected sum otherwise.
func (p ComputedDataPoint) Resolved() decimal.Decimal {
	if p.Actual != nil {
		return *p.Actual
	}
	return p.Expected.Sum
}

// HasCheckpoint reports whether a checkpoint landed on this day
func (p ComputedDataPoint) HasCheckpoint() bool {
	return p.Actual != nil
}
