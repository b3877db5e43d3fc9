package business

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// OperationType identifies the kind of a financial operation
type OperationType string

const (
	OperationTypeOneTime    OperationType = "OneTime"
	OperationTypeRecurring  OperationType = "Recurring"
	OperationTypeCheckpoint OperationType = "Checkpoint"
)

// Valid reports whether t is one of the known operation types
func (t OperationType) Valid() bool {
	switch t {
	case OperationTypeOneTime, OperationTypeRecurring, OperationTypeCheckpoint:
		return true
	default:
		return false
	}
}

// Interval is the calendar unit a recurring operation repeats on
type Interval string

const (
	IntervalDay   Interval = "day"
	IntervalWeek  Interval = "week"
	IntervalMonth Interval = "month"
	IntervalYear  Interval = "year"
)

// Valid reports whether i is one of the known calendar units
func (i Interval) Valid() bool {
	switch i {
	case IntervalDay, IntervalWeek, IntervalMonth, IntervalYear:
		return true
	default:
		return false
	}
}

// Periodicity describes how often a recurring operation repeats.
// Every must be at least 1.
type Periodicity struct {
	Interval Interval `json:"interval"`
	Every    int      `json:"every"`
}

func (p Periodicity) String() string {
	if p.Every == 1 {
		return "every " + string(p.Interval)
	}
	return fmt.Sprintf("every %d %ss", p.Every, p.Interval)
}

// OperationBase holds the fields shared by every operation kind
type OperationBase struct {
	Date   time.Time
	Amount decimal.Decimal
	Label  string
}

// Operation is a user-authored financial event. The set of implementations
// is closed: OneTime, Recurring and Checkpoint.
type Operation interface {
	Base() OperationBase
	Type() OperationType
	isOperation()
}

// OneTime is an amount applied once on its date
type OneTime struct {
	OperationBase
}

// Recurring is an amount applied on its date and then every Periodicity,
// through Until when set or through the computation horizon otherwise.
type Recurring struct {
	OperationBase
	Periodicity Periodicity
	Until       *time.Time
}

// Checkpoint declares the actual known balance on its date
type Checkpoint struct {
	OperationBase
}

func (o OneTime) Base() OperationBase    { return o.OperationBase }
func (o Recurring) Base() OperationBase  { return o.OperationBase }
func (o Checkpoint) Base() OperationBase { return o.OperationBase }

func (OneTime) Type() OperationType    { return OperationTypeOneTime }
func (Recurring) Type() OperationType  { return OperationTypeRecurring }
func (Checkpoint) Type() OperationType { return OperationTypeCheckpoint }

func (OneTime) isOperation()    {}
func (Recurring) isOperation()  {}
func (Checkpoint) isOperation() {}

// NewOneTime builds a one-time operation
func NewOneTime(date time.Time, amount decimal.Decimal, label string) OneTime {
	return OneTime{OperationBase{Date: date, Amount: amount, Label: label}}
}

// NewCheckpoint builds a checkpoint operation
func NewCheckpoint(date time.Time, amount decimal.Decimal, label string) Checkpoint {
	return Checkpoint{OperationBase{Date: date, Amount: amount, Label: label}}
}

// NewRecurring builds a recurring operation. until may be nil.
func NewRecurring(date time.Time, amount decimal.Decimal, label string, periodicity Periodicity, until *time.Time) Recurring {
	return Recurring{
		OperationBase: OperationBase{Date: date, Amount: amount, Label: label},
		Periodicity:   periodicity,
		Until:         until,
	}
}

// WithDate returns a copy of op dated on date. The kind is preserved.
func WithDate(op Operation, date time.Time) Operation {
	switch o := op.(type) {
	case OneTime:
		o.Date = date
		return o
	case Recurring:
		o.Date = date
		return o
	case Checkpoint:
		o.Date = date
		return o
	default:
		panic(fmt.Sprintf("business: unknown operation kind %T", op))
	}
}
