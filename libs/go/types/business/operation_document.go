package business

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date format used in stored documents and the API
const DateLayout = "2006-01-02"

// OperationDocument is the serialized shape of an Operation
type OperationDocument struct {
	Type        OperationType   `json:"type"`
	Date        string          `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Label       string          `json:"label"`
	Periodicity *Periodicity    `json:"periodicity,omitempty"`
	Until       *string         `json:"until,omitempty"`
}

// ToDocument serializes op, keeping only the calendar date of its dates
func ToDocument(op Operation) OperationDocument {
	base := op.Base()
	doc := OperationDocument{
		Type:   op.Type(),
		Date:   base.Date.Format(DateLayout),
		Amount: base.Amount,
		Label:  base.Label,
	}
	if r, ok := op.(Recurring); ok {
		p := r.Periodicity
		doc.Periodicity = &p
		if r.Until != nil {
			until := r.Until.Format(DateLayout)
			doc.Until = &until
		}
	}
	return doc
}

// ToOperation parses the document back into an Operation whose dates are
// midnight in loc.
func (d OperationDocument) ToOperation(loc *time.Location) (Operation, error) {
	date, err := time.ParseInLocation(DateLayout, d.Date, loc)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", d.Date, err)
	}

	switch d.Type {
	case OperationTypeOneTime:
		return NewOneTime(date, d.Amount, d.Label), nil
	case OperationTypeCheckpoint:
		return NewCheckpoint(date, d.Amount, d.Label), nil
	case OperationTypeRecurring:
		if d.Periodicity == nil {
			return nil, fmt.Errorf("recurring operation %q has no periodicity", d.Label)
		}
		var until *time.Time
		if d.Until != nil && *d.Until != "" {
			u, err := time.ParseInLocation(DateLayout, *d.Until, loc)
			if err != nil {
				return nil, fmt.Errorf("invalid until date %q: %w", *d.Until, err)
			}
			until = &u
		}
		return NewRecurring(date, d.Amount, d.Label, *d.Periodicity, until), nil
	default:
		return nil, fmt.Errorf("unknown operation type %q", d.Type)
	}
}

// ToDocuments serializes a list of operations
func ToDocuments(ops []Operation) []OperationDocument {
	docs := make([]OperationDocument, len(ops))
	for i, op := range ops {
		docs[i] = ToDocument(op)
	}
	return docs
}

// FromDocuments parses a list of documents, failing on the first invalid one
func FromDocuments(docs []OperationDocument, loc *time.Location) ([]Operation, error) {
	ops := make([]Operation, 0, len(docs))
	for i, doc := range docs {
		op, err := doc.ToOperation(loc)
		if err != nil {
			return nil, fmt.Errorf("operation %d: %w", i, err)
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// Validate checks the document the way operation entry forms do: a known
// type, calendar dates, and for recurring operations a known interval,
// every of at least 1 and an until date not before the start date.
func (d OperationDocument) Validate() error {
	if !d.Type.Valid() {
		return fmt.Errorf("unknown operation type %q", d.Type)
	}
	date, err := time.Parse(DateLayout, d.Date)
	if err != nil {
		return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", d.Date)
	}

	if d.Type != OperationTypeRecurring {
		if d.Periodicity != nil || d.Until != nil {
			return fmt.Errorf("only recurring operations take a periodicity or until date")
		}
		return nil
	}

	if d.Periodicity == nil {
		return fmt.Errorf("recurring operation requires a periodicity")
	}
	if !d.Periodicity.Interval.Valid() {
		return fmt.Errorf("unknown interval %q", d.Periodicity.Interval)
	}
	if d.Periodicity.Every < 1 {
		return fmt.Errorf("every must be at least 1, got %d", d.Periodicity.Every)
	}
	if d.Until != nil && *d.Until != "" {
		until, err := time.Parse(DateLayout, *d.Until)
		if err != nil {
			return fmt.Errorf("invalid until date %q: expected YYYY-MM-DD", *d.Until)
		}
		if until.Before(date) {
			return fmt.Errorf("until date %s is before start date %s", *d.Until, d.Date)
		}
	}
	return nil
}
