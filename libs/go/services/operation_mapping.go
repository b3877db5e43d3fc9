package services

import (
	"time"

	"github.com/budget-planner/planner-api/libs/go/db"
	"github.com/budget-planner/planner-api/libs/go/helpers"
	"github.com/budget-planner/planner-api/libs/go/types/business"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pkg/errors"
)

func operationParams(timelineID uuid.UUID, position int, op business.Operation, loc *time.Location) db.CreateOperationParams {
	base := op.Base()
	params := db.CreateOperationParams{
		TimelineID: timelineID,
		Position:   int32(position),
		Type:       string(op.Type()),
		Label:      base.Label,
		Date:       helpers.TimeToDate(base.Date, loc),
		Amount:     helpers.DecimalToNumeric(base.Amount),
	}
	if r, ok := op.(business.Recurring); ok {
		params.RecurrenceInterval = helpers.StringToNullableText(string(r.Periodicity.Interval))
		params.RecurrenceEvery = helpers.IntToNullableInt4(r.Periodicity.Every)
		params.UntilDate = helpers.TimePtrToNullableDate(r.Until, loc)
	}
	return params
}

func operationFromRow(row db.Operation, loc *time.Location) (business.Operation, error) {
	amount, err := helpers.NumericToDecimal(row.Amount)
	if err != nil {
		return nil, errors.Wrapf(err, "operation %s", row.ID)
	}
	date := helpers.DateToTime(row.Date, loc)

	switch business.OperationType(row.Type) {
	case business.OperationTypeOneTime:
		return business.NewOneTime(date, amount, row.Label), nil
	case business.OperationTypeCheckpoint:
		return business.NewCheckpoint(date, amount, row.Label), nil
	case business.OperationTypeRecurring:
		if !row.RecurrenceInterval.Valid || !row.RecurrenceEvery.Valid {
			return nil, errors.Errorf("operation %s: recurring without periodicity", row.ID)
		}
		periodicity := business.Periodicity{
			Interval: business.Interval(row.RecurrenceInterval.String),
			Every:    int(row.RecurrenceEvery.Int32),
		}
		return business.NewRecurring(date, amount, row.Label, periodicity, helpers.NullableDateToTimePtr(row.UntilDate, loc)), nil
	default:
		return nil, errors.Errorf("operation %s: unknown type %q", row.ID, row.Type)
	}
}

func timestamp(ts pgtype.Timestamptz) time.Time {
	if !ts.Valid {
		return time.Time{}
	}
	return ts.Time
}
