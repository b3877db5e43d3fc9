package helpers

import (
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// StringToNullableText converts string to nullable pgtype.Text
func StringToNullableText(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: s, Valid: true}
}

// IntToNullableInt4 converts int to nullable pgtype.Int4
func IntToNullableInt4(i int) pgtype.Int4 {
	return pgtype.Int4{Int32: int32(i), Valid: true}
}

// TimeToDate converts the calendar date of t, taken in loc, to pgtype.Date
func TimeToDate(t time.Time, loc *time.Location) pgtype.Date {
	local := t.In(loc)
	return pgtype.Date{
		Time:  time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC),
		Valid: true,
	}
}

// TimePtrToNullableDate converts an optional time to a nullable pgtype.Date
func TimePtrToNullableDate(t *time.Time, loc *time.Location) pgtype.Date {
	if t == nil {
		return pgtype.Date{Valid: false}
	}
	return TimeToDate(*t, loc)
}

// DateToTime returns midnight in loc of the calendar date held by d
func DateToTime(d pgtype.Date, loc *time.Location) time.Time {
	return time.Date(d.Time.Year(), d.Time.Month(), d.Time.Day(), 0, 0, 0, 0, loc)
}

// NullableDateToTimePtr converts a nullable pgtype.Date to an optional time
func NullableDateToTimePtr(d pgtype.Date, loc *time.Location) *time.Time {
	if !d.Valid {
		return nil
	}
	t := DateToTime(d, loc)
	return &t
}

// DecimalToNumeric converts a decimal amount to pgtype.Numeric without loss
func DecimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{Int: d.Coefficient(), Exp: d.Exponent(), Valid: true}
}

// NumericToDecimal converts pgtype.Numeric back to a decimal amount.
// NULL, NaN and infinite values are rejected.
func NumericToDecimal(n pgtype.Numeric) (decimal.Decimal, error) {
	if !n.Valid {
		return decimal.Zero, fmt.Errorf("numeric value is null")
	}
	if n.NaN || n.InfinityModifier != pgtype.Finite {
		return decimal.Zero, fmt.Errorf("numeric value is not finite")
	}
	if n.Int == nil {
		return decimal.Zero, nil
	}
	return decimal.NewFromBigInt(n.Int, n.Exp), nil
}
