package helpers_test

import (
	"testing"
	"time"

	"github.com/budget-planner/planner-api/libs/go/helpers"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalNumericRoundTrip(t *testing.T) {
	for _, v := range []string{"0", "-12.50", "1200", "0.0001", "-98765432109876.54321"} {
		t.Run(v, func(t *testing.T) {
			want := decimal.RequireFromString(v)
			got, err := helpers.NumericToDecimal(helpers.DecimalToNumeric(want))
			require.NoError(t, err)
			assert.True(t, want.Equal(got), "want %s, got %s", want, got)
		})
	}
}

func TestNumericToDecimal_Rejects(t *testing.T) {
	_, err := helpers.NumericToDecimal(pgtype.Numeric{})
	assert.Error(t, err)

	_, err = helpers.NumericToDecimal(pgtype.Numeric{NaN: true, Valid: true})
	assert.Error(t, err)

	_, err = helpers.NumericToDecimal(pgtype.Numeric{InfinityModifier: pgtype.Infinity, Valid: true})
	assert.Error(t, err)
}

func TestDateConversions(t *testing.T) {
	paris, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		t.Skip("tz database unavailable")
	}

	// 23:30 UTC is already the next day in Paris
	instant := time.Date(2024, time.March, 9, 23, 30, 0, 0, time.UTC)
	d := helpers.TimeToDate(instant, paris)
	assert.True(t, d.Valid)
	assert.Equal(t, 10, d.Time.Day())

	back := helpers.DateToTime(d, paris)
	assert.Equal(t, time.Date(2024, time.March, 10, 0, 0, 0, 0, paris), back)

	assert.Nil(t, helpers.NullableDateToTimePtr(pgtype.Date{}, paris))
	assert.False(t, helpers.TimePtrToNullableDate(nil, paris).Valid)
}

func TestIsValidStage(t *testing.T) {
	assert.True(t, helpers.IsValidStage(helpers.StageProd))
	assert.True(t, helpers.IsValidStage(helpers.StageDev))
	assert.True(t, helpers.IsValidStage(helpers.StageLocal))
	assert.False(t, helpers.IsValidStage("staging"))
}
