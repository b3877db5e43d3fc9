package timeline_test

import (
	"testing"
	"time"

	"github.com/budget-planner/planner-api/libs/go/types/business"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var baseDate = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// day returns baseDate shifted by n days
func day(n int) time.Time {
	return baseDate.AddDate(0, 0, n)
}

func dayPtr(n int) *time.Time {
	d := day(n)
	return &d
}

func amount(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func oneTime(v string, dayOffset int) business.Operation {
	return business.NewOneTime(day(dayOffset), amount(v), "one-time "+v)
}

func checkpoint(v string, dayOffset int) business.Operation {
	return business.NewCheckpoint(day(dayOffset), amount(v), "checkpoint "+v)
}

func recurring(v string, dayOffset int, interval business.Interval, every int) business.Operation {
	return business.NewRecurring(day(dayOffset), amount(v), "recurring "+v,
		business.Periodicity{Interval: interval, Every: every}, nil)
}

func assertAmount(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, amount(want).Equal(got), "want %s, got %s", want, got.String())
}
