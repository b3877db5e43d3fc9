package timeline_test

import (
	"testing"
	"time"

	"github.com/budget-planner/planner-api/libs/go/timeline"
	"github.com/budget-planner/planner-api/libs/go/types/business"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func passThrough(ops ...business.Operation) []timeline.ExpandedOperation {
	expanded := make([]timeline.ExpandedOperation, len(ops))
	for i, op := range ops {
		expanded[i] = timeline.ExpandedOperation{Source: op, Result: op}
	}
	return expanded
}

func TestAccumulator_Accumulate(t *testing.T) {
	acc := timeline.NewAccumulator(time.UTC)

	t.Run("empty input", func(t *testing.T) {
		points := acc.Accumulate(nil)
		assert.NotNil(t, points)
		assert.Empty(t, points)
	})

	t.Run("same day amounts widen bounds by sign", func(t *testing.T) {
		points := acc.Accumulate(passThrough(oneTime("10", 0), oneTime("-10", 0), oneTime("10", 0)))
		require.Len(t, points, 1)

		p := points[0]
		assertAmount(t, "-10", p.Expected.Min)
		assertAmount(t, "20", p.Expected.Max)
		assertAmount(t, "10", p.Expected.Sum)
		assert.Nil(t, p.Actual)
		assert.Len(t, p.Operations, 3)
		assert.True(t, baseDate.Equal(p.Date))
	})

	t.Run("checkpoint only day keeps the carried expectation", func(t *testing.T) {
		points := acc.Accumulate(passThrough(oneTime("5", 0), checkpoint("42", 1)))
		require.Len(t, points, 2)

		p := points[1]
		require.True(t, p.HasCheckpoint())
		assertAmount(t, "42", *p.Actual)
		assertAmount(t, "5", p.Expected.Sum)
		assertAmount(t, "5", p.Expected.Min)
		assertAmount(t, "5", p.Expected.Max)
		assertAmount(t, "42", p.Resolved())
	})

	t.Run("last checkpoint of a day wins", func(t *testing.T) {
		points := acc.Accumulate(passThrough(checkpoint("1", 0), checkpoint("2", 0)))
		require.Len(t, points, 1)
		assertAmount(t, "2", *points[0].Actual)
	})

	t.Run("checkpoint resets the carry", func(t *testing.T) {
		points := acc.Accumulate(passThrough(oneTime("100", 0), checkpoint("10", 1), oneTime("-3", 2)))
		require.Len(t, points, 3)
		assertAmount(t, "7", points[2].Expected.Sum)
		assertAmount(t, "7", points[2].Expected.Min)
		assertAmount(t, "10", points[2].Expected.Max)
	})

	t.Run("days without occurrences are skipped", func(t *testing.T) {
		points := acc.Accumulate(passThrough(oneTime("1", 0), oneTime("1", 10)))
		require.Len(t, points, 2)
		assert.Equal(t, points[0].Code+10, points[1].Code)
	})

	t.Run("unsorted input panics", func(t *testing.T) {
		assert.Panics(t, func() {
			acc.Accumulate(passThrough(oneTime("1", 2), oneTime("1", 1)))
		})
	})

	t.Run("unexpanded recurrence panics", func(t *testing.T) {
		assert.Panics(t, func() {
			acc.Accumulate(passThrough(recurring("1", 0, business.IntervalDay, 1)))
		})
	})
}
