package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/budget-planner/planner-api/libs/go/chart"
	"github.com/budget-planner/planner-api/libs/go/mocks"
	"github.com/budget-planner/planner-api/libs/go/services"
	"github.com/budget-planner/planner-api/libs/go/types/business"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func projectionOps() []business.Operation {
	return []business.Operation{
		business.NewCheckpoint(day(2024, 1, 1), decimal.NewFromInt(100), "opening"),
		business.NewRecurring(day(2024, 1, 2), decimal.NewFromInt(-10), "coffee",
			business.Periodicity{Interval: business.IntervalDay, Every: 1}, nil),
		business.NewOneTime(day(2024, 1, 5), decimal.Zero, "horizon"),
	}
}

func TestProjectionService_Points(t *testing.T) {
	ctx := context.Background()

	t.Run("caches the calculator until invalidated", func(t *testing.T) {
		store := mocks.NewMockProfileStoreForTest(t)
		service := services.NewProjectionService(store, time.UTC, time.Minute)

		store.EXPECT().ListOperations(ctx, "home", "main").Return(projectionOps(), nil).Times(2)

		points, err := service.Points(ctx, "home", "main", nil, nil, false)
		require.NoError(t, err)
		require.Len(t, points, 5)
		assert.Equal(t, "60", points[4].Expected.Sum.String())

		_, err = service.Points(ctx, "home", "main", nil, nil, false)
		require.NoError(t, err)

		service.Invalidate("home", "main")
		_, err = service.Points(ctx, "home", "main", nil, nil, false)
		require.NoError(t, err)
	})

	t.Run("bounded range", func(t *testing.T) {
		store := mocks.NewMockProfileStoreForTest(t)
		service := services.NewProjectionService(store, time.UTC, 0)
		store.EXPECT().ListOperations(ctx, "home", "main").Return(projectionOps(), nil)

		from, to := day(2024, 1, 3), day(2024, 1, 10)
		points, err := service.Points(ctx, "home", "main", &from, &to, true)
		require.NoError(t, err)
		require.Len(t, points, 9)
		assert.True(t, day(2024, 1, 2).Equal(points[0].Date))
		assert.Equal(t, "10", points[len(points)-1].Expected.Sum.String())
	})

	t.Run("store errors pass through", func(t *testing.T) {
		store := mocks.NewMockProfileStoreForTest(t)
		service := services.NewProjectionService(store, time.UTC, 0)
		store.EXPECT().ListOperations(ctx, "ghost", "main").Return(nil, errors.Wrap(services.ErrProfileNotFound, "ghost"))

		_, err := service.Points(ctx, "ghost", "main", nil, nil, false)
		assert.ErrorIs(t, err, services.ErrProfileNotFound)
	})

	t.Run("far future end is rejected without expanding", func(t *testing.T) {
		store := mocks.NewMockProfileStoreForTest(t)
		service := services.NewProjectionService(store, time.UTC, 0)
		store.EXPECT().ListOperations(ctx, "home", "main").Return(projectionOps(), nil)

		from, to := day(9999, 1, 1), day(9999, 12, 31)
		start := time.Now()
		points, err := service.Points(ctx, "home", "main", nil, &to, false)
		assert.ErrorIs(t, err, services.ErrInvalidRange)
		assert.Nil(t, points)

		points, err = service.Points(ctx, "home", "main", &from, &to, true)
		assert.ErrorIs(t, err, services.ErrInvalidRange)
		assert.Nil(t, points)
		assert.Less(t, time.Since(start), time.Second)
	})

	t.Run("end at the horizon is accepted", func(t *testing.T) {
		store := mocks.NewMockProfileStoreForTest(t)
		service := services.NewProjectionService(store, time.UTC, 0)
		store.EXPECT().ListOperations(ctx, "home", "main").Return(projectionOps(), nil)

		// latest operation is 2024-01-05
		limit := day(2024+services.MaxHorizonYears, 1, 5)
		points, err := service.Points(ctx, "home", "main", nil, &limit, false)
		require.NoError(t, err)
		assert.True(t, limit.Equal(points[len(points)-1].Date))

		past := limit.AddDate(0, 0, 1)
		_, err = service.Points(ctx, "home", "main", nil, &past, false)
		assert.ErrorIs(t, err, services.ErrInvalidRange)
	})

	t.Run("saves during a load are not cached stale", func(t *testing.T) {
		store := mocks.NewMockProfileStoreForTest(t)
		service := services.NewProjectionService(store, time.UTC, 0)

		store.EXPECT().ListOperations(ctx, "home", "main").
			DoAndReturn(func(context.Context, string, string) ([]business.Operation, error) {
				// a save lands while the old operations are being read
				service.Invalidate("home", "main")
				return projectionOps()[:1], nil
			})
		store.EXPECT().ListOperations(ctx, "home", "main").Return(projectionOps(), nil)

		stale, err := service.Points(ctx, "home", "main", nil, nil, false)
		require.NoError(t, err)
		assert.Len(t, stale, 1)

		fresh, err := service.Points(ctx, "home", "main", nil, nil, false)
		require.NoError(t, err)
		assert.Len(t, fresh, 5)

		_, err = service.Points(ctx, "home", "main", nil, nil, false)
		require.NoError(t, err)
	})

	t.Run("separate timelines are cached separately", func(t *testing.T) {
		store := mocks.NewMockProfileStoreForTest(t)
		service := services.NewProjectionService(store, time.UTC, 0)
		store.EXPECT().ListOperations(ctx, "home", "main").Return(projectionOps(), nil)
		store.EXPECT().ListOperations(ctx, "home", "savings").Return(nil, nil)

		main, err := service.Points(ctx, "home", "main", nil, nil, false)
		require.NoError(t, err)
		savings, err := service.Points(ctx, "home", "savings", nil, nil, false)
		require.NoError(t, err)
		assert.NotEmpty(t, main)
		assert.Empty(t, savings)
	})
}

func TestProjectionService_AmountAt(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewMockProfileStoreForTest(t)
	service := services.NewProjectionService(store, time.UTC, 0)
	store.EXPECT().ListOperations(ctx, "home", "main").Return(projectionOps(), nil)

	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{"before the first point", day(2023, 12, 31), "0"},
		{"on a checkpoint", day(2024, 1, 1), "100"},
		{"after the checkpoint", day(2024, 1, 3), "80"},
		{"after the last point", day(2024, 6, 1), "60"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.AmountAt(ctx, "home", "main", tt.date)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestProjectionService_Series(t *testing.T) {
	ctx := context.Background()

	t.Run("samples every step", func(t *testing.T) {
		store := mocks.NewMockProfileStoreForTest(t)
		service := services.NewProjectionService(store, time.UTC, 0)
		store.EXPECT().ListOperations(ctx, "home", "main").Return(projectionOps(), nil)

		samples, err := service.Series(ctx, "home", "main", day(2024, 1, 1), day(2024, 1, 5), 2)
		require.NoError(t, err)
		require.Len(t, samples, 3)

		wantDates := []time.Time{day(2024, 1, 1), day(2024, 1, 3), day(2024, 1, 5)}
		wantAmounts := []string{"100", "80", "60"}
		for i := range samples {
			assert.True(t, wantDates[i].Equal(samples[i].Date))
			assert.Equal(t, wantAmounts[i], samples[i].Amount.String())
		}
	})

	tests := []struct {
		name     string
		from, to time.Time
		step     int
	}{
		{"zero step", day(2024, 1, 1), day(2024, 2, 1), 0},
		{"step over a year", day(2024, 1, 1), day(2026, 1, 1), 367},
		{"end before start", day(2024, 2, 1), day(2024, 1, 1), 1},
		{"too many samples", day(2024, 1, 1), day(2026, 1, 1), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := mocks.NewMockProfileStoreForTest(t)
			service := services.NewProjectionService(store, time.UTC, 0)

			samples, err := service.Series(ctx, "home", "main", tt.from, tt.to, tt.step)
			assert.ErrorIs(t, err, services.ErrInvalidRange)
			assert.Nil(t, samples)
		})
	}
}

func TestProjectionService_Chart(t *testing.T) {
	ctx := context.Background()

	t.Run("builds the chart", func(t *testing.T) {
		store := mocks.NewMockProfileStoreForTest(t)
		service := services.NewProjectionService(store, time.UTC, 0)
		store.EXPECT().ListOperations(ctx, "home", "main").Return(projectionOps(), nil)

		c, err := service.Chart(ctx, "home", "main", nil, nil, chart.Dims{Width: 400, Height: 300})
		require.NoError(t, err)
		assert.NotEmpty(t, c.Dots)
		assert.NotEmpty(t, c.Line)
		require.NotNil(t, c.MostRecent)
		assert.Equal(t, "60", c.MostRecent.String())
	})

	t.Run("spans of ten years are rejected before loading", func(t *testing.T) {
		store := mocks.NewMockProfileStoreForTest(t)
		service := services.NewProjectionService(store, time.UTC, 0)

		from, to := day(2020, 1, 1), day(2031, 1, 1)
		_, err := service.Chart(ctx, "home", "main", &from, &to, chart.Dims{Width: 400, Height: 300})
		assert.ErrorIs(t, err, services.ErrInvalidRange)
	})

	t.Run("far future end past the horizon", func(t *testing.T) {
		store := mocks.NewMockProfileStoreForTest(t)
		service := services.NewProjectionService(store, time.UTC, 0)
		store.EXPECT().ListOperations(ctx, "home", "main").Return(projectionOps(), nil)

		to := day(9999, 12, 31)
		c, err := service.Chart(ctx, "home", "main", nil, &to, chart.Dims{Width: 400, Height: 300})
		assert.ErrorIs(t, err, services.ErrInvalidRange)
		assert.Nil(t, c)
	})
}
