package filestore_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/budget-planner/planner-api/libs/go/services"
	"github.com/budget-planner/planner-api/libs/go/store/filestore"
	"github.com/budget-planner/planner-api/libs/go/types/business"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newStore(t *testing.T) (*filestore.Store, string) {
	t.Helper()
	dir := t.TempDir()
	return filestore.New(dir, time.UTC), dir
}

func TestStore_Profiles(t *testing.T) {
	ctx := context.Background()
	store, dir := newStore(t)

	profiles, err := store.ListProfiles(ctx)
	require.NoError(t, err)
	assert.Empty(t, profiles)

	created, err := store.CreateProfile(ctx, "home.v2", true)
	require.NoError(t, err)
	assert.Equal(t, "home.v2", created.Name)
	assert.True(t, created.IsDefault)
	assert.Equal(t, business.ProfileVersion, created.Version)
	_, ok := created.Timeline(business.DefaultTimelineName)
	assert.True(t, ok)
	assert.FileExists(t, filepath.Join(dir, "profiles", "home%2ev2.json"))

	_, err = store.CreateProfile(ctx, "work", false)
	require.NoError(t, err)

	_, err = store.CreateProfile(ctx, "work", false)
	assert.ErrorIs(t, err, services.ErrProfileExists)

	_, err = store.CreateProfile(ctx, "", false)
	assert.ErrorIs(t, err, services.ErrInvalidName)

	profiles, err = store.ListProfiles(ctx)
	require.NoError(t, err)
	assert.Equal(t, []business.ProfileSummary{
		{Name: "home.v2", IsDefault: true},
		{Name: "work"},
	}, profiles)

	require.NoError(t, store.SetDefaultProfile(ctx, "work"))
	prefs, err := os.ReadFile(filepath.Join(dir, "preferences.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"defaultProfileName":"work"}`, string(prefs))

	assert.ErrorIs(t, store.SetDefaultProfile(ctx, "ghost"), services.ErrProfileNotFound)

	require.NoError(t, store.DeleteProfile(ctx, "work"))
	assert.ErrorIs(t, store.DeleteProfile(ctx, "work"), services.ErrProfileNotFound)

	profiles, err = store.ListProfiles(ctx)
	require.NoError(t, err)
	assert.Equal(t, []business.ProfileSummary{{Name: "home.v2"}}, profiles)
}

func TestStore_Operations(t *testing.T) {
	ctx := context.Background()
	store, dir := newStore(t)

	_, err := store.CreateProfile(ctx, "home", false)
	require.NoError(t, err)

	until := day(2024, 12, 31).Add(20 * time.Hour)
	ops := []business.Operation{
		business.NewRecurring(day(2024, 1, 31).Add(10*time.Hour), decimal.RequireFromString("-12.50"), "Rent",
			business.Periodicity{Interval: business.IntervalMonth, Every: 1}, &until),
		business.NewCheckpoint(day(2024, 1, 1), decimal.NewFromInt(1000), "Opening"),
	}
	require.NoError(t, store.SaveOperations(ctx, "home", "main", ops))

	data, err := os.ReadFile(filepath.Join(dir, "profiles", "home.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"version": 1,
		"timelines": [{
			"name": "main",
			"operations": [
				{"type": "Checkpoint", "date": "2024-01-01", "amount": "1000", "label": "Opening"},
				{"type": "Recurring", "date": "2024-01-31", "amount": "-12.5", "label": "Rent",
				 "periodicity": {"interval": "month", "every": 1}, "until": "2024-12-31"}
			]
		}]
	}`, string(data))

	loaded, err := store.ListOperations(ctx, "home", "main")
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, business.OperationTypeCheckpoint, loaded[0].Type())
	rent, ok := loaded[1].(business.Recurring)
	require.True(t, ok)
	assert.True(t, day(2024, 1, 31).Equal(rent.Date))
	require.NotNil(t, rent.Until)
	assert.True(t, day(2024, 12, 31).Equal(*rent.Until))

	t.Run("saving a new timeline appends it", func(t *testing.T) {
		require.NoError(t, store.SaveOperations(ctx, "home", "savings", nil))
		profile, err := store.GetProfile(ctx, "home")
		require.NoError(t, err)
		require.Len(t, profile.Timelines, 2)
		assert.Equal(t, "savings", profile.Timelines[1].Name)
		assert.Empty(t, profile.Timelines[1].Operations)
		assert.NotEqual(t, profile.Timelines[0].ID, profile.Timelines[1].ID)
	})

	t.Run("missing timeline", func(t *testing.T) {
		_, err := store.ListOperations(ctx, "home", "holidays")
		assert.ErrorIs(t, err, services.ErrTimelineNotFound)
	})

	t.Run("missing profile", func(t *testing.T) {
		_, err := store.ListOperations(ctx, "ghost", "main")
		assert.ErrorIs(t, err, services.ErrProfileNotFound)
		assert.ErrorIs(t, store.SaveOperations(ctx, "ghost", "main", ops), services.ErrProfileNotFound)
	})
}

func TestStore_RejectsUnknownVersion(t *testing.T) {
	ctx := context.Background()
	store, dir := newStore(t)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "profiles"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "profiles", "old.json"), []byte(`{"version":2,"timelines":[]}`), 0o644))

	_, err := store.GetProfile(ctx, "old")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported version 2")
}

func TestStore_StableIDs(t *testing.T) {
	ctx := context.Background()
	store, dir := newStore(t)

	created, err := store.CreateProfile(ctx, "home", false)
	require.NoError(t, err)

	reopened := filestore.New(dir, time.UTC)
	loaded, err := reopened.GetProfile(ctx, "home")
	require.NoError(t, err)
	assert.Equal(t, created.ID, loaded.ID)
	assert.Equal(t, created.Timelines[0].ID, loaded.Timelines[0].ID)
}
