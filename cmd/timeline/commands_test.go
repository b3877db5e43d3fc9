package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/budget-planner/planner-api/libs/go/store/filestore"
	"github.com/budget-planner/planner-api/libs/go/types/business"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// seed stores a default "home" profile whose main timeline starts at 100
// and loses 10 a day from 2024-01-02
func seed(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	store := filestore.New(dir, time.UTC)
	ctx := context.Background()

	_, err := store.CreateProfile(ctx, "home", true)
	require.NoError(t, err)
	require.NoError(t, store.SaveOperations(ctx, "home", "main", []business.Operation{
		business.NewCheckpoint(day(2024, 1, 1), decimal.NewFromInt(100), "opening"),
		business.NewRecurring(day(2024, 1, 2), decimal.NewFromInt(-10), "groceries",
			business.Periodicity{Interval: business.IntervalDay, Every: 1}, nil),
		business.NewOneTime(day(2024, 1, 5), decimal.Zero, "horizon"),
	}))
	return dir
}

func runJSON(t *testing.T, args ...string) map[string]interface{} {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), args, &out))
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &body), out.String())
	return body
}

func TestRun_Profiles(t *testing.T) {
	dir := seed(t)

	body := runJSON(t, "-dir", dir, "-tz", "UTC", "profiles")

	assert.Equal(t, []interface{}{
		map[string]interface{}{"object": "profile_summary", "name": "home", "is_default": true},
	}, body["data"])
}

func TestRun_Points(t *testing.T) {
	dir := seed(t)

	body := runJSON(t, "-dir", dir, "-tz", "UTC", "points")

	assert.Equal(t, "home", body["profile"])
	data := body["data"].([]interface{})
	require.Len(t, data, 5)
	last := data[4].(map[string]interface{})
	assert.Equal(t, "2024-01-05", last["date"])
	assert.Equal(t, "60", last["sum"])
}

func TestRun_Amount(t *testing.T) {
	dir := seed(t)

	body := runJSON(t, "-dir", dir, "-tz", "UTC", "amount", "-profile", "home", "-date", "2024-01-03")

	assert.Equal(t, "80", body["amount"])
	assert.Equal(t, "2024-01-03", body["date"])
}

func TestRun_Series(t *testing.T) {
	dir := seed(t)

	body := runJSON(t, "-dir", dir, "-tz", "UTC", "series", "-from", "2024-01-01", "-to", "2024-01-05", "-step", "2")

	assert.Equal(t, []interface{}{
		map[string]interface{}{"date": "2024-01-01", "amount": "100"},
		map[string]interface{}{"date": "2024-01-03", "amount": "80"},
		map[string]interface{}{"date": "2024-01-05", "amount": "60"},
	}, body["data"])
}

func TestRun_Errors(t *testing.T) {
	dir := seed(t)
	empty := t.TempDir()

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"no command", []string{"-dir", dir}, "usage"},
		{"unknown command", []string{"-dir", dir, "export"}, `unknown command "export"`},
		{"amount without date", []string{"-dir", dir, "amount"}, "requires -date"},
		{"series without bounds", []string{"-dir", dir, "series", "-from", "2024-01-01"}, "requires -from and -to"},
		{"bad date", []string{"-dir", dir, "amount", "-date", "tomorrow"}, "expected YYYY-MM-DD"},
		{"bad time zone", []string{"-dir", dir, "-tz", "Mars/Olympus", "profiles"}, "invalid time zone"},
		{"no default profile", []string{"-dir", empty, "points"}, "no default profile"},
		{"unknown profile", []string{"-dir", dir, "points", "-profile", "work"}, "profile not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := run(context.Background(), tt.args, &out)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Empty(t, out.String())
		})
	}
}
