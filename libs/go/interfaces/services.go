package interfaces

import (
	"context"
	"time"

	"github.com/budget-planner/planner-api/libs/go/chart"
	"github.com/budget-planner/planner-api/libs/go/timeline"
	"github.com/budget-planner/planner-api/libs/go/types/business"
	"github.com/shopspring/decimal"
)

// ProfileStore persists profiles and the operations of their timelines
type ProfileStore interface {
	ListProfiles(ctx context.Context) ([]business.ProfileSummary, error)
	CreateProfile(ctx context.Context, name string, asDefault bool) (*business.Profile, error)
	GetProfile(ctx context.Context, name string) (*business.Profile, error)
	DeleteProfile(ctx context.Context, name string) error
	SetDefaultProfile(ctx context.Context, name string) error
	ListOperations(ctx context.Context, profile, timelineName string) ([]business.Operation, error)
	// SaveOperations replaces the operations of a timeline, creating the
	// timeline when it does not exist yet.
	SaveOperations(ctx context.Context, profile, timelineName string, ops []business.Operation) error
}

// ProjectionService answers balance projection queries for stored timelines
type ProjectionService interface {
	Points(ctx context.Context, profile, timelineName string, from, to *time.Time, includePrevious bool) ([]timeline.ComputedDataPoint, error)
	AmountAt(ctx context.Context, profile, timelineName string, date time.Time) (decimal.Decimal, error)
	Series(ctx context.Context, profile, timelineName string, from, to time.Time, stepDays int) ([]business.BalanceSample, error)
	Chart(ctx context.Context, profile, timelineName string, from, to *time.Time, dims chart.Dims) (*chart.Chart, error)
	Invalidate(profile, timelineName string)
}
