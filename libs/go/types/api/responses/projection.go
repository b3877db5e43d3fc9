package responses

import (
	"github.com/budget-planner/planner-api/libs/go/chart"
	"github.com/shopspring/decimal"
)

// OccurrenceResponse is an operation occurrence landing on a point
type OccurrenceResponse struct {
	Type   string          `json:"type"`
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
	// SourceType is "Recurring" for generated occurrences
	SourceType string `json:"source_type"`
}

// PointResponse is the projected balance of one day
type PointResponse struct {
	Date        string               `json:"date"`
	DayCode     int64                `json:"day_code"`
	Min         decimal.Decimal      `json:"min"`
	Max         decimal.Decimal      `json:"max"`
	Sum         decimal.Decimal      `json:"sum"`
	Actual      *decimal.Decimal     `json:"actual,omitempty"`
	Occurrences []OccurrenceResponse `json:"occurrences"`
}

// ProjectionResponse lists the projected points of a timeline
type ProjectionResponse struct {
	Object   string          `json:"object"`
	Profile  string          `json:"profile"`
	Timeline string          `json:"timeline"`
	Data     []PointResponse `json:"data"`
}

// AmountResponse is the projected balance at a date
type AmountResponse struct {
	Object   string          `json:"object"`
	Profile  string          `json:"profile"`
	Timeline string          `json:"timeline"`
	Date     string          `json:"date"`
	Amount   decimal.Decimal `json:"amount"`
}

// SampleResponse is one sample of a balance series
type SampleResponse struct {
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// SeriesResponse is a balance sampled at a fixed step
type SeriesResponse struct {
	Object   string           `json:"object"`
	Profile  string           `json:"profile"`
	Timeline string           `json:"timeline"`
	StepDays int              `json:"step_days"`
	Data     []SampleResponse `json:"data"`
}

// ChartResponse carries the chart layout of a timeline
type ChartResponse struct {
	Object   string       `json:"object"`
	Profile  string       `json:"profile"`
	Timeline string       `json:"timeline"`
	Chart    *chart.Chart `json:"chart"`
}
