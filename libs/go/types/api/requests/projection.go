// Package requests holds API request bodies and query parameters.
// Dates are calendar dates formatted YYYY-MM-DD.
package requests

// ProjectionQuery bounds the points returned for a timeline
type ProjectionQuery struct {
	From            string `form:"from"`
	To              string `form:"to"`
	IncludePrevious bool   `form:"include_previous"`
}

// AmountQuery asks for the balance at one date
type AmountQuery struct {
	Date string `form:"date" binding:"required"`
}

// SeriesQuery asks for the balance sampled every StepDays
type SeriesQuery struct {
	From     string `form:"from" binding:"required"`
	To       string `form:"to" binding:"required"`
	StepDays int    `form:"step_days,default=1"`
}

// ChartQuery asks for a chart layout of the given pixel size
type ChartQuery struct {
	From   string  `form:"from"`
	To     string  `form:"to"`
	Width  float64 `form:"width,default=400" binding:"gt=0,lte=10000"`
	Height float64 `form:"height,default=300" binding:"gt=0,lte=10000"`
}
