package chart

import (
	"fmt"
	"time"

	"github.com/budget-planner/planner-api/libs/go/types/business"
	"github.com/budget-planner/planner-api/libs/go/timeline"
	"github.com/pkg/errors"
)

// MaxSpanYears is the first date span, in whole years, DateMarkers cannot lay out
const MaxSpanYears = 10

// ErrUnsupportedSpan is returned for date ranges of ten years or more
var ErrUnsupportedSpan = errors.New("date span of ten years or more is not supported")

// CheckSpan returns ErrUnsupportedSpan when the calendar days from min to max
// in loc cover MaxSpanYears or more. It needs no computed points.
func CheckSpan(min, max time.Time, loc *time.Location) error {
	if loc == nil {
		loc = time.Local
	}
	from := timeline.StartOfDay(min, loc)
	to := timeline.StartOfDay(max, loc)
	if timeline.CountIntervals(from, to, business.IntervalYear, loc) >= MaxSpanYears {
		return errors.Wrapf(ErrUnsupportedSpan, "%s to %s", from.Format("2006-01-02"), to.Format("2006-01-02"))
	}
	return nil
}

// DateFormatter renders an x axis marker
type DateFormatter func(time.Time) string

func formatDay(d time.Time) string      { return fmt.Sprintf("%d", d.Day()) }
func formatMonthDay(d time.Time) string { return fmt.Sprintf("%d/%d", int(d.Month()), d.Day()) }
func formatFull(d time.Time) string {
	return fmt.Sprintf("%d/%d/%02d", d.Day(), int(d.Month()), d.Year()%100)
}

// DateMarkers picks x axis markers for the calendar days between min and max
// in loc. The step grows with the span: every day under 10 days, every 5
// days under 30 days, each first of month under 15 months, each first of
// January under 10 years. The first marker is always min's day and the last
// one is the first marker on or after max's day.
func DateMarkers(min, max time.Time, loc *time.Location) ([]time.Time, DateFormatter, error) {
	if loc == nil {
		loc = time.Local
	}
	from := timeline.StartOfDay(min, loc)
	to := timeline.StartOfDay(max, loc)

	days := timeline.CountIntervals(from, to, business.IntervalDay, loc)
	switch {
	case days <= 0:
		return []time.Time{}, formatDay, nil
	case days < 10:
		return loopUpTo(from, to, func(d time.Time) time.Time {
			return d.AddDate(0, 0, 1)
		}), formatDay, nil
	case days < 30:
		return loopUpTo(from, to, func(d time.Time) time.Time {
			return d.AddDate(0, 0, 5)
		}), formatMonthDay, nil
	case timeline.CountIntervals(from, to, business.IntervalMonth, loc) < 15:
		return loopUpTo(from, to, func(d time.Time) time.Time {
			return time.Date(d.Year(), d.Month()+1, 1, 0, 0, 0, 0, loc)
		}), formatFull, nil
	case timeline.CountIntervals(from, to, business.IntervalYear, loc) < MaxSpanYears:
		return loopUpTo(from, to, func(d time.Time) time.Time {
			return time.Date(d.Year()+1, time.January, 1, 0, 0, 0, 0, loc)
		}), formatFull, nil
	default:
		return nil, nil, errors.Wrapf(ErrUnsupportedSpan, "%s to %s", from.Format("2006-01-02"), to.Format("2006-01-02"))
	}
}

func loopUpTo(from, to time.Time, next func(time.Time) time.Time) []time.Time {
	markers := []time.Time{from}
	for markers[len(markers)-1].Before(to) {
		markers = append(markers, next(markers[len(markers)-1]))
	}
	return markers
}
