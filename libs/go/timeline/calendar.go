package timeline

import (
	"fmt"
	"time"

	"github.com/budget-planner/planner-api/libs/go/types/business"
)

const secondsPerDay = 24 * 60 * 60

// DayCode returns the number of whole days between 1970-01-01 and the
// calendar date of t in loc. Time of day is ignored.
func DayCode(t time.Time, loc *time.Location) int64 {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / secondsPerDay
}

// StartOfDay returns midnight of the calendar date of t in loc
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// AddIntervals adds n calendar intervals to the calendar date of start in loc
// and returns midnight of the resulting date. Month and year additions keep
// the day of month when it exists in the target month and clamp it to the
// last day of that month otherwise, so Jan 31 + 1 month is Feb 28 (or 29).
func AddIntervals(start time.Time, interval business.Interval, n int, loc *time.Location) time.Time {
	y, m, d := start.In(loc).Date()
	switch interval {
	case business.IntervalDay:
		return time.Date(y, m, d+n, 0, 0, 0, 0, loc)
	case business.IntervalWeek:
		return time.Date(y, m, d+7*n, 0, 0, 0, 0, loc)
	case business.IntervalMonth:
		months := int(m) - 1 + n
		ny := y + floorDiv(months, 12)
		nm := time.Month(months-floorDiv(months, 12)*12 + 1)
		return time.Date(ny, nm, min(d, daysIn(ny, nm)), 0, 0, 0, 0, loc)
	case business.IntervalYear:
		ny := y + n
		return time.Date(ny, m, min(d, daysIn(ny, m)), 0, 0, 0, 0, loc)
	default:
		panic(fmt.Sprintf("timeline: unknown interval %q", interval))
	}
}

// CountIntervals returns the number of whole calendar intervals that fit
// between the calendar dates of start and end, i.e. the largest n such that
// AddIntervals(start, interval, n) is not after end. It returns a negative
// value when end is before start.
func CountIntervals(start, end time.Time, interval business.Interval, loc *time.Location) int {
	startCode := DayCode(start, loc)
	endCode := DayCode(end, loc)
	if endCode < startCode {
		return -1
	}

	switch interval {
	case business.IntervalDay:
		return int(endCode - startCode)
	case business.IntervalWeek:
		return int((endCode - startCode) / 7)
	case business.IntervalMonth, business.IntervalYear:
		sy, sm, _ := start.In(loc).Date()
		ey, em, _ := end.In(loc).Date()
		n := ey - sy
		if interval == business.IntervalMonth {
			n = n*12 + int(em) - int(sm)
		}
		if DayCode(AddIntervals(start, interval, n, loc), loc) > endCode {
			n--
		}
		return n
	default:
		panic(fmt.Sprintf("timeline: unknown interval %q", interval))
	}
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
