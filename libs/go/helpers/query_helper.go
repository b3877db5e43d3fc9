package helpers

import (
	"fmt"
	"time"

	"github.com/budget-planner/planner-api/libs/go/types/business"
)

// ParseDate parses a YYYY-MM-DD calendar date as midnight in loc
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(business.DateLayout, value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", value)
	}
	return t, nil
}

// ParseOptionalDate is ParseDate returning nil for an empty value
func ParseOptionalDate(value string, loc *time.Location) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := ParseDate(value, loc)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
