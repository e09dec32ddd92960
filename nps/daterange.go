package nps

import (
	"errors"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// ErrInvalidDate marks a request date that failed to parse. Handlers
// map it to a client error instead of an upstream failure.
var ErrInvalidDate = errors.New("invalid date")

// DateRange is an inclusive day-granularity window over contact update
// timestamps. A nil bound leaves that side open.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// ParseDateRange builds a window from optional YYYY-MM-DD strings. The
// start bound covers from 00:00:00Z of its day, the end bound through
// 23:59:59.999Z of its day.
func ParseDateRange(startDate, endDate string) (DateRange, error) {
	var window DateRange

	if startDate != "" {
		t, err := time.Parse(dateLayout, startDate)
		if err != nil {
			return DateRange{}, fmt.Errorf("%w: start date %q", ErrInvalidDate, startDate)
		}
		window.Start = &t
	}

	if endDate != "" {
		t, err := time.Parse(dateLayout, endDate)
		if err != nil {
			return DateRange{}, fmt.Errorf("%w: end date %q", ErrInvalidDate, endDate)
		}
		end := t.Add(24*time.Hour - time.Millisecond)
		window.End = &end
	}

	return window, nil
}

// IsZero reports whether neither bound is set.
func (r DateRange) IsZero() bool {
	return r.Start == nil && r.End == nil
}

// Contains reports whether timestamp falls inside the window. With no
// bounds set the timestamp is accepted without being parsed; once
// either bound is set, a timestamp that fails to parse is excluded.
func (r DateRange) Contains(timestamp string) bool {
	if r.IsZero() {
		return true
	}

	t, err := parseTimestamp(timestamp)
	if err != nil {
		return false
	}

	if r.Start != nil && t.Before(*r.Start) {
		return false
	}
	if r.End != nil && t.After(*r.End) {
		return false
	}

	return true
}

func parseTimestamp(timestamp string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, timestamp)
	if err == nil {
		return t, nil
	}

	// Some upstream exports drop the zone suffix.
	return time.Parse("2006-01-02T15:04:05", timestamp)
}
