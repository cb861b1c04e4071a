package domain

import (
	"fmt"
	"time"
)

// TimeWindowLayout renders window bounds in report headers, e.g. "Sun 1 Feb 2026 (@ 00:00)".
const TimeWindowLayout = "Mon 2 Jan 2006 (@ 15:04)"

// timestampLayouts are the ISO-8601 forms accepted on the command line.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// TimeWindow is a half-open interval [Start, End) in UTC.
// A closure exactly at Start counts, one exactly at End does not.
type TimeWindow struct {
	start time.Time
	end   time.Time
}

// NewTimeWindow validates start < end and returns the window.
func NewTimeWindow(start, end time.Time) (TimeWindow, error) {
	if start.IsZero() || end.IsZero() {
		return TimeWindow{}, fmt.Errorf("%w: window bounds must be set", ErrInvalidInput)
	}
	if !start.Before(end) {
		return TimeWindow{}, fmt.Errorf("%w: window start %s must be before end %s",
			ErrInvalidInput, start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	return TimeWindow{start: start.UTC(), end: end.UTC()}, nil
}

// ParseTimeWindow parses two ISO-8601 timestamps into a window.
// Timestamps without an offset are read as UTC.
func ParseTimeWindow(start, end string) (TimeWindow, error) {
	s, err := ParseTimestamp(start)
	if err != nil {
		return TimeWindow{}, fmt.Errorf("start: %w", err)
	}
	e, err := ParseTimestamp(end)
	if err != nil {
		return TimeWindow{}, fmt.Errorf("end: %w", err)
	}
	return NewTimeWindow(s, e)
}

// ParseTimestamp parses a single ISO-8601 timestamp.
func ParseTimestamp(value string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: invalid datetime string %q (expected ISO 8601, e.g. 2026-02-01T00:00:00Z)",
		ErrInvalidInput, value)
}

// Start returns the inclusive lower bound.
func (w TimeWindow) Start() time.Time { return w.start }

// End returns the exclusive upper bound.
func (w TimeWindow) End() time.Time { return w.end }

// Duration returns End - Start.
func (w TimeWindow) Duration() time.Duration { return w.end.Sub(w.start) }

// IsZero reports whether the window was never constructed.
func (w TimeWindow) IsZero() bool { return w.start.IsZero() && w.end.IsZero() }

// Contains reports whether t falls in [Start, End).
func (w TimeWindow) Contains(t time.Time) bool {
	return !t.Before(w.start) && t.Before(w.end)
}

func (w TimeWindow) String() string {
	return fmt.Sprintf("%s to %s", w.start.Format(TimeWindowLayout), w.end.Format(TimeWindowLayout))
}
