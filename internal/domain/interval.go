package domain

import (
	"errors"
	"time"
)

var ErrInvalidInterval = errors.New("end must be after start")

// Interval is a half-open range [Start, End) of absolute instants.
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewInterval normalizes both bounds to UTC and rejects zero-length and inverted ranges.
func NewInterval(start, end time.Time) (Interval, error) {
	start = start.UTC()
	end = end.UTC()
	if !start.Before(end) {
		return Interval{}, ErrInvalidInterval
	}
	return Interval{Start: start, End: end}, nil
}

func (iv Interval) Duration() time.Duration {
	return iv.End.Sub(iv.Start)
}

// Contains reports whether o lies entirely inside iv.
func (iv Interval) Contains(o Interval) bool {
	return !o.Start.Before(iv.Start) && !o.End.After(iv.End)
}

// Overlaps reports whether the two intervals share at least one instant.
// Touching intervals (a.End == b.Start) do not overlap.
func (iv Interval) Overlaps(o Interval) bool {
	return Overlaps(iv, o)
}

func (iv Interval) Equal(o Interval) bool {
	return iv.Start.Equal(o.Start) && iv.End.Equal(o.End)
}
