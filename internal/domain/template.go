package domain

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

const day = 24 * time.Hour

// Window is an open period of a weekday expressed as offsets from local midnight.
type Window struct {
	Start time.Duration
	End   time.Duration
}

func (w Window) String() string {
	return formatClock(w.Start) + "-" + formatClock(w.End)
}

// WeeklyTemplate maps each weekday to its ordered, disjoint open windows; it repeats every
// week. Offsets are wall-clock offsets in the template location.
type WeeklyTemplate struct {
	location *time.Location
	windows  map[time.Weekday][]Window
}

func NewWeeklyTemplate(loc *time.Location, windows map[time.Weekday][]Window) (WeeklyTemplate, error) {
	if loc == nil {
		loc = time.UTC
	}

	out := make(map[time.Weekday][]Window, len(windows))
	for wd, ws := range windows {
		if wd < time.Sunday || wd > time.Saturday {
			return WeeklyTemplate{}, fmt.Errorf("invalid weekday %d", wd)
		}
		if len(ws) == 0 {
			continue
		}

		sorted := make([]Window, len(ws))
		copy(sorted, ws)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

		for i, w := range sorted {
			if w.Start < 0 || w.Start >= day {
				return WeeklyTemplate{}, fmt.Errorf("%s window %s: start must be within the day", wd, w)
			}
			if w.End > day {
				return WeeklyTemplate{}, fmt.Errorf("%s window %s: end must not pass midnight", wd, w)
			}
			if w.End <= w.Start {
				return WeeklyTemplate{}, fmt.Errorf("%s window %s: end must be after start", wd, w)
			}
			if i > 0 && sorted[i-1].End > w.Start {
				return WeeklyTemplate{}, fmt.Errorf("%s windows %s and %s overlap", wd, sorted[i-1], w)
			}
		}
		out[wd] = sorted
	}

	return WeeklyTemplate{location: loc, windows: out}, nil
}

func (t WeeklyTemplate) Location() *time.Location {
	if t.location == nil {
		return time.UTC
	}
	return t.location
}

// Windows returns a copy of the windows configured for wd, sorted by start.
func (t WeeklyTemplate) Windows(wd time.Weekday) []Window {
	ws := t.windows[wd]
	if len(ws) == 0 {
		return nil
	}
	out := make([]Window, len(ws))
	copy(out, ws)
	return out
}

func (t WeeklyTemplate) IsEmpty() bool {
	return len(t.windows) == 0
}

// WindowsOn resolves the windows of the calendar date containing d (in the template
// location) into absolute intervals on that date.
func (t WeeklyTemplate) WindowsOn(d time.Time) []Interval {
	loc := t.Location()
	local := d.In(loc)
	ws := t.windows[local.Weekday()]
	if len(ws) == 0 {
		return nil
	}

	y, m, dd := local.Date()
	out := make([]Interval, 0, len(ws))
	for _, w := range ws {
		start := wallClock(y, m, dd, w.Start, loc)
		end := wallClock(y, m, dd, w.End, loc)
		if !start.Before(end) {
			// A DST transition swallowed the window.
			continue
		}
		out = append(out, Interval{Start: start.UTC(), End: end.UTC()})
	}
	return out
}

// Fits reports whether iv lies entirely inside one window of the day it starts on.
func (t WeeklyTemplate) Fits(iv Interval) bool {
	for _, w := range t.WindowsOn(iv.Start) {
		if w.Contains(iv) {
			return true
		}
	}
	return false
}

func wallClock(y int, m time.Month, d int, offset time.Duration, loc *time.Location) time.Time {
	h := int(offset / time.Hour)
	offset -= time.Duration(h) * time.Hour
	mm := int(offset / time.Minute)
	offset -= time.Duration(mm) * time.Minute
	s := int(offset / time.Second)
	offset -= time.Duration(s) * time.Second
	return time.Date(y, m, d, h, mm, s, int(offset), loc)
}

// ParseWindow parses "HH:MM-HH:MM". The end may be "24:00".
func ParseWindow(s string) (Window, error) {
	startStr, endStr, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return Window{}, fmt.Errorf("invalid window %q: want HH:MM-HH:MM", s)
	}
	start, err := ParseClock(startStr)
	if err != nil {
		return Window{}, fmt.Errorf("invalid window %q: %w", s, err)
	}
	end, err := ParseClock(endStr)
	if err != nil {
		return Window{}, fmt.Errorf("invalid window %q: %w", s, err)
	}
	return Window{Start: start, End: end}, nil
}

// ParseClock parses "HH:MM" into an offset from midnight.
func ParseClock(s string) (time.Duration, error) {
	hStr, mStr, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, fmt.Errorf("invalid clock %q", s)
	}
	h, err := strconv.Atoi(hStr)
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	m, err := strconv.Atoi(mStr)
	if err != nil || len(mStr) != 2 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	if h < 0 || h > 24 || m < 0 || m > 59 || (h == 24 && m != 0) {
		return 0, fmt.Errorf("clock %q out of range", s)
	}
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute, nil
}

var errUnknownWeekday = errors.New("unknown weekday")

// ParseWeekday accepts English names ("monday", "mon") and ISO numbers (1=Monday..7=Sunday).
func ParseWeekday(s string) (time.Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > 7 {
			return 0, fmt.Errorf("%w: %q", errUnknownWeekday, s)
		}
		return time.Weekday(n % 7), nil
	}
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		name := strings.ToLower(wd.String())
		if s == name || s == name[:3] {
			return wd, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", errUnknownWeekday, s)
}

func formatClock(d time.Duration) string {
	h := int(d / time.Hour)
	m := int((d % time.Hour) / time.Minute)
	return fmt.Sprintf("%02d:%02d", h, m)
}
