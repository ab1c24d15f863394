package availability

import (
	"errors"
	"time"

	"github.com/ethanriley28/ybl-app/internal/domain"
)

type SlotState string

const (
	SlotOpen   SlotState = "open"
	SlotBooked SlotState = "booked"
)

// Slot is a derived view of one candidate booking interval. It is never persisted.
type Slot struct {
	Interval domain.Interval
	State    SlotState
}

var (
	ErrInvalidRange    = errors.New("range end must be after range start")
	ErrInvalidDuration = errors.New("slot duration must be positive")
)

// ComputeSlots expands tpl over rng into fixed-length candidate slots and marks each one
// booked when it overlaps any committed interval.
//
// Each window is walked from its start in steps of slotDuration while the slot still ends
// inside the window; the remainder of a window shorter than slotDuration yields nothing.
// Only slots lying fully inside rng and starting strictly after now are returned, in
// ascending start order.
func ComputeSlots(rng domain.Interval, slotDuration time.Duration, tpl domain.WeeklyTemplate, committed []domain.Interval, now time.Time) ([]Slot, error) {
	if !rng.Start.Before(rng.End) {
		return nil, ErrInvalidRange
	}
	if slotDuration <= 0 {
		return nil, ErrInvalidDuration
	}

	slots := []Slot{}
	if tpl.IsEmpty() {
		return slots, nil
	}

	loc := tpl.Location()
	first := rng.Start.In(loc)
	y, m, d := first.Date()

	for i := 0; ; i++ {
		// Local midnight of each calendar day, so 23h and 25h days are walked correctly.
		dayStart := time.Date(y, m, d+i, 0, 0, 0, 0, loc)
		if !dayStart.Before(rng.End) {
			break
		}

		for _, window := range tpl.WindowsOn(dayStart) {
			for start := window.Start; !start.Add(slotDuration).After(window.End); start = start.Add(slotDuration) {
				candidate := domain.Interval{Start: start, End: start.Add(slotDuration)}
				if !rng.Contains(candidate) {
					continue
				}
				if !start.After(now) {
					continue
				}

				state := SlotOpen
				if domain.ConflictsWithAny(candidate, committed) {
					state = SlotBooked
				}
				slots = append(slots, Slot{Interval: candidate, State: state})
			}
		}
	}

	return slots, nil
}

// OpenCount returns the number of open slots.
func OpenCount(slots []Slot) int {
	n := 0
	for _, s := range slots {
		if s.State == SlotOpen {
			n++
		}
	}
	return n
}
