package domain

import "github.com/google/uuid"

// Overlaps is the half-open overlap rule: a.Start < b.End && b.Start < a.End.
func Overlaps(a, b Interval) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

// ConflictsWithAny stops at the first committed interval that overlaps candidate.
func ConflictsWithAny(candidate Interval, committed []Interval) bool {
	for _, c := range committed {
		if Overlaps(candidate, c) {
			return true
		}
	}
	return false
}

// OverlappingBookings returns the bookings whose interval overlaps candidate, skipping
// excludeID so a booking never conflicts with its own prior interval.
func OverlappingBookings(candidate Interval, bookings []Booking, excludeID uuid.UUID) []Booking {
	var out []Booking
	for _, b := range bookings {
		if excludeID != uuid.Nil && b.ID == excludeID {
			continue
		}
		if Overlaps(candidate, b.Interval()) {
			out = append(out, b)
		}
	}
	return out
}

// Intervals projects bookings onto their intervals, preserving order.
func Intervals(bookings []Booking) []Interval {
	out := make([]Interval, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, b.Interval())
	}
	return out
}
