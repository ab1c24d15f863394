package bookings

import (
	"fmt"
	"strings"

	"github.com/ethanriley28/ybl-app/internal/domain"
	"github.com/ethanriley28/ybl-app/internal/store"
)

// ValidationError is a malformed or nonsensical request. It is surfaced verbatim and never
// retried.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func validationError(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// ConflictError rejects a reservation or reschedule that overlaps committed bookings.
// Conflicts is empty when the store could not name the other booking.
type ConflictError struct {
	Conflicts []domain.Interval
}

func (e *ConflictError) Error() string {
	if len(e.Conflicts) == 0 {
		return "interval overlaps an existing booking"
	}
	parts := make([]string, 0, len(e.Conflicts))
	for _, c := range e.Conflicts {
		parts = append(parts, c.Start.Format("2006-01-02T15:04Z07:00")+"/"+c.End.Format("2006-01-02T15:04Z07:00"))
	}
	return "interval overlaps existing booking(s): " + strings.Join(parts, ", ")
}

func (e *ConflictError) Unwrap() error {
	return store.ErrConflict
}

func conflictError(bookings []domain.Booking) error {
	return &ConflictError{Conflicts: domain.Intervals(bookings)}
}
