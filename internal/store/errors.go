package store

import (
	"errors"
	"fmt"

	"github.com/ethanriley28/ybl-app/internal/domain"
)

var (
	ErrConflict            = errors.New("conflict")
	ErrNotFound            = errors.New("not found")
	ErrIdempotencyConflict = errors.New("idempotency key conflict")
	ErrUnavailable         = errors.New("store unavailable")
)

// OverlapError reports a commit rejected because of overlapping bookings. Conflicts is empty
// when the storage engine rejected the write without naming the other row.
type OverlapError struct {
	Conflicts []domain.Booking
}

func (e *OverlapError) Error() string {
	if len(e.Conflicts) == 0 {
		return "conflict: interval overlaps an existing booking"
	}
	return fmt.Sprintf("conflict: interval overlaps %d existing booking(s)", len(e.Conflicts))
}

func (e *OverlapError) Is(target error) bool {
	return target == ErrConflict
}

// UnavailableError wraps a transport or storage failure. Whether the operation took effect
// is unknown to the caller.
type UnavailableError struct {
	Op  string
	Err error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("store unavailable: %s: %v", e.Op, e.Err)
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}

func (e *UnavailableError) Is(target error) bool {
	return target == ErrUnavailable
}

func Unavailable(op string, err error) error {
	if err == nil {
		return nil
	}
	var ue *UnavailableError
	if errors.As(err, &ue) {
		return err
	}
	return &UnavailableError{Op: op, Err: err}
}

// Conflicts returns the overlapping bookings carried by err, if any.
func Conflicts(err error) []domain.Booking {
	var oe *OverlapError
	if errors.As(err, &oe) {
		return oe.Conflicts
	}
	return nil
}
