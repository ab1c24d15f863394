package store

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/ethanriley28/ybl-app/internal/domain"
)

// CalendarTx is the set of reads and writes available inside one serialized booking
// transaction. Implementations must hold whatever lock makes the check-then-write in
// InsertIfNoOverlap and ReplaceIfNoOverlap indivisible.
type CalendarTx interface {
	GetBooking(ctx context.Context, id uuid.UUID) (domain.Booking, error)
	// ListOverlapping returns bookings intersecting iv other than excludeID (uuid.Nil excludes none).
	ListOverlapping(ctx context.Context, iv domain.Interval, excludeID uuid.UUID) ([]domain.Booking, error)
	InsertBooking(ctx context.Context, b domain.Booking) (domain.Booking, error)
	UpdateBookingInterval(ctx context.Context, id uuid.UUID, iv domain.Interval) (domain.Booking, error)
}

// InsertIfNoOverlap runs the re-check and insert of a reservation inside tx.
func InsertIfNoOverlap(ctx context.Context, tx CalendarTx, b domain.Booking) (domain.Booking, error) {
	if b.ID != uuid.Nil {
		existing, err := tx.GetBooking(ctx, b.ID)
		switch {
		case err == nil:
			if existing.SamePayload(b) {
				return existing, nil
			}
			return domain.Booking{}, ErrIdempotencyConflict
		case !errors.Is(err, ErrNotFound):
			return domain.Booking{}, err
		}
	}

	iv, err := domain.NewInterval(b.StartTime, b.EndTime)
	if err != nil {
		return domain.Booking{}, err
	}

	conflicts, err := tx.ListOverlapping(ctx, iv, uuid.Nil)
	if err != nil {
		return domain.Booking{}, err
	}
	if len(conflicts) > 0 {
		return domain.Booking{}, &OverlapError{Conflicts: conflicts}
	}

	b.StartTime = iv.Start
	b.EndTime = iv.End
	return tx.InsertBooking(ctx, b)
}

// ReplaceIfNoOverlap runs the re-check and interval update of a reschedule inside tx. The
// booking's own row never counts as a conflict.
func ReplaceIfNoOverlap(ctx context.Context, tx CalendarTx, id uuid.UUID, iv domain.Interval) (domain.Booking, error) {
	current, err := tx.GetBooking(ctx, id)
	if err != nil {
		return domain.Booking{}, err
	}
	if current.Interval().Equal(iv) {
		return current, nil
	}

	conflicts, err := tx.ListOverlapping(ctx, iv, id)
	if err != nil {
		return domain.Booking{}, err
	}
	if len(conflicts) > 0 {
		return domain.Booking{}, &OverlapError{Conflicts: conflicts}
	}

	return tx.UpdateBookingInterval(ctx, id, iv)
}
