package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/ethanriley28/ybl-app/internal/domain"
)

// BookingStore owns the durable set of committed bookings.
//
// InsertIfNoOverlap and ReplaceIfNoOverlap are atomic: no two concurrent callers can both
// succeed for overlapping intervals. A rejected attempt returns an error matching ErrConflict,
// usually an *OverlapError listing the offending bookings.
type BookingStore interface {
	// ListOverlapping returns bookings whose interval intersects iv, ordered by start.
	ListOverlapping(ctx context.Context, iv domain.Interval) ([]domain.Booking, error)
	// InsertIfNoOverlap commits b. A booking whose ID already exists with the same payload is
	// returned as is, which makes retrying an insert with a caller-chosen ID idempotent.
	InsertIfNoOverlap(ctx context.Context, b domain.Booking) (domain.Booking, error)
	// ReplaceIfNoOverlap moves booking id to iv, ignoring the booking's own prior interval.
	ReplaceIfNoOverlap(ctx context.Context, id uuid.UUID, iv domain.Interval) (domain.Booking, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
	Ping(ctx context.Context) error
}
