// Package memory is an in-process BookingStore. A single mutex serializes every commit and
// the overlap re-check runs under it, so it is correct for one process only.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ethanriley28/ybl-app/internal/domain"
	"github.com/ethanriley28/ybl-app/internal/store"
)

type Store struct {
	mu       sync.RWMutex
	bookings map[uuid.UUID]domain.Booking
	now      func() time.Time
}

var _ store.BookingStore = (*Store)(nil)

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

func New(opts ...Option) *Store {
	s := &Store{
		bookings: make(map[uuid.UUID]domain.Booking),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) ListOverlapping(ctx context.Context, iv domain.Interval) ([]domain.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.overlapping(iv, uuid.Nil), nil
}

func (s *Store) InsertIfNoOverlap(ctx context.Context, b domain.Booking) (domain.Booking, error) {
	var out domain.Booking
	err := s.InTransaction(ctx, func(ctx context.Context, tx store.CalendarTx) error {
		created, err := store.InsertIfNoOverlap(ctx, tx, b)
		if err != nil {
			return err
		}
		out = created
		return nil
	})
	return out, err
}

func (s *Store) ReplaceIfNoOverlap(ctx context.Context, id uuid.UUID, iv domain.Interval) (domain.Booking, error) {
	var out domain.Booking
	err := s.InTransaction(ctx, func(ctx context.Context, tx store.CalendarTx) error {
		updated, err := store.ReplaceIfNoOverlap(ctx, tx, id, iv)
		if err != nil {
			return err
		}
		out = updated
		return nil
	})
	return out, err
}

func (s *Store) DeleteByID(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.bookings[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.bookings, id)
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

// InTransaction runs fn holding the write lock. Writes made through tx are visible
// immediately; fn returning an error does not roll them back, and the shared protocol only
// writes as its final step.
func (s *Store) InTransaction(ctx context.Context, fn func(ctx context.Context, tx store.CalendarTx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(ctx, memTx{s: s})
}

// overlapping must be called with s.mu held.
func (s *Store) overlapping(iv domain.Interval, excludeID uuid.UUID) []domain.Booking {
	all := make([]domain.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		all = append(all, b)
	}
	out := domain.OverlappingBookings(iv, all, excludeID)
	sort.Slice(out, func(i, j int) bool {
		if out[i].StartTime.Equal(out[j].StartTime) {
			return out[i].ID.String() < out[j].ID.String()
		}
		return out[i].StartTime.Before(out[j].StartTime)
	})
	return out
}

type memTx struct {
	s *Store
}

func (t memTx) GetBooking(ctx context.Context, id uuid.UUID) (domain.Booking, error) {
	b, ok := t.s.bookings[id]
	if !ok {
		return domain.Booking{}, store.ErrNotFound
	}
	return b, nil
}

func (t memTx) ListOverlapping(ctx context.Context, iv domain.Interval, excludeID uuid.UUID) ([]domain.Booking, error) {
	return t.s.overlapping(iv, excludeID), nil
}

func (t memTx) InsertBooking(ctx context.Context, b domain.Booking) (domain.Booking, error) {
	if err := ctx.Err(); err != nil {
		return domain.Booking{}, err
	}
	if err := b.Stamp(t.s.now().UTC()); err != nil {
		return domain.Booking{}, err
	}
	if _, exists := t.s.bookings[b.ID]; exists {
		return domain.Booking{}, store.ErrIdempotencyConflict
	}
	b.StartTime = b.StartTime.UTC()
	b.EndTime = b.EndTime.UTC()
	t.s.bookings[b.ID] = b
	return b, nil
}

func (t memTx) UpdateBookingInterval(ctx context.Context, id uuid.UUID, iv domain.Interval) (domain.Booking, error) {
	if err := ctx.Err(); err != nil {
		return domain.Booking{}, err
	}
	b, ok := t.s.bookings[id]
	if !ok {
		return domain.Booking{}, store.ErrNotFound
	}
	b.StartTime = iv.Start.UTC()
	b.EndTime = iv.End.UTC()
	b.UpdatedAt = t.s.now().UTC()
	t.s.bookings[id] = b
	return b, nil
}
