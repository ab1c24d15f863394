package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Booking is a committed reservation of the coach's time. SubjectRef is opaque to this
// package: it identifies the athlete or requester and is never interpreted.
type Booking struct {
	bun.BaseModel `bun:"table:bookings"`

	ID         uuid.UUID `bun:"id,pk,type:uuid"`
	SubjectRef string    `bun:"subject_ref,notnull"`
	Note       *string   `bun:"note"`
	StartTime  time.Time `bun:"start_time,notnull"`
	EndTime    time.Time `bun:"end_time,notnull"`
	CreatedAt  time.Time `bun:"created_at,notnull"`
	UpdatedAt  time.Time `bun:"updated_at,notnull"`
}

func (b Booking) Interval() Interval {
	return Interval{Start: b.StartTime.UTC(), End: b.EndTime.UTC()}
}

// SamePayload reports whether two bookings carry the same caller-supplied fields.
// Used to tell an idempotent replay from a key reused for a different request.
func (b Booking) SamePayload(o Booking) bool {
	if b.SubjectRef != o.SubjectRef || !b.Interval().Equal(o.Interval()) {
		return false
	}
	switch {
	case b.Note == nil && o.Note == nil:
		return true
	case b.Note == nil || o.Note == nil:
		return false
	default:
		return *b.Note == *o.Note
	}
}

func (b *Booking) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	now := time.Now().UTC()
	switch query.(type) {
	case *bun.InsertQuery:
		if err := b.Stamp(now); err != nil {
			return err
		}
	case *bun.UpdateQuery:
		b.UpdatedAt = now
	}
	return nil
}

// Stamp assigns an id and creation timestamps to a booking about to be inserted,
// keeping any values the caller already set.
func (b *Booking) Stamp(now time.Time) error {
	if b.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		b.ID = id
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	if b.UpdatedAt.IsZero() {
		b.UpdatedAt = now
	}
	return nil
}
