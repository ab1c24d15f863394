package events

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ethanriley28/ybl-app/internal/domain"
)

type Kind string

const (
	KindCreated     Kind = "booking.created"
	KindRescheduled Kind = "booking.rescheduled"
	KindCancelled   Kind = "booking.cancelled"
)

// Event describes a committed change to the booking set. It is emitted after the commit and
// carries no subject data beyond the opaque reference.
type Event struct {
	ID         uuid.UUID `json:"eventId"`
	Kind       Kind      `json:"kind"`
	BookingID  uuid.UUID `json:"bookingId"`
	SubjectRef string    `json:"subjectRef,omitempty"`
	Start      time.Time `json:"intervalStart"`
	End        time.Time `json:"intervalEnd"`
	OccurredAt time.Time `json:"occurredAt"`
}

func NewEvent(kind Kind, b domain.Booking, now time.Time) Event {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return Event{
		ID:         id,
		Kind:       kind,
		BookingID:  b.ID,
		SubjectRef: b.SubjectRef,
		Start:      b.StartTime.UTC(),
		End:        b.EndTime.UTC(),
		OccurredAt: now.UTC(),
	}
}

type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

// Nop discards every event. It is used when no broker is configured.
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }
func (Nop) Close() error                         { return nil }

func SplitBrokers(raw string) []string {
	var brokers []string
	for _, b := range strings.Split(raw, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
