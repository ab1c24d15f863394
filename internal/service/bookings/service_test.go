package bookings

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/ethanriley28/ybl-app/internal/availability"
	"github.com/ethanriley28/ybl-app/internal/domain"
	"github.com/ethanriley28/ybl-app/internal/events"
	"github.com/ethanriley28/ybl-app/internal/store"
	"github.com/ethanriley28/ybl-app/internal/store/memory"
)

type fakeStore struct {
	listFn    func(ctx context.Context, iv domain.Interval) ([]domain.Booking, error)
	insertFn  func(ctx context.Context, b domain.Booking) (domain.Booking, error)
	replaceFn func(ctx context.Context, id uuid.UUID, iv domain.Interval) (domain.Booking, error)
	deleteFn  func(ctx context.Context, id uuid.UUID) error
}

func (f *fakeStore) ListOverlapping(ctx context.Context, iv domain.Interval) ([]domain.Booking, error) {
	if f.listFn == nil {
		return nil, nil
	}
	return f.listFn(ctx, iv)
}

func (f *fakeStore) InsertIfNoOverlap(ctx context.Context, b domain.Booking) (domain.Booking, error) {
	if f.insertFn == nil {
		panic("InsertIfNoOverlap not configured")
	}
	return f.insertFn(ctx, b)
}

func (f *fakeStore) ReplaceIfNoOverlap(ctx context.Context, id uuid.UUID, iv domain.Interval) (domain.Booking, error) {
	if f.replaceFn == nil {
		panic("ReplaceIfNoOverlap not configured")
	}
	return f.replaceFn(ctx, id, iv)
}

func (f *fakeStore) DeleteByID(ctx context.Context, id uuid.UUID) error {
	if f.deleteFn == nil {
		panic("DeleteByID not configured")
	}
	return f.deleteFn(ctx, id)
}

func (f *fakeStore) Ping(ctx context.Context) error { return nil }

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (p *recordingPublisher) Publish(ctx context.Context, e events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

var (
	// Monday noon UTC.
	testNow = time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)
	monday  = time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
)

func at(h, m int) time.Time {
	return monday.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
}

func testTemplate(t *testing.T) domain.WeeklyTemplate {
	t.Helper()
	windows := map[time.Weekday][]domain.Window{}
	for wd := time.Monday; wd <= time.Friday; wd++ {
		windows[wd] = []domain.Window{{Start: 17 * time.Hour, End: 20 * time.Hour}}
	}
	tpl, err := domain.NewWeeklyTemplate(time.UTC, windows)
	if err != nil {
		t.Fatalf("NewWeeklyTemplate error: %v", err)
	}
	return tpl
}

func newTestService(t *testing.T, st store.BookingStore, opts ...Option) *Service {
	t.Helper()
	base := []Option{
		WithClock(func() time.Time { return testNow }),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithRetryPolicy(RetryPolicy{MaxAttempts: 3, InitialInterval: time.Millisecond, MaxInterval: 2 * time.Millisecond}),
	}
	return NewService(st, testTemplate(t), append(base, opts...)...)
}

func strPtr(s string) *string { return &s }

func TestServiceSlots_ValidatesDuration(t *testing.T) {
	svc := newTestService(t, &fakeStore{})

	for _, minutes := range []int{0, -30, 7, 24*60 + 5} {
		_, err := svc.Slots(context.Background(), SlotQuery{RangeStart: monday, RangeEnd: monday.Add(24 * time.Hour), SlotDurationMinutes: minutes})
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("minutes=%d: error type = %T, want *ValidationError", minutes, err)
		}
	}
}

func TestServiceSlots_ValidatesRange(t *testing.T) {
	svc := newTestService(t, &fakeStore{})

	tests := []struct {
		name       string
		start, end time.Time
	}{
		{"inverted", monday.Add(time.Hour), monday},
		{"empty", monday, monday},
		{"missing", time.Time{}, monday},
		{"too long", monday, monday.Add(90 * 24 * time.Hour)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Slots(context.Background(), SlotQuery{RangeStart: tt.start, RangeEnd: tt.end, SlotDurationMinutes: 30})
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("error type = %T, want *ValidationError", err)
			}
		})
	}
}

func TestServiceSlots_MarksBookedSlot(t *testing.T) {
	var listed domain.Interval
	svc := newTestService(t, &fakeStore{
		listFn: func(ctx context.Context, iv domain.Interval) ([]domain.Booking, error) {
			listed = iv
			return []domain.Booking{{ID: uuid.New(), StartTime: at(18, 0), EndTime: at(18, 30)}}, nil
		},
	})

	slots, err := svc.Slots(context.Background(), SlotQuery{RangeStart: monday, RangeEnd: monday.Add(24 * time.Hour), SlotDurationMinutes: 30})
	if err != nil {
		t.Fatalf("Slots error: %v", err)
	}
	if !listed.Start.Equal(monday) || !listed.End.Equal(monday.Add(24*time.Hour)) {
		t.Fatalf("store queried with %v, want the requested range", listed)
	}
	if len(slots) != 6 {
		t.Fatalf("len(slots) = %d, want 6", len(slots))
	}
	for _, s := range slots {
		want := availability.SlotOpen
		if s.Interval.Start.Equal(at(18, 0)) {
			want = availability.SlotBooked
		}
		if s.State != want {
			t.Fatalf("slot %s state = %s, want %s", s.Interval.Start.Format(time.Kitchen), s.State, want)
		}
	}
}

func TestServiceSlots_RetriesUnavailableRead(t *testing.T) {
	calls := 0
	svc := newTestService(t, &fakeStore{
		listFn: func(ctx context.Context, iv domain.Interval) ([]domain.Booking, error) {
			calls++
			if calls < 3 {
				return nil, store.Unavailable("list", errors.New("connection reset"))
			}
			return nil, nil
		},
	})

	slots, err := svc.Slots(context.Background(), SlotQuery{RangeStart: monday, RangeEnd: monday.Add(24 * time.Hour), SlotDurationMinutes: 60})
	if err != nil {
		t.Fatalf("Slots error: %v", err)
	}
	if calls != 3 {
		t.Fatalf("calls = %d, want 3", calls)
	}
	if len(slots) != 3 {
		t.Fatalf("len(slots) = %d, want 3", len(slots))
	}
}

func TestServiceSlots_RetryIsBounded(t *testing.T) {
	calls := 0
	svc := newTestService(t, &fakeStore{
		listFn: func(ctx context.Context, iv domain.Interval) ([]domain.Booking, error) {
			calls++
			return nil, store.Unavailable("list", errors.New("connection refused"))
		},
	})

	_, err := svc.Slots(context.Background(), SlotQuery{RangeStart: monday, RangeEnd: monday.Add(24 * time.Hour), SlotDurationMinutes: 30})
	if !errors.Is(err, store.ErrUnavailable) {
		t.Fatalf("err = %v, want %v", err, store.ErrUnavailable)
	}
	if calls != 3 {
		t.Fatalf("calls = %d, want 3", calls)
	}
}

func TestServiceSlots_DoesNotRetryOtherErrors(t *testing.T) {
	calls := 0
	boom := errors.New("syntax error")
	svc := newTestService(t, &fakeStore{
		listFn: func(ctx context.Context, iv domain.Interval) ([]domain.Booking, error) {
			calls++
			return nil, boom
		},
	})

	_, err := svc.Slots(context.Background(), SlotQuery{RangeStart: monday, RangeEnd: monday.Add(24 * time.Hour), SlotDurationMinutes: 30})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
}

func TestServiceReserve_Validation(t *testing.T) {
	svc := newTestService(t, &fakeStore{})

	tests := []struct {
		name string
		in   ReserveInput
		msg  string
	}{
		{"inverted", ReserveInput{Start: at(18, 0), End: at(17, 30), SubjectRef: "a"}, "end must be after start"},
		{"zero length", ReserveInput{Start: at(18, 0), End: at(18, 0), SubjectRef: "a"}, "end must be after start"},
		{"past", ReserveInput{Start: at(9, 0), End: at(9, 30), SubjectRef: "a"}, "start must be in the future"},
		{"starting now", ReserveInput{Start: testNow, End: testNow.Add(30 * time.Minute), SubjectRef: "a"}, "start must be in the future"},
		{"missing subject", ReserveInput{Start: at(18, 0), End: at(18, 30), SubjectRef: "   "}, "subjectRef is required"},
		{"outside open hours", ReserveInput{Start: at(19, 30), End: at(20, 30), SubjectRef: "a"}, "interval is outside open hours"},
		{"weekend", ReserveInput{Start: at(18+24*5, 0), End: at(18+24*5, 30), SubjectRef: "a"}, "interval is outside open hours"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Reserve(context.Background(), tt.in)
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("error type = %T (%v), want *ValidationError", err, err)
			}
			if vErr.Error() != tt.msg {
				t.Fatalf("error = %q, want %q", vErr.Error(), tt.msg)
			}
		})
	}
}

func TestServiceReserve_LongBookingRejectedWhenOpenHoursOff(t *testing.T) {
	svc := newTestService(t, &fakeStore{}, WithOpenHours(false), WithLimits(2*time.Hour, 0))

	_, err := svc.Reserve(context.Background(), ReserveInput{Start: at(13, 0), End: at(16, 0), SubjectRef: "a"})
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("error type = %T, want *ValidationError", err)
	}
}

func TestServiceReserve_CommitsAndPublishes(t *testing.T) {
	pub := &recordingPublisher{}
	var inserted domain.Booking
	svc := newTestService(t, &fakeStore{
		insertFn: func(ctx context.Context, b domain.Booking) (domain.Booking, error) {
			inserted = b
			b.ID = uuid.New()
			b.CreatedAt = testNow
			return b, nil
		},
	}, WithPublisher(pub))

	got, err := svc.Reserve(context.Background(), ReserveInput{
		Start:      at(17, 30).In(time.FixedZone("CST", -6*3600)),
		End:        at(18, 0),
		SubjectRef: "  athlete-1 ",
		Note:       strPtr("  first lesson "),
	})
	if err != nil {
		t.Fatalf("Reserve error: %v", err)
	}
	if inserted.SubjectRef != "athlete-1" || inserted.Note == nil || *inserted.Note != "first lesson" {
		t.Fatalf("inserted = %+v, want trimmed subject and note", inserted)
	}
	if inserted.StartTime.Location() != time.UTC || !inserted.StartTime.Equal(at(17, 30)) {
		t.Fatalf("start = %v, want UTC 17:30", inserted.StartTime)
	}
	if inserted.ID != uuid.Nil {
		t.Fatalf("id without idempotency key = %s, want nil", inserted.ID)
	}
	if len(pub.events) != 1 || pub.events[0].Kind != events.KindCreated || pub.events[0].BookingID != got.ID {
		t.Fatalf("events = %+v", pub.events)
	}
}

func TestServiceReserve_PublishFailureDoesNotFailReservation(t *testing.T) {
	pub := &recordingPublisher{err: errors.New("broker down")}
	svc := newTestService(t, &fakeStore{
		insertFn: func(ctx context.Context, b domain.Booking) (domain.Booking, error) {
			b.ID = uuid.New()
			return b, nil
		},
	}, WithPublisher(pub))

	if _, err := svc.Reserve(context.Background(), ReserveInput{Start: at(17, 0), End: at(17, 30), SubjectRef: "a"}); err != nil {
		t.Fatalf("Reserve error: %v", err)
	}
}

// blockingPublisher never completes on its own; it returns once its context ends.
type blockingPublisher struct {
	hadDeadline chan bool
}

func (p *blockingPublisher) Publish(ctx context.Context, e events.Event) error {
	_, ok := ctx.Deadline()
	p.hadDeadline <- ok
	<-ctx.Done()
	return ctx.Err()
}

func (p *blockingPublisher) Close() error { return nil }

func TestServiceReserve_StalledPublisherIsBounded(t *testing.T) {
	pub := &blockingPublisher{hadDeadline: make(chan bool, 1)}
	svc := newTestService(t, &fakeStore{
		insertFn: func(ctx context.Context, b domain.Booking) (domain.Booking, error) {
			b.ID = uuid.New()
			return b, nil
		},
	}, WithPublisher(pub), WithPublishTimeout(20*time.Millisecond))

	// No deadline on the caller: the publish timeout alone must release Reserve.
	begin := time.Now()
	if _, err := svc.Reserve(context.Background(), ReserveInput{Start: at(17, 0), End: at(17, 30), SubjectRef: "a"}); err != nil {
		t.Fatalf("Reserve error: %v", err)
	}
	if elapsed := time.Since(begin); elapsed > time.Second {
		t.Fatalf("Reserve took %s with a stalled publisher", elapsed)
	}
	if !<-pub.hadDeadline {
		t.Fatalf("publisher context had no deadline")
	}
}

func TestServiceReserve_AdvisoryConflictSkipsCommit(t *testing.T) {
	svc := newTestService(t, &fakeStore{
		listFn: func(ctx context.Context, iv domain.Interval) ([]domain.Booking, error) {
			return []domain.Booking{{ID: uuid.New(), StartTime: at(18, 0), EndTime: at(18, 30)}}, nil
		},
	})

	_, err := svc.Reserve(context.Background(), ReserveInput{Start: at(18, 0), End: at(18, 30), SubjectRef: "a"})
	var cErr *ConflictError
	if !errors.As(err, &cErr) {
		t.Fatalf("error type = %T, want *ConflictError", err)
	}
	if !errors.Is(err, store.ErrConflict) {
		t.Fatalf("ConflictError must match store.ErrConflict")
	}
	if len(cErr.Conflicts) != 1 || !cErr.Conflicts[0].Start.Equal(at(18, 0)) {
		t.Fatalf("conflicts = %v", cErr.Conflicts)
	}
}

func TestServiceReserve_StoreRejectsAtCommit(t *testing.T) {
	svc := newTestService(t, &fakeStore{
		insertFn: func(ctx context.Context, b domain.Booking) (domain.Booking, error) {
			return domain.Booking{}, &store.OverlapError{Conflicts: []domain.Booking{{StartTime: at(17, 45), EndTime: at(18, 15)}}}
		},
	})

	_, err := svc.Reserve(context.Background(), ReserveInput{Start: at(18, 0), End: at(18, 30), SubjectRef: "a"})
	var cErr *ConflictError
	if !errors.As(err, &cErr) {
		t.Fatalf("error type = %T, want *ConflictError", err)
	}
	if len(cErr.Conflicts) != 1 || !cErr.Conflicts[0].Start.Equal(at(17, 45)) {
		t.Fatalf("conflicts = %v", cErr.Conflicts)
	}
}

func TestServiceReserve_CommitWithoutKeyIsNotRetried(t *testing.T) {
	calls := 0
	svc := newTestService(t, &fakeStore{
		insertFn: func(ctx context.Context, b domain.Booking) (domain.Booking, error) {
			calls++
			return domain.Booking{}, store.Unavailable("insert", errors.New("connection reset"))
		},
	})

	_, err := svc.Reserve(context.Background(), ReserveInput{Start: at(18, 0), End: at(18, 30), SubjectRef: "a"})
	if !errors.Is(err, store.ErrUnavailable) {
		t.Fatalf("err = %v, want %v", err, store.ErrUnavailable)
	}
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
}

func TestServiceReserve_CommitWithKeyIsRetriedWithStableID(t *testing.T) {
	var ids []uuid.UUID
	svc := newTestService(t, &fakeStore{
		insertFn: func(ctx context.Context, b domain.Booking) (domain.Booking, error) {
			ids = append(ids, b.ID)
			if len(ids) == 1 {
				return domain.Booking{}, store.Unavailable("insert", errors.New("connection reset"))
			}
			return b, nil
		},
	})

	in := ReserveInput{Start: at(18, 0), End: at(18, 30), SubjectRef: "a", IdempotencyKey: "req-1"}
	got, err := svc.Reserve(context.Background(), in)
	if err != nil {
		t.Fatalf("Reserve error: %v", err)
	}
	if len(ids) != 2 || ids[0] != ids[1] || ids[0] == uuid.Nil {
		t.Fatalf("ids = %v, want two equal non-nil ids", ids)
	}

	again, err := svc.Reserve(context.Background(), in)
	if err != nil {
		t.Fatalf("Reserve replay error: %v", err)
	}
	if again.ID != got.ID {
		t.Fatalf("replay id = %s, want %s", again.ID, got.ID)
	}
}

func TestServiceReserve_ReplayIgnoresItselfInAdvisoryCheck(t *testing.T) {
	st := memory.New()
	svc := newTestService(t, st)

	in := ReserveInput{Start: at(18, 0), End: at(18, 30), SubjectRef: "a", IdempotencyKey: "req-2"}
	first, err := svc.Reserve(context.Background(), in)
	if err != nil {
		t.Fatalf("Reserve error: %v", err)
	}
	second, err := svc.Reserve(context.Background(), in)
	if err != nil {
		t.Fatalf("Reserve replay error: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("replay id = %s, want %s", second.ID, first.ID)
	}

	in.SubjectRef = "b"
	in.Start, in.End = at(19, 0), at(19, 30)
	if _, err := svc.Reserve(context.Background(), in); !errors.Is(err, store.ErrIdempotencyConflict) {
		t.Fatalf("reused key err = %v, want %v", err, store.ErrIdempotencyConflict)
	}
}

func TestServiceReserve_CancelledContextHasNoSideEffect(t *testing.T) {
	svc := newTestService(t, &fakeStore{
		listFn: func(ctx context.Context, iv domain.Interval) ([]domain.Booking, error) {
			t.Fatalf("store must not be called after cancellation")
			return nil, nil
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := svc.Reserve(ctx, ReserveInput{Start: at(18, 0), End: at(18, 30), SubjectRef: "a"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want %v", err, context.Canceled)
	}
}

func TestServiceReserve_Scenarios(t *testing.T) {
	st := memory.New()
	svc := newTestService(t, st)
	ctx := context.Background()

	created, err := svc.Reserve(ctx, ReserveInput{Start: at(17, 30), End: at(18, 0), SubjectRef: "a"})
	if err != nil {
		t.Fatalf("Reserve error: %v", err)
	}
	rows, err := st.ListOverlapping(ctx, domain.Interval{Start: at(17, 0), End: at(20, 0)})
	if err != nil {
		t.Fatalf("ListOverlapping error: %v", err)
	}
	if len(rows) != 1 || rows[0].ID != created.ID {
		t.Fatalf("rows = %v, want the new booking", rows)
	}

	if _, err := svc.Reserve(ctx, ReserveInput{Start: at(18, 0), End: at(18, 30), SubjectRef: "b"}); err != nil {
		t.Fatalf("back-to-back Reserve error: %v", err)
	}
	_, err = svc.Reserve(ctx, ReserveInput{Start: at(18, 0), End: at(18, 30), SubjectRef: "c"})
	var cErr *ConflictError
	if !errors.As(err, &cErr) {
		t.Fatalf("second reservation err = %v, want *ConflictError", err)
	}

	slots, err := svc.Slots(ctx, SlotQuery{RangeStart: monday, RangeEnd: monday.Add(24 * time.Hour), SlotDurationMinutes: 30})
	if err != nil {
		t.Fatalf("Slots error: %v", err)
	}
	if availability.OpenCount(slots) != 4 {
		t.Fatalf("open slots = %d, want 4", availability.OpenCount(slots))
	}
}

func TestServiceReserve_ConcurrentExactlyOneCommits(t *testing.T) {
	svc := newTestService(t, memory.New())

	const attempts = 16
	var committed, conflicted atomic.Int32
	var g errgroup.Group
	for i := 0; i < attempts; i++ {
		i := i
		g.Go(func() error {
			_, err := svc.Reserve(context.Background(), ReserveInput{Start: at(18, 0), End: at(18, 30), SubjectRef: fmt.Sprintf("athlete-%d", i)})
			var cErr *ConflictError
			switch {
			case err == nil:
				committed.Add(1)
			case errors.As(err, &cErr):
				conflicted.Add(1)
			default:
				return err
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if committed.Load() != 1 || conflicted.Load() != attempts-1 {
		t.Fatalf("committed=%d conflicted=%d", committed.Load(), conflicted.Load())
	}
}

func TestServiceReschedule_SelfExclusion(t *testing.T) {
	st := memory.New()
	pub := &recordingPublisher{}
	svc := newTestService(t, st, WithPublisher(pub))
	ctx := context.Background()

	x, err := svc.Reserve(ctx, ReserveInput{Start: at(17, 0), End: at(18, 0), SubjectRef: "a"})
	if err != nil {
		t.Fatalf("Reserve error: %v", err)
	}

	moved, err := svc.Reschedule(ctx, x.ID, at(17, 30), at(18, 30))
	if err != nil {
		t.Fatalf("Reschedule error: %v", err)
	}
	if !moved.StartTime.Equal(at(17, 30)) || moved.ID != x.ID {
		t.Fatalf("moved = %+v", moved)
	}
	if last := pub.events[len(pub.events)-1]; last.Kind != events.KindRescheduled {
		t.Fatalf("last event = %s, want %s", last.Kind, events.KindRescheduled)
	}
}

func TestServiceReschedule_ConflictAndNotFound(t *testing.T) {
	st := memory.New()
	svc := newTestService(t, st)
	ctx := context.Background()

	x, err := svc.Reserve(ctx, ReserveInput{Start: at(17, 0), End: at(17, 30), SubjectRef: "a"})
	if err != nil {
		t.Fatalf("Reserve error: %v", err)
	}
	if _, err := svc.Reserve(ctx, ReserveInput{Start: at(18, 0), End: at(18, 30), SubjectRef: "b"}); err != nil {
		t.Fatalf("Reserve error: %v", err)
	}

	_, err = svc.Reschedule(ctx, x.ID, at(18, 15), at(18, 45))
	var cErr *ConflictError
	if !errors.As(err, &cErr) {
		t.Fatalf("err = %v, want *ConflictError", err)
	}

	_, err = svc.Reschedule(ctx, uuid.New(), at(19, 0), at(19, 30))
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("err = %v, want %v", err, store.ErrNotFound)
	}

	_, err = svc.Reschedule(ctx, uuid.Nil, at(19, 0), at(19, 30))
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("err = %v, want *ValidationError", err)
	}
}

func TestServiceCancel(t *testing.T) {
	pub := &recordingPublisher{}
	id := uuid.New()
	svc := newTestService(t, &fakeStore{
		deleteFn: func(ctx context.Context, got uuid.UUID) error {
			if got != id {
				return store.ErrNotFound
			}
			return nil
		},
	}, WithPublisher(pub))

	if err := svc.Cancel(context.Background(), id); err != nil {
		t.Fatalf("Cancel error: %v", err)
	}
	if len(pub.events) != 1 || pub.events[0].Kind != events.KindCancelled || pub.events[0].BookingID != id {
		t.Fatalf("events = %+v", pub.events)
	}

	if err := svc.Cancel(context.Background(), uuid.New()); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("err = %v, want %v", err, store.ErrNotFound)
	}

	var vErr *ValidationError
	if err := svc.Cancel(context.Background(), uuid.Nil); !errors.As(err, &vErr) {
		t.Fatalf("err = %v, want *ValidationError", err)
	}
}

func TestServiceOccupied_DefaultsToNextThirtyDays(t *testing.T) {
	var listed domain.Interval
	svc := newTestService(t, &fakeStore{
		listFn: func(ctx context.Context, iv domain.Interval) ([]domain.Booking, error) {
			listed = iv
			return []domain.Booking{{ID: uuid.New(), SubjectRef: "secret", StartTime: at(17, 0), EndTime: at(17, 30)}}, nil
		},
	})

	ivs, err := svc.Occupied(context.Background(), nil, nil)
	if err != nil {
		t.Fatalf("Occupied error: %v", err)
	}
	if !listed.Start.Equal(testNow) || !listed.End.Equal(testNow.Add(30*24*time.Hour)) {
		t.Fatalf("listed = %v, want now..now+30d", listed)
	}
	if len(ivs) != 1 || !ivs[0].Start.Equal(at(17, 0)) {
		t.Fatalf("ivs = %v", ivs)
	}
}

func TestServiceCheckConflict_ExcludesGivenBooking(t *testing.T) {
	self := uuid.New()
	other := uuid.New()
	svc := newTestService(t, &fakeStore{
		listFn: func(ctx context.Context, iv domain.Interval) ([]domain.Booking, error) {
			return []domain.Booking{
				{ID: self, StartTime: at(17, 0), EndTime: at(18, 0)},
				{ID: other, StartTime: at(18, 0), EndTime: at(19, 0)},
			}, nil
		},
	})

	got, err := svc.CheckConflict(context.Background(), at(17, 30), at(18, 30), self)
	if err != nil {
		t.Fatalf("CheckConflict error: %v", err)
	}
	if len(got) != 1 || got[0].ID != other {
		t.Fatalf("got = %v, want only %s", got, other)
	}

	_, err = svc.CheckConflict(context.Background(), at(18, 0), at(17, 0), uuid.Nil)
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("err = %v, want *ValidationError", err)
	}
}

func TestServiceList_ReturnsBookingsInRange(t *testing.T) {
	st := memory.New()
	svc := newTestService(t, st)
	ctx := context.Background()

	for _, start := range []time.Time{at(19, 0), at(17, 0)} {
		if _, err := svc.Reserve(ctx, ReserveInput{Start: start, End: start.Add(30 * time.Minute), SubjectRef: "a"}); err != nil {
			t.Fatalf("Reserve error: %v", err)
		}
	}

	rows, err := svc.List(ctx, monday, monday.Add(24*time.Hour))
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(rows) != 2 || !rows[0].StartTime.Equal(at(17, 0)) {
		t.Fatalf("rows = %v, want two bookings ordered by start", rows)
	}
}
