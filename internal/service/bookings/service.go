package bookings

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/ethanriley28/ybl-app/internal/availability"
	"github.com/ethanriley28/ybl-app/internal/domain"
	"github.com/ethanriley28/ybl-app/internal/events"
	"github.com/ethanriley28/ybl-app/internal/metrics"
	"github.com/ethanriley28/ybl-app/internal/store"
	"github.com/ethanriley28/ybl-app/internal/telemetry"
)

const (
	maxSubjectRefLen     = 256
	maxNoteLen           = 2000
	maxIdempotencyKeyLen = 256
	maxSlotMinutes       = 24 * 60
	defaultOccupiedSpan  = 30 * 24 * time.Hour
)

type Service struct {
	store     store.BookingStore
	template  domain.WeeklyTemplate
	now       func() time.Time
	publisher events.Publisher
	logger    *slog.Logger
	tracer    trace.Tracer
	retry     RetryPolicy

	publishTimeout   time.Duration
	enforceOpenHours bool
	maxDuration      time.Duration
	maxRange         time.Duration
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

func WithPublisher(p events.Publisher) Option {
	return func(s *Service) {
		if p != nil {
			s.publisher = p
		}
	}
}

// WithPublishTimeout caps the time spent publishing one event. Zero keeps the default.
func WithPublishTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.publishTimeout = d
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

func WithRetryPolicy(p RetryPolicy) Option {
	return func(s *Service) {
		s.retry = p.normalized()
	}
}

// WithOpenHours toggles the requirement that a booking lies inside one template window.
func WithOpenHours(enforce bool) Option {
	return func(s *Service) {
		s.enforceOpenHours = enforce
	}
}

// WithLimits bounds the length of a single booking and of a queried range. Zero keeps the
// default.
func WithLimits(maxDuration, maxRange time.Duration) Option {
	return func(s *Service) {
		if maxDuration > 0 {
			s.maxDuration = maxDuration
		}
		if maxRange > 0 {
			s.maxRange = maxRange
		}
	}
}

func NewService(st store.BookingStore, tpl domain.WeeklyTemplate, opts ...Option) *Service {
	s := &Service{
		store:            st,
		template:         tpl,
		now:              time.Now,
		publisher:        events.Nop{},
		publishTimeout:   2 * time.Second,
		logger:           slog.Default(),
		tracer:           telemetry.Tracer(),
		retry:            DefaultRetryPolicy(),
		enforceOpenHours: true,
		maxDuration:      4 * time.Hour,
		maxRange:         62 * 24 * time.Hour,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "service.bookings")
	return s
}

func (s *Service) Template() domain.WeeklyTemplate {
	return s.template
}

type SlotQuery struct {
	RangeStart          time.Time
	RangeEnd            time.Time
	SlotDurationMinutes int
}

// Slots returns the slot grid for the query, each slot open or booked against a fresh
// snapshot of committed bookings.
func (s *Service) Slots(ctx context.Context, q SlotQuery) (_ []availability.Slot, err error) {
	ctx, span := s.tracer.Start(ctx, "bookings.Slots", trace.WithAttributes(
		attribute.Int("slot.duration_minutes", q.SlotDurationMinutes),
	))
	defer func() { endSpan(span, err) }()

	started := time.Now()
	defer func() { metrics.ObserveSlotQuery(time.Since(started)) }()

	if q.SlotDurationMinutes <= 0 {
		return nil, validationError("slotDurationMinutes must be positive")
	}
	if q.SlotDurationMinutes%5 != 0 {
		return nil, validationError("slotDurationMinutes must be a multiple of 5")
	}
	if q.SlotDurationMinutes > maxSlotMinutes {
		return nil, validationError("slotDurationMinutes must be at most %d", maxSlotMinutes)
	}

	rng, err := s.validRange(q.RangeStart, q.RangeEnd, "rangeStart", "rangeEnd")
	if err != nil {
		return nil, err
	}

	committed, err := s.listOverlapping(ctx, rng)
	if err != nil {
		return nil, err
	}

	slots, err := availability.ComputeSlots(rng, time.Duration(q.SlotDurationMinutes)*time.Minute, s.template, domain.Intervals(committed), s.now())
	if err != nil {
		return nil, validationError("%s", err.Error())
	}
	span.SetAttributes(attribute.Int("slot.count", len(slots)), attribute.Int("slot.open", availability.OpenCount(slots)))
	return slots, nil
}

type ReserveInput struct {
	Start          time.Time
	End            time.Time
	SubjectRef     string
	Note           *string
	IdempotencyKey string
}

// Reserve validates the candidate, runs an advisory overlap check and then commits through
// the store's atomic insert. A request carrying an idempotency key gets a deterministic id,
// which makes the commit safe to retry after ErrUnavailable.
func (s *Service) Reserve(ctx context.Context, in ReserveInput) (_ domain.Booking, err error) {
	ctx, span := s.tracer.Start(ctx, "bookings.Reserve")
	defer func() {
		metrics.IncReservation("reserve", outcome(err))
		endSpan(span, err)
	}()

	// Validating
	iv, err := s.validCandidate(in.Start, in.End)
	if err != nil {
		return domain.Booking{}, err
	}
	subject := strings.TrimSpace(in.SubjectRef)
	if subject == "" {
		return domain.Booking{}, validationError("subjectRef is required")
	}
	if utf8.RuneCountInString(subject) > maxSubjectRefLen {
		return domain.Booking{}, validationError("subjectRef too long")
	}
	note, err := normalizeNote(in.Note)
	if err != nil {
		return domain.Booking{}, err
	}

	b := domain.Booking{
		SubjectRef: subject,
		Note:       note,
		StartTime:  iv.Start,
		EndTime:    iv.End,
	}

	key := strings.TrimSpace(in.IdempotencyKey)
	if key != "" {
		if len(key) > maxIdempotencyKeyLen {
			return domain.Booking{}, validationError("idempotency key too long")
		}
		b.ID = uuid.NewSHA1(uuid.NameSpaceOID, []byte("ybl:reserve:"+key))
	}
	span.SetAttributes(attribute.String("booking.start", iv.Start.Format(time.RFC3339)), attribute.Bool("booking.idempotent", key != ""))

	if err := ctx.Err(); err != nil {
		return domain.Booking{}, err
	}

	// Checking: advisory only, the commit re-checks under the store's lock.
	existing, err := s.listOverlapping(ctx, iv)
	if err != nil {
		return domain.Booking{}, err
	}
	if conflicts := domain.OverlappingBookings(iv, existing, b.ID); len(conflicts) > 0 {
		s.logger.Info("reservation rejected by advisory check", slog.Time("start", iv.Start), slog.Int("conflicts", len(conflicts)))
		return domain.Booking{}, conflictError(conflicts)
	}

	if err := ctx.Err(); err != nil {
		return domain.Booking{}, err
	}

	// Committing
	insert := func(ctx context.Context) (domain.Booking, error) {
		return s.store.InsertIfNoOverlap(ctx, b)
	}
	var created domain.Booking
	if b.ID != uuid.Nil {
		created, err = retry(ctx, s, "insert", insert)
	} else {
		created, err = insert(ctx)
	}
	if err != nil {
		return domain.Booking{}, s.commitError("reserve", err)
	}

	s.logger.Info("booking committed", slog.String("booking_id", created.ID.String()), slog.Time("start", created.StartTime), slog.Time("end", created.EndTime))
	s.publish(ctx, events.NewEvent(events.KindCreated, created, s.now()))
	return created, nil
}

// Reschedule moves a booking through the same protocol as Reserve. The booking's own prior
// interval never conflicts with its new one.
func (s *Service) Reschedule(ctx context.Context, id uuid.UUID, start, end time.Time) (_ domain.Booking, err error) {
	ctx, span := s.tracer.Start(ctx, "bookings.Reschedule", trace.WithAttributes(attribute.String("booking.id", id.String())))
	defer func() {
		metrics.IncReservation("reschedule", outcome(err))
		endSpan(span, err)
	}()

	if id == uuid.Nil {
		return domain.Booking{}, validationError("id is required")
	}
	iv, err := s.validCandidate(start, end)
	if err != nil {
		return domain.Booking{}, err
	}

	if err := ctx.Err(); err != nil {
		return domain.Booking{}, err
	}

	existing, err := s.listOverlapping(ctx, iv)
	if err != nil {
		return domain.Booking{}, err
	}
	if conflicts := domain.OverlappingBookings(iv, existing, id); len(conflicts) > 0 {
		s.logger.Info("reschedule rejected by advisory check", slog.String("booking_id", id.String()), slog.Int("conflicts", len(conflicts)))
		return domain.Booking{}, conflictError(conflicts)
	}

	if err := ctx.Err(); err != nil {
		return domain.Booking{}, err
	}

	// Replacing with the same interval is a no-op in the store, so the commit can be retried.
	updated, err := retry(ctx, s, "replace", func(ctx context.Context) (domain.Booking, error) {
		return s.store.ReplaceIfNoOverlap(ctx, id, iv)
	})
	if err != nil {
		return domain.Booking{}, s.commitError("reschedule", err)
	}

	s.logger.Info("booking rescheduled", slog.String("booking_id", id.String()), slog.Time("start", updated.StartTime), slog.Time("end", updated.EndTime))
	s.publish(ctx, events.NewEvent(events.KindRescheduled, updated, s.now()))
	return updated, nil
}

// Cancel deletes a booking by id. It is not conflict-sensitive.
func (s *Service) Cancel(ctx context.Context, id uuid.UUID) (err error) {
	ctx, span := s.tracer.Start(ctx, "bookings.Cancel", trace.WithAttributes(attribute.String("booking.id", id.String())))
	defer func() {
		metrics.IncCancellation(outcome(err))
		endSpan(span, err)
	}()

	if id == uuid.Nil {
		return validationError("id is required")
	}
	if err := s.store.DeleteByID(ctx, id); err != nil {
		return err
	}

	s.logger.Info("booking cancelled", slog.String("booking_id", id.String()))
	s.publish(ctx, events.Event{
		ID:         uuid.New(),
		Kind:       events.KindCancelled,
		BookingID:  id,
		OccurredAt: s.now().UTC(),
	})
	return nil
}

// List returns the bookings intersecting [from, to), ordered by start.
func (s *Service) List(ctx context.Context, from, to time.Time) (_ []domain.Booking, err error) {
	ctx, span := s.tracer.Start(ctx, "bookings.List")
	defer func() { endSpan(span, err) }()

	rng, err := s.validRange(from, to, "from", "to")
	if err != nil {
		return nil, err
	}
	return s.listOverlapping(ctx, rng)
}

// CheckConflict reports the bookings a candidate interval would overlap, ignoring excludeID.
// It reserves nothing and its answer may be stale by the time a commit happens.
func (s *Service) CheckConflict(ctx context.Context, start, end time.Time, excludeID uuid.UUID) (_ []domain.Booking, err error) {
	ctx, span := s.tracer.Start(ctx, "bookings.CheckConflict")
	defer func() { endSpan(span, err) }()

	iv, err := domain.NewInterval(start, end)
	if err != nil {
		return nil, validationError("end must be after start")
	}
	rows, err := s.listOverlapping(ctx, iv)
	if err != nil {
		return nil, err
	}
	return domain.OverlappingBookings(iv, rows, excludeID), nil
}

// Occupied returns the committed intervals intersecting [from, to) without any subject data.
// A nil from defaults to now and a nil to defaults to thirty days after from.
func (s *Service) Occupied(ctx context.Context, from, to *time.Time) (_ []domain.Interval, err error) {
	ctx, span := s.tracer.Start(ctx, "bookings.Occupied")
	defer func() { endSpan(span, err) }()

	start := s.now().UTC()
	if from != nil {
		start = from.UTC()
	}
	end := start.Add(defaultOccupiedSpan)
	if to != nil {
		end = to.UTC()
	}

	rng, err := s.validRange(start, end, "from", "to")
	if err != nil {
		return nil, err
	}
	rows, err := s.listOverlapping(ctx, rng)
	if err != nil {
		return nil, err
	}
	return domain.Intervals(rows), nil
}

// Ready reports whether the store answers.
func (s *Service) Ready(ctx context.Context) error {
	return s.store.Ping(ctx)
}

func (s *Service) listOverlapping(ctx context.Context, iv domain.Interval) ([]domain.Booking, error) {
	return retry(ctx, s, "list", func(ctx context.Context) ([]domain.Booking, error) {
		return s.store.ListOverlapping(ctx, iv)
	})
}

func (s *Service) validCandidate(start, end time.Time) (domain.Interval, error) {
	if start.IsZero() || end.IsZero() {
		return domain.Interval{}, validationError("start and end are required")
	}
	iv, err := domain.NewInterval(start, end)
	if err != nil {
		return domain.Interval{}, validationError("end must be after start")
	}
	if !iv.Start.After(s.now()) {
		return domain.Interval{}, validationError("start must be in the future")
	}
	if iv.Duration() > s.maxDuration {
		return domain.Interval{}, validationError("booking longer than %s", s.maxDuration)
	}
	if s.enforceOpenHours && !s.template.Fits(iv) {
		return domain.Interval{}, validationError("interval is outside open hours")
	}
	return iv, nil
}

func (s *Service) validRange(start, end time.Time, startName, endName string) (domain.Interval, error) {
	if start.IsZero() || end.IsZero() {
		return domain.Interval{}, validationError("%s and %s are required", startName, endName)
	}
	rng, err := domain.NewInterval(start, end)
	if err != nil {
		return domain.Interval{}, validationError("%s must be after %s", endName, startName)
	}
	if rng.Duration() > s.maxRange {
		return domain.Interval{}, validationError("range longer than %s", s.maxRange)
	}
	return rng, nil
}

// commitError turns a store failure during the commit step into the caller-facing taxonomy.
func (s *Service) commitError(op string, err error) error {
	switch {
	case errors.Is(err, store.ErrConflict):
		s.logger.Info("commit rejected by store", slog.String("op", op))
		return conflictError(store.Conflicts(err))
	case errors.Is(err, store.ErrUnavailable):
		s.logger.Error("commit outcome unknown", slog.String("op", op), slog.Any("err", err))
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		s.logger.Warn("commit interrupted, outcome unknown", slog.String("op", op), slog.Any("err", err))
	}
	return err
}

// publish never fails the operation: the booking is already committed. The caller's
// cancellation is dropped but the publish still runs under its own deadline.
func (s *Service) publish(ctx context.Context, e events.Event) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.publishTimeout)
	defer cancel()

	if err := s.publisher.Publish(ctx, e); err != nil {
		metrics.IncPublishFailure()
		s.logger.Warn("event publish failed", slog.String("event_type", string(e.Kind)), slog.String("booking_id", e.BookingID.String()), slog.Any("err", err))
	}
}

func normalizeNote(note *string) (*string, error) {
	if note == nil {
		return nil, nil
	}
	n := strings.TrimSpace(*note)
	if n == "" {
		return nil, nil
	}
	if utf8.RuneCountInString(n) > maxNoteLen {
		return nil, validationError("note too long")
	}
	return &n, nil
}

func outcome(err error) string {
	var vErr *ValidationError
	switch {
	case err == nil:
		return "committed"
	case errors.As(err, &vErr):
		return "validation"
	case errors.Is(err, store.ErrConflict), errors.Is(err, store.ErrIdempotencyConflict):
		return "conflict"
	case errors.Is(err, store.ErrNotFound):
		return "not_found"
	case errors.Is(err, store.ErrUnavailable):
		return "unavailable"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "cancelled"
	default:
		return "error"
	}
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
