package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ethanriley28/ybl-app/internal/availability"
	"github.com/ethanriley28/ybl-app/internal/domain"
	"github.com/ethanriley28/ybl-app/internal/service/bookings"
	"github.com/ethanriley28/ybl-app/internal/store"
	"github.com/ethanriley28/ybl-app/internal/store/memory"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeBookingsService struct {
	slotsFn         func(ctx context.Context, q bookings.SlotQuery) ([]availability.Slot, error)
	reserveFn       func(ctx context.Context, in bookings.ReserveInput) (domain.Booking, error)
	rescheduleFn    func(ctx context.Context, id uuid.UUID, start, end time.Time) (domain.Booking, error)
	cancelFn        func(ctx context.Context, id uuid.UUID) error
	listFn          func(ctx context.Context, from, to time.Time) ([]domain.Booking, error)
	checkConflictFn func(ctx context.Context, start, end time.Time, excludeID uuid.UUID) ([]domain.Booking, error)
	occupiedFn      func(ctx context.Context, from, to *time.Time) ([]domain.Interval, error)
	readyFn         func(ctx context.Context) error
}

func (f *fakeBookingsService) Slots(ctx context.Context, q bookings.SlotQuery) ([]availability.Slot, error) {
	if f.slotsFn == nil {
		panic("Slots not configured")
	}
	return f.slotsFn(ctx, q)
}

func (f *fakeBookingsService) Reserve(ctx context.Context, in bookings.ReserveInput) (domain.Booking, error) {
	if f.reserveFn == nil {
		panic("Reserve not configured")
	}
	return f.reserveFn(ctx, in)
}

func (f *fakeBookingsService) Reschedule(ctx context.Context, id uuid.UUID, start, end time.Time) (domain.Booking, error) {
	if f.rescheduleFn == nil {
		panic("Reschedule not configured")
	}
	return f.rescheduleFn(ctx, id, start, end)
}

func (f *fakeBookingsService) Cancel(ctx context.Context, id uuid.UUID) error {
	if f.cancelFn == nil {
		panic("Cancel not configured")
	}
	return f.cancelFn(ctx, id)
}

func (f *fakeBookingsService) List(ctx context.Context, from, to time.Time) ([]domain.Booking, error) {
	if f.listFn == nil {
		panic("List not configured")
	}
	return f.listFn(ctx, from, to)
}

func (f *fakeBookingsService) CheckConflict(ctx context.Context, start, end time.Time, excludeID uuid.UUID) ([]domain.Booking, error) {
	if f.checkConflictFn == nil {
		panic("CheckConflict not configured")
	}
	return f.checkConflictFn(ctx, start, end, excludeID)
}

func (f *fakeBookingsService) Occupied(ctx context.Context, from, to *time.Time) ([]domain.Interval, error) {
	if f.occupiedFn == nil {
		panic("Occupied not configured")
	}
	return f.occupiedFn(ctx, from, to)
}

func (f *fakeBookingsService) Ready(ctx context.Context) error {
	if f.readyFn == nil {
		return nil
	}
	return f.readyFn(ctx)
}

var (
	testNow   = time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)
	testStart = time.Date(2026, 1, 5, 17, 0, 0, 0, time.UTC)
	testID    = uuid.MustParse("00000000-0000-0000-0000-000000000010")
)

func newTestRouter(svc bookingsService) *gin.Engine {
	return NewRouter(NewHandler(svc, slog.Default()), RouterOptions{RequestTimeout: 5 * time.Second})
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func wantStatus(t *testing.T, rec *httptest.ResponseRecorder, code int) {
	t.Helper()
	if rec.Code != code {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, code, rec.Body.String())
	}
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorDetail {
	t.Helper()
	var body errorBody
	decodeJSON(t, rec, &body)
	return body.Error
}

func TestGetSlots_PassesQueryAndRendersSlots(t *testing.T) {
	var got bookings.SlotQuery
	r := newTestRouter(&fakeBookingsService{
		slotsFn: func(ctx context.Context, q bookings.SlotQuery) ([]availability.Slot, error) {
			got = q
			return []availability.Slot{
				{Interval: domain.Interval{Start: testStart, End: testStart.Add(30 * time.Minute)}, State: availability.SlotOpen},
				{Interval: domain.Interval{Start: testStart.Add(30 * time.Minute), End: testStart.Add(time.Hour)}, State: availability.SlotBooked},
			}, nil
		},
	})

	rec := doJSON(t, r, http.MethodGet, "/api/slots?rangeStart=2026-01-05T00:00:00Z&rangeEnd=2026-01-06T00:00:00-06:00&slotDurationMinutes=30", nil)
	wantStatus(t, rec, http.StatusOK)

	if got.SlotDurationMinutes != 30 {
		t.Fatalf("SlotDurationMinutes = %d, want 30", got.SlotDurationMinutes)
	}
	if !got.RangeEnd.Equal(time.Date(2026, 1, 6, 6, 0, 0, 0, time.UTC)) {
		t.Fatalf("RangeEnd = %s, want 2026-01-06T06:00Z", got.RangeEnd)
	}

	var body struct {
		Slots []slotJSON `json:"slots"`
	}
	decodeJSON(t, rec, &body)
	if len(body.Slots) != 2 {
		t.Fatalf("len(slots) = %d, want 2", len(body.Slots))
	}
	if body.Slots[0].State != "open" || body.Slots[1].State != "booked" {
		t.Fatalf("states = %q, %q, want open, booked", body.Slots[0].State, body.Slots[1].State)
	}
	if !body.Slots[0].SlotStart.Equal(testStart) {
		t.Fatalf("slotStart = %s, want %s", body.Slots[0].SlotStart, testStart)
	}
}

func TestGetSlots_AcceptsUnencodedPlusOffset(t *testing.T) {
	var got bookings.SlotQuery
	r := newTestRouter(&fakeBookingsService{
		slotsFn: func(ctx context.Context, q bookings.SlotQuery) ([]availability.Slot, error) {
			got = q
			return nil, nil
		},
	})

	// A literal '+' in a query string decodes as a space.
	rec := doJSON(t, r, http.MethodGet, "/api/slots?rangeStart=2026-01-05T17:00:00+05:00&rangeEnd=2026-01-06T00:00:00Z&slotDurationMinutes=30", nil)
	wantStatus(t, rec, http.StatusOK)
	if want := time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC); !got.RangeStart.Equal(want) {
		t.Fatalf("RangeStart = %s, want %s", got.RangeStart, want)
	}

	rec = doJSON(t, r, http.MethodGet, "/api/slots?rangeStart="+url.QueryEscape("2026-01-05T17:00:00+05:00")+"&rangeEnd=2026-01-06T00:00:00Z&slotDurationMinutes=30", nil)
	wantStatus(t, rec, http.StatusOK)
}

func TestParseQueryTime(t *testing.T) {
	tests := []struct {
		raw     string
		want    time.Time
		wantErr bool
	}{
		{raw: "2026-01-05T17:00:00Z", want: time.Date(2026, 1, 5, 17, 0, 0, 0, time.UTC)},
		{raw: "2026-01-05T17:00:00.5-06:00", want: time.Date(2026, 1, 5, 23, 0, 0, 5e8, time.UTC)},
		{raw: "2026-01-05T17:00:00 05:30", want: time.Date(2026, 1, 5, 11, 30, 0, 0, time.UTC)},
		{raw: "2026-01-05 17:00:00Z", wantErr: true},
		{raw: "tomorrow", wantErr: true},
	}
	for _, tt := range tests {
		got, err := parseQueryTime(tt.raw)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("parseQueryTime(%q) = %s, want error", tt.raw, got)
			}
			continue
		}
		if err != nil {
			t.Fatalf("parseQueryTime(%q) error: %v", tt.raw, err)
		}
		if !got.Equal(tt.want) {
			t.Fatalf("parseQueryTime(%q) = %s, want %s", tt.raw, got, tt.want)
		}
	}
}

func TestGetSlots_RejectsBadQuery(t *testing.T) {
	r := newTestRouter(&fakeBookingsService{})

	tests := []struct {
		name string
		path string
	}{
		{name: "missing range start", path: "/api/slots?rangeEnd=2026-01-06T00:00:00Z&slotDurationMinutes=30"},
		{name: "bad timestamp", path: "/api/slots?rangeStart=yesterday&rangeEnd=2026-01-06T00:00:00Z&slotDurationMinutes=30"},
		{name: "non-integer duration", path: "/api/slots?rangeStart=2026-01-05T00:00:00Z&rangeEnd=2026-01-06T00:00:00Z&slotDurationMinutes=half"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, r, http.MethodGet, tt.path, nil)
			wantStatus(t, rec, http.StatusBadRequest)
			if kind := decodeError(t, rec).Kind; kind != kindValidation {
				t.Fatalf("kind = %q, want %q", kind, kindValidation)
			}
		})
	}
}

func TestCreateBooking_ReturnsCreatedBooking(t *testing.T) {
	var got bookings.ReserveInput
	r := newTestRouter(&fakeBookingsService{
		reserveFn: func(ctx context.Context, in bookings.ReserveInput) (domain.Booking, error) {
			got = in
			return domain.Booking{ID: testID, SubjectRef: in.SubjectRef, StartTime: in.Start, EndTime: in.End, CreatedAt: testNow}, nil
		},
	})

	rec := doJSON(t, r, http.MethodPost, "/api/bookings", map[string]any{
		"intervalStart": testStart.Format(time.RFC3339),
		"intervalEnd":   testStart.Add(30 * time.Minute).Format(time.RFC3339),
		"subjectRef":    "player-1",
	}, idempotencyHeader, " key-1 ")
	wantStatus(t, rec, http.StatusCreated)

	if got.IdempotencyKey != "key-1" {
		t.Fatalf("IdempotencyKey = %q, want key-1", got.IdempotencyKey)
	}
	if got.SubjectRef != "player-1" {
		t.Fatalf("SubjectRef = %q, want player-1", got.SubjectRef)
	}

	var body bookingJSON
	decodeJSON(t, rec, &body)
	if body.ID != testID.String() {
		t.Fatalf("id = %s, want %s", body.ID, testID)
	}
	if !body.IntervalEnd.Equal(testStart.Add(30 * time.Minute)) {
		t.Fatalf("intervalEnd = %s", body.IntervalEnd)
	}
	if body.Note != nil {
		t.Fatalf("note = %q, want null", *body.Note)
	}
}

func TestCreateBooking_MapsErrors(t *testing.T) {
	other := domain.Interval{Start: testStart, End: testStart.Add(time.Hour)}
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantKind string
	}{
		{name: "validation", err: &bookings.ValidationError{}, wantCode: http.StatusBadRequest, wantKind: kindValidation},
		{name: "conflict", err: &bookings.ConflictError{Conflicts: []domain.Interval{other}}, wantCode: http.StatusConflict, wantKind: kindConflict},
		{name: "idempotency conflict", err: store.ErrIdempotencyConflict, wantCode: http.StatusConflict, wantKind: kindConflict},
		{name: "unavailable", err: store.Unavailable("insert", errors.New("dial tcp: refused")), wantCode: http.StatusServiceUnavailable, wantKind: kindUnavailable},
		{name: "unknown", err: errors.New("boom"), wantCode: http.StatusInternalServerError, wantKind: kindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(&fakeBookingsService{
				reserveFn: func(ctx context.Context, in bookings.ReserveInput) (domain.Booking, error) {
					return domain.Booking{}, tt.err
				},
			})

			rec := doJSON(t, r, http.MethodPost, "/api/bookings", map[string]any{
				"intervalStart": testStart.Add(30 * time.Minute),
				"intervalEnd":   testStart.Add(90 * time.Minute),
				"subjectRef":    "player-1",
			})
			wantStatus(t, rec, tt.wantCode)
			detail := decodeError(t, rec)
			if detail.Kind != tt.wantKind {
				t.Fatalf("kind = %q, want %q", detail.Kind, tt.wantKind)
			}
			if tt.name == "conflict" {
				if len(detail.Conflicts) != 1 || !detail.Conflicts[0].Start.Equal(other.Start) {
					t.Fatalf("conflicts = %v, want [%v]", detail.Conflicts, other)
				}
			}
		})
	}
}

func TestCreateBooking_RejectsMalformedBody(t *testing.T) {
	r := newTestRouter(&fakeBookingsService{})

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewBufferString(`{"intervalStart":"5pm"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	wantStatus(t, rec, http.StatusBadRequest)
}

func TestRescheduleAndCancel(t *testing.T) {
	r := newTestRouter(&fakeBookingsService{
		rescheduleFn: func(ctx context.Context, id uuid.UUID, start, end time.Time) (domain.Booking, error) {
			return domain.Booking{ID: id, StartTime: start, EndTime: end, CreatedAt: testNow}, nil
		},
		cancelFn: func(ctx context.Context, id uuid.UUID) error {
			if id == testID {
				return nil
			}
			return store.ErrNotFound
		},
	})

	rec := doJSON(t, r, http.MethodPatch, "/api/bookings/"+testID.String(), map[string]any{
		"intervalStart": testStart.Add(time.Hour),
		"intervalEnd":   testStart.Add(2 * time.Hour),
	})
	wantStatus(t, rec, http.StatusOK)

	rec = doJSON(t, r, http.MethodPatch, "/api/bookings/nope", map[string]any{})
	wantStatus(t, rec, http.StatusBadRequest)

	rec = doJSON(t, r, http.MethodDelete, "/api/bookings/"+testID.String(), nil)
	wantStatus(t, rec, http.StatusNoContent)

	rec = doJSON(t, r, http.MethodDelete, "/api/bookings/"+uuid.NewString(), nil)
	wantStatus(t, rec, http.StatusNotFound)
	if kind := decodeError(t, rec).Kind; kind != kindNotFound {
		t.Fatalf("kind = %q, want %q", kind, kindNotFound)
	}
}

func TestOccupied_OptionalBounds(t *testing.T) {
	var gotFrom, gotTo *time.Time
	r := newTestRouter(&fakeBookingsService{
		occupiedFn: func(ctx context.Context, from, to *time.Time) ([]domain.Interval, error) {
			gotFrom, gotTo = from, to
			return []domain.Interval{{Start: testStart, End: testStart.Add(time.Hour)}}, nil
		},
	})

	rec := doJSON(t, r, http.MethodGet, "/api/bookings/occupied", nil)
	wantStatus(t, rec, http.StatusOK)
	if gotFrom != nil || gotTo != nil {
		t.Fatalf("expected nil bounds, got %v %v", gotFrom, gotTo)
	}
	if strings.Contains(rec.Body.String(), "subjectRef") {
		t.Fatalf("occupied intervals leaked booking details: %s", rec.Body.String())
	}

	rec = doJSON(t, r, http.MethodGet, "/api/bookings/occupied?from=2026-01-05T00:00:00Z", nil)
	wantStatus(t, rec, http.StatusOK)
	if gotFrom == nil || gotTo != nil {
		t.Fatalf("bounds = %v %v, want from only", gotFrom, gotTo)
	}
}

func TestReadyz(t *testing.T) {
	healthy := newTestRouter(&fakeBookingsService{})
	rec := doJSON(t, healthy, http.MethodGet, "/readyz", nil)
	wantStatus(t, rec, http.StatusOK)

	down := newTestRouter(&fakeBookingsService{readyFn: func(ctx context.Context) error {
		return store.Unavailable("ping", errors.New("refused"))
	}})
	rec = doJSON(t, down, http.MethodGet, "/readyz", nil)
	wantStatus(t, rec, http.StatusServiceUnavailable)
}

func TestRequestID_EchoesOrMints(t *testing.T) {
	r := newTestRouter(&fakeBookingsService{})

	rec := doJSON(t, r, http.MethodGet, "/healthz", nil, RequestIDHeader, "abc")
	if got := rec.Header().Get(RequestIDHeader); got != "abc" {
		t.Fatalf("request id = %q, want abc", got)
	}

	rec = doJSON(t, r, http.MethodGet, "/healthz", nil)
	if got := rec.Header().Get(RequestIDHeader); len(got) != 32 {
		t.Fatalf("minted request id %q, want 32 hex chars", got)
	}
}

func TestEndToEnd_WithMemoryStore(t *testing.T) {
	tpl, err := domain.NewWeeklyTemplate(time.UTC, map[time.Weekday][]domain.Window{
		time.Monday: {{Start: 17 * time.Hour, End: 20 * time.Hour}},
	})
	if err != nil {
		t.Fatalf("NewWeeklyTemplate error: %v", err)
	}

	svc := bookings.NewService(memory.New(), tpl, bookings.WithClock(func() time.Time { return testNow }))
	r := newTestRouter(svc)

	payload := map[string]any{
		"intervalStart": testStart.Add(time.Hour),
		"intervalEnd":   testStart.Add(90 * time.Minute),
		"subjectRef":    "player-1",
	}
	rec := doJSON(t, r, http.MethodPost, "/api/bookings", payload)
	wantStatus(t, rec, http.StatusCreated)

	rec = doJSON(t, r, http.MethodPost, "/api/bookings", payload)
	wantStatus(t, rec, http.StatusConflict)

	rec = doJSON(t, r, http.MethodGet, "/api/slots?rangeStart=2026-01-05T00:00:00Z&rangeEnd=2026-01-06T00:00:00Z&slotDurationMinutes=30", nil)
	wantStatus(t, rec, http.StatusOK)
	var body struct {
		Slots []slotJSON `json:"slots"`
	}
	decodeJSON(t, rec, &body)
	if len(body.Slots) != 6 {
		t.Fatalf("len(slots) = %d, want 6", len(body.Slots))
	}
	if body.Slots[2].State != "booked" {
		t.Fatalf("slot 18:00 state = %q, want booked", body.Slots[2].State)
	}

	rec = doJSON(t, r, http.MethodPost, "/api/bookings/conflict", map[string]any{
		"intervalStart": testStart.Add(75 * time.Minute),
		"intervalEnd":   testStart.Add(105 * time.Minute),
	})
	wantStatus(t, rec, http.StatusOK)
	if !strings.Contains(rec.Body.String(), `"conflict":true`) {
		t.Fatalf("expected a conflict, body: %s", rec.Body.String())
	}
}
