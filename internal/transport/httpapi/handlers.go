package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ethanriley28/ybl-app/internal/availability"
	"github.com/ethanriley28/ybl-app/internal/domain"
	"github.com/ethanriley28/ybl-app/internal/service/bookings"
)

const idempotencyHeader = "Idempotency-Key"

type bookingsService interface {
	Slots(ctx context.Context, q bookings.SlotQuery) ([]availability.Slot, error)
	Reserve(ctx context.Context, in bookings.ReserveInput) (domain.Booking, error)
	Reschedule(ctx context.Context, id uuid.UUID, start, end time.Time) (domain.Booking, error)
	Cancel(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, from, to time.Time) ([]domain.Booking, error)
	CheckConflict(ctx context.Context, start, end time.Time, excludeID uuid.UUID) ([]domain.Booking, error)
	Occupied(ctx context.Context, from, to *time.Time) ([]domain.Interval, error)
	Ready(ctx context.Context) error
}

type Handler struct {
	svc bookingsService
	log *slog.Logger
}

func NewHandler(svc bookingsService, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{svc: svc, log: logger.With(slog.String("component", "http"))}
}

type bookingJSON struct {
	ID            string    `json:"id"`
	IntervalStart time.Time `json:"intervalStart"`
	IntervalEnd   time.Time `json:"intervalEnd"`
	SubjectRef    string    `json:"subjectRef"`
	Note          *string   `json:"note"`
	CreatedAt     time.Time `json:"createdAt"`
}

func toBookingJSON(b domain.Booking) bookingJSON {
	return bookingJSON{
		ID:            b.ID.String(),
		IntervalStart: b.StartTime.UTC(),
		IntervalEnd:   b.EndTime.UTC(),
		SubjectRef:    b.SubjectRef,
		Note:          b.Note,
		CreatedAt:     b.CreatedAt.UTC(),
	}
}

type slotJSON struct {
	SlotStart time.Time `json:"slotStart"`
	SlotEnd   time.Time `json:"slotEnd"`
	State     string    `json:"state"`
}

// GET /api/slots?rangeStart=&rangeEnd=&slotDurationMinutes=
func (h *Handler) getSlots(c *gin.Context) {
	start, ok := h.queryTime(c, "rangeStart", true)
	if !ok {
		return
	}
	end, ok := h.queryTime(c, "rangeEnd", true)
	if !ok {
		return
	}
	minutes, err := strconv.Atoi(c.Query("slotDurationMinutes"))
	if err != nil {
		writeError(c, http.StatusBadRequest, kindValidation, "slotDurationMinutes must be an integer", nil)
		return
	}

	slots, err := h.svc.Slots(c.Request.Context(), bookings.SlotQuery{
		RangeStart:          *start,
		RangeEnd:            *end,
		SlotDurationMinutes: minutes,
	})
	if err != nil {
		h.respondError(c, "get slots failed", err)
		return
	}

	out := make([]slotJSON, 0, len(slots))
	for _, s := range slots {
		out = append(out, slotJSON{SlotStart: s.Interval.Start.UTC(), SlotEnd: s.Interval.End.UTC(), State: string(s.State)})
	}
	c.JSON(http.StatusOK, gin.H{"slots": out})
}

type reserveRequest struct {
	IntervalStart time.Time `json:"intervalStart"`
	IntervalEnd   time.Time `json:"intervalEnd"`
	SubjectRef    string    `json:"subjectRef"`
	Note          *string   `json:"note"`
}

// POST /api/bookings
func (h *Handler) createBooking(c *gin.Context) {
	var req reserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, kindValidation, "invalid JSON body (times must be RFC3339)", nil)
		return
	}

	b, err := h.svc.Reserve(c.Request.Context(), bookings.ReserveInput{
		Start:          req.IntervalStart,
		End:            req.IntervalEnd,
		SubjectRef:     req.SubjectRef,
		Note:           req.Note,
		IdempotencyKey: strings.TrimSpace(c.GetHeader(idempotencyHeader)),
	})
	if err != nil {
		h.respondError(c, "reserve failed", err)
		return
	}
	c.JSON(http.StatusCreated, toBookingJSON(b))
}

// GET /api/bookings?from=&to=
func (h *Handler) listBookings(c *gin.Context) {
	from, ok := h.queryTime(c, "from", true)
	if !ok {
		return
	}
	to, ok := h.queryTime(c, "to", true)
	if !ok {
		return
	}

	rows, err := h.svc.List(c.Request.Context(), *from, *to)
	if err != nil {
		h.respondError(c, "list bookings failed", err)
		return
	}

	out := make([]bookingJSON, 0, len(rows))
	for _, b := range rows {
		out = append(out, toBookingJSON(b))
	}
	c.JSON(http.StatusOK, gin.H{"bookings": out})
}

type rescheduleRequest struct {
	IntervalStart time.Time `json:"intervalStart"`
	IntervalEnd   time.Time `json:"intervalEnd"`
}

// PATCH /api/bookings/:id
func (h *Handler) rescheduleBooking(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req rescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, kindValidation, "invalid JSON body (times must be RFC3339)", nil)
		return
	}

	b, err := h.svc.Reschedule(c.Request.Context(), id, req.IntervalStart, req.IntervalEnd)
	if err != nil {
		h.respondError(c, "reschedule failed", err)
		return
	}
	c.JSON(http.StatusOK, toBookingJSON(b))
}

// DELETE /api/bookings/:id
func (h *Handler) cancelBooking(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Cancel(c.Request.Context(), id); err != nil {
		h.respondError(c, "cancel failed", err)
		return
	}
	c.Status(http.StatusNoContent)
}

type conflictRequest struct {
	IntervalStart time.Time `json:"intervalStart"`
	IntervalEnd   time.Time `json:"intervalEnd"`
	ExcludeID     string    `json:"excludeId"`
}

// POST /api/bookings/conflict
func (h *Handler) checkConflict(c *gin.Context) {
	var req conflictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, kindValidation, "invalid JSON body (times must be RFC3339)", nil)
		return
	}
	exclude := uuid.Nil
	if raw := strings.TrimSpace(req.ExcludeID); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			writeError(c, http.StatusBadRequest, kindValidation, "invalid excludeId", nil)
			return
		}
		exclude = id
	}

	rows, err := h.svc.CheckConflict(c.Request.Context(), req.IntervalStart, req.IntervalEnd, exclude)
	if err != nil {
		h.respondError(c, "check conflict failed", err)
		return
	}

	conflicts := make([]intervalJSON, 0, len(rows))
	for _, b := range rows {
		conflicts = append(conflicts, toIntervalJSON(b.Interval()))
	}
	c.JSON(http.StatusOK, gin.H{"conflict": len(rows) > 0, "conflicts": conflicts})
}

// GET /api/bookings/occupied?from=&to=
func (h *Handler) occupied(c *gin.Context) {
	from, ok := h.queryTime(c, "from", false)
	if !ok {
		return
	}
	to, ok := h.queryTime(c, "to", false)
	if !ok {
		return
	}

	ivs, err := h.svc.Occupied(c.Request.Context(), from, to)
	if err != nil {
		h.respondError(c, "occupied failed", err)
		return
	}

	out := make([]intervalJSON, 0, len(ivs))
	for _, iv := range ivs {
		out = append(out, toIntervalJSON(iv))
	}
	c.JSON(http.StatusOK, gin.H{"intervals": out})
}

func (h *Handler) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) readyz(c *gin.Context) {
	if err := h.svc.Ready(c.Request.Context()); err != nil {
		h.log.Warn("readiness check failed", slog.Any("err", err))
		writeError(c, http.StatusServiceUnavailable, kindUnavailable, "booking store unavailable", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// queryTime parses an RFC3339 query parameter. It writes the 400 itself and reports false
// when the value is malformed, or missing while required.
func (h *Handler) queryTime(c *gin.Context, name string, required bool) (*time.Time, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		if required {
			writeError(c, http.StatusBadRequest, kindValidation, name+" is required", nil)
			return nil, false
		}
		return nil, true
	}
	t, err := parseQueryTime(raw)
	if err != nil {
		writeError(c, http.StatusBadRequest, kindValidation, name+" must be an RFC3339 timestamp", nil)
		return nil, false
	}
	return &t, true
}

// parseQueryTime accepts RFC3339 with a space where the offset sign was: an unencoded
// "+05:00" in a query string decodes as " 05:00".
func parseQueryTime(raw string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err == nil {
		return t, nil
	}
	if i := strings.LastIndexByte(raw, ' '); i > 0 {
		if t, err2 := time.Parse(time.RFC3339Nano, raw[:i]+"+"+raw[i+1:]); err2 == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeError(c, http.StatusBadRequest, kindValidation, "invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}
