package httpapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ethanriley28/ybl-app/internal/domain"
	"github.com/ethanriley28/ybl-app/internal/service/bookings"
	"github.com/ethanriley28/ybl-app/internal/store"
)

const (
	kindValidation  = "validation"
	kindConflict    = "conflict"
	kindNotFound    = "not_found"
	kindUnavailable = "unavailable"
	kindRateLimited = "rate_limited"
	kindInternal    = "internal"
)

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Kind      string         `json:"kind"`
	Detail    string         `json:"detail"`
	Conflicts []intervalJSON `json:"conflicts,omitempty"`
}

func writeError(c *gin.Context, code int, kind, detail string, conflicts []domain.Interval) {
	body := errorBody{Error: errorDetail{Kind: kind, Detail: detail}}
	for _, iv := range conflicts {
		body.Error.Conflicts = append(body.Error.Conflicts, toIntervalJSON(iv))
	}
	c.JSON(code, body)
}

// respondError maps the service error taxonomy onto status codes. Only unexpected failures
// are logged at error level.
func (h *Handler) respondError(c *gin.Context, msg string, err error) {
	var vErr *bookings.ValidationError
	var cErr *bookings.ConflictError

	switch {
	case errors.As(err, &cErr):
		writeError(c, http.StatusConflict, kindConflict, "That time overlaps an existing booking. Pick a different slot.", cErr.Conflicts)
	case errors.Is(err, store.ErrConflict):
		writeError(c, http.StatusConflict, kindConflict, "That time overlaps an existing booking. Pick a different slot.", domain.Intervals(store.Conflicts(err)))
	case errors.Is(err, store.ErrIdempotencyConflict):
		writeError(c, http.StatusConflict, kindConflict, "Idempotency key was already used with a different request.", nil)
	case errors.As(err, &vErr):
		writeError(c, http.StatusBadRequest, kindValidation, vErr.Error(), nil)
	case errors.Is(err, store.ErrNotFound):
		writeError(c, http.StatusNotFound, kindNotFound, "booking not found", nil)
	case errors.Is(err, store.ErrUnavailable):
		h.log.Error(msg, slog.String("route", c.FullPath()), slog.Any("err", err))
		writeError(c, http.StatusServiceUnavailable, kindUnavailable, "booking store unavailable, try again", nil)
	case errors.Is(err, context.DeadlineExceeded):
		h.log.Warn(msg, slog.String("route", c.FullPath()), slog.Any("err", err))
		writeError(c, http.StatusServiceUnavailable, kindUnavailable, "request timed out", nil)
	case errors.Is(err, context.Canceled):
		// Client went away; nobody reads the body.
		c.Status(499)
	default:
		h.log.Error(msg, slog.String("route", c.FullPath()), slog.Any("err", err))
		writeError(c, http.StatusInternalServerError, kindInternal, "internal error", nil)
	}
}

type intervalJSON struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func toIntervalJSON(iv domain.Interval) intervalJSON {
	return intervalJSON{Start: iv.Start.UTC(), End: iv.End.UTC()}
}
