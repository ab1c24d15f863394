package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ethanriley28/ybl-app/internal/domain"
	"github.com/ethanriley28/ybl-app/internal/store"
)

const (
	overlapConstraint = "bookings_no_overlap"

	codeExclusionViolation = "23P01"
	codeUniqueViolation    = "23505"
)

// transient SQLSTATEs: serialization failure, deadlock, admin/crash shutdown, cannot connect
// now, too many connections.
var transientCodes = map[string]bool{
	"40001": true,
	"40P01": true,
	"57P01": true,
	"57P02": true,
	"57P03": true,
	"53300": true,
}

// classify maps a driver error onto the store error taxonomy. Errors already in the taxonomy
// and context errors pass through unchanged.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, store.ErrConflict),
		errors.Is(err, store.ErrNotFound),
		errors.Is(err, store.ErrIdempotencyConflict),
		errors.Is(err, store.ErrUnavailable),
		errors.Is(err, domain.ErrInvalidInterval),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return err
	case errors.Is(err, sql.ErrNoRows):
		return store.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == codeExclusionViolation && pgErr.ConstraintName == overlapConstraint:
			return &store.OverlapError{}
		case pgErr.Code == codeUniqueViolation:
			return store.ErrIdempotencyConflict
		case strings.HasPrefix(pgErr.Code, "08"), transientCodes[pgErr.Code]:
			return store.Unavailable(op, err)
		}
		return err
	}

	var connectErr *pgconn.ConnectError
	var netErr net.Error
	switch {
	case errors.As(err, &connectErr),
		errors.As(err, &netErr),
		errors.Is(err, driver.ErrBadConn),
		errors.Is(err, sql.ErrConnDone),
		pgconn.Timeout(err):
		return store.Unavailable(op, err)
	}

	return err
}
