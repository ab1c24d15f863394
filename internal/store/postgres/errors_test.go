package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ethanriley28/ybl-app/internal/store"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"exclusion constraint", &pgconn.PgError{Code: "23P01", ConstraintName: overlapConstraint}, store.ErrConflict},
		{"unique id", &pgconn.PgError{Code: "23505", ConstraintName: "bookings_pkey"}, store.ErrIdempotencyConflict},
		{"connection exception", &pgconn.PgError{Code: "08006"}, store.ErrUnavailable},
		{"serialization failure", &pgconn.PgError{Code: "40001"}, store.ErrUnavailable},
		{"admin shutdown", &pgconn.PgError{Code: "57P01"}, store.ErrUnavailable},
		{"too many connections", &pgconn.PgError{Code: "53300"}, store.ErrUnavailable},
		{"bad conn", fmt.Errorf("exec: %w", driver.ErrBadConn), store.ErrUnavailable},
		{"conn done", sql.ErrConnDone, store.ErrUnavailable},
		{"no rows", sql.ErrNoRows, store.ErrNotFound},
		{"already classified", store.ErrNotFound, store.ErrNotFound},
		{"deadline", context.DeadlineExceeded, context.DeadlineExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify("op", tt.err)
			if !errors.Is(got, tt.want) {
				t.Fatalf("classify(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestClassify_LeavesOtherErrorsAlone(t *testing.T) {
	other := &pgconn.PgError{Code: "42P01", Message: "relation does not exist"}
	got := classify("op", other)
	if got != error(other) {
		t.Fatalf("classify changed unrelated error: %v", got)
	}
	if errors.Is(got, store.ErrUnavailable) || errors.Is(got, store.ErrConflict) {
		t.Fatalf("unrelated error classified as %v", got)
	}

	fromOtherConstraint := &pgconn.PgError{Code: "23P01", ConstraintName: "something_else"}
	if errors.Is(classify("op", fromOtherConstraint), store.ErrConflict) {
		t.Fatalf("exclusion on another constraint must not be a booking conflict")
	}

	if classify("op", nil) != nil {
		t.Fatalf("classify(nil) != nil")
	}
}
