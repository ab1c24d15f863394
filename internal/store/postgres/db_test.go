package postgres

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"syscall"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ethanriley28/ybl-app/internal/store"
)

type fakePinger struct {
	errs  []error
	calls int
}

func (f *fakePinger) PingContext(ctx context.Context) error {
	f.calls++
	if len(f.errs) == 0 {
		return nil
	}
	err := f.errs[0]
	f.errs = f.errs[1:]
	return err
}

func refused() error {
	return &net.OpError{Op: "dial", Net: "tcp", Err: syscall.ECONNREFUSED}
}

func testConnect(attempts uint) ConnectConfig {
	return ConnectConfig{
		Attempts:        attempts,
		InitialInterval: time.Millisecond,
		MaxInterval:     2 * time.Millisecond,
		Logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestWaitForDatabase_RetriesUntilReachable(t *testing.T) {
	p := &fakePinger{errs: []error{refused(), &pgconn.PgError{Code: "57P03"}}}

	if err := waitForDatabase(context.Background(), p, testConnect(5)); err != nil {
		t.Fatalf("waitForDatabase error: %v", err)
	}
	if p.calls != 3 {
		t.Fatalf("calls = %d, want 3", p.calls)
	}
}

func TestWaitForDatabase_GivesUpAsUnavailable(t *testing.T) {
	p := &fakePinger{errs: []error{refused(), refused(), refused(), refused()}}

	err := waitForDatabase(context.Background(), p, testConnect(3))
	if !errors.Is(err, store.ErrUnavailable) {
		t.Fatalf("err = %v, want ErrUnavailable", err)
	}
	if p.calls != 3 {
		t.Fatalf("calls = %d, want 3", p.calls)
	}
}

func TestWaitForDatabase_DoesNotRetryPermanentFailure(t *testing.T) {
	authErr := &pgconn.PgError{Code: "28P01", Message: "password authentication failed"}
	p := &fakePinger{errs: []error{authErr}}

	err := waitForDatabase(context.Background(), p, testConnect(5))
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "28P01" {
		t.Fatalf("err = %v, want the auth failure", err)
	}
	if errors.Is(err, store.ErrUnavailable) {
		t.Fatalf("auth failure classified as unavailable")
	}
	if p.calls != 1 {
		t.Fatalf("calls = %d, want 1", p.calls)
	}
}

func TestWaitForDatabase_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := &fakePinger{errs: []error{refused(), refused()}}

	err := waitForDatabase(ctx, p, testConnect(5))
	if !errors.Is(err, context.Canceled) && !errors.Is(err, store.ErrUnavailable) {
		t.Fatalf("err = %v, want cancellation or unavailable", err)
	}
	if p.calls != 1 {
		t.Fatalf("calls = %d, want 1", p.calls)
	}
}
