package bookings

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/ethanriley28/ybl-app/internal/metrics"
	"github.com/ethanriley28/ybl-app/internal/store"
)

// RetryPolicy bounds the automatic retry of store calls that failed with ErrUnavailable.
type RetryPolicy struct {
	MaxAttempts     uint
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:     3,
		InitialInterval: 50 * time.Millisecond,
		MaxInterval:     500 * time.Millisecond,
	}
}

func (p RetryPolicy) normalized() RetryPolicy {
	d := DefaultRetryPolicy()
	if p.MaxAttempts == 0 {
		p.MaxAttempts = d.MaxAttempts
	}
	if p.InitialInterval <= 0 {
		p.InitialInterval = d.InitialInterval
	}
	if p.MaxInterval < p.InitialInterval {
		p.MaxInterval = p.InitialInterval
	}
	return p
}

// retry runs fn until it succeeds, fails with an error other than store.ErrUnavailable, the
// attempt budget is spent, or ctx is done. Only idempotent calls may be passed in.
func retry[T any](ctx context.Context, s *Service, op string, fn func(context.Context) (T, error)) (T, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = s.retry.InitialInterval
	b.MaxInterval = s.retry.MaxInterval

	return backoff.Retry(ctx, func() (T, error) {
		v, err := fn(ctx)
		if err != nil && !errors.Is(err, store.ErrUnavailable) {
			return v, backoff.Permanent(err)
		}
		return v, err
	},
		backoff.WithBackOff(b),
		backoff.WithMaxTries(s.retry.MaxAttempts),
		backoff.WithNotify(func(err error, next time.Duration) {
			metrics.IncStoreRetry(op)
			s.logger.Warn("store unavailable, retrying", slog.String("op", op), slog.Duration("backoff", next), slog.Any("err", err))
		}),
	)
}
