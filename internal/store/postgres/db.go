package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v5"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"

	"github.com/ethanriley28/ybl-app/internal/store"
)

type PoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

func (p PoolConfig) apply(db *sql.DB) {
	if p.MaxOpenConns > 0 {
		db.SetMaxOpenConns(p.MaxOpenConns)
	}
	if p.MaxIdleConns > 0 {
		db.SetMaxIdleConns(p.MaxIdleConns)
	}
	if p.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(p.ConnMaxLifetime)
	}
	if p.ConnMaxIdleTime > 0 {
		db.SetConnMaxIdleTime(p.ConnMaxIdleTime)
	}
}

// ConnectConfig bounds the startup wait for a database that is still coming up, as in a
// compose stack. Zero Attempts means a single ping.
type ConnectConfig struct {
	Attempts        uint
	InitialInterval time.Duration
	MaxInterval     time.Duration
	Logger          *slog.Logger
}

// Open connects and pings the database. A ping that fails with store.ErrUnavailable
// (refused connection, server starting up, too many clients) is retried with exponential
// backoff; any other failure, such as bad credentials or an unknown database, fails at once.
func Open(ctx context.Context, databaseURL string, pool PoolConfig, connect ConnectConfig) (*bun.DB, error) {
	sqlDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	pool.apply(sqlDB)

	if err := waitForDatabase(ctx, sqlDB, connect); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	return bun.NewDB(sqlDB, pgdialect.New()), nil
}

type pinger interface {
	PingContext(ctx context.Context) error
}

func waitForDatabase(ctx context.Context, db pinger, cfg ConnectConfig) error {
	if cfg.Attempts == 0 {
		cfg.Attempts = 1
	}
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 250 * time.Millisecond
	if cfg.InitialInterval > 0 {
		b.InitialInterval = cfg.InitialInterval
	}
	if cfg.MaxInterval > 0 {
		b.MaxInterval = cfg.MaxInterval
	}

	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		err := classify("ping", db.PingContext(ctx))
		switch {
		case err == nil:
			return struct{}{}, nil
		case errors.Is(err, store.ErrUnavailable):
			return struct{}{}, err
		default:
			return struct{}{}, backoff.Permanent(err)
		}
	},
		backoff.WithBackOff(b),
		backoff.WithMaxTries(cfg.Attempts),
		backoff.WithNotify(func(err error, next time.Duration) {
			log.Warn("database not reachable yet, retrying", slog.Duration("backoff", next), slog.Any("err", err))
		}),
	)

	var perm *backoff.PermanentError
	if errors.As(err, &perm) {
		err = perm.Unwrap()
	}
	return err
}

func Close(db *bun.DB) error {
	if db == nil {
		return nil
	}
	return db.Close()
}
