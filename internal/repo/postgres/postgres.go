package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Options — параметры пула бакетов.
type Options struct {
	DSN      string
	MaxConns int32 // 0 — значение pgx по умолчанию

	// PingAttempts — сколько раз проверить базу при старте (в compose Postgres поднимается позже сервиса).
	PingAttempts int
	PingInterval time.Duration
}

// NewPool — пул соединений; возвращается только после успешного Ping.
func NewPool(ctx context.Context, opts Options) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(opts.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	if opts.MaxConns > 0 {
		cfg.MaxConns = opts.MaxConns
	}
	cfg.MaxConnLifetime = time.Hour
	cfg.MaxConnIdleTime = 30 * time.Minute
	cfg.HealthCheckPeriod = time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	if err := ping(ctx, pool, opts.PingAttempts, opts.PingInterval); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

func ping(ctx context.Context, pool *pgxpool.Pool, attempts int, interval time.Duration) error {
	if attempts < 1 {
		attempts = 1
	}
	if interval <= 0 {
		interval = time.Second
	}

	var err error
	for i := 1; i <= attempts; i++ {
		if err = pool.Ping(ctx); err == nil {
			return nil
		}
		if i == attempts {
			break
		}
		t := time.NewTimer(interval)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
	}
	return fmt.Errorf("ping postgres (%d attempts): %w", attempts, err)
}
