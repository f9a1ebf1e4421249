package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type DBOptions struct {
	DSN      string
	MaxConns int
	MinConns int
	PingTO   time.Duration
}

// OpenDB opens a pgx pool and fails fast if the database is unreachable.
func OpenDB(ctx context.Context, opt DBOptions) (*pgxpool.Pool, error) {
	if opt.DSN == "" {
		return nil, fmt.Errorf("DB_DSN is not set")
	}
	if opt.PingTO == 0 {
		opt.PingTO = 3 * time.Second
	}

	cfg, err := pgxpool.ParseConfig(opt.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	if opt.MaxConns > 0 {
		cfg.MaxConns = int32(opt.MaxConns)
	}
	if opt.MinConns > 0 {
		cfg.MinConns = int32(opt.MinConns)
	}
	cfg.MaxConnIdleTime = 5 * time.Minute
	cfg.HealthCheckPeriod = 30 * time.Second

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open pool: %w", err)
	}

	pctx, cancel := context.WithTimeout(ctx, opt.PingTO)
	defer cancel()

	if err := pool.Ping(pctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}

	return pool, nil
}
