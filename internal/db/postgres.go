package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"marketing-api/internal/config/configs"
)

// NewPostgresPool creates a pgxpool.Pool sized according to cfg. The pool
// connects lazily, so an unreachable database is not an error here; use
// Ping to check connectivity. The caller must close the returned pool.
func NewPostgresPool(ctx context.Context, cfg configs.Postgres) (*pgxpool.Pool, error) {
	poolConf, err := pgxpool.ParseConfig(cfg.Addr.String())
	if err != nil {
		return nil, err
	}
	if cfg.MaxConns > 0 {
		poolConf.MaxConns = cfg.MaxConns
	}
	poolConf.MinConns = cfg.MinConns

	return pgxpool.NewWithConfig(ctx, poolConf)
}

// Pinger is satisfied by *pgxpool.Pool and by the store adapters.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Ping checks connectivity within timeout.
func Ping(ctx context.Context, p Pinger, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return p.Ping(ctx)
}
