package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"marketing-api/internal/core/port"
)

// Store implements port.Store on a pgxpool.Pool. Every method runs exactly
// one statement on a connection borrowed from the pool for that statement
// only; nothing is wrapped in a transaction.
type Store struct {
	pool *pgxpool.Pool
}

var _ port.Store = (*Store)(nil)

// NewStore returns a store backed by pool. The caller owns the pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Ping checks that a connection can be acquired and used.
func (s *Store) Ping(ctx context.Context) error {
	return port.Wrap("ping", s.pool.Ping(ctx))
}

func (s *Store) exec(ctx context.Context, op, query string, args ...any) error {
	_, err := s.pool.Exec(ctx, query, args...)
	return port.Wrap(op, err)
}

func (s *Store) exists(ctx context.Context, op, table, id string) (bool, error) {
	var ok bool
	err := s.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM `+table+` WHERE id = $1)`, id).Scan(&ok)
	if err != nil {
		return false, port.Wrap(op, err)
	}
	return ok, nil
}

// values reads a single text column ordered by position.
func (s *Store) values(ctx context.Context, op, table, column, parentColumn, parentID string) ([]string, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY position`, column, table, parentColumn)
	rows, err := s.pool.Query(ctx, query, parentID)
	if err != nil {
		return nil, port.Wrap(op, err)
	}
	out, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, port.Wrap(op, err)
	}
	return out, nil
}

// assignments collects the SET clause of a partial UPDATE.
type assignments struct {
	cols []string
	args []any
}

func (a *assignments) add(col string, v any) {
	a.args = append(a.args, v)
	a.cols = append(a.cols, fmt.Sprintf("%s = $%d", col, len(a.args)))
}

func (a *assignments) empty() bool {
	return len(a.cols) == 0
}

// update builds an UPDATE of table by id that returns columns.
func (a *assignments) update(table, columns, id string) (string, []any) {
	args := append(a.args, id)
	query := fmt.Sprintf(`UPDATE %s SET %s WHERE id = $%d RETURNING %s`,
		table, strings.Join(a.cols, ", "), len(args), columns)
	return query, args
}

func addIf[T any](a *assignments, col string, v *T) {
	if v != nil {
		a.add(col, *v)
	}
}

// utcPtr returns t in UTC. pgx scans TIMESTAMPTZ in the local zone.
func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
