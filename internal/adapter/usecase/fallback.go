package usecase

import (
	"context"
	"errors"
	"log/slog"

	"marketing-api/internal/core/port"
)

// readThrough runs live and, if it fails with a *port.StoreError, logs the
// failure and returns fallback instead. Any other error (domain.ErrNotFound
// included) is returned unchanged.
func readThrough[T any](ctx context.Context, logger *slog.Logger, op string, live, fallback func() (T, error)) (T, error) {
	v, err := live()
	var storeErr *port.StoreError
	if !errors.As(err, &storeErr) {
		return v, err
	}
	logger.WarnContext(ctx, "store unavailable, serving fallback data",
		slog.String("op", op),
		slog.Any("error", err),
	)
	return fallback()
}

// insertChildren inserts one child row per item, passing its position.
func insertChildren[T any](ctx context.Context, items []T, insert func(context.Context, int, T) error) error {
	for i, item := range items {
		if err := insert(ctx, i, item); err != nil {
			return err
		}
	}
	return nil
}

// replaceChildren deletes every child row of one relation and inserts items
// in their place. The two steps are separate statements: concurrent calls
// for the same parent can interleave and leave rows from both callers, and
// a failure after the delete leaves the relation partially written.
func replaceChildren[T any](ctx context.Context, items []T, deleteAll func(context.Context) error,
	insert func(context.Context, int, T) error) error {
	if err := deleteAll(ctx); err != nil {
		return err
	}
	return insertChildren(ctx, items, insert)
}

func one[T any](v T) []T {
	return []T{v}
}
