package usecase

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"marketing-api/internal/adapter/memory"
	"marketing-api/internal/fallback"
)

var errUnreachable = errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")

type deps struct {
	store  *memory.Store
	data   *fallback.Dataset
	logger *slog.Logger
}

func newDeps(t *testing.T) deps {
	t.Helper()
	data, err := fallback.Default()
	require.NoError(t, err)
	return deps{store: memory.NewStore(), data: data, logger: slog.New(slog.DiscardHandler)}
}

func (d deps) campaigns() *CampaignUseCase {
	return NewCampaignUseCase(d.store, d.store, d.data, d.logger)
}

func (d deps) profiles() *ProfileUseCase {
	return NewProfileUseCase(d.store, d.data, d.logger)
}

func (d deps) experiments() *ExperimentUseCase {
	return NewExperimentUseCase(d.store, d.store, d.data, d.logger)
}

func (d deps) brands() *BrandUseCase {
	return NewBrandUseCase(d.store, d.data, d.logger)
}

func ptr[T any](v T) *T {
	return &v
}
