package db

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketing-api/internal/adapter/memory"
	"marketing-api/internal/fallback"
)

func TestSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	data, err := fallback.Default()
	require.NoError(t, err)
	store := memory.NewStore()
	logger := slog.New(slog.DiscardHandler)

	res, err := Seed(ctx, store, data, logger)
	require.NoError(t, err)
	assert.Equal(t, SeedResult{Campaigns: 5, Profiles: 5, Experiments: 4, Brands: 5}, res)

	var variants, offers int
	for _, e := range data.Experiments() {
		variants += len(e.Variants)
	}
	for _, b := range data.Brands() {
		offers += len(b.NewOffers)
	}
	assert.Equal(t, 5, store.Len("campaigns"))
	assert.Equal(t, 5, store.Len("campaign_metrics"))
	assert.Equal(t, variants, store.Len("experiment_variants"))
	assert.Equal(t, offers, store.Len("brand_offers"))

	res, err = Seed(ctx, store, data, logger)
	require.NoError(t, err)
	assert.Equal(t, SeedResult{}, res)
	assert.Equal(t, 5, store.Len("campaigns"))
}

func TestSeedStopsOnStoreError(t *testing.T) {
	data, err := fallback.Default()
	require.NoError(t, err)
	store := memory.NewStore()
	boom := errors.New("connection refused")
	store.SetError("insert profile", boom)

	res, err := Seed(context.Background(), store, data, slog.New(slog.DiscardHandler))
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 5, res.Campaigns)
	assert.Zero(t, res.Profiles)
}

func TestPing(t *testing.T) {
	store := memory.NewStore()
	assert.NoError(t, Ping(context.Background(), store, time.Second))

	store.SetError("ping", errors.New("down"))
	assert.Error(t, Ping(context.Background(), store, time.Second))
}
