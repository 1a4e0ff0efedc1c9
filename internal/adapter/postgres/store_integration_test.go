//go:build integration

package postgres_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"marketing-api/internal/adapter/postgres"
	"marketing-api/internal/adapter/usecase"
	"marketing-api/internal/core/domain"
	"marketing-api/internal/core/port"
	"marketing-api/internal/db"
	"marketing-api/internal/fallback"
)

func newStore(t *testing.T) (*postgres.Store, *pgxpool.Pool) {
	t.Helper()
	ctx := context.Background()

	ctr, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("marketing"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("password"),
		tcpostgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err)

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	require.NoError(t, db.Migrate(dsn))

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return postgres.NewStore(pool), pool
}

func ptr[T any](v T) *T {
	return &v
}

func TestPostgresStore(t *testing.T) {
	ctx := context.Background()
	store, pool := newStore(t)
	data, err := fallback.Default()
	require.NoError(t, err)
	logger := slog.New(slog.DiscardHandler)

	campaigns := usecase.NewCampaignUseCase(store, store, data, logger)
	profiles := usecase.NewProfileUseCase(store, data, logger)
	experiments := usecase.NewExperimentUseCase(store, store, data, logger)
	brands := usecase.NewBrandUseCase(store, data, logger)

	t.Run("seed", func(t *testing.T) {
		res, err := db.Seed(ctx, store, data, logger)
		require.NoError(t, err)
		assert.Equal(t, 5, res.Campaigns)

		got, err := campaigns.Get(ctx, "camp_1")
		require.NoError(t, err)
		want, _ := data.Campaign("camp_1")
		assert.Equal(t, want.TargetProfiles, got.TargetProfiles)
		assert.Equal(t, want.Metrics, got.Metrics)
		assert.True(t, want.StartDate.Equal(got.StartDate))
		assert.Equal(t, time.UTC, got.StartDate.Location())
		assert.Equal(t, time.UTC, got.EndDate.Location())

		exp, err := experiments.Get(ctx, "exp_1")
		require.NoError(t, err)
		assert.Equal(t, time.UTC, exp.StartDate.Location())

		p, err := profiles.Get(ctx, "prof_1")
		require.NoError(t, err)
		wantProfile, _ := data.Profile("prof_1")
		assert.Equal(t, wantProfile, p)

		res, err = db.Seed(ctx, store, data, logger)
		require.NoError(t, err)
		assert.Equal(t, db.SeedResult{}, res)
	})

	t.Run("brand round trip", func(t *testing.T) {
		created, err := brands.Create(ctx, domain.BrandInput{
			Name:        ptr("Acme"),
			MarketShare: ptr(10.0),
			NewOffers: &[]domain.Offer{
				{Name: "Plan A", Price: 29.99, Features: []string{"5GB", "No contract"}},
			},
		})
		require.NoError(t, err)

		got, err := brands.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created, got)

		require.NoError(t, brands.Delete(ctx, created.ID))
		_, err = brands.Offers(ctx, created.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("partial update", func(t *testing.T) {
		created, err := campaigns.Create(ctx, domain.CampaignInput{
			Name:           ptr("Spring"),
			StartDate:      &domain.Date{Time: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
			TargetProfiles: &[]string{"prof_1", "prof_2"},
			Metrics:        &domain.Metrics{Clicks: 4},
		})
		require.NoError(t, err)

		updated, err := campaigns.Update(ctx, created.ID, domain.CampaignInput{Status: ptr(domain.CampaignActive)})
		require.NoError(t, err)
		assert.Equal(t, domain.CampaignActive, updated.Status)
		assert.Equal(t, "Spring", updated.Name)

		got, err := campaigns.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"prof_1", "prof_2"}, got.TargetProfiles)
		assert.Equal(t, int64(4), got.Metrics.Clicks)
	})

	t.Run("experiment nulls", func(t *testing.T) {
		created, err := experiments.Create(ctx, domain.ExperimentInput{
			Name:       ptr("CTA"),
			CampaignID: ptr("camp_2"),
			Variants:   &map[string]domain.Variant{"a": {Name: "A"}, "b": {Name: "B"}, "c": {Name: "C"}},
		})
		require.NoError(t, err)

		updated, err := experiments.Update(ctx, created.ID, domain.ExperimentInput{Winner: domain.Of("c")})
		require.NoError(t, err)
		require.NotNil(t, updated.Winner)
		assert.Equal(t, "c", *updated.Winner)
		assert.Nil(t, updated.EndDate)
		assert.Len(t, updated.Variants, 3)

		updated, err = experiments.Update(ctx, created.ID, domain.ExperimentInput{Winner: domain.Null[string]()})
		require.NoError(t, err)
		assert.Nil(t, updated.Winner)
	})

	t.Run("campaign cascade", func(t *testing.T) {
		require.NoError(t, campaigns.Delete(ctx, "camp_1"))

		for _, id := range []string{"exp_1", "exp_2"} {
			_, err := experiments.Get(ctx, id)
			assert.ErrorIs(t, err, domain.ErrNotFound)
		}
		var variants int
		require.NoError(t, pool.QueryRow(ctx,
			`SELECT count(*) FROM experiment_variants WHERE experiment_id IN ('exp_1', 'exp_2')`).Scan(&variants))
		assert.Zero(t, variants)
		_, err := campaigns.Get(ctx, "camp_1")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("unreachable store", func(t *testing.T) {
		pool.Close()

		err := store.Ping(ctx)
		var storeErr *port.StoreError
		require.ErrorAs(t, err, &storeErr)

		list, err := campaigns.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, data.Campaigns(), list)

		_, err = brands.Create(ctx, domain.BrandInput{Name: ptr("Offline")})
		assert.ErrorAs(t, err, &storeErr)
	})
}
