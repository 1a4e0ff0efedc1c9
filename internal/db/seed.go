package db

import (
	"context"
	"log/slog"

	"marketing-api/internal/adapter/usecase"
	"marketing-api/internal/core/port"
	"marketing-api/internal/fallback"
)

// SeedResult counts the entities Seed wrote.
type SeedResult struct {
	Campaigns   int
	Profiles    int
	Experiments int
	Brands      int
}

// Seed writes every entity of the dataset into store under its own id.
// Entities whose id already exists are skipped, so Seed can be re-run.
func Seed(ctx context.Context, store port.Store, data *fallback.Dataset, logger *slog.Logger) (SeedResult, error) {
	var res SeedResult

	campaigns := usecase.NewCampaignUseCase(store, store, data, logger)
	for _, c := range data.Campaigns() {
		if err := count(&res.Campaigns)(campaigns.Import(ctx, c)); err != nil {
			return res, err
		}
	}
	profiles := usecase.NewProfileUseCase(store, data, logger)
	for _, p := range data.Profiles() {
		if err := count(&res.Profiles)(profiles.Import(ctx, p)); err != nil {
			return res, err
		}
	}
	experiments := usecase.NewExperimentUseCase(store, store, data, logger)
	for _, e := range data.Experiments() {
		if err := count(&res.Experiments)(experiments.Import(ctx, e)); err != nil {
			return res, err
		}
	}
	brands := usecase.NewBrandUseCase(store, data, logger)
	for _, b := range data.Brands() {
		if err := count(&res.Brands)(brands.Import(ctx, b)); err != nil {
			return res, err
		}
	}

	logger.InfoContext(ctx, "dataset seeded",
		slog.Int("campaigns", res.Campaigns),
		slog.Int("profiles", res.Profiles),
		slog.Int("experiments", res.Experiments),
		slog.Int("brands", res.Brands),
	)
	return res, nil
}

func count(n *int) func(bool, error) error {
	return func(written bool, err error) error {
		if written {
			*n++
		}
		return err
	}
}
