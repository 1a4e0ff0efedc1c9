package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"marketing-api/internal/core/assembler"
	"marketing-api/internal/core/domain"
	"marketing-api/internal/core/port"
	"marketing-api/internal/fallback"
	"marketing-api/internal/idgen"
)

// ExperimentUseCase implements port.ExperimentUseCase.
type ExperimentUseCase struct {
	experiments port.ExperimentStore
	campaigns   port.CampaignStore
	data        *fallback.Dataset
	logger      *slog.Logger
}

var _ port.ExperimentUseCase = (*ExperimentUseCase)(nil)

// NewExperimentUseCase creates an experiment use case. campaigns is used to check owners of scoped lookups.
func NewExperimentUseCase(experiments port.ExperimentStore, campaigns port.CampaignStore,
	data *fallback.Dataset, logger *slog.Logger) *ExperimentUseCase {
	return &ExperimentUseCase{experiments: experiments, campaigns: campaigns, data: data, logger: logger}
}

// List returns every experiment with its variants.
func (u *ExperimentUseCase) List(ctx context.Context) ([]domain.Experiment, error) {
	return readThrough(ctx, u.logger, "list experiments",
		func() ([]domain.Experiment, error) { return u.load(ctx, port.ExperimentFilter{}) },
		func() ([]domain.Experiment, error) { return u.data.Experiments(), nil },
	)
}

// Get returns one experiment or domain.ErrNotFound.
func (u *ExperimentUseCase) Get(ctx context.Context, id string) (domain.Experiment, error) {
	return readThrough(ctx, u.logger, "get experiment",
		func() (domain.Experiment, error) {
			found, err := u.load(ctx, port.ExperimentFilter{ID: id})
			if err != nil {
				return domain.Experiment{}, err
			}
			if len(found) == 0 {
				return domain.Experiment{}, fmt.Errorf("experiment %s: %w", id, domain.ErrNotFound)
			}
			return found[0], nil
		},
		func() (domain.Experiment, error) {
			e, ok := u.data.Experiment(id)
			if !ok {
				return domain.Experiment{}, fmt.Errorf("experiment %s: %w", id, domain.ErrNotFound)
			}
			return e, nil
		},
	)
}

// ByCampaign returns the experiments that reference campaignID.
func (u *ExperimentUseCase) ByCampaign(ctx context.Context, campaignID string) ([]domain.Experiment, error) {
	notFound := fmt.Errorf("campaign %s: %w", campaignID, domain.ErrNotFound)
	return readThrough(ctx, u.logger, "list experiments by campaign",
		func() ([]domain.Experiment, error) {
			ok, err := u.campaigns.CampaignExists(ctx, campaignID)
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, notFound
			}
			return u.load(ctx, port.ExperimentFilter{CampaignID: campaignID})
		},
		func() ([]domain.Experiment, error) {
			if _, ok := u.data.Campaign(campaignID); !ok {
				return nil, notFound
			}
			return u.data.ExperimentsByCampaign(campaignID), nil
		},
	)
}

// load reads experiment rows and the variants of each (N+1 queries).
func (u *ExperimentUseCase) load(ctx context.Context, f port.ExperimentFilter) ([]domain.Experiment, error) {
	rows, err := u.experiments.SelectExperiments(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Experiment, 0, len(rows))
	for _, row := range rows {
		variants, err := u.experiments.ExperimentVariants(ctx, row.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, assembler.Experiment(row, variants))
	}
	return out, nil
}

// Create stores the experiment and one variant row per variant key. The
// campaign reference is not checked.
func (u *ExperimentUseCase) Create(ctx context.Context, in domain.ExperimentInput) (domain.Experiment, error) {
	e := in.Experiment(idgen.New(idgen.Experiment))
	if err := u.insert(ctx, e); err != nil {
		return domain.Experiment{}, err
	}
	return e, nil
}

// Update writes the supplied fields and replaces the variants when they are supplied.
func (u *ExperimentUseCase) Update(ctx context.Context, id string, in domain.ExperimentInput) (domain.Experiment, error) {
	ok, err := u.experiments.ExperimentExists(ctx, id)
	if err != nil {
		return domain.Experiment{}, err
	}
	if !ok {
		return domain.Experiment{}, fmt.Errorf("experiment %s: %w", id, domain.ErrNotFound)
	}

	row, err := u.experiments.UpdateExperiment(ctx, id, port.ExperimentChanges{
		Name:       in.Name,
		CampaignID: in.CampaignID,
		StartDate:  in.StartDate.TimePtr(),
		EndDate:    domain.NullableTime(in.EndDate),
		Status:     in.Status,
		Confidence: in.Confidence,
		Winner:     in.Winner,
	})
	if err != nil {
		return domain.Experiment{}, err
	}

	var variants []port.VariantRow
	if in.Variants != nil {
		variants = assembler.VariantRows(id, *in.Variants)
		err = replaceChildren(ctx, variants,
			func(ctx context.Context) error { return u.experiments.DeleteVariants(ctx, id) },
			u.insertVariant)
	} else {
		variants, err = u.experiments.ExperimentVariants(ctx, id)
	}
	if err != nil {
		return domain.Experiment{}, err
	}
	return assembler.Experiment(row, variants), nil
}

// Delete removes the experiment and its variants, or returns
// domain.ErrNotFound.
func (u *ExperimentUseCase) Delete(ctx context.Context, id string) error {
	ok, err := u.experiments.ExperimentExists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("experiment %s: %w", id, domain.ErrNotFound)
	}
	return deleteExperiment(ctx, u.experiments, id)
}

// Import stores e with its own id unless it already exists.
func (u *ExperimentUseCase) Import(ctx context.Context, e domain.Experiment) (bool, error) {
	ok, err := u.experiments.ExperimentExists(ctx, e.ID)
	if err != nil || ok {
		return false, err
	}
	if err = u.insert(ctx, e); err != nil {
		return false, err
	}
	return true, nil
}

func (u *ExperimentUseCase) insert(ctx context.Context, e domain.Experiment) error {
	if err := u.experiments.InsertExperiment(ctx, assembler.ExperimentRow(e)); err != nil {
		return err
	}
	return insertChildren(ctx, assembler.VariantRows(e.ID, e.Variants), u.insertVariant)
}

func (u *ExperimentUseCase) insertVariant(ctx context.Context, _ int, v port.VariantRow) error {
	return u.experiments.InsertVariant(ctx, v)
}

// deleteExperiment removes the variants of an experiment, then the
// experiment itself.
func deleteExperiment(ctx context.Context, store port.ExperimentStore, id string) error {
	if err := store.DeleteVariants(ctx, id); err != nil {
		return err
	}
	return store.DeleteExperiment(ctx, id)
}
