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

// CampaignUseCase implements port.CampaignUseCase. It also owns the cascade
// from a campaign to the experiments that reference it.
type CampaignUseCase struct {
	campaigns   port.CampaignStore
	experiments port.ExperimentStore
	data        *fallback.Dataset
	logger      *slog.Logger
}

var _ port.CampaignUseCase = (*CampaignUseCase)(nil)

// NewCampaignUseCase creates a campaign use case. experiments is used for the delete cascade.
func NewCampaignUseCase(campaigns port.CampaignStore, experiments port.ExperimentStore,
	data *fallback.Dataset, logger *slog.Logger) *CampaignUseCase {
	return &CampaignUseCase{campaigns: campaigns, experiments: experiments, data: data, logger: logger}
}

// List returns every campaign with its metrics and target profiles.
func (u *CampaignUseCase) List(ctx context.Context) ([]domain.Campaign, error) {
	return readThrough(ctx, u.logger, "list campaigns",
		func() ([]domain.Campaign, error) { return u.load(ctx, port.CampaignFilter{}) },
		func() ([]domain.Campaign, error) { return u.data.Campaigns(), nil },
	)
}

// Get returns one campaign or domain.ErrNotFound.
func (u *CampaignUseCase) Get(ctx context.Context, id string) (domain.Campaign, error) {
	return readThrough(ctx, u.logger, "get campaign",
		func() (domain.Campaign, error) {
			found, err := u.load(ctx, port.CampaignFilter{ID: id})
			if err != nil {
				return domain.Campaign{}, err
			}
			if len(found) == 0 {
				return domain.Campaign{}, fmt.Errorf("campaign %s: %w", id, domain.ErrNotFound)
			}
			return found[0], nil
		},
		func() (domain.Campaign, error) {
			c, ok := u.data.Campaign(id)
			if !ok {
				return domain.Campaign{}, fmt.Errorf("campaign %s: %w", id, domain.ErrNotFound)
			}
			return c, nil
		},
	)
}

// load reads the parent rows, then the metrics and profile links of each
// one (N+1 queries).
func (u *CampaignUseCase) load(ctx context.Context, f port.CampaignFilter) ([]domain.Campaign, error) {
	rows, err := u.campaigns.SelectCampaigns(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Campaign, 0, len(rows))
	for _, row := range rows {
		metrics, err := u.campaigns.CampaignMetrics(ctx, row.ID)
		if err != nil {
			return nil, err
		}
		profiles, err := u.campaigns.CampaignProfiles(ctx, row.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, assembler.Campaign(row, metrics, profiles))
	}
	return out, nil
}

// Create inserts the campaign row and one child row per supplied list
// element. The response is built from the input, not read back.
func (u *CampaignUseCase) Create(ctx context.Context, in domain.CampaignInput) (domain.Campaign, error) {
	c := in.Campaign(idgen.New(idgen.Campaign))
	if err := u.campaigns.InsertCampaign(ctx, assembler.CampaignRow(c)); err != nil {
		return domain.Campaign{}, err
	}
	if in.TargetProfiles != nil {
		if err := insertChildren(ctx, c.TargetProfiles, u.insertProfile(c.ID)); err != nil {
			return domain.Campaign{}, err
		}
	}
	if in.Metrics != nil {
		if err := u.campaigns.InsertCampaignMetrics(ctx, assembler.MetricsRow(c.ID, c.Metrics)); err != nil {
			return domain.Campaign{}, err
		}
	}
	return c, nil
}

// Update writes the supplied scalar columns and replaces each supplied
// list-valued relation. Relations absent from in are read, not written.
func (u *CampaignUseCase) Update(ctx context.Context, id string, in domain.CampaignInput) (domain.Campaign, error) {
	ok, err := u.campaigns.CampaignExists(ctx, id)
	if err != nil {
		return domain.Campaign{}, err
	}
	if !ok {
		return domain.Campaign{}, fmt.Errorf("campaign %s: %w", id, domain.ErrNotFound)
	}

	row, err := u.campaigns.UpdateCampaign(ctx, id, port.CampaignChanges{
		Name:        in.Name,
		StartDate:   in.StartDate.TimePtr(),
		EndDate:     in.EndDate.TimePtr(),
		Status:      in.Status,
		Budget:      in.Budget,
		Description: in.Description,
	})
	if err != nil {
		return domain.Campaign{}, err
	}

	var profiles []string
	if in.TargetProfiles != nil {
		profiles = *in.TargetProfiles
		err = replaceChildren(ctx, profiles, u.deleteProfiles(id), u.insertProfile(id))
	} else {
		profiles, err = u.campaigns.CampaignProfiles(ctx, id)
	}
	if err != nil {
		return domain.Campaign{}, err
	}

	var metrics []port.CampaignMetricsRow
	if in.Metrics != nil {
		metrics = one(assembler.MetricsRow(id, *in.Metrics))
		err = replaceChildren(ctx, metrics,
			func(ctx context.Context) error { return u.campaigns.DeleteCampaignMetrics(ctx, id) },
			func(ctx context.Context, _ int, m port.CampaignMetricsRow) error {
				return u.campaigns.InsertCampaignMetrics(ctx, m)
			})
	} else {
		metrics, err = u.campaigns.CampaignMetrics(ctx, id)
	}
	if err != nil {
		return domain.Campaign{}, err
	}

	return assembler.Campaign(row, metrics, profiles), nil
}

// Delete removes the campaign, its child rows and every experiment (with
// its variants) that references it. Children go before parents.
func (u *CampaignUseCase) Delete(ctx context.Context, id string) error {
	ok, err := u.campaigns.CampaignExists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("campaign %s: %w", id, domain.ErrNotFound)
	}

	experiments, err := u.experiments.SelectExperiments(ctx, port.ExperimentFilter{CampaignID: id})
	if err != nil {
		return err
	}
	for _, e := range experiments {
		if err = deleteExperiment(ctx, u.experiments, e.ID); err != nil {
			return err
		}
	}
	if err = u.campaigns.DeleteCampaignProfiles(ctx, id); err != nil {
		return err
	}
	if err = u.campaigns.DeleteCampaignMetrics(ctx, id); err != nil {
		return err
	}
	return u.campaigns.DeleteCampaign(ctx, id)
}

// Import stores c with its own id unless a campaign with that id exists.
// It reports whether anything was written.
func (u *CampaignUseCase) Import(ctx context.Context, c domain.Campaign) (bool, error) {
	ok, err := u.campaigns.CampaignExists(ctx, c.ID)
	if err != nil || ok {
		return false, err
	}
	if err = u.campaigns.InsertCampaign(ctx, assembler.CampaignRow(c)); err != nil {
		return false, err
	}
	if err = insertChildren(ctx, c.TargetProfiles, u.insertProfile(c.ID)); err != nil {
		return false, err
	}
	if err = u.campaigns.InsertCampaignMetrics(ctx, assembler.MetricsRow(c.ID, c.Metrics)); err != nil {
		return false, err
	}
	return true, nil
}

func (u *CampaignUseCase) insertProfile(campaignID string) func(context.Context, int, string) error {
	return func(ctx context.Context, pos int, profileID string) error {
		return u.campaigns.InsertCampaignProfile(ctx, campaignID, profileID, pos)
	}
}

func (u *CampaignUseCase) deleteProfiles(campaignID string) func(context.Context) error {
	return func(ctx context.Context) error {
		return u.campaigns.DeleteCampaignProfiles(ctx, campaignID)
	}
}
