package port

import (
	"context"

	"marketing-api/internal/core/domain"
)

// CampaignUseCase is the resource handler for campaigns. Reads never fail
// because of the store: on a StoreError they serve the fallback dataset.
// Writes surface every error. Get, Update and Delete return
// domain.ErrNotFound for unknown ids.
type CampaignUseCase interface {
	List(ctx context.Context) ([]domain.Campaign, error)
	Get(ctx context.Context, id string) (domain.Campaign, error)
	Create(ctx context.Context, in domain.CampaignInput) (domain.Campaign, error)
	Update(ctx context.Context, id string, in domain.CampaignInput) (domain.Campaign, error)
	// Delete also removes the experiments that reference the campaign.
	Delete(ctx context.Context, id string) error
}

// ProfileUseCase is the resource handler for profiles.
type ProfileUseCase interface {
	List(ctx context.Context) ([]domain.Profile, error)
	Get(ctx context.Context, id string) (domain.Profile, error)
	Create(ctx context.Context, in domain.ProfileInput) (domain.Profile, error)
	Update(ctx context.Context, id string, in domain.ProfileInput) (domain.Profile, error)
	Delete(ctx context.Context, id string) error
}

// ExperimentUseCase is the resource handler for experiments.
type ExperimentUseCase interface {
	List(ctx context.Context) ([]domain.Experiment, error)
	Get(ctx context.Context, id string) (domain.Experiment, error)
	// ByCampaign returns domain.ErrNotFound when the campaign is unknown
	// and an empty slice when it has no experiments.
	ByCampaign(ctx context.Context, campaignID string) ([]domain.Experiment, error)
	Create(ctx context.Context, in domain.ExperimentInput) (domain.Experiment, error)
	Update(ctx context.Context, id string, in domain.ExperimentInput) (domain.Experiment, error)
	Delete(ctx context.Context, id string) error
}

// BrandUseCase is the resource handler for brands and their offers.
type BrandUseCase interface {
	List(ctx context.Context) ([]domain.Brand, error)
	Get(ctx context.Context, id string) (domain.Brand, error)
	// Offers returns domain.ErrNotFound when the brand is unknown.
	Offers(ctx context.Context, brandID string) ([]domain.Offer, error)
	Create(ctx context.Context, in domain.BrandInput) (domain.Brand, error)
	Update(ctx context.Context, id string, in domain.BrandInput) (domain.Brand, error)
	Delete(ctx context.Context, id string) error
}
