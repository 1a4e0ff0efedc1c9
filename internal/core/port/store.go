package port

import "context"

// The store ports are the relational query layer. Each method issues a
// single statement; callers compose them into multi-table reads and writes.
// Implementations report every storage failure as a *StoreError and are
// safe for concurrent use. No method opens a transaction.

// CampaignStore covers campaigns, campaign_metrics and campaign_profiles.
type CampaignStore interface {
	SelectCampaigns(ctx context.Context, f CampaignFilter) ([]CampaignRow, error)
	CampaignExists(ctx context.Context, id string) (bool, error)
	CampaignMetrics(ctx context.Context, campaignID string) ([]CampaignMetricsRow, error)
	CampaignProfiles(ctx context.Context, campaignID string) ([]string, error)

	InsertCampaign(ctx context.Context, row CampaignRow) error
	UpdateCampaign(ctx context.Context, id string, ch CampaignChanges) (CampaignRow, error)
	DeleteCampaign(ctx context.Context, id string) error
	InsertCampaignMetrics(ctx context.Context, row CampaignMetricsRow) error
	DeleteCampaignMetrics(ctx context.Context, campaignID string) error
	InsertCampaignProfile(ctx context.Context, campaignID, profileID string, position int) error
	DeleteCampaignProfiles(ctx context.Context, campaignID string) error
}

// ProfileStore covers profiles and their demographics, behavioral and
// list tables.
type ProfileStore interface {
	SelectProfiles(ctx context.Context, f ProfileFilter) ([]ProfileRow, error)
	ProfileExists(ctx context.Context, id string) (bool, error)
	ProfileDemographics(ctx context.Context, profileID string) ([]DemographicsRow, error)
	ProfileBehavior(ctx context.Context, profileID string) ([]BehavioralRow, error)
	ProfileValues(ctx context.Context, list ProfileList, profileID string) ([]string, error)

	InsertProfile(ctx context.Context, row ProfileRow) error
	UpdateProfile(ctx context.Context, id string, ch ProfileChanges) (ProfileRow, error)
	DeleteProfile(ctx context.Context, id string) error
	InsertProfileDemographics(ctx context.Context, row DemographicsRow) error
	DeleteProfileDemographics(ctx context.Context, profileID string) error
	InsertProfileBehavior(ctx context.Context, row BehavioralRow) error
	DeleteProfileBehavior(ctx context.Context, profileID string) error
	InsertProfileValue(ctx context.Context, list ProfileList, profileID, value string, position int) error
	DeleteProfileValues(ctx context.Context, list ProfileList, profileID string) error
}

// ExperimentStore covers experiments and experiment_variants.
type ExperimentStore interface {
	SelectExperiments(ctx context.Context, f ExperimentFilter) ([]ExperimentRow, error)
	ExperimentExists(ctx context.Context, id string) (bool, error)
	ExperimentVariants(ctx context.Context, experimentID string) ([]VariantRow, error)

	InsertExperiment(ctx context.Context, row ExperimentRow) error
	UpdateExperiment(ctx context.Context, id string, ch ExperimentChanges) (ExperimentRow, error)
	DeleteExperiment(ctx context.Context, id string) error
	InsertVariant(ctx context.Context, row VariantRow) error
	DeleteVariants(ctx context.Context, experimentID string) error
}

// BrandStore covers brands, brand_offers and offer_features.
type BrandStore interface {
	SelectBrands(ctx context.Context, f BrandFilter) ([]BrandRow, error)
	BrandExists(ctx context.Context, id string) (bool, error)
	BrandOffers(ctx context.Context, brandID string) ([]OfferRow, error)
	OfferFeatures(ctx context.Context, offerID string) ([]string, error)

	InsertBrand(ctx context.Context, row BrandRow) error
	UpdateBrand(ctx context.Context, id string, ch BrandChanges) (BrandRow, error)
	DeleteBrand(ctx context.Context, id string) error
	InsertOffer(ctx context.Context, row OfferRow) error
	DeleteOffers(ctx context.Context, brandID string) error
	InsertOfferFeature(ctx context.Context, offerID, feature string, position int) error
	DeleteOfferFeatures(ctx context.Context, offerID string) error
}

// Store is the full relational store handle shared by all use cases.
type Store interface {
	CampaignStore
	ProfileStore
	ExperimentStore
	BrandStore

	// Ping checks that the store is reachable.
	Ping(ctx context.Context) error
}
