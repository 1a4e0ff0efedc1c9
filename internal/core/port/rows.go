package port

import (
	"time"

	"marketing-api/internal/core/domain"
)

// Rows mirror the normalized relational tables. A parent row carries the
// scalar fields of an entity; child rows carry one element of a list-valued
// attribute and belong to exactly one parent id.

// CampaignRow is a row of campaigns.
type CampaignRow struct {
	ID          string
	Name        string
	StartDate   time.Time
	EndDate     time.Time
	Status      string
	Budget      float64
	Description string
}

// CampaignMetricsRow is a row of campaign_metrics.
type CampaignMetricsRow struct {
	CampaignID  string
	Impressions int64
	Clicks      int64
	Conversions int64
	Spend       float64
}

// ProfileRow is a row of profiles.
type ProfileRow struct {
	ID          string
	Name        string
	SegmentSize string
	Campaigns   int
	Status      string
}

// DemographicsRow is a row of profile_demographics.
type DemographicsRow struct {
	ProfileID string
	AgeRange  string
	Income    string
}

// BehavioralRow is a row of profile_behavioral_attributes.
type BehavioralRow struct {
	ProfileID       string
	DeviceUsage     string
	DataConsumption string
}

// ProfileList names one of the string-valued child tables of a profile.
type ProfileList string

const (
	ProfileLocations ProfileList = "locations"
	ProfileInterests ProfileList = "interests"
	ProfilePlanTypes ProfileList = "plan_types"
)

// ExperimentRow is a row of experiments. EndDate and Winner are nullable.
type ExperimentRow struct {
	ID         string
	Name       string
	CampaignID string
	StartDate  time.Time
	EndDate    *time.Time
	Status     string
	Confidence float64
	Winner     *string
}

// VariantRow is a row of experiment_variants keyed by (ExperimentID, Key).
type VariantRow struct {
	ExperimentID string
	Key          string
	Name         string
	Impressions  int64
	Clicks       int64
	Conversions  int64
}

// BrandRow is a row of brands.
type BrandRow struct {
	ID                   string
	Name                 string
	MarketShare          float64
	StockPrice           float64
	RevenueInBillions    float64
	CustomerSatisfaction float64
	YearlyGrowth         float64
}

// OfferRow is a row of brand_offers.
type OfferRow struct {
	ID       string
	BrandID  string
	Name     string
	Price    float64
	Position int
}

// Filters select parent rows. Empty fields do not filter.

// CampaignFilter narrows SelectCampaigns. A zero filter selects all rows.
type CampaignFilter struct {
	ID string
}

// ProfileFilter narrows SelectProfiles.
type ProfileFilter struct {
	ID string
}

// ExperimentFilter narrows SelectExperiments. Set fields are combined with AND.
type ExperimentFilter struct {
	ID         string
	CampaignID string
}

// BrandFilter narrows SelectBrands.
type BrandFilter struct {
	ID string
}

// Changes list the scalar parent columns an update writes. Nil fields are
// left untouched.

// CampaignChanges lists the campaign columns to update. Nil fields are left as stored.
type CampaignChanges struct {
	Name        *string
	StartDate   *time.Time
	EndDate     *time.Time
	Status      *string
	Budget      *float64
	Description *string
}

// ProfileChanges lists the profile columns to update.
type ProfileChanges struct {
	Name        *string
	SegmentSize *string
	Campaigns   *int
	Status      *string
}

// ExperimentChanges lists the experiment columns to update. EndDate and
// Winner are written only when Set.
type ExperimentChanges struct {
	Name       *string
	CampaignID *string
	StartDate  *time.Time
	EndDate    domain.Nullable[time.Time]
	Status     *string
	Confidence *float64
	Winner     domain.Nullable[string]
}

// BrandChanges lists the brand columns to update.
type BrandChanges struct {
	Name                 *string
	MarketShare          *float64
	StockPrice           *float64
	RevenueInBillions    *float64
	CustomerSatisfaction *float64
	YearlyGrowth         *float64
}
