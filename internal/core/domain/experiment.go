package domain

import "time"

// Experiment statuses.
const (
	ExperimentPlanned   = "planned"
	ExperimentRunning   = "running"
	ExperimentCompleted = "completed"
)

// Experiment is an A/B (or A/B/n) test attached to a campaign by a soft
// reference. Variants is keyed by variant key ("a", "b", ...) and may hold
// any number of entries. Winner, when set, is one of those keys.
type Experiment struct {
	ID         string             `json:"id" yaml:"id"`
	Name       string             `json:"name" yaml:"name"`
	CampaignID string             `json:"campaignId" yaml:"campaignId"`
	StartDate  time.Time          `json:"startDate" yaml:"startDate"`
	EndDate    *time.Time         `json:"endDate" yaml:"endDate"`
	Status     string             `json:"status" yaml:"status"`
	Variants   map[string]Variant `json:"variants" yaml:"variants"`
	Confidence float64            `json:"confidence" yaml:"confidence"`
	Winner     *string            `json:"winner" yaml:"winner"`
}

// Variant holds the counters of one experiment arm.
type Variant struct {
	Name        string `json:"name" yaml:"name"`
	Impressions int64  `json:"impressions" yaml:"impressions"`
	Clicks      int64  `json:"clicks" yaml:"clicks"`
	Conversions int64  `json:"conversions" yaml:"conversions"`
}

// ExperimentInput is a partial experiment body. EndDate and Winner are
// nullable, so they distinguish an explicit null from an absent field.
type ExperimentInput struct {
	Name       *string             `json:"name"`
	CampaignID *string             `json:"campaignId"`
	StartDate  *Date               `json:"startDate"`
	EndDate    Nullable[Date]      `json:"endDate"`
	Status     *string             `json:"status"`
	Variants   *map[string]Variant `json:"variants"`
	Confidence *float64            `json:"confidence"`
	Winner     Nullable[string]    `json:"winner"`
}

// Experiment builds an experiment from the input.
func (in ExperimentInput) Experiment(id string) Experiment {
	e := Experiment{ID: id, Variants: map[string]Variant{}}
	set(&e.Name, in.Name)
	set(&e.CampaignID, in.CampaignID)
	set(&e.StartDate, in.StartDate.TimePtr())
	set(&e.Status, in.Status)
	set(&e.Confidence, in.Confidence)
	e.EndDate = NullableTime(in.EndDate).Ptr()
	e.Winner = in.Winner.Ptr()
	if in.Variants != nil {
		for key, v := range *in.Variants {
			e.Variants[key] = v
		}
	}
	return e
}
