package domain

import "time"

// Campaign statuses.
const (
	CampaignPlanning = "planning"
	CampaignActive   = "active"
	CampaignEnded    = "ended"
)

// Campaign represents an advertising campaign as the dashboard sees it.
// TargetProfiles holds profile ids that are never checked against the
// profiles table. Metrics is always present; a campaign without a stored
// metrics row reports zeros.
type Campaign struct {
	ID             string    `json:"id" yaml:"id"`
	Name           string    `json:"name" yaml:"name"`
	StartDate      time.Time `json:"startDate" yaml:"startDate"`
	EndDate        time.Time `json:"endDate" yaml:"endDate"`
	Status         string    `json:"status" yaml:"status"` // planning, active, ended
	Budget         float64   `json:"budget" yaml:"budget"`
	Description    string    `json:"description" yaml:"description"`
	TargetProfiles []string  `json:"targetProfiles" yaml:"targetProfiles"`
	Metrics        Metrics   `json:"metrics" yaml:"metrics"`
}

// Metrics are the delivery counters of a campaign.
type Metrics struct {
	Impressions int64   `json:"impressions" yaml:"impressions"`
	Clicks      int64   `json:"clicks" yaml:"clicks"`
	Conversions int64   `json:"conversions" yaml:"conversions"`
	Spend       float64 `json:"spend" yaml:"spend"`
}

// CampaignInput is a partial campaign body. A nil field was absent from the
// request. For list-valued fields a non-nil pointer to an empty slice means
// "clear the relation".
type CampaignInput struct {
	Name           *string   `json:"name"`
	StartDate      *Date     `json:"startDate"`
	EndDate        *Date     `json:"endDate"`
	Status         *string   `json:"status"`
	Budget         *float64  `json:"budget"`
	Description    *string   `json:"description"`
	TargetProfiles *[]string `json:"targetProfiles"`
	Metrics        *Metrics  `json:"metrics"`
}

// Campaign builds a campaign from the input, leaving absent fields at their
// zero value.
func (in CampaignInput) Campaign(id string) Campaign {
	c := Campaign{ID: id, TargetProfiles: []string{}}
	set(&c.Name, in.Name)
	set(&c.StartDate, in.StartDate.TimePtr())
	set(&c.EndDate, in.EndDate.TimePtr())
	set(&c.Status, in.Status)
	set(&c.Budget, in.Budget)
	set(&c.Description, in.Description)
	if in.TargetProfiles != nil {
		c.TargetProfiles = Strings(*in.TargetProfiles)
	}
	set(&c.Metrics, in.Metrics)
	return c
}
