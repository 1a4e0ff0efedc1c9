// Package fallback holds the static dataset served on read paths when the
// relational store cannot be reached. A Dataset is immutable after loading
// and every accessor returns copies, so it is safe for concurrent readers.
package fallback

import (
	_ "embed"
	"fmt"
	"maps"
	"os"

	"gopkg.in/yaml.v3"

	"marketing-api/internal/core/domain"
)

//go:embed dataset.yaml
var embedded []byte

// Dataset is the read-only fallback data. Accessors return copies, so it is
// safe for concurrent use.
type Dataset struct {
	campaigns   []domain.Campaign
	profiles    []domain.Profile
	experiments []domain.Experiment
	brands      []domain.Brand
}

type document struct {
	Campaigns   []domain.Campaign   `yaml:"campaigns"`
	Profiles    []domain.Profile    `yaml:"profiles"`
	Experiments []domain.Experiment `yaml:"experiments"`
	Brands      []domain.Brand      `yaml:"brands"`
}

// Default returns the dataset compiled into the binary.
func Default() (*Dataset, error) {
	return Parse(embedded)
}

// Load reads a dataset from a YAML file, or the embedded one when path is
// empty.
func Load(path string) (*Dataset, error) {
	if path == "" {
		return Default()
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fallback dataset: %w", err)
	}
	return Parse(b)
}

// Parse decodes a YAML dataset and fills nil collections with empty ones so
// fallback responses match the shape of live reads.
func Parse(b []byte) (*Dataset, error) {
	var doc document
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("parse fallback dataset: %w", err)
	}
	d := &Dataset{
		campaigns:   make([]domain.Campaign, len(doc.Campaigns)),
		profiles:    make([]domain.Profile, len(doc.Profiles)),
		experiments: make([]domain.Experiment, len(doc.Experiments)),
		brands:      make([]domain.Brand, len(doc.Brands)),
	}
	for i, c := range doc.Campaigns {
		d.campaigns[i] = copyCampaign(c)
	}
	for i, p := range doc.Profiles {
		d.profiles[i] = copyProfile(p)
	}
	for i, e := range doc.Experiments {
		d.experiments[i] = copyExperiment(e)
	}
	for i, b := range doc.Brands {
		d.brands[i] = copyBrand(b)
	}
	return d, nil
}

// Campaigns returns every campaign.
func (d *Dataset) Campaigns() []domain.Campaign {
	out := make([]domain.Campaign, len(d.campaigns))
	for i, c := range d.campaigns {
		out[i] = copyCampaign(c)
	}
	return out
}

// Campaign returns the campaign with id and whether it exists.
func (d *Dataset) Campaign(id string) (domain.Campaign, bool) {
	for _, c := range d.campaigns {
		if c.ID == id {
			return copyCampaign(c), true
		}
	}
	return domain.Campaign{}, false
}

// Profiles returns every profile.
func (d *Dataset) Profiles() []domain.Profile {
	out := make([]domain.Profile, len(d.profiles))
	for i, p := range d.profiles {
		out[i] = copyProfile(p)
	}
	return out
}

// Profile returns the profile with id and whether it exists.
func (d *Dataset) Profile(id string) (domain.Profile, bool) {
	for _, p := range d.profiles {
		if p.ID == id {
			return copyProfile(p), true
		}
	}
	return domain.Profile{}, false
}

// Experiments returns every experiment.
func (d *Dataset) Experiments() []domain.Experiment {
	out := make([]domain.Experiment, len(d.experiments))
	for i, e := range d.experiments {
		out[i] = copyExperiment(e)
	}
	return out
}

// Experiment returns the experiment with id and whether it exists.
func (d *Dataset) Experiment(id string) (domain.Experiment, bool) {
	for _, e := range d.experiments {
		if e.ID == id {
			return copyExperiment(e), true
		}
	}
	return domain.Experiment{}, false
}

// ExperimentsByCampaign filters experiments by their campaign reference.
func (d *Dataset) ExperimentsByCampaign(campaignID string) []domain.Experiment {
	out := make([]domain.Experiment, 0)
	for _, e := range d.experiments {
		if e.CampaignID == campaignID {
			out = append(out, copyExperiment(e))
		}
	}
	return out
}

// Brands returns every brand.
func (d *Dataset) Brands() []domain.Brand {
	out := make([]domain.Brand, len(d.brands))
	for i, b := range d.brands {
		out[i] = copyBrand(b)
	}
	return out
}

// Brand returns the brand with id and whether it exists.
func (d *Dataset) Brand(id string) (domain.Brand, bool) {
	for _, b := range d.brands {
		if b.ID == id {
			return copyBrand(b), true
		}
	}
	return domain.Brand{}, false
}

func copyCampaign(c domain.Campaign) domain.Campaign {
	c.TargetProfiles = domain.Strings(c.TargetProfiles)
	return c
}

func copyProfile(p domain.Profile) domain.Profile {
	p.Demographics.Location = domain.Strings(p.Demographics.Location)
	p.Demographics.Interests = domain.Strings(p.Demographics.Interests)
	p.BehavioralAttributes.PlanType = domain.Strings(p.BehavioralAttributes.PlanType)
	return p
}

func copyExperiment(e domain.Experiment) domain.Experiment {
	variants := make(map[string]domain.Variant, len(e.Variants))
	maps.Copy(variants, e.Variants)
	e.Variants = variants
	if e.EndDate != nil {
		end := *e.EndDate
		e.EndDate = &end
	}
	if e.Winner != nil {
		w := *e.Winner
		e.Winner = &w
	}
	return e
}

func copyBrand(b domain.Brand) domain.Brand {
	b.NewOffers = domain.NormalizeOffers(b.NewOffers)
	return b
}
