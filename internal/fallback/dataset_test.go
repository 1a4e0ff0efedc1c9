package fallback

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDataset(t *testing.T) {
	d, err := Default()
	require.NoError(t, err)

	assert.Len(t, d.Campaigns(), 5)
	assert.Len(t, d.Profiles(), 5)
	assert.Len(t, d.Experiments(), 4)
	assert.Len(t, d.Brands(), 5)

	c, ok := d.Campaign("camp_1")
	require.True(t, ok)
	assert.Equal(t, "Q4 5G Promo", c.Name)
	assert.Equal(t, time.Date(2023, 10, 1, 0, 0, 0, 0, time.UTC), c.StartDate.UTC())
	assert.Equal(t, []string{"prof_1", "prof_4"}, c.TargetProfiles)
	assert.Equal(t, int64(1250000), c.Metrics.Impressions)

	p, ok := d.Profile("prof_3")
	require.True(t, ok)
	assert.Equal(t, "55+", p.Demographics.AgeRange)
	assert.Equal(t, "1.5M", p.SegmentSize)

	e, ok := d.Experiment("exp_2")
	require.True(t, ok)
	require.NotNil(t, e.Winner)
	assert.Equal(t, "b", *e.Winner)
	require.NotNil(t, e.EndDate)
	assert.Len(t, e.Variants, 2)

	e, ok = d.Experiment("exp_1")
	require.True(t, ok)
	assert.Nil(t, e.EndDate)
	assert.Nil(t, e.Winner)

	b, ok := d.Brand("brand_4")
	require.True(t, ok)
	require.Len(t, b.NewOffers, 2)
	assert.Equal(t, []string{"25GB data", "Unlimited talk & text", "No contract"}, b.NewOffers[0].Features)
}

func TestAccessorsReturnCopies(t *testing.T) {
	d, err := Default()
	require.NoError(t, err)

	c, _ := d.Campaign("camp_1")
	c.TargetProfiles[0] = "mutated"
	e, _ := d.Experiment("exp_1")
	delete(e.Variants, "a")
	b, _ := d.Brand("brand_1")
	b.NewOffers[0].Features[0] = "mutated"

	c, _ = d.Campaign("camp_1")
	assert.Equal(t, "prof_1", c.TargetProfiles[0])
	e, _ = d.Experiment("exp_1")
	assert.Contains(t, e.Variants, "a")
	b, _ = d.Brand("brand_1")
	assert.Equal(t, "Unlimited 5G data", b.NewOffers[0].Features[0])
}

func TestExperimentsByCampaign(t *testing.T) {
	d, err := Default()
	require.NoError(t, err)

	assert.Len(t, d.ExperimentsByCampaign("camp_1"), 2)
	none := d.ExperimentsByCampaign("camp_3")
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestParseFillsEmptyCollections(t *testing.T) {
	d, err := Parse([]byte("campaigns:\n  - id: camp_x\nexperiments:\n  - id: exp_x\n"))
	require.NoError(t, err)

	c, ok := d.Campaign("camp_x")
	require.True(t, ok)
	assert.NotNil(t, c.TargetProfiles)
	e, ok := d.Experiment("exp_x")
	require.True(t, ok)
	assert.NotNil(t, e.Variants)
	assert.Empty(t, d.Brands())
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.yaml")
	require.NoError(t, os.WriteFile(path, []byte("brands:\n  - id: brand_x\n    name: Local\n"), 0o600))

	d, err := Load(path)
	require.NoError(t, err)
	b, ok := d.Brand("brand_x")
	require.True(t, ok)
	assert.Equal(t, "Local", b.Name)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
