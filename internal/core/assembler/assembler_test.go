package assembler

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketing-api/internal/core/domain"
	"marketing-api/internal/core/port"
)

func TestCampaignWithoutMetricsDefaultsToZero(t *testing.T) {
	c := Campaign(port.CampaignRow{ID: "camp_1", Name: "Q4"}, nil, nil)

	assert.Equal(t, domain.Metrics{}, c.Metrics)
	assert.NotNil(t, c.TargetProfiles)
	assert.Empty(t, c.TargetProfiles)

	b, err := json.Marshal(c)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"metrics":{"impressions":0,"clicks":0,"conversions":0,"spend":0}`)
	assert.Contains(t, string(b), `"targetProfiles":[]`)
}

func TestCampaignUsesMetricsRow(t *testing.T) {
	c := Campaign(
		port.CampaignRow{ID: "camp_1"},
		[]port.CampaignMetricsRow{{CampaignID: "camp_1", Impressions: 10, Clicks: 3, Conversions: 1, Spend: 2.5}},
		[]string{"prof_1", "prof_4"},
	)
	assert.Equal(t, domain.Metrics{Impressions: 10, Clicks: 3, Conversions: 1, Spend: 2.5}, c.Metrics)
	assert.Equal(t, []string{"prof_1", "prof_4"}, c.TargetProfiles)
}

func TestExperimentVariantCount(t *testing.T) {
	row := port.ExperimentRow{ID: "exp_1", CampaignID: "camp_1"}

	tests := []struct {
		name string
		keys []string
	}{
		{name: "none", keys: nil},
		{name: "one", keys: []string{"a"}},
		{name: "three", keys: []string{"a", "b", "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rows []port.VariantRow
			for i, k := range tt.keys {
				rows = append(rows, port.VariantRow{ExperimentID: "exp_1", Key: k, Name: k, Clicks: int64(i)})
			}
			e := Experiment(row, rows)
			require.NotNil(t, e.Variants)
			assert.Len(t, e.Variants, len(tt.keys))
			for i, k := range tt.keys {
				assert.Equal(t, int64(i), e.Variants[k].Clicks)
			}
		})
	}
}

func TestEmptyVariantsMarshalAsObject(t *testing.T) {
	b, err := json.Marshal(Experiment(port.ExperimentRow{ID: "exp_9"}, nil))
	require.NoError(t, err)
	assert.Contains(t, string(b), `"variants":{}`)
	assert.Contains(t, string(b), `"endDate":null`)
	assert.Contains(t, string(b), `"winner":null`)
}

func TestProfileMergesChildRows(t *testing.T) {
	p := Profile(
		port.ProfileRow{ID: "prof_1", Name: "Young Adults", Status: "active"},
		[]port.DemographicsRow{{ProfileID: "prof_1", AgeRange: "18-34", Income: "$30,000-$60,000"}},
		[]port.BehavioralRow{{ProfileID: "prof_1", DeviceUsage: "Heavy", DataConsumption: "High"}},
		[]string{"Urban"}, []string{"Gaming", "Streaming"}, []string{"Prepaid"},
	)
	assert.Equal(t, domain.Demographics{
		AgeRange: "18-34", Income: "$30,000-$60,000",
		Location: []string{"Urban"}, Interests: []string{"Gaming", "Streaming"},
	}, p.Demographics)
	assert.Equal(t, domain.BehavioralAttributes{
		DeviceUsage: "Heavy", DataConsumption: "High", PlanType: []string{"Prepaid"},
	}, p.BehavioralAttributes)
}

func TestProfileWithoutChildren(t *testing.T) {
	p := Profile(port.ProfileRow{ID: "prof_2"}, nil, nil, nil, nil, nil)
	assert.Equal(t, []string{}, p.Demographics.Location)
	assert.Equal(t, []string{}, p.Demographics.Interests)
	assert.Equal(t, []string{}, p.BehavioralAttributes.PlanType)
}

func TestBrandKeepsOfferOrder(t *testing.T) {
	offers := []domain.Offer{
		Offer(port.OfferRow{ID: "offer_2", Name: "B", Position: 0}, []string{"x", "y"}),
		Offer(port.OfferRow{ID: "offer_1", Name: "A", Position: 1}, nil),
	}
	b := Brand(port.BrandRow{ID: "brand_1", Name: "Acme"}, offers)
	require.Len(t, b.NewOffers, 2)
	assert.Equal(t, "offer_2", b.NewOffers[0].ID)
	assert.Equal(t, []string{"x", "y"}, b.NewOffers[0].Features)
	assert.Equal(t, []string{}, b.NewOffers[1].Features)
}

func TestVariantRowsSortedByKey(t *testing.T) {
	rows := VariantRows("exp_1", map[string]domain.Variant{"c": {}, "a": {}, "b": {}})
	keys := make([]string, len(rows))
	for i, r := range rows {
		keys[i] = r.Key
		assert.Equal(t, "exp_1", r.ExperimentID)
	}
	assert.Equal(t, []string{"a", "b", "c"}, keys)
}

func TestRoundTripExperimentRow(t *testing.T) {
	end := time.Date(2023, 10, 25, 0, 0, 0, 0, time.UTC)
	winner := "b"
	e := domain.Experiment{ID: "exp_2", Name: "Headline", EndDate: &end, Winner: &winner, Confidence: 95}
	got := Experiment(ExperimentRow(e), VariantRows(e.ID, e.Variants))
	assert.Equal(t, e.ID, got.ID)
	assert.Equal(t, &end, got.EndDate)
	assert.Equal(t, &winner, got.Winner)
	assert.Empty(t, got.Variants)
}
