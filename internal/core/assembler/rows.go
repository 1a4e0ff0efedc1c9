package assembler

import (
	"sort"

	"marketing-api/internal/core/domain"
	"marketing-api/internal/core/port"
)

// CampaignRow returns the parent row of c.
func CampaignRow(c domain.Campaign) port.CampaignRow {
	return port.CampaignRow{
		ID:          c.ID,
		Name:        c.Name,
		StartDate:   c.StartDate,
		EndDate:     c.EndDate,
		Status:      c.Status,
		Budget:      c.Budget,
		Description: c.Description,
	}
}

// MetricsRow returns the metrics row of a campaign.
func MetricsRow(campaignID string, m domain.Metrics) port.CampaignMetricsRow {
	return port.CampaignMetricsRow{
		CampaignID:  campaignID,
		Impressions: m.Impressions,
		Clicks:      m.Clicks,
		Conversions: m.Conversions,
		Spend:       m.Spend,
	}
}

// ProfileRow returns the parent row of p.
func ProfileRow(p domain.Profile) port.ProfileRow {
	return port.ProfileRow{
		ID:          p.ID,
		Name:        p.Name,
		SegmentSize: p.SegmentSize,
		Campaigns:   p.Campaigns,
		Status:      p.Status,
	}
}

// DemographicsRow returns the single-valued demographics columns of a profile.
func DemographicsRow(profileID string, d domain.Demographics) port.DemographicsRow {
	return port.DemographicsRow{ProfileID: profileID, AgeRange: d.AgeRange, Income: d.Income}
}

// BehavioralRow returns the single-valued behavioral columns of a profile.
func BehavioralRow(profileID string, b domain.BehavioralAttributes) port.BehavioralRow {
	return port.BehavioralRow{ProfileID: profileID, DeviceUsage: b.DeviceUsage, DataConsumption: b.DataConsumption}
}

// ExperimentRow returns the parent row of e.
func ExperimentRow(e domain.Experiment) port.ExperimentRow {
	return port.ExperimentRow{
		ID:         e.ID,
		Name:       e.Name,
		CampaignID: e.CampaignID,
		StartDate:  e.StartDate,
		EndDate:    e.EndDate,
		Status:     e.Status,
		Confidence: e.Confidence,
		Winner:     e.Winner,
	}
}

// VariantRows flattens a variant map into rows ordered by key.
func VariantRows(experimentID string, variants map[string]domain.Variant) []port.VariantRow {
	rows := make([]port.VariantRow, 0, len(variants))
	for key, v := range variants {
		rows = append(rows, port.VariantRow{
			ExperimentID: experimentID,
			Key:          key,
			Name:         v.Name,
			Impressions:  v.Impressions,
			Clicks:       v.Clicks,
			Conversions:  v.Conversions,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Key < rows[j].Key })
	return rows
}

// BrandRow returns the parent row of b.
func BrandRow(b domain.Brand) port.BrandRow {
	return port.BrandRow{
		ID:                   b.ID,
		Name:                 b.Name,
		MarketShare:          b.MarketShare,
		StockPrice:           b.StockPrice,
		RevenueInBillions:    b.RevenueInBillions,
		CustomerSatisfaction: b.CustomerSatisfaction,
		YearlyGrowth:         b.YearlyGrowth,
	}
}

// OfferRow returns the row of an offer at position within its brand.
func OfferRow(brandID string, position int, o domain.Offer) port.OfferRow {
	return port.OfferRow{ID: o.ID, BrandID: brandID, Name: o.Name, Price: o.Price, Position: position}
}
