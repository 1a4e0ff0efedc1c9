// Package assembler rebuilds nested domain objects from relational rows and
// splits them back into rows for writing. Assemblers never fail: missing
// child rows produce empty collections or zero-valued substructures.
package assembler

import (
	"marketing-api/internal/core/domain"
	"marketing-api/internal/core/port"
)

// Campaign assembles a campaign. Only the first metrics row is used; with
// none the metrics are all zero.
func Campaign(row port.CampaignRow, metrics []port.CampaignMetricsRow, profiles []string) domain.Campaign {
	c := domain.Campaign{
		ID:             row.ID,
		Name:           row.Name,
		StartDate:      row.StartDate,
		EndDate:        row.EndDate,
		Status:         row.Status,
		Budget:         row.Budget,
		Description:    row.Description,
		TargetProfiles: domain.Strings(profiles),
	}
	if len(metrics) > 0 {
		m := metrics[0]
		c.Metrics = domain.Metrics{
			Impressions: m.Impressions,
			Clicks:      m.Clicks,
			Conversions: m.Conversions,
			Spend:       m.Spend,
		}
	}
	return c
}

// Profile merges the demographics, behavioral and list rows of a profile
// into its two nested objects.
func Profile(row port.ProfileRow, demographics []port.DemographicsRow, behavior []port.BehavioralRow,
	locations, interests, planTypes []string) domain.Profile {
	p := domain.Profile{
		ID:          row.ID,
		Name:        row.Name,
		SegmentSize: row.SegmentSize,
		Campaigns:   row.Campaigns,
		Status:      row.Status,
		Demographics: domain.Demographics{
			Location:  domain.Strings(locations),
			Interests: domain.Strings(interests),
		},
		BehavioralAttributes: domain.BehavioralAttributes{
			PlanType: domain.Strings(planTypes),
		},
	}
	if len(demographics) > 0 {
		p.Demographics.AgeRange = demographics[0].AgeRange
		p.Demographics.Income = demographics[0].Income
	}
	if len(behavior) > 0 {
		p.BehavioralAttributes.DeviceUsage = behavior[0].DeviceUsage
		p.BehavioralAttributes.DataConsumption = behavior[0].DataConsumption
	}
	return p
}

// Experiment folds variant rows into a map keyed by variant key. Any number
// of keys is accepted; zero rows give an empty map.
func Experiment(row port.ExperimentRow, variants []port.VariantRow) domain.Experiment {
	e := domain.Experiment{
		ID:         row.ID,
		Name:       row.Name,
		CampaignID: row.CampaignID,
		StartDate:  row.StartDate,
		EndDate:    row.EndDate,
		Status:     row.Status,
		Confidence: row.Confidence,
		Winner:     row.Winner,
		Variants:   make(map[string]domain.Variant, len(variants)),
	}
	for _, v := range variants {
		e.Variants[v.Key] = domain.Variant{
			Name:        v.Name,
			Impressions: v.Impressions,
			Clicks:      v.Clicks,
			Conversions: v.Conversions,
		}
	}
	return e
}

// Offer builds an offer from its row and ordered features.
func Offer(row port.OfferRow, features []string) domain.Offer {
	return domain.Offer{
		ID:       row.ID,
		Name:     row.Name,
		Price:    row.Price,
		Features: domain.Strings(features),
	}
}

// Brand assembles a brand from its row and already assembled offers.
func Brand(row port.BrandRow, offers []domain.Offer) domain.Brand {
	return domain.Brand{
		ID:                   row.ID,
		Name:                 row.Name,
		MarketShare:          row.MarketShare,
		StockPrice:           row.StockPrice,
		RevenueInBillions:    row.RevenueInBillions,
		CustomerSatisfaction: row.CustomerSatisfaction,
		YearlyGrowth:         row.YearlyGrowth,
		NewOffers:            domain.NormalizeOffers(offers),
	}
}
