package memory

import (
	"context"
	"slices"

	"marketing-api/internal/core/port"
)

// SelectBrands returns brand rows, all of them or the one matching f.ID.
func (s *Store) SelectBrands(ctx context.Context, f port.BrandFilter) ([]port.BrandRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx, "select brands"); err != nil {
		return nil, err
	}
	out := make([]port.BrandRow, 0, len(s.brands))
	for _, b := range s.brands {
		if f.ID == "" || b.ID == f.ID {
			out = append(out, b)
		}
	}
	return out, nil
}

// BrandExists reports whether a brand row with id exists.
func (s *Store) BrandExists(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx, "brand exists"); err != nil {
		return false, err
	}
	return index(s.brands, func(b port.BrandRow) bool { return b.ID == id }) >= 0, nil
}

// BrandOffers returns the offers of a brand in display order.
func (s *Store) BrandOffers(ctx context.Context, brandID string) ([]port.OfferRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx, "select brand offers"); err != nil {
		return nil, err
	}
	out := make([]port.OfferRow, 0)
	for _, o := range s.offers {
		if o.BrandID == brandID {
			out = append(out, o)
		}
	}
	slices.SortStableFunc(out, func(a, b port.OfferRow) int { return a.Position - b.Position })
	return out, nil
}

// OfferFeatures returns the features of an offer in their original order.
func (s *Store) OfferFeatures(ctx context.Context, offerID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx, "select offer features"); err != nil {
		return nil, err
	}
	return values(s.features, offerID), nil
}

// InsertBrand stores a brand row. It fails if the id is taken.
func (s *Store) InsertBrand(ctx context.Context, row port.BrandRow) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx, "insert brand"); err != nil {
		return err
	}
	if index(s.brands, func(b port.BrandRow) bool { return b.ID == row.ID }) >= 0 {
		return port.Wrap("insert brand", errDuplicate(row.ID))
	}
	s.brands = append(s.brands, row)
	return nil
}

// UpdateBrand writes the supplied columns and returns the row as stored.
func (s *Store) UpdateBrand(ctx context.Context, id string, ch port.BrandChanges) (port.BrandRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx, "update brand"); err != nil {
		return port.BrandRow{}, err
	}
	i := index(s.brands, func(b port.BrandRow) bool { return b.ID == id })
	if i < 0 {
		return port.BrandRow{}, port.Wrap("update brand", errNoRows)
	}
	row := &s.brands[i]
	set(&row.Name, ch.Name)
	set(&row.MarketShare, ch.MarketShare)
	set(&row.StockPrice, ch.StockPrice)
	set(&row.RevenueInBillions, ch.RevenueInBillions)
	set(&row.CustomerSatisfaction, ch.CustomerSatisfaction)
	set(&row.YearlyGrowth, ch.YearlyGrowth)
	return *row, nil
}

// DeleteBrand removes the brand row only; offers are deleted separately.
func (s *Store) DeleteBrand(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx, "delete brand"); err != nil {
		return err
	}
	s.brands = slices.DeleteFunc(s.brands, func(b port.BrandRow) bool { return b.ID == id })
	return nil
}

// InsertOffer stores one offer row of a brand.
func (s *Store) InsertOffer(ctx context.Context, row port.OfferRow) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx, "insert brand offer"); err != nil {
		return err
	}
	if index(s.offers, func(o port.OfferRow) bool { return o.ID == row.ID }) >= 0 {
		return port.Wrap("insert brand offer", errDuplicate(row.ID))
	}
	s.offers = append(s.offers, row)
	return nil
}

// DeleteOffers removes every offer row of a brand.
func (s *Store) DeleteOffers(ctx context.Context, brandID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx, "delete brand offers"); err != nil {
		return err
	}
	s.offers = slices.DeleteFunc(s.offers, func(o port.OfferRow) bool { return o.BrandID == brandID })
	return nil
}

// InsertOfferFeature stores one feature of an offer at position.
func (s *Store) InsertOfferFeature(ctx context.Context, offerID, feature string, position int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx, "insert offer feature"); err != nil {
		return err
	}
	s.features = append(s.features, value{parent: offerID, value: feature, position: position})
	return nil
}

// DeleteOfferFeatures removes every feature of an offer.
func (s *Store) DeleteOfferFeatures(ctx context.Context, offerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx, "delete offer features"); err != nil {
		return err
	}
	s.features = without(s.features, offerID)
	return nil
}
