package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"marketing-api/internal/core/port"
)

const brandColumns = `id, name, market_share, stock_price, revenue_in_billions, customer_satisfaction, yearly_growth`

func scanBrand(row pgx.CollectableRow) (port.BrandRow, error) {
	var b port.BrandRow
	err := row.Scan(&b.ID, &b.Name, &b.MarketShare, &b.StockPrice, &b.RevenueInBillions,
		&b.CustomerSatisfaction, &b.YearlyGrowth)
	return b, err
}

// SelectBrands returns brand rows, all of them or the one matching f.ID.
func (s *Store) SelectBrands(ctx context.Context, f port.BrandFilter) ([]port.BrandRow, error) {
	query := `SELECT ` + brandColumns + ` FROM brands`
	var args []any
	if f.ID != "" {
		query += ` WHERE id = $1`
		args = append(args, f.ID)
	}
	query += ` ORDER BY created_at, id`

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, port.Wrap("select brands", err)
	}
	out, err := pgx.CollectRows(rows, scanBrand)
	if err != nil {
		return nil, port.Wrap("select brands", err)
	}
	return out, nil
}

// BrandExists reports whether a brand row with id exists.
func (s *Store) BrandExists(ctx context.Context, id string) (bool, error) {
	return s.exists(ctx, "brand exists", "brands", id)
}

// BrandOffers returns the offers of a brand in display order.
func (s *Store) BrandOffers(ctx context.Context, brandID string) ([]port.OfferRow, error) {
	rows, err := s.pool.Query(ctx, `SELECT id, brand_id, name, price, position
FROM brand_offers WHERE brand_id = $1 ORDER BY position`, brandID)
	if err != nil {
		return nil, port.Wrap("select brand offers", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.OfferRow, error) {
		var o port.OfferRow
		err := row.Scan(&o.ID, &o.BrandID, &o.Name, &o.Price, &o.Position)
		return o, err
	})
	if err != nil {
		return nil, port.Wrap("select brand offers", err)
	}
	return out, nil
}

// OfferFeatures returns the features of an offer in their original order.
func (s *Store) OfferFeatures(ctx context.Context, offerID string) ([]string, error) {
	return s.values(ctx, "select offer features", "offer_features", "feature", "offer_id", offerID)
}

// InsertBrand stores a brand row. It fails if the id is taken.
func (s *Store) InsertBrand(ctx context.Context, b port.BrandRow) error {
	return s.exec(ctx, "insert brand", `INSERT INTO brands (`+brandColumns+`)
VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		b.ID, b.Name, b.MarketShare, b.StockPrice, b.RevenueInBillions, b.CustomerSatisfaction, b.YearlyGrowth)
}

// UpdateBrand writes the supplied columns and returns the row as stored.
func (s *Store) UpdateBrand(ctx context.Context, id string, ch port.BrandChanges) (port.BrandRow, error) {
	var a assignments
	addIf(&a, "name", ch.Name)
	addIf(&a, "market_share", ch.MarketShare)
	addIf(&a, "stock_price", ch.StockPrice)
	addIf(&a, "revenue_in_billions", ch.RevenueInBillions)
	addIf(&a, "customer_satisfaction", ch.CustomerSatisfaction)
	addIf(&a, "yearly_growth", ch.YearlyGrowth)

	query, args := `SELECT `+brandColumns+` FROM brands WHERE id = $1`, []any{id}
	if !a.empty() {
		query, args = a.update("brands", brandColumns, id)
	}
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return port.BrandRow{}, port.Wrap("update brand", err)
	}
	b, err := pgx.CollectExactlyOneRow(rows, scanBrand)
	if err != nil {
		return port.BrandRow{}, port.Wrap("update brand", err)
	}
	return b, nil
}

// DeleteBrand removes the brand row only; offers are deleted separately.
func (s *Store) DeleteBrand(ctx context.Context, id string) error {
	return s.exec(ctx, "delete brand", `DELETE FROM brands WHERE id = $1`, id)
}

// InsertOffer stores one offer row of a brand.
func (s *Store) InsertOffer(ctx context.Context, o port.OfferRow) error {
	return s.exec(ctx, "insert brand offer", `INSERT INTO brand_offers
(id, brand_id, name, price, position) VALUES ($1,$2,$3,$4,$5)`, o.ID, o.BrandID, o.Name, o.Price, o.Position)
}

// DeleteOffers removes every offer row of a brand.
func (s *Store) DeleteOffers(ctx context.Context, brandID string) error {
	return s.exec(ctx, "delete brand offers", `DELETE FROM brand_offers WHERE brand_id = $1`, brandID)
}

// InsertOfferFeature stores one feature of an offer at position.
func (s *Store) InsertOfferFeature(ctx context.Context, offerID, feature string, position int) error {
	return s.exec(ctx, "insert offer feature", `INSERT INTO offer_features
(offer_id, feature, position) VALUES ($1,$2,$3)`, offerID, feature, position)
}

// DeleteOfferFeatures removes every feature of an offer.
func (s *Store) DeleteOfferFeatures(ctx context.Context, offerID string) error {
	return s.exec(ctx, "delete offer features", `DELETE FROM offer_features WHERE offer_id = $1`, offerID)
}
