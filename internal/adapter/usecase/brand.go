package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"marketing-api/internal/core/assembler"
	"marketing-api/internal/core/domain"
	"marketing-api/internal/core/port"
	"marketing-api/internal/fallback"
	"marketing-api/internal/idgen"
)

// BrandUseCase implements port.BrandUseCase. Offers and their features are
// owned by the brand and written only through it.
type BrandUseCase struct {
	brands port.BrandStore
	data   *fallback.Dataset
	logger *slog.Logger
}

var _ port.BrandUseCase = (*BrandUseCase)(nil)

// NewBrandUseCase creates a brand use case serving data when brands is unreachable.
func NewBrandUseCase(brands port.BrandStore, data *fallback.Dataset, logger *slog.Logger) *BrandUseCase {
	return &BrandUseCase{brands: brands, data: data, logger: logger}
}

// List returns every brand with its offers.
func (u *BrandUseCase) List(ctx context.Context) ([]domain.Brand, error) {
	return readThrough(ctx, u.logger, "list brands",
		func() ([]domain.Brand, error) { return u.load(ctx, port.BrandFilter{}) },
		func() ([]domain.Brand, error) { return u.data.Brands(), nil },
	)
}

// Get returns one brand or domain.ErrNotFound.
func (u *BrandUseCase) Get(ctx context.Context, id string) (domain.Brand, error) {
	return readThrough(ctx, u.logger, "get brand",
		func() (domain.Brand, error) {
			found, err := u.load(ctx, port.BrandFilter{ID: id})
			if err != nil {
				return domain.Brand{}, err
			}
			if len(found) == 0 {
				return domain.Brand{}, fmt.Errorf("brand %s: %w", id, domain.ErrNotFound)
			}
			return found[0], nil
		},
		func() (domain.Brand, error) {
			b, ok := u.data.Brand(id)
			if !ok {
				return domain.Brand{}, fmt.Errorf("brand %s: %w", id, domain.ErrNotFound)
			}
			return b, nil
		},
	)
}

// Offers returns the offers of a brand. An existing brand without offers yields an empty slice.
func (u *BrandUseCase) Offers(ctx context.Context, brandID string) ([]domain.Offer, error) {
	notFound := fmt.Errorf("brand %s: %w", brandID, domain.ErrNotFound)
	return readThrough(ctx, u.logger, "list brand offers",
		func() ([]domain.Offer, error) {
			ok, err := u.brands.BrandExists(ctx, brandID)
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, notFound
			}
			return u.offers(ctx, brandID)
		},
		func() ([]domain.Offer, error) {
			b, ok := u.data.Brand(brandID)
			if !ok {
				return nil, notFound
			}
			return b.NewOffers, nil
		},
	)
}

// load reads brand rows, then the offers of each brand and the features of
// each offer (N+1 at two levels).
func (u *BrandUseCase) load(ctx context.Context, f port.BrandFilter) ([]domain.Brand, error) {
	rows, err := u.brands.SelectBrands(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Brand, 0, len(rows))
	for _, row := range rows {
		offers, err := u.offers(ctx, row.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, assembler.Brand(row, offers))
	}
	return out, nil
}

func (u *BrandUseCase) offers(ctx context.Context, brandID string) ([]domain.Offer, error) {
	rows, err := u.brands.BrandOffers(ctx, brandID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Offer, 0, len(rows))
	for _, row := range rows {
		features, err := u.brands.OfferFeatures(ctx, row.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, assembler.Offer(row, features))
	}
	return out, nil
}

// Create stores the brand, its offers and their features. Every offer gets a
// generated id; ids in the input are ignored.
func (u *BrandUseCase) Create(ctx context.Context, in domain.BrandInput) (domain.Brand, error) {
	b := in.Brand(idgen.New(idgen.Brand))
	b.NewOffers = freshOfferIDs(b.NewOffers)
	if err := u.brands.InsertBrand(ctx, assembler.BrandRow(b)); err != nil {
		return domain.Brand{}, err
	}
	if err := insertChildren(ctx, b.NewOffers, u.insertOffer(b.ID)); err != nil {
		return domain.Brand{}, err
	}
	return b, nil
}

// Update writes the supplied scalar columns and replaces the offers when newOffers is supplied.
func (u *BrandUseCase) Update(ctx context.Context, id string, in domain.BrandInput) (domain.Brand, error) {
	ok, err := u.brands.BrandExists(ctx, id)
	if err != nil {
		return domain.Brand{}, err
	}
	if !ok {
		return domain.Brand{}, fmt.Errorf("brand %s: %w", id, domain.ErrNotFound)
	}

	row, err := u.brands.UpdateBrand(ctx, id, port.BrandChanges{
		Name:                 in.Name,
		MarketShare:          in.MarketShare,
		StockPrice:           in.StockPrice,
		RevenueInBillions:    in.RevenueInBillions,
		CustomerSatisfaction: in.CustomerSatisfaction,
		YearlyGrowth:         in.YearlyGrowth,
	})
	if err != nil {
		return domain.Brand{}, err
	}

	var offers []domain.Offer
	if in.NewOffers != nil {
		offers = withOfferIDs(domain.NormalizeOffers(*in.NewOffers))
		err = replaceChildren(ctx, offers,
			func(ctx context.Context) error { return u.deleteOffers(ctx, id) },
			u.insertOffer(id))
	} else {
		offers, err = u.offers(ctx, id)
	}
	if err != nil {
		return domain.Brand{}, err
	}
	return assembler.Brand(row, offers), nil
}

// Delete removes offer features, offers and then the brand.
func (u *BrandUseCase) Delete(ctx context.Context, id string) error {
	ok, err := u.brands.BrandExists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("brand %s: %w", id, domain.ErrNotFound)
	}
	if err = u.deleteOffers(ctx, id); err != nil {
		return err
	}
	return u.brands.DeleteBrand(ctx, id)
}

// Import stores b with its own ids unless the brand already exists.
func (u *BrandUseCase) Import(ctx context.Context, b domain.Brand) (bool, error) {
	ok, err := u.brands.BrandExists(ctx, b.ID)
	if err != nil || ok {
		return false, err
	}
	if err = u.brands.InsertBrand(ctx, assembler.BrandRow(b)); err != nil {
		return false, err
	}
	if err = insertChildren(ctx, withOfferIDs(b.NewOffers), u.insertOffer(b.ID)); err != nil {
		return false, err
	}
	return true, nil
}

// deleteOffers removes the features of every offer of the brand, then the
// offers.
func (u *BrandUseCase) deleteOffers(ctx context.Context, brandID string) error {
	offers, err := u.brands.BrandOffers(ctx, brandID)
	if err != nil {
		return err
	}
	for _, o := range offers {
		if err = u.brands.DeleteOfferFeatures(ctx, o.ID); err != nil {
			return err
		}
	}
	return u.brands.DeleteOffers(ctx, brandID)
}

func (u *BrandUseCase) insertOffer(brandID string) func(context.Context, int, domain.Offer) error {
	return func(ctx context.Context, pos int, o domain.Offer) error {
		if err := u.brands.InsertOffer(ctx, assembler.OfferRow(brandID, pos, o)); err != nil {
			return err
		}
		return insertChildren(ctx, o.Features, func(ctx context.Context, pos int, feature string) error {
			return u.brands.InsertOfferFeature(ctx, o.ID, feature, pos)
		})
	}
}

// freshOfferIDs assigns a new id to every offer.
func freshOfferIDs(offers []domain.Offer) []domain.Offer {
	for i := range offers {
		offers[i].ID = idgen.New(idgen.Offer)
	}
	return offers
}

// withOfferIDs keeps supplied offer ids and generates the missing ones.
func withOfferIDs(offers []domain.Offer) []domain.Offer {
	for i := range offers {
		if offers[i].ID == "" {
			offers[i].ID = idgen.New(idgen.Offer)
		}
	}
	return offers
}
