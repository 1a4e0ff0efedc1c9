package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketing-api/internal/adapter/memory"
	"marketing-api/internal/core/domain"
)

func TestBrandEndToEnd(t *testing.T) {
	ctx := context.Background()
	d := newDeps(t)
	uc := d.brands()

	created, err := uc.Create(ctx, domain.BrandInput{
		Name:        ptr("Acme"),
		MarketShare: ptr(12.5),
		NewOffers: &[]domain.Offer{
			{Name: "Plan A", Price: 10, Features: []string{"x", "y"}},
			{ID: "offer_fixed", Name: "Plan B", Price: 20},
		},
	})
	require.NoError(t, err)
	assert.Regexp(t, `^brand_[0-9a-z]{9}$`, created.ID)
	require.Len(t, created.NewOffers, 2)
	assert.Regexp(t, `^offer_[0-9a-z]{9}$`, created.NewOffers[0].ID)
	assert.Regexp(t, `^offer_[0-9a-z]{9}$`, created.NewOffers[1].ID)
	assert.NotEqual(t, "offer_fixed", created.NewOffers[1].ID)

	got, err := uc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
	assert.Equal(t, "Plan A", got.NewOffers[0].Name)
	assert.Equal(t, []string{"x", "y"}, got.NewOffers[0].Features)
	assert.Equal(t, []string{}, got.NewOffers[1].Features)

	offers, err := uc.Offers(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, got.NewOffers, offers)

	updated, err := uc.Update(ctx, created.ID, domain.BrandInput{
		StockPrice: ptr(9.5),
		NewOffers:  &[]domain.Offer{{Name: "Plan C", Features: []string{"z"}}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme", updated.Name)
	assert.Equal(t, 9.5, updated.StockPrice)
	require.Len(t, updated.NewOffers, 1)
	assert.Equal(t, 1, d.store.Len("brand_offers"))
	assert.Equal(t, 1, d.store.Len("offer_features"))

	require.NoError(t, uc.Delete(ctx, created.ID))
	for _, table := range []string{"brands", "brand_offers", "offer_features"} {
		assert.Equal(t, 0, d.store.Len(table), table)
	}
	_, err = uc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBrandUpdateWithoutOffersKeepsThem(t *testing.T) {
	ctx := context.Background()
	d := newDeps(t)
	uc := d.brands()

	created, err := uc.Create(ctx, domain.BrandInput{
		Name:      ptr("Acme"),
		NewOffers: &[]domain.Offer{{Name: "Plan A", Features: []string{"x"}}},
	})
	require.NoError(t, err)

	updated, err := uc.Update(ctx, created.ID, domain.BrandInput{Name: ptr("Acme Mobile")})
	require.NoError(t, err)
	assert.Equal(t, "Acme Mobile", updated.Name)
	assert.Equal(t, created.NewOffers, updated.NewOffers)
}

func TestBrandCreateIgnoresSuppliedOfferIDs(t *testing.T) {
	ctx := context.Background()
	d := newDeps(t)
	uc := d.brands()

	seeded, ok := d.data.Brand("brand_1")
	require.True(t, ok)
	imported, err := uc.Import(ctx, seeded)
	require.NoError(t, err)
	require.True(t, imported)
	require.Equal(t, "offer_ts_1", seeded.NewOffers[0].ID)

	created, err := uc.Create(ctx, domain.BrandInput{
		Name:      ptr("Copycat"),
		NewOffers: &[]domain.Offer{{ID: "offer_ts_1", Name: "Premium Unlimited", Price: 79.99}},
	})
	require.NoError(t, err)
	require.Len(t, created.NewOffers, 1)
	assert.Regexp(t, `^offer_[0-9a-z]{9}$`, created.NewOffers[0].ID)
	assert.Equal(t, 2, d.store.Len("brands"))
	assert.Equal(t, len(seeded.NewOffers)+1, d.store.Len("brand_offers"))

	original, err := uc.Offers(ctx, "brand_1")
	require.NoError(t, err)
	assert.Equal(t, seeded.NewOffers, original)
}

func TestBrandWithoutOffers(t *testing.T) {
	ctx := context.Background()
	d := newDeps(t)
	uc := d.brands()

	created, err := uc.Create(ctx, domain.BrandInput{Name: ptr("Bare")})
	require.NoError(t, err)
	assert.Equal(t, []domain.Offer{}, created.NewOffers)

	offers, err := uc.Offers(ctx, created.ID)
	require.NoError(t, err)
	assert.NotNil(t, offers)
	assert.Empty(t, offers)

	got, err := uc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, []domain.Offer{}, got.NewOffers)
}

func TestBrandOffersUnknownBrand(t *testing.T) {
	ctx := context.Background()
	d := newDeps(t)

	_, err := d.brands().Offers(ctx, "brand_missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBrandReadsFallBack(t *testing.T) {
	ctx := context.Background()
	d := newDeps(t)
	d.store.SetError(memory.AllOps, errUnreachable)
	uc := d.brands()

	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, d.data.Brands(), list)

	offers, err := uc.Offers(ctx, "brand_1")
	require.NoError(t, err)
	require.Len(t, offers, 2)
	assert.Equal(t, "Premium Unlimited", offers[0].Name)
	assert.Equal(t, []string{"Unlimited 5G data", "50GB hotspot", "International calling"}, offers[0].Features)

	_, err = uc.Offers(ctx, "brand_missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Create(ctx, domain.BrandInput{Name: ptr("Offline")})
	assert.ErrorIs(t, err, errUnreachable)
}
