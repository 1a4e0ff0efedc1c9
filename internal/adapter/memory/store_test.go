package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketing-api/internal/core/port"
)

func TestInjectedErrorsAreStoreErrors(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	boom := errors.New("connection refused")

	s.SetError("select campaigns", boom)
	_, err := s.SelectCampaigns(ctx, port.CampaignFilter{})
	var storeErr *port.StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, "select campaigns", storeErr.Op)
	assert.ErrorIs(t, err, boom)

	_, err = s.SelectBrands(ctx, port.BrandFilter{})
	assert.NoError(t, err)

	s.SetError(AllOps, boom)
	_, err = s.SelectBrands(ctx, port.BrandFilter{})
	assert.ErrorIs(t, err, boom)

	s.SetError(AllOps, nil)
	s.SetError("select campaigns", nil)
	_, err = s.SelectCampaigns(ctx, port.CampaignFilter{})
	assert.NoError(t, err)
}

func TestChildValuesKeepPosition(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	require.NoError(t, s.InsertOfferFeature(ctx, "offer_1", "second", 1))
	require.NoError(t, s.InsertOfferFeature(ctx, "offer_1", "first", 0))
	require.NoError(t, s.InsertOfferFeature(ctx, "offer_2", "other", 0))

	got, err := s.OfferFeatures(ctx, "offer_1")
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, got)

	require.NoError(t, s.DeleteOfferFeatures(ctx, "offer_1"))
	assert.Equal(t, 1, s.Len("offer_features"))
}

func TestDuplicateParentInsertFails(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	require.NoError(t, s.InsertCampaign(ctx, port.CampaignRow{ID: "camp_1"}))
	err := s.InsertCampaign(ctx, port.CampaignRow{ID: "camp_1"})
	var storeErr *port.StoreError
	assert.ErrorAs(t, err, &storeErr)
}

func TestUpdateOnlyTouchesSuppliedColumns(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	require.NoError(t, s.InsertCampaign(ctx, port.CampaignRow{ID: "camp_1", Name: "Old", Budget: 10}))

	status := "active"
	row, err := s.UpdateCampaign(ctx, "camp_1", port.CampaignChanges{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, port.CampaignRow{ID: "camp_1", Name: "Old", Budget: 10, Status: "active"}, row)
}

func TestCallsAreRecorded(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	_, _ = s.CampaignExists(ctx, "camp_1")
	_ = s.DeleteVariants(ctx, "exp_1")
	assert.Equal(t, []string{"campaign exists", "delete experiment variants"}, s.Calls())
}
