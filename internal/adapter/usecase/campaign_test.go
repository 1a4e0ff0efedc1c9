package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"marketing-api/internal/core/domain"
	"marketing-api/internal/core/port"
	"marketing-api/internal/core/port/mocks"
)

func TestCampaignReadsFallBackWhenStoreFails(t *testing.T) {
	ctx := context.Background()
	d := newDeps(t)
	d.store.SetError("select campaigns", errUnreachable)
	uc := d.campaigns()

	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, d.data.Campaigns(), list)
	require.Len(t, list, 5)

	c, err := uc.Get(ctx, "camp_1")
	require.NoError(t, err)
	assert.Equal(t, "Q4 5G Promo", c.Name)
	assert.Equal(t, []string{"prof_1", "prof_4"}, c.TargetProfiles)
	assert.Equal(t, int64(7500), c.Metrics.Conversions)

	_, err = uc.Get(ctx, "camp_missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCampaignFallbackOnChildQueryFailure(t *testing.T) {
	ctx := context.Background()
	d := newDeps(t)
	uc := d.campaigns()

	_, err := uc.Create(ctx, domain.CampaignInput{Name: ptr("Live only")})
	require.NoError(t, err)

	d.store.SetError("select campaign profiles", errUnreachable)
	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, d.data.Campaigns(), list)
}

func TestCampaignReadsDoNotFallBackOnNotFound(t *testing.T) {
	ctx := context.Background()
	d := newDeps(t)

	_, err := d.campaigns().Get(ctx, "camp_1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	list, err := d.campaigns().List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.NotNil(t, list)
}

func TestCampaignCreateWithoutChildren(t *testing.T) {
	ctx := context.Background()
	d := newDeps(t)
	uc := d.campaigns()

	created, err := uc.Create(ctx, domain.CampaignInput{
		Name:   ptr("Spring"),
		Status: ptr(domain.CampaignPlanning),
		Budget: ptr(1000.0),
	})
	require.NoError(t, err)
	assert.Regexp(t, `^camp_[0-9a-z]{9}$`, created.ID)
	assert.Equal(t, 0, d.store.Len("campaign_metrics"))
	assert.Equal(t, 0, d.store.Len("campaign_profiles"))

	got, err := uc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
	assert.Equal(t, domain.Metrics{}, got.Metrics)
	assert.Equal(t, []string{}, got.TargetProfiles)
}

func TestCampaignUpdateIsPartial(t *testing.T) {
	ctx := context.Background()
	d := newDeps(t)
	uc := d.campaigns()

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	created, err := uc.Create(ctx, domain.CampaignInput{
		Name:           ptr("Spring"),
		StartDate:      &domain.Date{Time: start},
		Budget:         ptr(100.0),
		TargetProfiles: &[]string{"prof_a", "prof_b"},
		Metrics:        &domain.Metrics{Impressions: 10, Clicks: 2},
	})
	require.NoError(t, err)

	updated, err := uc.Update(ctx, created.ID, domain.CampaignInput{Budget: ptr(200.0)})
	require.NoError(t, err)
	assert.Equal(t, "Spring", updated.Name)
	assert.Equal(t, 200.0, updated.Budget)
	assert.True(t, start.Equal(updated.StartDate))
	assert.Equal(t, []string{"prof_a", "prof_b"}, updated.TargetProfiles)
	assert.Equal(t, domain.Metrics{Impressions: 10, Clicks: 2}, updated.Metrics)

	got, err := uc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)

	cleared, err := uc.Update(ctx, created.ID, domain.CampaignInput{TargetProfiles: &[]string{}})
	require.NoError(t, err)
	assert.Empty(t, cleared.TargetProfiles)
	assert.Equal(t, 0, d.store.Len("campaign_profiles"))
	assert.Equal(t, 1, d.store.Len("campaign_metrics"))
}

func TestCampaignUpdateAndDeleteUnknown(t *testing.T) {
	ctx := context.Background()
	d := newDeps(t)
	uc := d.campaigns()

	_, err := uc.Update(ctx, "camp_missing", domain.CampaignInput{Name: ptr("x")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, uc.Delete(ctx, "camp_missing"), domain.ErrNotFound)
}

func TestCampaignDeleteCascadesToExperiments(t *testing.T) {
	ctx := context.Background()
	d := newDeps(t)
	campaigns, experiments := d.campaigns(), d.experiments()

	doomed, err := campaigns.Create(ctx, domain.CampaignInput{
		Name:           ptr("Doomed"),
		TargetProfiles: &[]string{"prof_1"},
		Metrics:        &domain.Metrics{Spend: 5},
	})
	require.NoError(t, err)
	kept, err := campaigns.Create(ctx, domain.CampaignInput{Name: ptr("Kept")})
	require.NoError(t, err)

	twoVariants := map[string]domain.Variant{"a": {Name: "A"}, "b": {Name: "B"}}
	for range 2 {
		_, err = experiments.Create(ctx, domain.ExperimentInput{CampaignID: &doomed.ID, Variants: &twoVariants})
		require.NoError(t, err)
	}
	other, err := experiments.Create(ctx, domain.ExperimentInput{
		CampaignID: &kept.ID,
		Variants:   &map[string]domain.Variant{"a": {Name: "A"}},
	})
	require.NoError(t, err)

	require.NoError(t, campaigns.Delete(ctx, doomed.ID))

	assert.Equal(t, 1, d.store.Len("campaigns"))
	assert.Equal(t, 0, d.store.Len("campaign_metrics"))
	assert.Equal(t, 0, d.store.Len("campaign_profiles"))
	assert.Equal(t, 1, d.store.Len("experiments"))
	assert.Equal(t, 1, d.store.Len("experiment_variants"))

	_, err = campaigns.Get(ctx, doomed.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = experiments.Get(ctx, other.ID)
	assert.NoError(t, err)
}

func TestCampaignWriteErrorsAreSurfaced(t *testing.T) {
	ctx := context.Background()
	d := newDeps(t)
	d.store.SetError("insert campaign", errUnreachable)

	_, err := d.campaigns().Create(ctx, domain.CampaignInput{Name: ptr("x")})
	var storeErr *port.StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, "insert campaign", storeErr.Op)
	assert.Equal(t, 0, d.store.Len("campaigns"))
}

func TestCampaignCreateLeavesPartialWrite(t *testing.T) {
	ctx := context.Background()
	d := newDeps(t)
	d.store.SetError("insert campaign metrics", errUnreachable)

	_, err := d.campaigns().Create(ctx, domain.CampaignInput{
		Name:           ptr("Half"),
		TargetProfiles: &[]string{"prof_1", "prof_2"},
		Metrics:        &domain.Metrics{Clicks: 1},
	})
	require.ErrorIs(t, err, errUnreachable)
	assert.Equal(t, 1, d.store.Len("campaigns"))
	assert.Equal(t, 2, d.store.Len("campaign_profiles"))
	assert.Equal(t, 0, d.store.Len("campaign_metrics"))
}

func TestCampaignDeleteOrder(t *testing.T) {
	campaigns := mocks.NewMockCampaignStore(t)
	experiments := mocks.NewMockExperimentStore(t)
	var order []string
	record := func(name string) func(context.Context, string) {
		return func(context.Context, string) { order = append(order, name) }
	}

	campaigns.EXPECT().CampaignExists(mock.Anything, "camp_x").Return(true, nil)
	experiments.EXPECT().
		SelectExperiments(mock.Anything, port.ExperimentFilter{CampaignID: "camp_x"}).
		Return([]port.ExperimentRow{{ID: "exp_x", CampaignID: "camp_x"}}, nil)
	experiments.EXPECT().DeleteVariants(mock.Anything, "exp_x").Run(record("variants")).Return(nil)
	experiments.EXPECT().DeleteExperiment(mock.Anything, "exp_x").Run(record("experiment")).Return(nil)
	campaigns.EXPECT().DeleteCampaignProfiles(mock.Anything, "camp_x").Run(record("profiles")).Return(nil)
	campaigns.EXPECT().DeleteCampaignMetrics(mock.Anything, "camp_x").Run(record("metrics")).Return(nil)
	campaigns.EXPECT().DeleteCampaign(mock.Anything, "camp_x").Run(record("campaign")).Return(nil)

	d := newDeps(t)
	uc := NewCampaignUseCase(campaigns, experiments, d.data, d.logger)

	require.NoError(t, uc.Delete(context.Background(), "camp_x"))
	assert.Equal(t, []string{"variants", "experiment", "profiles", "metrics", "campaign"}, order)
}

func TestCampaignUpdateReadsAbsentRelations(t *testing.T) {
	campaigns := mocks.NewMockCampaignStore(t)
	row := port.CampaignRow{ID: "camp_x", Name: "Renamed", Status: domain.CampaignActive}

	campaigns.EXPECT().CampaignExists(mock.Anything, "camp_x").Return(true, nil)
	campaigns.EXPECT().
		UpdateCampaign(mock.Anything, "camp_x", port.CampaignChanges{Name: ptr("Renamed")}).
		Return(row, nil)
	campaigns.EXPECT().CampaignProfiles(mock.Anything, "camp_x").Return([]string{"prof_1"}, nil)
	campaigns.EXPECT().
		CampaignMetrics(mock.Anything, "camp_x").
		Return([]port.CampaignMetricsRow{{CampaignID: "camp_x", Clicks: 3}}, nil)

	d := newDeps(t)
	uc := NewCampaignUseCase(campaigns, mocks.NewMockExperimentStore(t), d.data, d.logger)

	got, err := uc.Update(context.Background(), "camp_x", domain.CampaignInput{Name: ptr("Renamed")})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)
	assert.Equal(t, []string{"prof_1"}, got.TargetProfiles)
	assert.Equal(t, int64(3), got.Metrics.Clicks)
}
