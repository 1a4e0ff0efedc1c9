package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketing-api/internal/core/domain"
)

func TestProfileCreateGeneratesUniqueIDs(t *testing.T) {
	ctx := context.Background()
	d := newDeps(t)
	uc := d.profiles()

	seen := make(map[string]struct{}, 1000)
	for range 1000 {
		p, err := uc.Create(ctx, domain.ProfileInput{Name: ptr("Segment")})
		require.NoError(t, err)
		assert.Regexp(t, `^prof_[0-9a-z]{9}$`, p.ID)
		seen[p.ID] = struct{}{}
	}
	assert.Len(t, seen, 1000)
	assert.Equal(t, 1000, d.store.Len("profiles"))
}

func TestProfileCreateAndGet(t *testing.T) {
	ctx := context.Background()
	d := newDeps(t)
	uc := d.profiles()

	created, err := uc.Create(ctx, domain.ProfileInput{
		Name:        ptr("Young Professionals"),
		SegmentSize: ptr("2.5M"),
		Campaigns:   ptr(3),
		Status:      ptr(domain.ProfileActive),
		Demographics: &domain.DemographicsInput{
			AgeRange:  ptr("25-34"),
			Income:    ptr("High"),
			Location:  &[]string{"Urban", "Suburban"},
			Interests: &[]string{"Tech", "Travel"},
		},
		BehavioralAttributes: &domain.BehavioralAttributesInput{
			DeviceUsage: ptr("Mobile-first"),
			PlanType:    &[]string{"Unlimited"},
		},
	})
	require.NoError(t, err)

	got, err := uc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
	assert.Equal(t, []string{"Urban", "Suburban"}, got.Demographics.Location)
	assert.Equal(t, "", got.BehavioralAttributes.DataConsumption)
}

func TestProfileCreateWithoutNestedObjects(t *testing.T) {
	ctx := context.Background()
	d := newDeps(t)
	uc := d.profiles()

	created, err := uc.Create(ctx, domain.ProfileInput{Name: ptr("Bare")})
	require.NoError(t, err)
	assert.Equal(t, 0, d.store.Len("profile_demographics"))
	assert.Equal(t, 0, d.store.Len("profile_behavioral_attributes"))

	got, err := uc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.Demographics{Location: []string{}, Interests: []string{}}, got.Demographics)
	assert.Equal(t, domain.BehavioralAttributes{PlanType: []string{}}, got.BehavioralAttributes)
}

func TestProfileUpdateMergesNestedObjects(t *testing.T) {
	ctx := context.Background()
	d := newDeps(t)
	uc := d.profiles()

	created, err := uc.Create(ctx, domain.ProfileInput{
		Name: ptr("Families"),
		Demographics: &domain.DemographicsInput{
			AgeRange:  ptr("35-50"),
			Income:    ptr("Medium"),
			Location:  &[]string{"Suburban"},
			Interests: &[]string{"Kids"},
		},
	})
	require.NoError(t, err)

	updated, err := uc.Update(ctx, created.ID, domain.ProfileInput{
		Demographics: &domain.DemographicsInput{
			Income:   ptr("High"),
			Location: &[]string{"Urban", "Rural"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Families", updated.Name)
	assert.Equal(t, "35-50", updated.Demographics.AgeRange)
	assert.Equal(t, "High", updated.Demographics.Income)
	assert.Equal(t, []string{"Urban", "Rural"}, updated.Demographics.Location)
	assert.Equal(t, []string{"Kids"}, updated.Demographics.Interests)
	assert.Equal(t, 1, d.store.Len("profile_demographics"))

	got, err := uc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestProfileDeleteLeavesCampaignLinks(t *testing.T) {
	ctx := context.Background()
	d := newDeps(t)
	profiles, campaigns := d.profiles(), d.campaigns()

	p, err := profiles.Create(ctx, domain.ProfileInput{
		Name:                 ptr("Gone"),
		BehavioralAttributes: &domain.BehavioralAttributesInput{PlanType: &[]string{"Prepaid"}},
	})
	require.NoError(t, err)
	c, err := campaigns.Create(ctx, domain.CampaignInput{Name: ptr("Linked"), TargetProfiles: &[]string{p.ID}})
	require.NoError(t, err)

	require.NoError(t, profiles.Delete(ctx, p.ID))
	assert.Equal(t, 0, d.store.Len("profiles"))
	assert.Equal(t, 0, d.store.Len("profile_plan_types"))

	got, err := campaigns.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{p.ID}, got.TargetProfiles)

	_, err = profiles.Get(ctx, p.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProfileReadsFallBack(t *testing.T) {
	ctx := context.Background()
	d := newDeps(t)
	d.store.SetError("select profiles", errUnreachable)
	uc := d.profiles()

	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, d.data.Profiles(), list)

	p, err := uc.Get(ctx, "prof_1")
	require.NoError(t, err)
	want, _ := d.data.Profile("prof_1")
	assert.Equal(t, want, p)
}
