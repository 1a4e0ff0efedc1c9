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

var profileLists = []port.ProfileList{port.ProfileLocations, port.ProfileInterests, port.ProfilePlanTypes}

// ProfileUseCase implements port.ProfileUseCase.
type ProfileUseCase struct {
	profiles port.ProfileStore
	data     *fallback.Dataset
	logger   *slog.Logger
}

var _ port.ProfileUseCase = (*ProfileUseCase)(nil)

// NewProfileUseCase creates a profile use case serving data when profiles is unreachable.
func NewProfileUseCase(profiles port.ProfileStore, data *fallback.Dataset, logger *slog.Logger) *ProfileUseCase {
	return &ProfileUseCase{profiles: profiles, data: data, logger: logger}
}

// List returns every profile with its nested attributes.
func (u *ProfileUseCase) List(ctx context.Context) ([]domain.Profile, error) {
	return readThrough(ctx, u.logger, "list profiles",
		func() ([]domain.Profile, error) { return u.load(ctx, port.ProfileFilter{}) },
		func() ([]domain.Profile, error) { return u.data.Profiles(), nil },
	)
}

// Get returns one profile or domain.ErrNotFound.
func (u *ProfileUseCase) Get(ctx context.Context, id string) (domain.Profile, error) {
	return readThrough(ctx, u.logger, "get profile",
		func() (domain.Profile, error) {
			found, err := u.load(ctx, port.ProfileFilter{ID: id})
			if err != nil {
				return domain.Profile{}, err
			}
			if len(found) == 0 {
				return domain.Profile{}, fmt.Errorf("profile %s: %w", id, domain.ErrNotFound)
			}
			return found[0], nil
		},
		func() (domain.Profile, error) {
			p, ok := u.data.Profile(id)
			if !ok {
				return domain.Profile{}, fmt.Errorf("profile %s: %w", id, domain.ErrNotFound)
			}
			return p, nil
		},
	)
}

// load reads profile rows and, per profile, its five child row-sets.
func (u *ProfileUseCase) load(ctx context.Context, f port.ProfileFilter) ([]domain.Profile, error) {
	rows, err := u.profiles.SelectProfiles(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Profile, 0, len(rows))
	for _, row := range rows {
		demographics, err := u.profiles.ProfileDemographics(ctx, row.ID)
		if err != nil {
			return nil, err
		}
		behavior, err := u.profiles.ProfileBehavior(ctx, row.ID)
		if err != nil {
			return nil, err
		}
		lists := make(map[port.ProfileList][]string, len(profileLists))
		for _, list := range profileLists {
			if lists[list], err = u.profiles.ProfileValues(ctx, list, row.ID); err != nil {
				return nil, err
			}
		}
		out = append(out, assembler.Profile(row, demographics, behavior,
			lists[port.ProfileLocations], lists[port.ProfileInterests], lists[port.ProfilePlanTypes]))
	}
	return out, nil
}

// Create stores the profile row and a child row set for every nested field present in in.
func (u *ProfileUseCase) Create(ctx context.Context, in domain.ProfileInput) (domain.Profile, error) {
	p := in.Profile(idgen.New(idgen.Profile))
	if err := u.profiles.InsertProfile(ctx, assembler.ProfileRow(p)); err != nil {
		return domain.Profile{}, err
	}
	if d := in.Demographics; d != nil {
		if d.HasScalars() {
			if err := u.profiles.InsertProfileDemographics(ctx, assembler.DemographicsRow(p.ID, p.Demographics)); err != nil {
				return domain.Profile{}, err
			}
		}
		if d.Location != nil {
			if err := insertChildren(ctx, p.Demographics.Location, u.insertValue(port.ProfileLocations, p.ID)); err != nil {
				return domain.Profile{}, err
			}
		}
		if d.Interests != nil {
			if err := insertChildren(ctx, p.Demographics.Interests, u.insertValue(port.ProfileInterests, p.ID)); err != nil {
				return domain.Profile{}, err
			}
		}
	}
	if b := in.BehavioralAttributes; b != nil {
		if b.HasScalars() {
			if err := u.profiles.InsertProfileBehavior(ctx, assembler.BehavioralRow(p.ID, p.BehavioralAttributes)); err != nil {
				return domain.Profile{}, err
			}
		}
		if b.PlanType != nil {
			if err := insertChildren(ctx, p.BehavioralAttributes.PlanType, u.insertValue(port.ProfilePlanTypes, p.ID)); err != nil {
				return domain.Profile{}, err
			}
		}
	}
	return p, nil
}

// Update writes supplied scalar columns, replaces the demographics and
// behavioral rows when any of their fields are supplied (merged over the
// stored values) and replaces each supplied string list.
func (u *ProfileUseCase) Update(ctx context.Context, id string, in domain.ProfileInput) (domain.Profile, error) {
	ok, err := u.profiles.ProfileExists(ctx, id)
	if err != nil {
		return domain.Profile{}, err
	}
	if !ok {
		return domain.Profile{}, fmt.Errorf("profile %s: %w", id, domain.ErrNotFound)
	}

	row, err := u.profiles.UpdateProfile(ctx, id, port.ProfileChanges{
		Name:        in.Name,
		SegmentSize: in.SegmentSize,
		Campaigns:   in.Campaigns,
		Status:      in.Status,
	})
	if err != nil {
		return domain.Profile{}, err
	}

	demographics, err := u.profiles.ProfileDemographics(ctx, id)
	if err != nil {
		return domain.Profile{}, err
	}
	if d := in.Demographics; d.HasScalars() {
		merged := port.DemographicsRow{ProfileID: id}
		if len(demographics) > 0 {
			merged = demographics[0]
		}
		set(&merged.AgeRange, d.AgeRange)
		set(&merged.Income, d.Income)
		demographics = one(merged)
		err = replaceChildren(ctx, demographics,
			func(ctx context.Context) error { return u.profiles.DeleteProfileDemographics(ctx, id) },
			func(ctx context.Context, _ int, r port.DemographicsRow) error {
				return u.profiles.InsertProfileDemographics(ctx, r)
			})
		if err != nil {
			return domain.Profile{}, err
		}
	}

	behavior, err := u.profiles.ProfileBehavior(ctx, id)
	if err != nil {
		return domain.Profile{}, err
	}
	if b := in.BehavioralAttributes; b.HasScalars() {
		merged := port.BehavioralRow{ProfileID: id}
		if len(behavior) > 0 {
			merged = behavior[0]
		}
		set(&merged.DeviceUsage, b.DeviceUsage)
		set(&merged.DataConsumption, b.DataConsumption)
		behavior = one(merged)
		err = replaceChildren(ctx, behavior,
			func(ctx context.Context) error { return u.profiles.DeleteProfileBehavior(ctx, id) },
			func(ctx context.Context, _ int, r port.BehavioralRow) error {
				return u.profiles.InsertProfileBehavior(ctx, r)
			})
		if err != nil {
			return domain.Profile{}, err
		}
	}

	var location, interests, planType *[]string
	if d := in.Demographics; d != nil {
		location, interests = d.Location, d.Interests
	}
	if b := in.BehavioralAttributes; b != nil {
		planType = b.PlanType
	}
	locations, err := u.values(ctx, port.ProfileLocations, id, location)
	if err != nil {
		return domain.Profile{}, err
	}
	interestValues, err := u.values(ctx, port.ProfileInterests, id, interests)
	if err != nil {
		return domain.Profile{}, err
	}
	planTypes, err := u.values(ctx, port.ProfilePlanTypes, id, planType)
	if err != nil {
		return domain.Profile{}, err
	}

	return assembler.Profile(row, demographics, behavior, locations, interestValues, planTypes), nil
}

// Delete removes every child row of the profile, then the profile. Campaign
// links that name the profile are left in place.
func (u *ProfileUseCase) Delete(ctx context.Context, id string) error {
	ok, err := u.profiles.ProfileExists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("profile %s: %w", id, domain.ErrNotFound)
	}
	if err = u.profiles.DeleteProfileDemographics(ctx, id); err != nil {
		return err
	}
	if err = u.profiles.DeleteProfileBehavior(ctx, id); err != nil {
		return err
	}
	for _, list := range profileLists {
		if err = u.profiles.DeleteProfileValues(ctx, list, id); err != nil {
			return err
		}
	}
	return u.profiles.DeleteProfile(ctx, id)
}

// Import stores p with its own id unless it already exists.
func (u *ProfileUseCase) Import(ctx context.Context, p domain.Profile) (bool, error) {
	ok, err := u.profiles.ProfileExists(ctx, p.ID)
	if err != nil || ok {
		return false, err
	}
	if err = u.profiles.InsertProfile(ctx, assembler.ProfileRow(p)); err != nil {
		return false, err
	}
	if err = u.profiles.InsertProfileDemographics(ctx, assembler.DemographicsRow(p.ID, p.Demographics)); err != nil {
		return false, err
	}
	if err = u.profiles.InsertProfileBehavior(ctx, assembler.BehavioralRow(p.ID, p.BehavioralAttributes)); err != nil {
		return false, err
	}
	lists := map[port.ProfileList][]string{
		port.ProfileLocations: p.Demographics.Location,
		port.ProfileInterests: p.Demographics.Interests,
		port.ProfilePlanTypes: p.BehavioralAttributes.PlanType,
	}
	for _, list := range profileLists {
		if err = insertChildren(ctx, lists[list], u.insertValue(list, p.ID)); err != nil {
			return false, err
		}
	}
	return true, nil
}

// values replaces a string list when supplied is non-nil and reads it
// otherwise.
func (u *ProfileUseCase) values(ctx context.Context, list port.ProfileList, id string, supplied *[]string) ([]string, error) {
	if supplied == nil {
		return u.profiles.ProfileValues(ctx, list, id)
	}
	err := replaceChildren(ctx, *supplied,
		func(ctx context.Context) error { return u.profiles.DeleteProfileValues(ctx, list, id) },
		u.insertValue(list, id))
	if err != nil {
		return nil, err
	}
	return *supplied, nil
}

func (u *ProfileUseCase) insertValue(list port.ProfileList, profileID string) func(context.Context, int, string) error {
	return func(ctx context.Context, pos int, v string) error {
		return u.profiles.InsertProfileValue(ctx, list, profileID, v, pos)
	}
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
