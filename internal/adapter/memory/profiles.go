package memory

import (
	"context"
	"slices"

	"marketing-api/internal/core/port"
)

// SelectProfiles returns profile rows, all of them or the one matching f.ID.
func (s *Store) SelectProfiles(ctx context.Context, f port.ProfileFilter) ([]port.ProfileRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx, "select profiles"); err != nil {
		return nil, err
	}
	out := make([]port.ProfileRow, 0, len(s.profiles))
	for _, p := range s.profiles {
		if f.ID == "" || p.ID == f.ID {
			out = append(out, p)
		}
	}
	return out, nil
}

// ProfileExists reports whether a profile row with id exists.
func (s *Store) ProfileExists(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx, "profile exists"); err != nil {
		return false, err
	}
	return index(s.profiles, func(p port.ProfileRow) bool { return p.ID == id }) >= 0, nil
}

// ProfileDemographics returns the demographics rows of a profile.
func (s *Store) ProfileDemographics(ctx context.Context, profileID string) ([]port.DemographicsRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx, "select profile demographics"); err != nil {
		return nil, err
	}
	out := make([]port.DemographicsRow, 0, 1)
	for _, d := range s.demographics {
		if d.ProfileID == profileID {
			out = append(out, d)
		}
	}
	return out, nil
}

// ProfileBehavior returns the behavioral attribute rows of a profile.
func (s *Store) ProfileBehavior(ctx context.Context, profileID string) ([]port.BehavioralRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx, "select profile behavioral attributes"); err != nil {
		return nil, err
	}
	out := make([]port.BehavioralRow, 0, 1)
	for _, b := range s.behavior {
		if b.ProfileID == profileID {
			out = append(out, b)
		}
	}
	return out, nil
}

// ProfileValues returns the values of one string list of a profile in order.
func (s *Store) ProfileValues(ctx context.Context, list port.ProfileList, profileID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx, "select profile "+string(list)); err != nil {
		return nil, err
	}
	return values(s.profileValues[list], profileID), nil
}

// InsertProfile stores a profile row. It fails if the id is taken.
func (s *Store) InsertProfile(ctx context.Context, row port.ProfileRow) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx, "insert profile"); err != nil {
		return err
	}
	if index(s.profiles, func(p port.ProfileRow) bool { return p.ID == row.ID }) >= 0 {
		return port.Wrap("insert profile", errDuplicate(row.ID))
	}
	s.profiles = append(s.profiles, row)
	return nil
}

// UpdateProfile writes the supplied columns and returns the row as stored.
func (s *Store) UpdateProfile(ctx context.Context, id string, ch port.ProfileChanges) (port.ProfileRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx, "update profile"); err != nil {
		return port.ProfileRow{}, err
	}
	i := index(s.profiles, func(p port.ProfileRow) bool { return p.ID == id })
	if i < 0 {
		return port.ProfileRow{}, port.Wrap("update profile", errNoRows)
	}
	row := &s.profiles[i]
	set(&row.Name, ch.Name)
	set(&row.SegmentSize, ch.SegmentSize)
	set(&row.Campaigns, ch.Campaigns)
	set(&row.Status, ch.Status)
	return *row, nil
}

// DeleteProfile removes the profile row.
func (s *Store) DeleteProfile(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx, "delete profile"); err != nil {
		return err
	}
	s.profiles = slices.DeleteFunc(s.profiles, func(p port.ProfileRow) bool { return p.ID == id })
	return nil
}

// InsertProfileDemographics stores the demographics row of a profile.
func (s *Store) InsertProfileDemographics(ctx context.Context, row port.DemographicsRow) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx, "insert profile demographics"); err != nil {
		return err
	}
	s.demographics = append(s.demographics, row)
	return nil
}

// DeleteProfileDemographics removes the demographics rows of a profile.
func (s *Store) DeleteProfileDemographics(ctx context.Context, profileID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx, "delete profile demographics"); err != nil {
		return err
	}
	s.demographics = slices.DeleteFunc(s.demographics, func(d port.DemographicsRow) bool {
		return d.ProfileID == profileID
	})
	return nil
}

// InsertProfileBehavior stores the behavioral attribute row of a profile.
func (s *Store) InsertProfileBehavior(ctx context.Context, row port.BehavioralRow) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx, "insert profile behavioral attributes"); err != nil {
		return err
	}
	s.behavior = append(s.behavior, row)
	return nil
}

// DeleteProfileBehavior removes the behavioral attribute rows of a profile.
func (s *Store) DeleteProfileBehavior(ctx context.Context, profileID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx, "delete profile behavioral attributes"); err != nil {
		return err
	}
	s.behavior = slices.DeleteFunc(s.behavior, func(b port.BehavioralRow) bool {
		return b.ProfileID == profileID
	})
	return nil
}

// InsertProfileValue stores one value of a profile list at position.
func (s *Store) InsertProfileValue(ctx context.Context, list port.ProfileList, profileID, v string, position int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx, "insert profile "+string(list)); err != nil {
		return err
	}
	s.profileValues[list] = append(s.profileValues[list], value{parent: profileID, value: v, position: position})
	return nil
}

// DeleteProfileValues removes every value of one profile list.
func (s *Store) DeleteProfileValues(ctx context.Context, list port.ProfileList, profileID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx, "delete profile "+string(list)); err != nil {
		return err
	}
	s.profileValues[list] = without(s.profileValues[list], profileID)
	return nil
}
