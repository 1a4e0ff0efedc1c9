package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"marketing-api/internal/core/port"
)

const profileColumns = `id, name, segment_size, campaigns, status`

type listTable struct {
	table  string
	column string
}

var profileLists = map[port.ProfileList]listTable{
	port.ProfileLocations: {table: "profile_locations", column: "location"},
	port.ProfileInterests: {table: "profile_interests", column: "interest"},
	port.ProfilePlanTypes: {table: "profile_plan_types", column: "plan_type"},
}

func profileList(op string, list port.ProfileList) (listTable, error) {
	t, ok := profileLists[list]
	if !ok {
		return listTable{}, port.Wrap(op, fmt.Errorf("unknown profile list %q", list))
	}
	return t, nil
}

func scanProfile(row pgx.CollectableRow) (port.ProfileRow, error) {
	var p port.ProfileRow
	err := row.Scan(&p.ID, &p.Name, &p.SegmentSize, &p.Campaigns, &p.Status)
	return p, err
}

// SelectProfiles returns profile rows, all of them or the one matching f.ID.
func (s *Store) SelectProfiles(ctx context.Context, f port.ProfileFilter) ([]port.ProfileRow, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles`
	var args []any
	if f.ID != "" {
		query += ` WHERE id = $1`
		args = append(args, f.ID)
	}
	query += ` ORDER BY created_at, id`

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, port.Wrap("select profiles", err)
	}
	out, err := pgx.CollectRows(rows, scanProfile)
	if err != nil {
		return nil, port.Wrap("select profiles", err)
	}
	return out, nil
}

// ProfileExists reports whether a profile row with id exists.
func (s *Store) ProfileExists(ctx context.Context, id string) (bool, error) {
	return s.exists(ctx, "profile exists", "profiles", id)
}

// ProfileDemographics returns the demographics rows of a profile.
func (s *Store) ProfileDemographics(ctx context.Context, profileID string) ([]port.DemographicsRow, error) {
	rows, err := s.pool.Query(ctx, `SELECT profile_id, age_range, income
FROM profile_demographics WHERE profile_id = $1`, profileID)
	if err != nil {
		return nil, port.Wrap("select profile demographics", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.DemographicsRow, error) {
		var d port.DemographicsRow
		err := row.Scan(&d.ProfileID, &d.AgeRange, &d.Income)
		return d, err
	})
	if err != nil {
		return nil, port.Wrap("select profile demographics", err)
	}
	return out, nil
}

// ProfileBehavior returns the behavioral attribute rows of a profile.
func (s *Store) ProfileBehavior(ctx context.Context, profileID string) ([]port.BehavioralRow, error) {
	rows, err := s.pool.Query(ctx, `SELECT profile_id, device_usage, data_consumption
FROM profile_behavioral_attributes WHERE profile_id = $1`, profileID)
	if err != nil {
		return nil, port.Wrap("select profile behavioral attributes", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.BehavioralRow, error) {
		var b port.BehavioralRow
		err := row.Scan(&b.ProfileID, &b.DeviceUsage, &b.DataConsumption)
		return b, err
	})
	if err != nil {
		return nil, port.Wrap("select profile behavioral attributes", err)
	}
	return out, nil
}

// ProfileValues returns the values of one string list of a profile in order.
func (s *Store) ProfileValues(ctx context.Context, list port.ProfileList, profileID string) ([]string, error) {
	op := "select profile " + string(list)
	t, err := profileList(op, list)
	if err != nil {
		return nil, err
	}
	return s.values(ctx, op, t.table, t.column, "profile_id", profileID)
}

// InsertProfile stores a profile row. It fails if the id is taken.
func (s *Store) InsertProfile(ctx context.Context, p port.ProfileRow) error {
	return s.exec(ctx, "insert profile", `INSERT INTO profiles (`+profileColumns+`)
VALUES ($1,$2,$3,$4,$5)`, p.ID, p.Name, p.SegmentSize, p.Campaigns, p.Status)
}

// UpdateProfile writes the supplied columns and returns the row as stored.
func (s *Store) UpdateProfile(ctx context.Context, id string, ch port.ProfileChanges) (port.ProfileRow, error) {
	var a assignments
	addIf(&a, "name", ch.Name)
	addIf(&a, "segment_size", ch.SegmentSize)
	addIf(&a, "campaigns", ch.Campaigns)
	addIf(&a, "status", ch.Status)

	query, args := `SELECT `+profileColumns+` FROM profiles WHERE id = $1`, []any{id}
	if !a.empty() {
		query, args = a.update("profiles", profileColumns, id)
	}
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return port.ProfileRow{}, port.Wrap("update profile", err)
	}
	p, err := pgx.CollectExactlyOneRow(rows, scanProfile)
	if err != nil {
		return port.ProfileRow{}, port.Wrap("update profile", err)
	}
	return p, nil
}

// DeleteProfile removes the profile row.
func (s *Store) DeleteProfile(ctx context.Context, id string) error {
	return s.exec(ctx, "delete profile", `DELETE FROM profiles WHERE id = $1`, id)
}

// InsertProfileDemographics stores the demographics row of a profile.
func (s *Store) InsertProfileDemographics(ctx context.Context, d port.DemographicsRow) error {
	return s.exec(ctx, "insert profile demographics", `INSERT INTO profile_demographics
(profile_id, age_range, income) VALUES ($1,$2,$3)`, d.ProfileID, d.AgeRange, d.Income)
}

// DeleteProfileDemographics removes the demographics rows of a profile.
func (s *Store) DeleteProfileDemographics(ctx context.Context, profileID string) error {
	return s.exec(ctx, "delete profile demographics", `DELETE FROM profile_demographics WHERE profile_id = $1`, profileID)
}

// InsertProfileBehavior stores the behavioral attribute row of a profile.
func (s *Store) InsertProfileBehavior(ctx context.Context, b port.BehavioralRow) error {
	return s.exec(ctx, "insert profile behavioral attributes", `INSERT INTO profile_behavioral_attributes
(profile_id, device_usage, data_consumption) VALUES ($1,$2,$3)`, b.ProfileID, b.DeviceUsage, b.DataConsumption)
}

// DeleteProfileBehavior removes the behavioral attribute rows of a profile.
func (s *Store) DeleteProfileBehavior(ctx context.Context, profileID string) error {
	return s.exec(ctx, "delete profile behavioral attributes",
		`DELETE FROM profile_behavioral_attributes WHERE profile_id = $1`, profileID)
}

// InsertProfileValue stores one value of a profile list at position.
func (s *Store) InsertProfileValue(ctx context.Context, list port.ProfileList, profileID, value string, position int) error {
	op := "insert profile " + string(list)
	t, err := profileList(op, list)
	if err != nil {
		return err
	}
	query := fmt.Sprintf(`INSERT INTO %s (profile_id, %s, position) VALUES ($1,$2,$3)`, t.table, t.column)
	return s.exec(ctx, op, query, profileID, value, position)
}

// DeleteProfileValues removes every value of one profile list.
func (s *Store) DeleteProfileValues(ctx context.Context, list port.ProfileList, profileID string) error {
	op := "delete profile " + string(list)
	t, err := profileList(op, list)
	if err != nil {
		return err
	}
	return s.exec(ctx, op, `DELETE FROM `+t.table+` WHERE profile_id = $1`, profileID)
}
