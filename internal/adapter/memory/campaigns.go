package memory

import (
	"context"
	"errors"
	"slices"

	"marketing-api/internal/core/port"
)

var errNoRows = errors.New("no rows in result set")

// SelectCampaigns returns campaign rows, all of them or the one matching f.ID.
func (s *Store) SelectCampaigns(ctx context.Context, f port.CampaignFilter) ([]port.CampaignRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx, "select campaigns"); err != nil {
		return nil, err
	}
	out := make([]port.CampaignRow, 0, len(s.campaigns))
	for _, c := range s.campaigns {
		if f.ID == "" || c.ID == f.ID {
			out = append(out, c)
		}
	}
	return out, nil
}

// CampaignExists reports whether a campaign row with id exists.
func (s *Store) CampaignExists(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx, "campaign exists"); err != nil {
		return false, err
	}
	return index(s.campaigns, func(c port.CampaignRow) bool { return c.ID == id }) >= 0, nil
}

// CampaignMetrics returns the metrics rows of a campaign. Normally there is at most one.
func (s *Store) CampaignMetrics(ctx context.Context, campaignID string) ([]port.CampaignMetricsRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx, "select campaign metrics"); err != nil {
		return nil, err
	}
	out := make([]port.CampaignMetricsRow, 0, 1)
	for _, m := range s.campaignMetrics {
		if m.CampaignID == campaignID {
			out = append(out, m)
		}
	}
	return out, nil
}

// CampaignProfiles returns the target profile ids of a campaign in order.
func (s *Store) CampaignProfiles(ctx context.Context, campaignID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx, "select campaign profiles"); err != nil {
		return nil, err
	}
	return values(s.campaignProfiles, campaignID), nil
}

// InsertCampaign stores a campaign row. It fails if the id is taken.
func (s *Store) InsertCampaign(ctx context.Context, row port.CampaignRow) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx, "insert campaign"); err != nil {
		return err
	}
	if index(s.campaigns, func(c port.CampaignRow) bool { return c.ID == row.ID }) >= 0 {
		return port.Wrap("insert campaign", errDuplicate(row.ID))
	}
	s.campaigns = append(s.campaigns, row)
	return nil
}

// UpdateCampaign writes the supplied columns and returns the row as stored.
func (s *Store) UpdateCampaign(ctx context.Context, id string, ch port.CampaignChanges) (port.CampaignRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx, "update campaign"); err != nil {
		return port.CampaignRow{}, err
	}
	i := index(s.campaigns, func(c port.CampaignRow) bool { return c.ID == id })
	if i < 0 {
		return port.CampaignRow{}, port.Wrap("update campaign", errNoRows)
	}
	row := &s.campaigns[i]
	set(&row.Name, ch.Name)
	set(&row.StartDate, ch.StartDate)
	set(&row.EndDate, ch.EndDate)
	set(&row.Status, ch.Status)
	set(&row.Budget, ch.Budget)
	set(&row.Description, ch.Description)
	return *row, nil
}

// DeleteCampaign removes the campaign row only.
func (s *Store) DeleteCampaign(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx, "delete campaign"); err != nil {
		return err
	}
	s.campaigns = slices.DeleteFunc(s.campaigns, func(c port.CampaignRow) bool { return c.ID == id })
	return nil
}

// InsertCampaignMetrics stores a metrics row for a campaign.
func (s *Store) InsertCampaignMetrics(ctx context.Context, row port.CampaignMetricsRow) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx, "insert campaign metrics"); err != nil {
		return err
	}
	s.campaignMetrics = append(s.campaignMetrics, row)
	return nil
}

// DeleteCampaignMetrics removes the metrics rows of a campaign.
func (s *Store) DeleteCampaignMetrics(ctx context.Context, campaignID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx, "delete campaign metrics"); err != nil {
		return err
	}
	s.campaignMetrics = slices.DeleteFunc(s.campaignMetrics, func(m port.CampaignMetricsRow) bool {
		return m.CampaignID == campaignID
	})
	return nil
}

// InsertCampaignProfile links a profile id to a campaign at position.
func (s *Store) InsertCampaignProfile(ctx context.Context, campaignID, profileID string, position int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx, "insert campaign profile"); err != nil {
		return err
	}
	s.campaignProfiles = append(s.campaignProfiles, value{parent: campaignID, value: profileID, position: position})
	return nil
}

// DeleteCampaignProfiles removes every profile link of a campaign.
func (s *Store) DeleteCampaignProfiles(ctx context.Context, campaignID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx, "delete campaign profiles"); err != nil {
		return err
	}
	s.campaignProfiles = without(s.campaignProfiles, campaignID)
	return nil
}
