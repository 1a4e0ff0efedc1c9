package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"marketing-api/internal/core/port"
)

const campaignColumns = `id, name, start_date, end_date, status, budget, description`

func scanCampaign(row pgx.CollectableRow) (port.CampaignRow, error) {
	var c port.CampaignRow
	err := row.Scan(&c.ID, &c.Name, &c.StartDate, &c.EndDate, &c.Status, &c.Budget, &c.Description)
	c.StartDate, c.EndDate = c.StartDate.UTC(), c.EndDate.UTC()
	return c, err
}

// SelectCampaigns returns campaign rows, all of them or the one matching f.ID.
func (s *Store) SelectCampaigns(ctx context.Context, f port.CampaignFilter) ([]port.CampaignRow, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns`
	var args []any
	if f.ID != "" {
		query += ` WHERE id = $1`
		args = append(args, f.ID)
	}
	query += ` ORDER BY created_at, id`

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, port.Wrap("select campaigns", err)
	}
	out, err := pgx.CollectRows(rows, scanCampaign)
	if err != nil {
		return nil, port.Wrap("select campaigns", err)
	}
	return out, nil
}

// CampaignExists reports whether a campaign row with id exists.
func (s *Store) CampaignExists(ctx context.Context, id string) (bool, error) {
	return s.exists(ctx, "campaign exists", "campaigns", id)
}

// CampaignMetrics returns the metrics rows of a campaign. Normally there is at most one.
func (s *Store) CampaignMetrics(ctx context.Context, campaignID string) ([]port.CampaignMetricsRow, error) {
	rows, err := s.pool.Query(ctx, `SELECT campaign_id, impressions, clicks, conversions, spend
FROM campaign_metrics WHERE campaign_id = $1`, campaignID)
	if err != nil {
		return nil, port.Wrap("select campaign metrics", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.CampaignMetricsRow, error) {
		var m port.CampaignMetricsRow
		err := row.Scan(&m.CampaignID, &m.Impressions, &m.Clicks, &m.Conversions, &m.Spend)
		return m, err
	})
	if err != nil {
		return nil, port.Wrap("select campaign metrics", err)
	}
	return out, nil
}

// CampaignProfiles returns the target profile ids of a campaign in order.
func (s *Store) CampaignProfiles(ctx context.Context, campaignID string) ([]string, error) {
	return s.values(ctx, "select campaign profiles", "campaign_profiles", "profile_id", "campaign_id", campaignID)
}

// InsertCampaign stores a campaign row. It fails if the id is taken.
func (s *Store) InsertCampaign(ctx context.Context, c port.CampaignRow) error {
	return s.exec(ctx, "insert campaign", `INSERT INTO campaigns (`+campaignColumns+`)
VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		c.ID, c.Name, c.StartDate, c.EndDate, c.Status, c.Budget, c.Description)
}

// UpdateCampaign writes the supplied columns and returns the row as stored.
// With no changes it only reads the row.
func (s *Store) UpdateCampaign(ctx context.Context, id string, ch port.CampaignChanges) (port.CampaignRow, error) {
	var a assignments
	addIf(&a, "name", ch.Name)
	addIf(&a, "start_date", ch.StartDate)
	addIf(&a, "end_date", ch.EndDate)
	addIf(&a, "status", ch.Status)
	addIf(&a, "budget", ch.Budget)
	addIf(&a, "description", ch.Description)

	query, args := `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, []any{id}
	if !a.empty() {
		query, args = a.update("campaigns", campaignColumns, id)
	}
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return port.CampaignRow{}, port.Wrap("update campaign", err)
	}
	c, err := pgx.CollectExactlyOneRow(rows, scanCampaign)
	if err != nil {
		return port.CampaignRow{}, port.Wrap("update campaign", err)
	}
	return c, nil
}

// DeleteCampaign removes the campaign row only.
func (s *Store) DeleteCampaign(ctx context.Context, id string) error {
	return s.exec(ctx, "delete campaign", `DELETE FROM campaigns WHERE id = $1`, id)
}

// InsertCampaignMetrics stores a metrics row for a campaign.
func (s *Store) InsertCampaignMetrics(ctx context.Context, m port.CampaignMetricsRow) error {
	return s.exec(ctx, "insert campaign metrics", `INSERT INTO campaign_metrics
(campaign_id, impressions, clicks, conversions, spend) VALUES ($1,$2,$3,$4,$5)`,
		m.CampaignID, m.Impressions, m.Clicks, m.Conversions, m.Spend)
}

// DeleteCampaignMetrics removes the metrics rows of a campaign.
func (s *Store) DeleteCampaignMetrics(ctx context.Context, campaignID string) error {
	return s.exec(ctx, "delete campaign metrics", `DELETE FROM campaign_metrics WHERE campaign_id = $1`, campaignID)
}

// InsertCampaignProfile links a profile id to a campaign at position.
func (s *Store) InsertCampaignProfile(ctx context.Context, campaignID, profileID string, position int) error {
	return s.exec(ctx, "insert campaign profile", `INSERT INTO campaign_profiles
(campaign_id, profile_id, position) VALUES ($1,$2,$3)`, campaignID, profileID, position)
}

// DeleteCampaignProfiles removes every profile link of a campaign.
func (s *Store) DeleteCampaignProfiles(ctx context.Context, campaignID string) error {
	return s.exec(ctx, "delete campaign profiles", `DELETE FROM campaign_profiles WHERE campaign_id = $1`, campaignID)
}
