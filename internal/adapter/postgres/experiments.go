package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"marketing-api/internal/core/port"
)

const experimentColumns = `id, name, campaign_id, start_date, end_date, status, confidence, winner`

func scanExperiment(row pgx.CollectableRow) (port.ExperimentRow, error) {
	var e port.ExperimentRow
	err := row.Scan(&e.ID, &e.Name, &e.CampaignID, &e.StartDate, &e.EndDate, &e.Status, &e.Confidence, &e.Winner)
	e.StartDate = e.StartDate.UTC()
	e.EndDate = utcPtr(e.EndDate)
	return e, err
}

// SelectExperiments filters by id and/or campaign id.
func (s *Store) SelectExperiments(ctx context.Context, f port.ExperimentFilter) ([]port.ExperimentRow, error) {
	var (
		where []string
		args  []any
	)
	if f.ID != "" {
		args = append(args, f.ID)
		where = append(where, fmt.Sprintf("id = $%d", len(args)))
	}
	if f.CampaignID != "" {
		args = append(args, f.CampaignID)
		where = append(where, fmt.Sprintf("campaign_id = $%d", len(args)))
	}
	query := `SELECT ` + experimentColumns + ` FROM experiments`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY created_at, id`

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, port.Wrap("select experiments", err)
	}
	out, err := pgx.CollectRows(rows, scanExperiment)
	if err != nil {
		return nil, port.Wrap("select experiments", err)
	}
	return out, nil
}

// ExperimentExists reports whether an experiment row with id exists.
func (s *Store) ExperimentExists(ctx context.Context, id string) (bool, error) {
	return s.exists(ctx, "experiment exists", "experiments", id)
}

// ExperimentVariants returns the variant rows of an experiment ordered by key.
func (s *Store) ExperimentVariants(ctx context.Context, experimentID string) ([]port.VariantRow, error) {
	rows, err := s.pool.Query(ctx, `SELECT experiment_id, variant_key, name, impressions, clicks, conversions
FROM experiment_variants WHERE experiment_id = $1 ORDER BY variant_key`, experimentID)
	if err != nil {
		return nil, port.Wrap("select experiment variants", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.VariantRow, error) {
		var v port.VariantRow
		err := row.Scan(&v.ExperimentID, &v.Key, &v.Name, &v.Impressions, &v.Clicks, &v.Conversions)
		return v, err
	})
	if err != nil {
		return nil, port.Wrap("select experiment variants", err)
	}
	return out, nil
}

// InsertExperiment stores an experiment row. It fails if the id is taken.
func (s *Store) InsertExperiment(ctx context.Context, e port.ExperimentRow) error {
	return s.exec(ctx, "insert experiment", `INSERT INTO experiments (`+experimentColumns+`)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		e.ID, e.Name, e.CampaignID, e.StartDate, e.EndDate, e.Status, e.Confidence, e.Winner)
}

// UpdateExperiment writes the supplied columns and returns the row as stored. Nullable columns are cleared by an explicit null.
func (s *Store) UpdateExperiment(ctx context.Context, id string, ch port.ExperimentChanges) (port.ExperimentRow, error) {
	var a assignments
	addIf(&a, "name", ch.Name)
	addIf(&a, "campaign_id", ch.CampaignID)
	addIf(&a, "start_date", ch.StartDate)
	if ch.EndDate.Set {
		a.add("end_date", ch.EndDate.Ptr())
	}
	addIf(&a, "status", ch.Status)
	addIf(&a, "confidence", ch.Confidence)
	if ch.Winner.Set {
		a.add("winner", ch.Winner.Ptr())
	}

	query, args := `SELECT `+experimentColumns+` FROM experiments WHERE id = $1`, []any{id}
	if !a.empty() {
		query, args = a.update("experiments", experimentColumns, id)
	}
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return port.ExperimentRow{}, port.Wrap("update experiment", err)
	}
	e, err := pgx.CollectExactlyOneRow(rows, scanExperiment)
	if err != nil {
		return port.ExperimentRow{}, port.Wrap("update experiment", err)
	}
	return e, nil
}

// DeleteExperiment removes the experiment row only.
func (s *Store) DeleteExperiment(ctx context.Context, id string) error {
	return s.exec(ctx, "delete experiment", `DELETE FROM experiments WHERE id = $1`, id)
}

// InsertVariant stores one variant row.
func (s *Store) InsertVariant(ctx context.Context, v port.VariantRow) error {
	return s.exec(ctx, "insert experiment variant", `INSERT INTO experiment_variants
(experiment_id, variant_key, name, impressions, clicks, conversions) VALUES ($1,$2,$3,$4,$5,$6)`,
		v.ExperimentID, v.Key, v.Name, v.Impressions, v.Clicks, v.Conversions)
}

// DeleteVariants removes every variant row of an experiment.
func (s *Store) DeleteVariants(ctx context.Context, experimentID string) error {
	return s.exec(ctx, "delete experiment variants", `DELETE FROM experiment_variants WHERE experiment_id = $1`, experimentID)
}
