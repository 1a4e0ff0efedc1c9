package memory

import (
	"context"
	"slices"
	"strings"

	"marketing-api/internal/core/port"
)

// SelectExperiments returns experiment rows filtered by id and/or campaign id.
func (s *Store) SelectExperiments(ctx context.Context, f port.ExperimentFilter) ([]port.ExperimentRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx, "select experiments"); err != nil {
		return nil, err
	}
	out := make([]port.ExperimentRow, 0, len(s.experiments))
	for _, e := range s.experiments {
		if f.ID != "" && e.ID != f.ID {
			continue
		}
		if f.CampaignID != "" && e.CampaignID != f.CampaignID {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

// ExperimentExists reports whether an experiment row with id exists.
func (s *Store) ExperimentExists(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx, "experiment exists"); err != nil {
		return false, err
	}
	return index(s.experiments, func(e port.ExperimentRow) bool { return e.ID == id }) >= 0, nil
}

// ExperimentVariants returns the variant rows of an experiment ordered by key.
func (s *Store) ExperimentVariants(ctx context.Context, experimentID string) ([]port.VariantRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx, "select experiment variants"); err != nil {
		return nil, err
	}
	out := make([]port.VariantRow, 0, 2)
	for _, v := range s.variants {
		if v.ExperimentID == experimentID {
			out = append(out, v)
		}
	}
	slices.SortFunc(out, func(a, b port.VariantRow) int { return strings.Compare(a.Key, b.Key) })
	return out, nil
}

// InsertExperiment stores an experiment row. It fails if the id is taken.
func (s *Store) InsertExperiment(ctx context.Context, row port.ExperimentRow) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx, "insert experiment"); err != nil {
		return err
	}
	if index(s.experiments, func(e port.ExperimentRow) bool { return e.ID == row.ID }) >= 0 {
		return port.Wrap("insert experiment", errDuplicate(row.ID))
	}
	s.experiments = append(s.experiments, row)
	return nil
}

// UpdateExperiment writes the supplied columns and returns the row as stored. Nullable columns are cleared by an explicit null.
func (s *Store) UpdateExperiment(ctx context.Context, id string, ch port.ExperimentChanges) (port.ExperimentRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx, "update experiment"); err != nil {
		return port.ExperimentRow{}, err
	}
	i := index(s.experiments, func(e port.ExperimentRow) bool { return e.ID == id })
	if i < 0 {
		return port.ExperimentRow{}, port.Wrap("update experiment", errNoRows)
	}
	row := &s.experiments[i]
	set(&row.Name, ch.Name)
	set(&row.CampaignID, ch.CampaignID)
	set(&row.StartDate, ch.StartDate)
	set(&row.Status, ch.Status)
	set(&row.Confidence, ch.Confidence)
	if ch.EndDate.Set {
		row.EndDate = ch.EndDate.Ptr()
	}
	if ch.Winner.Set {
		row.Winner = ch.Winner.Ptr()
	}
	return *row, nil
}

// DeleteExperiment removes the experiment row only.
func (s *Store) DeleteExperiment(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx, "delete experiment"); err != nil {
		return err
	}
	s.experiments = slices.DeleteFunc(s.experiments, func(e port.ExperimentRow) bool { return e.ID == id })
	return nil
}

// InsertVariant stores one variant row.
func (s *Store) InsertVariant(ctx context.Context, row port.VariantRow) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx, "insert experiment variant"); err != nil {
		return err
	}
	s.variants = append(s.variants, row)
	return nil
}

// DeleteVariants removes every variant row of an experiment.
func (s *Store) DeleteVariants(ctx context.Context, experimentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx, "delete experiment variants"); err != nil {
		return err
	}
	s.variants = slices.DeleteFunc(s.variants, func(v port.VariantRow) bool { return v.ExperimentID == experimentID })
	return nil
}
