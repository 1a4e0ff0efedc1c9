// Package memory implements the relational store ports with in-process
// tables. It mirrors the normalized schema row for row, enforces no
// relationships and offers no transactions, so it behaves like the
// PostgreSQL adapter from a caller's point of view. Errors can be injected
// per operation to simulate an unreachable database.
package memory

import (
	"context"
	"slices"
	"sync"

	"marketing-api/internal/core/port"
)

// AllOps makes an injected error apply to every operation.
const AllOps = "*"

type value struct {
	parent   string
	value    string
	position int
}

// Store holds one slice per table. The zero value is not usable; call NewStore.
type Store struct {
	mu sync.RWMutex

	campaigns        []port.CampaignRow
	campaignMetrics  []port.CampaignMetricsRow
	campaignProfiles []value

	profiles      []port.ProfileRow
	demographics  []port.DemographicsRow
	behavior      []port.BehavioralRow
	profileValues map[port.ProfileList][]value

	experiments []port.ExperimentRow
	variants    []port.VariantRow

	brands   []port.BrandRow
	offers   []port.OfferRow
	features []value

	failures map[string]error
	calls    []string
}

var _ port.Store = (*Store)(nil)

// NewStore returns an empty store with no injected failures.
func NewStore() *Store {
	return &Store{
		profileValues: make(map[port.ProfileList][]value),
		failures:      make(map[string]error),
	}
}

// SetError makes op (or every op when op is AllOps) fail with err until
// cleared with a nil err.
func (s *Store) SetError(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.failures, op)
		return
	}
	s.failures[op] = err
}

// Calls returns the operations issued so far, in order.
func (s *Store) Calls() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.calls)
}

// Len returns the number of rows held in table.
func (s *Store) Len(table string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	switch table {
	case "campaigns":
		return len(s.campaigns)
	case "campaign_metrics":
		return len(s.campaignMetrics)
	case "campaign_profiles":
		return len(s.campaignProfiles)
	case "profiles":
		return len(s.profiles)
	case "profile_demographics":
		return len(s.demographics)
	case "profile_behavioral_attributes":
		return len(s.behavior)
	case "profile_locations":
		return len(s.profileValues[port.ProfileLocations])
	case "profile_interests":
		return len(s.profileValues[port.ProfileInterests])
	case "profile_plan_types":
		return len(s.profileValues[port.ProfilePlanTypes])
	case "experiments":
		return len(s.experiments)
	case "experiment_variants":
		return len(s.variants)
	case "brands":
		return len(s.brands)
	case "brand_offers":
		return len(s.offers)
	case "offer_features":
		return len(s.features)
	}
	return 0
}

// Ping fails only when an error is injected for "ping".
func (s *Store) Ping(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.check(ctx, "ping")
}

// check records the call and returns the injected error for op, if any.
// Callers must hold mu.
func (s *Store) check(ctx context.Context, op string) error {
	s.calls = append(s.calls, op)
	if err := ctx.Err(); err != nil {
		return port.Wrap(op, err)
	}
	if err, ok := s.failures[op]; ok {
		return port.Wrap(op, err)
	}
	if err, ok := s.failures[AllOps]; ok {
		return port.Wrap(op, err)
	}
	return nil
}

func values(rows []value, parent string) []string {
	matched := make([]value, 0)
	for _, r := range rows {
		if r.parent == parent {
			matched = append(matched, r)
		}
	}
	slices.SortStableFunc(matched, func(a, b value) int { return a.position - b.position })
	out := make([]string, len(matched))
	for i, r := range matched {
		out[i] = r.value
	}
	return out
}

func without(rows []value, parent string) []value {
	return slices.DeleteFunc(rows, func(r value) bool { return r.parent == parent })
}

func index[T any](rows []T, match func(T) bool) int {
	return slices.IndexFunc(rows, match)
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
