// Package dashboard implements the read-through pipeline behind every API
// query: check the cache, check the persistent store, fetch or synthesize
// what is missing, persist it, fill the cache, respond.
package dashboard

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Shubhk02/MGNREGA-Finding/internal/refdata"
	"github.com/Shubhk02/MGNREGA-Finding/pkg/model"
)

// ErrInvalidMonthsRange rejects history requests outside the 1-24 window
var ErrInvalidMonthsRange = errors.New("months must be between 1 and 24")

// Store is the persistent store accessor used by the pipeline
type Store interface {
	DistrictsByState(ctx context.Context, stateCode string) ([]model.District, error)
	UpsertDistrict(ctx context.Context, district model.District) error
	FindPerformance(ctx context.Context, districtCode string, month, year int) (*model.PerformanceRecord, error)
	SavePerformance(ctx context.Context, record model.PerformanceRecord) (*model.PerformanceRecord, error)
}

// Cache is the best-effort key-value layer in front of the store
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) bool
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration)
}

// PerformanceSource supplies a record for a district month that has none
// stored. Implementations must always return a valid record; the mock
// strategy synthesizes one, the data.gov.in strategy falls back to the
// synthesizer internally.
type PerformanceSource interface {
	Fetch(ctx context.Context, districtCode string, month, year int) model.PerformanceRecord
}

// DashboardService orchestrates cache, store and performance source
type DashboardService struct {
	store  Store
	cache  Cache
	source PerformanceSource

	// now is swapped out in tests for calendar-sensitive paths
	now func() time.Time
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(store Store, cache Cache, source PerformanceSource) *DashboardService {
	return &DashboardService{
		store:  store,
		cache:  cache,
		source: source,
		now:    time.Now,
	}
}

// GetStates returns all Indian states from the static reference tables
func (s *DashboardService) GetStates(ctx context.Context) []model.State {
	var states []model.State
	if s.cache.Get(ctx, statesKey, &states) {
		return states
	}

	for _, st := range refdata.States() {
		states = append(states, model.State{Code: st.Code, Name: st.Name, NameHi: st.NameHi})
	}

	s.cache.Set(ctx, statesKey, states, statesCacheTTL)
	return states
}

// GetDistricts returns the districts of a state sorted by name, seeding
// the store from the reference tables when it holds none.
func (s *DashboardService) GetDistricts(ctx context.Context, stateCode string) ([]model.District, error) {
	stateCode = normalizeCode(stateCode)
	key := districtsKey(stateCode)

	var districts []model.District
	if s.cache.Get(ctx, key, &districts) {
		return districts, nil
	}

	stored, err := s.store.DistrictsByState(ctx, stateCode)
	if err != nil {
		// A failed read falls through to seeding; the reference tables
		// still answer the query.
		logrus.WithError(err).Warnf("District read failed for state %s, falling back to reference data", stateCode)
		stored = nil
	}
	districts = dedupeDistricts(stored)

	if len(districts) == 0 {
		districts = s.seedDistricts(ctx, stateCode)
	}

	s.cache.Set(ctx, key, districts, districtsCacheTTL)
	return districts, nil
}

// seedDistricts loads the static reference list for a state, normalizes it
// and upserts every entry. Individual upsert failures are logged and
// skipped so one bad write cannot abort the batch.
func (s *DashboardService) seedDistricts(ctx context.Context, stateCode string) []model.District {
	entries := refdata.DistrictsForState(stateCode)
	if len(entries) == 0 {
		return []model.District{}
	}

	state, _ := refdata.StateByCode(stateCode)

	seen := make(map[string]bool, len(entries))
	districts := make([]model.District, 0, len(entries))
	for _, entry := range entries {
		code := normalizeCode(entry.Code)
		if code == "" || seen[code] {
			continue
		}
		seen[code] = true

		lat, lng := entry.Latitude, entry.Longitude
		district := model.District{
			ID:             uuid.NewString(),
			DistrictCode:   code,
			DistrictName:   strings.TrimSpace(entry.Name),
			DistrictNameHi: strings.TrimSpace(entry.NameHi),
			StateCode:      stateCode,
			StateName:      state.Name,
			StateNameHi:    state.NameHi,
			Latitude:       &lat,
			Longitude:      &lng,
		}

		if err := s.store.UpsertDistrict(ctx, district); err != nil {
			logrus.WithError(err).Warnf("Error seeding district %s", code)
		}
		districts = append(districts, district)
	}

	sort.Slice(districts, func(i, j int) bool {
		return districts[i].DistrictName < districts[j].DistrictName
	})
	return districts
}

// GetCurrentPerformance returns the record for the present calendar month
func (s *DashboardService) GetCurrentPerformance(ctx context.Context, districtCode string) (model.PerformanceRecord, error) {
	districtCode = normalizeCode(districtCode)
	now := s.now().UTC()
	key := performanceKey(districtCode, int(now.Month()), now.Year())

	var record model.PerformanceRecord
	if s.cache.Get(ctx, key, &record) {
		return record, nil
	}

	record, err := s.resolvePerformance(ctx, districtCode, int(now.Month()), now.Year())
	if err != nil {
		return model.PerformanceRecord{}, err
	}

	s.cache.Set(ctx, key, record, performanceCacheTTL)
	return record, nil
}

// GetHistoricalPerformance returns the last months records, oldest first.
// Months are stepped back in approximate 30-day increments, matching the
// key format of the per-month cache entries and the compare endpoint.
func (s *DashboardService) GetHistoricalPerformance(ctx context.Context, districtCode string, months int) ([]model.PerformanceRecord, error) {
	if months < 1 || months > 24 {
		return nil, ErrInvalidMonthsRange
	}
	districtCode = normalizeCode(districtCode)
	key := historyKey(districtCode, months)

	var history []model.PerformanceRecord
	if s.cache.Get(ctx, key, &history) {
		return history, nil
	}

	now := s.now().UTC()
	for i := 0; i < months; i++ {
		date := now.Add(-time.Duration(30*i) * 24 * time.Hour)
		record, err := s.resolvePerformance(ctx, districtCode, int(date.Month()), date.Year())
		if err != nil {
			return nil, err
		}
		history = append(history, record)
	}

	// Generated newest first, returned oldest first.
	for i, j := 0, len(history)-1; i < j; i, j = i+1, j-1 {
		history[i], history[j] = history[j], history[i]
	}

	s.cache.Set(ctx, key, history, historyCacheTTL)
	return history, nil
}

// ComparePerformance compares the present month against the previous one
func (s *DashboardService) ComparePerformance(ctx context.Context, districtCode string) (model.PerformanceComparison, error) {
	districtCode = normalizeCode(districtCode)
	now := s.now().UTC()
	prev := now.Add(-30 * 24 * time.Hour)

	current, err := s.resolvePerformance(ctx, districtCode, int(now.Month()), now.Year())
	if err != nil {
		return model.PerformanceComparison{}, err
	}

	previous, err := s.resolvePerformance(ctx, districtCode, int(prev.Month()), prev.Year())
	if err != nil {
		return model.PerformanceComparison{}, err
	}

	return model.PerformanceComparison{
		Current:  current,
		Previous: previous,
		Changes: model.PerformanceChanges{
			TotalWorkers:        pctChange(float64(current.TotalWorkers), float64(previous.TotalWorkers)),
			WorkCompleted:       pctChange(float64(current.WorkCompleted), float64(previous.WorkCompleted)),
			BudgetSpent:         pctChange(current.BudgetSpent, previous.BudgetSpent),
			PersonDaysGenerated: pctChange(float64(current.PersonDaysGenerated), float64(previous.PersonDaysGenerated)),
		},
	}, nil
}

// resolvePerformance returns the stored record for a district month,
// creating it from the performance source on first query.
func (s *DashboardService) resolvePerformance(ctx context.Context, districtCode string, month, year int) (model.PerformanceRecord, error) {
	existing, err := s.store.FindPerformance(ctx, districtCode, month, year)
	if err != nil {
		return model.PerformanceRecord{}, err
	}
	if existing != nil {
		return *existing, nil
	}

	record := s.source.Fetch(ctx, districtCode, month, year)
	record.ID = uuid.NewString()
	record.Timestamp = s.now().UTC()

	stored, err := s.store.SavePerformance(ctx, record)
	if err != nil {
		return model.PerformanceRecord{}, err
	}
	return *stored, nil
}

// dedupeDistricts keeps the first occurrence of each normalized district
// code and drops entries with no code at all.
func dedupeDistricts(districts []model.District) []model.District {
	seen := make(map[string]bool, len(districts))
	out := make([]model.District, 0, len(districts))
	for _, d := range districts {
		code := normalizeCode(d.DistrictCode)
		if code == "" || seen[code] {
			continue
		}
		seen[code] = true
		d.DistrictCode = code
		out = append(out, d)
	}
	return out
}

// pctChange computes a month-over-month delta; a zero previous value means
// no meaningful baseline, so the change is reported as zero by policy.
func pctChange(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
