package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shubhk02/MGNREGA-Finding/internal/synth"
	"github.com/Shubhk02/MGNREGA-Finding/pkg/model"
)

// fakeStore is an in-memory Store with the same upsert and
// insert-if-absent semantics as the Mongo accessor.
type fakeStore struct {
	districts map[string][]model.District
	perf      map[string]model.PerformanceRecord

	listErr   error
	findErr   error
	upsertErr error

	upsertCalls int
	saveCalls   int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		districts: make(map[string][]model.District),
		perf:      make(map[string]model.PerformanceRecord),
	}
}

func perfKey(code string, month, year int) string {
	return fmt.Sprintf("%s:%d:%d", code, month, year)
}

func (f *fakeStore) DistrictsByState(_ context.Context, stateCode string) ([]model.District, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := append([]model.District(nil), f.districts[stateCode]...)
	sort.Slice(out, func(i, j int) bool { return out[i].DistrictName < out[j].DistrictName })
	return out, nil
}

func (f *fakeStore) UpsertDistrict(_ context.Context, district model.District) error {
	f.upsertCalls++
	if f.upsertErr != nil {
		return f.upsertErr
	}
	existing := f.districts[district.StateCode]
	for i, d := range existing {
		if d.DistrictCode == district.DistrictCode {
			existing[i].DistrictName = district.DistrictName
			existing[i].DistrictNameHi = district.DistrictNameHi
			return nil
		}
	}
	f.districts[district.StateCode] = append(existing, district)
	return nil
}

func (f *fakeStore) FindPerformance(_ context.Context, code string, month, year int) (*model.PerformanceRecord, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	record, ok := f.perf[perfKey(code, month, year)]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

func (f *fakeStore) SavePerformance(_ context.Context, record model.PerformanceRecord) (*model.PerformanceRecord, error) {
	f.saveCalls++
	key := perfKey(record.DistrictCode, record.Month, record.Year)
	if existing, ok := f.perf[key]; ok {
		return &existing, nil
	}
	f.perf[key] = record
	return &record, nil
}

// fakeCache stores JSON payloads like the Redis layer does
type fakeCache struct {
	entries  map[string][]byte
	ttls     map[string]time.Duration
	disabled bool
}

func newFakeCache() *fakeCache {
	return &fakeCache{
		entries: make(map[string][]byte),
		ttls:    make(map[string]time.Duration),
	}
}

func (f *fakeCache) Get(_ context.Context, key string, dest interface{}) bool {
	if f.disabled {
		return false
	}
	payload, ok := f.entries[key]
	if !ok {
		return false
	}
	return json.Unmarshal(payload, dest) == nil
}

func (f *fakeCache) Set(_ context.Context, key string, value interface{}, ttl time.Duration) {
	if f.disabled {
		return
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return
	}
	f.entries[key] = payload
	f.ttls[key] = ttl
}

// fakeSource returns canned records per month
type fakeSource struct {
	fetchFunc  func(districtCode string, month, year int) model.PerformanceRecord
	fetchCalls int
}

func (f *fakeSource) Fetch(_ context.Context, districtCode string, month, year int) model.PerformanceRecord {
	f.fetchCalls++
	if f.fetchFunc != nil {
		return f.fetchFunc(districtCode, month, year)
	}
	return model.PerformanceRecord{DistrictCode: districtCode, Month: month, Year: year}
}

func newTestService(st Store, c Cache, src PerformanceSource) *DashboardService {
	svc := NewDashboardService(st, c, src)
	svc.now = func() time.Time {
		return time.Date(2024, time.July, 15, 12, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestGetDistrictsSeedsEmptyStore(t *testing.T) {
	st := newFakeStore()
	c := newFakeCache()
	svc := newTestService(st, c, &fakeSource{})

	districts, err := svc.GetDistricts(context.Background(), "UP")
	require.NoError(t, err)
	require.Len(t, districts, 50)

	seen := make(map[string]bool)
	for _, d := range districts {
		assert.Equal(t, "UP", d.StateCode)
		assert.Equal(t, "Uttar Pradesh", d.StateName)
		assert.Regexp(t, `^UP\d{2}$`, d.DistrictCode)
		assert.False(t, seen[d.DistrictCode], "duplicate code %s", d.DistrictCode)
		seen[d.DistrictCode] = true
		assert.NotEmpty(t, d.ID)
	}

	assert.True(t, sort.SliceIsSorted(districts, func(i, j int) bool {
		return districts[i].DistrictName < districts[j].DistrictName
	}))
	assert.Equal(t, 50, st.upsertCalls)
	assert.Contains(t, c.entries, "districts:UP")
	assert.Equal(t, 24*time.Hour, c.ttls["districts:UP"])
}

func TestGetDistrictsSeedingIsIdempotent(t *testing.T) {
	st := newFakeStore()
	c := newFakeCache()
	c.disabled = true
	svc := newTestService(st, c, &fakeSource{})

	first, err := svc.GetDistricts(context.Background(), "UP")
	require.NoError(t, err)

	second, err := svc.GetDistricts(context.Background(), "UP")
	require.NoError(t, err)

	// The second call reads the now-populated store; no further upserts.
	assert.Equal(t, 50, st.upsertCalls)

	codes := func(list []model.District) []string {
		out := make([]string, len(list))
		for i, d := range list {
			out[i] = d.DistrictCode
		}
		return out
	}
	assert.Equal(t, codes(first), codes(second))
}

func TestGetDistrictsServedFromCache(t *testing.T) {
	st := newFakeStore()
	c := newFakeCache()
	svc := newTestService(st, c, &fakeSource{})

	first, err := svc.GetDistricts(context.Background(), "UP")
	require.NoError(t, err)

	// A dead store must not matter once the cache is warm.
	st.listErr = errors.New("store down")
	second, err := svc.GetDistricts(context.Background(), "UP")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGetDistrictsDedupesStoredEntries(t *testing.T) {
	st := newFakeStore()
	st.districts["UP"] = []model.District{
		{DistrictCode: "UP01", DistrictName: "Agra", StateCode: "UP"},
		{DistrictCode: "UP01", DistrictName: "Agra Copy", StateCode: "UP"},
		{DistrictCode: "UP49", DistrictName: "Lucknow", StateCode: "UP"},
	}
	svc := newTestService(st, newFakeCache(), &fakeSource{})

	districts, err := svc.GetDistricts(context.Background(), "UP")
	require.NoError(t, err)
	require.Len(t, districts, 2)
	assert.Equal(t, "Agra", districts[0].DistrictName)
	assert.Equal(t, "Lucknow", districts[1].DistrictName)
}

func TestGetDistrictsNormalizesStateCode(t *testing.T) {
	st := newFakeStore()
	svc := newTestService(st, newFakeCache(), &fakeSource{})

	districts, err := svc.GetDistricts(context.Background(), " up ")
	require.NoError(t, err)
	assert.Len(t, districts, 50)
}

func TestGetDistrictsUnknownState(t *testing.T) {
	svc := newTestService(newFakeStore(), newFakeCache(), &fakeSource{})

	districts, err := svc.GetDistricts(context.Background(), "XX")
	require.NoError(t, err)
	assert.Empty(t, districts)
}

func TestGetStates(t *testing.T) {
	c := newFakeCache()
	svc := newTestService(newFakeStore(), c, &fakeSource{})

	states := svc.GetStates(context.Background())
	assert.Len(t, states, 36)
	assert.Contains(t, c.entries, "states:all")

	assert.Equal(t, states, svc.GetStates(context.Background()))
}

func TestGetCurrentPerformanceSynthesizesAndPersists(t *testing.T) {
	st := newFakeStore()
	c := newFakeCache()
	svc := newTestService(st, c, synth.NewGenerator())

	first, err := svc.GetCurrentPerformance(context.Background(), "UP01")
	require.NoError(t, err)

	assert.Equal(t, "UP01", first.DistrictCode)
	assert.Equal(t, 7, first.Month)
	assert.Equal(t, 2024, first.Year)
	assert.NotEmpty(t, first.ID)
	assert.False(t, first.Timestamp.IsZero())
	assert.Equal(t, 1, st.saveCalls)
	assert.Equal(t, time.Hour, c.ttls["performance:UP01:7:2024"])

	// A repeat inside the cache window is served verbatim with no new write.
	second, err := svc.GetCurrentPerformance(context.Background(), "UP01")
	require.NoError(t, err)
	assert.Equal(t, 1, st.saveCalls)

	firstJSON, _ := json.Marshal(first)
	secondJSON, _ := json.Marshal(second)
	assert.Equal(t, firstJSON, secondJSON)
}

func TestGetCurrentPerformanceUsesStoredRecord(t *testing.T) {
	st := newFakeStore()
	stored := model.PerformanceRecord{
		ID: "existing", DistrictCode: "UP01", Month: 7, Year: 2024, TotalWorkers: 12345,
	}
	st.perf[perfKey("UP01", 7, 2024)] = stored

	src := &fakeSource{}
	svc := newTestService(st, newFakeCache(), src)

	record, err := svc.GetCurrentPerformance(context.Background(), "UP01")
	require.NoError(t, err)
	assert.Equal(t, stored, record)
	assert.Zero(t, src.fetchCalls)
	assert.Zero(t, st.saveCalls)
}

func TestGetCurrentPerformanceStoreErrorSurfaces(t *testing.T) {
	st := newFakeStore()
	st.findErr = errors.New("store down")
	svc := newTestService(st, newFakeCache(), &fakeSource{})

	_, err := svc.GetCurrentPerformance(context.Background(), "UP01")
	assert.Error(t, err)
}

func TestGetCurrentPerformanceNormalizesDistrictCode(t *testing.T) {
	st := newFakeStore()
	svc := newTestService(st, newFakeCache(), synth.NewGenerator())

	record, err := svc.GetCurrentPerformance(context.Background(), " up01 ")
	require.NoError(t, err)
	assert.Equal(t, "UP01", record.DistrictCode)
}

func TestGetHistoricalPerformanceOrderingAndLength(t *testing.T) {
	st := newFakeStore()
	c := newFakeCache()
	svc := newTestService(st, c, synth.NewGenerator())

	history, err := svc.GetHistoricalPerformance(context.Background(), "UP01", 6)
	require.NoError(t, err)
	require.Len(t, history, 6)

	// Oldest first, non-decreasing under the 30-day step policy.
	for i := 1; i < len(history); i++ {
		prev := history[i-1].Year*12 + history[i-1].Month
		curr := history[i].Year*12 + history[i].Month
		assert.LessOrEqual(t, prev, curr)
	}

	// The newest entry is the present month.
	last := history[len(history)-1]
	assert.Equal(t, 7, last.Month)
	assert.Equal(t, 2024, last.Year)

	assert.Equal(t, 6, st.saveCalls)
	assert.Equal(t, 2*time.Hour, c.ttls["history:UP01:6"])
}

func TestGetHistoricalPerformanceCacheHit(t *testing.T) {
	st := newFakeStore()
	svc := newTestService(st, newFakeCache(), synth.NewGenerator())

	first, err := svc.GetHistoricalPerformance(context.Background(), "UP01", 6)
	require.NoError(t, err)

	second, err := svc.GetHistoricalPerformance(context.Background(), "UP01", 6)
	require.NoError(t, err)
	assert.Equal(t, 6, st.saveCalls)

	firstJSON, _ := json.Marshal(first)
	secondJSON, _ := json.Marshal(second)
	assert.Equal(t, firstJSON, secondJSON)
}

func TestGetHistoricalPerformanceRejectsOutOfRange(t *testing.T) {
	svc := newTestService(newFakeStore(), newFakeCache(), &fakeSource{})

	for _, months := range []int{0, -1, 25, 100} {
		_, err := svc.GetHistoricalPerformance(context.Background(), "UP01", months)
		assert.ErrorIs(t, err, ErrInvalidMonthsRange, "months=%d", months)
	}
}

func TestComparePerformanceChanges(t *testing.T) {
	src := &fakeSource{fetchFunc: func(code string, month, year int) model.PerformanceRecord {
		record := model.PerformanceRecord{DistrictCode: code, Month: month, Year: year}
		if month == 7 {
			record.TotalWorkers = 200
			record.WorkCompleted = 150
			record.BudgetSpent = 3000
			record.PersonDaysGenerated = 110
		} else {
			record.TotalWorkers = 100
			record.WorkCompleted = 100
			record.BudgetSpent = 2000
			record.PersonDaysGenerated = 100
		}
		return record
	}}
	svc := newTestService(newFakeStore(), newFakeCache(), src)

	comparison, err := svc.ComparePerformance(context.Background(), "UP01")
	require.NoError(t, err)

	assert.Equal(t, 7, comparison.Current.Month)
	assert.Equal(t, 6, comparison.Previous.Month)
	assert.InDelta(t, 100.0, comparison.Changes.TotalWorkers, 1e-9)
	assert.InDelta(t, 50.0, comparison.Changes.WorkCompleted, 1e-9)
	assert.InDelta(t, 50.0, comparison.Changes.BudgetSpent, 1e-9)
	assert.InDelta(t, 10.0, comparison.Changes.PersonDaysGenerated, 1e-9)
}

func TestComparePerformanceZeroPreviousGuard(t *testing.T) {
	src := &fakeSource{fetchFunc: func(code string, month, year int) model.PerformanceRecord {
		record := model.PerformanceRecord{DistrictCode: code, Month: month, Year: year}
		if month == 7 {
			record.TotalWorkers = 200
			record.WorkCompleted = 150
			record.BudgetSpent = 3000
			record.PersonDaysGenerated = 110
		}
		return record
	}}
	svc := newTestService(newFakeStore(), newFakeCache(), src)

	comparison, err := svc.ComparePerformance(context.Background(), "UP01")
	require.NoError(t, err)

	assert.Zero(t, comparison.Changes.TotalWorkers)
	assert.Zero(t, comparison.Changes.WorkCompleted)
	assert.Zero(t, comparison.Changes.BudgetSpent)
	assert.Zero(t, comparison.Changes.PersonDaysGenerated)
}

func TestComparePerformancePersistsMissingMonths(t *testing.T) {
	st := newFakeStore()
	svc := newTestService(st, newFakeCache(), synth.NewGenerator())

	comparison, err := svc.ComparePerformance(context.Background(), "UP01")
	require.NoError(t, err)

	// Both months were synthesized and persisted before comparing.
	assert.Equal(t, 2, st.saveCalls)
	assert.Contains(t, st.perf, perfKey("UP01", 7, 2024))
	assert.Contains(t, st.perf, perfKey("UP01", 6, 2024))
	assert.NotEmpty(t, comparison.Current.ID)
	assert.NotEmpty(t, comparison.Previous.ID)

	expected := (float64(comparison.Current.TotalWorkers) - float64(comparison.Previous.TotalWorkers)) /
		float64(comparison.Previous.TotalWorkers) * 100
	assert.InDelta(t, expected, comparison.Changes.TotalWorkers, 1e-9)
}

func TestSavePerformanceRaceConvergesOnFirstRecord(t *testing.T) {
	st := newFakeStore()
	svc := newTestService(st, newFakeCache(), synth.NewGenerator())

	first, err := svc.GetCurrentPerformance(context.Background(), "UP01")
	require.NoError(t, err)

	// A second resolve for the same natural key must return the stored
	// record even when the cache is cold.
	record, err := svc.resolvePerformance(context.Background(), "UP01", 7, 2024)
	require.NoError(t, err)
	assert.Equal(t, first.ID, record.ID)
}
