// Package synth generates plausible MGNREGA performance figures for months
// that have no stored or upstream record.
package synth

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"
	"math/rand"

	"github.com/Shubhk02/MGNREGA-Finding/pkg/model"
)

// Generator produces deterministic performance records. The same
// (district, month, year) triple always yields the same figures, so a
// month re-queried before its store write lands cannot change value.
// Identity and timestamp are stamped later, at the persistence boundary.
type Generator struct{}

// NewGenerator creates a new synthetic data generator
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate builds the performance record for one district month
func (g *Generator) Generate(districtCode string, month, year int) model.PerformanceRecord {
	rng := rand.New(rand.NewSource(seed(districtCode, month, year)))

	return model.PerformanceRecord{
		DistrictCode:        districtCode,
		Month:               month,
		Year:                year,
		TotalWorkers:        intBetween(rng, 5000, 50000),
		WorkCompleted:       intBetween(rng, 50, 200),
		WorkOngoing:         intBetween(rng, 10, 100),
		AverageWage:         round2(floatBetween(rng, 180.0, 250.0)),
		BudgetAllocated:     round2(floatBetween(rng, 10000000, 50000000)),
		BudgetSpent:         round2(floatBetween(rng, 5000000, 45000000)),
		PersonDaysGenerated: intBetween(rng, 100000, 500000),
	}
}

// Fetch implements the performance source contract for the mock-data strategy
func (g *Generator) Fetch(_ context.Context, districtCode string, month, year int) model.PerformanceRecord {
	return g.Generate(districtCode, month, year)
}

func seed(districtCode string, month, year int) int64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%s%d%d", districtCode, month, year)
	return int64(h.Sum64())
}

func intBetween(rng *rand.Rand, min, max int) int {
	return min + rng.Intn(max-min+1)
}

func floatBetween(rng *rand.Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
