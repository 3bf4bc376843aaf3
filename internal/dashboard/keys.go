package dashboard

import (
	"fmt"
	"time"
)

// Cache keys are composed in one place so they cannot drift apart across
// the pipeline operations.
const statesKey = "states:all"

func districtsKey(stateCode string) string {
	return fmt.Sprintf("districts:%s", stateCode)
}

func performanceKey(districtCode string, month, year int) string {
	return fmt.Sprintf("performance:%s:%d:%d", districtCode, month, year)
}

func historyKey(districtCode string, months int) string {
	return fmt.Sprintf("history:%s:%d", districtCode, months)
}

// Expiry policy per query shape: reference data barely changes, the
// current month keeps filling in, history falls in between.
const (
	statesCacheTTL      = 24 * time.Hour
	districtsCacheTTL   = 24 * time.Hour
	performanceCacheTTL = time.Hour
	historyCacheTTL     = 2 * time.Hour
)
