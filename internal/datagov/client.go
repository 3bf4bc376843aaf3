// Package datagov fetches MGNREGA performance figures from the data.gov.in
// open data API. Every failure path resolves to synthesized data; callers
// never see an error from this package.
package datagov

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Shubhk02/MGNREGA-Finding/internal/synth"
	"github.com/Shubhk02/MGNREGA-Finding/pkg/model"
)

// ClientConfig holds data.gov.in API settings
type ClientConfig struct {
	BaseURL    string
	APIKey     string
	ResourceID string
}

// Client queries the data.gov.in resource API for district performance
// records, falling back to the synthesizer whenever the upstream call
// fails or returns nothing usable.
type Client struct {
	httpClient *http.Client
	config     ClientConfig
	fallback   *synth.Generator
}

// NewClient creates a new data.gov.in client
func NewClient(config ClientConfig, fallback *synth.Generator) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		config:   config,
		fallback: fallback,
	}
}

// recordEnvelope mirrors the resource API response shape
type recordEnvelope struct {
	Records []map[string]interface{} `json:"records"`
}

// Field names vary across MGNREGA resource revisions; the first alias
// present and non-empty wins.
var (
	workerAliases    = []string{"total_workers", "total_no_of_workers", "registered_workers"}
	completedAliases = []string{"work_completed", "works_completed", "completed_works"}
	ongoingAliases   = []string{"work_ongoing", "ongoing_works", "works_in_progress"}
	wageAliases      = []string{"average_wage", "avg_wage_rate", "wage_rate"}
	allocatedAliases = []string{"budget_allocated", "total_budget", "sanctioned_amount"}
	spentAliases     = []string{"budget_spent", "total_expenditure", "expenditure"}
	personDayAliases = []string{"person_days_generated", "persondays_generated", "total_persondays"}
)

// Fetch returns the performance record for one district month. It makes a
// single bounded-time request; there are no retries.
func (c *Client) Fetch(ctx context.Context, districtCode string, month, year int) model.PerformanceRecord {
	record, err := c.fetchRemote(ctx, districtCode, month, year)
	if err != nil {
		logrus.WithError(err).Warnf("data.gov.in fetch failed for %s %d/%d, using synthesized data", districtCode, month, year)
		return c.fallback.Generate(districtCode, month, year)
	}
	return record
}

func (c *Client) fetchRemote(ctx context.Context, districtCode string, month, year int) (model.PerformanceRecord, error) {
	var zero model.PerformanceRecord

	query := url.Values{}
	query.Set("api-key", c.config.APIKey)
	query.Set("format", "json")
	query.Set("limit", "10")
	query.Set("filters[district_code]", districtCode)
	query.Set("filters[month]", strconv.Itoa(month))
	query.Set("filters[year]", strconv.Itoa(year))
	apiURL := fmt.Sprintf("%s/%s?%s", c.config.BaseURL, c.config.ResourceID, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return zero, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return zero, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return zero, fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	var envelope recordEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return zero, fmt.Errorf("failed to parse response: %w", err)
	}
	if len(envelope.Records) == 0 {
		return zero, fmt.Errorf("no records for district %s %d/%d", districtCode, month, year)
	}

	raw := envelope.Records[0]
	return model.PerformanceRecord{
		DistrictCode:        districtCode,
		Month:               month,
		Year:                year,
		TotalWorkers:        intField(raw, workerAliases),
		WorkCompleted:       intField(raw, completedAliases),
		WorkOngoing:         intField(raw, ongoingAliases),
		AverageWage:         floatField(raw, wageAliases),
		BudgetAllocated:     floatField(raw, allocatedAliases),
		BudgetSpent:         floatField(raw, spentAliases),
		PersonDaysGenerated: intField(raw, personDayAliases),
	}, nil
}

func intField(record map[string]interface{}, aliases []string) int {
	return int(floatField(record, aliases))
}

func floatField(record map[string]interface{}, aliases []string) float64 {
	for _, alias := range aliases {
		value, ok := record[alias]
		if !ok {
			continue
		}
		switch v := value.(type) {
		case float64:
			return v
		case string:
			if v == "" {
				continue
			}
			if parsed, err := strconv.ParseFloat(v, 64); err == nil {
				return parsed
			}
		}
	}
	return 0
}
