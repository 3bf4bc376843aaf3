package model

// StatesResponse wraps the list of states returned by the API
type StatesResponse struct {
	Success bool    `json:"success"`
	Data    []State `json:"data"`
}

// DistrictsResponse wraps the list of districts returned by the API
type DistrictsResponse struct {
	Success bool       `json:"success"`
	Data    []District `json:"data"`
}

// PerformanceResponse wraps a single performance record
type PerformanceResponse struct {
	Success bool              `json:"success"`
	Data    PerformanceRecord `json:"data"`
}

// HistoricalResponse wraps an oldest-first series of performance records
type HistoricalResponse struct {
	Success bool                `json:"success"`
	Data    []PerformanceRecord `json:"data"`
}

// ComparisonResponse wraps a month-over-month comparison
type ComparisonResponse struct {
	Success bool                  `json:"success"`
	Data    PerformanceComparison `json:"data"`
}
