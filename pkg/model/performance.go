package model

import "time"

// PerformanceRecord represents one district's MGNREGA metrics for a calendar month
type PerformanceRecord struct {
	ID                  string    `bson:"id" json:"id"`
	DistrictCode        string    `bson:"district_code" json:"district_code"`
	Month               int       `bson:"month" json:"month"`
	Year                int       `bson:"year" json:"year"`
	TotalWorkers        int       `bson:"total_workers" json:"total_workers"`
	WorkCompleted       int       `bson:"work_completed" json:"work_completed"`
	WorkOngoing         int       `bson:"work_ongoing" json:"work_ongoing"`
	AverageWage         float64   `bson:"average_wage" json:"average_wage"`
	BudgetAllocated     float64   `bson:"budget_allocated" json:"budget_allocated"`
	BudgetSpent         float64   `bson:"budget_spent" json:"budget_spent"`
	PersonDaysGenerated int       `bson:"person_days_generated" json:"person_days_generated"`
	Timestamp           time.Time `bson:"timestamp" json:"timestamp"`
}

// PerformanceChanges holds month-over-month percentage deltas
type PerformanceChanges struct {
	TotalWorkers        float64 `json:"total_workers"`
	WorkCompleted       float64 `json:"work_completed"`
	BudgetSpent         float64 `json:"budget_spent"`
	PersonDaysGenerated float64 `json:"person_days_generated"`
}

// PerformanceComparison pairs the two adjacent months with their deltas
type PerformanceComparison struct {
	Current  PerformanceRecord  `json:"current"`
	Previous PerformanceRecord  `json:"previous"`
	Changes  PerformanceChanges `json:"changes"`
}
