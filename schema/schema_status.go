package schema

import "time"

// HistoryStatus represents the status of the estimate history store.
type HistoryStatus struct {
	Backend            string           `json:"backend"`
	Connected          bool             `json:"connected"`
	TotalEstimates     int              `json:"total_estimates"`
	LastEstimateID     int64            `json:"last_estimate_id"`
	LastEstimateTime   time.Time        `json:"last_estimate_time"`
	OldestEstimateTime time.Time        `json:"oldest_estimate_time"`
	TableSizes         map[string]int64 `json:"table_sizes"`
}

// EstimateRecord represents a row from the shsat_estimates table.
type EstimateRecord struct {
	EstimateID     int64
	CreatedAt      time.Time
	Curve          string
	MathRaw        int32
	ELARaw         int32
	MathScaled     int32
	ELAScaled      int32
	CompositeScore int32
	Percentage     float64
	Percentile     string
}

// SchoolChanceRecord represents a row from the shsat_school_chances table.
type SchoolChanceRecord struct {
	EstimateID int64
	School     string
	Cutoff     int32
	Chance     int32
	Discovery  string
}
