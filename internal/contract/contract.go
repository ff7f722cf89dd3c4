// Package contract provides interfaces and shared utilities for the estimator's internal architecture.
package contract

import (
	"time"

	"github.com/huangsam/shsat/schema"
)

// HistoryManager defines the interface for managing the estimate history store.
// This allows the history layer to be mocked for testing.
type HistoryManager interface {
	GetHistoryStore() HistoryStore
}

// HistoryStore defines the interface for recording estimates and reading them back.
type HistoryStore interface {
	// RecordEstimate stores an estimate and its per-school rows, returning the new estimate ID
	RecordEstimate(createdAt time.Time, est schema.Estimate) (int64, error)

	// GetStatus returns status information about the history store
	GetStatus() (schema.HistoryStatus, error)

	// GetAllEstimates returns every recorded estimate ordered by ID
	GetAllEstimates() ([]schema.EstimateRecord, error)

	// GetAllSchoolChances returns every recorded school row ordered by estimate ID
	GetAllSchoolChances() ([]schema.SchoolChanceRecord, error)

	// Close closes the underlying connection
	Close() error
}
