package history

import (
	"time"

	"github.com/huangsam/shsat/internal/contract"
	"github.com/huangsam/shsat/schema"
	"github.com/stretchr/testify/mock"
)

// MockHistoryManager is a mock implementation of HistoryManager for testing.
type MockHistoryManager struct {
	mock.Mock
}

var _ contract.HistoryManager = &MockHistoryManager{} // Compile-time check

// GetHistoryStore implements the HistoryManager interface.
func (m *MockHistoryManager) GetHistoryStore() contract.HistoryStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.HistoryStore)
	return store
}

// MockHistoryStore is a mock implementation of HistoryStore for testing.
type MockHistoryStore struct {
	mock.Mock
}

var _ contract.HistoryStore = &MockHistoryStore{} // Compile-time check

// RecordEstimate implements the HistoryStore interface.
func (m *MockHistoryStore) RecordEstimate(createdAt time.Time, est schema.Estimate) (int64, error) {
	args := m.Called(createdAt, est)
	return args.Get(0).(int64), args.Error(1)
}

// GetStatus implements the HistoryStore interface.
func (m *MockHistoryStore) GetStatus() (schema.HistoryStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.HistoryStatus), args.Error(1)
}

// GetAllEstimates implements the HistoryStore interface.
func (m *MockHistoryStore) GetAllEstimates() ([]schema.EstimateRecord, error) {
	args := m.Called()
	records, _ := args.Get(0).([]schema.EstimateRecord)
	return records, args.Error(1)
}

// GetAllSchoolChances implements the HistoryStore interface.
func (m *MockHistoryStore) GetAllSchoolChances() ([]schema.SchoolChanceRecord, error) {
	args := m.Called()
	records, _ := args.Get(0).([]schema.SchoolChanceRecord)
	return records, args.Error(1)
}

// Close implements the HistoryStore interface.
func (m *MockHistoryStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
