package core

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/shsat/internal/contract"
	"github.com/huangsam/shsat/internal/history"
	"github.com/huangsam/shsat/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testConfig() *contract.Config {
	return &contract.Config{
		Curve:   schema.LinearCurve,
		Output:  schema.JSONOut,
		Schools: schema.DefaultSchoolTable(),
	}
}

// TestGetEstimateResultRecordsHistory tests that a successful estimate is stored.
func TestGetEstimateResultRecordsHistory(t *testing.T) {
	store := &history.MockHistoryStore{}
	store.On("RecordEstimate", mock.AnythingOfType("time.Time"), mock.MatchedBy(func(est schema.Estimate) bool {
		return est.CompositeScore == 546 && len(est.PerSchool) == 9
	})).Return(int64(1), nil)
	mgr := &history.MockHistoryManager{}
	mgr.On("GetHistoryStore").Return(store)

	est, err := GetEstimateResult(context.Background(), testConfig(), mgr, 40, 45)
	require.NoError(t, err)
	assert.Equal(t, 546, est.CompositeScore)

	mgr.AssertExpectations(t)
	store.AssertExpectations(t)
}

// TestGetEstimateResultRecordingFailure tests that a store failure never fails the estimate.
func TestGetEstimateResultRecordingFailure(t *testing.T) {
	store := &history.MockHistoryStore{}
	store.On("RecordEstimate", mock.Anything, mock.Anything).Return(int64(0), errors.New("disk full"))
	mgr := &history.MockHistoryManager{}
	mgr.On("GetHistoryStore").Return(store)

	est, err := GetEstimateResult(context.Background(), testConfig(), mgr, 57, 57)
	require.NoError(t, err)
	assert.Equal(t, 700, est.CompositeScore)
	store.AssertExpectations(t)
}

// TestGetEstimateResultInvalidInput tests that rejected input is never recorded.
func TestGetEstimateResultInvalidInput(t *testing.T) {
	mgr := &history.MockHistoryManager{}

	_, err := GetEstimateResult(context.Background(), testConfig(), mgr, 58, 10)
	var invalid *InvalidInputError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, 58, invalid.Math)

	mgr.AssertNotCalled(t, "GetHistoryStore")
}

// TestGetEstimateResultWithoutHistory tests nil managers and nil stores.
func TestGetEstimateResultWithoutHistory(t *testing.T) {
	_, err := GetEstimateResult(context.Background(), testConfig(), nil, 40, 45)
	assert.NoError(t, err)

	mgr := &history.MockHistoryManager{}
	mgr.On("GetHistoryStore").Return(nil)
	_, err = GetEstimateResult(context.Background(), testConfig(), mgr, 40, 45)
	assert.NoError(t, err)
	mgr.AssertExpectations(t)
}

// TestGetEstimateResultCancelled tests that a cancelled context stops evaluation.
func TestGetEstimateResultCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := GetEstimateResult(ctx, testConfig(), nil, 40, 45)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestGetEstimateResultUnknownCurve tests that a bad curve is reported.
func TestGetEstimateResultUnknownCurve(t *testing.T) {
	cfg := testConfig()
	cfg.Curve = "cubic"

	_, err := GetEstimateResult(context.Background(), cfg, nil, 40, 45)
	assert.ErrorContains(t, err, "unknown curve: cubic")
}

// TestExecuteEstimate tests the main estimate entry point with coerced inputs.
func TestExecuteEstimate(t *testing.T) {
	store := &history.MockHistoryStore{}
	store.On("RecordEstimate", mock.AnythingOfType("time.Time"), mock.MatchedBy(func(est schema.Estimate) bool {
		return est.MathRaw == 40 && est.ELARaw == 0
	})).Return(int64(7), nil)
	mgr := &history.MockHistoryManager{}
	mgr.On("GetHistoryStore").Return(store)

	cfg := testConfig()
	cfg.MathInput = "40 questions"
	cfg.ELAInput = "abc"
	cfg.OutputFile = filepath.Join(t.TempDir(), "estimate.json")

	require.NoError(t, ExecuteEstimate(context.Background(), cfg, mgr))
	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"math_raw": 40`)
	assert.Contains(t, string(data), `"ela_raw": 0`)
	store.AssertExpectations(t)
}

// TestExecuteEstimateOutOfRange tests that coerced out-of-range input is rejected.
func TestExecuteEstimateOutOfRange(t *testing.T) {
	cfg := testConfig()
	cfg.MathInput = "-1"
	cfg.ELAInput = "20"

	err := ExecuteEstimate(context.Background(), cfg, nil)
	var invalid *InvalidInputError
	assert.ErrorAs(t, err, &invalid)
}

// TestExecuteCurve tests printing the scale table.
func TestExecuteCurve(t *testing.T) {
	cfg := testConfig()
	cfg.Output = schema.CSVOut
	cfg.OutputFile = filepath.Join(t.TempDir(), "curve.csv")

	require.NoError(t, ExecuteCurve(context.Background(), cfg, nil))
	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "linear,40,260\n")
	assert.Contains(t, string(data), "linear,57,350\n")
}

// TestExecuteSchools tests printing the configured cutoff table.
func TestExecuteSchools(t *testing.T) {
	table, err := schema.NewSchoolTable([]schema.SchoolCutoff{{Name: "Test School", Cutoff: 500}})
	require.NoError(t, err)
	cfg := testConfig()
	cfg.Schools = table
	cfg.Output = schema.CSVOut
	cfg.OutputFile = filepath.Join(t.TempDir(), "schools.csv")

	require.NoError(t, ExecuteSchools(context.Background(), cfg, nil))
	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	assert.Equal(t, "rank,school,cutoff\n1,Test School,500\n", string(data))
}

// TestExecutorFuncSignatures ensures every entry point fits the command wiring.
func TestExecutorFuncSignatures(t *testing.T) {
	executors := []ExecutorFunc{ExecuteEstimate, ExecuteCurve, ExecuteSchools}
	assert.Len(t, executors, 3)
}
