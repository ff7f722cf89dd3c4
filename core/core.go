// Package core has core logic for curves, estimates and school outlooks.
package core

import (
	"context"
	"fmt"
	"time"

	"github.com/huangsam/shsat/internal/contract"
	"github.com/huangsam/shsat/internal/outwriter"
	"github.com/huangsam/shsat/schema"
)

// ExecutorFunc defines the function signature for executing the different commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, mgr contract.HistoryManager) error

// NewEstimatorFromConfig builds an estimator from the configured curve and cutoff table.
func NewEstimatorFromConfig(cfg *contract.Config) (*Estimator, error) {
	curve, err := CurveFor(cfg.Curve)
	if err != nil {
		return nil, err
	}
	return NewEstimator(curve, cfg.Schools), nil
}

// GetEstimateResult evaluates a pair of raw scores and records the estimate in history.
// Recording failures are logged as warnings and never fail the estimate.
func GetEstimateResult(ctx context.Context, cfg *contract.Config, mgr contract.HistoryManager, mathRaw, elaRaw int) (schema.Estimate, error) {
	if err := ctx.Err(); err != nil {
		return schema.Estimate{}, err
	}
	estimator, err := NewEstimatorFromConfig(cfg)
	if err != nil {
		return schema.Estimate{}, err
	}
	est, err := estimator.Evaluate(mathRaw, elaRaw)
	if err != nil {
		return schema.Estimate{}, err
	}
	recordEstimate(mgr, est)
	return est, nil
}

// ExecuteEstimate coerces the configured inputs, evaluates them and prints the estimate.
// It serves as the main entry point for the 'estimate' command.
func ExecuteEstimate(ctx context.Context, cfg *contract.Config, mgr contract.HistoryManager) error {
	mathRaw := contract.ParseRawScore(cfg.MathInput)
	elaRaw := contract.ParseRawScore(cfg.ELAInput)
	est, err := GetEstimateResult(ctx, cfg, mgr, mathRaw, elaRaw)
	if err != nil {
		return err
	}
	return outwriter.PrintEstimate(est, cfg)
}

// ExecuteCurve prints the raw-to-scaled table of the configured curve.
func ExecuteCurve(_ context.Context, cfg *contract.Config, _ contract.HistoryManager) error {
	curve, err := CurveFor(cfg.Curve)
	if err != nil {
		return err
	}
	return outwriter.PrintCurve(ScaleTable(curve), cfg)
}

// ExecuteSchools prints the configured cutoff table.
func ExecuteSchools(_ context.Context, cfg *contract.Config, _ contract.HistoryManager) error {
	return outwriter.PrintSchools(cfg.Schools.Schools(), cfg)
}

// recordEstimate stores the estimate when a history store is configured.
func recordEstimate(mgr contract.HistoryManager, est schema.Estimate) {
	if mgr == nil {
		return
	}
	store := mgr.GetHistoryStore()
	if store == nil {
		return
	}
	if _, err := store.RecordEstimate(time.Now(), est); err != nil {
		contract.LogWarn(fmt.Sprintf("History recording failed for math=%d ela=%d", est.MathRaw, est.ELARaw), err)
	}
}
