package core

import (
	"fmt"
	"math"

	"github.com/huangsam/shsat/schema"
)

// InvalidInputError reports raw scores outside the section domain.
type InvalidInputError struct {
	Math int
	ELA  int
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("raw scores must be between %d and %d (math=%d, ela=%d)",
		schema.MinRawScore, schema.MaxRawScore, e.Math, e.ELA)
}

// Estimator evaluates raw scores with a fixed curve and cutoff table.
// It holds no mutable state and is safe for concurrent use.
type Estimator struct {
	curve   Curve
	schools schema.SchoolTable
}

// NewEstimator creates an estimator. A nil curve selects the default curve.
func NewEstimator(curve Curve, schools schema.SchoolTable) *Estimator {
	if curve == nil {
		curve = DefaultCurve()
	}
	return &Estimator{curve: curve, schools: schools}
}

// Curve returns the curve used by the estimator.
func (e *Estimator) Curve() Curve { return e.curve }

// Schools returns the cutoff table used by the estimator.
func (e *Estimator) Schools() schema.SchoolTable { return e.schools }

func validRaw(raw int) bool {
	return raw >= schema.MinRawScore && raw <= schema.MaxRawScore
}

// Evaluate computes the full estimate for a pair of raw section scores.
func (e *Estimator) Evaluate(mathRaw, elaRaw int) (schema.Estimate, error) {
	if !validRaw(mathRaw) || !validRaw(elaRaw) {
		return schema.Estimate{}, &InvalidInputError{Math: mathRaw, ELA: elaRaw}
	}

	mathScaled := e.curve.Scale(mathRaw)
	elaScaled := e.curve.Scale(elaRaw)
	composite := mathScaled + elaScaled
	totalCorrect := mathRaw + elaRaw
	percentage := math.Round(float64(totalCorrect)/float64(schema.MaxTotalCorrect)*1000) / 10

	schools := e.schools.Schools()
	perSchool := make([]schema.SchoolChance, len(schools))
	for i, s := range schools {
		perSchool[i] = evaluateSchool(composite, s)
	}

	return schema.Estimate{
		Curve:          e.curve.Name(),
		MathRaw:        mathRaw,
		ELARaw:         elaRaw,
		MathScaled:     mathScaled,
		ELAScaled:      elaScaled,
		TotalCorrect:   totalCorrect,
		Percentage:     percentage,
		PercentClass:   ClassifyPercentage(percentage),
		CompositeScore: composite,
		CompositeClass: ClassifyComposite(composite),
		Percentile:     PercentileBand(composite),
		PerSchool:      perSchool,
	}, nil
}
