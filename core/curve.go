package core

import (
	"fmt"
	"math"

	"github.com/huangsam/shsat/schema"
)

// Curve converts a raw section score into a scaled section score.
type Curve interface {
	Name() schema.CurveName
	Scale(raw int) int
}

// linearCurve maps raw 10..57 onto 100..350 in a straight line.
type linearCurve struct{}

// Raw scores at or below this point get the minimum scaled score.
const linearFloorRaw = 10

func (linearCurve) Name() schema.CurveName { return schema.LinearCurve }

func (linearCurve) Scale(raw int) int {
	if raw <= linearFloorRaw {
		return schema.MinScaledScore
	}
	if raw >= schema.MaxRawScore {
		return schema.MaxScaledScore
	}
	span := float64(schema.MaxScaledScore - schema.MinScaledScore)
	frac := float64(raw-linearFloorRaw) / float64(schema.MaxRawScore-linearFloorRaw)
	return int(math.Round(float64(schema.MinScaledScore) + frac*span))
}

// blendedCurve mixes a sine wave with a quadratic term.
// It is not monotonic and dips below the minimum scaled score for low raw scores.
type blendedCurve struct{}

func (blendedCurve) Name() schema.CurveName { return schema.BlendedCurve }

func (blendedCurve) Scale(raw int) int {
	if raw <= schema.MinRawScore {
		return schema.MinScaledScore
	}
	if raw >= schema.MaxRawScore {
		return schema.MaxScaledScore
	}
	x := float64(raw) / float64(schema.MaxRawScore)
	curve := 0.5*math.Sin((x-0.5)*math.Pi) + 0.5*x*x
	span := float64(schema.MaxScaledScore - schema.MinScaledScore)
	return int(math.Round(float64(schema.MinScaledScore) + curve*span))
}

var curveRegistry = map[schema.CurveName]Curve{
	schema.LinearCurve:  linearCurve{},
	schema.BlendedCurve: blendedCurve{},
}

// CurveFor returns the registered curve for a name.
func CurveFor(name schema.CurveName) (Curve, error) {
	c, ok := curveRegistry[name]
	if !ok {
		return nil, fmt.Errorf("unknown curve: %s", name)
	}
	return c, nil
}

// DefaultCurve returns the canonical linear curve.
func DefaultCurve() Curve { return linearCurve{} }

// ScaleTable lists the scaled score for every raw score in the section domain.
func ScaleTable(c Curve) schema.CurveTable {
	rows := make([]schema.CurveRow, 0, schema.MaxRawScore-schema.MinRawScore+1)
	for raw := schema.MinRawScore; raw <= schema.MaxRawScore; raw++ {
		rows = append(rows, schema.CurveRow{Raw: raw, Scaled: c.Scale(raw)})
	}
	return schema.CurveTable{Curve: c.Name(), Rows: rows}
}
