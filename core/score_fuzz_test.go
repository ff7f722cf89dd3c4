package core

import (
	"testing"

	"github.com/huangsam/shsat/schema"
)

// FuzzEvaluate fuzzes Evaluate with random raw scores on both curves.
func FuzzEvaluate(f *testing.F) {
	seeds := [][2]int{{0, 0}, {57, 57}, {40, 45}, {-1, 0}, {0, 58}, {10, 11}}
	for _, s := range seeds {
		f.Add(s[0], s[1], false)
		f.Add(s[0], s[1], true)
	}

	table := schema.DefaultSchoolTable()
	f.Fuzz(func(t *testing.T, mathRaw, elaRaw int, blended bool) {
		var c Curve = linearCurve{}
		if blended {
			c = blendedCurve{}
		}
		est, err := NewEstimator(c, table).Evaluate(mathRaw, elaRaw)

		inRange := validRaw(mathRaw) && validRaw(elaRaw)
		if !inRange {
			if err == nil {
				t.Fatalf("Evaluate(%d, %d) accepted out-of-range input", mathRaw, elaRaw)
			}
			return
		}
		if err != nil {
			t.Fatalf("Evaluate(%d, %d) failed: %v", mathRaw, elaRaw, err)
		}
		if est.CompositeScore != est.MathScaled+est.ELAScaled {
			t.Fatalf("composite %d != %d + %d", est.CompositeScore, est.MathScaled, est.ELAScaled)
		}
		if est.Percentage < 0 || est.Percentage > 100 {
			t.Fatalf("percentage out of range: %v", est.Percentage)
		}
		if len(est.PerSchool) != table.Len() {
			t.Fatalf("expected %d schools, got %d", table.Len(), len(est.PerSchool))
		}
		for _, s := range est.PerSchool {
			if s.Chance < 0 || s.Chance > 100 {
				t.Fatalf("chance out of range for %s: %d", s.School, s.Chance)
			}
		}
		if !blended && (est.CompositeScore < schema.MinCompositeScore || est.CompositeScore > schema.MaxCompositeScore) {
			t.Fatalf("linear composite out of range: %d", est.CompositeScore)
		}
	})
}

// FuzzLinearCurve checks the linear curve stays within the scaled range for any input.
func FuzzLinearCurve(f *testing.F) {
	for _, seed := range []int{-100, 0, 10, 11, 56, 57, 1000} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, raw int) {
		scaled := linearCurve{}.Scale(raw)
		if scaled < schema.MinScaledScore || scaled > schema.MaxScaledScore {
			t.Fatalf("Scale(%d) = %d out of range", raw, scaled)
		}
	})
}
