package core

import (
	"testing"

	"github.com/huangsam/shsat/schema"
	"github.com/stretchr/testify/assert"
)

func TestPercentileBand(t *testing.T) {
	tests := []struct {
		composite int
		expected  string
	}{
		{700, "99th percentile+"},
		{650, "99th percentile+"},
		{649, "95th–98th percentile"},
		{600, "95th–98th percentile"},
		{599, "85th–94th percentile"},
		{550, "85th–94th percentile"},
		{549, "70th–84th percentile"},
		{500, "70th–84th percentile"},
		{499, "50th–69th percentile"},
		{450, "50th–69th percentile"},
		{449, "Below 50th percentile"},
		{200, "Below 50th percentile"},
		{0, "Below 50th percentile"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, PercentileBand(tt.composite), "composite=%d", tt.composite)
	}
}

func TestChanceFor(t *testing.T) {
	const cutoff = 566
	tests := []struct {
		name      string
		composite int
		chance    int
		discovery schema.Discovery
	}{
		{"well above", 700, 100, schema.NotEligible},
		{"upper edge", 576, 100, schema.NotEligible},
		{"just inside upper", 575, 95, schema.NotEligible},
		{"at cutoff", 566, 50, schema.NotEligible},
		{"just inside lower", 557, 5, schema.NotEligible},
		{"lower edge", 556, 0, schema.PossibleEligibility},
		{"discovery floor", 546, 0, schema.PossibleEligibility},
		{"below discovery", 545, 0, schema.NotEligible},
		{"far below", 200, 0, schema.NotEligible},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chance, discovery := ChanceFor(tt.composite, cutoff)
			assert.Equal(t, tt.chance, chance)
			assert.Equal(t, tt.discovery, discovery)
		})
	}
}

func TestChanceForIsMonotonic(t *testing.T) {
	for _, cutoff := range []int{488, 503, 566} {
		prev := -1
		for composite := schema.MinCompositeScore; composite <= schema.MaxCompositeScore; composite++ {
			chance, discovery := ChanceFor(composite, cutoff)
			assert.GreaterOrEqual(t, chance, 0)
			assert.LessOrEqual(t, chance, 100)
			assert.GreaterOrEqual(t, chance, prev)
			prev = chance
			if discovery == schema.PossibleEligibility {
				assert.Equal(t, 0, chance)
			}
		}
	}
}

func TestEvaluateSchool(t *testing.T) {
	row := evaluateSchool(546, schema.SchoolCutoff{Name: "Stuyvesant", Cutoff: 566})
	assert.Equal(t, "Stuyvesant", row.School)
	assert.Equal(t, 566, row.Cutoff)
	assert.Equal(t, 0, row.Chance)
	assert.Equal(t, schema.PossibleEligibility, row.Discovery)
	assert.Equal(t, schema.ClassRed, row.ChanceClass)
	assert.Equal(t, schema.ClassYellow, row.DiscoveryClass)

	row = evaluateSchool(546, schema.SchoolCutoff{Name: "Brooklyn Latin", Cutoff: 488})
	assert.Equal(t, 100, row.Chance)
	assert.Equal(t, schema.NotEligible, row.Discovery)
	assert.Equal(t, schema.ClassGreen, row.ChanceClass)
	assert.Equal(t, schema.ClassRed, row.DiscoveryClass)
}

func TestClassifyComposite(t *testing.T) {
	assert.Equal(t, schema.ClassGreen, ClassifyComposite(700))
	assert.Equal(t, schema.ClassGreen, ClassifyComposite(500))
	assert.Equal(t, schema.ClassYellow, ClassifyComposite(499))
	assert.Equal(t, schema.ClassYellow, ClassifyComposite(300))
	assert.Equal(t, schema.ClassRed, ClassifyComposite(299))
	assert.Equal(t, schema.ClassRed, ClassifyComposite(200))
}

func TestClassifyPercentage(t *testing.T) {
	assert.Equal(t, schema.ClassGreen, ClassifyPercentage(100))
	assert.Equal(t, schema.ClassGreen, ClassifyPercentage(85))
	assert.Equal(t, schema.ClassYellow, ClassifyPercentage(84.9))
	assert.Equal(t, schema.ClassYellow, ClassifyPercentage(70))
	assert.Equal(t, schema.ClassOrange, ClassifyPercentage(69.9))
	assert.Equal(t, schema.ClassOrange, ClassifyPercentage(41))
	assert.Equal(t, schema.ClassRed, ClassifyPercentage(40.9))
	assert.Equal(t, schema.ClassRed, ClassifyPercentage(0))
}

func TestClassifyChance(t *testing.T) {
	assert.Equal(t, schema.ClassGreen, ClassifyChance(100))
	assert.Equal(t, schema.ClassYellow, ClassifyChance(95))
	assert.Equal(t, schema.ClassYellow, ClassifyChance(70))
	assert.Equal(t, schema.ClassOrange, ClassifyChance(65))
	assert.Equal(t, schema.ClassOrange, ClassifyChance(5))
	assert.Equal(t, schema.ClassRed, ClassifyChance(0))
}

func BenchmarkChanceFor(b *testing.B) {
	for b.Loop() {
		for composite := schema.MinCompositeScore; composite <= schema.MaxCompositeScore; composite++ {
			_, _ = ChanceFor(composite, 566)
		}
	}
}
