package core

import (
	"testing"

	"github.com/huangsam/shsat/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinearCurve(t *testing.T) {
	c := linearCurve{}
	tests := []struct {
		raw      int
		expected int
	}{
		{-5, 100},
		{0, 100},
		{10, 100},
		{11, 105},
		{20, 153},
		{34, 228},
		{40, 260},
		{45, 286},
		{56, 345},
		{57, 350},
		{80, 350},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, c.Scale(tt.raw), "raw=%d", tt.raw)
	}
}

func TestLinearCurveMonotonicAndBounded(t *testing.T) {
	c := linearCurve{}
	prev := c.Scale(schema.MinRawScore)
	for raw := schema.MinRawScore; raw <= schema.MaxRawScore; raw++ {
		scaled := c.Scale(raw)
		assert.GreaterOrEqual(t, scaled, schema.MinScaledScore)
		assert.LessOrEqual(t, scaled, schema.MaxScaledScore)
		assert.GreaterOrEqual(t, scaled, prev, "raw=%d", raw)
		prev = scaled
	}
}

func TestBlendedCurve(t *testing.T) {
	c := blendedCurve{}
	assert.Equal(t, 100, c.Scale(0))
	assert.Equal(t, 350, c.Scale(57))
	assert.Equal(t, 100, c.Scale(-1))
	assert.Equal(t, 350, c.Scale(99))

	// The blend dips below the minimum scaled score just above zero.
	assert.Equal(t, -25, c.Scale(1))
	assert.Equal(t, 100, c.Scale(25))
	assert.Equal(t, 236, c.Scale(40))
	assert.Equal(t, 277, c.Scale(45))
	assert.Less(t, c.Scale(1), c.Scale(0))
}

func TestCurveFor(t *testing.T) {
	for _, name := range schema.AllCurves {
		c, err := CurveFor(name)
		require.NoError(t, err)
		assert.Equal(t, name, c.Name())
	}

	_, err := CurveFor("sigmoid")
	assert.Error(t, err)

	assert.Equal(t, schema.LinearCurve, DefaultCurve().Name())
}

func TestScaleTable(t *testing.T) {
	table := ScaleTable(linearCurve{})
	assert.Equal(t, schema.LinearCurve, table.Curve)
	require.Len(t, table.Rows, 58)
	assert.Equal(t, schema.CurveRow{Raw: 0, Scaled: 100}, table.Rows[0])
	assert.Equal(t, schema.CurveRow{Raw: 57, Scaled: 350}, table.Rows[57])
	for i, row := range table.Rows {
		assert.Equal(t, i, row.Raw)
	}
}

func BenchmarkLinearCurve(b *testing.B) {
	c := linearCurve{}
	for b.Loop() {
		for raw := 0; raw <= schema.MaxRawScore; raw++ {
			_ = c.Scale(raw)
		}
	}
}

func BenchmarkBlendedCurve(b *testing.B) {
	c := blendedCurve{}
	for b.Loop() {
		for raw := 0; raw <= schema.MaxRawScore; raw++ {
			_ = c.Scale(raw)
		}
	}
}
