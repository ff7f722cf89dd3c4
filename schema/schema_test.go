package schema_test

import (
	"encoding/json"
	"testing"

	"github.com/huangsam/shsat/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDiscoveryLabels(t *testing.T) {
	assert.Equal(t, "Not eligible", schema.NotEligible.String())
	assert.Equal(t, "Possible eligibility", schema.PossibleEligibility.String())
	assert.Equal(t, schema.ClassRed, schema.NotEligible.Class())
	assert.Equal(t, schema.ClassYellow, schema.PossibleEligibility.Class())
}

func TestParseDiscovery(t *testing.T) {
	assert.Equal(t, schema.PossibleEligibility, schema.ParseDiscovery("Possible eligibility"))
	assert.Equal(t, schema.NotEligible, schema.ParseDiscovery("Not eligible"))
	assert.Equal(t, schema.NotEligible, schema.ParseDiscovery("possible"))
	assert.Equal(t, schema.NotEligible, schema.ParseDiscovery(""))
}

func TestEstimateJSONRoundTrip(t *testing.T) {
	est := schema.Estimate{
		Curve:          schema.LinearCurve,
		MathRaw:        40,
		ELARaw:         45,
		CompositeScore: 552,
		PerSchool: []schema.SchoolChance{
			{School: "Brooklyn Latin", Cutoff: 488, Chance: 100, Discovery: schema.NotEligible},
			{School: "Stuyvesant", Cutoff: 566, Chance: 15, Discovery: schema.PossibleEligibility},
		},
	}

	data, err := json.Marshal(est)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"discovery":"Possible eligibility"`)

	var decoded schema.Estimate
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, est, decoded)
}

func TestEstimateYAMLUsesLabels(t *testing.T) {
	chance := schema.SchoolChance{School: "Stuyvesant", Cutoff: 566, Discovery: schema.PossibleEligibility}
	data, err := yaml.Marshal(chance)
	require.NoError(t, err)
	assert.Contains(t, string(data), "discovery: Possible eligibility")
}
