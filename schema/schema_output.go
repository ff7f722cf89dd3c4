package schema

// EnrichedSchoolChance adds presentation data to a SchoolChance.
type EnrichedSchoolChance struct {
	Rank   int `json:"rank"`
	Margin int `json:"margin"`
	SchoolChance
}

// GetPlainLabel returns a plain text label for a display class.
func GetPlainLabel(c Classification) string {
	switch c {
	case ClassGreen:
		return "Strong"
	case ClassYellow:
		return "Fair"
	case ClassOrange:
		return "Weak"
	default:
		return "Low"
	}
}

// EnrichSchools adds table rank and the margin against each cutoff.
// Margin is the composite score minus the cutoff and may be negative.
func EnrichSchools(e Estimate) []EnrichedSchoolChance {
	output := make([]EnrichedSchoolChance, len(e.PerSchool))
	for i, s := range e.PerSchool {
		output[i] = EnrichedSchoolChance{
			Rank:         i + 1,
			Margin:       e.CompositeScore - s.Cutoff,
			SchoolChance: s,
		}
	}
	return output
}
