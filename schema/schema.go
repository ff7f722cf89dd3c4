// Package schema holds the data types shared by the estimator, its outputs and its stores.
package schema

// Discovery is the discovery program eligibility of a near-miss score.
type Discovery int

// All discovery tags.
const (
	NotEligible Discovery = iota
	PossibleEligibility
)

// String returns the display label of the tag.
func (d Discovery) String() string {
	switch d {
	case PossibleEligibility:
		return "Possible eligibility"
	default:
		return "Not eligible"
	}
}

// Class returns the display classification of the tag.
func (d Discovery) Class() Classification {
	if d == PossibleEligibility {
		return ClassYellow
	}
	return ClassRed
}

// MarshalText encodes the tag as its display label.
func (d Discovery) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText decodes a display label.
func (d *Discovery) UnmarshalText(text []byte) error {
	*d = ParseDiscovery(string(text))
	return nil
}

// ParseDiscovery converts a stored label back into a tag.
// Unknown labels map to NotEligible.
func ParseDiscovery(label string) Discovery {
	if label == PossibleEligibility.String() {
		return PossibleEligibility
	}
	return NotEligible
}

// SchoolChance is the admission outlook for one school.
type SchoolChance struct {
	School         string         `json:"school" yaml:"school"`
	Cutoff         int            `json:"cutoff" yaml:"cutoff"`
	Chance         int            `json:"chance" yaml:"chance"`
	Discovery      Discovery      `json:"discovery" yaml:"discovery"`
	ChanceClass    Classification `json:"chance_class" yaml:"chance_class"`
	DiscoveryClass Classification `json:"discovery_class" yaml:"discovery_class"`
}

// Estimate is the full result of evaluating one pair of raw scores.
type Estimate struct {
	Curve          CurveName      `json:"curve" yaml:"curve"`
	MathRaw        int            `json:"math_raw" yaml:"math_raw"`
	ELARaw         int            `json:"ela_raw" yaml:"ela_raw"`
	MathScaled     int            `json:"math_scaled" yaml:"math_scaled"`
	ELAScaled      int            `json:"ela_scaled" yaml:"ela_scaled"`
	TotalCorrect   int            `json:"total_correct" yaml:"total_correct"`
	Percentage     float64        `json:"percentage" yaml:"percentage"`
	PercentClass   Classification `json:"percentage_class" yaml:"percentage_class"`
	CompositeScore int            `json:"composite_score" yaml:"composite_score"`
	CompositeClass Classification `json:"composite_class" yaml:"composite_class"`
	Percentile     string         `json:"percentile" yaml:"percentile"`
	PerSchool      []SchoolChance `json:"per_school" yaml:"per_school"`
}

// CurveRow is one entry of a raw-to-scaled table.
type CurveRow struct {
	Raw    int `json:"raw" yaml:"raw"`
	Scaled int `json:"scaled" yaml:"scaled"`
}

// CurveTable is the full raw-to-scaled mapping of a curve.
type CurveTable struct {
	Curve CurveName  `json:"curve" yaml:"curve"`
	Rows  []CurveRow `json:"rows" yaml:"rows"`
}
