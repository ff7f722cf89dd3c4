package schema

// Custom string types for type safety.
type (
	// CurveName identifies a raw-to-scaled curve strategy.
	CurveName string

	// OutputMode represents the format of the output.
	OutputMode string

	// Classification is the display class of a score, chance or percentage.
	Classification string

	// DatabaseBackend represents the database backend for estimate history.
	DatabaseBackend string
)

// All curves supported.
const (
	LinearCurve  CurveName = "linear" // default
	BlendedCurve CurveName = "blended"
)

// All output modes supported.
const (
	TextOut OutputMode = "text" // default
	CSVOut  OutputMode = "csv"
	JSONOut OutputMode = "json"
	YAMLOut OutputMode = "yaml"
)

// All display classes, from worst to best.
const (
	ClassRed    Classification = "red"
	ClassOrange Classification = "orange"
	ClassYellow Classification = "yellow"
	ClassGreen  Classification = "green"
)

// All history backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite"
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none" // default
)

// Raw score domain for a single section.
const (
	MinRawScore = 0
	MaxRawScore = 57

	// MaxTotalCorrect is the number of questions across both sections.
	MaxTotalCorrect = 2 * MaxRawScore
)

// Scaled score range for a single section.
const (
	MinScaledScore = 100
	MaxScaledScore = 350
)

// Composite score range.
const (
	MinCompositeScore = 2 * MinScaledScore
	MaxCompositeScore = 2 * MaxScaledScore
)

// Bands around a school cutoff used for chance and discovery.
const (
	ChanceBand    = 10
	DiscoveryBand = 20
)

// Composite classification thresholds.
const (
	CompositeGreenMin  = 500
	CompositeYellowMin = 300
)

// Percentage classification thresholds.
const (
	PercentGreenMin  = 85.0
	PercentYellowMin = 70.0
	PercentOrangeMin = 41.0
)

// Chance classification thresholds.
const (
	ChanceGreenMin  = 100
	ChanceYellowMin = 70
)

// AllCurves returns a list of all supported curves, default first.
var AllCurves = []CurveName{LinearCurve, BlendedCurve}

// ValidCurves lists all valid curves.
var ValidCurves = map[CurveName]struct{}{
	LinearCurve:  {},
	BlendedCurve: {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut: {},
	CSVOut:  {},
	JSONOut: {},
	YAMLOut: {},
}

// ValidDatabaseBackends lists all valid history backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}
