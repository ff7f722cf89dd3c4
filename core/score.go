package core

import (
	"math"

	"github.com/huangsam/shsat/schema"
)

// percentileBands are inclusive lower bounds, checked highest first.
var percentileBands = []struct {
	min   int
	label string
}{
	{650, "99th percentile+"},
	{600, "95th–98th percentile"},
	{550, "85th–94th percentile"},
	{500, "70th–84th percentile"},
	{450, "50th–69th percentile"},
}

const belowMedianLabel = "Below 50th percentile"

// PercentileBand returns the percentile label for a composite score.
func PercentileBand(composite int) string {
	for _, b := range percentileBands {
		if composite >= b.min {
			return b.label
		}
	}
	return belowMedianLabel
}

// ChanceFor estimates the admission outlook for a composite score against one cutoff.
// Scores inside the band around the cutoff are interpolated linearly.
func ChanceFor(composite, cutoff int) (int, schema.Discovery) {
	upper := cutoff + schema.ChanceBand
	lower := cutoff - schema.ChanceBand
	switch {
	case composite >= upper:
		return 100, schema.NotEligible
	case composite <= lower:
		if composite >= cutoff-schema.DiscoveryBand {
			return 0, schema.PossibleEligibility
		}
		return 0, schema.NotEligible
	default:
		frac := float64(composite-lower) / float64(upper-lower)
		return int(math.Round(frac * 100)), schema.NotEligible
	}
}

// evaluateSchool builds the school outlook row for a composite score.
func evaluateSchool(composite int, school schema.SchoolCutoff) schema.SchoolChance {
	chance, discovery := ChanceFor(composite, school.Cutoff)
	return schema.SchoolChance{
		School:         school.Name,
		Cutoff:         school.Cutoff,
		Chance:         chance,
		Discovery:      discovery,
		ChanceClass:    ClassifyChance(chance),
		DiscoveryClass: discovery.Class(),
	}
}

// ClassifyComposite returns the display class of a composite score.
func ClassifyComposite(composite int) schema.Classification {
	switch {
	case composite >= schema.CompositeGreenMin:
		return schema.ClassGreen
	case composite >= schema.CompositeYellowMin:
		return schema.ClassYellow
	default:
		return schema.ClassRed
	}
}

// ClassifyPercentage returns the display class of a percentage correct.
func ClassifyPercentage(pct float64) schema.Classification {
	switch {
	case pct >= schema.PercentGreenMin:
		return schema.ClassGreen
	case pct >= schema.PercentYellowMin:
		return schema.ClassYellow
	case pct >= schema.PercentOrangeMin:
		return schema.ClassOrange
	default:
		return schema.ClassRed
	}
}

// ClassifyChance returns the display class of an admission chance.
func ClassifyChance(chance int) schema.Classification {
	switch {
	case chance >= schema.ChanceGreenMin:
		return schema.ClassGreen
	case chance >= schema.ChanceYellowMin:
		return schema.ClassYellow
	case chance > 0:
		return schema.ClassOrange
	default:
		return schema.ClassRed
	}
}
