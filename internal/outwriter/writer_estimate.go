package outwriter

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/huangsam/shsat/schema"
)

// schoolOutput is the machine-readable form of one school outlook.
type schoolOutput struct {
	Rank           int    `json:"rank" yaml:"rank"`
	School         string `json:"school" yaml:"school"`
	Cutoff         int    `json:"cutoff" yaml:"cutoff"`
	Margin         int    `json:"margin" yaml:"margin"`
	Chance         int    `json:"chance" yaml:"chance"`
	ChanceLabel    string `json:"chance_label" yaml:"chance_label"`
	Discovery      string `json:"discovery" yaml:"discovery"`
	DiscoveryLabel string `json:"discovery_label" yaml:"discovery_label"`
}

// estimateOutput is the machine-readable form of an estimate with plain labels.
type estimateOutput struct {
	Curve           schema.CurveName `json:"curve" yaml:"curve"`
	MathRaw         int              `json:"math_raw" yaml:"math_raw"`
	ELARaw          int              `json:"ela_raw" yaml:"ela_raw"`
	MathScaled      int              `json:"math_scaled" yaml:"math_scaled"`
	ELAScaled       int              `json:"ela_scaled" yaml:"ela_scaled"`
	TotalCorrect    int              `json:"total_correct" yaml:"total_correct"`
	Percentage      float64          `json:"percentage" yaml:"percentage"`
	PercentageLabel string           `json:"percentage_label" yaml:"percentage_label"`
	CompositeScore  int              `json:"composite_score" yaml:"composite_score"`
	CompositeLabel  string           `json:"composite_label" yaml:"composite_label"`
	Percentile      string           `json:"percentile" yaml:"percentile"`
	Schools         []schoolOutput   `json:"schools" yaml:"schools"`
}

// newEstimateOutput converts an estimate into its machine-readable form.
func newEstimateOutput(est schema.Estimate) estimateOutput {
	out := estimateOutput{
		Curve:           est.Curve,
		MathRaw:         est.MathRaw,
		ELARaw:          est.ELARaw,
		MathScaled:      est.MathScaled,
		ELAScaled:       est.ELAScaled,
		TotalCorrect:    est.TotalCorrect,
		Percentage:      est.Percentage,
		PercentageLabel: schema.GetPlainLabel(est.PercentClass),
		CompositeScore:  est.CompositeScore,
		CompositeLabel:  schema.GetPlainLabel(est.CompositeClass),
		Percentile:      est.Percentile,
		Schools:         make([]schoolOutput, 0, len(est.PerSchool)),
	}
	for _, s := range schema.EnrichSchools(est) {
		out.Schools = append(out.Schools, schoolOutput{
			Rank:           s.Rank,
			School:         s.School,
			Cutoff:         s.Cutoff,
			Margin:         s.Margin,
			Chance:         s.Chance,
			ChanceLabel:    schema.GetPlainLabel(s.ChanceClass),
			Discovery:      s.Discovery.String(),
			DiscoveryLabel: schema.GetPlainLabel(s.DiscoveryClass),
		})
	}
	return out
}

// writeCSVEstimate writes one row per school, repeating the estimate summary on each row.
func writeCSVEstimate(w io.Writer, est schema.Estimate) error {
	header := []string{
		"rank",
		"school",
		"cutoff",
		"margin",
		"chance",
		"chance_label",
		"discovery",
		"discovery_label",
		"curve",
		"math_raw",
		"ela_raw",
		"math_scaled",
		"ela_scaled",
		"composite",
		"percentage",
		"percentile",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, s := range schema.EnrichSchools(est) {
			row := []string{
				strconv.Itoa(s.Rank),
				s.School,
				strconv.Itoa(s.Cutoff),
				strconv.Itoa(s.Margin),
				strconv.Itoa(s.Chance),
				schema.GetPlainLabel(s.ChanceClass),
				s.Discovery.String(),
				schema.GetPlainLabel(s.DiscoveryClass),
				string(est.Curve),
				strconv.Itoa(est.MathRaw),
				strconv.Itoa(est.ELARaw),
				strconv.Itoa(est.MathScaled),
				strconv.Itoa(est.ELAScaled),
				strconv.Itoa(est.CompositeScore),
				strconv.FormatFloat(est.Percentage, 'f', 1, 64),
				est.Percentile,
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeCSVCurve writes the raw-to-scaled rows of a curve.
func writeCSVCurve(w io.Writer, table schema.CurveTable) error {
	return writeCSVWithHeader(w, []string{"curve", "raw", "scaled"}, func(cw *csv.Writer) error {
		for _, r := range table.Rows {
			if err := cw.Write([]string{string(table.Curve), strconv.Itoa(r.Raw), strconv.Itoa(r.Scaled)}); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeCSVSchools writes the cutoff table in table order.
func writeCSVSchools(w io.Writer, schools []schema.SchoolCutoff) error {
	return writeCSVWithHeader(w, []string{"rank", "school", "cutoff"}, func(cw *csv.Writer) error {
		for i, s := range schools {
			if err := cw.Write([]string{strconv.Itoa(i + 1), s.Name, strconv.Itoa(s.Cutoff)}); err != nil {
				return err
			}
		}
		return nil
	})
}
