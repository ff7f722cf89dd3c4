package outwriter

import (
	"fmt"
	"io"
	"strconv"

	"github.com/huangsam/shsat/internal/contract"
	"github.com/huangsam/shsat/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// writeEstimateTable prints the summary lines followed by the per-school table,
// using the tablewriter API.
func writeEstimateTable(w io.Writer, est schema.Estimate, nameWidth int, useColors bool) error {
	label := labelFunc(useColors)
	_, _ = fmt.Fprintf(w, "Math: %d raw → %d scaled\n", est.MathRaw, est.MathScaled)
	_, _ = fmt.Fprintf(w, "ELA: %d raw → %d scaled\n", est.ELARaw, est.ELAScaled)
	_, _ = fmt.Fprintf(w, "Total Correct Answers: %d/%d (%s)\n", est.TotalCorrect, schema.MaxTotalCorrect,
		label(est.PercentClass, fmt.Sprintf("%.1f%%", est.Percentage)))
	_, _ = fmt.Fprintf(w, "Composite Score: %s\n",
		label(est.CompositeClass, strconv.Itoa(est.CompositeScore)))
	_, _ = fmt.Fprintf(w, "Percentile: %s\n", est.Percentile)

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Rank", "School", "Cutoff", "Margin", "Chance", "Discovery"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, s := range schema.EnrichSchools(est) {
		data = append(data, []string{
			strconv.Itoa(s.Rank),
			contract.TruncateName(s.School, nameWidth),
			strconv.Itoa(s.Cutoff),
			fmt.Sprintf("%+d", s.Margin),
			label(s.ChanceClass, fmt.Sprintf("%d%%", s.Chance)),
			label(s.DiscoveryClass, s.Discovery.String()),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(w, "Curve: %s. Estimates only; actual cutoffs change every year.\n", est.Curve)
	return nil
}

// labelFunc returns the classification renderer for table cells.
func labelFunc(useColors bool) func(schema.Classification, string) string {
	if useColors {
		return contract.GetColorLabel
	}
	return func(_ schema.Classification, text string) string { return text }
}

// writeCurveTable prints every raw score next to its scaled score.
func writeCurveTable(w io.Writer, table schema.CurveTable) error {
	tbl := tablewriter.NewWriter(w)
	tbl.Header([]string{"Raw", "Scaled"})
	tbl.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	data := make([][]string, 0, len(table.Rows))
	for _, r := range table.Rows {
		data = append(data, []string{strconv.Itoa(r.Raw), strconv.Itoa(r.Scaled)})
	}

	if err := tbl.Bulk(data); err != nil {
		return err
	}
	if err := tbl.Render(); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(w, "Curve: %s (%d rows)\n", table.Curve, len(table.Rows))
	return nil
}

// writeSchoolsTable prints the cutoff table in table order.
func writeSchoolsTable(w io.Writer, schools []schema.SchoolCutoff, nameWidth int) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Rank", "School", "Cutoff"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	data := make([][]string, 0, len(schools))
	for i, s := range schools {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			contract.TruncateName(s.Name, nameWidth),
			strconv.Itoa(s.Cutoff),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(w, "Showing %d schools\n", len(schools))
	return nil
}
