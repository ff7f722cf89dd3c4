package cmd

import (
	"github.com/huangsam/shsat/core"
	"github.com/huangsam/shsat/internal/contract"
	"github.com/spf13/cobra"
)

// runExecutor adapts an executor into a cobra Run function that exits on failure.
func runExecutor(failMsg string, executeFunc core.ExecutorFunc) func(*cobra.Command, []string) {
	return func(_ *cobra.Command, _ []string) {
		if err := executeFunc(rootCtx, cfg, historyManager); err != nil {
			contract.LogFatal(failMsg, err)
		}
	}
}

// estimateCmd estimates the composite score and school outlooks.
var estimateCmd = &cobra.Command{
	Use:   "estimate [math] [ela]",
	Short: "Estimate the composite score, percentile and school chances.",
	Long: `Convert raw math and ELA scores into scaled scores and compare the composite
against each specialized high school cutoff.

Raw scores are the number of correct answers per section (0-57). Input is read
like a web form: the leading integer is used and anything else counts as 0.

For every school the chance is:
- 100% when the composite is at least 10 points above the cutoff
- 0% when it is at least 10 points below, with possible Discovery eligibility
  when it is no more than 20 points below
- a linear ramp in between

Examples:
  # Positional raw scores
  shsat estimate 40 45

  # Flags, blended curve, JSON output
  shsat estimate --math 40 --ela 45 --curve blended --output json

  # Save a CSV of school outlooks
  shsat estimate 50 52 --output csv --output-file outlook.csv`,
	Args:    cobra.MaximumNArgs(2),
	PreRunE: sharedSetupWrapper,
	Run:     runExecutor("Cannot estimate score", core.ExecuteEstimate),
}

// curveCmd prints the raw-to-scaled table.
var curveCmd = &cobra.Command{
	Use:   "curve",
	Short: "Show the scaled score for every raw score.",
	Long: `Print the raw-to-scaled conversion for raw scores 0 through 57.

Curves:
- linear (default): 10 or fewer correct is 100, 57 correct is 350, evenly spaced between
- blended: a sine and quadratic blend kept for comparison; it is not monotonic
  and dips below 100 for low raw scores

Examples:
  shsat curve
  shsat curve --curve blended --output csv`,
	PreRunE: sharedSetupWrapper,
	Run:     runExecutor("Cannot print curve", core.ExecuteCurve),
}

// schoolsCmd prints the configured cutoff table.
var schoolsCmd = &cobra.Command{
	Use:   "schools",
	Short: "Show the specialized high school cutoffs.",
	Long: `Print the cutoff table in table order.

The built-in table can be replaced by a schools list in .shsat.yaml:

  schools:
    - name: Stuyvesant
      cutoff: 566
    - name: Bronx Science
      cutoff: 521`,
	PreRunE: sharedSetupWrapper,
	Run:     runExecutor("Cannot print schools", core.ExecuteSchools),
}
