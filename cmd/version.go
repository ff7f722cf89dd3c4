package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// versionCmd shows the verbose version for diagnostic purposes.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of shsat.",
	Long: `Display version information including build details.

Shows:
- Release version
- Git commit hash
- Build timestamp
- Go runtime version`,
	Run: func(cmd *cobra.Command, _ []string) {
		w := cmd.OutOrStdout()
		_, _ = fmt.Fprintf(w, "shsat CLI\n")
		_, _ = fmt.Fprintf(w, "  Version: %s\n", version)
		_, _ = fmt.Fprintf(w, "  Commit:  %s\n", commit)
		_, _ = fmt.Fprintf(w, "  Built:   %s\n", date)
		_, _ = fmt.Fprintf(w, "  Runtime: %s\n", runtime.Version())
	},
}
