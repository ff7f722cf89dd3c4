package outwriter

import (
	"os"

	"github.com/huangsam/shsat/internal/contract"
	"golang.org/x/term"
)

// Bounds for the school name column.
const (
	minNameWidth = 15
	maxNameWidth = 50
)

// GetMaxTableNameWidth calculates the maximum width for school names in table output
// based on terminal width.
func GetMaxTableNameWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Rank + Cutoff + Margin + Chance + Discovery with borders/padding
	baseWidth := 60

	available := termWidth - baseWidth
	if available < minNameWidth {
		return minNameWidth
	}
	if available > maxNameWidth {
		return maxNameWidth
	}
	return available
}
