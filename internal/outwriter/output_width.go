package outwriter

import (
	"os"

	"github.com/huangsam/gazer/internal/contract"
	"golang.org/x/term"
)

// getMaxTableURLWidth calculates the maximum width for profile URLs in table
// output based on terminal width.
func getMaxTableURLWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		// Get terminal width
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the fixed columns with table formatting:
	// Rank + Login + Score + Label + three counts + Category, plus borders,
	// separators and padding.
	baseWidth := 80

	// Calculate available space for the URL
	available := termWidth - baseWidth
	if available < 15 {
		// Minimum reasonable URL width
		return 15
	}
	if available > 60 {
		// Maximum URL width to prevent overly long links
		return 60
	}
	return available
}
