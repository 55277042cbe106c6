package outwriter

import (
	"os"

	"github.com/huangsam/buildsize/internal/contract"
	"golang.org/x/term"
)

// GetMaxTablePathWidth calculates the maximum width for file labels in table output
// based on terminal width and the number of size columns.
func GetMaxTablePathWidth(cfg *contract.Config, sizeColumns int) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80
		} else {
			termWidth = detectedWidth
		}
	}

	// Every size column holds values like "1000.0 kB" with padding and separators
	baseWidth := sizeColumns * 13

	// Reserve space for table borders, separators, and padding
	baseWidth += 10

	available := termWidth - baseWidth
	if available < 15 {
		// Minimum reasonable path width
		return 15
	}
	if available > 90 {
		// Maximum path width to prevent overly long paths
		return 90
	}
	return available
}
