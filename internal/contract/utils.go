package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

// Scoring label constants.
const (
	StellarValue  = "Stellar"  // Stellar impact
	HighValue     = "High"     // High impact
	ModerateValue = "Moderate" // Moderate impact
	LowValue      = "Low"      // Low impact
)

// Color variables for console output.
var (
	StellarColor  = color.New(color.FgRed, color.Bold)     // stellarColor marks the standout accounts.
	HighColor     = color.New(color.FgMagenta, color.Bold) // highColor marks strong accounts.
	ModerateColor = color.New(color.FgYellow)              // moderateColor marks the middle of the pack, not bold.
	LowColor      = color.New(color.FgCyan)                // lowColor marks informational / low-signal rows.
)

// GetPlainLabel returns a plain text label indicating the impact tier
// based on the account's score. This is the core logic used for
// CSV, JSON, and table printing. The bands are fit to the impact-score
// scale, where log10(repos) contributes single digits and the follower
// ratio dominates for popular accounts.
func GetPlainLabel(score float64) string {
	switch {
	case score >= 50:
		return StellarValue
	case score >= 10:
		return HighValue
	case score >= 2:
		return ModerateValue
	default:
		return LowValue
	}
}

// GetColorLabel returns a colored text label for console output (table).
// It uses GetPlainLabel to determine the string, and then applies the appropriate color.
func GetColorLabel(score float64) string {
	text := GetPlainLabel(score)

	switch text {
	case StellarValue:
		return StellarColor.Sprint(text)
	case HighValue:
		return HighColor.Sprint(text)
	case ModerateValue:
		return ModerateColor.Sprint(text)
	default: // "Low"
		return LowColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. An empty path means stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// DefaultCacheDir returns the directory holding the JSON cache files.
func DefaultCacheDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".gazer"
	}
	return filepath.Join(homeDir, ".gazer")
}

// GetDBFilePath returns the path to the SQLite DB file for cache storage.
func GetDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".gazer_cache.db"
	}
	return filepath.Join(homeDir, ".gazer_cache.db")
}

// TruncateText truncates a string to a maximum width with ellipsis suffix.
// Requires maxWidth > 3 so there is room for both the "..." and at least
// one character of content.
func TruncateText(text string, maxWidth int) string {
	runes := []rune(text)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return text
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
