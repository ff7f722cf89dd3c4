package contract

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/huangsam/shsat/schema"
)

// Color variables for console output.
var (
	RedColor    = color.New(color.FgRed, color.Bold) // RedColor represents a result far from the goal.
	OrangeColor = color.New(color.FgMagenta)         // OrangeColor represents a borderline result.
	YellowColor = color.New(color.FgYellow)          // YellowColor represents standard caution, not bold.
	GreenColor  = color.New(color.FgGreen)           // GreenColor represents a safe result.
)

// GetColorLabel returns the text wrapped in the color of its display class.
func GetColorLabel(class schema.Classification, text string) string {
	switch class {
	case schema.ClassGreen:
		return GreenColor.Sprint(text)
	case schema.ClassYellow:
		return YellowColor.Sprint(text)
	case schema.ClassOrange:
		return OrangeColor.Sprint(text)
	default:
		return RedColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. It falls back to os.Stdout when no path is given.
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

// GetHistoryDBFilePath returns the path to the SQLite DB file for estimate history.
func GetHistoryDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".shsat_history.db"
	}
	return filepath.Join(homeDir, ".shsat_history.db")
}

// TruncateName truncates a display name to a maximum width with an ellipsis suffix.
// Requires maxWidth > 3 to leave room for the ellipsis and at least one character.
func TruncateName(name string, maxWidth int) string {
	runes := []rune(name)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return name
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

// ParseRawScore coerces form input into an integer the way a lenient web form does.
// Leading whitespace and an optional sign are accepted, then the leading run of
// decimal digits is read and anything after it is ignored. Input without a leading
// number yields 0. Values too large for 32 bits saturate.
func ParseRawScore(s string) int {
	s = strings.TrimLeft(s, " \t\n\r\v\f")
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	n := 0
	for i := 0; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		if n < math.MaxInt32 {
			n = n*10 + int(s[i]-'0')
		}
	}
	if n > math.MaxInt32 {
		n = math.MaxInt32
	}
	if neg {
		return -n
	}
	return n
}
