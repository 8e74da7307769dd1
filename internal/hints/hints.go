// Package hints provides actionable error hints for common failure
// scenarios. Hints are formatted consistently as "\n  hint: <text>" for
// appending to error messages.
package hints

import "strings"

// ForOutputExists returns hints when the destination deck already exists.
func ForOutputExists(path string) string {
	return formatHints([]string{
		"remove " + path + " or pick another name with --output",
		"the existing file is left untouched",
	})
}

// ForConfigNotFound returns the hint for config file not found errors. The
// error itself already lists the searched paths.
func ForConfigNotFound() string {
	return format("use --config /path/to/file.yaml")
}

// ForUnbalancedMath returns the hint attached to math-delimiter warnings.
func ForUnbalancedMath() string {
	return format("check that every $$ block is closed; the synthesized boundary may be wrong")
}

func format(hint string) string {
	return "\n  hint: " + hint
}

func formatHints(hints []string) string {
	var b strings.Builder
	for _, h := range hints {
		b.WriteString(format(h))
	}
	return b.String()
}
