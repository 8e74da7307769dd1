package md2slides

import (
	"context"
	"regexp"
	"strings"
)

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Whole-line HTML comment: <!-- ... -->
	commentLine = regexp.MustCompile(`^\s*<!--.*-->\s*$`)

	// Comment block delimiters for multi-line <!-- ... --> spans
	commentOpen  = regexp.MustCompile(`^\s*<!--`)
	commentClose = regexp.MustCompile(`-->\s*$`)

	// Internal image-path assignment, e.g. `img_path <- "img"`
	imagePathAssign = regexp.MustCompile(`^\s*img_path\s*(<-|=)`)
)

// linePreprocessor defines the contract for pre-classification cleaning.
type linePreprocessor interface {
	Clean(ctx context.Context, content string) []string
}

// documentCleaner produces the cleaned line sequence the classifier works on.
// It never mutates in place: the output is a fresh slice, so later stages can
// index lines without compensating for removals.
type documentCleaner struct{}

// Clean splits content into lines and drops everything that must not reach
// classification: blank lines, HTML comments (single lines and whole
// <!-- ... --> blocks, which is also how conditionally disabled tables are
// removed, since those arrive commented out), and the internal image-path
// assignment line that the preamble re-emits.
func (c *documentCleaner) Clean(ctx context.Context, content string) []string {
	if ctx.Err() != nil {
		return nil
	}

	content = crlfOrCR.ReplaceAllString(content, "\n")
	raw := strings.Split(content, "\n")

	cleaned := make([]string, 0, len(raw))
	inComment := false
	for _, line := range raw {
		switch {
		case inComment:
			if commentClose.MatchString(line) {
				inComment = false
			}
		case commentLine.MatchString(line):
			// single-line comment, skip
		case commentOpen.MatchString(line):
			inComment = true
		case strings.TrimSpace(line) == "":
			// blank, skip
		case imagePathAssign.MatchString(line):
			// internal assignment, skip
		default:
			cleaned = append(cleaned, line)
		}
	}
	return cleaned
}
