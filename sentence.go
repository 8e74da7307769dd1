package md2slides

import (
	"regexp"
	"strings"
)

// maskedDot temporarily replaces periods that must not split a sentence.
// A control character cannot occur in the dialect, so restoration is exact.
const maskedDot = "\x00"

// Period contexts protected from sentence splitting.
var (
	numberedMarker = regexp.MustCompile(`(\d+)\. `)
	decimalNumber  = regexp.MustCompile(`(\d)\.(\d)`)
)

// Title and reference abbreviations whose trailing period is not a sentence
// boundary. Kept deliberately small; unlisted abbreviations split, which is
// harmless for slides. Longer forms come first so a shorter prefix never
// clobbers them ("Mr." inside "Mrs.").
var abbreviations = []string{
	"Prof.", "Mrs.", "Ms.", "Mr.", "Dr.",
	"Sra.", "Sr.", "Eng.",
	"e.g.", "i.e.", "etc.",
	"Fig.", "Eq.", "Tab.",
}

// numberedItem detects fragments that should render as numbered list items
// rather than dash bullets.
var numberedItem = regexp.MustCompile(`^\d+\.( |$)`)

// sentenceSplitter defines the contract for turning one prose line into
// bullet units.
type sentenceSplitter interface {
	Split(line string) []string
}

// proseSplitter splits prose on sentence boundaries while protecting
// decimal numbers, numbered-list markers, and common abbreviations.
type proseSplitter struct{}

// Split returns the ordered sentence fragments of line, each destined to
// become one bullet. Fragments are trimmed and receive a terminal period
// when they end without punctuation.
func (p *proseSplitter) Split(line string) []string {
	masked := maskProtectedPeriods(line)

	parts := strings.Split(masked, ". ")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		s := strings.TrimSpace(strings.ReplaceAll(part, maskedDot, "."))
		if s == "" {
			continue
		}
		if !hasTerminalPunct(s) {
			s += "."
		}
		out = append(out, s)
	}
	return out
}

// maskProtectedPeriods substitutes the placeholder for every period that is
// not a sentence boundary.
func maskProtectedPeriods(s string) string {
	s = numberedMarker.ReplaceAllString(s, "$1"+maskedDot+" ")
	s = decimalNumber.ReplaceAllString(s, "$1"+maskedDot+"$2")
	for _, abbr := range abbreviations {
		if strings.Contains(s, abbr) {
			s = strings.ReplaceAll(s, abbr, strings.ReplaceAll(abbr, ".", maskedDot))
		}
	}
	return s
}

// hasTerminalPunct reports whether s already ends in sentence punctuation.
func hasTerminalPunct(s string) bool {
	switch s[len(s)-1] {
	case '.', '!', '?', ':', ';':
		return true
	}
	return false
}

// isNumberedItem reports whether a fragment starts with a numeral-dot
// marker and should render as an indented numbered item.
func isNumberedItem(s string) bool {
	return numberedItem.MatchString(s)
}
