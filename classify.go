package md2slides

import (
	"regexp"
	"strings"
)

// Single-line patterns consumed by the classifier.
var (
	// ATX heading marker
	headingMarker = regexp.MustCompile(`^#+\s*`)

	// Trailing attribute block on a heading, e.g. {#id .class}
	headingAttributes = regexp.MustCompile(`\{[^{}]*\}\s*$`)

	// Exercise heading, case-insensitive, Portuguese synonym included
	exerciseHeading = regexp.MustCompile(`(?i)\bexerc[íi]cios?\b|\bexercises?\b`)

	// Inline math somewhere in an otherwise prose line, e.g. "where $x > 0$."
	inlineMath = regexp.MustCompile(`\$[^$]+\$`)
)

// Block-quote marker of the dialect.
const quoteMarker = ">>"

// document is the classified line sequence plus the region index the
// paginator consumes. regions is keyed by region start line.
type document struct {
	lines    []Line
	regions  map[int]*Region
	warnings []string
}

// isHeadingLine reports whether the line starts a section.
func isHeadingLine(s string) bool {
	return strings.HasPrefix(s, "#")
}

// isExerciseHeading reports whether a heading opens an exercise section.
func isExerciseHeading(s string) bool {
	return exerciseHeading.MatchString(s)
}

// isQuoteLine reports whether the trimmed line carries the quote marker.
func isQuoteLine(s string) bool {
	return strings.HasPrefix(strings.TrimSpace(s), quoteMarker)
}

// isTableLine reports whether the trimmed line starts a pipe-table row.
func isTableLine(s string) bool {
	return strings.HasPrefix(strings.TrimSpace(s), "|")
}

// hasInlineMath reports whether a line carries $...$ math. Such lines are
// emitted verbatim and never sentence-split, so the math survives intact.
func hasInlineMath(s string) bool {
	return inlineMath.MatchString(s)
}

// normalizeHeading derives the displayed section title: attribute block
// stripped, heading markers collapsed, trimmed, truncated to maxLen runes
// (0 = unlimited).
func normalizeHeading(s string, maxLen int) string {
	s = headingMarker.ReplaceAllString(s, "")
	s = headingAttributes.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	if maxLen > 0 {
		if r := []rune(s); len(r) > maxLen {
			s = strings.TrimSpace(string(r[:maxLen]))
		}
	}
	return s
}

// classifyDocument assigns exactly one tag to every line in a single forward
// pass, consuming the spans found by matchRegions plus the single-line
// patterns above. A synthetic blank last_line sentinel is appended so the
// paginator always flushes the final region or sentence.
func classifyDocument(raw []string) *document {
	regions, onelineMath, dontPrint, warnings := matchRegions(raw)

	lines := make([]Line, len(raw), len(raw)+1)
	for i, text := range raw {
		lines[i] = Line{Text: text, Tag: TagProse}
	}

	byStart := make(map[int]*Region, len(regions))
	for _, r := range regions {
		byStart[r.Start] = r
		switch r.Kind {
		case kindCode, kindPlot:
			start, end := TagCodeStart, TagCodeEnd
			if r.Kind == kindPlot {
				start, end = TagPlotCodeStart, TagPlotCodeEnd
			}
			lines[r.Start].Tag = start
			lines[r.End].Tag = end
			for j := r.Start + 1; j < r.End; j++ {
				lines[j].Tag = TagCodeInside
			}
		case kindLatex:
			if r.Start == r.End {
				// degenerate region from unbalanced-delimiter recovery
				lines[r.Start].Tag = TagLatexStartAndEnd
				continue
			}
			lines[r.Start].Tag = TagLatexStart
			lines[r.End].Tag = TagLatexEnd
			for j := r.Start + 1; j < r.End; j++ {
				lines[j].Tag = TagLatexInside
			}
		}
	}
	for _, i := range onelineMath {
		lines[i].Tag = TagLatexStartAndEnd
	}
	for _, i := range dontPrint {
		lines[i].Tag = TagDontPrint
	}

	for i := range lines {
		if lines[i].Tag != TagProse {
			continue
		}
		text := lines[i].Text
		switch {
		case isHeadingLine(text):
			if isExerciseHeading(text) {
				lines[i].Tag = TagExerciseStart
			} else {
				lines[i].Tag = TagSection
			}
		case isQuoteLine(text):
			lines[i].Tag = TagQuote
		case isTableLine(text):
			lines[i].Tag = TagTable
		case hasInlineMath(text):
			lines[i].Tag = TagLatexOneline
		}
	}

	lines = append(lines, Line{Text: "", Tag: TagLastLine})

	return &document{lines: lines, regions: byStart, warnings: warnings}
}
