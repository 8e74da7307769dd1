package md2slides

import (
	"fmt"
	"regexp"
	"strings"
)

// regionKind identifies the delimiter family of a matched region.
type regionKind string

const (
	kindCode  regionKind = "code"
	kindPlot  regionKind = "plot_code"
	kindLatex regionKind = "latex"
)

// Region is a delimited span [Start, End] over line indices. Weight is the
// estimated vertical page space the region consumes.
type Region struct {
	Kind          regionKind
	Start, End    int
	Weight        int
	HasChunkFlags bool // chunk header already sets echo= or eval= (code regions only)
}

// interior returns the number of lines strictly between the delimiters.
func (r *Region) interior() int {
	n := r.End - r.Start - 1
	if n < 0 {
		return 0
	}
	return n
}

// mathDelim is the display-math delimiter.
const mathDelim = "$$"

// Plot-producing calls. A code region containing any of them is reclassified
// as a plot region and becomes subject to the duplication logic.
var plotCallPattern = regexp.MustCompile(`plot\(|hist\(|boxplot\(|barplot\(|ggplot|image\(|include_graphics`)

// Chunk headers that already control echo or evaluation.
var chunkFlagPattern = regexp.MustCompile(`(echo|eval)\s*=`)

// isFenceLine reports whether the line is a code fence delimiter,
// with or without a language/chunk annotation.
func isFenceLine(s string) bool {
	return strings.HasPrefix(strings.TrimSpace(s), "```")
}

// isPlotLine reports whether a code line produces visual output.
func isPlotLine(s string) bool {
	return plotCallPattern.MatchString(s)
}

// hasChunkFlags reports whether a fence opener already specifies
// echo/eval chunk options.
func hasChunkFlags(s string) bool {
	return chunkFlagPattern.MatchString(s)
}

// spanCrossesCode reports whether any line strictly between start and end
// belongs to a code region.
func spanCrossesCode(inCode []bool, start, end int) bool {
	for j := start + 1; j < end; j++ {
		if inCode[j] {
			return true
		}
	}
	return false
}

// regionWeight estimates page space from the interior line count.
// The floor of 1 keeps even trivial regions moving the page budget.
func regionWeight(interior int) int {
	w := interior - 2
	if w < 1 {
		return 1
	}
	return w
}

// matchRegions scans the line sequence once per delimiter family and returns
// the matched code and math regions, the indices of self-contained one-line
// math blocks, the fence-line indices of empty code regions (not printed),
// and any warnings produced by best-effort recovery.
//
// Tables are deliberately absent: their extent is discovered by one-line
// lookahead during pagination, never pre-paired.
func matchRegions(lines []string) (regions []*Region, onelineMath []int, dontPrint []int, warnings []string) {
	// Code fences: sequential toggle pairing. A trailing unmatched fence is
	// left unpaired and falls through to prose classification downstream.
	var fences []int
	for i, line := range lines {
		if isFenceLine(line) {
			fences = append(fences, i)
		}
	}
	inCode := make([]bool, len(lines))
	for i := 0; i+1 < len(fences); i += 2 {
		start, end := fences[i], fences[i+1]
		if end == start+1 {
			// Empty fence pair: excluded from output and weight accounting.
			dontPrint = append(dontPrint, start, end)
			continue
		}
		r := &Region{
			Kind:          kindCode,
			Start:         start,
			End:           end,
			Weight:        regionWeight(end - start - 1),
			HasChunkFlags: hasChunkFlags(lines[start]),
		}
		for j := start; j <= end; j++ {
			inCode[j] = true
			if r.Kind == kindCode && j > start && j < end && isPlotLine(lines[j]) {
				r.Kind = kindPlot
			}
		}
		regions = append(regions, r)
	}

	// Display math: lines carrying two delimiters are self-contained one-line
	// blocks, removed before the remaining delimiter lines are paired
	// sequentially. Lines inside code regions never participate.
	var candidates []int
	for i, line := range lines {
		if inCode[i] {
			continue
		}
		switch strings.Count(line, mathDelim) {
		case 0:
		case 1:
			candidates = append(candidates, i)
		default:
			onelineMath = append(onelineMath, i)
		}
	}
	for i := 0; i < len(candidates); {
		start := candidates[i]
		if i+1 == len(candidates) {
			// Best-effort recovery: reuse the last delimiter index as a
			// synthetic end. The resulting region can be degenerate; the
			// warning tells the user to check the output.
			warnings = append(warnings, fmt.Sprintf(
				"unbalanced display-math delimiters: no closing %s after line %d, synthesizing one", mathDelim, start+1))
			regions = append(regions, &Region{
				Kind:   kindLatex,
				Start:  start,
				End:    start,
				Weight: regionWeight(0),
			})
			break
		}
		end := candidates[i+1]
		if spanCrossesCode(inCode, start, end) {
			// A math region must never swallow a code block. Close the run at
			// its opening line and let the next delimiter start a fresh pair.
			warnings = append(warnings, fmt.Sprintf(
				"unbalanced display-math delimiters: the %s at line %d would span a code block, closing it in place", mathDelim, start+1))
			regions = append(regions, &Region{
				Kind:   kindLatex,
				Start:  start,
				End:    start,
				Weight: regionWeight(0),
			})
			i++
			continue
		}
		regions = append(regions, &Region{
			Kind:   kindLatex,
			Start:  start,
			End:    end,
			Weight: regionWeight(end - start - 1),
		})
		i += 2
	}

	return regions, onelineMath, dontPrint, warnings
}
