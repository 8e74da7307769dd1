package md2slides

import (
	"fmt"
	"io"
	"regexp"
	"strings"
)

// pageState carries the run-time counters of one pagination pass. It is
// created once per run, mutated only by the paginator, and discarded at the
// end of the pass.
type pageState struct {
	weight   int    // accumulated space since the last page break
	page     int    // page index, equals the number of breaks performed
	exercise bool   // content is being routed to the exercise stream
	inTable  bool   // a pipe table is being accumulated
	section  string // normalized title of the current section
}

// paginator walks the classified line sequence in order and decides, per
// region or sentence, whether to break to a new page before emitting it.
// Decisions depend on cumulative history, so the pass is strictly
// sequential.
type paginator struct {
	layout  *PageLayout
	em      *emitter
	split   sentenceSplitter
	trace   io.Writer
	plotSeq int
}

// Fence opener with an {r ...} chunk annotation: marker, label, options.
var chunkHeaderPattern = regexp.MustCompile("^(\\s*```+)\\{r([^,}]*)([^}]*)\\}\\s*$")

// breakPage resets the weight counter, advances the page index and re-emits
// the current section heading as the page banner.
func (p *paginator) breakPage(st *pageState) {
	p.em.pageBreak(st.section)
	st.weight = 0
	st.page++
}

// lineWeight estimates the vertical space of one rendered text line,
// accounting for wrapping at the configured line width.
func (p *paginator) lineWeight(s string) int {
	return (len(s)+p.layout.CharsPerLine-1)/p.layout.CharsPerLine + 1
}

func (p *paginator) tracef(i int, st *pageState, tag Tag, text string) {
	if p.trace == io.Discard {
		return
	}
	if r := []rune(text); len(r) > 40 {
		text = string(r[:40])
	}
	fmt.Fprintf(p.trace, "line %d page %d weight %d %s: %s\n", i+1, st.page, st.weight, tag, text)
}

// run performs the pagination pass and returns the final state. Exactly one
// transition rule applies per line; their order is the priority order.
func (p *paginator) run(doc *document) pageState {
	st := pageState{}
	lines := doc.lines

	for i := 0; i < len(lines); {
		ln := lines[i]
		p.tracef(i, &st, ln.Tag, ln.Text)

		switch {
		case ln.Tag == TagLastLine:
			i = len(lines)

		case ln.Tag == TagDontPrint:
			i++

		case ln.Tag == TagSection:
			// A section always opens a fresh page and ends exercise mode.
			// The heading itself contributes no weight.
			st.exercise = false
			st.section = normalizeHeading(ln.Text, p.layout.MaxTitleLen)
			p.breakPage(&st)
			i++

		case ln.Tag == TagExerciseStart:
			st.exercise = true
			p.em.exercise(ln.Text)
			i++

		case st.exercise:
			// Verbatim, unpaginated, no weight.
			p.em.exercise(ln.Text)
			i++

		case ln.Tag == TagTable || st.inTable:
			// One-line lookahead discovers the table extent. Table weight is
			// accumulated but never checked against the budget: tables do
			// not force breaks.
			if lines[i+1].Tag == TagTable {
				st.weight += 2
				st.inTable = true
				p.em.line(ln.Text)
			} else {
				st.weight += 3
				st.inTable = false
				p.em.line(ln.Text)
				p.em.blank()
			}
			i++

		case ln.Tag == TagQuote || ln.Tag == TagLatexOneline:
			// Emitted immediately; an exceeded budget breaks on the next
			// line instead.
			st.weight += p.lineWeight(ln.Text)
			p.em.line(ln.Text)
			p.em.blank()
			i++

		case ln.Tag == TagPlotCodeStart:
			r := doc.regions[i]
			p.emitPlotRegion(doc, r, &st)
			i = r.End + 1

		case ln.Tag == TagCodeStart:
			if r := doc.regions[i]; st.weight+r.Weight > p.layout.MaxLines {
				p.breakPage(&st)
			}
			p.em.line(ln.Text)
			i++

		case ln.Tag == TagCodeInside:
			st.weight++
			p.em.line(ln.Text)
			i++

		case ln.Tag == TagCodeEnd:
			st.weight++
			p.em.line(ln.Text)
			p.em.blank()
			i++

		case ln.Tag == TagLatexStart:
			if r := doc.regions[i]; r != nil && st.weight+r.Weight*2 > p.layout.MaxLines {
				p.breakPage(&st)
			}
			p.em.line(ln.Text)
			i++

		case ln.Tag == TagLatexInside:
			// Display math gets one extra unit per line for visual padding.
			st.weight += 2
			p.em.line(ln.Text)
			i++

		case ln.Tag == TagLatexEnd:
			st.weight++
			p.em.line(ln.Text)
			p.em.blank()
			i++

		case ln.Tag == TagLatexStartAndEnd:
			st.weight += 3
			p.em.line(ln.Text)
			p.em.blank()
			i++

		default: // prose
			for _, sentence := range p.split.Split(ln.Text) {
				w := p.lineWeight(sentence)
				if st.weight+w > p.layout.MaxLines {
					p.breakPage(&st)
					// Seed the new page with this bullet's own weight so its
					// space is not lost across the break.
					st.weight = w
				} else {
					st.weight += w
				}
				p.em.bullet(sentence)
			}
			i++
		}
	}

	return st
}

// emitPlotRegion handles a code region that produces visual output. When its
// chunk header carries no echo/eval options, the region is emitted twice:
// once with evaluation suppressed (the code itself), then, isolated on its
// own page, once with a derived label and the echo suppressed (the produced
// artifact). A region with explicit options is emitted once, after a break
// when the page already holds content.
func (p *paginator) emitPlotRegion(doc *document, r *Region, st *pageState) {
	opener := doc.lines[r.Start].Text

	if r.HasChunkFlags {
		if st.weight > 2 {
			p.breakPage(st)
		}
		p.emitRegionLines(doc, r, opener)
		p.breakPage(st)
		return
	}

	codeHeader, figureHeader := plotChunkHeaders(opener, p.nextPlotLabel())

	p.emitRegionLines(doc, r, codeHeader)
	p.breakPage(st)
	p.emitRegionLines(doc, r, figureHeader)
	p.breakPage(st)
}

// emitRegionLines writes a whole region to the deck with opener substituted
// for the original fence line.
func (p *paginator) emitRegionLines(doc *document, r *Region, opener string) {
	p.em.line(opener)
	for j := r.Start + 1; j <= r.End; j++ {
		p.em.line(doc.lines[j].Text)
	}
	p.em.blank()
}

// nextPlotLabel returns a run-unique fallback label for unlabeled plot
// chunks.
func (p *paginator) nextPlotLabel() string {
	p.plotSeq++
	return fmt.Sprintf("plot-%d", p.plotSeq)
}

// plotChunkHeaders derives the two fence openers of a duplicated plot
// region: the first suppresses evaluation, the second carries a distinct
// label and suppresses the code echo.
func plotChunkHeaders(opener, fallbackLabel string) (codeHeader, figureHeader string) {
	m := chunkHeaderPattern.FindStringSubmatch(opener)
	if m == nil {
		// Bare fence without a chunk annotation.
		return "```{r, eval=FALSE}", "```{r " + fallbackLabel + ", echo=FALSE}"
	}

	marker, label, opts := m[1], strings.TrimSpace(m[2]), m[3]

	figureLabel := fallbackLabel
	if label != "" {
		figureLabel = label + "-plot"
	}

	codeHeader = marker + "{r" + m[2] + opts + ", eval=FALSE}"
	figureHeader = marker + "{r " + figureLabel + opts + ", echo=FALSE}"
	return codeHeader, figureHeader
}
