package md2slides

import (
	"fmt"
	"strings"
)

// pageSeparator opens a new page in the deck dialect.
const pageSeparator = "---"

// preambleTemplate is the fixed deck preamble: metadata front matter,
// renderer options, chunk-level defaults and the image-path assignment.
// Filled with title, author, date, image dir.
const preambleTemplate = `---
title: "%s"
author: "%s"
date: "%s"
output:
  xaringan::moon_reader:
    nature:
      highlightLines: true
      countIncrementalSlides: false
---

` + "```" + `{r setup, include=FALSE}
knitr::opts_chunk$set(
  echo = TRUE,
  fig.align = "center",
  fig.width = 6,
  fig.height = 4,
  fig.cap = "",
  message = FALSE,
  warning = FALSE
)
img_path <- "%s"
` + "```" + `
`

// emitter owns the two output sinks for the duration of a run. All content
// writes go through it so the spacing conventions live in one place.
type emitter struct {
	deck          strings.Builder
	exercises     strings.Builder
	saveExercises bool
	exerciseLines int
}

func newEmitter(saveExercises bool) *emitter {
	return &emitter{saveExercises: saveExercises}
}

// preamble writes the fixed deck header once, before the main pass.
func (e *emitter) preamble(meta *DeckMeta) {
	fmt.Fprintf(&e.deck, preambleTemplate, meta.Title, meta.Author, meta.Date, meta.ImageDir)
}

// line writes one raw line to the deck.
func (e *emitter) line(s string) {
	e.deck.WriteString(s)
	e.deck.WriteString("\n")
}

// blank writes the blank-line spacing that closes a block.
func (e *emitter) blank() {
	e.deck.WriteString("\n")
}

// bullet writes one sentence fragment as a dash bullet, or as an indented
// numbered item when the fragment begins with a numeral-dot marker.
// Every bullet gets a trailing blank line.
func (e *emitter) bullet(s string) {
	if isNumberedItem(s) {
		e.deck.WriteString("  " + s + "\n\n")
		return
	}
	e.deck.WriteString("- " + s + "\n\n")
}

// pageBreak opens a new page and re-emits the current section heading as the
// page banner. An empty section (content before the first heading) gets a
// bare page.
func (e *emitter) pageBreak(section string) {
	e.deck.WriteString(pageSeparator + "\n\n")
	if section != "" {
		e.deck.WriteString("## " + section + "\n\n")
	}
}

// exercise routes one raw line to the exercise stream. Routing always runs;
// the actual write is skipped when exercise saving is disabled.
func (e *emitter) exercise(s string) {
	e.exerciseLines++
	if !e.saveExercises {
		return
	}
	e.exercises.WriteString(s)
	e.exercises.WriteString("\n")
}

func (e *emitter) deckString() string      { return e.deck.String() }
func (e *emitter) exercisesString() string { return e.exercises.String() }
