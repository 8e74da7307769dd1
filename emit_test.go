package md2slides

import (
	"strings"
	"testing"
)

func TestEmitterPreamble(t *testing.T) {
	em := newEmitter(true)
	em.preamble(&DeckMeta{
		Title:    "Point Estimation",
		Author:   "J. Doe",
		Date:     "2026-08-30",
		ImageDir: "figures",
	})

	deck := em.deckString()

	for _, want := range []string{
		`title: "Point Estimation"`,
		`author: "J. Doe"`,
		`date: "2026-08-30"`,
		`img_path <- "figures"`,
		"xaringan::moon_reader",
		"```{r setup, include=FALSE}",
		"fig.cap = \"\"",
	} {
		if !strings.Contains(deck, want) {
			t.Errorf("preamble missing %q", want)
		}
	}
	if !strings.HasPrefix(deck, "---\n") {
		t.Error("preamble must start with the front-matter delimiter")
	}
}

func TestEmitterBullet(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "dash bullet with trailing blank line",
			input:    "A plain sentence.",
			expected: "- A plain sentence.\n\n",
		},
		{
			name:     "numbered fragment becomes indented item",
			input:    "1. First point.",
			expected: "  1. First point.\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := newEmitter(true)
			em.bullet(tt.input)
			if got := em.deckString(); got != tt.expected {
				t.Errorf("bullet(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestEmitterPageBreak(t *testing.T) {
	em := newEmitter(true)
	em.pageBreak("Estimation")
	if got := em.deckString(); got != "---\n\n## Estimation\n\n" {
		t.Errorf("pageBreak = %q", got)
	}

	em = newEmitter(true)
	em.pageBreak("")
	if got := em.deckString(); got != "---\n\n" {
		t.Errorf("pageBreak with no section = %q", got)
	}
}

func TestEmitterExerciseSuppression(t *testing.T) {
	em := newEmitter(false)
	em.exercise("## Exercises")
	em.exercise("1. Problem")

	if em.exercisesString() != "" {
		t.Errorf("exercises = %q, want empty", em.exercisesString())
	}
	if em.exerciseLines != 2 {
		t.Errorf("exerciseLines = %d, want 2 (routing still counted)", em.exerciseLines)
	}
}
