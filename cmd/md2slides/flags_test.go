package main

import "testing"

func TestParseConvertFlags(t *testing.T) {
	args := []string{
		"--output", "deck",
		"--out-dir", "slides",
		"--title", "My Lecture",
		"--max-lines", "20",
		"--no-exercises",
		"-v",
		"lecture.Rmd",
	}

	flags, positional, err := parseConvertFlags(args)
	if err != nil {
		t.Fatalf("parseConvertFlags() error = %v", err)
	}

	if flags.output != "deck" {
		t.Errorf("output = %q, want deck", flags.output)
	}
	if flags.outDir != "slides" {
		t.Errorf("outDir = %q, want slides", flags.outDir)
	}
	if flags.deck.title != "My Lecture" {
		t.Errorf("title = %q, want My Lecture", flags.deck.title)
	}
	if flags.layout.maxLines != 20 {
		t.Errorf("maxLines = %d, want 20", flags.layout.maxLines)
	}
	if !flags.exercises.disabled {
		t.Error("exercises.disabled should be set")
	}
	if !flags.common.verbose {
		t.Error("verbose should be set")
	}
	if len(positional) != 1 || positional[0] != "lecture.Rmd" {
		t.Errorf("positional = %v, want [lecture.Rmd]", positional)
	}
}

func TestParseConvertFlagsDefaults(t *testing.T) {
	flags, positional, err := parseConvertFlags([]string{"input.md"})
	if err != nil {
		t.Fatalf("parseConvertFlags() error = %v", err)
	}

	if flags.output != "" || flags.workers != 0 || flags.previewHTML {
		t.Errorf("unexpected non-zero defaults: %+v", flags)
	}
	if len(positional) != 1 {
		t.Errorf("positional = %v, want one input", positional)
	}
}

func TestParseConvertFlagsUnknownFlag(t *testing.T) {
	if _, _, err := parseConvertFlags([]string{"--nope"}); err == nil {
		t.Error("unknown flag should fail")
	}
}
