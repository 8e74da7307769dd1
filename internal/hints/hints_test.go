package hints

import (
	"strings"
	"testing"
)

func TestForOutputExists(t *testing.T) {
	got := ForOutputExists("deck.md")
	if !strings.Contains(got, "deck.md") {
		t.Errorf("hint should mention the path: %q", got)
	}
	if strings.Count(got, "\n  hint: ") != 2 {
		t.Errorf("want two hint lines, got %q", got)
	}
}

func TestForConfigNotFound(t *testing.T) {
	got := ForConfigNotFound()
	if !strings.Contains(got, "--config") {
		t.Errorf("hint should point at the --config flag: %q", got)
	}
	if !strings.HasPrefix(got, "\n  hint: ") {
		t.Errorf("hint format mismatch: %q", got)
	}
}

func TestForUnbalancedMath(t *testing.T) {
	got := ForUnbalancedMath()
	if !strings.HasPrefix(got, "\n  hint: ") {
		t.Errorf("hint format mismatch: %q", got)
	}
}
