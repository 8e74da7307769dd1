package md2slides

import (
	"strings"
	"testing"
)

func TestProseSplitterSplit(t *testing.T) {
	sp := &proseSplitter{}

	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "two plain sentences",
			input:    "This is sentence one. This is sentence two.",
			expected: []string{"This is sentence one.", "This is sentence two."},
		},
		{
			name:     "single sentence without terminal punctuation",
			input:    "No punctuation here",
			expected: []string{"No punctuation here."},
		},
		{
			name:     "decimal number is not a boundary",
			input:    "The value of pi is 3.14 approximately. Use it wisely.",
			expected: []string{"The value of pi is 3.14 approximately.", "Use it wisely."},
		},
		{
			name:     "title abbreviation is not a boundary",
			input:    "Dr. Smith proved it. Nobody objected.",
			expected: []string{"Dr. Smith proved it.", "Nobody objected."},
		},
		{
			name:     "longer abbreviation survives its prefix",
			input:    "Mrs. Jones agreed. So did Mr. Brown.",
			expected: []string{"Mrs. Jones agreed.", "So did Mr. Brown."},
		},
		{
			name:     "numbered-list marker is not a boundary",
			input:    "1. First item with some text",
			expected: []string{"1. First item with some text."},
		},
		{
			name:     "latin abbreviations",
			input:    "Use estimators, e.g. the sample mean. They converge.",
			expected: []string{"Use estimators, e.g. the sample mean.", "They converge."},
		},
		{
			name:     "question and exclamation are not boundaries",
			input:    "Why? Because it works!",
			expected: []string{"Why? Because it works!"},
		},
		{
			name:     "whitespace-only fragments are dropped",
			input:    "One.  . Two.",
			expected: []string{"One.", "Two."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sp.Split(tt.input)
			if len(got) != len(tt.expected) {
				t.Fatalf("Split() = %q, want %q", got, tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("Split()[%d] = %q, want %q", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

// Splitting and rejoining must reproduce the original line modulo the
// protected-period normalization.
func TestProseSplitterRoundTrip(t *testing.T) {
	sp := &proseSplitter{}

	inputs := []string{
		"This is sentence one. This is sentence two.",
		"The mean is 3.5 and the variance is 2.25. Both are finite.",
		"Dr. Smith and Prof. Jones agree. The result holds.",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			got := strings.Join(sp.Split(input), " ")
			if got != input {
				t.Errorf("round trip = %q, want %q", got, input)
			}
		})
	}
}

func TestIsNumberedItem(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"1. First point", true},
		{"12. Later point", true},
		{"Plain sentence.", false},
		{"3.14 starts with a decimal", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := isNumberedItem(tt.input); got != tt.expected {
				t.Errorf("isNumberedItem(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}
