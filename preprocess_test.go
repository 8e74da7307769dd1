package md2slides

import (
	"context"
	"testing"
)

func TestDocumentCleanerClean(t *testing.T) {
	cleaner := &documentCleaner{}

	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "blank lines are dropped",
			input:    "one\n\n\ntwo",
			expected: []string{"one", "two"},
		},
		{
			name:     "CRLF is normalized before splitting",
			input:    "one\r\ntwo\rthree",
			expected: []string{"one", "two", "three"},
		},
		{
			name:     "single-line comment is dropped",
			input:    "keep\n<!-- note to self -->\nkeep too",
			expected: []string{"keep", "keep too"},
		},
		{
			name:     "comment block is dropped whole",
			input:    "before\n<!--\n| a | b |\n| 1 | 2 |\n-->\nafter",
			expected: []string{"before", "after"},
		},
		{
			name:     "image path assignment is dropped",
			input:    "text\nimg_path <- \"img\"\nmore",
			expected: []string{"text", "more"},
		},
		{
			name:     "assignment with equals is dropped too",
			input:    "img_path = 'figures'\nkept",
			expected: []string{"kept"},
		},
		{
			name:     "content resembling markers inside lines survives",
			input:    "the img_path variable is discussed here",
			expected: []string{"the img_path variable is discussed here"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cleaner.Clean(context.Background(), tt.input)
			if len(got) != len(tt.expected) {
				t.Fatalf("Clean() = %q, want %q", got, tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("Clean()[%d] = %q, want %q", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestDocumentCleanerCancelledContext(t *testing.T) {
	cleaner := &documentCleaner{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if got := cleaner.Clean(ctx, "some content"); got != nil {
		t.Errorf("Clean() with cancelled context = %q, want nil", got)
	}
}
