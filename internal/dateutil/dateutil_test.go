package dateutil

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestParseDateFormat(t *testing.T) {
	tests := []struct {
		name   string
		format string
		want   string
	}{
		{"iso", "YYYY-MM-DD", "2006-01-02"},
		{"european", "DD/MM/YYYY", "02/01/2006"},
		{"long month", "MMMM D, YYYY", "January 2, 2006"},
		{"short month", "MMM YY", "Jan 06"},
		{"single digits", "M/D/YY", "1/2/06"},
		{"literal text preserved", "YYYY year", "2006 year"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDateFormat(tt.format)
			if err != nil {
				t.Fatalf("ParseDateFormat(%q) error = %v", tt.format, err)
			}
			if got != tt.want {
				t.Errorf("ParseDateFormat(%q) = %q, want %q", tt.format, got, tt.want)
			}
		})
	}
}

func TestParseDateFormatInvalid(t *testing.T) {
	if _, err := ParseDateFormat(""); !errors.Is(err, ErrInvalidDateFormat) {
		t.Errorf("empty format: error = %v, want ErrInvalidDateFormat", err)
	}
	long := strings.Repeat("Y", MaxDateFormatLength+1)
	if _, err := ParseDateFormat(long); !errors.Is(err, ErrInvalidDateFormat) {
		t.Errorf("oversized format: error = %v, want ErrInvalidDateFormat", err)
	}
}

func TestResolveDate(t *testing.T) {
	fixed := time.Date(2025, time.March, 7, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"auto default", "auto", "2025-03-07"},
		{"auto custom", "auto:DD/MM/YYYY", "07/03/2025"},
		{"auto preset", "auto:long", "March 7, 2025"},
		{"auto preset mixed case", "auto:US", "03/07/2025"},
		{"passthrough literal", "Spring 2025", "Spring 2025"},
		{"passthrough empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveDate(tt.value, fixed)
			if err != nil {
				t.Fatalf("ResolveDate(%q) error = %v", tt.value, err)
			}
			if got != tt.want {
				t.Errorf("ResolveDate(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestResolveDateInvalid(t *testing.T) {
	fixed := time.Now()
	for _, value := range []string{"auto:", "automatic"} {
		if _, err := ResolveDate(value, fixed); !errors.Is(err, ErrInvalidDateFormat) {
			t.Errorf("ResolveDate(%q) error = %v, want ErrInvalidDateFormat", value, err)
		}
	}
}
