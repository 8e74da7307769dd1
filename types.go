package md2slides

import (
	"fmt"
	"io"
)

// Page layout bounds and defaults.
const (
	DefaultMaxLines     = 15
	DefaultCharsPerLine = 60

	MinMaxLines     = 4
	MinCharsPerLine = 20
)

// DefaultImageDir is the image directory referenced by the deck preamble
// when none is configured.
const DefaultImageDir = "img"

// PageLayout configures the page-weight budget driving pagination.
type PageLayout struct {
	MaxLines     int // vertical budget per page, in estimated lines
	CharsPerLine int // horizontal capacity used to weigh prose and quotes
	MaxTitleLen  int // section title truncation (0 = unlimited)
}

// DefaultPageLayout returns a layout with default values.
func DefaultPageLayout() *PageLayout {
	return &PageLayout{
		MaxLines:     DefaultMaxLines,
		CharsPerLine: DefaultCharsPerLine,
		MaxTitleLen:  0,
	}
}

// Validate checks that layout values are usable.
// Returns nil if p is nil (nil means use defaults).
func (p *PageLayout) Validate() error {
	if p == nil {
		return nil
	}
	if p.MaxLines < MinMaxLines {
		return fmt.Errorf("%w: %d (must be at least %d)", ErrInvalidMaxLines, p.MaxLines, MinMaxLines)
	}
	if p.CharsPerLine < MinCharsPerLine {
		return fmt.Errorf("%w: %d (must be at least %d)", ErrInvalidCharsPerLine, p.CharsPerLine, MinCharsPerLine)
	}
	if p.MaxTitleLen < 0 {
		return fmt.Errorf("%w: %d (must be non-negative)", ErrInvalidMaxTitleLen, p.MaxTitleLen)
	}
	return nil
}

// DeckMeta holds the metadata written into the deck preamble.
type DeckMeta struct {
	Title    string
	Author   string
	Date     string // literal date string; resolution of "auto" happens in the CLI
	ImageDir string
}

// DefaultDeckMeta returns deck metadata with default values.
func DefaultDeckMeta() *DeckMeta {
	return &DeckMeta{ImageDir: DefaultImageDir}
}

// Input contains conversion parameters.
type Input struct {
	Markdown    string      // document content (required)
	Meta        *DeckMeta   // preamble metadata (optional, nil = defaults)
	Layout      *PageLayout // page geometry (optional, nil = defaults)
	NoExercises bool        // suppress the exercise stream (routing still runs)
}

// Result holds the outcome of one conversion.
type Result struct {
	Deck          string   // paginated slide deck, same dialect as the input
	Exercises     string   // extracted exercise sections, empty when none or suppressed
	Pages         int      // number of page breaks performed
	ExerciseLines int      // lines routed to the exercise stream (counted even when suppressed)
	Warnings      []string // non-fatal issues, e.g. unbalanced math delimiters
}

// HasExercises reports whether at least one exercise section was found.
func (r *Result) HasExercises() bool {
	return r.ExerciseLines > 0
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	trace io.Writer
}

// WithTrace enables a per-line trace of classification and pagination
// decisions, written to w. Panics if w is nil (programmer error).
func WithTrace(w io.Writer) Option {
	if w == nil {
		panic("md2slides: WithTrace writer must not be nil")
	}
	return func(s *Service) {
		s.cfg.trace = w
	}
}
