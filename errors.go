package md2slides

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown = errors.New("markdown content cannot be empty")
	ErrPreviewRender = errors.New("HTML preview rendering failed")

	// Page layout validation errors.
	ErrInvalidMaxLines     = errors.New("invalid max lines per page")
	ErrInvalidCharsPerLine = errors.New("invalid characters per line")
	ErrInvalidMaxTitleLen  = errors.New("invalid maximum title length")
)
