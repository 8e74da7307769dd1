package md2slides

import (
	"context"
	"io"
)

// Service orchestrates the document-to-deck pipeline.
type Service struct {
	cfg          serviceConfig
	preprocessor linePreprocessor
	splitter     sentenceSplitter
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithTrace).
func New(opts ...Option) *Service {
	s := &Service{
		cfg:          serviceConfig{trace: io.Discard},
		preprocessor: &documentCleaner{},
		splitter:     &proseSplitter{},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Convert runs the full single pass and returns the deck and exercise
// streams. The context is checked between stages; the pass itself never
// aborts on malformed content — delimiters degrade to best-effort output
// plus warnings in the result.
func (s *Service) Convert(ctx context.Context, input Input) (*Result, error) {
	meta, layout, err := s.resolveInput(input)
	if err != nil {
		return nil, err
	}

	lines := s.preprocessor.Clean(ctx, input.Markdown)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	doc := classifyDocument(lines)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	em := newEmitter(!input.NoExercises)
	em.preamble(meta)

	p := &paginator{
		layout: layout,
		em:     em,
		split:  s.splitter,
		trace:  s.cfg.trace,
	}
	st := p.run(doc)

	return &Result{
		Deck:          em.deckString(),
		Exercises:     em.exercisesString(),
		Pages:         st.page,
		ExerciseLines: em.exerciseLines,
		Warnings:      doc.warnings,
	}, nil
}

// resolveInput validates the input and fills nil settings with defaults.
func (s *Service) resolveInput(input Input) (*DeckMeta, *PageLayout, error) {
	if input.Markdown == "" {
		return nil, nil, ErrEmptyMarkdown
	}
	if err := input.Layout.Validate(); err != nil {
		return nil, nil, err
	}

	meta := DefaultDeckMeta()
	if input.Meta != nil {
		m := *input.Meta // copy, callers keep their value
		meta = &m
	}
	if meta.ImageDir == "" {
		meta.ImageDir = DefaultImageDir
	}

	layout := input.Layout
	if layout == nil {
		layout = DefaultPageLayout()
	}

	return meta, layout, nil
}
