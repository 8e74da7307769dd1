// Package md2slides converts a long-form markdown lecture document into a
// paginated slide deck in the same dialect, plus an optional companion file
// holding the content of exercise sections.
//
// # Quick Start
//
// Create a service and convert a document:
//
//	svc := md2slides.New()
//	result, err := svc.Convert(ctx, md2slides.Input{
//	    Markdown: content,
//	    Meta:     &md2slides.DeckMeta{Title: "Probability", Author: "J. Doe"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("slides.md", []byte(result.Deck), 0644)
//
// The result contains the deck text (result.Deck), the extracted exercise
// text (result.Exercises), and any non-fatal warnings collected during the
// pass (result.Warnings).
//
// # Conversion Pipeline
//
// The conversion is a single forward pass over the document's lines:
//
//  1. Preprocessing (comment and blank-line removal, internal assignments)
//  2. Region matching (code fences, display math, plot detection)
//  3. Line classification (one structural tag per line)
//  4. Pagination (running page-weight budget, page breaks, section banners)
//  5. Emission (deck stream plus exercise stream)
//
// Pagination is an estimate. The page weight of a region is derived from its
// line count and ignores anything produced by executing code, so the
// generated deck should be reviewed before it is rendered. Use the HTML
// previewer for a quick visual check:
//
//	prev := md2slides.NewHTMLPreviewer()
//	html, err := prev.Render(ctx, result.Deck)
//
// # Configuration
//
// Page geometry and metadata travel with the Input:
//
//	result, err := svc.Convert(ctx, md2slides.Input{
//	    Markdown: content,
//	    Layout:   &md2slides.PageLayout{MaxLines: 18, CharsPerLine: 72},
//	    Meta:     &md2slides.DeckMeta{Title: "Inference", ImageDir: "figures"},
//	})
//
// Service-level options use the functional option pattern:
//
//	svc := md2slides.New(md2slides.WithTrace(os.Stderr))
//
// WithTrace enables a per-line trace of classification and pagination
// decisions, useful when a deck paginates unexpectedly.
package md2slides
