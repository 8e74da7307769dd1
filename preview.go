package md2slides

import (
	"bytes"
	"context"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// previewTemplate wraps Goldmark's fragment output in a complete HTML5
// document. The thematic-break rule marks the page boundaries, which is
// enough to eyeball where the paginator decided to cut.
const previewTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Deck preview</title>
<style>hr { border: none; border-top: 2px dashed #999; margin: 2em 0; }</style>
</head>
<body>
%s
</body>
</html>`

// HTMLPreviewer renders a generated deck to standalone HTML for the manual
// review the pagination estimates require. The preview does not execute
// code chunks; fences appear as highlighted source.
type HTMLPreviewer struct {
	md goldmark.Markdown
}

// NewHTMLPreviewer creates an HTMLPreviewer with GFM tables and syntax
// highlighting enabled.
func NewHTMLPreviewer() *HTMLPreviewer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM, // pipe tables
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
		),
	)
	return &HTMLPreviewer{md: md}
}

// Render converts deck markdown to a standalone HTML5 document. Supports
// context cancellation via goroutine + select since Goldmark doesn't
// natively take a context.
func (p *HTMLPreviewer) Render(ctx context.Context, deck string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := p.md.Convert([]byte(deck), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrPreviewRender, err)}
			return
		}
		done <- result{html: fmt.Sprintf(previewTemplate, buf.String())}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}
