package site2pdf

import (
	"bytes"
	"context"
	"fmt"
	"html"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	ghtml "github.com/yuin/goldmark/renderer/html"
)

// pageTemplate wraps Goldmark's fragment output in a standalone HTML5 page.
// The <main> element marks the content the merge step tags and links to.
const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body>
<main>
%s</main>
</body>
</html>`

// pageRenderer converts a markdown source into a standalone HTML page.
type pageRenderer struct {
	md goldmark.Markdown
}

// newPageRenderer creates a renderer with GFM extensions and chroma-based
// syntax highlighting emitting CSS classes.
func newPageRenderer() *pageRenderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,      // Tables, strikethrough, autolinks, task lists
			extension.Footnote, // [^1] footnotes
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithRendererOptions(
			ghtml.WithXHTML(), // Self-closing tags
		),
	)
	return &pageRenderer{md: md}
}

// RenderPage converts markdown content to a standalone HTML5 page titled
// title. Supports context cancellation via goroutine + select pattern since
// Goldmark doesn't natively support context.
func (r *pageRenderer) RenderPage(ctx context.Context, title, content string) (string, error) {
	// Fast path: check context before starting
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
		if err := r.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrRenderPage, err)}
			return
		}
		done <- result{html: fmt.Sprintf(pageTemplate, html.EscapeString(title), buf.String())}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		return res.html, res.err
	}
}
