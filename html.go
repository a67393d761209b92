package reportkit

import (
	"bytes"
	"context"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// htmlShell wraps Goldmark's fragment output in a complete HTML5 document
// with the resolved stylesheet inlined.
const htmlShell = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
%s
</style>
</head>
<body>
%s
</body>
</html>`

// markdownRenderer abstracts Markdown to HTML conversion.
type markdownRenderer interface {
	RenderHTML(ctx context.Context, markdown, title, css string) (string, error)
}

// htmlRenderer converts Markdown to a standalone HTML document using
// goldmark (pure Go).
type htmlRenderer struct {
	md goldmark.Markdown
}

// newHTMLRenderer creates an htmlRenderer with GFM extensions and
// class-based syntax highlighting.
func newHTMLRenderer() *htmlRenderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,      // Tables, strikethrough, autolinks, task lists
			extension.Footnote, // [^1] footnotes
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true), // style via the stylesheet, not inline attributes
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
			html.WithXHTML(),
		),
	)
	return &htmlRenderer{md: md}
}

// RenderHTML converts markdown to a complete HTML5 document. Supports
// context cancellation via goroutine + select since goldmark does not
// take a context.
func (r *htmlRenderer) RenderHTML(ctx context.Context, markdown, title, css string) (string, error) {
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
		if err := r.md.Convert([]byte(markdown), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{html: fmt.Sprintf(htmlShell, htmlEscape(title), css, buf.String())}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		return res.html, res.err
	}
}

// htmlEscape escapes the few characters that matter inside <title>.
func htmlEscape(s string) string {
	return xmlEscaper.Replace(s)
}
