package reportkit

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/SumanthCsy/reportkit/internal/assets"
	"github.com/SumanthCsy/reportkit/internal/fileutil"
)

// Compile-time interface implementation checks. These catch signature
// mismatches between collaborators and their interfaces at build time.
var (
	_ pageRenderer     = (*pdfRenderer)(nil)
	_ pageRenderer     = (*pptxRenderer)(nil)
	_ markdownRenderer = (*htmlRenderer)(nil)
	_ TextWrapper      = (*fpdfWrapper)(nil)
)

// untitledTitle labels documents with neither an Input.Title nor a
// markdown level-1 heading.
const untitledTitle = "Untitled Report"

// Exporter orchestrates the sectionize-paginate-render pipeline.
// Create with NewExporter and reuse across exports; each export owns its
// own pagination state, so an Exporter is safe for concurrent use.
type Exporter struct {
	cfg  exporterConfig
	html markdownRenderer
	pdf  pageRenderer
	pptx pageRenderer
}

// NewExporter creates an Exporter with default configuration.
// Use options to customize behavior (e.g., WithLayout, WithStyle).
// Returns an error if the configured layout or style is unusable.
func NewExporter(opts ...Option) (*Exporter, error) {
	e := &Exporter{
		cfg: exporterConfig{
			layout: DefaultLayout(),
			clock:  time.Now,
		},
	}

	for _, opt := range opts {
		opt(e)
	}

	if err := e.cfg.layout.Validate(); err != nil {
		return nil, err
	}
	if err := e.resolveStyle(); err != nil {
		return nil, err
	}

	// Create renderers if not injected (e.g., by tests)
	if e.html == nil {
		e.html = newHTMLRenderer()
	}
	if e.pdf == nil {
		e.pdf = &pdfRenderer{}
	}
	if e.pptx == nil {
		e.pptx = newPPTXRenderer()
	}

	return e, nil
}

// Export runs the full pipeline and returns the generated document.
// The context is used for cancellation between stages.
// Recovers from internal panics to prevent crashes from propagating to
// callers.
func (e *Exporter) Export(ctx context.Context, input Input) (result *ExportResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	format, err := resolveFormat(input.Format)
	if err != nil {
		return nil, err
	}

	layout := e.cfg.layout
	if input.Layout != nil {
		layout = *input.Layout
		if err := layout.Validate(); err != nil {
			return nil, err
		}
	}

	doc, err := e.buildDocument(input)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if format == FormatHTML {
		css := e.cfg.resolvedStyle
		if input.CSS != "" {
			css += "\n" + input.CSS
		}
		html, err := e.html.RenderHTML(ctx, input.Markdown, doc.Title, css)
		if err != nil {
			return nil, err
		}
		return &ExportResult{Data: []byte(html), Format: FormatHTML}, nil
	}

	wrapper := e.cfg.wrapper
	if wrapper == nil {
		wrapper = newFpdfWrapper(layout)
	}
	pages, err := Paginate(doc, layout, wrapper)
	if err != nil {
		return nil, fmt.Errorf("paginating document: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	renderer := e.pdf
	if format == FormatPPTX {
		renderer = e.pptx
	}
	data, err := renderer.RenderPages(ctx, doc, pages, layout)
	if err != nil {
		return nil, fmt.Errorf("rendering document: %w", err)
	}

	return &ExportResult{Data: data, Format: format, Pages: len(pages)}, nil
}

// buildDocument assembles the immutable export target from the input:
// title resolution, generation date, and sectionized body.
func (e *Exporter) buildDocument(input Input) (Document, error) {
	title := input.Title
	if title == "" {
		if extracted, ok := ExtractTitle(input.Markdown); ok {
			title = extracted
		} else {
			title = untitledTitle
		}
	}

	now := e.cfg.clock()
	label := ""
	if input.Date != "" {
		resolved, err := ResolveDate(input.Date, now)
		if err != nil {
			return Document{}, err
		}
		label = resolved
	}

	return Document{
		Title:       title,
		GeneratedAt: now,
		DateLabel:   label,
		Sections:    Sectionize(input.Markdown),
	}, nil
}

// resolveStyle resolves the style input (name, path, or CSS content) to
// CSS content for HTML export. Called once during NewExporter.
func (e *Exporter) resolveStyle() error {
	input := e.cfg.styleInput
	if input == "" {
		css, err := assets.LoadStyle(assets.DefaultStyleName)
		if err != nil {
			return err
		}
		e.cfg.resolvedStyle = css
		return nil
	}

	// File path? (contains / or \)
	if fileutil.IsFilePath(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("loading style file %q: %w", input, err)
		}
		e.cfg.resolvedStyle = string(content)
		return nil
	}

	// CSS content? (contains {)
	if fileutil.IsCSS(input) {
		e.cfg.resolvedStyle = input
		return nil
	}

	css, err := assets.LoadStyle(input)
	if err != nil {
		return fmt.Errorf("loading style %q: %w", input, err)
	}
	e.cfg.resolvedStyle = css
	return nil
}
