package reportkit

import (
	"fmt"
	"strings"
	"time"
)

// Export format constants.
const (
	FormatPDF  = "pdf"
	FormatPPTX = "pptx"
	FormatHTML = "html"
)

// Section is a titled block of content extracted from the markdown source.
// Content holds the raw source lines in order, not yet re-flowed.
type Section struct {
	Title   string
	Content []string
}

// Document is the complete export target. It is constructed fresh for
// every export and never mutated after construction.
type Document struct {
	Title       string
	GeneratedAt time.Time
	// DateLabel overrides the formatted GeneratedAt in the page header.
	// Empty means GeneratedAt is formatted with defaultDateLayout.
	DateLabel string
	Sections  []Section
}

// Layout holds the fixed page geometry used by the paginator.
// All lengths are in millimeters; font sizes are in points.
type Layout struct {
	PageWidth  float64
	PageHeight float64

	TopMargin    float64
	BottomMargin float64
	LeftMargin   float64

	// ContentWidth is the horizontal wrap width for body text.
	ContentWidth float64

	// LineHeight is the vertical advance per wrapped body line.
	LineHeight float64

	// HeadingHeight is the vertical advance after a section heading.
	HeadingHeight float64

	// SectionGap is the extra advance after a section's body.
	SectionGap float64

	// HeaderOffset is reserved below the top margin of the first page
	// for the document title and generation-date header.
	HeaderOffset float64

	TitleFontSize   float64
	HeadingFontSize float64
	BodyFontSize    float64
	FooterFontSize  float64
}

// DefaultLayout returns an A4 portrait layout with 20mm margins.
func DefaultLayout() Layout {
	return Layout{
		PageWidth:       210,
		PageHeight:      297,
		TopMargin:       20,
		BottomMargin:    20,
		LeftMargin:      20,
		ContentWidth:    170,
		LineHeight:      7,
		HeadingHeight:   12,
		SectionGap:      6,
		HeaderOffset:    22,
		TitleFontSize:   18,
		HeadingFontSize: 14,
		BodyFontSize:    11,
		FooterFontSize:  9,
	}
}

// Validate checks that the layout describes a usable page.
func (l Layout) Validate() error {
	if l.PageWidth <= 0 || l.PageHeight <= 0 {
		return fmt.Errorf("%w: %.1fx%.1f", ErrInvalidPageSize, l.PageWidth, l.PageHeight)
	}
	if l.TopMargin < 0 || l.BottomMargin < 0 || l.LeftMargin < 0 {
		return fmt.Errorf("%w: margins cannot be negative", ErrInvalidMargin)
	}
	if l.TopMargin+l.BottomMargin >= l.PageHeight {
		return fmt.Errorf("%w: vertical margins %.1f+%.1f leave no room on a %.1f page",
			ErrInvalidMargin, l.TopMargin, l.BottomMargin, l.PageHeight)
	}
	if l.ContentWidth <= 0 || l.LeftMargin+l.ContentWidth > l.PageWidth {
		return fmt.Errorf("%w: %.1f", ErrInvalidContentWidth, l.ContentWidth)
	}
	if l.LineHeight <= 0 {
		return fmt.Errorf("%w: %.1f", ErrInvalidLineHeight, l.LineHeight)
	}
	if l.HeadingHeight < 0 || l.SectionGap < 0 || l.HeaderOffset < 0 {
		return fmt.Errorf("%w: heading height, section gap, and header offset cannot be negative", ErrInvalidLineHeight)
	}
	for _, size := range []float64{l.TitleFontSize, l.HeadingFontSize, l.BodyFontSize, l.FooterFontSize} {
		if size <= 0 {
			return fmt.Errorf("%w: %.1f", ErrInvalidFontSize, size)
		}
	}
	return nil
}

// bottomThreshold is the vertical limit content may occupy on a page.
func (l Layout) bottomThreshold() float64 {
	return l.PageHeight - l.BottomMargin
}

// Input contains export parameters.
type Input struct {
	Markdown string  // Markdown content; an empty body exports header-only pages
	Title    string  // Document title; empty falls back to the markdown H1, then untitledTitle
	Date     string  // "auto", "auto:FORMAT", a literal label, or empty for the export time
	Format   string  // "pdf", "pptx", "html" (empty = pdf)
	CSS      string  // Extra CSS appended to the HTML export stylesheet
	Layout   *Layout // Page geometry override (nil = exporter default)
}

// ExportResult holds the generated document.
type ExportResult struct {
	Data   []byte
	Format string
	// Pages is the paginated page count; zero for HTML export.
	Pages int
}

// resolveFormat normalizes the format string, defaulting to PDF.
func resolveFormat(format string) (string, error) {
	switch strings.ToLower(format) {
	case "", FormatPDF:
		return FormatPDF, nil
	case FormatPPTX:
		return FormatPPTX, nil
	case FormatHTML:
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("%w: %q (must be pdf, pptx, or html)", ErrInvalidFormat, format)
	}
}

// Option configures an Exporter.
type Option func(*Exporter)

// exporterConfig holds internal configuration for Exporter.
type exporterConfig struct {
	layout        Layout
	clock         func() time.Time
	wrapper       TextWrapper
	styleInput    string
	resolvedStyle string
}

// WithLayout sets the default page geometry for every export.
// Per-export overrides are passed via Input.Layout.
func WithLayout(l Layout) Option {
	return func(e *Exporter) {
		e.cfg.layout = l
	}
}

// WithClock injects the time source used for generation dates.
// Intended for tests; the default is time.Now.
func WithClock(clock func() time.Time) Option {
	if clock == nil {
		panic("reportkit: WithClock requires a non-nil clock")
	}
	return func(e *Exporter) {
		e.cfg.clock = clock
	}
}

// WithWrapper overrides the text-measurement collaborator used by the
// paginator. The default measures with the PDF backend's font metrics.
func WithWrapper(w TextWrapper) Option {
	return func(e *Exporter) {
		e.cfg.wrapper = w
	}
}

// WithStyle sets the stylesheet for HTML export. Accepts a built-in style
// name, a CSS file path, or raw CSS content.
func WithStyle(style string) Option {
	return func(e *Exporter) {
		e.cfg.styleInput = style
	}
}
