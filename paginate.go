package reportkit

import (
	"fmt"
	"strings"
)

// Style hints attached to draw instructions. Renderers map these to
// concrete fonts; the paginator itself carries no font metrics.
const (
	StyleTitle   = "title"
	StyleDate    = "date"
	StyleHeading = "heading"
	StyleBody    = "body"
	StyleFooter  = "footer"
)

// defaultDateLayout formats Document.GeneratedAt when no DateLabel is set.
const defaultDateLayout = "January 2, 2006"

// footerFormat is the literal page footer pattern.
const footerFormat = "Page %d of %d"

// TextOp is a single positioned draw instruction. X and Y are in the
// layout's units; Y is the text baseline. Footer ops are horizontally
// centered on X.
type TextOp struct {
	Text  string
	X     float64
	Y     float64
	Style string
}

// Page is an ordered list of draw instructions for one fixed-size page.
type Page struct {
	Ops []TextOp
}

// TextWrapper word-wraps text to a maximum width. It is supplied by the
// rendering backend and must be safe for use by concurrent exports.
// Words are never split; a word wider than maxWidth occupies its own line.
type TextWrapper interface {
	WrapText(text string, maxWidth float64) ([]string, error)
}

// Paginate lays the document out onto fixed-size pages. The first page
// carries the title and generation-date header; every page is stamped
// with a "Page i of N" footer once the total count is known.
//
// A section's body is placed in one piece: the overflow check uses the
// pre-computed total extent of the wrapped lines, so a section taller
// than a whole page overflows that page rather than being subdivided.
func Paginate(doc Document, layout Layout, wrapper TextWrapper) ([]Page, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	if wrapper == nil {
		return nil, ErrNilWrapper
	}

	p := pager{layout: layout}
	p.newPage()
	p.header(doc)

	threshold := layout.bottomThreshold()
	for _, sec := range doc.Sections {
		if p.cursor > threshold {
			p.newPage()
		}

		p.emit(sec.Title, p.cursor, StyleHeading)
		p.cursor += layout.HeadingHeight

		wrapped, err := wrapSection(sec, layout.ContentWidth, wrapper)
		if err != nil {
			return nil, err
		}

		extent := float64(len(wrapped)) * layout.LineHeight
		if p.cursor+extent > threshold {
			p.newPage()
		}

		for i, line := range wrapped {
			if line == "" {
				continue // blank lines occupy space but draw nothing
			}
			p.emit(line, p.cursor+float64(i)*layout.LineHeight, StyleBody)
		}
		p.cursor += extent + layout.SectionGap
	}

	p.stampFooters()
	return p.pages, nil
}

// wrapSection re-flows a section's source lines through the wrapper.
// Each source line wraps independently; blank lines are kept as spacers.
func wrapSection(sec Section, maxWidth float64, wrapper TextWrapper) ([]string, error) {
	var wrapped []string
	for _, line := range sec.Content {
		if strings.TrimSpace(line) == "" {
			wrapped = append(wrapped, "")
			continue
		}
		lines, err := wrapper.WrapText(line, maxWidth)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTextWrap, err)
		}
		wrapped = append(wrapped, lines...)
	}
	return wrapped, nil
}

// pager tracks the ephemeral pagination state: the page list under
// construction and the vertical cursor on the current page.
type pager struct {
	layout Layout
	pages  []Page
	cursor float64
}

// newPage starts a fresh page and resets the cursor to the top margin.
func (p *pager) newPage() {
	p.pages = append(p.pages, Page{})
	p.cursor = p.layout.TopMargin
}

// emit appends a draw instruction to the current page at the left margin.
func (p *pager) emit(text string, y float64, style string) {
	last := len(p.pages) - 1
	p.pages[last].Ops = append(p.pages[last].Ops, TextOp{
		Text:  text,
		X:     p.layout.LeftMargin,
		Y:     y,
		Style: style,
	})
}

// header draws the document title and generation date on the first page
// and advances the cursor past the reserved header band.
func (p *pager) header(doc Document) {
	p.emit(doc.Title, p.layout.TopMargin, StyleTitle)

	label := doc.DateLabel
	if label == "" {
		label = doc.GeneratedAt.Format(defaultDateLayout)
	}
	p.emit(label, p.layout.TopMargin+p.layout.HeaderOffset/2, StyleDate)

	p.cursor = p.layout.TopMargin + p.layout.HeaderOffset
}

// stampFooters adds the page-count footer to every page. Deferred until
// pagination completes because the total is not known earlier.
func (p *pager) stampFooters() {
	total := len(p.pages)
	y := p.layout.PageHeight - p.layout.BottomMargin/2
	for i := range p.pages {
		p.pages[i].Ops = append(p.pages[i].Ops, TextOp{
			Text:  fmt.Sprintf(footerFormat, i+1, total),
			X:     p.layout.PageWidth / 2,
			Y:     y,
			Style: StyleFooter,
		})
	}
}
