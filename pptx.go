package reportkit

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"strings"
	"text/template"
)

// EMU (English Metric Unit) conversion factors used by OOXML geometry.
const (
	emuPerMM   = 36000
	emuPerPt   = 12700
	mmPerPoint = 0.3528
)

// pptxRenderer flattens paginated pages into a PowerPoint package, one
// slide per page with absolutely positioned text boxes. The package is
// assembled by hand: the OOXML parts are static boilerplate plus two
// templates, which keeps the renderer dependency-free.
type pptxRenderer struct {
	slideTmpl *template.Template
	presTmpl  *template.Template
}

func newPPTXRenderer() *pptxRenderer {
	return &pptxRenderer{
		slideTmpl: template.Must(template.New("slide").Parse(pptxSlideTemplate)),
		presTmpl:  template.Must(template.New("presentation").Parse(pptxPresentationTemplate)),
	}
}

// pptxPart is one file inside the .pptx zip container.
type pptxPart struct {
	name    string
	content string
}

// slideShape is one positioned text box on a slide, in EMU coordinates.
type slideShape struct {
	ID     int
	X, Y   int64
	CX, CY int64
	Text   string // XML-escaped
	Size   int    // hundredths of a point
	Bold   bool
	Center bool
	Color  string // RRGGBB
}

// slideData feeds the slide template.
type slideData struct {
	Shapes []slideShape
}

// presentationData feeds the presentation template.
type presentationData struct {
	SlideCX int64
	SlideCY int64
	Slides  []presentationSlide
}

type presentationSlide struct {
	ID    int // sldId, starting at 256
	RelID int // rId, starting at 2 (rId1 is the slide master)
}

// xmlEscaper escapes text content for direct inclusion in XML.
var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// RenderPages assembles a minimal but valid .pptx: content types, package
// relationships, presentation, slide master, slide layout, theme, core
// properties, and one slide per paginated page.
func (r *pptxRenderer) RenderPages(ctx context.Context, doc Document, pages []Page, layout Layout) ([]byte, error) {
	parts, err := r.buildParts(ctx, doc, pages, layout)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, part := range parts {
		w, err := zw.Create(part.name)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrPPTXGeneration, err)
		}
		if _, err := w.Write([]byte(part.content)); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrPPTXGeneration, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPPTXGeneration, err)
	}
	return buf.Bytes(), nil
}

// buildParts produces every package part in a stable order.
func (r *pptxRenderer) buildParts(ctx context.Context, doc Document, pages []Page, layout Layout) ([]pptxPart, error) {
	presXML, err := r.presentation(pages, layout)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPPTXGeneration, err)
	}

	parts := []pptxPart{
		{"[Content_Types].xml", pptxContentTypes(len(pages))},
		{"_rels/.rels", pptxPackageRels},
		{"docProps/core.xml", pptxCoreProps(doc)},
		{"ppt/presentation.xml", presXML},
		{"ppt/_rels/presentation.xml.rels", pptxPresentationRels(len(pages))},
		{"ppt/slideMasters/slideMaster1.xml", pptxSlideMaster},
		{"ppt/slideMasters/_rels/slideMaster1.xml.rels", pptxSlideMasterRels},
		{"ppt/slideLayouts/slideLayout1.xml", pptxSlideLayout},
		{"ppt/slideLayouts/_rels/slideLayout1.xml.rels", pptxSlideLayoutRels},
		{"ppt/theme/theme1.xml", pptxTheme},
	}

	for i, page := range pages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		slideXML, err := r.slide(page, layout)
		if err != nil {
			return nil, fmt.Errorf("%w: slide %d: %v", ErrPPTXGeneration, i+1, err)
		}
		parts = append(parts,
			pptxPart{fmt.Sprintf("ppt/slides/slide%d.xml", i+1), slideXML},
			pptxPart{fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", i+1), pptxSlideRels},
		)
	}
	return parts, nil
}

// presentation renders presentation.xml with the slide list and size.
func (r *pptxRenderer) presentation(pages []Page, layout Layout) (string, error) {
	data := presentationData{
		SlideCX: int64(layout.PageWidth * emuPerMM),
		SlideCY: int64(layout.PageHeight * emuPerMM),
	}
	for i := range pages {
		data.Slides = append(data.Slides, presentationSlide{ID: 256 + i, RelID: 2 + i})
	}
	var sb strings.Builder
	if err := r.presTmpl.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// slide renders one slide part from a paginated page.
func (r *pptxRenderer) slide(page Page, layout Layout) (string, error) {
	data := slideData{Shapes: make([]slideShape, 0, len(page.Ops))}
	for i, op := range page.Ops {
		size := styleFontSize(op.Style, layout)

		// Draw-op Y is a text baseline; a PPTX box is anchored at its
		// top edge, so shift up by the glyph height.
		x := op.X
		width := layout.ContentWidth
		if op.Style == StyleFooter {
			x = 0
			width = layout.PageWidth
		}
		data.Shapes = append(data.Shapes, slideShape{
			ID:     i + 2, // id 1 is the group shape
			X:      int64(x * emuPerMM),
			Y:      int64((op.Y - size*mmPerPoint) * emuPerMM),
			CX:     int64(width * emuPerMM),
			CY:     int64(size) * emuPerPt * 2,
			Text:   xmlEscaper.Replace(op.Text),
			Size:   int(size * 100),
			Bold:   op.Style == StyleTitle || op.Style == StyleHeading,
			Center: op.Style == StyleFooter,
			Color:  styleColor(op.Style),
		})
	}
	var sb strings.Builder
	if err := r.slideTmpl.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// styleFontSize maps a style hint to its point size from the layout.
func styleFontSize(style string, layout Layout) float64 {
	switch style {
	case StyleTitle:
		return layout.TitleFontSize
	case StyleHeading:
		return layout.HeadingFontSize
	case StyleDate, StyleFooter:
		return layout.FooterFontSize
	default:
		return layout.BodyFontSize
	}
}

// styleColor maps a style hint to an RRGGBB text color.
func styleColor(style string) string {
	if style == StyleDate || style == StyleFooter {
		return "787878"
	}
	return "000000"
}
