package reportkit

import (
	"bytes"
	"context"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// pdfFontFamily is the core font used for all PDF text. Core fonts need
// no embedding, keeping the output small and the metrics deterministic.
const pdfFontFamily = "Helvetica"

// pageRenderer flattens a paginated document into binary output.
type pageRenderer interface {
	RenderPages(ctx context.Context, doc Document, pages []Page, layout Layout) ([]byte, error)
}

// pdfRenderer draws paginated pages into a PDF document.
type pdfRenderer struct{}

// RenderPages produces one PDF page per paginated page, mapping style
// hints to font faces from the layout.
func (r *pdfRenderer) RenderPages(ctx context.Context, doc Document, pages []Page, layout Layout) ([]byte, error) {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "mm",
		Size:    gofpdf.SizeType{Wd: layout.PageWidth, Ht: layout.PageHeight},
	})
	pdf.SetTitle(doc.Title, true)
	pdf.SetCreator("reportkit", true)
	pdf.SetCreationDate(doc.GeneratedAt)
	pdf.SetAutoPageBreak(false, 0)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, page := range pages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		pdf.AddPage()
		for _, op := range page.Ops {
			r.applyStyle(pdf, op.Style, layout)
			text := tr(op.Text)
			x := op.X
			if op.Style == StyleFooter {
				x -= pdf.GetStringWidth(text) / 2
			}
			pdf.Text(x, op.Y, text)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}
	return buf.Bytes(), nil
}

// applyStyle sets the font face and color for a style hint.
func (r *pdfRenderer) applyStyle(pdf *gofpdf.Fpdf, style string, layout Layout) {
	switch style {
	case StyleTitle:
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont(pdfFontFamily, "B", layout.TitleFontSize)
	case StyleHeading:
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont(pdfFontFamily, "B", layout.HeadingFontSize)
	case StyleDate, StyleFooter:
		pdf.SetTextColor(120, 120, 120)
		pdf.SetFont(pdfFontFamily, "", layout.FooterFontSize)
	default:
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont(pdfFontFamily, "", layout.BodyFontSize)
	}
}
