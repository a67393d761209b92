package reportkit

import (
	"fmt"
	"sync"

	"github.com/jung-kurt/gofpdf"
)

// fpdfWrapper measures text with the PDF backend's core font metrics.
// A dedicated measurement-only document keeps wrapping independent of
// any document being rendered; the mutex makes the wrapper safe for
// concurrent exports sharing one instance.
type fpdfWrapper struct {
	mu  sync.Mutex
	pdf *gofpdf.Fpdf
}

// newFpdfWrapper creates a wrapper measuring at the layout's body font.
func newFpdfWrapper(layout Layout) *fpdfWrapper {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "mm",
		Size:    gofpdf.SizeType{Wd: layout.PageWidth, Ht: layout.PageHeight},
	})
	pdf.SetFont(pdfFontFamily, "", layout.BodyFontSize)
	return &fpdfWrapper{pdf: pdf}
}

// WrapText word-wraps text to maxWidth using the backend's string-width
// measurement. Words are never split mid-word.
func (w *fpdfWrapper) WrapText(text string, maxWidth float64) ([]string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	lines := w.pdf.SplitText(text, maxWidth)
	if w.pdf.Err() {
		return nil, fmt.Errorf("measuring text: %w", w.pdf.Error())
	}
	return lines, nil
}
