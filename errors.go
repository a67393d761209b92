package reportkit

import "errors"

// Sentinel errors for library operations.
var (
	ErrInvalidFormat  = errors.New("invalid export format")
	ErrNilWrapper     = errors.New("text wrapper is required")
	ErrTextWrap       = errors.New("text wrapping failed")
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrPPTXGeneration = errors.New("PPTX generation failed")
	ErrHTMLConversion = errors.New("HTML conversion failed")

	// Layout validation errors.
	ErrInvalidPageSize     = errors.New("invalid page size")
	ErrInvalidMargin       = errors.New("invalid margin")
	ErrInvalidContentWidth = errors.New("invalid content width")
	ErrInvalidLineHeight   = errors.New("invalid line height")
	ErrInvalidFontSize     = errors.New("invalid font size")
)
