package reportkit

import (
	"errors"
	"testing"
)

func TestLayout_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Layout)
		wantErr error
	}{
		{"default layout valid", func(*Layout) {}, nil},
		{"zero page width", func(l *Layout) { l.PageWidth = 0 }, ErrInvalidPageSize},
		{"negative page height", func(l *Layout) { l.PageHeight = -1 }, ErrInvalidPageSize},
		{"negative margin", func(l *Layout) { l.TopMargin = -5 }, ErrInvalidMargin},
		{"margins consume page", func(l *Layout) { l.TopMargin = 150; l.BottomMargin = 150 }, ErrInvalidMargin},
		{"zero content width", func(l *Layout) { l.ContentWidth = 0 }, ErrInvalidContentWidth},
		{"content width past right edge", func(l *Layout) { l.ContentWidth = 200 }, ErrInvalidContentWidth},
		{"zero line height", func(l *Layout) { l.LineHeight = 0 }, ErrInvalidLineHeight},
		{"negative section gap", func(l *Layout) { l.SectionGap = -1 }, ErrInvalidLineHeight},
		{"zero body font", func(l *Layout) { l.BodyFontSize = 0 }, ErrInvalidFontSize},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			layout := DefaultLayout()
			tt.mutate(&layout)

			err := layout.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestResolveFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"empty defaults to pdf", "", FormatPDF, false},
		{"pdf", "pdf", FormatPDF, false},
		{"pptx", "pptx", FormatPPTX, false},
		{"html", "html", FormatHTML, false},
		{"case insensitive", "PDF", FormatPDF, false},
		{"unknown", "docx", "", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := resolveFormat(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidFormat) {
					t.Errorf("error = %v, want ErrInvalidFormat", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("resolveFormat() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("resolveFormat() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDefaultLayout_ThresholdGeometry(t *testing.T) {
	t.Parallel()

	l := DefaultLayout()
	if got := l.bottomThreshold(); got != l.PageHeight-l.BottomMargin {
		t.Errorf("bottomThreshold() = %.1f, want %.1f", got, l.PageHeight-l.BottomMargin)
	}
	if l.LeftMargin+l.ContentWidth > l.PageWidth {
		t.Errorf("default content band %.1f+%.1f exceeds page width %.1f", l.LeftMargin, l.ContentWidth, l.PageWidth)
	}
}
