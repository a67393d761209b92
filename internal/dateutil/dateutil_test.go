package dateutil

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()

	fixed := time.Date(2023, 12, 5, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		format  string
		want    string // fixed time rendered through the parsed layout
		wantErr bool
	}{
		{"iso", "YYYY-MM-DD", "2023-12-05", false},
		{"european", "DD/MM/YYYY", "05/12/2023", false},
		{"us", "MM/DD/YYYY", "12/05/2023", false},
		{"long month", "MMMM D, YYYY", "December 5, 2023", false},
		{"abbreviated month", "MMM D YY", "Dec 5 23", false},
		{"single digit tokens", "M/D/YYYY", "12/5/2023", false},
		{"dots as separators", "DD.MM.YYYY", "05.12.2023", false},
		{"empty", "", "", true},
		{"unknown character", "YYYY-MM-DDZ", "", true},
		{"too long", strings.Repeat("Y", MaxFormatLength+1), "", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			layout, err := ParseFormat(tt.format)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDateFormat) {
					t.Errorf("error = %v, want ErrInvalidDateFormat", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFormat(%q) error = %v", tt.format, err)
			}
			if got := fixed.Format(layout); got != tt.want {
				t.Errorf("format %q rendered %q, want %q", tt.format, got, tt.want)
			}
		})
	}
}

func TestPresets_AllParse(t *testing.T) {
	t.Parallel()

	for name, format := range Presets {
		if _, err := ParseFormat(format); err != nil {
			t.Errorf("preset %q (%q) does not parse: %v", name, format, err)
		}
	}
}
