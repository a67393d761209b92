package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestLoadStyle(t *testing.T) {
	t.Parallel()

	t.Run("default style", func(t *testing.T) {
		t.Parallel()

		css, err := LoadStyle(DefaultStyleName)
		if err != nil {
			t.Fatalf("LoadStyle() error = %v", err)
		}
		if !strings.Contains(css, "body") {
			t.Error("default style has no body rule")
		}
	})

	t.Run("every listed style loads", func(t *testing.T) {
		t.Parallel()

		names := StyleNames()
		if len(names) == 0 {
			t.Fatal("no embedded styles found")
		}
		for _, name := range names {
			if _, err := LoadStyle(name); err != nil {
				t.Errorf("LoadStyle(%q) error = %v", name, err)
			}
		}
	})

	t.Run("unknown style", func(t *testing.T) {
		t.Parallel()

		if _, err := LoadStyle("missing"); !errors.Is(err, ErrStyleNotFound) {
			t.Errorf("error = %v, want ErrStyleNotFound", err)
		}
	})

	t.Run("invalid names rejected", func(t *testing.T) {
		t.Parallel()

		for _, name := range []string{"", "../secrets", "a/b", `a\b`, "style.css"} {
			if _, err := LoadStyle(name); !errors.Is(err, ErrInvalidName) {
				t.Errorf("LoadStyle(%q) error = %v, want ErrInvalidName", name, err)
			}
		}
	})
}
