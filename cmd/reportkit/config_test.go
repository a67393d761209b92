package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/SumanthCsy/reportkit"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("empty name", func(t *testing.T) {
		t.Parallel()
		_, err := LoadConfig("")
		if !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("err = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("missing file path", func(t *testing.T) {
		t.Parallel()
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("err = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("valid config", func(t *testing.T) {
		t.Parallel()
		path := writeConfigFile(t, `
format: pptx
style: plain
date: auto
output:
  dir: ./reports
layout:
  topMargin: 25
  bodyFontSize: 12
`)
		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Format != "pptx" {
			t.Errorf("Format = %q, want %q", cfg.Format, "pptx")
		}
		if cfg.Style != "plain" {
			t.Errorf("Style = %q, want %q", cfg.Style, "plain")
		}
		if cfg.Date != "auto" {
			t.Errorf("Date = %q, want %q", cfg.Date, "auto")
		}
		if cfg.Output.Dir != "./reports" {
			t.Errorf("Output.Dir = %q, want %q", cfg.Output.Dir, "./reports")
		}
		if cfg.Layout.TopMargin != 25 {
			t.Errorf("Layout.TopMargin = %v, want 25", cfg.Layout.TopMargin)
		}
		if cfg.Layout.BodyFontSize != 12 {
			t.Errorf("Layout.BodyFontSize = %v, want 12", cfg.Layout.BodyFontSize)
		}
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		t.Parallel()
		path := writeConfigFile(t, "format: pdf\nbogus: true\n")
		_, err := LoadConfig(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("err = %v, want ErrConfigParse", err)
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()
		path := writeConfigFile(t, "format: [unclosed\n")
		_, err := LoadConfig(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("err = %v, want ErrConfigParse", err)
		}
	})
}

func TestLayoutConfigApply(t *testing.T) {
	t.Parallel()

	base := reportkit.DefaultLayout()

	t.Run("zero config keeps defaults", func(t *testing.T) {
		t.Parallel()
		got := LayoutConfig{}.apply(base)
		if got != base {
			t.Errorf("apply(zero) = %+v, want %+v", got, base)
		}
	})

	t.Run("overrides merge onto base", func(t *testing.T) {
		t.Parallel()
		lc := LayoutConfig{
			PageWidth:    100,
			LineHeight:   5,
			BodyFontSize: 10,
		}
		got := lc.apply(base)
		if got.PageWidth != 100 {
			t.Errorf("PageWidth = %v, want 100", got.PageWidth)
		}
		if got.LineHeight != 5 {
			t.Errorf("LineHeight = %v, want 5", got.LineHeight)
		}
		if got.BodyFontSize != 10 {
			t.Errorf("BodyFontSize = %v, want 10", got.BodyFontSize)
		}
		if got.PageHeight != base.PageHeight {
			t.Errorf("PageHeight = %v, want untouched %v", got.PageHeight, base.PageHeight)
		}
		if got.TopMargin != base.TopMargin {
			t.Errorf("TopMargin = %v, want untouched %v", got.TopMargin, base.TopMargin)
		}
	})
}
