package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/SumanthCsy/reportkit"
	"github.com/SumanthCsy/reportkit/internal/fileutil"
	"github.com/SumanthCsy/reportkit/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
)

// configDirName is the subdirectory under the user config dir searched
// for named configs.
const configDirName = "reportkit"

// Config holds CLI configuration loaded from YAML.
type Config struct {
	Format string       `yaml:"format"` // pdf, pptx, html (empty = pdf)
	Style  string       `yaml:"style"`  // style name, CSS path, or raw CSS
	Date   string       `yaml:"date"`   // "auto", "auto:FORMAT", or literal label
	Output OutputConfig `yaml:"output"`
	Layout LayoutConfig `yaml:"layout"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	Dir string `yaml:"dir"` // Default output directory (empty = same as source)
}

// LayoutConfig holds optional page geometry overrides. Zero fields keep
// the library default; lengths are millimeters, font sizes points.
type LayoutConfig struct {
	PageWidth       float64 `yaml:"pageWidth"`
	PageHeight      float64 `yaml:"pageHeight"`
	TopMargin       float64 `yaml:"topMargin"`
	BottomMargin    float64 `yaml:"bottomMargin"`
	LeftMargin      float64 `yaml:"leftMargin"`
	ContentWidth    float64 `yaml:"contentWidth"`
	LineHeight      float64 `yaml:"lineHeight"`
	HeadingHeight   float64 `yaml:"headingHeight"`
	SectionGap      float64 `yaml:"sectionGap"`
	HeaderOffset    float64 `yaml:"headerOffset"`
	TitleFontSize   float64 `yaml:"titleFontSize"`
	HeadingFontSize float64 `yaml:"headingFontSize"`
	BodyFontSize    float64 `yaml:"bodyFontSize"`
	FooterFontSize  float64 `yaml:"footerFontSize"`
}

// apply merges non-zero overrides onto base and returns the result.
func (lc LayoutConfig) apply(base reportkit.Layout) reportkit.Layout {
	if lc.PageWidth > 0 {
		base.PageWidth = lc.PageWidth
	}
	if lc.PageHeight > 0 {
		base.PageHeight = lc.PageHeight
	}
	if lc.TopMargin > 0 {
		base.TopMargin = lc.TopMargin
	}
	if lc.BottomMargin > 0 {
		base.BottomMargin = lc.BottomMargin
	}
	if lc.LeftMargin > 0 {
		base.LeftMargin = lc.LeftMargin
	}
	if lc.ContentWidth > 0 {
		base.ContentWidth = lc.ContentWidth
	}
	if lc.LineHeight > 0 {
		base.LineHeight = lc.LineHeight
	}
	if lc.HeadingHeight > 0 {
		base.HeadingHeight = lc.HeadingHeight
	}
	if lc.SectionGap > 0 {
		base.SectionGap = lc.SectionGap
	}
	if lc.HeaderOffset > 0 {
		base.HeaderOffset = lc.HeaderOffset
	}
	if lc.TitleFontSize > 0 {
		base.TitleFontSize = lc.TitleFontSize
	}
	if lc.HeadingFontSize > 0 {
		base.HeadingFontSize = lc.HeadingFontSize
	}
	if lc.BodyFontSize > 0 {
		base.BodyFontSize = lc.BodyFontSize
	}
	if lc.FooterFontSize > 0 {
		base.FooterFontSize = lc.FooterFontSize
	}
	return base
}

// DefaultConfig returns a neutral configuration.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard
// locations. Returns an error if the file is not found (no silent
// fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		resolved, err := resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
		configPath = resolved
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	return &cfg, nil
}

// resolveConfigPath searches for a config file by name in standard
// locations. Tries extensions in order: .yaml, .yml. Tries locations in
// order: current directory, then the user config directory.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, configDirName, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
