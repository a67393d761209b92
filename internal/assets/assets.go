// Package assets provides the embedded stylesheets for HTML export.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed styles/*.css
var styles embed.FS

// DefaultStyleName is the stylesheet used when none is configured.
const DefaultStyleName = "default"

// Sentinel errors for asset loading.
var (
	ErrStyleNotFound = errors.New("style not found")
	ErrInvalidName   = errors.New("invalid asset name")
)

// LoadStyle returns the CSS content of an embedded style by name.
// The name must not include the .css extension.
func LoadStyle(name string) (string, error) {
	if err := validateName(name); err != nil {
		return "", err
	}
	content, err := styles.ReadFile("styles/" + name + ".css")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	}
	return string(content), nil
}

// StyleNames lists the available embedded styles, sorted.
func StyleNames() []string {
	entries, err := fs.ReadDir(styles, "styles")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".css"))
	}
	sort.Strings(names)
	return names
}

// validateName rejects names that could escape the styles directory or
// manipulate the extension.
func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidName)
	}
	if strings.ContainsAny(name, "/\\.") {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}
