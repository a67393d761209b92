// Package dateutil parses user-facing date format strings into Go time
// layouts.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDateFormat indicates an invalid date format string.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxFormatLength limits format string length to prevent abuse.
const MaxFormatLength = 50

// DefaultFormat is used when "auto" is specified without a format.
const DefaultFormat = "YYYY-MM-DD"

// tokens maps user-friendly tokens to Go time layout components,
// ordered by length descending for greedy matching.
var tokens = []struct {
	token  string
	layout string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"M", "1"},
	{"D", "2"},
}

// Presets provides named shortcuts for common date formats.
var Presets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D, YYYY",
}

// separators are the literal characters allowed between tokens.
const separators = " -/,."

// ParseFormat converts a token-based format like "DD/MM/YYYY" into a Go
// time layout. Only date tokens and simple separators are accepted.
func ParseFormat(format string) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: empty format", ErrInvalidDateFormat)
	}
	if len(format) > MaxFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxFormatLength)
	}

	var sb strings.Builder
	rest := format
	for rest != "" {
		if matched := matchToken(&sb, &rest); matched {
			continue
		}
		if strings.ContainsRune(separators, rune(rest[0])) {
			sb.WriteByte(rest[0])
			rest = rest[1:]
			continue
		}
		return "", fmt.Errorf("%w: unexpected character %q in %q", ErrInvalidDateFormat, rest[0], format)
	}
	return sb.String(), nil
}

// matchToken consumes the longest token prefix of rest, if any.
func matchToken(sb *strings.Builder, rest *string) bool {
	for _, t := range tokens {
		if strings.HasPrefix(*rest, t.token) {
			sb.WriteString(t.layout)
			*rest = (*rest)[len(t.token):]
			return true
		}
	}
	return false
}
