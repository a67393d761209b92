// Package fileutil provides file and path helpers shared by the library
// and the CLI.
package fileutil

import (
	"os"
	"strings"
)

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// IsFilePath returns true if the string looks like a file path rather
// than a bare name (contains a path separator).
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// IsCSS returns true if the string looks like CSS content rather than a
// style name or path.
func IsCSS(s string) bool {
	return strings.Contains(s, "{")
}
