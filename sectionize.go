package reportkit

import "strings"

// Heading markers recognized by the sectionizer.
const (
	titleMarker   = "# "
	sectionMarker = "## "
)

// introTitle labels content that precedes the first level-2 heading.
const introTitle = "Introduction"

// Sectionize splits a markdown string into titled sections at level-2
// headings. The level-1 title line is consumed and never becomes part of
// any section; use ExtractTitle to recover it. Content before the first
// level-2 heading (or the whole body when there is none) becomes an
// implicit "Introduction" section. Sections whose content is empty or
// whitespace-only are dropped.
func Sectionize(markdown string) []Section {
	var sections []Section
	current := Section{Title: introTitle}

	for _, line := range strings.Split(markdown, "\n") {
		switch {
		case strings.HasPrefix(line, titleMarker):
			// Document title; consumed separately, not section content.
		case strings.HasPrefix(line, sectionMarker):
			if hasText(current.Content) {
				sections = append(sections, current)
			}
			current = Section{Title: strings.TrimSpace(line[len(sectionMarker):])}
		default:
			current.Content = append(current.Content, line)
		}
	}

	if hasText(current.Content) {
		sections = append(sections, current)
	}
	return sections
}

// ExtractTitle returns the text of the first level-1 heading.
// The second return value reports whether one was found.
func ExtractTitle(markdown string) (string, bool) {
	for _, line := range strings.Split(markdown, "\n") {
		if strings.HasPrefix(line, titleMarker) {
			return strings.TrimSpace(line[len(titleMarker):]), true
		}
	}
	return "", false
}

// hasText reports whether any line contains non-whitespace content.
func hasText(lines []string) bool {
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			return true
		}
	}
	return false
}
