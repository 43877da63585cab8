// Package markdown derives plain text from markdown content for the
// reading-time estimate and the speech synthesis input.
package markdown

import (
	"regexp"
	"strings"
)

// The replacement order matters: code spans are removed after link syntax so
// that code containing literal brackets does not leave dangling artifacts.
var (
	reHTMLTag     = regexp.MustCompile(`<[^>]+>`)
	rePlaceholder = regexp.MustCompile(`\{[^}]+\}`)
	reEntity      = regexp.MustCompile(`&[a-zA-Z0-9#]+;`)
	reMarker      = regexp.MustCompile(`[#_*>\-]`)
	reLink        = regexp.MustCompile(`\[.*?\]\(.*?\)`)
	reImage       = regexp.MustCompile(`!\[.*?\]\(.*?\)`)
	reCodeSpan    = regexp.MustCompile("(?s)`{1,3}.*?`{1,3}")
	reWhitespace  = regexp.MustCompile(`\s+`)
)

// Strip converts markdown-formatted content into plain text. It is pure and
// total: any input string yields a result, and re-stripping is a no-op.
func Strip(text string) string {
	s := reHTMLTag.ReplaceAllString(text, "")
	s = rePlaceholder.ReplaceAllString(s, "")
	s = reEntity.ReplaceAllString(s, "")
	s = reMarker.ReplaceAllString(s, "")
	s = reLink.ReplaceAllString(s, "")
	s = reImage.ReplaceAllString(s, "")
	s = reCodeSpan.ReplaceAllString(s, "")
	s = reWhitespace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Section is the slice of a study item the derivation functions consume.
type Section struct {
	Content     string
	Subsections []Subsection
}

// Subsection is an optional titled fragment under a section.
type Subsection struct {
	Title       string
	Description string
}

// wordsPerMinute is the reading-speed baseline.
const wordsPerMinute = 200

// ReadingMinutes estimates the time to read all section content, subsection
// titles and descriptions, and the summary, rounding up at 200 words per
// minute. Empty input yields 0.
func ReadingMinutes(sections []Section, summary string) int {
	var sb strings.Builder

	for _, section := range sections {
		sb.WriteString(" " + Strip(section.Content))
		for _, sub := range section.Subsections {
			sb.WriteString(" " + Strip(sub.Title))
			sb.WriteString(" " + Strip(sub.Description))
		}
	}

	if summary != "" {
		sb.WriteString(" " + Strip(summary))
	}

	words := 0
	for _, token := range strings.Split(sb.String(), " ") {
		if token != "" {
			words++
		}
	}

	return (words + wordsPerMinute - 1) / wordsPerMinute
}

// SpeechText builds the speech synthesis input: the stripped item name, each
// section's stripped content with its subsections, and the summary prefixed
// with "Összegzés: " when present. Non-empty fragments are joined by a single
// space.
func SpeechText(name string, sections []Section, summary string) string {
	fragments := []string{Strip(name)}

	for _, section := range sections {
		fragments = append(fragments, Strip(section.Content))
		for _, sub := range section.Subsections {
			fragments = append(fragments, Strip(sub.Title), Strip(sub.Description))
		}
	}

	if summary != "" {
		fragments = append(fragments, "Összegzés: "+Strip(summary))
	}

	var nonEmpty []string
	for _, f := range fragments {
		if f != "" {
			nonEmpty = append(nonEmpty, f)
		}
	}

	return strings.TrimSpace(strings.Join(nonEmpty, " "))
}
