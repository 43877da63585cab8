package markdown

import (
	"strings"
	"testing"
)

func TestStrip_HTMLTags(t *testing.T) {
	got := Strip("<div><b>bold</b> text</div>")
	if got != "bold text" {
		t.Errorf("expected %q, got %q", "bold text", got)
	}
}

func TestStrip_TemplatePlaceholders(t *testing.T) {
	got := Strip("{placeholder} remains")
	if got != "remains" {
		t.Errorf("expected %q, got %q", "remains", got)
	}
}

func TestStrip_Entities(t *testing.T) {
	got := Strip("fish &amp; chips &#233;")
	if got != "fish chips" {
		t.Errorf("expected %q, got %q", "fish chips", got)
	}
}

func TestStrip_Markers(t *testing.T) {
	got := Strip("# Heading with *emphasis* and _underline_")
	if got != "Heading with emphasis and underline" {
		t.Errorf("expected %q, got %q", "Heading with emphasis and underline", got)
	}
}

func TestStrip_Links(t *testing.T) {
	got := Strip("see [the docs](https://example.com) here")
	if got != "see here" {
		t.Errorf("expected %q, got %q", "see here", got)
	}
}

func TestStrip_CodeSpans(t *testing.T) {
	got := Strip("before `inline code` after")
	if got != "before after" {
		t.Errorf("expected %q, got %q", "before after", got)
	}
}

func TestStrip_CodeWithBracketsAfterLinks(t *testing.T) {
	// Code-span removal runs after link removal, so literal brackets inside
	// code do not leave dangling artifacts.
	got := Strip("x `arr[0]` y")
	if got != "x y" {
		t.Errorf("expected %q, got %q", "x y", got)
	}
}

func TestStrip_CollapsesWhitespace(t *testing.T) {
	got := Strip("  a \t b \n\n c  ")
	if got != "a b c" {
		t.Errorf("expected %q, got %q", "a b c", got)
	}
}

func TestStrip_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain text",
		"# Heading\n\nsome *markdown* with [a link](url) and `code`",
		"<p>html</p> &nbsp; {tpl}",
		"```\nfenced\nblock\n```",
	}
	for _, in := range inputs {
		once := Strip(in)
		twice := Strip(once)
		if once != twice {
			t.Errorf("Strip not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestReadingMinutes_Empty(t *testing.T) {
	if got := ReadingMinutes(nil, ""); got != 0 {
		t.Errorf("expected 0 minutes for empty input, got %d", got)
	}
}

func words(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}

func TestReadingMinutes_ExactBoundary(t *testing.T) {
	sections := []Section{{Content: words(200)}}
	if got := ReadingMinutes(sections, ""); got != 1 {
		t.Errorf("200 words should be 1 minute, got %d", got)
	}
}

func TestReadingMinutes_RoundsUp(t *testing.T) {
	sections := []Section{{Content: words(201)}}
	if got := ReadingMinutes(sections, ""); got != 2 {
		t.Errorf("201 words should round up to 2 minutes, got %d", got)
	}
}

func TestReadingMinutes_CountsSubsectionsAndSummary(t *testing.T) {
	sections := []Section{
		{
			Content: words(100),
			Subsections: []Subsection{
				{Title: words(10), Description: words(40)},
			},
		},
	}
	// 100 + 10 + 40 + 60 = 210 words -> 2 minutes
	if got := ReadingMinutes(sections, words(60)); got != 2 {
		t.Errorf("expected 2 minutes, got %d", got)
	}
}

func TestSpeechText_JoinsFragments(t *testing.T) {
	sections := []Section{
		{
			Content: "First section.",
			Subsections: []Subsection{
				{Title: "Sub title", Description: "Sub description."},
			},
		},
	}
	got := SpeechText("My Topic", sections, "")
	want := "My Topic First section. Sub title Sub description."
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestSpeechText_SummaryPrefix(t *testing.T) {
	got := SpeechText("Topic", nil, "The summary.")
	want := "Topic Összegzés: The summary."
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestSpeechText_SkipsEmptyFragments(t *testing.T) {
	sections := []Section{
		{Content: "", Subsections: []Subsection{{Title: "", Description: "Only this."}}},
	}
	got := SpeechText("", sections, "")
	if got != "Only this." {
		t.Errorf("expected %q, got %q", "Only this.", got)
	}
}
