// ABOUTME: HTML utilities for extracting plain text from rendered markup
// ABOUTME: Used to build card excerpts from rendered news bodies

package html

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// StripHTML returns the visible text of an HTML fragment with whitespace collapsed
func StripHTML(markup string) string {
	if strings.TrimSpace(markup) == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return collapse(markup)
	}

	doc.Find("script, style, noscript").Remove()
	return collapse(doc.Text())
}

// Truncate cuts text to at most n runes, appending "..." when it cut anything
func Truncate(text string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return strings.TrimSpace(string(runes[:n])) + "..."
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
