// ABOUTME: Markdown renderer for news bodies using gomarkdown
// ABOUTME: Produces safe HTML for detail views and plain-text excerpts for cards

package render

import (
	"regexp"
	"strings"

	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"newsfeed-api/core/domain"
	htmlutil "newsfeed-api/pkg/utils/html"
)

// DefaultExcerptLength is the card excerpt length in characters
const DefaultExcerptLength = 100

var imagePattern = regexp.MustCompile(`(?i)^https?://.+\.(jpg|jpeg|png|gif|webp)$`)

// Markdown renders bodies with common extensions. Raw HTML in the source is
// dropped and links are restricted to safe schemes.
type Markdown struct {
	flags mdhtml.Flags
}

// NewMarkdown creates a new Markdown renderer
func NewMarkdown() *Markdown {
	return &Markdown{
		flags: mdhtml.CommonFlags | mdhtml.SkipHTML | mdhtml.Safelink | mdhtml.HrefTargetBlank | mdhtml.NofollowLinks,
	}
}

// HTML renders body to HTML
func (m *Markdown) HTML(body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}

	// parsers keep state, one per render
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: m.flags})
	return string(markdown.ToHTML([]byte(body), p, renderer))
}

// Excerpt returns the first n characters of the body's visible text.
// Load sentinels are returned as they are.
func (m *Markdown) Excerpt(body string, n int) string {
	if isSentinel(body) {
		return body
	}
	if n <= 0 {
		n = DefaultExcerptLength
	}
	return htmlutil.Truncate(htmlutil.StripHTML(m.HTML(body)), n)
}

// AcceptableImage reports whether ref is an http(s) URL to a common image type
func AcceptableImage(ref string) bool {
	return imagePattern.MatchString(strings.TrimSpace(ref))
}

func isSentinel(body string) bool {
	switch body {
	case domain.BodyLoadFailed, domain.BodyUnavailable, domain.BodyEmpty:
		return true
	}
	return false
}
