// ABOUTME: Index payload validation and decoding into content items
// ABOUTME: Rejects oversized, malformed or markup-carrying payloads as a whole

package content

import (
	"math"
	"regexp"
	"strconv"
	"unicode/utf8"

	"golang.org/x/net/html"

	"github.com/tidwall/gjson"

	"newsfeed-api/core/domain"
	coreerrors "newsfeed-api/core/errors"
	timeutil "newsfeed-api/pkg/utils/time"
)

// unsafePatterns flags markup that must never reach the renderer
var unsafePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)<script[^>]*>.*?</script>`),
	regexp.MustCompile(`(?i)javascript\s*:`),
	regexp.MustCompile(`(?i)vbscript\s*:`),
	regexp.MustCompile(`(?i)data\s*:\s*text/html`),
	regexp.MustCompile(`(?i)on\w+\s*=`),
	regexp.MustCompile(`(?i)<iframe[^>]*>`),
	regexp.MustCompile(`(?i)<object[^>]*>`),
	regexp.MustCompile(`(?i)<embed[^>]*>`),
	regexp.MustCompile(`(?i)<link[^>]*>`),
	regexp.MustCompile(`(?i)<meta[^>]*>`),
	regexp.MustCompile(`(?i)<style[^>]*>.*?</style>`),
	regexp.MustCompile(`(?i)expression\s*\(`),
	regexp.MustCompile(`(?i)url\s*\(`),
	regexp.MustCompile(`(?i)@import`),
	regexp.MustCompile(`(?i)eval\s*\(`),
	regexp.MustCompile(`(?i)setTimeout\s*\(`),
	regexp.MustCompile(`(?i)setInterval\s*\(`),
	regexp.MustCompile(`(?i)document\.write`),
	regexp.MustCompile(`(?i)innerHTML\s*=`),
	regexp.MustCompile(`(?i)outerHTML\s*=`),
}

// ContainsUnsafeMarkup reports whether text matches any disallowed pattern,
// either as written or after HTML entity decoding.
func ContainsUnsafeMarkup(text string) bool {
	if text == "" {
		return false
	}
	decoded := html.UnescapeString(text)
	for _, p := range unsafePatterns {
		if p.MatchString(text) || (decoded != text && p.MatchString(decoded)) {
			return true
		}
	}
	return false
}

func invalid(index int, field, message string) error {
	return &coreerrors.ValidationError{Field: field, Message: message, Index: index}
}

// ParseIndex validates a raw index payload and decodes it.
// No partial result is ever returned: any violation rejects the payload.
func ParseIndex(data []byte, limits Limits) ([]domain.ContentItem, error) {
	if !gjson.ValidBytes(data) {
		return nil, invalid(-1, "payload", "malformed JSON")
	}

	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, invalid(-1, "payload", "index must be an array")
	}

	elements := root.Array()
	if len(elements) > limits.MaxItems {
		return nil, invalid(-1, "payload", "index has "+strconv.Itoa(len(elements))+" items, limit is "+strconv.Itoa(limits.MaxItems))
	}

	items := make([]domain.ContentItem, 0, len(elements))
	for i, el := range elements {
		item, err := parseElement(i, el, limits)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err := ValidateItems(items, limits); err != nil {
		return nil, err
	}
	return items, nil
}

func parseElement(i int, el gjson.Result, limits Limits) (domain.ContentItem, error) {
	var item domain.ContentItem

	if !el.IsObject() {
		return item, invalid(i, "item", "must be an object")
	}

	id := el.Get("id")
	if id.Type != gjson.Number || id.Num != math.Trunc(id.Num) || id.Num == 0 {
		return item, invalid(i, "id", "required non-zero integer")
	}
	if id.Num > math.MaxInt32 || id.Num < math.MinInt32 {
		return item, invalid(i, "id", "out of range")
	}
	item.ID = int(id.Num)

	title := el.Get("title")
	if title.Type != gjson.String || title.Str == "" {
		return item, invalid(i, "title", "required string")
	}
	item.Title = title.Str

	ref := el.Get("content")
	if ref.Type != gjson.String || ref.Str == "" {
		return item, invalid(i, "content", "required string")
	}
	item.Content = ref.Str

	if date := el.Get("date"); date.Exists() && date.Type != gjson.Null {
		if date.Type != gjson.String {
			return item, invalid(i, "date", "must be an ISO-8601 string")
		}
		parsed := timeutil.ParseFlexibleTime(date.Str)
		if parsed.IsZero() {
			return item, invalid(i, "date", "unparsable date "+strconv.Quote(date.Str))
		}
		item.Date = parsed
	}

	if pinned := el.Get("pinned"); pinned.Exists() && pinned.Type != gjson.Null {
		if pinned.Type != gjson.True && pinned.Type != gjson.False {
			return item, invalid(i, "pinned", "must be a boolean")
		}
		item.Pinned = pinned.Bool()
	}

	if image := el.Get("image"); image.Exists() && image.Type != gjson.Null {
		if image.Type != gjson.String {
			return item, invalid(i, "image", "must be a string")
		}
		item.Image = image.Str
	}

	tags, err := stringList(i, "tags", el.Get("tags"))
	if err != nil {
		return item, err
	}
	item.Tags = tags
	if item.Tags == nil {
		item.Tags = []string{}
	}

	images, err := stringList(i, "additionalImages", el.Get("additionalImages"))
	if err != nil {
		return item, err
	}
	item.AdditionalImages = images

	return item, nil
}

func stringList(i int, field string, value gjson.Result) ([]string, error) {
	if !value.Exists() || value.Type == gjson.Null {
		return nil, nil
	}
	if !value.IsArray() {
		return nil, invalid(i, field, "must be an array of strings")
	}
	var out []string
	for _, v := range value.Array() {
		if v.Type != gjson.String {
			return nil, invalid(i, field, "must be an array of strings")
		}
		out = append(out, v.Str)
	}
	return out, nil
}

// ValidateItems checks an already decoded list: unique IDs, required fields,
// length bounds and markup. Cached entries are re-checked with it on read.
func ValidateItems(items []domain.ContentItem, limits Limits) error {
	if len(items) > limits.MaxItems {
		return invalid(-1, "payload", "too many items")
	}

	seen := make(map[int]struct{}, len(items))
	for i := range items {
		item := &items[i]

		if item.ID == 0 {
			return invalid(i, "id", "required non-zero integer")
		}
		if _, dup := seen[item.ID]; dup {
			return invalid(i, "id", "duplicate id "+strconv.Itoa(item.ID))
		}
		seen[item.ID] = struct{}{}

		if item.Title == "" {
			return invalid(i, "title", "required string")
		}
		if item.Content == "" {
			return invalid(i, "content", "required string")
		}

		if err := checkText(i, "title", item.Title, limits.MaxTitleLength); err != nil {
			return err
		}
		if err := checkText(i, "content", item.Content, limits.MaxContentLength); err != nil {
			return err
		}
		if err := checkText(i, "image", item.Image, limits.MaxURLLength); err != nil {
			return err
		}
		for _, tag := range item.Tags {
			if err := checkText(i, "tags", tag, limits.MaxTagLength); err != nil {
				return err
			}
		}
		for _, img := range item.AdditionalImages {
			if err := checkText(i, "additionalImages", img, limits.MaxURLLength); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkText(i int, field, value string, max int) error {
	if utf8.RuneCountInString(value) > max {
		return invalid(i, field, "longer than "+strconv.Itoa(max)+" characters")
	}
	if ContainsUnsafeMarkup(value) {
		return invalid(i, field, "contains disallowed markup")
	}
	return nil
}
