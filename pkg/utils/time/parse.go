// ABOUTME: Date parsing and formatting for news index dates
// ABOUTME: Accepts the ISO-8601 shapes the index uses and renders the site's display forms

package time

import (
	"strings"
	"time"
)

// ISO-8601 shapes seen in the index, most specific first
var isoFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Display formats the search box matches against
const (
	ISODate     = "2006-01-02"
	DisplayDate = "2006/1/2"
)

// ParseFlexibleTime parses an ISO-8601 date or datetime.
// Returns the zero time when nothing matches.
func ParseFlexibleTime(timeStr string) time.Time {
	timeStr = strings.TrimSpace(timeStr)
	if timeStr == "" {
		return time.Time{}
	}

	for _, format := range isoFormats {
		if t, err := time.Parse(format, timeStr); err == nil {
			return t
		}
	}

	return time.Time{}
}

// DisplayForms returns the textual forms of a date a reader might type
func DisplayForms(t time.Time) []string {
	if t.IsZero() {
		return nil
	}
	return []string{t.Format(ISODate), t.Format(DisplayDate)}
}
