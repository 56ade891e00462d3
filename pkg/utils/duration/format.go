// ABOUTME: Duration parsing for configuration values
// ABOUTME: Accepts Go duration strings or bare seconds, and renders durations in minutes

package duration

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Parse reads "30m", "1h30m" or a bare number of seconds
func Parse(value string) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("empty duration")
	}

	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second, nil
	}

	return time.ParseDuration(value)
}

// ParseOrDefault returns def when value is empty or unparsable
func ParseOrDefault(value string, def time.Duration) time.Duration {
	d, err := Parse(value)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

// Minutes renders a duration as "N minutes" for log fields
func Minutes(d time.Duration) string {
	m := int(d / time.Minute)
	if m == 1 {
		return "1 minute"
	}
	return fmt.Sprintf("%d minutes", m)
}
