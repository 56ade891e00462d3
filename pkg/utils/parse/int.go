// ABOUTME: Utility functions for parsing integers from strings
// ABOUTME: Provides safe parsing with default values

package parse

import (
	"strconv"
	"strings"
)

// IntOrDefault parses s, returning def when it is empty or not an integer
func IntOrDefault(s string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return v
}

// CSV splits a comma-separated list, dropping blanks
func CSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
