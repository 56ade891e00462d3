// ABOUTME: Resolves item body references into fetchable URLs
// ABOUTME: Handles relative paths, mirror rewrites and references that cannot be loaded

package content

import (
	"net/url"
	"regexp"
	"strings"
)

// branchSegment matches the "/refs/heads/<branch>" part of raw-file mirror paths
var branchSegment = regexp.MustCompile(`^/refs/heads/[^/]+`)

// ResolveBodyURL turns a body reference into an absolute URL.
// ok is false for references that must not be fetched.
func (o Options) ResolveBodyURL(ref string) (resolved string, ok bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", false
	}

	for _, prefix := range o.SkipPrefixes {
		if prefix != "" && strings.Contains(ref, prefix) {
			return "", false
		}
	}

	if !isAbsoluteHTTP(ref) {
		return joinBase(o.ContentBaseURL, ref)
	}

	if o.RewritePrefix != "" {
		if idx := strings.Index(ref, o.RewritePrefix); idx >= 0 {
			rest := ref[idx+len(o.RewritePrefix):]
			rest = branchSegment.ReplaceAllString(rest, "")
			return joinBase(o.ContentBaseURL, rest)
		}
	}

	return ref, true
}

func isAbsoluteHTTP(ref string) bool {
	lower := strings.ToLower(ref)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

func joinBase(base, path string) (string, bool) {
	if base == "" {
		return "", false
	}
	baseURL, err := url.Parse(base)
	if err != nil || baseURL.Scheme == "" || baseURL.Host == "" {
		return "", false
	}
	if !strings.HasSuffix(baseURL.Path, "/") {
		baseURL.Path += "/"
	}

	relative, err := url.Parse(strings.TrimPrefix(path, "/"))
	if err != nil {
		return "", false
	}
	return baseURL.ResolveReference(relative).String(), true
}
