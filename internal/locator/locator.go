// Package locator builds the public URL paths under which part content is served.
//
// The format is durable: every stored part references it, so the escaping rules
// here must not change without migrating existing rows.
package locator

import "strings"

// DefaultPrefix is the content root every locator starts with.
const DefaultPrefix = "/static/"

const upperhex = "0123456789ABCDEF"

// unreserved reports whether c can appear in a segment without escaping.
// Only RFC 3986 unreserved characters pass through.
func unreserved(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '-', c == '.', c == '_', c == '~':
		return true
	}
	return false
}

// EscapeSegment percent-encodes the UTF-8 bytes of one path segment.
// A '/' inside a segment is escaped too, since the separator belongs to Build.
func EscapeSegment(segment string) string {
	n := 0
	for i := 0; i < len(segment); i++ {
		if !unreserved(segment[i]) {
			n++
		}
	}
	if n == 0 {
		return segment
	}

	buf := make([]byte, 0, len(segment)+2*n)
	for i := 0; i < len(segment); i++ {
		c := segment[i]
		if unreserved(c) {
			buf = append(buf, c)
			continue
		}
		buf = append(buf, '%', upperhex[c>>4], upperhex[c&15])
	}
	return string(buf)
}

// Build escapes each segment independently, joins them with '/' and prepends prefix.
// An empty prefix falls back to DefaultPrefix.
func Build(prefix string, segments ...string) string {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = EscapeSegment(s)
	}
	return prefix + strings.Join(escaped, "/")
}

// Static builds a locator under DefaultPrefix.
func Static(segments ...string) string {
	return Build(DefaultPrefix, segments...)
}
