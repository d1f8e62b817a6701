// Package naming derives stable codes, ordinals and display titles from raw folder and file names.
package naming

import (
	"strconv"
	"strings"
)

// Separator joins the alphanumeric runs of a normalized code.
const Separator = '_'

func isAlnum(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// NormalizeCode lowercases raw and replaces every run of characters outside
// [0-9A-Za-z] with a single separator. Leading and trailing separators are dropped,
// so "Biology 1!" and "biology_1" both become "biology_1".
func NormalizeCode(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	pendingSep := false
	for _, r := range raw {
		if !isAlnum(r) {
			pendingSep = b.Len() > 0
			continue
		}
		if pendingSep {
			b.WriteRune(Separator)
			pendingSep = false
		}
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ExtractNumber returns the first run of ASCII digits in raw as an integer.
// It reports false when raw has no digits or the run does not fit in an int.
func ExtractNumber(raw string) (int, bool) {
	start := strings.IndexFunc(raw, isDigit)
	if start < 0 {
		return 0, false
	}
	end := start
	for end < len(raw) && isDigit(rune(raw[end])) {
		end++
	}
	n, err := strconv.Atoi(raw[start:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// NumberOr is ExtractNumber with a fallback for names without digits.
// Ordinals must be positive, so "Chapter_00" also yields the fallback.
func NumberOr(raw string, fallback int) int {
	if n, ok := ExtractNumber(raw); ok && n > 0 {
		return n
	}
	return fallback
}

// DisplayTitle turns a folder name into a human title: "Biology_1" becomes "Biology 1".
func DisplayTitle(raw string) string {
	return strings.TrimSpace(strings.ReplaceAll(raw, string(Separator), " "))
}

// IsNumeric reports whether name is non-empty and made only of ASCII digits.
func IsNumeric(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if !isDigit(r) {
			return false
		}
	}
	return true
}

// CompareNumeric orders two digit-only names by numeric value without overflowing:
// shorter significant digits sort first, then lexically. Ties fall back to the raw name
// so "7" and "007" keep a stable order.
func CompareNumeric(a, b string) int {
	ta, tb := strings.TrimLeft(a, "0"), strings.TrimLeft(b, "0")
	if len(ta) != len(tb) {
		if len(ta) < len(tb) {
			return -1
		}
		return 1
	}
	if c := strings.Compare(ta, tb); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}
