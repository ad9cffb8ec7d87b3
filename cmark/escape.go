package cmark

import "strings"

const reservedChars = "\\*_[]<>`"

// NeedsEscaping reports whether s contains reserved punctuation.
func NeedsEscaping(s string) bool {
	return strings.ContainsAny(s, reservedChars)
}

// Escape prefixes every reserved character in s with a backslash. s is
// returned as is when nothing needs escaping.
func Escape(s string) string {
	if !NeedsEscaping(s) {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s) + 8)
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(reservedChars, s[i]) >= 0 {
			sb.WriteByte('\\')
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}
