package tagline

import (
	"strings"
	"unicode"
)

// CollapseSpace trims s and replaces every run of whitespace with one space.
func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// ClampWords keeps at most n whitespace-separated words of s, joined by
// single spaces. No ellipsis is added.
func ClampWords(s string, n int) string {
	words := strings.Fields(s)
	if n < 0 {
		n = 0
	}
	if len(words) > n {
		words = words[:n]
	}
	return strings.Join(words, " ")
}

// ClampChars limits s to max characters. When s is cut, the last three
// characters are "..." and trailing whitespace is removed from the kept
// prefix first, so the result is never longer than max.
func ClampChars(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return "..."[:max]
	}
	prefix := strings.TrimRightFunc(string(runes[:max-3]), unicode.IsSpace)
	return prefix + "..."
}
