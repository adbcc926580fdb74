package text

import (
	"strings"
	"unicode"
)

// Trimmed removes leading and trailing Unicode white space from t.
func Trimmed(t Text) Text {
	return mapped(t, strings.TrimSpace)
}

// TrimmedLeft removes leading Unicode white space from t.
func TrimmedLeft(t Text) Text {
	return mapped(t, func(s string) string {
		return strings.TrimLeftFunc(s, unicode.IsSpace)
	})
}

// TrimmedRight removes trailing Unicode white space from t.
func TrimmedRight(t Text) Text {
	return mapped(t, func(s string) string {
		return strings.TrimRightFunc(s, unicode.IsSpace)
	})
}

// Normalized collapses every run of white space in t to a single space and
// trims both ends.
func Normalized(t Text) Text {
	return mapped(t, func(s string) string {
		return strings.Join(strings.Fields(s), " ")
	})
}
