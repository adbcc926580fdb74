package text

import (
	"regexp"
	"strings"
)

// Replaced replaces every match of pattern in t with replacement, expanding
// $1-style references. The pattern is a Scalar so that compiling it is
// deferred to evaluation along with everything else.
func Replaced(t Text, pattern Scalar[*regexp.Regexp], replacement string) Text {
	return From(func() (string, error) {
		if t == nil || pattern == nil {
			return "", ErrNilSource
		}
		re, err := pattern.Value()
		if err != nil {
			return "", err
		}
		s, err := t.AsString()
		if err != nil {
			return "", err
		}
		return re.ReplaceAllString(s, replacement), nil
	})
}

// ReplacedRegexp is Replaced with a pattern compiled at evaluation time.
// An invalid pattern fails AsString, not the constructor.
func ReplacedRegexp(t Text, pattern, replacement string) Text {
	return Replaced(t, ScalarFunc[*regexp.Regexp](func() (*regexp.Regexp, error) {
		return regexp.Compile(pattern)
	}), replacement)
}

// ReplacedString replaces every occurrence of from in t with to.
func ReplacedString(t Text, from, to string) Text {
	return mapped(t, func(s string) string {
		return strings.ReplaceAll(s, from, to)
	})
}
