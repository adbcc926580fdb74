package text

import (
	"strings"

	"github.com/samber/lo"
)

// Joined evaluates texts in order and joins them with sep. The first failing
// text stops evaluation and its error is returned unchanged.
func Joined(sep Text, texts ...Text) Text {
	return From(func() (string, error) {
		if sep == nil {
			return "", ErrNilSource
		}
		delim, err := sep.AsString()
		if err != nil {
			return "", err
		}
		parts, err := evaluateAll(texts)
		if err != nil {
			return "", err
		}
		return strings.Join(parts, delim), nil
	})
}

// JoinedStrings joins raw strings with sep, lazily.
func JoinedStrings(sep string, parts ...string) Text {
	return Joined(Of(sep), lo.Map(parts, func(s string, _ int) Text {
		return Of(s)
	})...)
}

// Concatenated evaluates texts in order and concatenates them.
func Concatenated(texts ...Text) Text {
	return Joined(Of(""), texts...)
}

func evaluateAll(texts []Text) ([]string, error) {
	parts := make([]string, 0, len(texts))
	for _, t := range texts {
		if t == nil {
			return nil, ErrNilSource
		}
		s, err := t.AsString()
		if err != nil {
			return nil, err
		}
		parts = append(parts, s)
	}
	return parts, nil
}
