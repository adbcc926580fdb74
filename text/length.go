package text

import (
	"unicode/utf8"

	"github.com/lguimbarda/min-text/text/core"
)

// LengthOf computes the length of t in runes, evaluating t on every call.
func LengthOf(t Text) Scalar[int] {
	return core.ScalarFunc[int](func() (int, error) {
		if t == nil {
			return 0, core.ErrNilSource
		}
		s, err := t.AsString()
		if err != nil {
			return 0, err
		}
		return utf8.RuneCountInString(s), nil
	})
}
