package text

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	// ErrNegativeCount is returned by Repeated for a negative count.
	ErrNegativeCount = errors.New("negative repeat count")
	// ErrCountOverflow is returned by Repeated when the result would not fit
	// in a string.
	ErrCountOverflow = errors.New("repeat count overflows result length")
)

// Repeated repeats t n times. A count of zero yields the empty string; the
// source is still evaluated so that its failure is not hidden.
func Repeated(t Text, n int) Text {
	return From(func() (string, error) {
		if n < 0 {
			return "", fmt.Errorf("%w: %d", ErrNegativeCount, n)
		}
		if t == nil {
			return "", ErrNilSource
		}
		s, err := t.AsString()
		if err != nil {
			return "", err
		}
		if len(s) > 0 && n > math.MaxInt/len(s) {
			return "", fmt.Errorf("%w: %d x %d bytes", ErrCountOverflow, n, len(s))
		}
		return strings.Repeat(s, n), nil
	})
}
