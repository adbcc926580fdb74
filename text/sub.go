package text

import (
	"unicode/utf8"

	"github.com/lguimbarda/min-text/text/core"
)

// SubString extracts the part of s from start to its end.
func SubString(s string, start int) Text {
	return Sub(Of(s), start)
}

// SubStringRange extracts the part of s in [start, end).
func SubStringRange(s string, start, end int) Text {
	return SubRange(Of(s), start, end)
}

// Sub extracts the part of t from start to its end. The end is the length of
// t at evaluation time, not at construction time.
func Sub(t Text, start int) Text {
	return SubScalar(t, Constant(start), LengthOf(t))
}

// SubRange extracts the part of t in [start, end).
func SubRange(t Text, start, end int) Text {
	return SubScalar(t, Constant(start), Constant(end))
}

// SubScalar extracts the part of t in [start, end), with both bounds computed
// lazily. It is the general form behind the other Sub constructors.
//
// On every AsString call the bounds and the source are evaluated once, in
// the order start, end, source. Bounds are clamped rather than rejected:
//
//   - a negative start becomes 0,
//   - an end past the source length becomes the length.
//
// Nothing else is repaired. If start is still past end after clamping, the
// call fails with a *RangeError. A failing bound surfaces as an
// *UncheckedError wrapping its original error; a failing source is returned
// unchanged.
//
// Positions count runes, so a slice never splits a UTF-8 sequence. The
// result is a substring of the source; invalid bytes are kept as they are.
//
// There is no thread-safety guarantee.
func SubScalar(t Text, start, end Scalar[int]) Text {
	begin := core.NewUnchecked(start)
	finish := core.NewUnchecked(end)
	return core.Envelop(func() (string, error) {
		if t == nil {
			return "", core.ErrNilSource
		}
		return sub(t, begin, finish)
	})
}

func sub(t Text, start, end core.Unchecked[int]) (string, error) {
	begin := start.Value()
	if begin < 0 {
		begin = 0
	}
	finish := end.Value()
	origin, err := t.AsString()
	if err != nil {
		return "", err
	}

	length := utf8.RuneCountInString(origin)
	if length < finish {
		finish = length
	}
	if begin > finish {
		return "", &core.RangeError{Begin: begin, End: finish, Length: length}
	}
	return origin[byteOffset(origin, begin):byteOffset(origin, finish)], nil
}

// byteOffset returns the byte index of the n-th rune of s. Invalid bytes
// count as one rune each, matching utf8.RuneCountInString.
func byteOffset(s string, n int) int {
	i := 0
	for ; n > 0 && i < len(s); n-- {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return i
}
