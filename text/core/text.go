package core

// Text represents a deferred computation producing a string.
// Along with Envelope, it enables building decorator chains that do no work
// until the final consumer calls AsString.
//
// Like Scalar, Text makes no idempotence promise: a Text backed by a mutable
// or time-dependent source may return a different string on each call.
type Text interface {
	AsString() (string, error)
}

// TextFunc adapts a plain function to the Text interface.
type TextFunc func() (string, error)

// AsString calls f.
func (f TextFunc) AsString() (string, error) {
	if f == nil {
		return "", ErrNilSource
	}
	return f()
}

// TextOf creates a Text over a raw string. It never fails.
func TextOf(s string) Text {
	return TextFunc(func() (string, error) {
		return s, nil
	})
}

// AsScalar exposes a Text through the Scalar contract.
// The text is evaluated on each call to Value.
func AsScalar(t Text) Scalar[string] {
	return ScalarFunc[string](func() (string, error) {
		if t == nil {
			return "", ErrNilSource
		}
		return t.AsString()
	})
}
