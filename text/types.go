// Package text provides composable, lazily evaluated text values.
//
// A Text is a deferred computation that produces a string only when
// AsString is called. Decorators in this package wrap a Text and transform
// it without evaluating anything at construction time:
//
//	t := text.Upper(text.SubString("Hello, World!", 7))
//	s, err := t.AsString() // "WORLD!"
//
// This package is the primary user-facing API. The text/core subpackage
// holds the contracts and is rarely needed directly.
//
// No decorator caches results or synchronises access. Sharing one Text
// between goroutines is only as safe as the sources it wraps.
package text

import (
	"github.com/lguimbarda/min-text/text/core"
)

// Type aliases for the core abstractions.
// These allow users to work with the package without importing core directly.
type (
	// Text is a deferred, possibly failing computation producing a string.
	Text = core.Text

	// Scalar is a deferred, possibly failing computation producing a single value.
	Scalar[T any] = core.Scalar[T]

	// TextFunc adapts a plain function to Text.
	TextFunc = core.TextFunc

	// ScalarFunc adapts a plain function to Scalar.
	ScalarFunc[T any] = core.ScalarFunc[T]

	// Envelope exposes one Scalar[string] as a Text. Every decorator is one.
	Envelope = core.Envelope

	// Unchecked raises the failures of a Scalar instead of returning them.
	Unchecked[T any] = core.Unchecked[T]

	// UncheckedError carries a failure raised through Unchecked.
	UncheckedError = core.UncheckedError

	// RangeError reports a slice whose bounds are inconsistent after clamping.
	RangeError = core.RangeError
)

// Errors re-exported from core.
var (
	ErrNilSource    = core.ErrNilSource
	ErrInvalidRange = core.ErrInvalidRange
)

// Of creates a Text over a raw string.
func Of(s string) Text {
	return core.TextOf(s)
}

// Constant creates a Scalar that always returns v.
func Constant[T any](v T) Scalar[T] {
	return core.Constant(v)
}

// NewEnvelope wraps s in an Envelope without evaluating it.
func NewEnvelope(s Scalar[string]) Envelope {
	return core.NewEnvelope(s)
}

// NewUnchecked wraps s so that its failures are raised.
func NewUnchecked[T any](s Scalar[T]) Unchecked[T] {
	return core.NewUnchecked(s)
}

// From evaluates fn lazily as a Text.
func From(fn func() (string, error)) Text {
	return core.Envelop(fn)
}
