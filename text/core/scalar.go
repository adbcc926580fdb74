// package core defines the core abstractions for lazy text processing:
// scalars, texts, the unchecked adapter and the envelope every decorator
// is built on. Nothing in this package evaluates a computation until a
// caller asks for its value.
//
// NOTE: this package should have no dependencies outside the standard
// library, including other text packages.
package core

// Scalar represents a deferred computation producing a single value.
// It answers the question: "What will produce the value, once asked?".
//
// Value evaluates the computation now. There is no caching: every call may
// recompute, and a non-deterministic computation (a clock, a counter, a
// database row) may return a different value each time.
type Scalar[T any] interface {
	Value() (T, error)
}

// ScalarFunc adapts a plain function to the Scalar interface.
type ScalarFunc[T any] func() (T, error)

// Value calls f.
func (f ScalarFunc[T]) Value() (T, error) {
	if f == nil {
		var zero T
		return zero, ErrNilSource
	}
	return f()
}

// Constant creates a Scalar that always returns v and never fails.
func Constant[T any](v T) Scalar[T] {
	return ScalarFunc[T](func() (T, error) {
		return v, nil
	})
}
