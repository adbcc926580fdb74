package core

// Unchecked adapts a Scalar whose failures are returned into one whose
// failures are raised. It is meant for deferred closures that compose
// several computations and would rather not thread every error by hand;
// the enclosing Envelope turns the raised failure back into an error.
//
// Every call to Value invokes the wrapped Scalar. Nothing is memoized,
// retried or suppressed.
type Unchecked[T any] struct {
	origin Scalar[T]
}

// NewUnchecked wraps s. It does not evaluate s.
func NewUnchecked[T any](s Scalar[T]) Unchecked[T] {
	return Unchecked[T]{origin: s}
}

// Value evaluates the wrapped Scalar. On failure it panics with an
// *UncheckedError whose Cause is exactly the error the Scalar returned.
func (u Unchecked[T]) Value() T {
	if u.origin == nil {
		panic(newUncheckedError(ErrNilSource))
	}
	v, err := u.origin.Value()
	if err != nil {
		panic(newUncheckedError(err))
	}
	return v
}

// Must returns v, or panics with an *UncheckedError carrying err.
//
//	origin := core.Must(src.AsString())
func Must[T any](v T, err error) T {
	if err != nil {
		panic(newUncheckedError(err))
	}
	return v
}

// Recover converts an in-flight *UncheckedError panic into *err. Any other
// panic value is re-raised untouched. It must be called directly by defer:
//
//	defer core.Recover(&err)
func Recover(err *error) {
	r := recover()
	if r == nil {
		return
	}
	if ue, ok := r.(*UncheckedError); ok {
		*err = ue
		return
	}
	panic(r)
}
