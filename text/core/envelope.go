package core

// Envelope is the base of every decorator. It owns exactly one Scalar[string]
// and exposes it as a Text. A decorator is written as "compute a new
// Scalar[string] from the inputs, then wrap it in an Envelope".
//
// Construction never evaluates anything: the Scalar given to NewEnvelope must
// be a deferred closure, not a precomputed value.
//
// Envelope adds no caching and no locking. Concurrent calls to AsString on a
// shared Envelope are only as safe as the computation it wraps.
type Envelope struct {
	origin Scalar[string]
}

// NewEnvelope wraps s without evaluating it.
func NewEnvelope(s Scalar[string]) Envelope {
	return Envelope{origin: s}
}

// Envelop is a shorthand for NewEnvelope(ScalarFunc[string](fn)).
func Envelop(fn func() (string, error)) Envelope {
	return NewEnvelope(ScalarFunc[string](fn))
}

// AsString evaluates the wrapped Scalar. Failures raised inside it through
// Unchecked or Must are returned as *UncheckedError; errors the Scalar
// returns are passed through unchanged.
func (e Envelope) AsString() (s string, err error) {
	if e.origin == nil {
		return "", ErrNilSource
	}
	defer Recover(&err)
	return e.origin.Value()
}

// String implements fmt.Stringer. A failure renders as the error text.
func (e Envelope) String() string {
	s, err := e.AsString()
	if err != nil {
		return "!(" + err.Error() + ")"
	}
	return s
}
