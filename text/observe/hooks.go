// Package observe provides opt-in observation wrappers for texts: typed
// hooks, OpenTelemetry metrics and zap logging. Wrappers never change the
// value or the error of the text they wrap; they only watch it.
package observe

import (
	"time"

	"github.com/lguimbarda/min-text/text/core"
)

// Hooks holds observation callbacks for a text evaluation.
// All fields are optional - nil means no observation for that event.
// Hooks are invoked synchronously inside AsString, so they should be fast.
type Hooks struct {
	OnStart    func()              // Evaluation begins
	OnValue    func(string)        // Evaluation produced a value
	OnError    func(error)         // Evaluation failed
	OnComplete func(time.Duration) // Evaluation finished, successfully or not
}

// hookInvoker wraps several hook sets for FIFO invocation.
// It caches whether specific hook types exist to avoid repeated nil checks.
type hookInvoker struct {
	hookSets    []Hooks
	hasStart    bool
	hasValue    bool
	hasError    bool
	hasComplete bool
}

func newHookInvoker(hooks []Hooks) hookInvoker {
	invoker := hookInvoker{hookSets: append([]Hooks(nil), hooks...)}
	for _, h := range invoker.hookSets {
		if h.OnStart != nil {
			invoker.hasStart = true
		}
		if h.OnValue != nil {
			invoker.hasValue = true
		}
		if h.OnError != nil {
			invoker.hasError = true
		}
		if h.OnComplete != nil {
			invoker.hasComplete = true
		}
	}
	return invoker
}

func (h hookInvoker) invokeStart() {
	if !h.hasStart {
		return
	}
	for _, hooks := range h.hookSets {
		if hooks.OnStart != nil {
			hooks.OnStart()
		}
	}
}

func (h hookInvoker) invokeValue(s string) {
	if !h.hasValue {
		return
	}
	for _, hooks := range h.hookSets {
		if hooks.OnValue != nil {
			hooks.OnValue(s)
		}
	}
}

func (h hookInvoker) invokeError(err error) {
	if !h.hasError {
		return
	}
	for _, hooks := range h.hookSets {
		if hooks.OnError != nil {
			hooks.OnError(err)
		}
	}
}

func (h hookInvoker) invokeComplete(d time.Duration) {
	if !h.hasComplete {
		return
	}
	for _, hooks := range h.hookSets {
		if hooks.OnComplete != nil {
			hooks.OnComplete(d)
		}
	}
}

// Observed wraps t so that every evaluation is reported to hooks.
// Multiple hook sets are invoked in the order given. The hook slice is
// copied at construction; t is not evaluated until AsString.
func Observed(t core.Text, hooks ...Hooks) core.Text {
	invoker := newHookInvoker(hooks)
	return core.Envelop(func() (string, error) {
		if t == nil {
			return "", core.ErrNilSource
		}

		start := time.Now()
		invoker.invokeStart()
		s, err := t.AsString()
		if err != nil {
			invoker.invokeError(err)
		} else {
			invoker.invokeValue(s)
		}
		invoker.invokeComplete(time.Since(start))
		return s, err
	})
}
