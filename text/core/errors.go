package core

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// ErrNilSource is returned when a decorator is evaluated over a nil Text or
// Scalar. It is reported at evaluation time, never at construction.
var ErrNilSource = errors.New("nil source")

// ErrInvalidRange is the sentinel matched by every RangeError.
var ErrInvalidRange = errors.New("invalid range")

// RangeError reports a slice whose bounds are still inconsistent after
// clamping: Begin is past End. Length is the rune length of the source
// at the time of evaluation.
type RangeError struct {
	Begin  int
	End    int
	Length int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("invalid range: begin %d > end %d (length %d)", e.Begin, e.End, e.Length)
}

// Is makes errors.Is(err, ErrInvalidRange) true for any RangeError.
func (e *RangeError) Is(target error) bool {
	return target == ErrInvalidRange
}

// UncheckedError carries a failure that was raised as a panic by
// Unchecked.Value or Must instead of being returned. Cause is the original
// error and is never nil. Stack is the cleaned stack of the panic site,
// excluding internal min-text frames.
type UncheckedError struct {
	Cause error
	Stack string
}

func (e *UncheckedError) Error() string {
	return fmt.Sprintf("unchecked: %v", e.Cause)
}

// Unwrap returns the original failure.
func (e *UncheckedError) Unwrap() error {
	return e.Cause
}

// newUncheckedError wraps cause with the stack of the caller that raised it.
func newUncheckedError(cause error) *UncheckedError {
	return &UncheckedError{
		Cause: cause,
		Stack: callerStack(4), // skip: runtime.Callers, callerStack, newUncheckedError, raiser
	}
}

const modulePath = "github.com/lguimbarda/min-text/"

// callerStack formats the stack above skip, dropping library frames.
// Frames from _test.go files of this module are user code and are kept.
func callerStack(skip int) string {
	const maxFrames = 32
	var pcs [maxFrames]uintptr
	n := runtime.Callers(skip, pcs[:])
	if n == 0 {
		return ""
	}

	var lines []string
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if !internalFrame(frame) {
			lines = append(lines, frame.Function, fmt.Sprintf("\t%s:%d", frame.File, frame.Line))
		}
		if !more {
			break
		}
	}
	return strings.Join(lines, "\n")
}

func internalFrame(frame runtime.Frame) bool {
	return strings.HasPrefix(frame.Function, modulePath) && !strings.HasSuffix(frame.File, "_test.go")
}
