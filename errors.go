package trampoline

import (
	"errors"
	"fmt"
	"runtime"
)

// PanicError wraps a value recovered from a panicking task.
type PanicError struct {
	Value any
}

func (e PanicError) Error() string {
	return fmt.Sprintf("trampoline: task panicked: %v", e.Value)
}

// Unwrap returns the underlying error if the panic value is an error type.
// This enables use with [errors.Is] and [errors.As] for error matching
// through the cause chain.
//
// If the panic Value is not an error (e.g. a string or other type), returns
// nil.
func (e PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// fatalByDefault treats panics carrying a [runtime.Error] (nil dereferences,
// out of range indexes, and so on) as programming bugs, to be rethrown
// rather than reported. Everything else, including explicit panics with
// arbitrary values, is recoverable.
func fatalByDefault(err error) bool {
	var re runtime.Error
	return errors.As(err, &re)
}
