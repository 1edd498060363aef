package lua

import (
	"errors"
	"fmt"
)

// Errors for Lua state operations.
var (
	// ErrStateClosed is returned when operating on a closed state.
	ErrStateClosed = errors.New("lua state is closed")

	// ErrExecutionTimeout is returned when execution times out.
	ErrExecutionTimeout = errors.New("lua execution timeout")
)

// HookError reports a failure inside a hook function.
type HookError struct {
	Hook string
	Err  error
}

// Error implements the error interface.
func (e *HookError) Error() string {
	return fmt.Sprintf("lua hook %s: %v", e.Hook, e.Err)
}

// Unwrap returns the underlying error.
func (e *HookError) Unwrap() error {
	return e.Err
}
