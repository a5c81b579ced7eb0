package lua

import (
	"errors"
	"fmt"
)

// Errors for Lua state operations.
var (
	// ErrStateClosed is returned when operating on a closed state.
	ErrStateClosed = errors.New("lua state is closed")

	// ErrCallLimit is returned when a script makes more editor calls than allowed.
	ErrCallLimit = errors.New("lua call limit exceeded")
)

// ScriptError reports a script that failed to load or aborted with an error.
type ScriptError struct {
	// Path is the script file, or the chunk name for inline code.
	Path string
	// Message is the Lua error message.
	Message string
	// Err is the underlying cause, if known (an engine error, a context
	// error, ErrCallLimit).
	Err error
}

// Error implements the error interface.
func (e *ScriptError) Error() string {
	if e.Message == "" && e.Err != nil {
		return fmt.Sprintf("script %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("script %s: %s", e.Path, e.Message)
}

// Unwrap returns the underlying cause.
func (e *ScriptError) Unwrap() error {
	return e.Err
}
