// Package app wires configuration, logging, the editing engine, the
// dispatcher and the script runner into one editing session, and drives
// that session from the numbered console menu.
package app

import (
	"errors"
	"fmt"
)

// Application errors.
var (
	// ErrQuit signals that the menu loop should exit normally.
	ErrQuit = errors.New("quit requested")

	// ErrInvalidOption indicates a menu choice that is not on the menu.
	ErrInvalidOption = errors.New("invalid option")

	// ErrAlreadyShutdown indicates the application was already shut down.
	ErrAlreadyShutdown = errors.New("application already shut down")
)

// InitError reports a component that failed to start.
type InitError struct {
	Component string
	Err       error
}

func (e *InitError) Error() string {
	return "init " + e.Component + ": " + e.Err.Error()
}

func (e *InitError) Unwrap() error {
	return e.Err
}

// OperationError represents an error that occurred during a menu operation.
type OperationError struct {
	Op     string // Operation name (e.g., "read", "add")
	Target string // Target of the operation (e.g., file path)
	Err    error  // Underlying error
}

// NewOperationError creates a new OperationError.
func NewOperationError(op, target string, err error) *OperationError {
	return &OperationError{
		Op:     op,
		Target: target,
		Err:    err,
	}
}

func (e *OperationError) Error() string {
	if e == nil {
		return ""
	}

	msg := e.Op
	if e.Target != "" {
		msg = fmt.Sprintf("%s %s", e.Op, e.Target)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *OperationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
