package handler

import (
	"errors"
	"fmt"

	"github.com/dshills/lineedit/internal/engine"
)

// Data keys shared by handlers and their callers.
const (
	// DataPath is the file path a file action read or wrote.
	DataPath = "path"
	// DataIndex is the 0-based line index an action located or changed.
	DataIndex = "index"
	// DataCount is the number of lines or occurrences an action affected.
	DataCount = "count"
	// DataLabel is the operation label an undo removed.
	DataLabel = "label"
	// DataLines is the list of numbered lines a display produced.
	DataLines = "lines"
	// DataEntries is the list of undo log entries, oldest first.
	DataEntries = "entries"
)

// ErrMissingArgument indicates an action was dispatched without a required argument.
var ErrMissingArgument = errors.New("missing argument")

// ResultStatus indicates the outcome of an action.
type ResultStatus uint8

const (
	// StatusOK indicates successful execution.
	StatusOK ResultStatus = iota
	// StatusNoOp indicates the action had no effect (e.g., a search that found nothing).
	StatusNoOp
	// StatusError indicates an error occurred.
	StatusError
)

// String returns a string representation of the status.
func (s ResultStatus) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNoOp:
		return "no-op"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Result represents the outcome of handling an action.
type Result struct {
	// Status indicates the result status.
	Status ResultStatus

	// Error contains any error that occurred.
	Error error

	// Message is an optional status message for display.
	Message string

	// Data holds handler-specific return data.
	Data map[string]interface{}
}

// IsOK returns true if the result indicates success.
func (r Result) IsOK() bool {
	return r.Status == StatusOK
}

// IsError returns true if the result indicates an error.
func (r Result) IsError() bool {
	return r.Status == StatusError
}

// Get retrieves a value from Data.
func (r Result) Get(key string) (interface{}, bool) {
	if r.Data == nil {
		return nil, false
	}
	v, ok := r.Data[key]
	return v, ok
}

// Success creates a successful result.
func Success() Result {
	return Result{Status: StatusOK}
}

// SuccessWithMessage creates a successful result with a message.
func SuccessWithMessage(msg string) Result {
	return Result{Status: StatusOK, Message: msg}
}

// NoOpWithMessage creates a no-operation result with a message.
func NoOpWithMessage(msg string) Result {
	return Result{Status: StatusNoOp, Message: msg}
}

// Error creates an error result.
func Error(err error) Result {
	return Result{Status: StatusError, Error: err}
}

// Errorf creates an error result with a formatted message.
func Errorf(format string, args ...interface{}) Result {
	return Result{
		Status: StatusError,
		Error:  fmt.Errorf(format, args...),
	}
}

// MissingArgument creates an error result for a required argument that was not supplied.
func MissingArgument(action, arg string) Result {
	return Error(fmt.Errorf("%s: %s: %w", action, arg, ErrMissingArgument))
}

// Failure creates an error result for an engine error, with the console
// message a user sees for that kind of failure.
func Failure(err error) Result {
	return Error(err).WithMessage(MessageFor(err))
}

// MessageFor returns the console message for an engine error.
func MessageFor(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, engine.ErrInvalidPosition):
		return "Invalid position."
	case errors.Is(err, engine.ErrInvalidLineIndex):
		return "Invalid line index."
	case errors.Is(err, engine.ErrCapacityExceeded):
		return "Buffer is full."
	case errors.Is(err, engine.ErrInvalidArgument):
		return "Invalid argument."
	case errors.Is(err, engine.ErrEmptyLog):
		return "No operations to undo."
	case errors.Is(err, engine.ErrIO):
		return "Error opening file."
	default:
		return "Error: " + err.Error()
	}
}

// WithMessage returns a copy of the result with the specified message.
func (r Result) WithMessage(msg string) Result {
	r.Message = msg
	return r
}

// WithData returns a copy of the result with a data value added.
func (r Result) WithData(key string, value interface{}) Result {
	data := make(map[string]interface{}, len(r.Data)+1)
	for k, v := range r.Data {
		data[k] = v
	}
	data[key] = value
	r.Data = data
	return r
}
