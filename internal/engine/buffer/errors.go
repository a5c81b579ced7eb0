package buffer

import (
	"errors"
	"fmt"
)

// Errors returned by buffer operations.
var (
	// ErrInvalidPosition indicates a line or character position is out of range.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrInvalidLineIndex indicates a line index used by a word operation is out of range.
	ErrInvalidLineIndex = errors.New("invalid line index")

	// ErrCapacityExceeded indicates the buffer already holds its maximum number of lines.
	ErrCapacityExceeded = errors.New("buffer capacity exceeded")

	// ErrInvalidArgument indicates an argument that can never succeed (e.g., an empty search word).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIO is matched by every *IOError via errors.Is.
	ErrIO = errors.New("i/o error")
)

// IOError reports a failure to open, read or write a line source or sink.
type IOError struct {
	Op   string // "open", "read", "write", "close"
	Path string // empty for readers and writers without a name
	Err  error
}

func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrIO.
func (e *IOError) Is(target error) bool {
	return target == ErrIO
}
