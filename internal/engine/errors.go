package engine

import (
	"github.com/dshills/lineedit/internal/engine/buffer"
	"github.com/dshills/lineedit/internal/engine/history"
)

// Errors returned by engine operations.
var (
	// ErrInvalidPosition indicates a line or character position is out of range.
	ErrInvalidPosition = buffer.ErrInvalidPosition

	// ErrInvalidLineIndex indicates a line index used by a word operation is out of range.
	ErrInvalidLineIndex = buffer.ErrInvalidLineIndex

	// ErrCapacityExceeded indicates the buffer is already full.
	ErrCapacityExceeded = buffer.ErrCapacityExceeded

	// ErrInvalidArgument indicates an argument that can never succeed.
	ErrInvalidArgument = buffer.ErrInvalidArgument

	// ErrIO is matched by every file open, read or write failure.
	ErrIO = buffer.ErrIO

	// ErrEmptyLog indicates the undo log is empty.
	ErrEmptyLog = history.ErrEmptyLog
)

// IOError reports a failure to open, read or write a file.
type IOError = buffer.IOError
