package engine

import (
	"github.com/dshills/lineedit/internal/engine/buffer"
	"github.com/dshills/lineedit/internal/engine/history"
)

// Default configuration values.
const (
	DefaultCapacity  = buffer.DefaultCapacity
	DefaultUndoLimit = history.DefaultLimit
)

// Option configures an Engine during creation.
type Option func(*Engine)

// WithCapacity sets the maximum number of lines in the buffer.
func WithCapacity(capacity int) Option {
	return func(e *Engine) {
		if capacity > 0 {
			e.capacity = capacity
		}
	}
}

// WithUndoLimit sets the number of operation labels the undo log keeps.
func WithUndoLimit(limit int) Option {
	return func(e *Engine) {
		if limit > 0 {
			e.undoLimit = limit
		}
	}
}

// WithLines sets the initial buffer content.
func WithLines(lines []string) Option {
	return func(e *Engine) {
		e.initLines = lines
	}
}
