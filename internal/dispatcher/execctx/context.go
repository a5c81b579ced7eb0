// Package execctx provides the execution context for action handlers.
package execctx

import (
	"context"
	"errors"

	"github.com/dshills/lineedit/internal/engine"
	"github.com/dshills/lineedit/internal/input"
)

// ErrMissingEngine indicates a handler ran without an engine in its context.
var ErrMissingEngine = errors.New("execctx: no engine available")

// EngineInterface abstracts the editing session for handlers.
type EngineInterface interface {
	// Read operations
	Len() int
	Cap() int
	Lines() []string
	DisplayAll() []engine.Line
	Find(word string) (int, bool)

	// Line operations
	Insert(text string, position int) error
	Remove(position int) error
	Replace(position int, text string) error
	SubstituteAll(oldWord, newWord string) (int, error)
	Clear()

	// Word operations
	RemoveWordAt(lineIndex, charPosition int) error
	SubstituteWordAt(lineIndex, charPosition int, newWord string) error

	// Undo log
	Undo() (string, error)
	History() []engine.Entry

	// Files
	LoadFile(path string) (int, error)
	SaveFile(path string) error
}

var _ EngineInterface = (*engine.Engine)(nil)

// ExecutionContext carries what a handler needs to execute an action.
type ExecutionContext struct {
	// Engine is the session's editing engine.
	Engine EngineInterface

	// SessionID identifies the session the action belongs to.
	SessionID string

	// FilePath is the last file read or written in this session.
	FilePath string

	// Source is where the action came from.
	Source input.ActionSource

	// Context is the caller's context for long-running handlers.
	Context context.Context

	data map[string]any
}

// New creates an execution context for the engine.
func New(e EngineInterface) *ExecutionContext {
	return &ExecutionContext{Engine: e, Context: context.Background()}
}

// Ctx returns the caller's context, or a background context when none
// was set.
func (c *ExecutionContext) Ctx() context.Context {
	if c.Context == nil {
		return context.Background()
	}
	return c.Context
}

// SetData stores a handler-specific value.
func (c *ExecutionContext) SetData(key string, value any) {
	if c.data == nil {
		c.data = make(map[string]any)
	}
	c.data[key] = value
}

// GetData retrieves a handler-specific value.
func (c *ExecutionContext) GetData(key string) (any, bool) {
	v, ok := c.data[key]
	return v, ok
}

// ValidateEngine returns ErrMissingEngine if no engine is set.
func (c *ExecutionContext) ValidateEngine() error {
	if c == nil || c.Engine == nil {
		return ErrMissingEngine
	}
	return nil
}
