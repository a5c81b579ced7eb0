package engine

import (
	"errors"
	"io"
	"os"
	"sync"

	"github.com/dshills/lineedit/internal/engine/buffer"
	"github.com/dshills/lineedit/internal/engine/history"
)

// Re-export commonly used types for convenience.
type (
	// Line is a numbered line as presented to a user.
	Line = buffer.Line

	// Entry is a recorded undo log entry.
	Entry = history.Entry
)

// Operation labels recorded in the undo log.
const (
	LabelAddLine        = "Add Line"
	LabelRemoveLine     = "Remove Line"
	LabelReplaceLine    = "Replace Line"
	LabelSubstituteWord = "Substitute Word"
	LabelClearLines     = "Clear Lines"
	LabelRemoveWord     = "Remove Word"
)

// Engine is the editing session facade. It owns one line buffer and one undo
// log, and records the label of every successful mutation in the log.
// Failed operations leave both untouched.
//
// All operations are safe to call from multiple goroutines.
type Engine struct {
	mu sync.RWMutex

	buf *buffer.LineBuffer
	log *history.UndoLog

	// Configuration
	capacity  int
	undoLimit int

	// Initialization
	initLines []string
}

// New creates a new engine with an empty buffer and an empty undo log.
func New(opts ...Option) *Engine {
	e := &Engine{
		capacity:  DefaultCapacity,
		undoLimit: DefaultUndoLimit,
	}

	for _, opt := range opts {
		opt(e)
	}

	bufOpts := []buffer.Option{buffer.WithCapacity(e.capacity)}
	if e.initLines != nil {
		bufOpts = append(bufOpts, buffer.WithLines(e.initLines))
		e.initLines = nil
	}

	e.buf = buffer.NewLineBuffer(bufOpts...)
	e.log = history.NewUndoLog(e.undoLimit)
	return e
}

// ============================================================================
// Read Operations
// ============================================================================

// Len returns the number of lines in the buffer.
func (e *Engine) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.buf.Len()
}

// Cap returns the maximum number of lines in the buffer.
func (e *Engine) Cap() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.buf.Cap()
}

// Lines returns a copy of the buffer content.
func (e *Engine) Lines() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.buf.Lines()
}

// DisplayAll returns every line with its 1-based number.
func (e *Engine) DisplayAll() []Line {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.buf.DisplayAll()
}

// Find returns the 0-based index of the first line containing word.
func (e *Engine) Find(word string) (int, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.buf.Find(word)
}

// ============================================================================
// Write Operations
// ============================================================================

// Insert inserts text as a new line at position.
func (e *Engine) Insert(text string, position int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.record(LabelAddLine, e.buf.Insert(text, position))
}

// Remove deletes the line at position.
func (e *Engine) Remove(position int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.record(LabelRemoveLine, e.buf.Remove(position))
}

// Replace overwrites the line at position.
func (e *Engine) Replace(position int, text string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.record(LabelReplaceLine, e.buf.Replace(position, text))
}

// SubstituteAll replaces every occurrence of oldWord with newWord in every line.
// The operation is recorded even when nothing matched.
func (e *Engine) SubstituteAll(oldWord, newWord string) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	n, err := e.buf.SubstituteAll(oldWord, newWord)
	return n, e.record(LabelSubstituteWord, err)
}

// Clear removes every line.
func (e *Engine) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.buf.Clear()
	e.log.Record(LabelClearLines)
}

// RemoveWordAt deletes the span from charPosition to the next space or end of line.
func (e *Engine) RemoveWordAt(lineIndex, charPosition int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.record(LabelRemoveWord, e.buf.RemoveWordAt(lineIndex, charPosition))
}

// SubstituteWordAt replaces the span from charPosition to the next space or
// end of line with newWord.
func (e *Engine) SubstituteWordAt(lineIndex, charPosition int, newWord string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.record(LabelSubstituteWord, e.buf.SubstituteWordAt(lineIndex, charPosition, newWord))
}

// record adds label to the undo log when err is nil, and passes err through.
func (e *Engine) record(label string, err error) error {
	if err != nil {
		return err
	}
	e.log.Record(label)
	return nil
}

// ============================================================================
// Undo Log
// ============================================================================

// Undo removes and returns the label of the most recent mutation.
// The buffer is not modified.
func (e *Engine) Undo() (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.log.Undo()
}

// History returns the undo log entries, oldest first.
func (e *Engine) History() []Entry {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.log.Entries()
}

// UndoLabels returns the undo log labels, oldest first.
func (e *Engine) UndoLabels() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.log.Labels()
}

// UndoLimit returns the maximum number of undo log entries.
func (e *Engine) UndoLimit() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.log.Limit()
}

// ============================================================================
// File I/O
// ============================================================================

// Load replaces the buffer content with lines from r, up to capacity.
// The buffer is unchanged on error. Loading is not recorded in the undo log.
func (e *Engine) Load(r io.Reader) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.buf.Load(r)
}

// LoadFile replaces the buffer content with the lines of the file at path.
func (e *Engine) LoadFile(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, &IOError{Op: "open", Path: path, Err: unwrapPathError(err)}
	}
	defer f.Close()

	return e.Load(f)
}

// Save writes every line to w, each followed by a newline.
func (e *Engine) Save(w io.Writer) error {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.buf.Save(w)
}

// SaveFile overwrites the file at path with the buffer content.
func (e *Engine) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return &IOError{Op: "open", Path: path, Err: unwrapPathError(err)}
	}

	if err := e.Save(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return &IOError{Op: "close", Path: path, Err: unwrapPathError(err)}
	}
	return nil
}

// unwrapPathError strips the *os.PathError wrapper, since IOError carries
// the op and path itself.
func unwrapPathError(err error) error {
	var pe *os.PathError
	if errors.As(err, &pe) {
		return pe.Err
	}
	return err
}
