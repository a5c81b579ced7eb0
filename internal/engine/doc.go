// Package engine provides the editing session for the line editor.
//
// The engine package serves as the facade over two sub-packages:
//
//   - buffer: capacity-bounded line buffer with positional and word operations
//   - history: bounded log of operation labels used to acknowledge undo
//
// An Engine owns exactly one of each. Every mutation that succeeds records
// its label (LabelAddLine, LabelRemoveLine, ...) in the log; a failed
// mutation changes neither the buffer nor the log.
//
// # Basic Usage
//
//	e := engine.New(engine.WithLines([]string{"alpha", "beta", "gamma"}))
//
//	e.Insert("delta", 1) // alpha delta beta gamma
//	e.Remove(3)          // alpha delta beta
//	e.SubstituteAll("beta", "zz")
//
//	e.UndoLabels() // ["Add Line", "Remove Line", "Substitute Word"]
//
// # Undo
//
// Undo pops and reports the most recent label. It does not restore the
// buffer:
//
//	label, err := e.Undo() // "Substitute Word", nil
//	e.Lines()              // still alpha delta zz
//
// # Files
//
// LoadFile reads a newline-delimited text file into the buffer, dropping
// lines beyond capacity. The buffer keeps its previous content if the file
// cannot be opened or read. SaveFile overwrites a file with one line per
// buffer line.
//
// # Error Handling
//
// The package re-exports the error values of its sub-packages:
//
//   - ErrInvalidPosition: line or character position out of range
//   - ErrInvalidLineIndex: line index of a word operation out of range
//   - ErrCapacityExceeded: insert into a full buffer
//   - ErrInvalidArgument: empty search word, or text containing a line break
//   - ErrIO: any *IOError from file open, read or write
//   - ErrEmptyLog: undo with nothing recorded
package engine
