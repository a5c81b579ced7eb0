// Package history provides the bounded undo log of the line editor.
//
// The log keeps the labels of the most recent mutating operations, such as
// "Add Line" or "Clear Lines". It is a record, not a rollback mechanism:
// undoing an entry removes and reports its label but never restores the
// buffer to the state it had before that operation.
//
// # Bounded Window
//
// A log holds at most Limit() entries (DefaultLimit unless configured).
// Recording into a full log evicts the oldest entry first:
//
//	log := history.NewUndoLog(3)
//	log.Record("Add Line")
//	log.Record("Remove Line")
//	log.Record("Substitute Word")
//	log.Record("Clear Lines") // "Add Line" is evicted
//
// # Undo
//
// Undo pops the most recent label:
//
//	label, err := log.Undo() // "Clear Lines", nil
//
// An empty log returns ErrEmptyLog.
package history
