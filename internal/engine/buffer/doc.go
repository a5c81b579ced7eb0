// Package buffer provides the line buffer at the heart of the editor: an
// ordered, capacity-bounded sequence of text lines addressed by 0-based index.
//
// The buffer package provides:
//
//   - Positional insert, remove and whole-line replace
//   - Substring search and in-place substitution across all lines
//   - Word-span removal and substitution at a line/character position
//   - Bulk load from an io.Reader and save to an io.Writer
//
// Basic usage:
//
//	buf := buffer.NewLineBuffer(buffer.WithLines([]string{"alpha", "beta"}))
//
//	// Insert a line before "beta"
//	buf.Insert("delta", 1) // ["alpha", "delta", "beta"]
//
//	// Find the first line containing a word
//	idx, ok := buf.Find("beta") // 2, true
//
//	// Replace every occurrence of a word
//	buf.SubstituteAll("beta", "zz")
//
// Capacity:
//
// A buffer holds at most Cap() lines (DefaultCapacity unless configured).
// Insert on a full buffer fails with ErrCapacityExceeded. Load silently drops
// input lines beyond capacity.
//
// Word spans:
//
// RemoveWordAt and SubstituteWordAt operate on the span that starts at the
// given character position and runs up to the next space or the end of the
// line. The position is not snapped to a word start, so a position in the
// middle of a word affects only the tail of that word.
//
// Thread Safety:
//
// A LineBuffer is not safe for concurrent use. The engine package wraps it
// with the locking a shared session needs.
package buffer
