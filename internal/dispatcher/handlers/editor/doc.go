// Package editor provides handlers for line and word editing.
//
// Two namespace handlers live here:
//   - LineHandler ("line"): line.add, line.remove, line.replace, line.clear
//   - WordHandler ("word"): word.remove, word.substitute
//
// Positions and line indexes are 0-based. Word actions address a character
// position within a line, counted in runes; the affected span runs from that
// position up to the next space, or to the end of the line.
package editor
