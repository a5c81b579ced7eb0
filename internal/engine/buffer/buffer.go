package buffer

import (
	"strings"
)

// Line is a numbered line as presented to a user.
type Line struct {
	// Number is the 1-based line number.
	Number int
	// Text is the line content without a line terminator.
	Text string
}

// LineBuffer is an ordered sequence of text lines with a fixed maximum capacity.
type LineBuffer struct {
	lines    []string
	capacity int

	// initial is consumed by NewLineBuffer.
	initial []string
}

// NewLineBuffer creates a new buffer. It is empty unless WithLines is given.
func NewLineBuffer(opts ...Option) *LineBuffer {
	b := &LineBuffer{
		capacity: DefaultCapacity,
	}

	for _, opt := range opts {
		opt(b)
	}

	if b.initial != nil {
		n := min(len(b.initial), b.capacity)
		b.lines = make([]string, n, b.capacity)
		copy(b.lines, b.initial)
		b.initial = nil
	} else {
		b.lines = make([]string, 0, b.capacity)
	}

	return b
}

// Read Operations

// Len returns the number of lines.
func (b *LineBuffer) Len() int {
	return len(b.lines)
}

// Cap returns the maximum number of lines.
func (b *LineBuffer) Cap() int {
	return b.capacity
}

// IsEmpty returns true if the buffer holds no lines.
func (b *LineBuffer) IsEmpty() bool {
	return len(b.lines) == 0
}

// IsFull returns true if no further line can be inserted.
func (b *LineBuffer) IsFull() bool {
	return len(b.lines) >= b.capacity
}

// Lines returns a copy of all lines in order.
func (b *LineBuffer) Lines() []string {
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

// DisplayAll returns every line with its 1-based number.
func (b *LineBuffer) DisplayAll() []Line {
	out := make([]Line, len(b.lines))
	for i, text := range b.lines {
		out[i] = Line{Number: i + 1, Text: text}
	}
	return out
}

// Find returns the index of the first line containing word.
func (b *LineBuffer) Find(word string) (int, bool) {
	for i, line := range b.lines {
		if strings.Contains(line, word) {
			return i, true
		}
	}
	return -1, false
}

// Write Operations

// Insert splices text in at position, shifting later lines down by one.
// Valid positions are 0 through Len() inclusive.
func (b *LineBuffer) Insert(text string, position int) error {
	if position < 0 || position > len(b.lines) {
		return ErrInvalidPosition
	}
	if b.IsFull() {
		return ErrCapacityExceeded
	}
	if hasLineBreak(text) {
		return ErrInvalidArgument
	}

	b.lines = append(b.lines, "")
	copy(b.lines[position+1:], b.lines[position:])
	b.lines[position] = text
	return nil
}

// Remove deletes the line at position, shifting later lines up by one.
func (b *LineBuffer) Remove(position int) error {
	if position < 0 || position >= len(b.lines) {
		return ErrInvalidPosition
	}

	copy(b.lines[position:], b.lines[position+1:])
	b.lines[len(b.lines)-1] = ""
	b.lines = b.lines[:len(b.lines)-1]
	return nil
}

// Replace overwrites the line at position with text.
func (b *LineBuffer) Replace(position int, text string) error {
	if position < 0 || position >= len(b.lines) {
		return ErrInvalidPosition
	}
	if hasLineBreak(text) {
		return ErrInvalidArgument
	}

	b.lines[position] = text
	return nil
}

// SubstituteAll replaces every non-overlapping occurrence of oldWord with
// newWord in every line. Scanning resumes after each inserted replacement,
// so a newWord containing oldWord is never matched again.
// Returns the number of replacements made.
func (b *LineBuffer) SubstituteAll(oldWord, newWord string) (int, error) {
	if oldWord == "" || hasLineBreak(newWord) {
		return 0, ErrInvalidArgument
	}

	total := 0
	for i, line := range b.lines {
		n := strings.Count(line, oldWord)
		if n == 0 {
			continue
		}
		// strings.Replace scans left to right and never rescans output.
		b.lines[i] = strings.Replace(line, oldWord, newWord, -1)
		total += n
	}
	return total, nil
}

// Clear removes every line.
func (b *LineBuffer) Clear() {
	clear(b.lines)
	b.lines = b.lines[:0]
}

// swap replaces the content with lines, which must already respect capacity.
func (b *LineBuffer) swap(lines []string) {
	b.lines = lines
}

func hasLineBreak(s string) bool {
	return strings.ContainsAny(s, "\n\r")
}
