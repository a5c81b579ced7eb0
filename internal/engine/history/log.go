package history

import (
	"time"
)

// DefaultLimit is the number of entries a log keeps when no limit is configured.
const DefaultLimit = 3

// Entry is a recorded operation label with the time it was recorded.
type Entry struct {
	Label     string
	Timestamp time.Time
}

// UndoLog is a bounded, oldest-evicted-first log of operation labels.
// It is not safe for concurrent use.
type UndoLog struct {
	entries []Entry
	limit   int

	// now is replaceable in tests.
	now func() time.Time
}

// NewUndoLog creates an empty log holding at most limit entries.
// Non-positive limits fall back to DefaultLimit.
func NewUndoLog(limit int) *UndoLog {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &UndoLog{
		entries: make([]Entry, 0, limit),
		limit:   limit,
		now:     time.Now,
	}
}

// Record appends label, evicting the oldest entry first if the log is full.
func (l *UndoLog) Record(label string) {
	if len(l.entries) >= l.limit {
		excess := len(l.entries) - l.limit + 1
		copy(l.entries, l.entries[excess:])
		l.entries = l.entries[:len(l.entries)-excess]
	}

	l.entries = append(l.entries, Entry{
		Label:     label,
		Timestamp: l.now(),
	})
}

// Undo removes and returns the most recently recorded label.
func (l *UndoLog) Undo() (string, error) {
	if len(l.entries) == 0 {
		return "", ErrEmptyLog
	}

	last := l.entries[len(l.entries)-1]
	l.entries = l.entries[:len(l.entries)-1]
	return last.Label, nil
}

// Peek returns the most recent entry without removing it.
func (l *UndoLog) Peek() (Entry, bool) {
	if len(l.entries) == 0 {
		return Entry{}, false
	}
	return l.entries[len(l.entries)-1], true
}

// Len returns the number of entries.
func (l *UndoLog) Len() int {
	return len(l.entries)
}

// Limit returns the maximum number of entries.
func (l *UndoLog) Limit() int {
	return l.limit
}

// Labels returns the recorded labels, oldest first.
func (l *UndoLog) Labels() []string {
	out := make([]string, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.Label
	}
	return out
}

// Entries returns a copy of the recorded entries, oldest first.
func (l *UndoLog) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Reset removes all entries.
func (l *UndoLog) Reset() {
	l.entries = l.entries[:0]
}
