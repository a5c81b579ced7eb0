package history

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"pgregory.net/rapid"
)

func TestNewUndoLog(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"custom", 5, 5},
		{"zero uses default", 0, DefaultLimit},
		{"negative uses default", -1, DefaultLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewUndoLog(tt.limit)
			if got := l.Limit(); got != tt.want {
				t.Errorf("Limit() = %d, want %d", got, tt.want)
			}
			if l.Len() != 0 {
				t.Errorf("new log should be empty, got %d entries", l.Len())
			}
		})
	}
}

func TestRecordEvictsOldest(t *testing.T) {
	l := NewUndoLog(3)
	for _, label := range []string{"Add Line", "Remove Line", "Substitute Word", "Clear Lines"} {
		l.Record(label)
	}

	want := []string{"Remove Line", "Substitute Word", "Clear Lines"}
	if got := l.Labels(); !reflect.DeepEqual(got, want) {
		t.Errorf("Labels() = %q, want %q", got, want)
	}
}

func TestUndo(t *testing.T) {
	l := NewUndoLog(3)
	l.Record("Add Line")
	l.Record("Remove Line")

	label, err := l.Undo()
	if err != nil {
		t.Fatalf("Undo() error = %v", err)
	}
	if label != "Remove Line" {
		t.Errorf("Undo() = %q, want %q", label, "Remove Line")
	}

	label, err = l.Undo()
	if err != nil {
		t.Fatalf("Undo() error = %v", err)
	}
	if label != "Add Line" {
		t.Errorf("Undo() = %q, want %q", label, "Add Line")
	}

	if _, err := l.Undo(); !errors.Is(err, ErrEmptyLog) {
		t.Errorf("Undo() on empty log error = %v, want ErrEmptyLog", err)
	}
}

func TestUndoEmpty(t *testing.T) {
	l := NewUndoLog(3)
	label, err := l.Undo()
	if !errors.Is(err, ErrEmptyLog) {
		t.Errorf("Undo() error = %v, want ErrEmptyLog", err)
	}
	if label != "" {
		t.Errorf("Undo() label = %q, want empty", label)
	}
}

func TestRecordAfterUndo(t *testing.T) {
	l := NewUndoLog(2)
	l.Record("a")
	l.Record("b")
	_, _ = l.Undo()
	l.Record("c")
	l.Record("d")

	want := []string{"c", "d"}
	if got := l.Labels(); !reflect.DeepEqual(got, want) {
		t.Errorf("Labels() = %q, want %q", got, want)
	}
}

func TestPeek(t *testing.T) {
	l := NewUndoLog(3)
	if _, ok := l.Peek(); ok {
		t.Error("Peek() on empty log should report false")
	}

	stamp := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	l.now = func() time.Time { return stamp }
	l.Record("Add Line")

	e, ok := l.Peek()
	if !ok {
		t.Fatal("Peek() should report true")
	}
	if e.Label != "Add Line" || !e.Timestamp.Equal(stamp) {
		t.Errorf("Peek() = %+v", e)
	}
	if l.Len() != 1 {
		t.Error("Peek() should not remove the entry")
	}
}

func TestEntriesReturnsCopy(t *testing.T) {
	l := NewUndoLog(3)
	l.Record("a")

	entries := l.Entries()
	entries[0].Label = "changed"

	if got := l.Labels(); got[0] != "a" {
		t.Errorf("Entries() leaked internal state, Labels() = %q", got)
	}
}

func TestReset(t *testing.T) {
	l := NewUndoLog(3)
	l.Record("a")
	l.Record("b")
	l.Reset()

	if l.Len() != 0 {
		t.Errorf("Len() = %d after Reset, want 0", l.Len())
	}
}

func TestPropertyWindow(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		limit := rapid.IntRange(1, 10).Draw(t, "limit")
		m := rapid.IntRange(0, 30).Draw(t, "extra")
		l := NewUndoLog(limit)

		labels := make([]string, limit+m)
		for i := range labels {
			labels[i] = fmt.Sprintf("op-%d", i)
			l.Record(labels[i])
			if l.Len() > limit {
				t.Fatalf("Len() = %d exceeds limit %d", l.Len(), limit)
			}
		}

		want := labels[m:]
		if got := l.Labels(); !reflect.DeepEqual(got, want) {
			t.Fatalf("Labels() = %q, want %q", got, want)
		}
	})
}
