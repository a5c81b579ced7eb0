package buffer

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// Load replaces the buffer content with lines read from r.
// Reading stops once the buffer is at capacity; remaining input is ignored.
// On error the buffer is left unchanged. Returns the number of lines loaded.
func (b *LineBuffer) Load(r io.Reader) (int, error) {
	lines := make([]string, 0, b.capacity)

	br := bufio.NewReader(r)
	for len(lines) < b.capacity {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return 0, &IOError{Op: "read", Path: nameOf(r), Err: err}
		}
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			lines = append(lines, strings.TrimSuffix(line, "\r"))
		}
		if err != nil {
			break
		}
	}

	b.swap(lines)
	return len(lines), nil
}

// Save writes every line to w, each followed by a newline.
func (b *LineBuffer) Save(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, line := range b.lines {
		if _, err := bw.WriteString(line); err != nil {
			return &IOError{Op: "write", Path: nameOf(w), Err: err}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return &IOError{Op: "write", Path: nameOf(w), Err: err}
		}
	}
	if err := bw.Flush(); err != nil {
		return &IOError{Op: "write", Path: nameOf(w), Err: err}
	}
	return nil
}

// nameOf returns the file name behind v when it has one (e.g. *os.File).
func nameOf(v any) string {
	if n, ok := v.(interface{ Name() string }); ok {
		return n.Name()
	}
	return ""
}
