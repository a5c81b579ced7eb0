// Package file provides handlers for reading and writing the buffer.
//
// Supported actions:
//   - file.read: replace the buffer with the lines of "path"
//   - file.write: write the buffer to "path", or to the current file
//
// A file longer than the buffer capacity is truncated to its first lines.
// Both actions report the path under handler.DataPath so the dispatcher can
// track the current file.
package file
