// Package loader provides configuration file loading for lineedit.
//
// The loader package handles parsing configuration files in various formats
// (TOML, YAML) and loading environment variables into configuration maps.
package loader

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Loader is the interface for configuration loaders.
type Loader interface {
	// Load reads configuration from the source and returns a map.
	// Returns nil, nil if the source doesn't exist (not an error).
	Load() (map[string]any, error)
}

// FileLoader is the interface for loaders that read from files.
type FileLoader interface {
	Loader
	// LoadFrom reads configuration from a specific path.
	LoadFrom(path string) (map[string]any, error)
}

// ReaderLoader is the interface for loaders that read from io.Reader.
type ReaderLoader interface {
	// LoadFromReader reads configuration from a reader.
	LoadFromReader(r io.Reader) (map[string]any, error)
}

// FileSystem is an abstraction for file system operations.
// This allows for easy testing with in-memory file systems.
type FileSystem interface {
	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)
}

// OSFS implements FileSystem using the real OS file system.
type OSFS struct{}

// ReadFile reads the entire file at path.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// DefaultFS returns the default file system (OS).
func DefaultFS() FileSystem {
	return OSFS{}
}

// ForPath returns a file loader chosen by the extension of path.
// .yaml and .yml select YAML; anything else is read as TOML.
func ForPath(fsys FileSystem, path string) FileLoader {
	if fsys == nil {
		fsys = DefaultFS()
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return NewYAMLLoaderWithFS(fsys, path)
	default:
		return NewTOMLLoaderWithFS(fsys, path)
	}
}

// readOptional reads path, reporting a missing file as nil data and no error.
func readOptional(fsys FileSystem, path string) ([]byte, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}
