// Package fs provides file-system adapters: a ValueSource reading the base
// operand from a TOML file and a Watcher signaling changes to it. This is the
// only package besides cmd that touches the file system.
package fs

import (
	"context"
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/tally-labs/tally/internal/domain"
)

// sourceFile is the on-disk shape of a value file.
type sourceFile struct {
	Value int64 `toml:"value"`
}

// FileSource implements ports.ValueSource by reading a TOML file of the form:
//
//	value = 7
//
// The file is re-read on every Fetch, so external writers can update the
// operand between calls.
type FileSource struct {
	path string
}

// NewFileSource creates a FileSource for the given path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Fetch reads and parses the value file.
// A missing or unreadable file surfaces as domain.ErrSourceUnavailable.
func (s *FileSource) Fetch(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	b, err := os.ReadFile(s.path)
	if err != nil {
		return 0, fmt.Errorf("%w: read %s: %v", domain.ErrSourceUnavailable, s.path, err)
	}

	var f sourceFile
	if err := toml.Unmarshal(b, &f); err != nil {
		return 0, fmt.Errorf("%w: parse %s: %v", domain.ErrSourceUnavailable, s.path, err)
	}

	return f.Value, nil
}

// Path returns the path of the value file.
func (s *FileSource) Path() string {
	return s.path
}
