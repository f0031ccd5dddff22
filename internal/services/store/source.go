package store

import (
	"context"
	"errors"
	"io"
	"os"
	"sync"

	"github.com/nabdchainsystem-alt/ncs-sub005/internal/domain"
)

// Source abstracts where the task document comes from, for testing
type Source interface {
	Read(ctx context.Context) ([]byte, error)
	// Name identifies the source in errors and logs
	Name() string
}

// FileSource reads the task document from a file on every call
type FileSource struct {
	Path string
}

// Read returns the file contents. A missing file wraps domain.ErrNotFound.
func (s *FileSource) Read(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, &domain.StoreError{Op: "read", Path: s.Path, Message: "task file not found", Err: domain.ErrNotFound}
	}
	if err != nil {
		return nil, &domain.StoreError{Op: "read", Path: s.Path, Err: err}
	}
	return data, nil
}

// Name returns the file path
func (s *FileSource) Name() string {
	return s.Path
}

// ReaderSource drains a reader (typically stdin) once and replays the same
// bytes on later reads
type ReaderSource struct {
	R     io.Reader
	Label string

	once sync.Once
	data []byte
	err  error
}

// Read returns the reader's contents
func (s *ReaderSource) Read(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.once.Do(func() {
		s.data, s.err = io.ReadAll(s.R)
	})
	if s.err != nil {
		return nil, &domain.StoreError{Op: "read", Path: s.Name(), Err: s.err}
	}
	return s.data, nil
}

// Name returns the label, "stdin" when unset
func (s *ReaderSource) Name() string {
	if s.Label == "" {
		return "stdin"
	}
	return s.Label
}

// NewSource returns a ReaderSource over stdin for "-" and a FileSource otherwise
func NewSource(path string, stdin io.Reader) Source {
	if path == "-" {
		return &ReaderSource{R: stdin}
	}
	return &FileSource{Path: path}
}
