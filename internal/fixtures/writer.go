package fixtures

import (
	"fmt"
	"path/filepath"

	"github.com/glamberson/occfix/internal/files/filesystem"
	"github.com/glamberson/occfix/pkg/occfix"
)

// Writer restores fixtures on disk.
type Writer struct {
	fs         filesystem.WritableFileSystem
	logger     occfix.Logger
	root       string
	createDirs bool

	// OnWrite, when set, is called with each fixture path after it is written.
	OnWrite func(path string)
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithRoot writes fixtures relative to root instead of the working directory.
func WithRoot(root string) WriterOption {
	return func(w *Writer) { w.root = root }
}

// WithCreateDirs creates missing parent directories before writing.
func WithCreateDirs(create bool) WriterOption {
	return func(w *Writer) { w.createDirs = create }
}

// NewWriter creates a Writer over fsys.
func NewWriter(fsys filesystem.WritableFileSystem, logger occfix.Logger, opts ...WriterOption) *Writer {
	w := &Writer{fs: fsys, logger: logger}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// WriteAll overwrites every fixture in catalog order and returns the paths
// written. It stops at the first failure; files written before it stay
// written.
func (w *Writer) WriteAll(c *Catalog) ([]string, error) {
	written := make([]string, 0, c.Len())
	for _, f := range c.Fixtures() {
		if err := w.write(f); err != nil {
			return written, err
		}
		written = append(written, f.Path)
		if w.OnWrite != nil {
			w.OnWrite(f.Path)
		}
	}
	return written, nil
}

func (w *Writer) write(f Fixture) error {
	target := w.target(f.Path)

	if w.createDirs {
		if err := w.fs.MkdirAll(filepath.Dir(target)); err != nil {
			return fmt.Errorf("%w: %s: %v", occfix.ErrFixtureWrite, f.Path, err)
		}
	}

	if err := w.fs.WriteFile(target, f.Content); err != nil {
		return fmt.Errorf("%w: %s: %v", occfix.ErrFixtureWrite, f.Path, err)
	}
	w.logger.Verbose("Wrote %s (%d bytes)", target, len(f.Content))
	return nil
}

func (w *Writer) target(path string) string {
	return filepath.Join(w.root, filepath.FromSlash(path))
}
