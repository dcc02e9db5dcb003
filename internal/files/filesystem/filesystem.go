package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
type FileInfo = fs.FileInfo

// File represents an individual file with its metadata and content accessor
type File interface {
	// Path returns the path of the file as seen by its provider
	Path() string

	// RelativePath returns the slash-separated path relative to the walked directory
	RelativePath() string

	// Info returns file metadata
	Info() FileInfo

	// ReadContent returns the file's content
	ReadContent() ([]byte, error)
}

// Directory represents a directory that can be traversed to discover files
type Directory interface {
	// Path returns the path of the directory as seen by its provider
	Path() string

	// Walk traverses the directory tree in lexical order, calling fn for each
	// file and directory. If fn returns an error, walking stops.
	Walk(fn func(File, error) error) error
}

// FileSystemProvider gives read access to a tree of files.
// Missing paths produce errors that satisfy errors.Is(err, fs.ErrNotExist).
type FileSystemProvider interface {
	// Open opens a directory at the specified path
	Open(path string) (Directory, error)

	// ReadFile reads a specific file at the given path
	ReadFile(path string) ([]byte, error)

	// Stat returns file information for the given path
	Stat(path string) (FileInfo, error)
}

// WritableFileSystem is a FileSystemProvider that can also modify files.
type WritableFileSystem interface {
	FileSystemProvider

	// WriteFile creates or truncates the file at path and writes data to it.
	// The parent directory must already exist.
	WriteFile(path string, data []byte) error

	// MkdirAll creates a directory and any missing parents.
	MkdirAll(path string) error
}
