// Package filesystem provides filesystem abstraction interfaces and implementations.
//
// This package defines interfaces for file and directory operations, enabling
// testability through in-memory implementations while maintaining compatibility
// with the OS filesystem.
//
// Key interfaces:
//   - FileSystemProvider: Read access (open, read, stat)
//   - WritableFileSystem: Adds file writes and directory creation
//   - Directory: Represents a directory that can be traversed
//   - File: Represents an individual file with metadata and content
//
// Implementations:
//   - OSFileSystem: Production implementation using the OS filesystem
//   - MemoryFileSystem: In-memory implementation for testing
//   - EmbedFileSystem: Read-only view over an embed.FS
package filesystem
