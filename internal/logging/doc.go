// Package logging provides concrete implementations of the occfix.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes formatted diagnostics to a writer (stderr by default)
//   - NullLogger: Discards all messages (useful for testing)
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
