package occfix

// Logger receives diagnostics from the fixture writer and the normalizer.
// Per-file report lines ("Fixed: ...") are not logged; the CLI prints them.
type Logger interface {
	// Verbose reports each file read and written. Dropped unless -v is set.
	Verbose(format string, args ...interface{})
	Info(format string, args ...interface{})
	Error(format string, args ...interface{})
}
