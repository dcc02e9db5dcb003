package occfix

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	err := writer.WriteAll(root)
//	if errors.Is(err, occfix.ErrFixtureWrite) {
//	    // A target directory is missing or not writable
//	}
var (
	// ErrInvalidConfig indicates occfix.yaml or the environment is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUsage indicates invalid command-line arguments.
	ErrUsage = errors.New("invalid usage")

	// ErrFixtureWrite indicates a fixture could not be written to disk.
	ErrFixtureWrite = errors.New("fixture write failed")

	// ErrFixtureDrift indicates on-disk content no longer matches a fixture.
	ErrFixtureDrift = errors.New("files differ from fixtures")

	// ErrNotFound indicates a requested file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrInvalidDocument indicates a YAML document does not have the expected shape.
	ErrInvalidDocument = errors.New("invalid document")

	// ErrNormalizeFailed indicates at least one file in a batch failed to normalize.
	ErrNormalizeFailed = errors.New("normalize failed")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrUsage):
		return ExitUsageError
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrFixtureWrite):
		return ExitWriteFailed
	case errors.Is(err, ErrFixtureDrift):
		return ExitDriftDetected
	case errors.Is(err, ErrNormalizeFailed):
		return ExitNormalizeFailed
	}

	// cobra reports argument and flag problems as plain errors
	errStr := err.Error()
	for _, prefix := range usageErrorPrefixes {
		if strings.HasPrefix(errStr, prefix) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}

var usageErrorPrefixes = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"requires at least",
	"invalid argument",
}
