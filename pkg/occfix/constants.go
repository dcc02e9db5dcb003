package occfix

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess         = 0  // Command completed successfully
	ExitGeneralError    = 1  // Unknown or unclassified error
	ExitUsageError      = 2  // CLI usage error (invalid arguments or flags)
	ExitPanic           = 3  // Internal panic (unexpected crash)
	ExitConfigError     = 10 // Invalid occfix.yaml or environment
	ExitWriteFailed     = 11 // A fixture could not be written
	ExitDriftDetected   = 12 // On-disk files differ from fixtures
	ExitNormalizeFailed = 13 // One or more files failed to normalize (strict mode)
)

const (
	// YAMLDirective is written as the first line of every normalized file.
	YAMLDirective = "%YAML 1.2"

	// DocumentStart and DocumentEnd bracket the serialized document.
	DocumentStart = "---"
	DocumentEnd   = "..."

	// StructureDir is where the registry keeps extension structure definitions,
	// relative to the registry root.
	StructureDir = "registry-yaml/structure"

	// RootEnvVar overrides the default registry root.
	RootEnvVar = "OCCFIX_ROOT"
)

// DefaultStructureFiles lists the structure definitions handled when no
// paths are given on the command line.
var DefaultStructureFiles = []string{
	StructureDir + "/_OCUR.yaml",
	StructureDir + "/_OCREF.yaml",
	StructureDir + "/_PART.yaml",
	StructureDir + "/_PRESENCE.yaml",
	StructureDir + "/_ATTR.yaml",
}
