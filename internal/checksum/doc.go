// Package checksum provides file content hashing with whitespace normalization.
//
// Two checksums are offered:
//
//   - Raw checksum: Hash of the exact file content (detects all changes)
//   - Normalized checksum: Hash after collapsing whitespace runs to a single
//     space and trimming the ends (ignores re-indentation and re-wrapping)
//
// occfix compares raw checksums to decide whether a file differs from its
// fixture or from its normalized form, and uses the normalized checksum to
// tell whitespace-only drift apart from content changes.
//
// # Example Usage
//
//	calculator := checksum.New()
//	if calculator.CalculateRaw(onDisk) != calculator.CalculateRaw(expected) {
//	    // file drifted
//	}
//
// SHA256 is safe for concurrent use by multiple goroutines.
package checksum
