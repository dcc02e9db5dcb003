// Package fixtures holds the known-good structure definitions of the
// gedcom-occurrences extension registry and restores them on disk.
//
// The definitions are embedded from templates/ and keyed by their path
// relative to the registry root, for example
// "registry-yaml/structure/_OCREF.yaml". Writer overwrites files verbatim
// and stops at the first failure; Verify compares files on disk against
// the catalog without writing.
package fixtures
