// Package normalize rewrites GEDCOM extension structure definitions into
// their canonical YAML layout.
//
// Normalization runs in two phases. The text phase repairs two known
// indentation defects and removes blank lines inside the specification
// block. The document phase parses the result, collapses the
// specification description into one line and re-serializes the document
// between a %YAML 1.2 header and an explicit end marker, keeping the
// original key order.
//
// Running Normalize on its own output returns the same bytes.
package normalize
