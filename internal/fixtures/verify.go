package fixtures

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/glamberson/occfix/internal/checksum"
	"github.com/glamberson/occfix/internal/files/filesystem"
)

// DriftKind classifies how a file on disk relates to its fixture.
type DriftKind int

const (
	InSync     DriftKind = iota // byte-identical
	Missing                     // file does not exist
	Whitespace                  // differs only in whitespace layout
	Modified                    // content differs
	Unreadable                  // file exists but could not be read
)

func (k DriftKind) String() string {
	switch k {
	case InSync:
		return "in sync"
	case Missing:
		return "missing"
	case Whitespace:
		return "whitespace"
	case Modified:
		return "modified"
	case Unreadable:
		return "unreadable"
	}
	return "unknown"
}

// Drift is the verification result for one fixture.
type Drift struct {
	Path string
	Kind DriftKind
	Err  error
}

// Verify compares each fixture with the file at the same path below root.
// It returns one entry per fixture, in catalog order.
func Verify(fsys filesystem.FileSystemProvider, root string, c *Catalog) []Drift {
	calc := checksum.New()
	drifts := make([]Drift, 0, c.Len())

	for _, f := range c.Fixtures() {
		d := Drift{Path: f.Path}
		onDisk, err := fsys.ReadFile(filepath.Join(root, filepath.FromSlash(f.Path)))
		switch {
		case errors.Is(err, fs.ErrNotExist):
			d.Kind = Missing
		case err != nil:
			d.Kind, d.Err = Unreadable, err
		case calc.CalculateRaw(onDisk) == calc.CalculateRaw(f.Content):
			d.Kind = InSync
		case calc.CalculateNormalized(onDisk) == calc.CalculateNormalized(f.Content):
			d.Kind = Whitespace
		default:
			d.Kind = Modified
		}
		drifts = append(drifts, d)
	}
	return drifts
}

// Drifted reports whether any entry is out of sync.
func Drifted(drifts []Drift) bool {
	for _, d := range drifts {
		if d.Kind != InSync {
			return true
		}
	}
	return false
}
