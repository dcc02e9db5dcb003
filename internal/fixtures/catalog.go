package fixtures

import (
	"embed"
	"fmt"
	"sort"

	"github.com/glamberson/occfix/internal/files/filesystem"
)

//go:embed all:templates
var templatesFS embed.FS

const templatesRoot = "templates"

// Fixture is one file to restore: its slash-separated path relative to the
// registry root and its exact content.
type Fixture struct {
	Path    string
	Content []byte
}

// Catalog is an ordered, path-unique set of fixtures.
type Catalog struct {
	fixtures []Fixture
	byPath   map[string]int
}

// Load returns the catalog embedded in the binary.
func Load() (*Catalog, error) {
	return LoadFrom(filesystem.NewEmbedFileSystem(templatesFS, templatesRoot))
}

// LoadFrom builds a catalog from every file under the root of src.
func LoadFrom(src filesystem.FileSystemProvider) (*Catalog, error) {
	dir, err := src.Open(".")
	if err != nil {
		return nil, fmt.Errorf("failed to open fixtures: %w", err)
	}

	var fixtures []Fixture
	err = dir.Walk(func(file filesystem.File, err error) error {
		if err != nil {
			return err
		}
		if file.Info().IsDir() {
			return nil
		}
		content, err := file.ReadContent()
		if err != nil {
			return fmt.Errorf("failed to read fixture %s: %w", file.RelativePath(), err)
		}
		fixtures = append(fixtures, Fixture{Path: file.RelativePath(), Content: content})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return NewCatalog(fixtures...)
}

// NewCatalog builds a catalog sorted by path. Duplicate paths are rejected.
func NewCatalog(fixtures ...Fixture) (*Catalog, error) {
	sorted := make([]Fixture, len(fixtures))
	copy(sorted, fixtures)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Path < sorted[j].Path })

	byPath := make(map[string]int, len(sorted))
	for i, f := range sorted {
		if _, dup := byPath[f.Path]; dup {
			return nil, fmt.Errorf("duplicate fixture path: %s", f.Path)
		}
		byPath[f.Path] = i
	}

	return &Catalog{fixtures: sorted, byPath: byPath}, nil
}

// Fixtures returns the fixtures in path order.
func (c *Catalog) Fixtures() []Fixture {
	return c.fixtures
}

// Paths returns the fixture paths in order.
func (c *Catalog) Paths() []string {
	paths := make([]string, len(c.fixtures))
	for i, f := range c.fixtures {
		paths[i] = f.Path
	}
	return paths
}

// Lookup finds a fixture by path.
func (c *Catalog) Lookup(path string) (Fixture, bool) {
	i, ok := c.byPath[path]
	if !ok {
		return Fixture{}, false
	}
	return c.fixtures[i], true
}

// Len returns the number of fixtures.
func (c *Catalog) Len() int {
	return len(c.fixtures)
}
