package fixtures

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glamberson/occfix/internal/files/filesystem"
	"github.com/glamberson/occfix/pkg/occfix"
)

func TestLoad_EmbeddedCatalog(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"registry-yaml/structure/_ATTR.yaml",
		"registry-yaml/structure/_OCREF.yaml",
		"registry-yaml/structure/_OCUR.yaml",
		"registry-yaml/structure/_PART.yaml",
		"registry-yaml/structure/_PRESENCE.yaml",
	}, c.Paths())
}

func TestLoad_CoversDefaultStructureFiles(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	for _, p := range occfix.DefaultStructureFiles {
		_, ok := c.Lookup(p)
		assert.True(t, ok, "no fixture for %s", p)
	}
}

func TestLoad_FixtureShape(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	for _, f := range c.Fixtures() {
		t.Run(f.Path, func(t *testing.T) {
			content := string(f.Content)
			assert.True(t, strings.HasPrefix(content, "%YAML 1.2\n---\nlang: en-US\n"))
			assert.True(t, strings.HasSuffix(content, "\n..."), "fixtures end with the document end marker and no newline")
			assert.Contains(t, content, "extension tags:\n  - _")
			assert.Contains(t, content, "specification:\n  - ")
			assert.Contains(t, content, "contact: https://github.com/glamberson/gedcom-occurrences\n")
		})
	}
}

func TestLoad_OCREFContent(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	f, ok := c.Lookup("registry-yaml/structure/_OCREF.yaml")
	require.True(t, ok)
	assert.Contains(t, string(f.Content), `payload: "@<https://github.com/glamberson/gedcom-occurrences/_OCUR>@"`)
	assert.Contains(t, string(f.Content), "    and participation details.\n    \n    In the container-only model")
	assert.Contains(t, string(f.Content), `  "https://gedcom.io/terms/v7/ROLE": "{1:1}"`)
}

func TestLoadFrom_MemoryFileSystem(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/fixtures")
	mfs.AddFile("b/two.yaml", "two")
	mfs.AddFile("a/one.yaml", "one")

	c, err := LoadFrom(mfs)
	require.NoError(t, err)
	assert.Equal(t, []string{"a/one.yaml", "b/two.yaml"}, c.Paths())

	f, ok := c.Lookup("b/two.yaml")
	require.True(t, ok)
	assert.Equal(t, "two", string(f.Content))
}

func TestNewCatalog_DuplicatePath(t *testing.T) {
	_, err := NewCatalog(
		Fixture{Path: "a.yaml", Content: []byte("1")},
		Fixture{Path: "a.yaml", Content: []byte("2")},
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate fixture path")
}

func TestCatalog_LookupMissing(t *testing.T) {
	c, err := NewCatalog(Fixture{Path: "a.yaml"})
	require.NoError(t, err)

	_, ok := c.Lookup("b.yaml")
	assert.False(t, ok)
	assert.Equal(t, 1, c.Len())
}
