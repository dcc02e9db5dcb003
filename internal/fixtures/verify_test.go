package fixtures

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glamberson/occfix/internal/files/filesystem"
)

func TestVerify(t *testing.T) {
	c, err := NewCatalog(
		Fixture{Path: "s/same.yaml", Content: []byte("uri: a\nlabel: A\n")},
		Fixture{Path: "s/spaces.yaml", Content: []byte("extension tags:\n  - _A\n")},
		Fixture{Path: "s/changed.yaml", Content: []byte("label: A\n")},
		Fixture{Path: "s/gone.yaml", Content: []byte("label: A\n")},
	)
	require.NoError(t, err)

	mfs := filesystem.NewMemoryFileSystem("/registry")
	mfs.AddFile("s/same.yaml", "uri: a\nlabel: A\n")
	mfs.AddFile("s/spaces.yaml", "extension tags:\n- _A\n")
	mfs.AddFile("s/changed.yaml", "label: B\n")

	drifts := Verify(mfs, "", c)
	require.Len(t, drifts, 4)

	got := map[string]DriftKind{}
	for _, d := range drifts {
		got[d.Path] = d.Kind
	}
	assert.Equal(t, map[string]DriftKind{
		"s/same.yaml":    InSync,
		"s/spaces.yaml":  Whitespace,
		"s/changed.yaml": Modified,
		"s/gone.yaml":    Missing,
	}, got)
	assert.True(t, Drifted(drifts))
}

func TestVerify_Unreadable(t *testing.T) {
	c, err := NewCatalog(Fixture{Path: "s", Content: []byte("x")})
	require.NoError(t, err)

	mfs := filesystem.NewMemoryFileSystem("/registry")
	require.NoError(t, mfs.MkdirAll("s"))

	drifts := Verify(mfs, "", c)
	require.Len(t, drifts, 1)
	assert.Equal(t, Unreadable, drifts[0].Kind)
	assert.Error(t, drifts[0].Err)
}

func TestDriftKind_String(t *testing.T) {
	assert.Equal(t, "in sync", InSync.String())
	assert.Equal(t, "whitespace", Whitespace.String())
	assert.Equal(t, "unknown", DriftKind(42).String())
}
