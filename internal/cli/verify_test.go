package cli

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glamberson/occfix/pkg/occfix"
)

func TestVerify_AfterRestore(t *testing.T) {
	root := newRegistry(t)
	_, _, err := executeCommand(t, "restore", "--root", root)
	require.NoError(t, err)

	stdout, _, err := executeCommand(t, "verify", "--root", root)
	require.NoError(t, err)
	assert.Equal(t, 5, strings.Count(stdout, "OK: "))
}

func TestVerify_ReportsDrift(t *testing.T) {
	root := newRegistry(t)
	_, _, err := executeCommand(t, "restore", "--root", root)
	require.NoError(t, err)

	part := fixtureContent(t, "registry-yaml/structure/_PART.yaml")
	writeFile(t, root, "registry-yaml/structure/_PART.yaml", part+"\n\n")
	writeFile(t, root, "registry-yaml/structure/_ATTR.yaml", "label: Something else\n")

	stdout, _, err := executeCommand(t, "verify", "--root", root)
	require.Error(t, err)
	assert.True(t, errors.Is(err, occfix.ErrFixtureDrift))
	assert.Equal(t, occfix.ExitDriftDetected, occfix.ExitCodeForError(err))

	assert.Contains(t, stdout, "Modified: registry-yaml/structure/_ATTR.yaml\n")
	assert.Contains(t, stdout, "Whitespace only: registry-yaml/structure/_PART.yaml\n")
	assert.Contains(t, stdout, "OK: registry-yaml/structure/_OCUR.yaml\n")
}

func TestVerify_Missing(t *testing.T) {
	root := newRegistry(t)

	stdout, _, err := executeCommand(t, "verify", "--root", root)
	require.Error(t, err)
	assert.Equal(t, 5, strings.Count(stdout, "Missing: "))
}
