package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/glamberson/occfix/internal/fixtures"
	"github.com/glamberson/occfix/internal/tui"
	"github.com/glamberson/occfix/pkg/occfix"
)

// resetFlags resets command flags to their zero values.
// This is necessary because flags are package-level globals that persist across tests.
func resetFlags(t *testing.T) {
	t.Helper()
	restoreFlags = restoreFlagValues{}
	normalizeFlags = normalizeFlagValues{}
	require.NoError(t, rootCmd.PersistentFlags().Set("root", ""))
	require.NoError(t, rootCmd.PersistentFlags().Set("verbose", "false"))
}

// executeCommand runs occfix with args and returns stdout and stderr.
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(t)
	t.Setenv(tui.NonInteractiveEnvVar, "1")
	t.Setenv(occfix.RootEnvVar, "")

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

// newRegistry creates an empty registry root with the structure directory.
func newRegistry(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, filepath.FromSlash(occfix.StructureDir)), 0755))
	return root
}

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	target := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(target), 0755))
	require.NoError(t, os.WriteFile(target, []byte(content), 0644))
}

func readFile(t *testing.T, root, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	require.NoError(t, err)
	return string(data)
}

func fixtureContent(t *testing.T, path string) string {
	t.Helper()
	c, err := fixtures.Load()
	require.NoError(t, err)
	f, ok := c.Lookup(path)
	require.True(t, ok, path)
	return string(f.Content)
}

// chdir changes the working directory for the duration of the test,
// restoring the previous one on cleanup (equivalent to Go 1.24's t.Chdir).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
