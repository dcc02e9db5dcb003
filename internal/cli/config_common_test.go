package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glamberson/occfix/pkg/occfix"
)

func TestLoadProjectConfig_Missing(t *testing.T) {
	cfg, err := loadProjectConfig(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestLoadProjectConfig_Valid(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "occfix.yaml", "normalize:\n  scan:\n    - registry-yaml/structure\n")

	cfg, err := loadProjectConfig(root)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, []string{"registry-yaml/structure"}, cfg.Normalize.Scan)
}

func TestResolveRoot_FromDotEnv(t *testing.T) {
	root := newRegistry(t)
	workdir := t.TempDir()
	writeFile(t, workdir, ".env", occfix.RootEnvVar+"="+root+"\n")

	t.Setenv(occfix.RootEnvVar, "")
	require.NoError(t, os.Unsetenv(occfix.RootEnvVar))
	chdir(t, workdir)
	resetFlags(t)

	got, err := resolveRoot(mergedRootCmd())
	require.NoError(t, err)
	assert.Equal(t, root, got)
}

func TestResolveRoot_DefaultsToWorkingDirectory(t *testing.T) {
	t.Setenv(occfix.RootEnvVar, "")
	chdir(t, t.TempDir())
	resetFlags(t)

	got, err := resolveRoot(mergedRootCmd())
	require.NoError(t, err)
	assert.Equal(t, ".", got)
}

func TestResolveRoot_FlagWinsOverEnvironment(t *testing.T) {
	flagRoot := t.TempDir()
	t.Setenv(occfix.RootEnvVar, filepath.Join(t.TempDir(), "missing"))
	resetFlags(t)
	require.NoError(t, rootCmd.PersistentFlags().Set("root", flagRoot))

	got, err := resolveRoot(mergedRootCmd())
	require.NoError(t, err)
	assert.Equal(t, flagRoot, got)
}

// mergedRootCmd returns rootCmd with its persistent flags merged into
// Flags(), as cobra does before running a command.
func mergedRootCmd() *cobra.Command {
	rootCmd.Flags().AddFlagSet(rootCmd.PersistentFlags())
	return rootCmd
}
