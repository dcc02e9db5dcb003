package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/glamberson/occfix/internal/files/filesystem"
	"github.com/glamberson/occfix/internal/fixtures"
	"github.com/glamberson/occfix/internal/tui"
)

type restoreFlagValues struct {
	createDirs bool
}

var restoreFlags restoreFlagValues

var restoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Overwrite the structure files with their reference content",
	Long: `Writes the reference content of every known structure definition,
replacing whatever is on disk. No backup is made.

The run stops at the first file that cannot be written; files written
before it keep their new content. Target directories must exist unless
--create-dirs is given.

Examples:
  # Restore in the current registry checkout
  occfix restore

  # Restore into a fresh directory
  occfix restore --root /tmp/registry --create-dirs`,
	Args: cobra.NoArgs,
	RunE: runRestore,
}

func init() {
	rootCmd.AddCommand(restoreCmd)
	restoreCmd.Flags().BoolVar(&restoreFlags.createDirs, "create-dirs", false, "Create missing target directories")
}

func runRestore(cmd *cobra.Command, args []string) error {
	root, err := resolveRoot(cmd)
	if err != nil {
		return err
	}
	cfg, err := loadProjectConfig(root)
	if err != nil {
		return err
	}

	catalog, err := fixtures.Load()
	if err != nil {
		return err
	}

	createDirs := restoreFlags.createDirs || (cfg != nil && cfg.Restore.CreateDirs)
	out := cmd.OutOrStdout()
	paint := tui.NewPainter(tui.IsInteractive())

	w := fixtures.NewWriter(filesystem.NewOSFileSystem(), newLogger(cmd),
		fixtures.WithRoot(root),
		fixtures.WithCreateDirs(createDirs),
	)
	w.OnWrite = func(path string) {
		fmt.Fprintf(out, "%s %s\n", paint.Success("Fixed:"), path)
	}

	if _, err := w.WriteAll(catalog); err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "All files fixed!")
	return nil
}
