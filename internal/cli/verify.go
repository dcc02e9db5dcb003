package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/glamberson/occfix/internal/files/filesystem"
	"github.com/glamberson/occfix/internal/fixtures"
	"github.com/glamberson/occfix/internal/tui"
	"github.com/glamberson/occfix/pkg/occfix"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Report structure files that differ from their reference content",
	Long: `Compares every known structure file with its reference content by
SHA-256 and prints one line per file. Nothing is written.

Exits with code 12 when any file is missing or differs; run
'occfix restore' to bring them back.`,
	Args: cobra.NoArgs,
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	root, err := resolveRoot(cmd)
	if err != nil {
		return err
	}
	catalog, err := fixtures.Load()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	paint := tui.NewPainter(tui.IsInteractive())
	logger := newLogger(cmd)

	drifts := fixtures.Verify(filesystem.NewOSFileSystem(), root, catalog)
	for _, d := range drifts {
		switch d.Kind {
		case fixtures.InSync:
			fmt.Fprintf(out, "%s %s\n", paint.Success("OK:"), d.Path)
		case fixtures.Missing:
			fmt.Fprintf(out, "%s %s\n", paint.Error("Missing:"), d.Path)
		case fixtures.Whitespace:
			fmt.Fprintf(out, "%s %s\n", paint.Warning("Whitespace only:"), d.Path)
		case fixtures.Modified:
			fmt.Fprintf(out, "%s %s\n", paint.Error("Modified:"), d.Path)
		case fixtures.Unreadable:
			fmt.Fprintf(out, "%s %s: %v\n", paint.Error("Unreadable:"), d.Path, d.Err)
		}
	}

	if fixtures.Drifted(drifts) {
		return occfix.ErrFixtureDrift
	}
	logger.Verbose("All %d files match", len(drifts))
	return nil
}
