package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/glamberson/occfix/internal/files/filesystem"
	"github.com/glamberson/occfix/internal/normalize"
	"github.com/glamberson/occfix/internal/tui"
	"github.com/glamberson/occfix/pkg/occfix"
)

type normalizeFlagValues struct {
	check  bool
	strict bool
	scan   []string
}

var normalizeFlags normalizeFlagValues

var normalizeCmd = &cobra.Command{
	Use:   "normalize [path...]",
	Short: "Repair indentation and re-serialize structure files",
	Long: `Rewrites structure definition files in canonical form:

  1. indents the first item under "extension tags:" and "specification:"
  2. drops blank lines inside the specification block
  3. parses the document and joins the specification description into one line
  4. writes it back as %YAML 1.2 in block style, keeping the key order

Without paths the five occurrence structure files are processed, or the
list in occfix.yaml (normalize.files). A missing or malformed file is
reported and skipped; the exit status stays 0 unless --strict is given.

Examples:
  # Normalize the default structure files
  occfix normalize

  # Normalize everything under a directory, failing on any error
  occfix normalize --scan registry-yaml/structure --strict

  # Report files that are not in canonical form without writing
  occfix normalize --check`,
	Args: cobra.ArbitraryArgs,
	RunE: runNormalize,
}

func init() {
	rootCmd.AddCommand(normalizeCmd)
	normalizeCmd.Flags().BoolVar(&normalizeFlags.check, "check", false, "Report files that would change without writing them")
	normalizeCmd.Flags().BoolVar(&normalizeFlags.strict, "strict", false, "Exit non-zero if any file is missing or fails")
	normalizeCmd.Flags().StringSliceVar(&normalizeFlags.scan, "scan", nil, "Also normalize every *.yaml file under this directory (repeatable)")
}

func runNormalize(cmd *cobra.Command, args []string) error {
	root, err := resolveRoot(cmd)
	if err != nil {
		return err
	}
	cfg, err := loadProjectConfig(root)
	if err != nil {
		return err
	}

	scanDirs := normalizeFlags.scan
	if len(scanDirs) == 0 && cfg != nil {
		scanDirs = cfg.Normalize.Scan
	}
	strict := normalizeFlags.strict || (cfg != nil && cfg.Normalize.Strict)

	n := normalize.NewNormalizer(filesystem.NewOSFileSystem(), newLogger(cmd),
		normalize.WithRoot(root),
		normalize.WithCheckOnly(normalizeFlags.check),
	)

	paths := args
	if len(paths) == 0 && (len(scanDirs) == 0 || (cfg != nil && len(cfg.Normalize.Files) > 0)) {
		paths = cfg.NormalizeFiles()
	}
	for _, dir := range scanDirs {
		found, err := n.Discover(dir)
		if err != nil {
			return fmt.Errorf("%w: %v", occfix.ErrUsage, err)
		}
		paths = append(paths, found...)
	}
	paths = dedupe(paths)

	out := cmd.OutOrStdout()
	paint := tui.NewPainter(tui.IsInteractive())
	n.OnResult = func(res normalize.Result) {
		printNormalizeResult(out, paint, res)
	}

	report := n.Run(paths)

	if normalizeFlags.check {
		if pending := report.Count(normalize.StatusWouldFix); pending > 0 {
			return fmt.Errorf("%w: %d file(s) not in canonical form", occfix.ErrNormalizeFailed, pending)
		}
	}
	if strict {
		if err := report.Err(); err != nil {
			return fmt.Errorf("%w: %w", occfix.ErrNormalizeFailed, err)
		}
	}
	return nil
}

func printNormalizeResult(out io.Writer, paint tui.Painter, res normalize.Result) {
	switch res.Status {
	case normalize.StatusFixed:
		fmt.Fprintf(out, "%s %s\n", paint.Success("Fixed:"), res.Path)
	case normalize.StatusNotFound:
		fmt.Fprintf(out, "%s %s\n", paint.Warning("File not found:"), res.Path)
	case normalize.StatusError:
		fmt.Fprintf(out, "%s %s: %v\n", paint.Error("Error processing"), res.Path, res.Err)
	case normalize.StatusUnchanged:
		fmt.Fprintf(out, "%s %s\n", paint.Muted("Unchanged:"), res.Path)
	case normalize.StatusWouldFix:
		fmt.Fprintf(out, "%s %s\n", paint.Warning("Would fix:"), res.Path)
	}
}

// dedupe drops repeated paths, keeping the first occurrence.
func dedupe(paths []string) []string {
	seen := make(map[string]bool, len(paths))
	result := paths[:0:0]
	for _, p := range paths {
		if seen[p] {
			continue
		}
		seen[p] = true
		result = append(result, p)
	}
	return result
}
