package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/glamberson/occfix/pkg/occfix"
)

var rootCmd = &cobra.Command{
	Use:   "occfix",
	Short: "Maintain the gedcom-occurrences extension registry files",
	Long: `occfix keeps the YAML structure definitions of the gedcom-occurrences
GEDCOM extension registry in their canonical form.

  restore    overwrite the known structure files with their reference content
  normalize  repair indentation and re-serialize structure files
  verify     report files that differ from the reference content

Commands run against the registry root: the directory that contains
registry-yaml/. It defaults to the current directory, OCCFIX_ROOT, or --root.

Exit Codes:
  0  - Success (normalize also exits 0 when single files fail, unless --strict)
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid occfix.yaml or environment
  11 - A fixture could not be written
  12 - Files differ from the reference content
  13 - Normalization failed (--strict or --check)`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout)
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
	rootCmd.PersistentFlags().String("root", "", "Registry root directory (default: $OCCFIX_ROOT or .)")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", occfix.ErrUsage, err)
	})
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
