package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/glamberson/occfix/internal/config"
	"github.com/glamberson/occfix/internal/logging"
	"github.com/glamberson/occfix/pkg/occfix"
)

// resolveRoot picks the registry root: --root, then OCCFIX_ROOT (which may
// come from a .env file in the working directory), then ".".
func resolveRoot(cmd *cobra.Command) (string, error) {
	_ = godotenv.Load()

	root, err := cmd.Flags().GetString("root")
	if err != nil {
		return "", fmt.Errorf("failed to read --root: %w", err)
	}
	if root == "" {
		root = os.Getenv(occfix.RootEnvVar)
	}
	if root == "" {
		return ".", nil
	}

	info, err := os.Stat(root)
	if err != nil {
		return "", fmt.Errorf("%w: registry root %s: %v", occfix.ErrUsage, root, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: registry root %s is not a directory", occfix.ErrUsage, root)
	}
	return root, nil
}

// loadProjectConfig loads occfix.yaml from the registry root.
// Returns nil config if occfix.yaml does not exist (not an error).
func loadProjectConfig(root string) (*config.ProjectConfig, error) {
	cfg, err := config.Load(root)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load %s: %w", config.ConfigFileName, err)
	}
	return cfg, nil
}

func newLogger(cmd *cobra.Command) occfix.Logger {
	return logging.NewWriterLogger(cmd.ErrOrStderr(), getVerboseFlag(cmd))
}
