package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/glamberson/occfix/pkg/occfix"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

type NormalizeConfig struct {
	Files  []string `yaml:"files,omitempty"`
	Scan   []string `yaml:"scan,omitempty"`
	Strict bool     `yaml:"strict,omitempty"`
}

type RestoreConfig struct {
	CreateDirs bool `yaml:"create_dirs,omitempty"`
}

type ProjectConfig struct {
	Normalize NormalizeConfig `yaml:"normalize"`
	Restore   RestoreConfig   `yaml:"restore"`
}

const ConfigFileName = "occfix.yaml"

// Load reads occfix.yaml from the registry root. Unknown keys are rejected
// so that a misspelled option does not silently fall back to a default.
func Load(root string) (*ProjectConfig, error) {
	configPath := filepath.Join(root, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s: %v", occfix.ErrInvalidConfig, ConfigFileName, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that every listed path is usable.
func (c *ProjectConfig) Validate() error {
	for i, p := range c.Normalize.Files {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("%w: normalize.files[%d] is empty", occfix.ErrInvalidConfig, i)
		}
	}
	for i, p := range c.Normalize.Scan {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("%w: normalize.scan[%d] is empty", occfix.ErrInvalidConfig, i)
		}
	}
	return nil
}

// NormalizeFiles returns the configured file list, or the default
// structure files when none is configured. A nil config yields the defaults.
func (c *ProjectConfig) NormalizeFiles() []string {
	if c == nil || len(c.Normalize.Files) == 0 {
		files := make([]string, len(occfix.DefaultStructureFiles))
		copy(files, occfix.DefaultStructureFiles)
		return files
	}
	return c.Normalize.Files
}
