package app

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/vk/ramsesgo/internal/render"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	CasePath string // .hcl, .yaml or .yml
	// WorkDir is where cleanup globs and case paths are resolved and where
	// the simulator runs. Defaults to the case file's directory.
	WorkDir string

	// Simulator installation overrides; empty means "use the environment".
	Simulator string
	LibDir    string
	CmdFile   string
	EnvFile   string

	KeepOutputs bool
	DryRun      bool
	PrintFormat string

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.CasePath == "" {
		return nil, errors.New("CasePath is a required configuration field and cannot be empty")
	}
	if _, err := LoaderFor(cfg.CasePath); err != nil {
		return nil, err
	}
	if cfg.WorkDir == "" {
		cfg.WorkDir = filepath.Dir(cfg.CasePath)
	}
	if cfg.PrintFormat == "" {
		cfg.PrintFormat = render.FormatJSON
	}
	if cfg.PrintFormat != render.FormatJSON && cfg.PrintFormat != render.FormatYAML {
		return nil, fmt.Errorf("invalid print format %q: must be 'json' or 'yaml'", cfg.PrintFormat)
	}
	return &cfg, nil
}
