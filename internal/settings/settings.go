// Package settings resolves where the simulator is installed and how it is
// started. Values come from the process environment (RAMSES_*), optionally
// seeded from a .env file.
package settings

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is the environment variable prefix, e.g. RAMSES_BIN.
const Prefix = "ramses"

// DefaultEnvFile is loaded when present and no other file was named.
const DefaultEnvFile = ".env"

// Settings describes the local simulator installation.
type Settings struct {
	// Binary is the simulator executable, looked up in PATH when not a path.
	Binary string `envconfig:"BIN" default:"ramses"`
	// LibDir holds the engine's shared libraries.
	LibDir string `envconfig:"LIBDIR"`
	// Args are passed before the command file argument.
	Args []string `envconfig:"ARGS"`
	// CmdFile is the command file name written into the working directory.
	CmdFile string `envconfig:"CMD_FILE" default:"cmd.txt"`
}

// Load reads envFile into the environment, without overriding variables that
// are already set, and then maps RAMSES_* onto Settings. An empty envFile
// means DefaultEnvFile, which may be absent; a named file must exist.
func Load(envFile string) (*Settings, error) {
	optional := envFile == ""
	if optional {
		envFile = DefaultEnvFile
	}
	if err := godotenv.Load(envFile); err != nil {
		if !optional || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error loading env file %s: %w", envFile, err)
		}
	}

	var s Settings
	if err := envconfig.Process(Prefix, &s); err != nil {
		return nil, fmt.Errorf("error processing environment configuration: %w", err)
	}
	return &s, nil
}

// Override replaces fields with the non-empty values given on the command
// line.
func (s *Settings) Override(binary, libDir, cmdFile string) {
	if binary != "" {
		s.Binary = binary
	}
	if libDir != "" {
		s.LibDir = libDir
	}
	if cmdFile != "" {
		s.CmdFile = cmdFile
	}
}
