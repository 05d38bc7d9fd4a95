package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests mutate the process environment and must not run in parallel.

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"RAMSES_BIN", "RAMSES_LIBDIR", "RAMSES_ARGS", "RAMSES_CMD_FILE"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	s, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "ramses", s.Binary)
	assert.Equal(t, "cmd.txt", s.CmdFile)
	assert.Empty(t, s.LibDir)
	assert.Empty(t, s.Args)
}

func TestLoad_Environment(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv("RAMSES_BIN", "/opt/uramses/dynsim")
	t.Setenv("RAMSES_LIBDIR", "/opt/uramses/lib")
	t.Setenv("RAMSES_ARGS", "-q,-nogui")

	s, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/opt/uramses/dynsim", s.Binary)
	assert.Equal(t, "/opt/uramses/lib", s.LibDir)
	assert.Equal(t, []string{"-q", "-nogui"}, s.Args)
}

func TestLoad_EnvFileDoesNotOverrideEnvironment(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	envFile := filepath.Join(dir, "ramses.env")
	require.NoError(t, os.WriteFile(envFile, []byte("RAMSES_BIN=from-file\nRAMSES_LIBDIR=/lib/from-file\n"), 0o600))
	t.Setenv("RAMSES_BIN", "from-env")

	s, err := Load(envFile)
	require.NoError(t, err)
	assert.Equal(t, "from-env", s.Binary)
	assert.Equal(t, "/lib/from-file", s.LibDir)
}

func TestLoad_NamedEnvFileMustExist(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error loading env file")
}

func TestOverride(t *testing.T) {
	s := &Settings{Binary: "ramses", CmdFile: "cmd.txt"}
	s.Override("", "/lib", "")
	assert.Equal(t, &Settings{Binary: "ramses", LibDir: "/lib", CmdFile: "cmd.txt"}, s)

	s.Override("dynsim", "", "run.cmd")
	assert.Equal(t, &Settings{Binary: "dynsim", LibDir: "/lib", CmdFile: "run.cmd"}, s)
}
