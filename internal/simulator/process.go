package simulator

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/vk/ramsesgo/internal/config"
	"github.com/vk/ramsesgo/internal/ctxlog"
	"github.com/vk/ramsesgo/internal/settings"
)

// LibDirEnv is exported to the engine process when a library directory is
// configured.
const LibDirEnv = "RAMSES_LIBDIR"

// DefaultWaitDelay bounds how long a cancelled run waits for the engine's
// output pipes to close after the engine itself is gone.
const DefaultWaitDelay = 5 * time.Second

// Process runs the engine as a child process: `Binary Args... CmdFile`,
// started in WorkDir.
type Process struct {
	Binary  string
	Args    []string
	LibDir  string
	WorkDir string
	CmdFile string
	// Env is the base environment of the child. Nil means os.Environ().
	Env []string
	// WaitDelay overrides DefaultWaitDelay when positive.
	WaitDelay time.Duration
}

// NewProcess builds a Process from the installation settings.
func NewProcess(s *settings.Settings, workDir string) *Process {
	return &Process{
		Binary:  s.Binary,
		Args:    slices.Clone(s.Args),
		LibDir:  s.LibDir,
		WorkDir: workDir,
		CmdFile: s.CmdFile,
	}
}

// CommandFilePath is where Exec writes the command file.
func (p *Process) CommandFilePath() string {
	if filepath.IsAbs(p.CmdFile) {
		return p.CmdFile
	}
	return filepath.Join(p.WorkDir, p.CmdFile)
}

// Exec writes the command file and blocks until the engine exits. A non-zero
// exit status is returned as an error wrapping *exec.ExitError.
func (p *Process) Exec(ctx context.Context, c *config.Case) error {
	logger := ctxlog.FromContext(ctx)

	cmdPath := p.CommandFilePath()
	if err := writeCommandFileAt(cmdPath, c); err != nil {
		return fmt.Errorf("failed to write command file %s: %w", cmdPath, err)
	}
	logger.Debug("Command file written.", "path", cmdPath)

	args := append(slices.Clone(p.Args), p.CmdFile)
	cmd := exec.CommandContext(ctx, p.Binary, args...)
	cmd.Dir = p.WorkDir
	cmd.Env = p.environ()

	cmd.WaitDelay = p.WaitDelay
	if cmd.WaitDelay <= 0 {
		cmd.WaitDelay = DefaultWaitDelay
	}

	// Wait stops copying after WaitDelay even if a grandchild still holds
	// the engine's stdout. Closing the writers then ends streamLines.
	stdoutR, stdoutW := io.Pipe()
	stderrR, stderrW := io.Pipe()
	cmd.Stdout = stdoutW
	cmd.Stderr = stderrW

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		streamLines(logger, stdoutR, "stdout", slog.LevelInfo)
	}()
	go func() {
		defer wg.Done()
		streamLines(logger, stderrR, "stderr", slog.LevelWarn)
	}()
	closePipes := func() {
		stdoutW.Close()
		stderrW.Close()
		wg.Wait()
	}

	logger.Info("🚀 Starting simulator.", "binary", p.Binary, "args", args, "dir", p.WorkDir)
	if err := cmd.Start(); err != nil {
		closePipes()
		return fmt.Errorf("failed to start simulator %s: %w", p.Binary, err)
	}

	err := cmd.Wait()
	closePipes()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("simulator exited with code %d: %w", exitErr.ExitCode(), err)
		}
		return fmt.Errorf("simulator failed: %w", err)
	}
	logger.Info("🏁 Simulator finished.")
	return nil
}

func (p *Process) environ() []string {
	env := p.Env
	if env == nil {
		env = os.Environ()
	}
	if p.LibDir == "" {
		return env
	}
	return withLibDir(env, p.LibDir, runtime.GOOS)
}

// withLibDir exports libDir as LibDirEnv and prepends it to the platform's
// dynamic-loader search path.
func withLibDir(env []string, libDir, goos string) []string {
	searchVar := "LD_LIBRARY_PATH"
	switch goos {
	case "windows":
		searchVar = "PATH"
	case "darwin":
		searchVar = "DYLD_LIBRARY_PATH"
	}

	out := make([]string, 0, len(env)+2)
	search := libDir
	for _, kv := range env {
		k, v, _ := strings.Cut(kv, "=")
		switch {
		case envKeyEqual(k, searchVar, goos):
			if v != "" {
				search = libDir + string(os.PathListSeparator) + v
			}
		case envKeyEqual(k, LibDirEnv, goos):
		default:
			out = append(out, kv)
		}
	}
	return append(out, LibDirEnv+"="+libDir, searchVar+"="+search)
}

func envKeyEqual(a, b, goos string) bool {
	if goos == "windows" {
		return strings.EqualFold(a, b)
	}
	return a == b
}

func streamLines(logger *slog.Logger, r io.Reader, stream string, level slog.Level) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		logger.Log(context.Background(), level, sc.Text(), "stream", stream)
	}
	if err := sc.Err(); err != nil {
		logger.Warn("Stopped reading simulator output.", "stream", stream, "error", err)
		// Keep draining so the child never blocks on a full pipe.
		io.Copy(io.Discard, r)
	}
}
