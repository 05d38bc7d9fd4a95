// Package testutil holds the shared harness for application-level tests: a
// thread-safe log buffer, on-disk fixtures and a recording simulator.
package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/ramsesgo/internal/app"
	"github.com/vk/ramsesgo/internal/config"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// RecordingSimulator counts Exec calls and keeps every case it receives.
// OnExec, when set, runs inside Exec and its error is returned.
type RecordingSimulator struct {
	OnExec func(ctx context.Context, c *config.Case) error

	mu    sync.Mutex
	cases []*config.Case
}

// Exec implements simulator.Simulator.
func (s *RecordingSimulator) Exec(ctx context.Context, c *config.Case) error {
	s.mu.Lock()
	s.cases = append(s.cases, c)
	s.mu.Unlock()
	if s.OnExec != nil {
		return s.OnExec(ctx, c)
	}
	return nil
}

// Calls returns how many times Exec ran.
func (s *RecordingSimulator) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.cases)
}

// Cases returns the cases passed to Exec, in call order.
func (s *RecordingSimulator) Cases() []*config.Case {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*config.Case(nil), s.cases...)
}

// WriteFiles creates a temporary directory holding files (relative path ->
// content) and returns its path.
func WriteFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

// HarnessResult holds the outcomes of an application run.
type HarnessResult struct {
	Dir       string
	Output    string
	LogOutput string
	Err       error
}

// RunApp writes files into a fresh directory, runs the application on
// caseFile with sim standing in for the engine, and returns what happened.
// configure, when non-nil, may adjust the configuration before it is
// validated.
func RunApp(t *testing.T, files map[string]string, caseFile string, sim *RecordingSimulator, configure func(*app.Config)) *HarnessResult {
	t.Helper()

	dir := WriteFiles(t, files)
	cfg := app.Config{
		CasePath:  filepath.Join(dir, caseFile),
		LogLevel:  "debug",
		LogFormat: "text",
	}
	if configure != nil {
		configure(&cfg)
	}
	appConfig, err := app.NewConfig(cfg)
	require.NoError(t, err)

	loader, err := app.LoaderFor(appConfig.CasePath)
	require.NoError(t, err)

	out := &SafeBuffer{}
	logs := &SafeBuffer{}
	runErr := app.NewApp(out, logs, appConfig, loader, sim).Run(context.Background())

	if os.Getenv("RAMSESGO_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
	}

	return &HarnessResult{
		Dir:       dir,
		Output:    out.String(),
		LogOutput: logs.String(),
		Err:       runErr,
	}
}
