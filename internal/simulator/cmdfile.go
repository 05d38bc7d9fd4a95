package simulator

import (
	"bufio"
	"io"
	"os"
	"path/filepath"

	"github.com/vk/ramsesgo/internal/config"
)

// WriteCommandFile writes c in the engine's positional command-file layout:
// the data files, a blank line, then one line each for the disturbance,
// initialization trace, continuous trace, discrete trace, observation file,
// trajectory and general output trace, then the runtime observables and a
// closing blank line. Unset entries are written as empty lines so every
// position stays fixed.
func WriteCommandFile(w io.Writer, c *config.Case) error {
	bw := bufio.NewWriter(w)
	line := func(s string) {
		bw.WriteString(s)
		bw.WriteByte('\n')
	}

	for _, d := range c.Data {
		line(d)
	}
	line("")
	for _, p := range []string{c.Dst, c.Init, c.Cont, c.Disc, c.Obs, c.Trj, c.Out} {
		line(p)
	}
	for _, tok := range c.RunObs {
		line(tok)
	}
	line("")

	return bw.Flush()
}

// writeCommandFileAt creates path (and its directory) and writes c into it.
func writeCommandFileAt(path string, c *config.Case) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteCommandFile(f, c); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
