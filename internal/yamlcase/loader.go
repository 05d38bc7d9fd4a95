// Package yamlcase provides the YAML implementation of config.Loader.
package yamlcase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vk/ramsesgo/internal/config"
	"github.com/vk/ramsesgo/internal/ctxlog"
	"gopkg.in/yaml.v3"
)

// caseFile is the on-disk shape (YAML).
type caseFile struct {
	Cleanup []string  `yaml:"cleanup"`
	Case    *caseSpec `yaml:"case"`
}

type caseSpec struct {
	Name        string   `yaml:"name"`
	Data        []string `yaml:"data"`
	Observation string   `yaml:"observation"`
	Disturbance string   `yaml:"disturbance"`

	Trajectory  string `yaml:"trajectory"`
	InitTrace   string `yaml:"init_trace"`
	ContTrace   string `yaml:"cont_trace"`
	DiscTrace   string `yaml:"disc_trace"`
	OutputTrace string `yaml:"output_trace"`

	RuntimeObservables []string `yaml:"runtime_observables"`
}

// Loader reads YAML case files. Unknown keys are rejected.
type Loader struct{}

func NewLoader() *Loader { return &Loader{} }

func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path", path)

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f caseFile
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("case file %s is empty", path)
		}
		return nil, fmt.Errorf("failed to decode YAML file %s: %w", path, err)
	}
	if f.Case == nil {
		return nil, fmt.Errorf("case file %s has no \"case\" section", path)
	}
	if len(f.Case.Data) == 0 {
		return nil, fmt.Errorf("case file %s: case.data is required", path)
	}

	model := &config.Model{
		Cleanup: f.Cleanup,
		Case: &config.CaseSpec{
			Name:               f.Case.Name,
			Data:               f.Case.Data,
			Observation:        f.Case.Observation,
			Disturbance:        f.Case.Disturbance,
			Trajectory:         f.Case.Trajectory,
			InitTrace:          f.Case.InitTrace,
			ContTrace:          f.Case.ContTrace,
			DiscTrace:          f.Case.DiscTrace,
			OutputTrace:        f.Case.OutputTrace,
			RuntimeObservables: f.Case.RuntimeObservables,
		},
	}
	logger.Debug("YAML loading complete.", "case", model.Case.Name, "data_files", len(model.Case.Data), "cleanup_globs", len(model.Cleanup))
	return model, nil
}
