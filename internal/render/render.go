// Package render prints a built case for inspection (dry runs).
package render

import (
	"fmt"
	"io"

	"github.com/bytedance/sonic"
	"github.com/vk/ramsesgo/internal/config"
	"gopkg.in/yaml.v3"
)

// Format names accepted by Case.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// caseView fixes the field names and order of the printed record.
type caseView struct {
	Name               string   `json:"name,omitempty" yaml:"name,omitempty"`
	Data               []string `json:"data" yaml:"data"`
	Observation        string   `json:"observation,omitempty" yaml:"observation,omitempty"`
	Disturbance        string   `json:"disturbance,omitempty" yaml:"disturbance,omitempty"`
	Trajectory         string   `json:"trajectory,omitempty" yaml:"trajectory,omitempty"`
	InitTrace          string   `json:"init_trace,omitempty" yaml:"init_trace,omitempty"`
	ContTrace          string   `json:"cont_trace,omitempty" yaml:"cont_trace,omitempty"`
	DiscTrace          string   `json:"disc_trace,omitempty" yaml:"disc_trace,omitempty"`
	OutputTrace        string   `json:"output_trace,omitempty" yaml:"output_trace,omitempty"`
	RuntimeObservables []string `json:"runtime_observables" yaml:"runtime_observables"`
}

func newCaseView(c *config.Case) caseView {
	v := caseView{
		Name:               c.Name,
		Data:               c.Data,
		Observation:        c.Obs,
		Disturbance:        c.Dst,
		Trajectory:         c.Trj,
		InitTrace:          c.Init,
		ContTrace:          c.Cont,
		DiscTrace:          c.Disc,
		OutputTrace:        c.Out,
		RuntimeObservables: c.RunObs,
	}
	if v.RuntimeObservables == nil {
		v.RuntimeObservables = []string{}
	}
	return v
}

// Case writes c to w in the given format.
func Case(w io.Writer, c *config.Case, format string) error {
	v := newCaseView(c)
	switch format {
	case FormatJSON:
		raw, err := sonic.ConfigStd.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", raw)
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported print format %q", format)
	}
}
