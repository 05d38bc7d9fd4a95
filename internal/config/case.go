package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Case is the simulator configuration record: every file the engine reads or
// writes plus the observables it tracks while running. Build one with a
// Builder.
type Case struct {
	Name string

	Data []string
	Obs  string
	Dst  string

	Trj  string
	Init string
	Cont string
	Disc string
	Out  string

	RunObs []string
}

// Inputs returns the files the engine reads: data files in order, then the
// observation file, then the disturbance file. Unset entries are skipped.
func (c *Case) Inputs() []string {
	out := slices.Clone(c.Data)
	return appendSet(out, c.Obs, c.Dst)
}

// Outputs returns the files the engine writes, in the order trajectory,
// initialization, continuous, discrete and general output trace.
func (c *Case) Outputs() []string {
	return appendSet(nil, c.Trj, c.Init, c.Cont, c.Disc, c.Out)
}

func appendSet(dst []string, paths ...string) []string {
	for _, p := range paths {
		if p != "" {
			dst = append(dst, p)
		}
	}
	return dst
}

// Builder assembles a Case. Calls are recorded in the order they are made.
// Single-valued entries keep the last value set.
type Builder struct {
	c Case
}

// NewBuilder starts an empty case with the given label.
func NewBuilder(name string) *Builder {
	return &Builder{c: Case{Name: name}}
}

// AddData appends an input data file (network, loads, voltages, settings).
func (b *Builder) AddData(path string) *Builder {
	b.c.Data = append(b.c.Data, path)
	return b
}

// AddObs sets the observation-definition file.
func (b *Builder) AddObs(path string) *Builder { b.c.Obs = path; return b }

// AddDst sets the disturbance-definition file.
func (b *Builder) AddDst(path string) *Builder { b.c.Dst = path; return b }

// AddTrj sets the trajectory output file.
func (b *Builder) AddTrj(path string) *Builder { b.c.Trj = path; return b }

// AddInit sets the initialization trace.
func (b *Builder) AddInit(path string) *Builder { b.c.Init = path; return b }

// AddCont sets the continuous trace.
func (b *Builder) AddCont(path string) *Builder { b.c.Cont = path; return b }

// AddDisc sets the discrete-event trace.
func (b *Builder) AddDisc(path string) *Builder { b.c.Disc = path; return b }

// AddOut sets the general output trace.
func (b *Builder) AddOut(path string) *Builder { b.c.Out = path; return b }

// AddRunObs registers a runtime observable, e.g. "BV 4A2".
func (b *Builder) AddRunObs(token string) *Builder {
	b.c.RunObs = append(b.c.RunObs, token)
	return b
}

// Build validates the accumulated entries and returns an independent copy.
func (b *Builder) Build() (*Case, error) {
	if err := b.c.validate(); err != nil {
		return nil, err
	}
	out := b.c
	out.Data = slices.Clone(b.c.Data)
	out.RunObs = slices.Clone(b.c.RunObs)
	return &out, nil
}

func (c *Case) validate() error {
	return validateEntries(c.Data, c.RunObs)
}

func validateEntries(data, runObs []string) error {
	if len(data) == 0 {
		return errors.New("case has no data files")
	}
	var errs []error
	for i, p := range data {
		if strings.TrimSpace(p) == "" {
			errs = append(errs, fmt.Errorf("data file %d has an empty path", i))
		}
	}
	for i, tok := range runObs {
		if strings.TrimSpace(tok) == "" {
			errs = append(errs, fmt.Errorf("runtime observable %d is empty", i))
		}
	}
	return errors.Join(errs...)
}
