package config

import (
	"errors"
	"fmt"
	"strings"
)

// Model is the unified, format-agnostic representation of a case file.
type Model struct {
	// Cleanup holds glob patterns, relative to the working directory, whose
	// matches are removed before the simulator runs.
	Cleanup []string
	Case    *CaseSpec
}

// CaseSpec is the case exactly as written in the file. It is turned into a
// Case by the application's configure phase.
type CaseSpec struct {
	Name string

	Data        []string
	Observation string
	Disturbance string

	Trajectory  string
	InitTrace   string
	ContTrace   string
	DiscTrace   string
	OutputTrace string

	RuntimeObservables []string
}

// Validate checks the model before anything touches the file system: cleanup
// patterns must be non-blank and the case must pass the same checks as
// Builder.Build.
func (m *Model) Validate() error {
	var errs []error
	for i, g := range m.Cleanup {
		if strings.TrimSpace(g) == "" {
			errs = append(errs, fmt.Errorf("cleanup pattern %d is empty", i))
		}
	}
	if m.Case == nil {
		errs = append(errs, errors.New("model has no case"))
	} else if err := m.Case.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Validate applies the Case rules to the entries as written.
func (s *CaseSpec) Validate() error {
	return validateEntries(s.Data, s.RuntimeObservables)
}
