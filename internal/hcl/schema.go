package hcl

// caseFile decodes all top-level blocks a case file may contain. Anything
// else is rejected by gohcl.
type caseFile struct {
	Cleanup *cleanupBlock `hcl:"cleanup,block"`
	Case    *caseBlock    `hcl:"case,block"`
}

type cleanupBlock struct {
	Globs []string `hcl:"globs"`
}

// caseBlock is the HCL-specific schema for a `case "<name>" { ... }` block.
type caseBlock struct {
	Name string `hcl:"name,label"`

	Data        []string `hcl:"data"`
	Observation string   `hcl:"observation,optional"`
	Disturbance string   `hcl:"disturbance,optional"`

	Trajectory  string `hcl:"trajectory,optional"`
	InitTrace   string `hcl:"init_trace,optional"`
	ContTrace   string `hcl:"cont_trace,optional"`
	DiscTrace   string `hcl:"disc_trace,optional"`
	OutputTrace string `hcl:"output_trace,optional"`

	RuntimeObservables []string `hcl:"runtime_observables,optional"`
}
