package hcl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/ramsesgo/internal/config"
)

func writeCase(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "case.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_FourBusCase(t *testing.T) {
	path := writeCase(t, `
cleanup {
  globs = ["output/*"]
}

case "4_bus_A" {
  data = [
    "../output/lv.dat",
    "../output/mv.dat",
    "input/syst_A.dat",
    "input/loads_A.dat",
    "input/volt_A.dat",
    "input/settings.dat",
  ]
  observation  = "input/obs.dat"
  disturbance  = "input/disturbance_A.dst"

  trajectory   = "output/obs.trj"
  init_trace   = "output/init.trace"
  cont_trace   = "output/cont.trace"
  disc_trace   = "output/disc.trace"
  output_trace = "output/output.trace"

  runtime_observables = ["BV 4A2", "BV 4"]
}
`)

	model, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)

	want := &config.Model{
		Cleanup: []string{"output/*"},
		Case: &config.CaseSpec{
			Name: "4_bus_A",
			Data: []string{
				"../output/lv.dat",
				"../output/mv.dat",
				"input/syst_A.dat",
				"input/loads_A.dat",
				"input/volt_A.dat",
				"input/settings.dat",
			},
			Observation:        "input/obs.dat",
			Disturbance:        "input/disturbance_A.dst",
			Trajectory:         "output/obs.trj",
			InitTrace:          "output/init.trace",
			ContTrace:          "output/cont.trace",
			DiscTrace:          "output/disc.trace",
			OutputTrace:        "output/output.trace",
			RuntimeObservables: []string{"BV 4A2", "BV 4"},
		},
	}
	if diff := cmp.Diff(want, model); diff != "" {
		t.Fatalf("model mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_EvalContext(t *testing.T) {
	path := writeCase(t, `
case "vars" {
  data        = concat(["${case_dir}/input/syst.dat"], [format("input/%s.dat", "loads")])
  disturbance = "${env.SCENARIO}.dst"
  runtime_observables = [upper("bv 4"), join(" ", ["BV", "4A2"])]
}
`)
	l := &Loader{Environ: func() []string { return []string{"SCENARIO=fault_A", "BROKEN"} }}

	model, err := l.Load(context.Background(), path)
	require.NoError(t, err)

	dir, err := filepath.Abs(filepath.Dir(path))
	require.NoError(t, err)
	assert.Equal(t, []string{dir + "/input/syst.dat", "input/loads.dat"}, model.Case.Data)
	assert.Equal(t, "fault_A.dst", model.Case.Disturbance)
	assert.Equal(t, []string{"BV 4", "BV 4A2"}, model.Case.RuntimeObservables)
	assert.Nil(t, model.Cleanup)
}

func TestLoad_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name:    "syntax error",
			body:    `case "x" {`,
			wantErr: "failed to parse HCL file",
		},
		{
			name:    "missing case block",
			body:    `cleanup { globs = ["output/*"] }`,
			wantErr: `has no "case" block`,
		},
		{
			name: "duplicate case block",
			body: `
case "a" { data = ["a.dat"] }
case "b" { data = ["b.dat"] }
`,
			wantErr: "failed to decode HCL file",
		},
		{
			name:    "unknown attribute",
			body: `
case "a" {
  data       = ["a.dat"]
  trajectroy = "x"
}
`,
			wantErr: "failed to decode HCL file",
		},
		{
			name:    "missing data",
			body:    `case "a" { observation = "obs.dat" }`,
			wantErr: "failed to decode HCL file",
		},
		{
			name:    "unknown variable",
			body:    `case "a" { data = [nope] }`,
			wantErr: "failed to decode HCL file",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeCase(t, tc.body)
			_, err := NewLoader().Load(context.Background(), path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "nope.hcl"))
	require.Error(t, err)
}
