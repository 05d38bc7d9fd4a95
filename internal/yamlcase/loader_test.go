package yamlcase

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
	path := filepath.Join(t.TempDir(), "case.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_FourBusCase(t *testing.T) {
	path := writeCase(t, `
cleanup:
  - output/*
case:
  name: 4_bus_A
  data:
    - ../output/lv.dat
    - ../output/mv.dat
    - input/syst_A.dat
    - input/loads_A.dat
    - input/volt_A.dat
    - input/settings.dat
  observation: input/obs.dat
  disturbance: input/disturbance_A.dst
  trajectory: output/obs.trj
  init_trace: output/init.trace
  cont_trace: output/cont.trace
  disc_trace: output/disc.trace
  output_trace: output/output.trace
  runtime_observables:
    - BV 4A2
    - BV 4
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

func TestLoad_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "empty file", body: "", wantErr: "is empty"},
		{name: "no case section", body: "cleanup: [output/*]\n", wantErr: `has no "case" section`},
		{name: "no data", body: "case:\n  name: x\n", wantErr: "case.data is required"},
		{name: "unknown key", body: "case:\n  data: [a.dat]\n  trajectroy: x\n", wantErr: "failed to decode YAML file"},
		{name: "malformed", body: "case: [\n", wantErr: "failed to decode YAML file"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewLoader().Load(context.Background(), writeCase(t, tc.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
