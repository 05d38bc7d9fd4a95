package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModel_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		model   *Model
		wantErr []string
	}{
		{
			name: "valid",
			model: &Model{
				Cleanup: []string{"output/*"},
				Case:    &CaseSpec{Name: "x", Data: []string{"a.dat"}, RuntimeObservables: []string{"BV 1"}},
			},
		},
		{
			name:    "no data files",
			model:   &Model{Case: &CaseSpec{Name: "x"}},
			wantErr: []string{"case has no data files"},
		},
		{
			name: "blank entries",
			model: &Model{
				Cleanup: []string{"output/*", " "},
				Case:    &CaseSpec{Data: []string{"a.dat", ""}, RuntimeObservables: []string{"\t"}},
			},
			wantErr: []string{
				"cleanup pattern 1 is empty",
				"data file 1 has an empty path",
				"runtime observable 0 is empty",
			},
		},
		{
			name:    "missing case",
			model:   &Model{},
			wantErr: []string{"model has no case"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.model.Validate()
			if len(tc.wantErr) == 0 {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, want := range tc.wantErr {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}
