package hcl

import (
	"github.com/vk/ramsesgo/internal/config"
)

// translateCase converts the HCL-specific case schema into the agnostic model.
func translateCase(b *caseBlock) *config.CaseSpec {
	return &config.CaseSpec{
		Name:               b.Name,
		Data:               b.Data,
		Observation:        b.Observation,
		Disturbance:        b.Disturbance,
		Trajectory:         b.Trajectory,
		InitTrace:          b.InitTrace,
		ContTrace:          b.ContTrace,
		DiscTrace:          b.DiscTrace,
		OutputTrace:        b.OutputTrace,
		RuntimeObservables: b.RuntimeObservables,
	}
}

func translateCleanup(b *cleanupBlock) []string {
	if b == nil {
		return nil
	}
	return b.Globs
}
