package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/vk/ramsesgo/internal/config"
	"github.com/vk/ramsesgo/internal/ctxlog"
	"github.com/vk/ramsesgo/internal/fsutil"
	"github.com/vk/ramsesgo/internal/render"
	"github.com/vk/ramsesgo/internal/simulator"
)

// Run loads the case file and then, strictly in order, removes stale
// outputs, configures the case, registers its runtime observables and
// executes the simulator once. The first error ends the run.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger.With("run_id", uuid.NewString()))
	logger := ctxlog.FromContext(ctx)
	logger.Debug("App.Run method started.", "case_path", a.config.CasePath, "workdir", a.config.WorkDir)

	model, err := a.loader.Load(ctx, a.config.CasePath)
	if err != nil {
		return fmt.Errorf("failed to load case: %w", err)
	}
	if err := model.Validate(); err != nil {
		name := ""
		if model.Case != nil {
			name = model.Case.Name
		}
		return fmt.Errorf("invalid case %q: %w", name, err)
	}
	ctx = ctxlog.With(ctx, "case", model.Case.Name)
	logger = ctxlog.FromContext(ctx)
	logger.Info("Case loaded.", "path", a.config.CasePath)

	if a.config.DryRun {
		logger.Info("Dry run: outputs are kept and the simulator is not started.")
	} else if a.config.KeepOutputs {
		logger.Info("Cleanup skipped.", "reason", "keep-outputs")
	} else if err := a.cleanup(ctx, model.Cleanup); err != nil {
		return fmt.Errorf("cleanup failed: %w", err)
	}

	b := configure(model.Case)
	c, err := registerObservables(b, model.Case.RuntimeObservables)
	if err != nil {
		return fmt.Errorf("invalid case %q: %w", model.Case.Name, err)
	}
	logger.Debug("Case configured.", "inputs", len(c.Inputs()), "outputs", len(c.Outputs()), "runtime_observables", c.RunObs)

	if a.config.DryRun {
		return a.printCase(c)
	}

	if err := a.sim.Exec(ctx, c); err != nil {
		return fmt.Errorf("execution failed: %w", err)
	}
	logger.Info("Run finished.", "outputs", c.Outputs())
	return nil
}

func (a *App) cleanup(ctx context.Context, globs []string) error {
	logger := ctxlog.FromContext(ctx)
	if len(globs) == 0 {
		logger.Debug("No cleanup globs configured.")
		return nil
	}
	for _, g := range globs {
		removed, err := fsutil.RemoveGlob(a.config.WorkDir, g)
		if err != nil {
			return err
		}
		logger.Info("Removed stale outputs.", "glob", g, "count", len(removed))
	}
	return nil
}

// configure adds the case files in the engine's fixed order.
func configure(spec *config.CaseSpec) *config.Builder {
	b := config.NewBuilder(spec.Name)
	for _, d := range spec.Data {
		b.AddData(d)
	}
	b.AddObs(spec.Observation).
		AddDst(spec.Disturbance).
		AddTrj(spec.Trajectory).
		AddInit(spec.InitTrace).
		AddCont(spec.ContTrace).
		AddDisc(spec.DiscTrace).
		AddOut(spec.OutputTrace)
	return b
}

func registerObservables(b *config.Builder, tokens []string) (*config.Case, error) {
	for _, tok := range tokens {
		b.AddRunObs(tok)
	}
	return b.Build()
}

func (a *App) printCase(c *config.Case) error {
	if err := render.Case(a.outW, c, a.config.PrintFormat); err != nil {
		return err
	}
	fmt.Fprintln(a.outW, "--- command file ---")
	return simulator.WriteCommandFile(a.outW, c)
}
