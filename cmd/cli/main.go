package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/vk/ramsesgo/internal/app"
	"github.com/vk/ramsesgo/internal/cli"
	"github.com/vk/ramsesgo/internal/settings"
	"github.com/vk/ramsesgo/internal/simulator"
)

// main is the entrypoint for the ramsesgo application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// The real main function handles errors and exit codes.
	if err := run(ctx, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		stop()
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(ctx context.Context, outW, logW io.Writer, args []string) (err error) {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// Programmer errors surface as panics; report them like any other failure.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application panicked | %v", r)
		}
	}()

	loader, err := app.LoaderFor(appConfig.CasePath)
	if err != nil {
		return err
	}

	s, err := settings.Load(appConfig.EnvFile)
	if err != nil {
		return err
	}
	s.Override(appConfig.Simulator, appConfig.LibDir, appConfig.CmdFile)
	sim := simulator.NewProcess(s, appConfig.WorkDir)

	return app.NewApp(outW, logW, appConfig, loader, sim).Run(ctx)
}
