package app

import (
	"io"
	"log/slog"

	"github.com/vk/ramsesgo/internal/config"
	"github.com/vk/ramsesgo/internal/simulator"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	loader config.Loader
	sim    simulator.Simulator
}

// NewApp is the constructor for the main application. Printed results go to
// outW and log records to logW, through the App's own isolated logger.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader, sim simulator.Simulator) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		loader: loader,
		sim:    sim,
	}
}
