package app

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/confsift/confsift/internal/project"
)

// App encapsulates one scan's dependencies, configuration, and lifecycle.
// Records go to outW; logs go to errW so the record stream stays clean.
type App struct {
	outW       io.Writer
	logger     *slog.Logger
	config     *Config
	registry   *project.Registry
	httpServer *http.Server
}

// New constructs an App with its own isolated logger and a registry
// populated with every built-in projector.
func New(outW, errW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, errW)
	logger.Debug("Logger configured.")

	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		registry: project.Default(),
	}
}

// Registry exposes the projector registry, primarily for tests.
func (a *App) Registry() *project.Registry {
	return a.registry
}
