package app

import (
	"io"
	"log/slog"

	"github.com/modrig/modrig/internal/builder"
	"github.com/modrig/modrig/internal/manager"
	"github.com/modrig/modrig/internal/moduleid"
	"github.com/modrig/modrig/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle: one identifier registry, one assembler over one build tree, and
// the loader the assembled catalog is handed to.
type App struct {
	outW      io.Writer
	logger    *slog.Logger
	config    *Config
	names     *registry.Registry
	assembler *builder.Assembler
	loader    manager.Loader
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and registry.
// Results go to outW and logs to errW, so machine-readable output stays
// clean of log lines.
func NewApp(outW, errW io.Writer, cfg *Config, loader manager.Loader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, errW)
	logger.Debug("Logger configured successfully.")

	names := registry.New()
	layout := builder.Layout{BuildDir: cfg.BuildDir}

	return &App{
		outW:      outW,
		logger:    logger,
		config:    cfg,
		names:     names,
		assembler: builder.New(layout, names),
		loader:    loader,
	}
}

// Names returns the application's identifier registry. This is primarily
// for testing.
func (a *App) Names() *registry.Registry {
	return a.names
}

// ModuleName resolves a module identifier to its catalog display name. It
// only succeeds after Run has assembled the catalog.
func (a *App) ModuleName(id moduleid.ID) (string, error) {
	return a.assembler.ModuleName(id)
}
