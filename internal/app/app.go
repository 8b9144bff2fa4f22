// Package app wires the transform registration subsystem into a runnable
// application: logger, action catalog, registry, and manifest loading.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/transmute/internal/action"
	"github.com/vk/transmute/internal/ctxlog"
	"github.com/vk/transmute/internal/hcl"
	"github.com/vk/transmute/internal/registry"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ManifestsPath string
	LogFormat     string
	LogLevel      string
}

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	catalog  *action.Catalog
	registry *registry.Registry
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger, action catalog, and
// registry. When no modules are given, the built-in core modules are
// registered.
func NewApp(outW io.Writer, cfg *Config, modules ...action.Module) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	catalog := action.NewCatalog()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(catalog)
	}
	logger.Debug("All action modules registered.", "count", len(modules))

	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		catalog:  catalog,
		registry: registry.New(catalog),
	}
}

// Catalog returns the application's action catalog.
func (a *App) Catalog() *action.Catalog {
	return a.catalog
}

// Registry returns the application's transform registry. This is primarily
// for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Run loads the configured manifests path and reports the finalized
// registrations in registration order.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	if a.config.ManifestsPath != "" {
		loader := hcl.NewLoader()
		if err := loader.LoadTransformsRecursively(ctx, a.registry, a.catalog, a.config.ManifestsPath); err != nil {
			return fmt.Errorf("failed to load transform manifests: %w", err)
		}
	}

	a.report()
	return nil
}

// report prints the registry's FIFO view, one registration per line.
func (a *App) report() {
	transforms := a.registry.Transforms()
	fmt.Fprintf(a.outW, "%d transform(s) registered\n", len(transforms))
	for idx, t := range transforms {
		fmt.Fprintf(a.outW, "%3d  %-10s %s -> %s  key=%s\n",
			idx+1, t.Action.Name, t.From.String(), t.To.String(), shortDigest(t.Fragment.Digest))
	}
}

func shortDigest(digest string) string {
	if len(digest) > 12 {
		return digest[:12]
	}
	return digest
}
