package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dataO1/ai-coding-assistant-sub001/internal/compose"
	"github.com/dataO1/ai-coding-assistant-sub001/internal/ctxlog"
	"github.com/dataO1/ai-coding-assistant-sub001/internal/hclopts"
	"github.com/dataO1/ai-coding-assistant-sub001/internal/resource"
	"github.com/zclconf/go-cty/cty"
)

// App encapsulates the application's dependencies and configuration. The
// graph is written to outW (or the configured output path); logs go to a
// separate writer so the emitted YAML stays machine-readable.
type App struct {
	outW   io.Writer
	logger *slog.Logger
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger.
func NewApp(outW, logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
	}
}

// Run loads the raw options, composes the resource graph, and encodes it.
func (a *App) Run(ctx context.Context, cfg *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	raw := map[string]cty.Value{}
	if cfg.OptionsPath != "" {
		loaded, err := hclopts.LoadFile(ctx, cfg.OptionsPath)
		if err != nil {
			return err
		}
		raw = loaded
	} else {
		a.logger.Debug("No options file given; composing with declared defaults.")
	}

	graph, warnings, err := compose.Compose(ctx, raw)
	if err != nil {
		return fmt.Errorf("composition failed: %w", err)
	}
	for _, w := range warnings {
		a.logger.Warn("Composition completed with a warning.", "kind", string(w.Kind), "option", w.Option, "detail", w.Detail)
	}

	out := a.outW
	if cfg.OutputPath != "" {
		f, err := os.Create(cfg.OutputPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if err := resource.EncodeYAML(out, graph); err != nil {
		return err
	}

	a.logger.Info("Resource graph emitted.",
		"services", len(graph.Services), "mounts", len(graph.Mounts), "warnings", len(warnings))
	return nil
}
