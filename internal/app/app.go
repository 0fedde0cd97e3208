package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/specialistvlad/gridcarbon/internal/attribution"
	"github.com/specialistvlad/gridcarbon/internal/config"
	"github.com/specialistvlad/gridcarbon/internal/ctxlog"
	"github.com/specialistvlad/gridcarbon/internal/eia"
	"github.com/specialistvlad/gridcarbon/internal/plugin"
)

// defaultWorkers applies when neither flags nor settings choose a count.
const defaultWorkers = 4

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	settings *config.Settings
	engine   *attribution.Engine
	source   plugin.DataSource
	workers  int

	httpServer *http.Server
}

// Option customizes App construction.
type Option func(*options)

type options struct {
	source plugin.DataSource
	lookup func(string) (string, bool)
}

// WithSource replaces the EIA client, mainly for tests.
func WithSource(s plugin.DataSource) Option {
	return func(o *options) { o.source = s }
}

// WithEnvLookup replaces os.LookupEnv for API key resolution.
func WithEnvLookup(fn func(string) (string, bool)) Option {
	return func(o *options) { o.lookup = fn }
}

// NewApp loads settings and builds the engine and data source. Reports go to
// outW and logs to logW.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader, opts ...Option) (*App, error) {
	o := options{lookup: os.LookupEnv}
	for _, opt := range opts {
		opt(&o)
	}

	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	settings := &config.Settings{}
	if cfg.SettingsPath != "" {
		s, err := loader.Load(ctx, cfg.SettingsPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load settings: %w", err)
		}
		settings = s
		logger.Debug("Settings loaded.", "path", cfg.SettingsPath)
	}

	registry, err := settings.Registry()
	if err != nil {
		return nil, err
	}
	factors, err := settings.Factors()
	if err != nil {
		return nil, err
	}

	source := o.source
	if source == nil {
		key, err := eia.APIKeyFromEnv(settings.EIA.APIKeyEnv, o.lookup)
		if err != nil {
			return nil, err
		}
		client, err := eia.New(eia.Config{
			BaseURL:  settings.EIA.BaseURL,
			APIKey:   key,
			Timeout:  settings.EIA.Timeout,
			PageSize: settings.EIA.PageSize,
		})
		if err != nil {
			return nil, err
		}
		source = client
	}

	workers := cfg.Workers
	if workers == 0 {
		workers = settings.Workers
	}
	if workers == 0 {
		workers = defaultWorkers
	}

	logger.Debug("App assembled.", "authorities", registry.Len(), "fuels", factors.Len(), "workers", workers)
	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		settings: settings,
		engine:   attribution.New(attribution.WithRegistry(registry), attribution.WithFactors(factors)),
		source:   source,
		workers:  workers,
	}, nil
}

// Close releases the data source when it holds resources.
func (a *App) Close() error {
	if c, ok := a.source.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
