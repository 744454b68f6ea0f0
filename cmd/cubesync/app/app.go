// Package app provides the application context and dependency management
// for the cubesync CLI. It centralizes configuration, logging and the
// construction of syncers so commands only depend on an interface.
package app

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/agentstation/cubesync"
	"github.com/agentstation/cubesync/internal/cmd/application"
	"github.com/agentstation/cubesync/pkg/errors"
	"github.com/agentstation/cubesync/pkg/logging"
)

// App represents the cubesync application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// syncerOpts are appended to every Syncer the app creates.
	syncerOpts []cubesync.Option
}

// Ensure App implements application.Application at compile time.
var _ application.Application = (*App)(nil)

// New creates a new App instance with the given version information.
// Configuration is loaded from the environment and the default config file
// unless WithConfig supplies one.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	if app.config == nil {
		config, err := LoadConfig("")
		if err != nil {
			return nil, errors.WrapResource("load", "config", "", err)
		}
		app.config = config
	}

	if app.logger == nil {
		logger := NewLogger(app.config)
		app.logger = &logger
	}
	logging.SetDefault(*app.logger)

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// NoColor reports whether colored output is disabled.
func (a *App) NoColor() bool {
	return a.config.NoColor
}

// SyncConfig returns the pipeline configuration.
func (a *App) SyncConfig() cubesync.Config {
	return a.config.SyncConfig()
}

// Syncer creates a Syncer for cfg with the app's syncer options applied first.
func (a *App) Syncer(cfg cubesync.Config, opts ...cubesync.Option) (*cubesync.Syncer, error) {
	all := make([]cubesync.Option, 0, len(a.syncerOpts)+len(opts))
	all = append(all, a.syncerOpts...)
	all = append(all, opts...)

	s, err := cubesync.New(cfg, all...)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Shutdown performs graceful shutdown of the application.
// Sync writes are synchronous, so there is nothing to flush beyond a log line.
func (a *App) Shutdown(_ context.Context) error {
	a.logger.Debug().Msg("Shutting down")
	return nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithSyncerOptions adds options to every Syncer the app creates
// (useful for testing with a scripted fetcher).
func WithSyncerOptions(opts ...cubesync.Option) Option {
	return func(a *App) error {
		a.syncerOpts = append(a.syncerOpts, opts...)
		return nil
	}
}
