// Package application provides the application interface for cubesync commands.
//
// Commands accept this interface rather than the concrete App type, so they
// can be tested with a Mock:
//
//	mock := &application.Mock{
//	    SyncConfigFunc: func() cubesync.Config {
//	        cfg := cubesync.DefaultConfig()
//	        cfg.CollectionPath = path
//	        return cfg
//	    },
//	}
//	cmd := stats.NewCommand(mock)
package application

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/cubesync"
)

// Application provides what commands need from the app.
type Application interface {
	// SyncConfig returns the pipeline configuration built from config
	// files, environment and defaults. Commands may override fields from
	// their own flags before use.
	SyncConfig() cubesync.Config

	// Syncer creates a Syncer for cfg.
	Syncer(cfg cubesync.Config, opts ...cubesync.Option) (*cubesync.Syncer, error)

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (table, json, yaml, markdown).
	OutputFormat() string

	// NoColor reports whether colored output is disabled.
	NoColor() bool

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
