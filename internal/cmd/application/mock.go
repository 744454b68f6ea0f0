package application

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/cubesync"
)

// Mock provides a mock implementation of Application for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default/zero value.
type Mock struct {
	SyncConfigFunc   func() cubesync.Config
	SyncerFunc       func(cfg cubesync.Config, opts ...cubesync.Option) (*cubesync.Syncer, error)
	LoggerFunc       func() *zerolog.Logger
	OutputFormatFunc func() string
	NoColorFunc      func() bool
	VersionFunc      func() string
	CommitFunc       func() string
	DateFunc         func() string
	BuiltByFunc      func() string
}

// SyncConfig returns the mock config or cubesync.DefaultConfig.
func (m *Mock) SyncConfig() cubesync.Config {
	if m.SyncConfigFunc != nil {
		return m.SyncConfigFunc()
	}
	return cubesync.DefaultConfig()
}

// Syncer returns a syncer using the mock function or cubesync.New.
func (m *Mock) Syncer(cfg cubesync.Config, opts ...cubesync.Option) (*cubesync.Syncer, error) {
	if m.SyncerFunc != nil {
		return m.SyncerFunc(cfg, opts...)
	}
	return cubesync.New(cfg, opts...)
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns output format using the mock function or "table".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "table"
}

// NoColor returns the mock value or true, keeping test output plain.
func (m *Mock) NoColor() bool {
	if m.NoColorFunc != nil {
		return m.NoColorFunc()
	}
	return true
}

// Version returns version using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns commit using the mock function or "unknown".
func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date returns date using the mock function or "unknown".
func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// BuiltBy returns builtBy using the mock function or "test".
func (m *Mock) BuiltBy() string {
	if m.BuiltByFunc != nil {
		return m.BuiltByFunc()
	}
	return "test"
}

// Ensure Mock implements Application at compile time.
var _ Application = (*Mock)(nil)
