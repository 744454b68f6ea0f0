package logging_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/cubesync/pkg/logging"
)

func TestDefaultLogger(t *testing.T) {
	original := *logging.Default()
	originalLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		logging.SetDefault(original)
		zerolog.SetGlobalLevel(originalLevel)
	})

	t.Run("SetDefault routes package helpers", func(t *testing.T) {
		var buf bytes.Buffer
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		logging.SetDefault(zerolog.New(&buf).Level(zerolog.DebugLevel))

		logging.Debug().Msg("debug")
		logging.Info().Msg("info")
		logging.Warn().Msg("warn")
		logging.Error().Msg("error")
		logging.Err(assert.AnError).Msg("with error")

		output := buf.String()
		assert.Contains(t, output, `"message":"debug"`)
		assert.Contains(t, output, `"message":"info"`)
		assert.Contains(t, output, `"message":"warn"`)
		assert.Contains(t, output, `"message":"error"`)
		assert.Contains(t, output, assert.AnError.Error())
	})

	t.Run("With adds fields", func(t *testing.T) {
		var buf bytes.Buffer
		logging.SetDefault(zerolog.New(&buf).Level(zerolog.InfoLevel))

		logger := logging.With().Str("component", "fetcher").Logger()
		logger.Info().Msg("with context")
		assert.Contains(t, buf.String(), `"component":"fetcher"`)
	})

	t.Run("New creates JSON logger", func(t *testing.T) {
		var buf bytes.Buffer
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		logger := logging.New(&buf)
		logger.Info().Msg("json test")
		assert.Contains(t, buf.String(), `"level":"info"`)
	})
}

func TestContextLogger(t *testing.T) {
	tl := logging.NewTestLogger(t)

	ctx := logging.WithLogger(context.Background(), tl.Logger)
	ctx = logging.WithOperation(ctx, "sync")
	ctx = logging.WithCard(ctx, "Lightning Bolt")
	ctx = logging.WithPath(ctx, "cube.json")

	logging.Ctx(ctx).Info().Msg("fetched")

	assert.True(t, tl.Contains(`"operation":"sync"`))
	assert.True(t, tl.Contains(`"card":"Lightning Bolt"`))
	assert.True(t, tl.Contains(`"path":"cube.json"`))
	assert.Len(t, tl.Lines(), 1)
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	assert.Same(t, logging.Default(), logging.FromContext(context.Background()))
	//nolint:staticcheck // nil context is handled explicitly
	assert.Same(t, logging.Default(), logging.FromContext(nil))
}

func TestConfiguration(t *testing.T) {
	original := *logging.Default()
	originalLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		logging.SetDefault(original)
		zerolog.SetGlobalLevel(originalLevel)
	})

	t.Run("DefaultConfig returns sensible defaults", func(t *testing.T) {
		cfg := logging.DefaultConfig()
		assert.Equal(t, "info", cfg.Level)
		assert.Equal(t, "auto", cfg.Format)
		assert.Equal(t, "stderr", cfg.Output)
		assert.False(t, cfg.AddCaller)
	})

	t.Run("file output respects level", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "run.log")
		logging.Configure(&logging.Config{
			Level:  "warn",
			Format: "json",
			Output: path,
		})

		logging.Info().Msg("info message")
		logging.Warn().Msg("warn message")

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.NotContains(t, string(content), "info message")
		assert.Contains(t, string(content), "warn message")
	})

	t.Run("console format uses short level names", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "console.log")
		logger := logging.NewLoggerFromConfig(&logging.Config{
			Level:  "info",
			Format: "console",
			Output: path,
		})
		logger.Info().Msg("console test")

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), "console test")
		assert.Contains(t, string(content), "INF")
	})
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		"":        zerolog.InfoLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"off":     zerolog.Disabled,
		"bogus":   zerolog.InfoLevel,
	}
	for input, want := range tests {
		assert.Equal(t, want, logging.ParseLevel(input), input)
	}
}

func TestCaptureLoggingForTest(t *testing.T) {
	tl := logging.CaptureLoggingForTest(t)
	logging.Info().Str("card", "Ponder").Msg("captured")
	tl.AssertContains(t, "captured")
	tl.AssertContains(t, `"card":"Ponder"`)
}
