package cubesync

import (
	"context"
	"time"

	"github.com/agentstation/cubesync/internal/scryfall"
	"github.com/agentstation/cubesync/pkg/errors"
)

// Sleeper blocks for d or until ctx is done.
type Sleeper func(ctx context.Context, d time.Duration)

// Option is a function that configures a Syncer
type Option func(*Syncer) error

// WithFetcher replaces the lookup client, typically with a scripted fake.
func WithFetcher(f scryfall.Fetcher) Option {
	return func(s *Syncer) error {
		if f == nil {
			return &errors.ConfigError{Component: "syncer", Message: "fetcher must not be nil"}
		}
		s.fetcher = f
		return nil
	}
}

// WithSleeper replaces the courtesy delay between lookups.
func WithSleeper(fn Sleeper) Option {
	return func(s *Syncer) error {
		if fn == nil {
			return &errors.ConfigError{Component: "syncer", Message: "sleeper must not be nil"}
		}
		s.sleep = fn
		return nil
	}
}

// WithDryRun overrides Config.DryRun.
func WithDryRun(enabled bool) Option {
	return func(s *Syncer) error {
		s.config.DryRun = enabled
		return nil
	}
}

// sleepContext is the default Sleeper.
func sleepContext(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
