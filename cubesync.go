// Package cubesync reconciles a local card collection against a cube list,
// fetching missing or incomplete cards from the lookup service and
// checkpointing progress to disk as it goes.
package cubesync

import (
	"fmt"

	"github.com/agentstation/cubesync/internal/scryfall"
)

// Syncer runs the reconcile pipeline for one Config.
type Syncer struct {
	config  Config
	fetcher scryfall.Fetcher
	sleep   Sleeper

	*hooks
}

// New creates a Syncer for cfg. The config is validated before options apply.
func New(cfg Config, opts ...Option) (*Syncer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Syncer{
		config: cfg,
		sleep:  sleepContext,
		hooks:  newHooks(),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, fmt.Errorf("applying options: %w", err)
		}
	}

	if s.fetcher == nil {
		s.fetcher = scryfall.NewClient(cfg.LookupURL)
	}

	return s, nil
}

// Config returns the configuration the Syncer runs with.
func (s *Syncer) Config() Config {
	return s.config
}
