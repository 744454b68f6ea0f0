package cubesync

import (
	"time"

	"github.com/agentstation/cubesync/internal/manifest"
	"github.com/agentstation/cubesync/pkg/constants"
	"github.com/agentstation/cubesync/pkg/errors"
)

// Config controls a sync run.
type Config struct {
	// Files
	CollectionPath string
	ManifestPath   string
	FailurePath    string

	// Loop pacing
	CheckpointInterval int
	StatusInterval     int
	PerItemDelay       time.Duration

	// Manifest window
	ManifestHeaderLines int
	ManifestBodyLines   int

	// LookupURL is the root of the card lookup service.
	LookupURL string

	// AtomicWrites writes checkpoints through a temp file and rename.
	AtomicWrites bool

	// DryRun computes the plan without fetching or writing anything.
	DryRun bool
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		CollectionPath:      constants.DefaultCollectionPath,
		ManifestPath:        constants.DefaultManifestPath,
		FailurePath:         constants.DefaultFailurePath,
		CheckpointInterval:  constants.CheckpointInterval,
		StatusInterval:      constants.StatusInterval,
		PerItemDelay:        constants.PerItemDelay,
		ManifestHeaderLines: constants.ManifestHeaderLines,
		ManifestBodyLines:   constants.ManifestBodyLines,
		LookupURL:           constants.DefaultLookupURL,
		AtomicWrites:        true,
	}
}

// Validate checks the configuration for values the loop cannot run with.
func (c Config) Validate() error {
	switch {
	case c.CollectionPath == "":
		return errors.NewValidationError("collection_path", c.CollectionPath, "must not be empty")
	case c.ManifestPath == "":
		return errors.NewValidationError("manifest_path", c.ManifestPath, "must not be empty")
	case c.FailurePath == "":
		return errors.NewValidationError("failure_path", c.FailurePath, "must not be empty")
	case c.CheckpointInterval <= 0:
		return errors.NewValidationError("checkpoint_interval", c.CheckpointInterval, "must be positive")
	case c.StatusInterval <= 0:
		return errors.NewValidationError("status_interval", c.StatusInterval, "must be positive")
	case c.PerItemDelay < 0:
		return errors.NewValidationError("delay", c.PerItemDelay, "must not be negative")
	case c.ManifestHeaderLines < 0:
		return errors.NewValidationError("manifest_header_lines", c.ManifestHeaderLines, "must not be negative")
	case c.ManifestBodyLines <= 0:
		return errors.NewValidationError("manifest_body_lines", c.ManifestBodyLines, "must be positive")
	}
	return nil
}

func (c Config) window() manifest.Window {
	return manifest.Window{Header: c.ManifestHeaderLines, Body: c.ManifestBodyLines}
}
