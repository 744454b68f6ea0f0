// Package cmdutil provides shared flags and configuration utilities for cubesync commands.
package cmdutil

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/agentstation/cubesync"
)

// PathFlags holds the file locations shared by commands that read the collection.
type PathFlags struct {
	Collection string
	Manifest   string
	Failures   string
}

// AddPathFlags adds file location flags to a command, defaulting to cfg.
func AddPathFlags(cmd *cobra.Command, cfg cubesync.Config) *PathFlags {
	flags := &PathFlags{}

	cmd.Flags().StringVar(&flags.Collection, "collection", cfg.CollectionPath,
		"Collection JSON file")
	cmd.Flags().StringVar(&flags.Manifest, "manifest", cfg.ManifestPath,
		"Cube list text file")
	cmd.Flags().StringVar(&flags.Failures, "failures", cfg.FailurePath,
		"File receiving names that could not be fetched")

	return flags
}

// Apply copies the flag values onto cfg.
func (f *PathFlags) Apply(cfg *cubesync.Config) {
	cfg.CollectionPath = f.Collection
	cfg.ManifestPath = f.Manifest
	cfg.FailurePath = f.Failures
}

// SyncFlags holds the flags that shape a sync run.
type SyncFlags struct {
	*PathFlags

	Delay     time.Duration
	DryRun    bool
	LookupURL string
	Atomic    bool
}

// AddSyncFlags adds path and loop flags to a command, defaulting to cfg.
func AddSyncFlags(cmd *cobra.Command, cfg cubesync.Config) *SyncFlags {
	flags := &SyncFlags{PathFlags: AddPathFlags(cmd, cfg)}

	cmd.Flags().DurationVar(&flags.Delay, "delay", cfg.PerItemDelay,
		"Pause after every lookup")
	cmd.Flags().BoolVar(&flags.DryRun, "dry-run", cfg.DryRun,
		"Show what would be fetched without fetching or writing")
	cmd.Flags().StringVar(&flags.LookupURL, "lookup-url", cfg.LookupURL,
		"Base URL of the card lookup service")
	cmd.Flags().BoolVar(&flags.Atomic, "atomic", cfg.AtomicWrites,
		"Write checkpoints through a temp file and rename")

	return flags
}

// Apply copies the flag values onto cfg.
func (f *SyncFlags) Apply(cfg *cubesync.Config) {
	f.PathFlags.Apply(cfg)
	cfg.PerItemDelay = f.Delay
	cfg.DryRun = f.DryRun
	cfg.LookupURL = f.LookupURL
	cfg.AtomicWrites = f.Atomic
}
