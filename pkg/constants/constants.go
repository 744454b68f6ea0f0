// Package constants provides shared constants used throughout the cubesync codebase.
// This includes timeouts, pipeline intervals, manifest bounds, file permissions
// and default paths that should be consistent across the application.
package constants

import "time"

// Timeout constants define various timeout durations used in the application
const (
	// DefaultHTTPTimeout is the standard timeout for a single card lookup
	DefaultHTTPTimeout = 30 * time.Second

	// ShutdownTimeout is how long the CLI waits for cleanup after an error
	ShutdownTimeout = 5 * time.Second
)

// Pipeline constants control the merge/persist loop
const (
	// CheckpointInterval is the number of processed cards between checkpoint writes
	CheckpointInterval = 25

	// StatusInterval is the number of processed cards between status reports
	StatusInterval = 10

	// PerItemDelay is the courtesy pause after every lookup
	PerItemDelay = 100 * time.Millisecond
)

// Manifest constants describe the fixed layout of the cube list export
const (
	// ManifestHeaderLines is the number of leading lines skipped in the manifest
	ManifestHeaderLines = 1

	// ManifestBodyLines is the number of card lines taken after the header
	ManifestBodyLines = 540
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Default locations, relative to the working directory
const (
	// DefaultCollectionPath is where the card collection is persisted
	DefaultCollectionPath = "./src/data/peasantCube.json"

	// DefaultManifestPath is the cube list the collection is reconciled against
	DefaultManifestPath = "./documentation/ThePeasantCube2025.txt"

	// DefaultFailurePath receives names that could not be fetched
	DefaultFailurePath = "./failed_cards.txt"
)

// Lookup service constants
const (
	// DefaultLookupURL is the base URL of the card lookup service
	DefaultLookupURL = "https://api.scryfall.com"

	// NamedCardPath is the exact-name endpoint, relative to the base URL
	NamedCardPath = "/cards/named"

	// UserAgent identifies this tool to the lookup service
	UserAgent = "cubesync/1.0"
)
