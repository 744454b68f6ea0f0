// Package emoji provides symbol constants for CLI output.
// These symbols create a consistent visual language across all commands.
package emoji

// Symbol constants for CLI output.
const (
	// Success marks a card that was fetched and merged.
	Success = "✓"

	// Error marks a card whose lookup failed.
	Error = "✗"

	// Warning represents warnings or non-critical issues.
	// Used for: interrupted runs, stale failure files.
	Warning = "!"

	// Save marks a checkpoint write.
	Save = "💾"

	// Status marks the periodic status report.
	Status = "📊"

	// Done marks the end-of-run summary.
	Done = "✅"

	// Info represents informational messages.
	Info = "i"
)
