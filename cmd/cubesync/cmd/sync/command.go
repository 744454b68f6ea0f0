// Package sync provides the sync command implementation.
package sync

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/cubesync/internal/cmd/application"
	"github.com/agentstation/cubesync/internal/cmd/cmdutil"
)

// NewCommand creates the sync command using app context.
func NewCommand(app application.Application) *cobra.Command {
	var flags *cmdutil.SyncFlags

	cmd := &cobra.Command{
		Use:     "sync",
		GroupID: "core",
		Short:   "Fetch missing and incomplete cards into the collection",
		Args:    cobra.NoArgs,
		Long: `Sync reconciles the collection file against the cube list.

The command will:
• Load the existing collection (starting empty if there is none)
• Read the card names from the cube list
• Fetch every card missing from the collection
• Re-fetch cards already present but lacking color data
• Save progress every 25 cards and once more at the end
• Write the names that could not be fetched to the failures file

Running cubesync with no command does the same thing.`,
		Example: `  cubesync sync                                 # Sync using configured paths
  cubesync sync --dry-run                       # Show the plan only
  cubesync sync --delay 250ms                   # Slow down lookups
  cubesync sync --collection cube.json --manifest list.txt`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return Execute(cmd.Context(), app, flags, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	flags = cmdutil.AddSyncFlags(cmd, app.SyncConfig())

	return cmd
}
