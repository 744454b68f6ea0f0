package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/cubesync/cmd/cubesync/cmd/completion"
	"github.com/agentstation/cubesync/cmd/cubesync/cmd/plan"
	"github.com/agentstation/cubesync/cmd/cubesync/cmd/stats"
	synccmd "github.com/agentstation/cubesync/cmd/cubesync/cmd/sync"
)

// registerCommands registers all subcommands with the root command.
// The root command itself runs a sync, sharing the sync command's flags.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	syncCmd := synccmd.NewCommand(a)
	rootCmd.Flags().AddFlagSet(syncCmd.Flags())
	rootCmd.Args = cobra.NoArgs
	rootCmd.RunE = syncCmd.RunE

	// Core commands
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(plan.NewCommand(a))
	rootCmd.AddCommand(stats.NewCommand(a))

	// Management commands
	rootCmd.AddCommand(completion.NewCommand())

	// Utility commands
	rootCmd.AddCommand(a.NewVersionCommand())
}

// NewVersionCommand creates the version command.
func (a *App) NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "cubesync %s\n", a.version)
			if a.config.Verbose {
				fmt.Fprintf(out, "  commit:   %s\n", a.commit)
				fmt.Fprintf(out, "  built:    %s\n", a.date)
				fmt.Fprintf(out, "  built by: %s\n", a.builtBy)
			}
		},
	}
}
