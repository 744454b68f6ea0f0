// Package completion provides the shell completion command.
package completion

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/cubesync/pkg/errors"
)

// Supported shells.
const (
	ShellBash = "bash"
	ShellZsh  = "zsh"
	ShellFish = "fish"
)

// NewCommand creates the completion command.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "completion [bash|zsh|fish]",
		GroupID: "management",
		Short:   "Generate completion script",
		Long: `To load completions:

Bash:

  $ source <(cubesync completion bash)

Zsh:

  # To load completions for each session, execute once:
  $ cubesync completion zsh > "${fpath[1]}/_cubesync"

Fish:

  $ cubesync completion fish | source
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{ShellBash, ShellZsh, ShellFish},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return Generate(cmd.Root(), cmd, args[0])
		},
	}
}

// Generate writes the completion script for shell to cmd's output.
func Generate(root, cmd *cobra.Command, shell string) error {
	out := cmd.OutOrStdout()
	switch shell {
	case ShellBash:
		return root.GenBashCompletionV2(out, true)
	case ShellZsh:
		return root.GenZshCompletion(out)
	case ShellFish:
		return root.GenFishCompletion(out, true)
	default:
		return errors.NewValidationError("shell", shell, "unsupported shell")
	}
}
