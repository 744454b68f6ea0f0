package completion

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/cubesync/pkg/errors"
)

func newRoot() (*cobra.Command, *bytes.Buffer) {
	root := &cobra.Command{Use: "cubesync"}
	root.AddGroup(&cobra.Group{ID: "management", Title: "Management Commands:"})
	root.AddCommand(NewCommand())
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	return root, &out
}

func TestCompletionCommand(t *testing.T) {
	tests := []struct {
		shell string
		want  string
	}{
		{ShellBash, "bash completion V2 for cubesync"},
		{ShellZsh, "#compdef cubesync"},
		{ShellFish, "fish completion for cubesync"},
	}

	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			root, out := newRoot()
			root.SetArgs([]string{"completion", tt.shell})
			require.NoError(t, root.Execute())
			assert.Contains(t, out.String(), tt.want)
		})
	}
}

func TestCompletionCommand_InvalidShell(t *testing.T) {
	root, _ := newRoot()
	root.SetArgs([]string{"completion", "powershell"})
	assert.Error(t, root.Execute())
}

func TestGenerate_Unsupported(t *testing.T) {
	root, _ := newRoot()
	err := Generate(root, root, "tcsh")
	assert.True(t, errors.IsValidationError(err))
}
