// Package plan provides the plan command implementation.
package plan

import (
	"context"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/agentstation/cubesync"
	"github.com/agentstation/cubesync/internal/cmd/application"
	"github.com/agentstation/cubesync/internal/cmd/cmdutil"
	"github.com/agentstation/cubesync/internal/cmd/output"
	"github.com/agentstation/cubesync/pkg/differ"
	"github.com/agentstation/cubesync/pkg/logging"
)

// Report is the structured form of a plan.
type Report struct {
	Summary  differ.Summary `json:"summary" yaml:"summary"`
	ToAdd    []string       `json:"toAdd" yaml:"toAdd"`
	ToUpdate []string       `json:"toUpdate" yaml:"toUpdate"`
}

// NewCommand creates the plan command using app context.
func NewCommand(app application.Application) *cobra.Command {
	var flags *cmdutil.PathFlags

	cmd := &cobra.Command{
		Use:     "plan",
		GroupID: "core",
		Short:   "Show which cards a sync would fetch",
		Args:    cobra.NoArgs,
		Long: `Plan compares the cube list with the collection and prints the cards
that are missing (to add) and the cards present without color data (to update).
Nothing is fetched and no file is written.`,
		Example: `  cubesync plan
  cubesync plan --format json
  cubesync plan --format markdown > plan.md`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return Execute(cmd.Context(), app, flags, cmd.OutOrStdout())
		},
	}

	flags = cmdutil.AddPathFlags(cmd, app.SyncConfig())

	return cmd
}

// Execute computes the plan through a dry-run sync and writes it to w.
func Execute(ctx context.Context, app application.Application, flags *cmdutil.PathFlags, w io.Writer) error {
	cfg := app.SyncConfig()
	flags.Apply(&cfg)

	format, err := output.ParseFormat(app.OutputFormat())
	if err != nil {
		return err
	}
	if format == "" {
		format = output.DetectFormat("")
	}

	syncer, err := app.Syncer(cfg, cubesync.WithDryRun(true))
	if err != nil {
		return err
	}

	result, err := syncer.Sync(logging.WithLogger(ctx, app.Logger()))
	if err != nil {
		return err
	}

	report := Report{
		Summary:  result.Plan.Summarize(result.Manifest, result.Initial),
		ToAdd:    result.Plan.ToAdd,
		ToUpdate: result.Plan.ToUpdate,
	}

	switch format {
	case output.FormatJSON, output.FormatYAML:
		return output.NewFormatter(format).Format(w, report)
	case output.FormatMarkdown:
		return (&output.MarkdownFormatter{Heading: "Sync Plan"}).Format(w, document(report, result.Plan))
	default:
		return output.NewFormatter(output.FormatTable).Format(w, document(report, result.Plan))
	}
}

func document(report Report, plan *differ.Plan) output.Document {
	s := report.Summary
	summary := output.Data{
		Title:   "Summary",
		Headers: []string{"Manifest", "Existing", "To Add", "To Update", "Total"},
		Rows: [][]string{{
			strconv.Itoa(s.Manifest),
			strconv.Itoa(s.Existing),
			strconv.Itoa(s.ToAdd),
			strconv.Itoa(s.ToUpdate),
			strconv.Itoa(s.Total),
		}},
		ColumnAlignment: []output.Align{output.AlignRight, output.AlignRight, output.AlignRight, output.AlignRight, output.AlignRight},
	}
	if plan.Empty() {
		return output.Document{summary}
	}

	items := output.ToData(plan.Items())
	items.Title = "Cards"
	return output.Document{summary, *items}
}
