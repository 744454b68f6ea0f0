// Package stats provides the stats command implementation.
package stats

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/agentstation/cubesync/internal/cmd/application"
	"github.com/agentstation/cubesync/internal/cmd/output"
	"github.com/agentstation/cubesync/internal/collection"
	"github.com/agentstation/cubesync/pkg/cards"
	"github.com/agentstation/cubesync/pkg/logging"
)

// NewCommand creates the stats command using app context.
func NewCommand(app application.Application) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:     "stats",
		GroupID: "core",
		Short:   "Show the color and rarity breakdown of the collection",
		Args:    cobra.NoArgs,
		Long: `Stats reads the collection file and reports, for each color in WUBRG
order, how many cards include it and what share of the collection that is.
Multicolored cards count once for each of their colors. A rarity breakdown
follows.`,
		Example: `  cubesync stats
  cubesync stats --format yaml
  cubesync stats --collection other.json --format markdown`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return Execute(cmd.Context(), app, path, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&path, "collection", app.SyncConfig().CollectionPath, "Collection JSON file")

	return cmd
}

// Execute computes statistics for the collection at path and writes them to w.
func Execute(ctx context.Context, app application.Application, path string, w io.Writer) error {
	format, err := output.ParseFormat(app.OutputFormat())
	if err != nil {
		return err
	}
	if format == "" {
		format = output.DetectFormat("")
	}

	coll := collection.Load(logging.WithLogger(ctx, app.Logger()), path)
	stats := cards.CalculateStats(coll)

	switch format {
	case output.FormatJSON, output.FormatYAML:
		return output.NewFormatter(format).Format(w, stats)
	case output.FormatMarkdown:
		return (&output.MarkdownFormatter{Heading: "Cube Statistics"}).Format(w, document(stats))
	default:
		return output.NewFormatter(output.FormatTable).Format(w, document(stats))
	}
}

func document(stats cards.Statistics) output.Document {
	colors := output.Data{
		Title:           fmt.Sprintf("Colors (%d cards)", stats.Total),
		Headers:         []string{"Color", "Cards", "Share"},
		ColumnAlignment: []output.Align{output.AlignLeft, output.AlignRight, output.AlignRight},
	}
	for _, pref := range stats.ColorPrefs {
		colors.Rows = append(colors.Rows, []string{
			pref.Color,
			strconv.Itoa(pref.Count),
			fmt.Sprintf("%.1f%%", pref.Percentage*100),
		})
	}
	colors.Rows = append(colors.Rows,
		[]string{"Colorless", strconv.Itoa(stats.Colorless), ""},
		[]string{"Not enriched", strconv.Itoa(stats.Unenriched), ""},
	)

	rarities := output.Data{
		Title:           "Rarity",
		Headers:         []string{"Rarity", "Cards"},
		ColumnAlignment: []output.Align{output.AlignLeft, output.AlignRight},
	}
	for _, r := range stats.Rarities {
		name := r.Rarity
		if name == "" {
			name = "(none)"
		}
		rarities.Rows = append(rarities.Rows, []string{name, strconv.Itoa(r.Count)})
	}

	return output.Document{colors, rarities}
}
