// Package console prints sync progress for people watching a terminal.
package console

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/agentstation/cubesync"
	"github.com/agentstation/cubesync/internal/cmd/emoji"
)

// Printer renders sync events as human-readable lines.
type Printer struct {
	w io.Writer

	ok   *color.Color
	fail *color.Color
	note *color.Color
	dim  *color.Color
}

// NewPrinter creates a Printer writing to w. Colors are disabled when
// noColor is set or w is not a terminal (fatih/color checks the latter).
func NewPrinter(w io.Writer, noColor bool) *Printer {
	p := &Printer{
		w:    w,
		ok:   color.New(color.FgGreen),
		fail: color.New(color.FgRed),
		note: color.New(color.FgCyan),
		dim:  color.New(color.Faint),
	}
	if noColor {
		for _, c := range []*color.Color{p.ok, p.fail, p.note, p.dim} {
			c.DisableColor()
		}
	}
	return p
}

// Attach registers the printer on a Syncer's hooks.
func (p *Printer) Attach(s *cubesync.Syncer) {
	s.OnPlan(p.Plan)
	s.OnItem(p.Item)
	s.OnCheckpoint(p.Checkpoint)
	s.OnStatus(p.Status)
}

// Plan prints the work about to be done.
func (p *Printer) Plan(e cubesync.PlanEvent) {
	p.printf("Found %d existing cards\n", e.Existing)
	p.printf("Cube list has %d cards\n", e.Manifest)
	p.printf("Need to fetch %d new cards\n", len(e.Plan.ToAdd))
	p.printf("Need to update %d existing cards\n", len(e.Plan.ToUpdate))
	if e.DryRun {
		p.printf("%s\n", p.note.Sprint("Dry run: nothing will be fetched or written"))
	}
	if !e.Plan.Empty() && !e.DryRun {
		p.printf("\nProcessing %d cards...\n\n", e.Plan.Len())
	}
}

// Item prints one processed card.
func (p *Printer) Item(e cubesync.ItemEvent) {
	p.printf("%s Processing: %s\n", p.dim.Sprintf("[%.1f%%]", e.Progress()), e.Name)

	switch {
	case !e.Result.OK():
		p.printf("  %s Failed to fetch %s\n", p.fail.Sprint(emoji.Error), e.Name)
	case e.Update:
		p.printf("  %s Updated %s\n", p.ok.Sprint(emoji.Success), e.Name)
	default:
		p.printf("  %s Added %s\n", p.ok.Sprint(emoji.Success), e.Name)
	}
}

// Checkpoint prints a saved-progress notice. The final write is reported by
// Summary instead.
func (p *Printer) Checkpoint(e cubesync.CheckpointEvent) {
	if e.Final {
		return
	}
	p.printf("  %s Saved progress (%d cards)\n", emoji.Save, e.Size)
}

// Status prints the periodic status report.
func (p *Printer) Status(e cubesync.StatusEvent) {
	p.printf("\n%s Status: %d total cards, %.1f%% success rate\n\n", emoji.Status, e.Size, e.SuccessRate)
}

// Summary prints the end-of-run report.
func (p *Printer) Summary(r *cubesync.Result, failurePath string) {
	if r.DryRun {
		return
	}
	p.printf("\n%s Complete! Total cards: %d\n", emoji.Done, r.Final)
	p.printf("Added: %d, Updated: %d\n", r.Added, r.Updated)
	if !r.HasFailures() {
		return
	}
	p.printf("%s\n", p.fail.Sprintf("Failed: %d", len(r.Failed)))
	p.printf("Failed cards saved to %s\n", failurePath)
	for _, name := range r.Failed {
		p.printf("  - %s\n", name)
	}
}

// Interrupted prints how far a canceled run got.
func (p *Printer) Interrupted(r *cubesync.Result) {
	if r == nil {
		return
	}
	p.printf("\n%s Interrupted after %d cards; progress up to the last checkpoint is saved\n",
		p.fail.Sprint(emoji.Warning), r.Processed)
}

func (p *Printer) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.w, format, args...)
}
