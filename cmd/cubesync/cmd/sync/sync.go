package sync

import (
	"context"
	"io"

	"github.com/agentstation/cubesync/internal/cmd/application"
	"github.com/agentstation/cubesync/internal/cmd/cmdutil"
	"github.com/agentstation/cubesync/internal/cmd/console"
	"github.com/agentstation/cubesync/internal/cmd/output"
	"github.com/agentstation/cubesync/pkg/errors"
	"github.com/agentstation/cubesync/pkg/logging"
)

// Execute runs one sync with the flag values applied over the app config.
// Progress goes to stdout, or to stderr when a structured format is selected
// and the result itself is written to stdout.
func Execute(ctx context.Context, app application.Application, flags *cmdutil.SyncFlags, stdout, stderr io.Writer) error {
	cfg := app.SyncConfig()
	flags.Apply(&cfg)

	format, err := output.ParseFormat(app.OutputFormat())
	if err != nil {
		return err
	}

	syncer, err := app.Syncer(cfg)
	if err != nil {
		return err
	}

	progress := stdout
	if format.IsStructured() {
		progress = stderr
	}
	printer := console.NewPrinter(progress, app.NoColor())
	printer.Attach(syncer)

	ctx = logging.WithLogger(ctx, app.Logger())
	result, err := syncer.Sync(ctx)
	if err != nil {
		if errors.IsCanceled(err) {
			printer.Interrupted(result)
		}
		return err
	}

	printer.Summary(result, cfg.FailurePath)

	if format.IsStructured() {
		return output.NewFormatter(format).Format(stdout, result)
	}
	return nil
}
