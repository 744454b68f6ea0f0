package cubesync

import (
	"context"
	"fmt"
	"time"

	"github.com/agentstation/cubesync/internal/collection"
	"github.com/agentstation/cubesync/internal/manifest"
	"github.com/agentstation/cubesync/pkg/cards"
	"github.com/agentstation/cubesync/pkg/differ"
	"github.com/agentstation/cubesync/pkg/errors"
	"github.com/agentstation/cubesync/pkg/logging"
	"github.com/agentstation/cubesync/pkg/save"
)

// Sync loads the collection and manifest, fetches every card in the plan and
// persists the collection at each checkpoint and once at the end.
//
// Lookup failures are collected in Result.Failed and written to the failure
// file. An unreadable manifest or a failed checkpoint write aborts the run.
// Cancelling ctx stops the loop before the next card; nothing is written
// after the last completed checkpoint.
func (s *Syncer) Sync(ctx context.Context) (*Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithOperation(ctx, "sync")
	logger := logging.FromContext(ctx)
	cfg := s.config

	result := &Result{
		StartTime: time.Now(),
		Failed:    []string{},
		DryRun:    cfg.DryRun,
	}
	defer func() { result.Duration = time.Since(result.StartTime) }()

	// Step 1: existing collection, empty on any problem
	coll := collection.Load(ctx, cfg.CollectionPath)
	result.Initial = len(coll)

	// Step 2: manifest, fatal on error
	names, err := manifest.Load(cfg.ManifestPath, cfg.window())
	if err != nil {
		return nil, err
	}
	result.Manifest = len(names)

	// Step 3: plan
	plan := differ.Compute(names, coll)
	result.Plan = plan
	result.Collection = coll
	result.Final = len(coll)

	logger.Debug().
		Int("manifest", len(names)).
		Int("existing", len(coll)).
		Int("to_add", len(plan.ToAdd)).
		Int("to_update", len(plan.ToUpdate)).
		Msg("Computed plan")

	s.triggerPlan(PlanEvent{
		Plan:     plan,
		Manifest: len(names),
		Existing: len(coll),
		DryRun:   cfg.DryRun,
	})

	if cfg.DryRun {
		logger.Debug().Bool("dry_run", true).Msg("Dry run completed - no cards fetched")
		return result, nil
	}

	// Step 4: fetch and merge
	coll, err = s.run(ctx, plan, coll, result)
	result.Collection = coll
	result.Final = len(coll)
	if err != nil {
		return result, err
	}

	// Step 5: final checkpoint and failure report
	if err := s.checkpoint(coll, result, true); err != nil {
		return result, err
	}
	if err := WriteFailures(cfg.FailurePath, result.Failed); err != nil {
		return result, err
	}

	logger.Debug().
		Int("total", len(coll)).
		Int("added", result.Added).
		Int("updated", result.Updated).
		Int("failed", len(result.Failed)).
		Msg("Sync completed")

	return result, nil
}

// run is the merge/persist loop over the plan's work list.
func (s *Syncer) run(ctx context.Context, plan *differ.Plan, coll cards.Collection, result *Result) (cards.Collection, error) {
	cfg := s.config
	work := plan.WorkList()
	initial := result.Initial

	for i, name := range work {
		if err := ctx.Err(); err != nil {
			logging.FromContext(ctx).Warn().
				Int("processed", i).
				Int("total", len(work)).
				Msg("Sync interrupted")
			return coll, fmt.Errorf("%w after %d of %d cards: %w", errors.ErrCanceled, i, len(work), err)
		}

		update := plan.IsUpdate(name)
		res := s.fetcher.Fetch(ctx, name)
		switch {
		case res.OK() && update:
			if rec, ok := coll.Find(name); ok {
				rec.Enrich(res.Record)
				result.Updated++
			}
		case res.OK():
			coll = append(coll, res.Record)
			result.Added++
		default:
			result.Failed = append(result.Failed, name)
		}
		result.Processed = i + 1

		s.triggerItem(ItemEvent{
			Index:  i,
			Total:  len(work),
			Name:   name,
			Update: update,
			Result: res,
		})

		s.sleep(ctx, cfg.PerItemDelay)

		processed := i + 1
		if processed%cfg.CheckpointInterval == 0 {
			if err := s.checkpoint(coll, result, false); err != nil {
				return coll, err
			}
		}
		if processed%cfg.StatusInterval == 0 {
			added := len(coll) - initial
			s.triggerStatus(StatusEvent{
				Processed:   processed,
				Total:       len(work),
				Size:        len(coll),
				Added:       added,
				SuccessRate: float64(added) / float64(processed) * 100,
			})
		}
	}

	return coll, nil
}

// checkpoint overwrites the collection file with coll.
func (s *Syncer) checkpoint(coll cards.Collection, result *Result, final bool) error {
	path := s.config.CollectionPath
	if err := collection.Save(path, coll, save.WithAtomic(s.config.AtomicWrites)); err != nil {
		return err
	}
	result.Checkpoints++

	logging.Debug().
		Str("path", path).
		Int("cards", len(coll)).
		Bool("final", final).
		Msg("Saved collection")

	s.triggerCheckpoint(CheckpointEvent{
		Path:      path,
		Processed: result.Processed,
		Size:      len(coll),
		Final:     final,
	})
	return nil
}
