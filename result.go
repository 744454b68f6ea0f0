package cubesync

import (
	"time"

	"github.com/agentstation/cubesync/pkg/cards"
	"github.com/agentstation/cubesync/pkg/differ"
)

// Result summarizes a sync run.
type Result struct {
	// Collection is the in-memory collection at the end of the run.
	Collection cards.Collection `json:"-" yaml:"-"`
	Plan       *differ.Plan     `json:"plan" yaml:"plan"`

	Manifest    int      `json:"manifest" yaml:"manifest"`
	Initial     int      `json:"initial" yaml:"initial"`
	Final       int      `json:"final" yaml:"final"`
	Added       int      `json:"added" yaml:"added"`
	Updated     int      `json:"updated" yaml:"updated"`
	Failed      []string `json:"failed" yaml:"failed"`
	Processed   int      `json:"processed" yaml:"processed"`
	Checkpoints int      `json:"checkpoints" yaml:"checkpoints"`
	DryRun      bool     `json:"dryRun" yaml:"dryRun"`

	StartTime time.Time     `json:"startTime" yaml:"startTime"`
	Duration  time.Duration `json:"duration" yaml:"duration"`
}

// Succeeded returns how many lookups produced a record.
func (r *Result) Succeeded() int {
	return r.Added + r.Updated
}

// HasFailures reports whether any lookup failed.
func (r *Result) HasFailures() bool {
	return len(r.Failed) > 0
}
