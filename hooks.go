package cubesync

import (
	"sync"

	"github.com/agentstation/cubesync/internal/scryfall"
	"github.com/agentstation/cubesync/pkg/differ"
)

// PlanEvent describes the work computed before the loop starts.
type PlanEvent struct {
	Plan     *differ.Plan
	Manifest int
	Existing int
	DryRun   bool
}

// ItemEvent describes one processed card.
type ItemEvent struct {
	Index  int // zero-based position in the work list
	Total  int
	Name   string
	Update bool
	Result scryfall.Result
}

// Progress returns the share of the work list done after this item, 0-100.
func (e ItemEvent) Progress() float64 {
	if e.Total == 0 {
		return 100
	}
	return float64(e.Index+1) / float64(e.Total) * 100
}

// CheckpointEvent describes a collection write.
type CheckpointEvent struct {
	Path      string
	Processed int
	Size      int
	Final     bool
}

// StatusEvent is the periodic progress report.
type StatusEvent struct {
	Processed   int
	Total       int
	Size        int
	Added       int
	SuccessRate float64
}

// Hook function types for sync events
type (
	// PlanHook is called once the work list is known
	PlanHook func(PlanEvent)

	// ItemHook is called after each card is fetched and merged
	ItemHook func(ItemEvent)

	// CheckpointHook is called after each collection write
	CheckpointHook func(CheckpointEvent)

	// StatusHook is called every StatusInterval cards
	StatusHook func(StatusEvent)
)

// hooks manages event callbacks for a sync run
type hooks struct {
	mu           sync.RWMutex
	onPlan       []PlanHook
	onItem       []ItemHook
	onCheckpoint []CheckpointHook
	onStatus     []StatusHook
}

// newHooks creates a new hooks instance
func newHooks() *hooks {
	return &hooks{}
}

// OnPlan registers a callback for the computed plan
func (h *hooks) OnPlan(fn PlanHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onPlan = append(h.onPlan, fn)
}

// OnItem registers a callback for each processed card
func (h *hooks) OnItem(fn ItemHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onItem = append(h.onItem, fn)
}

// OnCheckpoint registers a callback for collection writes
func (h *hooks) OnCheckpoint(fn CheckpointHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onCheckpoint = append(h.onCheckpoint, fn)
}

// OnStatus registers a callback for periodic status reports
func (h *hooks) OnStatus(fn StatusHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onStatus = append(h.onStatus, fn)
}

func (h *hooks) triggerPlan(e PlanEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, fn := range h.onPlan {
		fn(e)
	}
}

func (h *hooks) triggerItem(e ItemEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, fn := range h.onItem {
		fn(e)
	}
}

func (h *hooks) triggerCheckpoint(e CheckpointEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, fn := range h.onCheckpoint {
		fn(e)
	}
}

func (h *hooks) triggerStatus(e StatusEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, fn := range h.onStatus {
		fn(e)
	}
}
