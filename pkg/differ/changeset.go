package differ

import (
	"fmt"
	"strings"
)

// ChangeType represents the type of change.
type ChangeType string

const (
	// ChangeTypeAdd indicates a card missing from the collection.
	ChangeTypeAdd ChangeType = "add"
	// ChangeTypeUpdate indicates a card present but lacking color data.
	ChangeTypeUpdate ChangeType = "update"
)

// Item is a single unit of work in a Plan.
type Item struct {
	Name string     `json:"name" yaml:"name"`
	Type ChangeType `json:"type" yaml:"type"`
}

// Plan is the work derived from comparing a manifest to a collection.
type Plan struct {
	ToAdd    []string `json:"toAdd" yaml:"toAdd"`
	ToUpdate []string `json:"toUpdate" yaml:"toUpdate"`

	updates map[string]struct{}
}

// Summary counts the work in a Plan.
type Summary struct {
	Manifest int `json:"manifest" yaml:"manifest"`
	Existing int `json:"existing" yaml:"existing"`
	ToAdd    int `json:"toAdd" yaml:"toAdd"`
	ToUpdate int `json:"toUpdate" yaml:"toUpdate"`
	Total    int `json:"total" yaml:"total"`
}

// WorkList returns ToAdd followed by ToUpdate.
func (p *Plan) WorkList() []string {
	work := make([]string, 0, p.Len())
	work = append(work, p.ToAdd...)
	return append(work, p.ToUpdate...)
}

// Items returns the work list with each entry tagged by change type.
func (p *Plan) Items() []Item {
	items := make([]Item, 0, p.Len())
	for _, name := range p.ToAdd {
		items = append(items, Item{Name: name, Type: ChangeTypeAdd})
	}
	for _, name := range p.ToUpdate {
		items = append(items, Item{Name: name, Type: ChangeTypeUpdate})
	}
	return items
}

// IsUpdate reports whether name was selected for an in-place update.
func (p *Plan) IsUpdate(name string) bool {
	if p.updates == nil {
		p.index()
	}
	_, ok := p.updates[name]
	return ok
}

// Len returns the number of items in the work list.
func (p *Plan) Len() int {
	return len(p.ToAdd) + len(p.ToUpdate)
}

// Empty reports whether there is nothing to do.
func (p *Plan) Empty() bool {
	return p.Len() == 0
}

// Summarize counts the plan alongside the sizes of its inputs.
func (p *Plan) Summarize(manifest, existing int) Summary {
	return Summary{
		Manifest: manifest,
		Existing: existing,
		ToAdd:    len(p.ToAdd),
		ToUpdate: len(p.ToUpdate),
		Total:    p.Len(),
	}
}

func (p *Plan) index() {
	p.updates = make(map[string]struct{}, len(p.ToUpdate))
	for _, name := range p.ToUpdate {
		p.updates[name] = struct{}{}
	}
}

// String returns a human-readable summary of the plan.
func (p *Plan) String() string {
	if p.Empty() {
		return "No changes"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d to add, %d to update", len(p.ToAdd), len(p.ToUpdate))
	for _, item := range p.Items() {
		marker := "+"
		if item.Type == ChangeTypeUpdate {
			marker = "~"
		}
		fmt.Fprintf(&sb, "\n  %s %s", marker, item.Name)
	}
	return sb.String()
}
