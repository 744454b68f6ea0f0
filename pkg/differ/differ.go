// Package differ computes which cards in a manifest need fetching.
package differ

import "github.com/agentstation/cubesync/pkg/cards"

// Compute compares manifest names against the collection.
//
// ToAdd holds manifest names absent from the collection, in manifest order;
// a name repeated in the manifest is listed once per occurrence. ToUpdate
// holds the names of collection records, in collection order, that appear in
// the manifest and have no colors key.
func Compute(names []string, coll cards.Collection) *Plan {
	existing := coll.Names()

	wanted := make(map[string]struct{}, len(names))
	for _, name := range names {
		wanted[name] = struct{}{}
	}

	plan := &Plan{
		ToAdd:    []string{},
		ToUpdate: []string{},
	}

	for _, name := range names {
		if _, ok := existing[name]; !ok {
			plan.ToAdd = append(plan.ToAdd, name)
		}
	}

	for _, rec := range coll {
		if _, ok := wanted[rec.Name]; ok && !rec.HasColors() {
			plan.ToUpdate = append(plan.ToUpdate, rec.Name)
		}
	}

	plan.index()
	return plan
}
