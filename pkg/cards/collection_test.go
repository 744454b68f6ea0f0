package cards_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentstation/cubesync/pkg/cards"
)

func TestCollectionLookup(t *testing.T) {
	first := cards.NewRecord("Opt", "1", "{U}", "Instant", []string{"U"}, "common")
	dup := cards.NewRecord("Opt", "2", "{U}", "Instant", []string{"U"}, "common")
	other := cards.NewRecord("Shock", "3", "{R}", "Instant", []string{"R"}, "common")
	coll := cards.Collection{first, other, dup}

	assert.Equal(t, 0, coll.Index("Opt"))
	assert.Equal(t, 1, coll.Index("Shock"))
	assert.Equal(t, -1, coll.Index("Brainstorm"))

	found, ok := coll.Find("Opt")
	assert.True(t, ok)
	assert.Same(t, first, found)

	_, ok = coll.Find("Brainstorm")
	assert.False(t, ok)

	names := coll.Names()
	assert.Len(t, names, 2)
	assert.Contains(t, names, "Shock")
}

func TestCollectionClone(t *testing.T) {
	coll := cards.Collection{cards.NewRecord("Opt", "1", "{U}", "Instant", []string{"U"}, "common")}
	clone := coll.Clone()
	clone[0].Name = "Changed"
	assert.Equal(t, "Opt", coll[0].Name)
	assert.Nil(t, cards.Collection(nil).Clone())
}

func TestCalculateStats(t *testing.T) {
	coll := cards.Collection{
		cards.NewRecord("Lightning Bolt", "1", "{R}", "Instant", []string{"R"}, "common"),
		cards.NewRecord("Izzet Charm", "2", "{U}{R}", "Instant", []string{"U", "R"}, "uncommon"),
		cards.NewRecord("Ornithopter", "3", "{0}", "Artifact Creature", nil, "common"),
		{Name: "Unknown"},
	}

	stats := cards.CalculateStats(coll)
	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 1, stats.Colorless)
	assert.Equal(t, 1, stats.Unenriched)

	byColor := map[string]cards.ColorPreference{}
	for _, p := range stats.ColorPrefs {
		byColor[p.Color] = p
	}
	assert.Len(t, stats.ColorPrefs, 5)
	assert.Equal(t, 2, byColor["R"].Count)
	assert.InDelta(t, 0.5, byColor["R"].Percentage, 1e-9)
	assert.Equal(t, 1, byColor["U"].Count)
	assert.Equal(t, 0, byColor["W"].Count)

	assert.Equal(t, []cards.RarityCount{
		{Rarity: "common", Count: 2},
		{Rarity: "", Count: 1},
		{Rarity: "uncommon", Count: 1},
	}, stats.Rarities)
}

func TestCalculateStats_Empty(t *testing.T) {
	stats := cards.CalculateStats(nil)
	assert.Equal(t, 0, stats.Total)
	for _, p := range stats.ColorPrefs {
		assert.Zero(t, p.Percentage)
	}
	assert.Empty(t, stats.Rarities)
}
