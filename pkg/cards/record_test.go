package cards_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/cubesync/pkg/cards"
)

func TestRecordUnmarshal_ColorsPresence(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		hasColors bool
		colors    []string
	}{
		{name: "absent", input: `{"name":"Ponder"}`, hasColors: false},
		{name: "empty list", input: `{"name":"Ponder","colors":[]}`, hasColors: true, colors: []string{}},
		{name: "null", input: `{"name":"Ponder","colors":null}`, hasColors: true},
		{name: "values", input: `{"name":"Ponder","colors":["U"]}`, hasColors: true, colors: []string{"U"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r cards.Record
			require.NoError(t, json.Unmarshal([]byte(tt.input), &r))
			assert.Equal(t, "Ponder", r.Name)
			assert.Equal(t, tt.hasColors, r.HasColors())
			assert.Equal(t, tt.colors, r.Colors)
		})
	}
}

func TestRecordMarshal_KeyOrderAndExtras(t *testing.T) {
	input := `{"rarity":"common","imageUrl":"https://img/x.jpg","name":"Lightning Bolt","elo":1512,"type":"Instant","manaCost":"{R}","scryfallId":"abc"}`

	var r cards.Record
	require.NoError(t, json.Unmarshal([]byte(input), &r))

	elo, ok := r.Extra("elo")
	require.True(t, ok)
	assert.JSONEq(t, "1512", string(elo))

	out, err := json.Marshal(&r)
	require.NoError(t, err)
	assert.Equal(t,
		`{"name":"Lightning Bolt","scryfallId":"abc","manaCost":"{R}","type":"Instant","rarity":"common","elo":1512,"imageUrl":"https://img/x.jpg"}`,
		string(out))
}

func TestRecordMarshal_EmptyColorsKept(t *testing.T) {
	var r cards.Record
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Ornithopter","colors":[]}`), &r))

	out, err := json.Marshal(&r)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"colors":[]`)
}

func TestNewRecord(t *testing.T) {
	r := cards.NewRecord("Counterspell", "id-1", "{U}{U}", "Instant", nil, "common")
	assert.True(t, r.HasColors())
	assert.Equal(t, []string{}, r.Colors)

	out, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Equal(t,
		`{"name":"Counterspell","scryfallId":"id-1","manaCost":"{U}{U}","type":"Instant","colors":[],"rarity":"common"}`,
		string(out))
}

func TestRecordEnrich(t *testing.T) {
	var existing cards.Record
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Ponder","elo":1400,"rarity":"uncommon"}`), &existing))
	require.False(t, existing.HasColors())

	fetched := cards.NewRecord("ponder", "id-9", "{U}", "Sorcery", []string{"U"}, "common")
	existing.Enrich(fetched)

	assert.Equal(t, "Ponder", existing.Name)
	assert.True(t, existing.HasColors())
	assert.Equal(t, []string{"U"}, existing.Colors)
	assert.Equal(t, "id-9", existing.ExternalID)
	assert.Equal(t, "{U}", existing.CostSymbols)
	assert.Equal(t, "Sorcery", existing.TypeLine)
	assert.Equal(t, "common", existing.Rarity)
	_, ok := existing.Extra("elo")
	assert.True(t, ok)
}

func TestRecordClone(t *testing.T) {
	var r cards.Record
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Opt","colors":["U"],"elo":1}`), &r))

	c := r.Clone()
	c.Colors[0] = "R"
	assert.Equal(t, "U", r.Colors[0])
	assert.True(t, c.HasColors())
}

func TestRecordUnmarshal_Invalid(t *testing.T) {
	var r cards.Record
	assert.Error(t, json.Unmarshal([]byte(`{"name":42}`), &r))
	assert.Error(t, json.Unmarshal([]byte(`["not","an","object"]`), &r))
}

func TestRecordUnmarshal_RequiresName(t *testing.T) {
	for _, input := range []string{`{"scryfallId":"x"}`, `{"name":null}`, `{}`} {
		var r cards.Record
		assert.ErrorIs(t, json.Unmarshal([]byte(input), &r), cards.ErrMissingName, input)
	}

	var r cards.Record
	require.NoError(t, json.Unmarshal([]byte(`{"name":""}`), &r))
	assert.Empty(t, r.Name)
}

func TestRecordMarshal_NullColorsKept(t *testing.T) {
	var r cards.Record
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Ornithopter","colors":null}`), &r))

	out, err := json.Marshal(&r)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"colors":null`)

	r.Enrich(cards.NewRecord("Ornithopter", "id", "{0}", "Artifact Creature", nil, "common"))
	out, err = json.Marshal(&r)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"colors":[]`)
}
