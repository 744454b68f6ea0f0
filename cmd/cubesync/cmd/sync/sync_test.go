package sync

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/cubesync"
	"github.com/agentstation/cubesync/internal/cmd/application"
	"github.com/agentstation/cubesync/pkg/logging"
)

// lookupServer answers exact-name lookups, returning 404 for names in missing.
func lookupServer(t *testing.T, missing ...string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := r.URL.Query().Get("exact")
		for _, m := range missing {
			if m == name {
				w.WriteHeader(http.StatusNotFound)
				_, _ = w.Write([]byte(`{"object":"error","details":"not found"}`))
				return
			}
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":        "id-" + name,
			"name":      name,
			"mana_cost": "{W}",
			"type_line": "Creature",
			"colors":    []string{"W"},
			"rarity":    "common",
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func setup(t *testing.T, format string) (*application.Mock, string) {
	t.Helper()
	logging.DisableLoggingForTest(t)

	dir := t.TempDir()
	manifest := filepath.Join(dir, "cube.txt")
	require.NoError(t, os.WriteFile(manifest, []byte("header\nKor Skyfisher\nNope\n\nOpt\n"), 0o644))

	cfg := cubesync.DefaultConfig()
	cfg.CollectionPath = filepath.Join(dir, "cube.json")
	cfg.ManifestPath = manifest
	cfg.FailurePath = filepath.Join(dir, "failed_cards.txt")
	cfg.PerItemDelay = 0

	mock := &application.Mock{
		SyncConfigFunc:   func() cubesync.Config { return cfg },
		OutputFormatFunc: func() string { return format },
	}
	return mock, dir
}

func TestSyncCommand(t *testing.T) {
	srv := lookupServer(t, "Nope")
	app, dir := setup(t, "")

	cmd := NewCommand(app)
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"--lookup-url", srv.URL})
	cmd.SetContext(context.Background())

	require.NoError(t, cmd.Execute())

	out := stdout.String()
	assert.Contains(t, out, "Need to fetch 3 new cards")
	assert.Contains(t, out, "✓ Added Kor Skyfisher")
	assert.Contains(t, out, "✗ Failed to fetch Nope")
	assert.Contains(t, out, "Complete! Total cards: 2")
	assert.Empty(t, stderr.String())

	failed, err := os.ReadFile(filepath.Join(dir, "failed_cards.txt"))
	require.NoError(t, err)
	assert.Equal(t, "Nope\n", string(failed))

	data, err := os.ReadFile(filepath.Join(dir, "cube.json"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "[\n  {\n    \"name\": \"Kor Skyfisher\""))
}

func TestSyncCommand_JSONResult(t *testing.T) {
	srv := lookupServer(t)
	app, _ := setup(t, "json")

	cmd := NewCommand(app)
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"--lookup-url", srv.URL})
	cmd.SetContext(context.Background())

	require.NoError(t, cmd.Execute())

	var result struct {
		Added  int      `json:"added"`
		Final  int      `json:"final"`
		Failed []string `json:"failed"`
	}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &result))
	assert.Equal(t, 3, result.Added)
	assert.Equal(t, 3, result.Final)
	assert.Empty(t, result.Failed)
	assert.Contains(t, stderr.String(), "Processing: Opt")
}

func TestSyncCommand_DryRun(t *testing.T) {
	app, dir := setup(t, "")

	cmd := NewCommand(app)
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"--dry-run", "--lookup-url", "http://127.0.0.1:1"})
	cmd.SetContext(context.Background())

	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), "Dry run")
	assert.NoFileExists(t, filepath.Join(dir, "cube.json"))
}

func TestSyncCommand_InvalidFormat(t *testing.T) {
	app, _ := setup(t, "xml")

	cmd := NewCommand(app)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{})
	cmd.SetContext(context.Background())

	assert.Error(t, cmd.Execute())
}
