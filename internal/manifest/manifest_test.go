package manifest_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/cubesync/internal/manifest"
	pkgerrors "github.com/agentstation/cubesync/pkg/errors"
)

func writeManifest(t *testing.T, lines []string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cube.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))
	return path
}

func TestLoad_SkipsHeaderAndBlankLines(t *testing.T) {
	lines := []string{"The Peasant Cube 2025"}
	for i := 0; i < 540; i++ {
		switch i {
		case 10, 200, 539:
			lines = append(lines, "   ")
		default:
			lines = append(lines, fmt.Sprintf("  Card %d  ", i))
		}
	}
	lines = append(lines, "Sideboard", "Extra Card")

	names, err := manifest.Load(writeManifest(t, lines), manifest.DefaultWindow())
	require.NoError(t, err)

	assert.Len(t, names, 537)
	assert.Equal(t, "Card 0", names[0])
	assert.NotContains(t, names, "The Peasant Cube 2025")
	assert.NotContains(t, names, "Sideboard")
	assert.NotContains(t, names, "Extra Card")
}

func TestLoad_ShortFile(t *testing.T) {
	path := writeManifest(t, []string{"header", "Opt", "", "Ponder"})

	names, err := manifest.Load(path, manifest.DefaultWindow())
	require.NoError(t, err)
	assert.Equal(t, []string{"Opt", "Ponder"}, names)
}

func TestLoad_CustomWindow(t *testing.T) {
	path := writeManifest(t, []string{"title", "subtitle", "A", "B", "C"})

	names, err := manifest.Load(path, manifest.Window{Header: 2, Body: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, names)
}

func TestLoad_HeaderOnly(t *testing.T) {
	names, err := manifest.Load(writeManifest(t, []string{"header"}), manifest.DefaultWindow())
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := manifest.Load(filepath.Join(t.TempDir(), "missing.txt"), manifest.DefaultWindow())
	require.Error(t, err)

	var ioErr *pkgerrors.IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "open", ioErr.Operation)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
