// Package collection loads and checkpoints the persisted card collection.
package collection

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/agentstation/cubesync/pkg/cards"
	"github.com/agentstation/cubesync/pkg/constants"
	"github.com/agentstation/cubesync/pkg/errors"
	"github.com/agentstation/cubesync/pkg/logging"
	"github.com/agentstation/cubesync/pkg/save"
)

// Load reads the collection at path. A missing or malformed file is not an
// error: it is logged and an empty collection is returned so the run starts
// fresh.
func Load(ctx context.Context, path string) cards.Collection {
	logger := logging.FromContext(ctx)

	coll, err := Read(path)
	if err != nil {
		logger.Info().
			Err(err).
			Str("path", path).
			Msg("No existing data found, starting fresh")
		return cards.Collection{}
	}

	logger.Debug().
		Int("cards", len(coll)).
		Str("path", path).
		Msg("Found existing cards")
	return coll
}

// Read parses the collection at path, returning any error.
func Read(path string) (cards.Collection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	var coll cards.Collection
	if err := json.Unmarshal(data, &coll); err != nil {
		return nil, errors.WrapParse("json", path, err)
	}
	// "null" decodes without error but is not a collection.
	if coll == nil {
		return nil, errors.NewParseError("json", path, "expected an array of cards", nil)
	}
	for _, r := range coll {
		if r == nil {
			return nil, errors.NewParseError("json", path, "null entry in card array", nil)
		}
	}
	return coll, nil
}

// Save writes the whole collection to path as an indented JSON array,
// replacing the previous content.
func Save(path string, coll cards.Collection, opts ...save.Option) error {
	options := save.Defaults().Apply(opts...)

	if coll == nil {
		coll = cards.Collection{}
	}
	data, err := marshal(coll, options.Indent())
	if err != nil {
		return errors.WrapResource("encode", "collection", path, err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
			return errors.WrapIO("create", dir, err)
		}
	}

	if !options.Atomic() {
		if err := os.WriteFile(path, data, options.Perm()); err != nil {
			return errors.WrapIO("write", path, err)
		}
		return nil
	}
	return writeAtomic(path, data, options.Perm())
}

func marshal(coll cards.Collection, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(coll); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func writeAtomic(path string, data []byte, perm os.FileMode) error {
	tempFile, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.WrapIO("create", "temp file", err)
	}
	tempPath := tempFile.Name()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		_ = os.Remove(tempPath)
		return errors.WrapIO("write", tempPath, err)
	}
	if err := tempFile.Close(); err != nil {
		_ = os.Remove(tempPath)
		return errors.WrapIO("close", tempPath, err)
	}
	if err := os.Chmod(tempPath, perm); err != nil {
		_ = os.Remove(tempPath)
		return errors.WrapIO("chmod", tempPath, err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return errors.WrapIO("rename", path, err)
	}
	return nil
}
