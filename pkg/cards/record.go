// Package cards defines the card record and the ordered collection that
// cubesync reconciles against the lookup service.
package cards

import (
	"bytes"
	"encoding/json"
	"sort"

	"github.com/agentstation/cubesync/pkg/errors"
)

// ErrMissingName is returned when decoding a record without a name.
var ErrMissingName = errors.New("card record has no name")

// JSON keys used in the persisted collection file.
const (
	KeyName       = "name"
	KeyExternalID = "scryfallId"
	KeyCost       = "manaCost"
	KeyTypeLine   = "type"
	KeyColors     = "colors"
	KeyRarity     = "rarity"
)

// Record is one catalog entry.
//
// Whether the colors key was present in the source document is tracked apart
// from its value: a record loaded with "colors": [] has colors, a record
// loaded without the key does not. Keys this type does not know about are
// kept and written back unchanged. An explicit "colors": null is kept as null.
type Record struct {
	Name        string
	ExternalID  string
	CostSymbols string
	TypeLine    string
	Colors      []string
	Rarity      string

	hasColors  bool
	nullColors bool
	extra      map[string]json.RawMessage
}

// NewRecord returns a fully populated record. Colors are always marked present.
func NewRecord(name, externalID, cost, typeLine string, colors []string, rarity string) *Record {
	if colors == nil {
		colors = []string{}
	}
	return &Record{
		Name:        name,
		ExternalID:  externalID,
		CostSymbols: cost,
		TypeLine:    typeLine,
		Colors:      colors,
		Rarity:      rarity,
		hasColors:   true,
	}
}

// HasColors reports whether the colors key is present, regardless of its value.
func (r *Record) HasColors() bool {
	return r.hasColors
}

// SetColors sets the color list and marks the key present.
func (r *Record) SetColors(colors []string) {
	if colors == nil {
		colors = []string{}
	}
	r.Colors = colors
	r.hasColors = true
	r.nullColors = false
}

// Enrich overwrites the fetched fields of r with those of src. The name and
// any unknown keys of r are kept.
func (r *Record) Enrich(src *Record) {
	r.SetColors(src.Colors)
	r.ExternalID = src.ExternalID
	r.CostSymbols = src.CostSymbols
	r.TypeLine = src.TypeLine
	r.Rarity = src.Rarity
}

// Extra returns the raw value of a key this type does not model.
func (r *Record) Extra(key string) (json.RawMessage, bool) {
	v, ok := r.extra[key]
	return v, ok
}

// Clone returns a deep copy of the record.
func (r *Record) Clone() *Record {
	c := *r
	if r.Colors != nil {
		c.Colors = append([]string(nil), r.Colors...)
	}
	if r.extra != nil {
		c.extra = make(map[string]json.RawMessage, len(r.extra))
		for k, v := range r.extra {
			c.extra[k] = append(json.RawMessage(nil), v...)
		}
	}
	return &c
}

// UnmarshalJSON decodes a record, remembering key presence and unknown keys.
// A record must carry a non-null name.
func (r *Record) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if name, ok := raw[KeyName]; !ok || isNull(name) {
		return ErrMissingName
	}

	*r = Record{}
	fields := map[string]*string{
		KeyName:       &r.Name,
		KeyExternalID: &r.ExternalID,
		KeyCost:       &r.CostSymbols,
		KeyTypeLine:   &r.TypeLine,
		KeyRarity:     &r.Rarity,
	}
	for key, value := range raw {
		if dst, ok := fields[key]; ok {
			if isNull(value) {
				continue
			}
			if err := json.Unmarshal(value, dst); err != nil {
				return err
			}
			continue
		}
		if key == KeyColors {
			r.hasColors = true
			if isNull(value) {
				r.nullColors = true
				continue
			}
			if err := json.Unmarshal(value, &r.Colors); err != nil {
				return err
			}
			continue
		}
		if r.extra == nil {
			r.extra = make(map[string]json.RawMessage)
		}
		r.extra[key] = value
	}
	return nil
}

// MarshalJSON encodes the record with known keys first, in a fixed order,
// followed by unknown keys sorted by name. colors is omitted when absent.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	write := func(key string, value any) error {
		k, err := encode(key)
		if err != nil {
			return err
		}
		v, err := encode(value)
		if err != nil {
			return err
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
		return nil
	}

	known := []struct {
		key   string
		value any
		skip  bool
	}{
		{KeyName, r.Name, false},
		{KeyExternalID, r.ExternalID, false},
		{KeyCost, r.CostSymbols, false},
		{KeyTypeLine, r.TypeLine, false},
		{KeyColors, r.colorsValue(), !r.hasColors},
		{KeyRarity, r.Rarity, false},
	}
	for _, f := range known {
		if f.skip {
			continue
		}
		if err := write(f.key, f.value); err != nil {
			return nil, err
		}
	}

	keys := make([]string, 0, len(r.extra))
	for k := range r.extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := write(k, r.extra[k]); err != nil {
			return nil, err
		}
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (r *Record) colorsValue() any {
	if r.nullColors {
		return nil
	}
	if r.Colors == nil {
		return []string{}
	}
	return r.Colors
}

// encode marshals v without HTML escaping, so names like "Fire & Ice"
// stay readable in the file.
func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func isNull(v json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(v), []byte("null"))
}
