package cards

// Collection is the ordered set of records persisted by cubesync.
// Insertion order is kept for stable output. Names are expected to be unique
// but duplicates are tolerated; lookups return the first match.
type Collection []*Record

// Len returns the number of records.
func (c Collection) Len() int {
	return len(c)
}

// Index returns the position of the first record named name, or -1.
func (c Collection) Index(name string) int {
	for i, r := range c {
		if r.Name == name {
			return i
		}
	}
	return -1
}

// Find returns the first record named name.
func (c Collection) Find(name string) (*Record, bool) {
	if i := c.Index(name); i >= 0 {
		return c[i], true
	}
	return nil, false
}

// Names returns the set of record names.
func (c Collection) Names() map[string]struct{} {
	names := make(map[string]struct{}, len(c))
	for _, r := range c {
		names[r.Name] = struct{}{}
	}
	return names
}

// Clone returns a deep copy of the collection.
func (c Collection) Clone() Collection {
	if c == nil {
		return nil
	}
	out := make(Collection, len(c))
	for i, r := range c {
		out[i] = r.Clone()
	}
	return out
}
