package validator

import (
	"slices"
)

// Source exposes field values in a stable key order.
type Source interface {
	Keys() []string
	Get(key string) any
}

// Entry is a single key/value pair of an Entries source.
type Entry struct {
	Key   string
	Value any
}

// Entries is an ordered, immutable Source.
type Entries []Entry

func (e Entries) Keys() []string {
	keys := make([]string, len(e))
	for i, entry := range e {
		keys[i] = entry.Key
	}
	return keys
}

func (e Entries) Get(key string) any {
	for _, entry := range e {
		if entry.Key == key {
			return entry.Value
		}
	}
	return nil
}

// FromMap builds an Entries source with keys in sorted order.
func FromMap(m map[string]any) Entries {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	out := make(Entries, len(keys))
	for i, k := range keys {
		out[i] = Entry{Key: k, Value: m[k]}
	}
	return out
}
