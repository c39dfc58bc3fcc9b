package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// KeySet is the ordered set of expanded row keys.
// A key appears at most once; order is insertion order.
// A nil KeySet and an empty one hold the same keys, but configuration uses
// nil to mean "not supplied".
type KeySet []RowKey

// NewKeySet builds a KeySet from keys, dropping duplicates.
func NewKeySet(keys ...RowKey) KeySet {
	set := make(KeySet, 0, len(keys))
	for _, k := range keys {
		set = set.With(k)
	}
	return set
}

// Contains reports whether key is in the set.
func (s KeySet) Contains(key RowKey) bool {
	return s.IndexOf(key) != -1
}

// IndexOf returns the position of key, or -1.
func (s KeySet) IndexOf(key RowKey) int {
	for i, k := range s {
		if k == key {
			return i
		}
	}
	return -1
}

// With returns a copy of the set with key appended.
// If key is already present the copy is returned unchanged.
func (s KeySet) With(key RowKey) KeySet {
	out := s.Clone()
	if out.Contains(key) {
		return out
	}
	return append(out, key)
}

// Without returns a copy of the set with key removed.
func (s KeySet) Without(key RowKey) KeySet {
	out := s.Clone()
	if i := out.IndexOf(key); i != -1 {
		out = append(out[:i], out[i+1:]...)
	}
	return out
}

// Clone returns an independent copy. The copy is never nil.
func (s KeySet) Clone() KeySet {
	out := make(KeySet, len(s))
	copy(out, s)
	return out
}

// Strings returns the keys as plain strings.
func (s KeySet) Strings() []string {
	out := make([]string, len(s))
	for i, k := range s {
		out[i] = string(k)
	}
	return out
}

// ParseKeySet reads a key set written as a JSON array or a comma separated
// list. An empty string yields an empty, non-nil set.
func ParseKeySet(raw string) (KeySet, error) {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "[") {
		var values []any
		if err := json.Unmarshal([]byte(raw), &values); err != nil {
			return nil, fmt.Errorf("invalid keys: %w", err)
		}
		keys := make([]RowKey, 0, len(values))
		for _, v := range values {
			keys = append(keys, KeyOf(v))
		}
		return NewKeySet(keys...), nil
	}

	keys := NewKeySet()
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			keys = keys.With(RowKey(part))
		}
	}
	return keys, nil
}
