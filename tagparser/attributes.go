package tagparser

import (
	"slices"
	"strings"
)

// Store is the key-value container behind Attributes.
type Store interface {
	Set(key, value string)
	Get(key string) (string, bool)
	Len() int
	Range(fn func(key, value string) bool)
}

// Attributes maps attribute keys to values. Iteration order is unspecified;
// use Keys for a stable order. A nil *Attributes behaves as empty.
type Attributes struct {
	store Store
}

func newAttributes(h Hasher) *Attributes {
	return &Attributes{store: newStore(h)}
}

// AttributesOf builds Attributes from a map, typically for comparisons in
// tests and callers that construct expected results.
func AttributesOf(kvs map[string]string, opts ...Option) *Attributes {
	a := newAttributes(newConfig(opts).hasher)
	for k, v := range kvs {
		a.set(k, v)
	}
	return a
}

// set inserts or overwrites key.
func (a *Attributes) set(key, value string) {
	a.store.Set(key, value)
}

// Get returns the value for key and whether it was present.
func (a *Attributes) Get(key string) (string, bool) {
	if a == nil {
		return "", false
	}
	return a.store.Get(key)
}

// Len returns the number of distinct keys.
func (a *Attributes) Len() int {
	if a == nil {
		return 0
	}
	return a.store.Len()
}

// Range calls fn for each pair until fn returns false.
func (a *Attributes) Range(fn func(key, value string) bool) {
	if a == nil {
		return
	}
	a.store.Range(fn)
}

// Keys returns the keys in sorted order.
func (a *Attributes) Keys() []string {
	keys := make([]string, 0, a.Len())
	a.Range(func(k, _ string) bool {
		keys = append(keys, k)
		return true
	})
	slices.Sort(keys)
	return keys
}

// Map returns a copy of the attributes as a builtin map.
func (a *Attributes) Map() map[string]string {
	m := make(map[string]string, a.Len())
	a.Range(func(k, v string) bool {
		m[k] = v
		return true
	})
	return m
}

// Equal reports whether a and b hold the same pairs. The backing store is
// not compared.
func (a *Attributes) Equal(b *Attributes) bool {
	if a.Len() != b.Len() {
		return false
	}
	equal := true
	a.Range(func(k, v string) bool {
		if bv, ok := b.Get(k); !ok || bv != v {
			equal = false
		}
		return equal
	})
	return equal
}

// String renders the attributes as a list in key order, e.g.
// `height="30", width="40"`.
func (a *Attributes) String() string {
	var sb strings.Builder
	for i, k := range a.Keys() {
		if i > 0 {
			sb.WriteString(", ")
		}
		v, _ := a.Get(k)
		sb.WriteString(k)
		sb.WriteString(`="`)
		sb.WriteString(v)
		sb.WriteByte('"')
	}
	return sb.String()
}

func newStore(h Hasher) Store {
	if h == nil {
		return mapStore{}
	}
	return newHashStore(h)
}

// mapStore is the default Store, backed by the builtin map.
type mapStore map[string]string

func (m mapStore) Set(key, value string) { m[key] = value }

func (m mapStore) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func (m mapStore) Len() int { return len(m) }

func (m mapStore) Range(fn func(key, value string) bool) {
	for k, v := range m {
		if !fn(k, v) {
			return
		}
	}
}
