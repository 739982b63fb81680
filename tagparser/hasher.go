package tagparser

import (
	"fmt"
	"hash/fnv"
	"hash/maphash"
	"io"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Hasher hashes attribute keys for the hash-table Store.
type Hasher interface {
	Name() string
	Sum64(key string) uint64
}

// Builtin is the name HasherByName accepts for the builtin map.
const Builtin = "builtin"

var (
	// FNV hashes keys with 64-bit FNV-1a.
	FNV Hasher = fnvHasher{}
	// XXHash hashes keys with 64-bit xxHash.
	XXHash Hasher = xxHasher{}
)

type fnvHasher struct{}

func (fnvHasher) Name() string { return "fnv" }

func (fnvHasher) Sum64(key string) uint64 {
	h := fnv.New64a()
	_, _ = io.WriteString(h, key)
	return h.Sum64()
}

type xxHasher struct{}

func (xxHasher) Name() string { return "xxhash" }

func (xxHasher) Sum64(key string) uint64 { return xxhash.Sum64String(key) }

type mapHasher struct {
	seed maphash.Seed
}

// NewMapHash returns a Hasher backed by hash/maphash with a fresh random seed.
func NewMapHash() Hasher {
	return mapHasher{seed: maphash.MakeSeed()}
}

func (mapHasher) Name() string { return "maphash" }

func (m mapHasher) Sum64(key string) uint64 { return maphash.String(m.seed, key) }

// Hashers lists the names HasherByName accepts.
func Hashers() []string {
	return []string{Builtin, "fnv", "maphash", "xxhash"}
}

// HasherByName resolves a hasher name. Builtin (and the empty string)
// resolve to a nil Hasher, which selects the builtin map.
func HasherByName(name string) (Hasher, error) {
	switch strings.ToLower(name) {
	case "", Builtin:
		return nil, nil
	case "fnv":
		return FNV, nil
	case "maphash":
		return NewMapHash(), nil
	case "xxhash":
		return XXHash, nil
	default:
		return nil, fmt.Errorf("unknown hasher %q (want one of %s)", name, strings.Join(Hashers(), ", "))
	}
}

// HasherName returns h's name, or Builtin for nil.
func HasherName(h Hasher) string {
	if h == nil {
		return Builtin
	}
	return h.Name()
}

const initialBuckets = 8

type entry struct {
	hash  uint64
	key   string
	value string
}

// hashStore is a chained hash table whose bucket index comes from a Hasher.
// The bucket count is always a power of two.
type hashStore struct {
	hasher  Hasher
	buckets [][]entry
	count   int
}

func newHashStore(h Hasher) *hashStore {
	return &hashStore{hasher: h, buckets: make([][]entry, initialBuckets)}
}

func (m *hashStore) index(hash uint64) int {
	return int(hash & uint64(len(m.buckets)-1))
}

func (m *hashStore) Set(key, value string) {
	hash := m.hasher.Sum64(key)
	b := m.index(hash)
	for i := range m.buckets[b] {
		if e := &m.buckets[b][i]; e.hash == hash && e.key == key {
			e.value = value
			return
		}
	}

	if m.count >= len(m.buckets) {
		m.grow()
		b = m.index(hash)
	}
	m.buckets[b] = append(m.buckets[b], entry{hash: hash, key: key, value: value})
	m.count++
}

func (m *hashStore) grow() {
	old := m.buckets
	m.buckets = make([][]entry, len(old)*2)
	for _, bucket := range old {
		for _, e := range bucket {
			b := m.index(e.hash)
			m.buckets[b] = append(m.buckets[b], e)
		}
	}
}

func (m *hashStore) Get(key string) (string, bool) {
	hash := m.hasher.Sum64(key)
	for _, e := range m.buckets[m.index(hash)] {
		if e.hash == hash && e.key == key {
			return e.value, true
		}
	}
	return "", false
}

func (m *hashStore) Len() int { return m.count }

func (m *hashStore) Range(fn func(key, value string) bool) {
	for _, bucket := range m.buckets {
		for _, e := range bucket {
			if !fn(e.key, e.value) {
				return
			}
		}
	}
}
