package tagparser

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// constHasher sends every key to the same bucket.
type constHasher struct{}

func (constHasher) Name() string        { return "const" }
func (constHasher) Sum64(string) uint64 { return 42 }

func allHashers(t *testing.T) []Hasher {
	t.Helper()
	var hashers []Hasher
	for _, name := range Hashers() {
		h, err := HasherByName(name)
		require.NoError(t, err, "hasher: %s", name)
		hashers = append(hashers, h)
	}
	return append(hashers, constHasher{})
}

func TestHasherByName(t *testing.T) {
	h, err := HasherByName("")
	require.NoError(t, err)
	assert.Nil(t, h)

	h, err = HasherByName("XXHash")
	require.NoError(t, err)
	assert.Equal(t, "xxhash", h.Name())

	for _, name := range Hashers() {
		h, err := HasherByName(name)
		require.NoError(t, err)
		assert.Equal(t, name, HasherName(h))
	}

	_, err = HasherByName("sha256")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown hasher")
}

func TestHashersAreDeterministicPerInstance(t *testing.T) {
	for _, h := range allHashers(t) {
		if h == nil {
			continue
		}
		assert.Equal(t, h.Sum64("width"), h.Sum64("width"), "hasher: %s", h.Name())
	}
	assert.NotEqual(t, FNV.Sum64("width"), FNV.Sum64("height"))
	assert.NotEqual(t, XXHash.Sum64("width"), XXHash.Sum64("height"))
}

func TestHashStoreSetGet(t *testing.T) {
	for _, h := range allHashers(t) {
		t.Run(HasherName(h), func(t *testing.T) {
			store := newStore(h)
			store.Set("width", "40")
			store.Set("height", "30")
			store.Set("width", "50")

			assert.Equal(t, 2, store.Len())
			v, ok := store.Get("width")
			assert.True(t, ok)
			assert.Equal(t, "50", v)
			_, ok = store.Get("depth")
			assert.False(t, ok)
		})
	}
}

func TestHashStoreGrows(t *testing.T) {
	for _, h := range []Hasher{FNV, XXHash, NewMapHash(), constHasher{}} {
		store := newHashStore(h)
		const n = 500
		for i := 0; i < n; i++ {
			store.Set(fmt.Sprintf("k%d", i), fmt.Sprintf("v%d", i))
		}
		assert.Equal(t, n, store.Len(), "hasher: %s", h.Name())
		assert.GreaterOrEqual(t, len(store.buckets), n, "hasher: %s", h.Name())

		seen := 0
		store.Range(func(k, v string) bool {
			assert.Equal(t, "v"+k[1:], v)
			seen++
			return true
		})
		assert.Equal(t, n, seen)

		for i := 0; i < n; i++ {
			v, ok := store.Get(fmt.Sprintf("k%d", i))
			require.True(t, ok)
			assert.Equal(t, fmt.Sprintf("v%d", i), v)
		}
	}
}

func TestHashStoreRangeStops(t *testing.T) {
	store := newHashStore(FNV)
	store.Set("a", "1")
	store.Set("b", "2")
	store.Set("c", "3")

	calls := 0
	store.Range(func(string, string) bool {
		calls++
		return false
	})
	assert.Equal(t, 1, calls)
}

func TestParseSameResultForEveryHasher(t *testing.T) {
	input := `<div width="40", height="30", height="31", src = "http://a.b/c">`
	want, err := Parse(input)
	require.NoError(t, err)

	for _, h := range allHashers(t) {
		got, err := Parse(input, WithHasher(h))
		require.NoError(t, err, "hasher: %s", HasherName(h))
		assert.True(t, want.Equal(got), "hasher: %s", HasherName(h))
		assert.Equal(t, want.Attributes.Map(), got.Attributes.Map())
		assert.Equal(t, want.String(), got.String())
	}
}
