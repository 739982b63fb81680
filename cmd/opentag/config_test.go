package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "opentag.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
format: yaml
hasher: xxhash
bench:
  sizes: [2, 8]
  hashers: [fnv, maphash]
  min_duration: 50ms
`), 0o600))

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	c, err := loadConfig(v)
	require.NoError(t, err)
	assert.Equal(t, "yaml", c.Format)
	assert.Equal(t, "xxhash", c.Hasher)
	assert.Equal(t, []int{2, 8}, c.Bench.Sizes)
	assert.Equal(t, []string{"fnv", "maphash"}, c.Bench.Hashers)
	assert.Equal(t, 50*time.Millisecond, c.Bench.MinDuration)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"defaults", Config{Format: "text", Hasher: "builtin"}, false},
		{"empty hasher", Config{Format: "json"}, false},
		{"bench all", Config{Format: "toml", Bench: BenchConfig{Hashers: []string{"all"}}}, false},
		{"empty format", Config{}, true},
		{"unknown format", Config{Format: "xml"}, true},
		{"unknown hasher", Config{Format: "text", Hasher: "crc32"}, true},
		{"unknown bench hasher", Config{Format: "text", Bench: BenchConfig{Hashers: []string{"crc32"}}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestBenchHashersExpandsAll(t *testing.T) {
	c := Config{Bench: BenchConfig{Hashers: []string{"fnv", "all"}}}
	assert.Equal(t, []string{"builtin", "fnv", "maphash", "xxhash"}, c.benchHashers())

	c = Config{Bench: BenchConfig{Hashers: []string{"fnv"}}}
	assert.Equal(t, []string{"fnv"}, c.benchHashers())
}
