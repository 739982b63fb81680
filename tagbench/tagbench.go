// Package tagbench measures tagparser throughput on generated open tags of
// increasing attribute counts.
package tagbench

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/martinemde/opentag/tagparser"
	"github.com/rs/zerolog"
)

// DefaultSizes are the attribute counts measured when Config.Sizes is empty.
var DefaultSizes = []int{2, 4, 16, 32, 64, 128, 256}

// DefaultMinDuration is how long each case runs when Config.MinDuration is zero.
const DefaultMinDuration = 200 * time.Millisecond

// batch is the number of parses between clock and context checks.
const batch = 64

// GenerateInput builds `<div width="40", width="40", ...>` with n attributes.
func GenerateInput(n int) string {
	kvs := make([]string, n)
	for i := range kvs {
		kvs[i] = `width="40"`
	}
	return "<div " + strings.Join(kvs, ", ") + ">"
}

// Config selects what Run measures.
type Config struct {
	Sizes       []int
	Hashers     []string // names accepted by tagparser.HasherByName; empty means builtin only
	MinDuration time.Duration
	Logger      *zerolog.Logger
}

// Result is the measurement for one (hasher, size) case.
type Result struct {
	Hasher     string        `json:"hasher" yaml:"hasher" toml:"hasher"`
	Attributes int           `json:"attributes" yaml:"attributes" toml:"attributes"`
	InputBytes int           `json:"input_bytes" yaml:"input_bytes" toml:"input_bytes"`
	Iterations int           `json:"iterations" yaml:"iterations" toml:"iterations"`
	Elapsed    time.Duration `json:"elapsed" yaml:"elapsed" toml:"elapsed"`
}

// NsPerOp is the mean time of one parse in nanoseconds.
func (r Result) NsPerOp() float64 {
	if r.Iterations == 0 {
		return 0
	}
	return float64(r.Elapsed.Nanoseconds()) / float64(r.Iterations)
}

// AttributesPerSec is the parse throughput in attributes per second.
func (r Result) AttributesPerSec() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Attributes*r.Iterations) / r.Elapsed.Seconds()
}

// Run measures every hasher against every size. It returns the results
// gathered so far together with ctx.Err() if ctx is cancelled.
func Run(ctx context.Context, cfg Config) ([]Result, error) {
	sizes := cfg.Sizes
	if len(sizes) == 0 {
		sizes = DefaultSizes
	}
	names := cfg.Hashers
	if len(names) == 0 {
		names = []string{tagparser.Builtin}
	}
	minDur := cfg.MinDuration
	if minDur <= 0 {
		minDur = DefaultMinDuration
	}
	logger := cfg.Logger
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	for _, n := range sizes {
		if n < 0 {
			return nil, fmt.Errorf("invalid size %d: must not be negative", n)
		}
	}

	var results []Result
	for _, name := range names {
		hasher, err := tagparser.HasherByName(name)
		if err != nil {
			return results, err
		}
		for _, n := range sizes {
			res, err := runCase(ctx, hasher, n, minDur)
			if err != nil {
				return results, err
			}
			logger.Debug().
				Str("hasher", res.Hasher).
				Int("attributes", n).
				Int("iterations", res.Iterations).
				Dur("elapsed", res.Elapsed).
				Msg("case complete")
			results = append(results, res)
		}
	}
	return results, nil
}

var errMismatch = errors.New("unexpected attribute count")

func runCase(ctx context.Context, hasher tagparser.Hasher, n int, minDur time.Duration) (Result, error) {
	input := GenerateInput(n)
	want := 1
	if n == 0 {
		want = 0
	}

	// Parse once outside the clock so a malformed input fails fast.
	tag, err := tagparser.Parse(input, tagparser.WithHasher(hasher))
	if err != nil {
		return Result{}, fmt.Errorf("parsing generated input: %w", err)
	}
	if tag.Attributes.Len() != want {
		return Result{}, fmt.Errorf("%w: got %d, want %d", errMismatch, tag.Attributes.Len(), want)
	}

	res := Result{
		Hasher:     tagparser.HasherName(hasher),
		Attributes: n,
		InputBytes: len(input),
	}
	start := time.Now()
	for {
		for i := 0; i < batch; i++ {
			if _, err := tagparser.Parse(input, tagparser.WithHasher(hasher)); err != nil {
				return res, err
			}
		}
		res.Iterations += batch
		res.Elapsed = time.Since(start)

		if err := ctx.Err(); err != nil {
			return res, err
		}
		if res.Elapsed >= minDur {
			return res, nil
		}
	}
}
