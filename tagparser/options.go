package tagparser

// Option configures a parse.
type Option func(*config)

type config struct {
	hasher Hasher // nil selects the builtin map
}

func newConfig(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithHasher stores attributes in a hash table indexed by h instead of the
// builtin map. The choice affects speed only; parse results compare equal
// regardless of hasher.
func WithHasher(h Hasher) Option {
	return func(c *config) {
		c.hasher = h
	}
}
