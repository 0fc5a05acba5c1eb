package derive

import (
	"go.uber.org/zap"

	"filterable/internal/tag"
	"filterable/resolve"
)

// Option configures derivation.
type Option func(*config)

type config struct {
	tagKey      string
	registry    *resolve.Registry
	logger      *zap.Logger
	uniquePaths bool
}

func newConfig(opts []Option) config {
	cfg := config{
		tagKey:   tag.DefaultKey,
		registry: resolve.Default(),
		logger:   zap.NewNop(),
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithTagKey reads annotations from the given struct-tag key instead of "filter".
func WithTagKey(key string) Option {
	return func(c *config) {
		if key != "" {
			c.tagKey = key
		}
	}
}

// WithRegistry resolves field types through r instead of the default registry.
func WithRegistry(r *resolve.Registry) Option {
	return func(c *config) {
		if r != nil {
			c.registry = r
		}
	}
}

// WithLogger installs a logger that observes derivation and materialization.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithUniquePaths rejects definitions in which two fields share a path.
// Without it, collisions are left to scheme.New.
func WithUniquePaths() Option {
	return func(c *config) {
		c.uniquePaths = true
	}
}
