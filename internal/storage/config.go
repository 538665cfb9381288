package storage

import (
	"go.uber.org/zap"

	"github.com/born-ml/ndarray/internal/parallel"
)

// CopyPolicy selects how much of a shared allocation copy-on-write duplicates.
type CopyPolicy int

const (
	// CopyView copies exactly the elements visible through the handle.
	CopyView CopyPolicy = iota

	// CopyTail copies everything from the handle's offset to the end of the
	// allocation when the view covers at least half of it.
	CopyTail
)

// String returns a human-readable policy name.
func (p CopyPolicy) String() string {
	switch p {
	case CopyView:
		return "view"
	case CopyTail:
		return "tail"
	default:
		return "unknown"
	}
}

// Config controls shared handles. Clones inherit the config of their source.
type Config struct {
	Policy   CopyPolicy      // Copy-on-write sizing policy.
	Parallel parallel.Config // Chunking for large copies.
	Logger   *zap.Logger     // Debug tracing of allocation events.
}

// DefaultConfig returns a config that copies the visible view and does not log.
func DefaultConfig() Config {
	return Config{
		Policy:   CopyView,
		Parallel: parallel.DefaultConfig(),
		Logger:   zap.NewNop(),
	}
}

// Option modifies a Config.
type Option func(*Config)

// WithPolicy sets the copy-on-write policy.
func WithPolicy(p CopyPolicy) Option {
	return func(c *Config) { c.Policy = p }
}

// WithParallel sets the chunking used for large copies.
func WithParallel(p parallel.Config) Option {
	return func(c *Config) { c.Parallel = p }
}

// WithLogger enables debug tracing through l.
func WithLogger(l *zap.Logger) Option {
	return func(c *Config) {
		if l == nil {
			l = zap.NewNop()
		}
		c.Logger = l
	}
}

func newConfig(opts []Option) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}
