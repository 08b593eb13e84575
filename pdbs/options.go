package pdbs

import (
	"time"

	"go.uber.org/zap"
)

// Config holds SPDB construction configuration parameters. All fields are
// exported to allow inspection after construction.
type Config struct {
	// Dump enables one Info-level summary after construction: elapsed
	// wall-clock time, pattern size, layer count, initial h and node count.
	// Per-layer progress is logged at Debug level whether or not Dump is set.
	Dump bool

	// OperatorCosts, if non-nil, overrides every task operator's Cost, in
	// operator-ID order. Its length must equal the operator count.
	OperatorCosts []int

	// MemoryLimit bounds the BDD manager's unique-table node count. A value
	// of 0 means no limit is enforced.
	MemoryLimit int

	// Timeout bounds the wall-clock duration of regress's outer loop; the
	// deadline starts after transition relations and projections are built.
	// A value of 0 means no timeout is enforced.
	Timeout time.Duration

	// Logger receives construction diagnostics. Defaults to zap.NewNop() so
	// callers that don't care about logging pay no cost.
	Logger *zap.Logger
}

// Option configures SPDB construction using the functional options pattern.
type Option func(*Config)

// WithDump enables the end-of-construction summary (the construction timer
// of the original source's "dump" debugging flag).
func WithDump(dump bool) Option {
	return func(c *Config) { c.Dump = dump }
}

// WithOperatorCosts overrides every operator's cost. len(costs) must equal
// the task's operator count or construction fails with
// ErrOperatorCostMismatch.
func WithOperatorCosts(costs []int) Option {
	return func(c *Config) { c.OperatorCosts = costs }
}

// WithTimeout bounds the wall-clock duration of construction's regression
// phase; building transition relations and projections is not covered.
//
// If d <= 0, no timeout is enforced.
func WithTimeout(d time.Duration) Option {
	return func(c *Config) { c.Timeout = d }
}

// WithMemoryLimit bounds the BDD manager's node-table size.
//
// If nodes <= 0, no limit is enforced.
func WithMemoryLimit(nodes int) Option {
	return func(c *Config) { c.MemoryLimit = nodes }
}

// WithLogger sets the structured logger construction reports progress to.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Config) { c.Logger = logger }
}

// newConfig creates a new configuration with sensible defaults and applies
// the provided options in order.
//
// Default values:
//   - Dump: false
//   - MemoryLimit: 0 (no limit)
//   - Timeout: 0 (no timeout)
//   - Logger: zap.NewNop()
func newConfig(opts ...Option) *Config {
	cfg := &Config{
		Dump:        false,
		MemoryLimit: 0,
		Timeout:     0,
		Logger:      zap.NewNop(),
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	return cfg
}
