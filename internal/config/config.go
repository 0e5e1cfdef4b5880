// Package config holds the executor's tuning knobs. It is deliberately
// small and validated, mirroring the teacher's own options-struct
// convention (rebalancing_options.go): a plain struct, a constructor of
// sane defaults, functional options for overrides, and a Validate method
// for checking a Config once rather than scattering nil/zero checks at
// every call site. exec.New does not call Validate itself.
package config

import "fmt"

// Config holds executor tuning knobs. None of these affect predicate
// semantics -- only how the work is scheduled.
type Config struct {
	// ChunkParallelism bounds how many goroutines a single leaf's
	// post-barrier scan may use. 1 disables parallelism (the default).
	ChunkParallelism int
	// CancelPollEvery is the number of chunks the executor processes
	// between polls of the cooperative cancellation flag.
	CancelPollEvery int
	// SmallTermLinearThreshold is the term-set size at or below which the
	// executor uses a linear scan instead of binary search, per spec's
	// permitted optimization for very small term lists.
	SmallTermLinearThreshold int
}

// Option mutates a Config under construction.
type Option func(*Config)

// WithChunkParallelism overrides ChunkParallelism.
func WithChunkParallelism(n int) Option {
	return func(c *Config) { c.ChunkParallelism = n }
}

// WithCancelPollEvery overrides CancelPollEvery.
func WithCancelPollEvery(n int) Option {
	return func(c *Config) { c.CancelPollEvery = n }
}

// WithSmallTermLinearThreshold overrides SmallTermLinearThreshold.
func WithSmallTermLinearThreshold(n int) Option {
	return func(c *Config) { c.SmallTermLinearThreshold = n }
}

// Default returns the default configuration: no parallelism, a cancel poll
// every chunk, and a linear-search threshold of 4 (spec's "k <= 4").
func Default(opts ...Option) Config {
	c := Config{
		ChunkParallelism:         1,
		CancelPollEvery:          1,
		SmallTermLinearThreshold: 4,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Validate reports whether c is internally consistent.
func (c Config) Validate() error {
	if c.ChunkParallelism < 1 {
		return fmt.Errorf("config: ChunkParallelism must be >= 1, got %d", c.ChunkParallelism)
	}
	if c.CancelPollEvery < 1 {
		return fmt.Errorf("config: CancelPollEvery must be >= 1, got %d", c.CancelPollEvery)
	}
	if c.SmallTermLinearThreshold < 0 {
		return fmt.Errorf("config: SmallTermLinearThreshold must be >= 0, got %d", c.SmallTermLinearThreshold)
	}
	return nil
}
