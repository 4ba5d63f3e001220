package inject

import (
	"math/rand/v2"

	"github.com/arloliu/astrodata/internal/options"
)

// Default PCG seed of the random source.
const (
	DefaultSeed   uint64 = 0x5eed
	defaultStream uint64 = 0xa57d
)

type config struct {
	random bool
	source rand.Source
}

// Option configures an Injector.
type Option = options.Option[*config]

func defaultConfig() *config {
	return &config{source: rand.NewPCG(DefaultSeed, defaultStream)}
}

// WithRandom fills the background with noise and draws pulse amplitudes, and
// the single-pulse position, from the random source.
func WithRandom() Option {
	return options.NoError(func(c *config) {
		c.random = true
	})
}

// WithSeed seeds the random source with seed.
func WithSeed(seed uint64) Option {
	return options.NoError(func(c *config) {
		c.source = rand.NewPCG(seed, defaultStream)
	})
}

// WithSource replaces the random source. src must not be shared with other
// goroutines while the injector runs.
func WithSource(src rand.Source) Option {
	return options.NoError(func(c *config) {
		if src != nil {
			c.source = src
		}
	})
}

// WithUnseededRandom seeds the random source from the runtime, so every
// injector produces different data.
func WithUnseededRandom() Option {
	return options.NoError(func(c *config) {
		c.source = rand.NewPCG(rand.Uint64(), rand.Uint64())
	})
}
