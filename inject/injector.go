package inject

import (
	"fmt"
	"math/rand/v2"

	"github.com/arloliu/astrodata/batch"
	"github.com/arloliu/astrodata/encoding"
	"github.com/arloliu/astrodata/errs"
	"github.com/arloliu/astrodata/format"
	"github.com/arloliu/astrodata/internal/options"
	"github.com/arloliu/astrodata/observation"
)

const (
	wordBaseline    = 8
	wordNoiseRange  = 25
	wordMarker      = 42
	wordPulseRange  = 256
	wordPulsarRange = 128
)

// Position locates a sample in a batch set.
type Position struct {
	Batch  int
	Sample int
}

// Injector generates synthetic batch sets for one observation geometry.
//
// An Injector is not safe for concurrent use: it owns its random source.
type Injector[T encoding.Sample] struct {
	obs    *observation.Observation
	layout encoding.Layout
	random bool
	rng    *rand.Rand
}

// NewInjector creates an injector producing batches of obs encoded at depth,
// with rows aligned to paddingBytes.
//
// Returns a configuration error if obs is incomplete or depth does not fit T.
func NewInjector[T encoding.Sample](obs *observation.Observation, depth format.BitDepth, paddingBytes int, opts ...Option) (*Injector[T], error) {
	layout, err := encoding.LayoutFor[T](obs, depth, paddingBytes)
	if err != nil {
		return nil, err
	}

	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return &Injector[T]{
		obs:    obs,
		layout: layout,
		random: cfg.random,
		rng:    rand.New(cfg.source),
	}, nil
}

// Layout returns the layout of the generated batches.
func (in *Injector[T]) Layout() encoding.Layout {
	return in.layout
}

// Pulsar generates a periodic pulsar with the given period and width, both in
// samples, dispersed by dm.
//
// In every channel the pulse starts at the channel shift and repeats every
// period samples across the whole observation; the last pulse is clipped at
// the end of the final batch.
func (in *Injector[T]) Pulsar(period, width int, dm float64) (*batch.Set[T], error) {
	if period <= 0 || width <= 0 || dm < 0 {
		return nil, fmt.Errorf("%w: period %d, width %d, dm %g", errs.ErrInvalidPulse, period, width, dm)
	}

	set, err := in.background()
	if err != nil {
		return nil, err
	}

	total := in.obs.NrBatches() * in.layout.Samples
	for channel := 0; channel < in.layout.Channels; channel++ {
		shift := in.obs.ChannelShift(channel, dm)

		for start := shift; start < total; start += period {
			for i := 0; i < width && i < total-start; i++ {
				in.stamp(set, channel, start+i, in.pulseValue(wordPulsarRange))
			}
			if period >= total-start {
				break
			}
		}
	}

	return set, nil
}

// SinglePulse generates one pulse of width samples dispersed by dm and
// returns the set together with the pulse position in the highest channel.
//
// The pulse starts in the middle of batch NrBatches/2, or at a random position
// in the first half of the observation when random mode is enabled. Pulse
// samples that would fall past the last batch are dropped.
func (in *Injector[T]) SinglePulse(width int, dm float64) (*batch.Set[T], Position, error) {
	samples := in.layout.Samples
	batches := in.obs.NrBatches()

	if width <= 0 || dm < 0 {
		return nil, Position{}, fmt.Errorf("%w: width %d, dm %g", errs.ErrInvalidPulse, width, dm)
	}

	if in.random && (batches < 2 || width >= samples) {
		return nil, Position{}, fmt.Errorf("%w: random pulse of width %d needs at least 2 batches of more than %d samples",
			errs.ErrInvalidPulse, width, width)
	}

	set, err := in.background()
	if err != nil {
		return nil, Position{}, err
	}

	pos := Position{Batch: batches / 2, Sample: samples / 2}
	if in.random {
		pos = Position{Batch: in.rng.IntN(batches / 2), Sample: in.rng.IntN(samples - width)}
	}

	start := pos.Batch*samples + pos.Sample
	remaining := batches*samples - start
	for channel := 0; channel < in.layout.Channels; channel++ {
		shift := in.obs.ChannelShift(channel, dm)
		if shift >= remaining {
			continue
		}

		for i := 0; i < width && i < remaining-shift; i++ {
			in.stamp(set, channel, start+shift+i, in.pulseValue(wordPulseRange))
		}
	}

	return set, pos, nil
}

// background allocates a set filled with the baseline or with noise.
func (in *Injector[T]) background() (*batch.Set[T], error) {
	set, err := batch.NewSet[T](in.obs.NrBatches(), in.layout)
	if err != nil {
		return nil, err
	}

	if !in.random {
		if !in.layout.BitDepth.IsPacked() {
			set.Fill(T(wordBaseline))
		}

		return set, nil
	}

	noiseRange := wordNoiseRange
	if in.layout.BitDepth.IsPacked() {
		noiseRange = max(int(in.layout.BitDepth)-1, 1)
	}

	for _, buf := range set.All() {
		for channel := 0; channel < in.layout.Channels; channel++ {
			for sample := 0; sample < in.layout.Samples; sample++ {
				in.put(buf, channel, sample, in.rng.IntN(noiseRange))
			}
		}
	}

	return set, nil
}

// pulseValue returns the marker, or a random amplitude below wordRange for
// word depths and below the bit depth for packed depths.
func (in *Injector[T]) pulseValue(wordRange int) int {
	depth := in.layout.BitDepth

	switch {
	case depth.IsPacked() && in.random:
		return in.rng.IntN(int(depth))
	case depth.IsPacked():
		return int(uint8(depth) & depth.Mask())
	case in.random:
		return in.rng.IntN(wordRange)
	default:
		return wordMarker
	}
}

// stamp writes value at the global sample index of channel.
func (in *Injector[T]) stamp(set *batch.Set[T], channel, global, value int) {
	samples := in.layout.Samples
	in.put(set.Batch(global/samples), channel, global%samples, value)
}

func (in *Injector[T]) put(buf []T, channel, sample, value int) {
	if in.layout.BitDepth.IsPacked() {
		encoding.PutPacked(buf, in.layout, channel, sample, uint8(value))
		return
	}

	buf[in.layout.Index(channel, sample)] = T(value)
}
