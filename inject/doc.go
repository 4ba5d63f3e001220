// Package inject generates synthetic observations for testing pipelines.
//
// An Injector fills a batch.Set with a background, either a fixed baseline or
// uniform noise, and stamps a dispersed signal on top of it: a periodic pulsar
// or a single pulse. Channel delays follow the cold-plasma dispersion law as
// computed by observation.Observation.ChannelShift.
//
// Background and pulse values depend on the bit depth:
//
//	                 baseline   noise             marker            random pulse
//	>= 8 bits        8          [0, 25)           42                [0, 256) single, [0, 128) pulsar
//	< 8 bits         0          [0, max(d-1, 1))  d & mask(d)       [0, d)
//
// where d is the bit depth. Sub-byte samples are written with
// encoding.PutPacked, so neighbouring samples sharing a byte are preserved.
//
// By default an Injector is deterministic: baseline background, fixed marker
// and a fixed single-pulse position. WithRandom switches to noise, random
// amplitudes and a random single-pulse position drawn from an explicit random
// source, seeded by default so runs are reproducible.
package inject
