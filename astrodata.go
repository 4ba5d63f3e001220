// Package astrodata prepares radio-telescope sample data for processing
// pipelines.
//
// An observation (package observation) derives every buffer dimension from a
// few parameters. Samples of 1 to 64 bits are converted between the
// time-major stream stored in files and channel-major, alignment-padded
// batches (package encoding) held in a batch.Set. Sets are read from and
// written to raw sample files (package sigproc) or generated with a synthetic
// pulsar or single pulse (package inject).
//
// # Basic Usage
//
// Generating a dispersed pulse and round-tripping it through a file:
//
//	obs, _ := astrodata.NewObservation(8, 512, 4096, 1400, 0.195)
//
//	set, pos, _ := astrodata.GenerateSinglePulse[uint8](obs, format.Bits8, 4, 40)
//	fmt.Println("pulse at", pos.Batch, pos.Sample)
//
//	_ = astrodata.WriteSIGPROC("pulse.fil", set)
//	read, _ := astrodata.ReadSIGPROC[uint8]("pulse.fil", obs, format.Bits8, 0)
//
// # Package Structure
//
// This package provides convenient top-level wrappers that use the default
// padding of the running CPU (platform.DefaultPadding). For fine-grained
// control use the observation, inject and sigproc packages directly.
package astrodata

import (
	"github.com/arloliu/astrodata/batch"
	"github.com/arloliu/astrodata/encoding"
	"github.com/arloliu/astrodata/format"
	"github.com/arloliu/astrodata/inject"
	"github.com/arloliu/astrodata/observation"
	"github.com/arloliu/astrodata/platform"
	"github.com/arloliu/astrodata/sigproc"
)

// NewObservation creates a single-subband observation of batches batches of
// samplesPerBatch samples over channels channels, the lowest at minFreq MHz
// and spaced by channelBandwidth MHz.
func NewObservation(batches, channels, samplesPerBatch int, minFreq, channelBandwidth float64) (*observation.Observation, error) {
	obs := observation.New()
	obs.SetNrBatches(batches)
	obs.SetNrSamplesPerBatch(observation.Standard, samplesPerBatch)

	if err := obs.SetFrequencyRange(1, channels, minFreq, channelBandwidth); err != nil {
		return nil, err
	}

	if err := obs.Validate(); err != nil {
		return nil, err
	}

	return obs, nil
}

// GeneratePulsar generates a periodic pulsar, see inject.Injector.Pulsar.
func GeneratePulsar[T encoding.Sample](obs *observation.Observation, depth format.BitDepth, period, width int, dm float64, opts ...inject.Option) (*batch.Set[T], error) {
	inj, err := inject.NewInjector[T](obs, depth, platform.DefaultPadding(), opts...)
	if err != nil {
		return nil, err
	}

	return inj.Pulsar(period, width, dm)
}

// GenerateSinglePulse generates a single dispersed pulse, see inject.Injector.SinglePulse.
func GenerateSinglePulse[T encoding.Sample](obs *observation.Observation, depth format.BitDepth, width int, dm float64, opts ...inject.Option) (*batch.Set[T], inject.Position, error) {
	inj, err := inject.NewInjector[T](obs, depth, platform.DefaultPadding(), opts...)
	if err != nil {
		return nil, inject.Position{}, err
	}

	return inj.SinglePulse(width, dm)
}

// ReadSIGPROC reads the sample file at path, skipping headerBytes bytes of header.
func ReadSIGPROC[T encoding.Sample](path string, obs *observation.Observation, depth format.BitDepth, headerBytes int64, opts ...sigproc.Option) (*batch.Set[T], error) {
	opts = append([]sigproc.Option{sigproc.WithHeaderBytes(headerBytes)}, opts...)

	r, err := sigproc.NewReader[T](obs, depth, opts...)
	if err != nil {
		return nil, err
	}

	return r.ReadFile(path)
}

// WriteSIGPROC writes set to the sample file at path.
func WriteSIGPROC[T encoding.Sample](path string, set *batch.Set[T], opts ...sigproc.Option) error {
	w, err := sigproc.NewWriter[T](opts...)
	if err != nil {
		return err
	}

	return w.WriteFile(path, set)
}
