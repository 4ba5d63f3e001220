package observation

import (
	"fmt"
	"math"

	"github.com/arloliu/astrodata/errs"
)

// Mode selects between the standard and the subbanding variant of the values
// that exist for both pipelines.
type Mode uint8

const (
	Standard   Mode = iota // Standard selects the direct dedispersion pipeline.
	Subbanding             // Subbanding selects the two-step subband pipeline.
)

func (m Mode) String() string {
	switch m {
	case Standard:
		return "Standard"
	case Subbanding:
		return "Subbanding"
	default:
		return "Unknown"
	}
}

// modeIndex maps a Mode to its storage slot; unknown modes fall back to Standard.
func modeIndex(m Mode) int {
	if m == Subbanding {
		return 1
	}

	return 0
}

// Observation holds the configuration of one observation session.
//
// The zero value is an empty observation; use New for clarity. Setting a
// frequency, DM or period range recomputes every derived field before the
// setter returns.
type Observation struct {
	nrBatches          int
	nrStations         int
	nrBeams            int
	nrSynthesizedBeams int
	samplingTime       float64

	nrSamplesPerBatch          [2]int
	nrSamplesPerDispersedBatch [2]int
	nrDelayBatches             [2]int

	nrSubbands           int
	nrChannels           int
	nrChannelsPerSubband int
	nrZappedChannels     int
	minSubbandFreq       float64
	maxSubbandFreq       float64
	subbandBandwidth     float64
	minChannelFreq       float64
	maxChannelFreq       float64
	channelBandwidth     float64

	dms     [2]Grid[float64]
	periods [2]Grid[int]
	nrBins  int
}

// New returns an empty observation.
func New() *Observation {
	return &Observation{}
}

// Validate checks that the observation describes a non-empty buffer geometry.
func (o *Observation) Validate() error {
	switch {
	case o.nrBatches <= 0:
		return fmt.Errorf("%w: batches=%d", errs.ErrInvalidGeometry, o.nrBatches)
	case o.nrChannels <= 0:
		return fmt.Errorf("%w: channels=%d", errs.ErrInvalidGeometry, o.nrChannels)
	case o.nrSamplesPerBatch[0] <= 0:
		return fmt.Errorf("%w: samples per batch=%d", errs.ErrInvalidGeometry, o.nrSamplesPerBatch[0])
	}

	return nil
}

// NrBatches returns the number of batches in the observation.
func (o *Observation) NrBatches() int {
	return o.nrBatches
}

// NrStations returns the number of stations.
func (o *Observation) NrStations() int {
	return o.nrStations
}

// NrBeams returns the number of station beams.
func (o *Observation) NrBeams() int {
	return o.nrBeams
}

// NrSynthesizedBeams returns the number of synthesized beams.
func (o *Observation) NrSynthesizedBeams() int {
	return o.nrSynthesizedBeams
}

// SamplingTime returns the duration of one sample in seconds.
func (o *Observation) SamplingTime() float64 {
	return o.samplingTime
}

// PaddedNrStations returns the station count rounded up to padding.
func (o *Observation) PaddedNrStations(padding int) int {
	return Pad(o.nrStations, padding)
}

// PaddedNrBeams returns the beam count rounded up to padding.
func (o *Observation) PaddedNrBeams(padding int) int {
	return Pad(o.nrBeams, padding)
}

// PaddedNrSynthesizedBeams returns the synthesized beam count rounded up to padding.
func (o *Observation) PaddedNrSynthesizedBeams(padding int) int {
	return Pad(o.nrSynthesizedBeams, padding)
}

// NrDelayBatches returns how many extra batches are needed to cover the
// dispersion smear of the mode's DM grid.
func (o *Observation) NrDelayBatches(mode Mode) int {
	return o.nrDelayBatches[modeIndex(mode)]
}

// NrSamplesPerBatch returns the number of samples in one batch of the mode.
func (o *Observation) NrSamplesPerBatch(mode Mode) int {
	return o.nrSamplesPerBatch[modeIndex(mode)]
}

// PaddedNrSamplesPerBatch returns NrSamplesPerBatch rounded up to padding.
func (o *Observation) PaddedNrSamplesPerBatch(mode Mode, padding int) int {
	return Pad(o.nrSamplesPerBatch[modeIndex(mode)], padding)
}

// NrSamplesPerDispersedBatch returns the batch size inflated to hold the
// maximum dispersion smear.
func (o *Observation) NrSamplesPerDispersedBatch(mode Mode) int {
	return o.nrSamplesPerDispersedBatch[modeIndex(mode)]
}

// PaddedNrSamplesPerDispersedBatch returns NrSamplesPerDispersedBatch rounded up to padding.
func (o *Observation) PaddedNrSamplesPerDispersedBatch(mode Mode, padding int) int {
	return Pad(o.nrSamplesPerDispersedBatch[modeIndex(mode)], padding)
}

// NrSubbands returns the number of subbands.
func (o *Observation) NrSubbands() int {
	return o.nrSubbands
}

// NrChannels returns the number of frequency channels.
func (o *Observation) NrChannels() int {
	return o.nrChannels
}

// NrChannelsPerSubband returns the number of channels grouped in one subband.
func (o *Observation) NrChannelsPerSubband() int {
	return o.nrChannelsPerSubband
}

// NrZappedChannels returns the number of channels flagged as interference.
func (o *Observation) NrZappedChannels() int {
	return o.nrZappedChannels
}

// PaddedNrSubbands returns the subband count rounded up to padding.
func (o *Observation) PaddedNrSubbands(padding int) int {
	return Pad(o.nrSubbands, padding)
}

// PaddedNrChannels returns the channel count rounded up to padding.
func (o *Observation) PaddedNrChannels(padding int) int {
	return Pad(o.nrChannels, padding)
}

// SubbandMinFreq returns the center frequency of the lowest subband, in MHz.
func (o *Observation) SubbandMinFreq() float64 {
	return o.minSubbandFreq
}

// SubbandMaxFreq returns the center frequency of the highest subband, in MHz.
func (o *Observation) SubbandMaxFreq() float64 {
	return o.maxSubbandFreq
}

// SubbandBandwidth returns the width of one subband, in MHz.
func (o *Observation) SubbandBandwidth() float64 {
	return o.subbandBandwidth
}

// MinFreq returns the center frequency of the lowest channel, in MHz.
func (o *Observation) MinFreq() float64 {
	return o.minChannelFreq
}

// MaxFreq returns the center frequency of the highest channel, in MHz.
func (o *Observation) MaxFreq() float64 {
	return o.maxChannelFreq
}

// ChannelBandwidth returns the width of one channel, in MHz.
func (o *Observation) ChannelBandwidth() float64 {
	return o.channelBandwidth
}

// ChannelFreq returns the frequency of the given channel, in MHz.
func (o *Observation) ChannelFreq(channel int) float64 {
	return o.minChannelFreq + float64(channel)*o.channelBandwidth
}

// DMs returns the dispersion measure grid of the mode.
func (o *Observation) DMs(mode Mode) Grid[float64] {
	return o.dms[modeIndex(mode)]
}

// NrDMs returns the number of trial DMs of the mode.
func (o *Observation) NrDMs(mode Mode) int {
	return o.dms[modeIndex(mode)].Count
}

// PaddedNrDMs returns NrDMs rounded up to padding.
func (o *Observation) PaddedNrDMs(mode Mode, padding int) int {
	return o.dms[modeIndex(mode)].PaddedCount(padding)
}

// Periods returns the folding period grid of the mode, in samples.
func (o *Observation) Periods(mode Mode) Grid[int] {
	return o.periods[modeIndex(mode)]
}

// NrPeriods returns the number of trial periods of the mode.
func (o *Observation) NrPeriods(mode Mode) int {
	return o.periods[modeIndex(mode)].Count
}

// PaddedNrPeriods returns NrPeriods rounded up to padding.
func (o *Observation) PaddedNrPeriods(mode Mode, padding int) int {
	return o.periods[modeIndex(mode)].PaddedCount(padding)
}

// NrBins returns the number of folding phase bins.
func (o *Observation) NrBins() int {
	return o.nrBins
}

// PaddedNrBins returns NrBins rounded up to padding.
func (o *Observation) PaddedNrBins(padding int) int {
	return Pad(o.nrBins, padding)
}

// SetNrBatches sets the number of batches.
func (o *Observation) SetNrBatches(batches int) {
	o.nrBatches = batches
}

// SetNrStations sets the number of stations.
func (o *Observation) SetNrStations(stations int) {
	o.nrStations = stations
}

// SetNrBeams sets the number of station beams.
func (o *Observation) SetNrBeams(beams int) {
	o.nrBeams = beams
}

// SetNrSynthesizedBeams sets the number of synthesized beams.
func (o *Observation) SetNrSynthesizedBeams(beams int) {
	o.nrSynthesizedBeams = beams
}

// SetSamplingTime sets the duration of one sample in seconds.
func (o *Observation) SetSamplingTime(seconds float64) {
	o.samplingTime = seconds
}

// SetNrZappedChannels sets the number of channels flagged as interference.
func (o *Observation) SetNrZappedChannels(zapped int) {
	o.nrZappedChannels = zapped
}

// SetNrBins sets the number of folding phase bins.
func (o *Observation) SetNrBins(bins int) {
	o.nrBins = bins
}

// SetNrDelayBatches sets the extra batch count of the mode.
func (o *Observation) SetNrDelayBatches(mode Mode, n int) {
	o.nrDelayBatches[modeIndex(mode)] = n
}

// SetNrSamplesPerBatch sets the batch size of the mode.
func (o *Observation) SetNrSamplesPerBatch(mode Mode, samples int) {
	o.nrSamplesPerBatch[modeIndex(mode)] = samples
}

// SetNrSamplesPerDispersedBatch sets the dispersed batch size of the mode.
func (o *Observation) SetNrSamplesPerDispersedBatch(mode Mode, samples int) {
	o.nrSamplesPerDispersedBatch[modeIndex(mode)] = samples
}

// SetFrequencyRange configures the channel grid and derives the subband grid.
//
// channels must be a positive multiple of subbands, baseFreq must be positive
// and bandwidth must be finite and not negative. The subband extremes are
// offset from the channel grid by half a subband (integer channel count).
// On error the observation is left unchanged.
func (o *Observation) SetFrequencyRange(subbands, channels int, baseFreq, bandwidth float64) error {
	if subbands <= 0 || channels <= 0 || channels%subbands != 0 {
		return fmt.Errorf("%w: %d channels, %d subbands", errs.ErrInvalidChannelLayout, channels, subbands)
	}

	if !(baseFreq > 0) || math.IsInf(baseFreq, 0) || !(bandwidth >= 0) || math.IsInf(bandwidth, 0) {
		return fmt.Errorf("%w: base frequency %g MHz, channel bandwidth %g MHz",
			errs.ErrInvalidChannelLayout, baseFreq, bandwidth)
	}

	perSubband := channels / subbands
	half := float64(perSubband / 2)

	o.nrSubbands = subbands
	o.nrChannels = channels
	o.nrChannelsPerSubband = perSubband
	o.minSubbandFreq = baseFreq + half*bandwidth
	o.maxSubbandFreq = baseFreq + (float64(channels)-half)*bandwidth
	o.subbandBandwidth = float64(perSubband) * bandwidth
	o.minChannelFreq = baseFreq
	o.maxChannelFreq = baseFreq + float64(channels-1)*bandwidth
	o.channelBandwidth = bandwidth

	return nil
}

// SetDMRange sets the DM grid of the mode.
func (o *Observation) SetDMRange(mode Mode, dms int, first, step float64) {
	o.dms[modeIndex(mode)] = newGrid(dms, first, step)
}

// SetPeriodRange sets the period grid of the mode, in samples.
func (o *Observation) SetPeriodRange(mode Mode, periods, first, step int) {
	o.periods[modeIndex(mode)] = newGrid(periods, first, step)
}
