package observation

import "math"

// DispersionConstant is the cold-plasma dispersion constant in MHz² pc⁻¹ cm³ s.
const DispersionConstant = 4148.808

// DispersionDelay returns the arrival delay, in seconds, of a signal at freq
// (MHz) relative to the highest channel frequency for the given DM.
func (o *Observation) DispersionDelay(freq, dm float64) float64 {
	inverseHighFreq := 1.0 / (o.maxChannelFreq * o.maxChannelFreq)
	inverseFreq := 1.0 / (freq * freq)

	return DispersionConstant * dm * (inverseFreq - inverseHighFreq)
}

// ChannelShift returns the dispersion delay of channel expressed in samples.
//
// The delay is scaled by the number of samples per batch, i.e. a batch is
// treated as one second of data, and truncated toward zero. The highest
// channel always has a shift of 0. Shifts too large for an int saturate at
// math.MaxInt; a negative or undefined delay yields 0.
func (o *Observation) ChannelShift(channel int, dm float64) int {
	delay := o.DispersionDelay(o.ChannelFreq(channel), dm)
	shift := delay * float64(o.nrSamplesPerBatch[0])

	switch {
	case !(shift > 0):
		return 0
	case shift >= math.MaxInt:
		return math.MaxInt
	default:
		return int(shift)
	}
}

// MaxShift returns the largest channel shift for dm, which is the shift of
// the lowest channel.
func (o *Observation) MaxShift(dm float64) int {
	if o.nrChannels == 0 {
		return 0
	}

	return o.ChannelShift(0, dm)
}
