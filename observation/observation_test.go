package observation

import (
	"math"
	"testing"

	"github.com/arloliu/astrodata/errs"
	"github.com/stretchr/testify/require"
)

func TestPad(t *testing.T) {
	tests := []struct {
		n, alignment, want int
	}{
		{0, 0, 0},
		{7, 0, 7},
		{0, 8, 0},
		{1, 8, 8},
		{8, 8, 8},
		{9, 8, 16},
		{1000, 32, 1024},
		{1024, 32, 1024},
		{3, 1, 3},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, Pad(tt.n, tt.alignment), "Pad(%d, %d)", tt.n, tt.alignment)
	}
}

func TestPad_Invariants(t *testing.T) {
	for n := 0; n < 300; n++ {
		require.Equal(t, n, Pad(n, 0))

		for alignment := 1; alignment <= 64; alignment++ {
			padded := Pad(n, alignment)
			require.Zero(t, padded%alignment, "Pad(%d, %d)=%d", n, alignment, padded)
			require.GreaterOrEqual(t, padded, n)
			require.Less(t, padded-n, alignment)
		}
	}
}

func TestGrid_DMRange(t *testing.T) {
	obs := New()
	obs.SetDMRange(Standard, 5, 0, 2)

	dms := obs.DMs(Standard)
	require.Equal(t, 5, dms.Count)
	require.Equal(t, 5, obs.NrDMs(Standard))
	require.InDelta(t, 0.0, dms.First, 1e-9)
	require.InDelta(t, 8.0, dms.Last, 1e-9)
	require.InDelta(t, 2.0, dms.Step, 1e-9)
	require.Equal(t, []float64{0, 2, 4, 6, 8}, dms.Values())

	// The subbanding grid is independent.
	require.Zero(t, obs.NrDMs(Subbanding))
	obs.SetDMRange(Subbanding, 3, 10, 0.5)
	require.InDelta(t, 11.0, obs.DMs(Subbanding).Last, 1e-9)
	require.InDelta(t, 8.0, obs.DMs(Standard).Last, 1e-9)

	// Resetting recomputes the last value.
	obs.SetDMRange(Standard, 2, 1, 3)
	require.InDelta(t, 4.0, obs.DMs(Standard).Last, 1e-9)
	require.Equal(t, 8, obs.PaddedNrDMs(Standard, 8))
}

func TestGrid_PeriodRange(t *testing.T) {
	obs := New()
	obs.SetPeriodRange(Standard, 4, 10, 5)

	periods := obs.Periods(Standard)
	require.Equal(t, 4, obs.NrPeriods(Standard))
	require.Equal(t, 10, periods.First)
	require.Equal(t, 25, periods.Last)
	require.Equal(t, 5, periods.Step)
	require.Equal(t, []int{10, 15, 20, 25}, periods.Values())
	require.Equal(t, 16, obs.PaddedNrPeriods(Standard, 16))
}

func TestGrid_SingleAndEmpty(t *testing.T) {
	obs := New()
	obs.SetDMRange(Standard, 1, 12.5, 3)
	require.InDelta(t, 12.5, obs.DMs(Standard).Last, 1e-9)

	obs.SetDMRange(Standard, 0, 12.5, 3)
	require.Empty(t, obs.DMs(Standard).Values())
	require.InDelta(t, 12.5, obs.DMs(Standard).Last, 1e-9)
}

func TestSetFrequencyRange(t *testing.T) {
	obs := New()
	require.NoError(t, obs.SetFrequencyRange(4, 32, 1400.0, 0.5))

	require.Equal(t, 4, obs.NrSubbands())
	require.Equal(t, 32, obs.NrChannels())
	require.Equal(t, 8, obs.NrChannelsPerSubband())
	require.InDelta(t, 1400.0, obs.MinFreq(), 1e-9)
	require.InDelta(t, 1415.5, obs.MaxFreq(), 1e-9)
	require.InDelta(t, 0.5, obs.ChannelBandwidth(), 1e-9)
	require.InDelta(t, 4.0, obs.SubbandBandwidth(), 1e-9)
	require.InDelta(t, 1402.0, obs.SubbandMinFreq(), 1e-9)
	require.InDelta(t, 1414.0, obs.SubbandMaxFreq(), 1e-9)
	require.InDelta(t, 1401.5, obs.ChannelFreq(3), 1e-9)
	require.Equal(t, 64, obs.PaddedNrChannels(64))
	require.Equal(t, 8, obs.PaddedNrSubbands(8))
}

func TestSetFrequencyRange_InvalidLayout(t *testing.T) {
	obs := New()
	require.NoError(t, obs.SetFrequencyRange(2, 16, 100, 1))

	tests := []struct {
		name               string
		subbands, channels int
	}{
		{"not divisible", 3, 16},
		{"zero subbands", 0, 16},
		{"zero channels", 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := obs.SetFrequencyRange(tt.subbands, tt.channels, 200, 2)
			require.ErrorIs(t, err, errs.ErrInvalidChannelLayout)
			require.ErrorIs(t, err, errs.ErrConfiguration)

			// Unchanged on failure.
			require.Equal(t, 16, obs.NrChannels())
			require.Equal(t, 2, obs.NrSubbands())
			require.InDelta(t, 100.0, obs.MinFreq(), 1e-9)
		})
	}
}

func TestSetFrequencyRange_InvalidFrequencies(t *testing.T) {
	obs := New()
	require.NoError(t, obs.SetFrequencyRange(1, 8, 100, 1))

	tests := []struct {
		name                string
		baseFreq, bandwidth float64
	}{
		{"zero base", 0, 1},
		{"negative base", -50, 1},
		{"NaN base", math.NaN(), 1},
		{"infinite base", math.Inf(1), 1},
		{"negative bandwidth", 100, -1},
		{"NaN bandwidth", 100, math.NaN()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := obs.SetFrequencyRange(1, 8, tt.baseFreq, tt.bandwidth)
			require.ErrorIs(t, err, errs.ErrInvalidChannelLayout)
			require.InDelta(t, 100.0, obs.MinFreq(), 1e-9)
		})
	}
}

func TestModeValues(t *testing.T) {
	obs := New()
	obs.SetNrSamplesPerBatch(Standard, 1000)
	obs.SetNrSamplesPerBatch(Subbanding, 250)
	obs.SetNrSamplesPerDispersedBatch(Standard, 1200)
	obs.SetNrSamplesPerDispersedBatch(Subbanding, 300)
	obs.SetNrDelayBatches(Standard, 2)
	obs.SetNrDelayBatches(Subbanding, 1)

	require.Equal(t, 1000, obs.NrSamplesPerBatch(Standard))
	require.Equal(t, 250, obs.NrSamplesPerBatch(Subbanding))
	require.Equal(t, 1024, obs.PaddedNrSamplesPerBatch(Standard, 32))
	require.Equal(t, 256, obs.PaddedNrSamplesPerBatch(Subbanding, 32))
	require.Equal(t, 1000, obs.PaddedNrSamplesPerBatch(Standard, 0))
	require.Equal(t, 1200, obs.NrSamplesPerDispersedBatch(Standard))
	require.Equal(t, 300, obs.NrSamplesPerDispersedBatch(Subbanding))
	require.Equal(t, 1216, obs.PaddedNrSamplesPerDispersedBatch(Standard, 64))
	require.Equal(t, 2, obs.NrDelayBatches(Standard))
	require.Equal(t, 1, obs.NrDelayBatches(Subbanding))
	require.Equal(t, "Subbanding", Subbanding.String())
}

func TestGeneralCounts(t *testing.T) {
	obs := New()
	obs.SetNrBatches(10)
	obs.SetNrStations(5)
	obs.SetNrBeams(3)
	obs.SetNrSynthesizedBeams(12)
	obs.SetSamplingTime(0.000064)
	obs.SetNrZappedChannels(7)
	obs.SetNrBins(33)

	require.Equal(t, 10, obs.NrBatches())
	require.Equal(t, 5, obs.NrStations())
	require.Equal(t, 8, obs.PaddedNrStations(4))
	require.Equal(t, 3, obs.NrBeams())
	require.Equal(t, 4, obs.PaddedNrBeams(4))
	require.Equal(t, 12, obs.NrSynthesizedBeams())
	require.Equal(t, 16, obs.PaddedNrSynthesizedBeams(16))
	require.InDelta(t, 0.000064, obs.SamplingTime(), 1e-12)
	require.Equal(t, 7, obs.NrZappedChannels())
	require.Equal(t, 33, obs.NrBins())
	require.Equal(t, 64, obs.PaddedNrBins(32))
}

func TestValidate(t *testing.T) {
	obs := New()
	require.ErrorIs(t, obs.Validate(), errs.ErrInvalidGeometry)

	obs.SetNrBatches(1)
	require.ErrorIs(t, obs.Validate(), errs.ErrInvalidGeometry)

	require.NoError(t, obs.SetFrequencyRange(1, 4, 100, 1))
	require.ErrorIs(t, obs.Validate(), errs.ErrInvalidGeometry)

	obs.SetNrSamplesPerBatch(Standard, 16)
	require.NoError(t, obs.Validate())
}
