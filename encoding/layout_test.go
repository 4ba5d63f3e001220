package encoding

import (
	"testing"

	"github.com/arloliu/astrodata/errs"
	"github.com/arloliu/astrodata/format"
	"github.com/arloliu/astrodata/observation"
	"github.com/stretchr/testify/require"
)

func TestNewLayout_Geometry(t *testing.T) {
	tests := []struct {
		name         string
		depth        format.BitDepth
		channels     int
		samples      int
		padding      int
		rowElements  int
		stride       int
		streamBytes  int
		bufferLength int
	}{
		{"1bit unpadded", format.Bits1, 4, 20, 0, 3, 3, 10, 12},
		{"2bit padded", format.Bits2, 3, 2, 32, 1, 32, 2, 96},
		{"2bit odd samples", format.Bits2, 5, 7, 0, 2, 2, 9, 10},
		{"4bit padded", format.Bits4, 2, 1000, 64, 500, 512, 1000, 1024},
		{"8bit padded", format.Bits8, 16, 1000, 32, 1000, 1024, 16000, 16384},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := NewLayout[uint8](tt.depth, tt.channels, tt.samples, tt.padding)
			require.NoError(t, err)
			require.Equal(t, tt.rowElements, l.RowElements())
			require.Equal(t, tt.stride, l.Stride)
			require.Equal(t, tt.streamBytes, l.StreamBytes())
			require.Equal(t, tt.bufferLength, l.Len())
		})
	}
}

func TestNewLayout_WordPaddingInElements(t *testing.T) {
	// 32 bytes of padding are 8 float32 elements.
	l, err := NewLayout[float32](format.Bits32, 4, 1001, 32)
	require.NoError(t, err)
	require.Equal(t, 1008, l.Stride)
	require.Equal(t, 4*1001*4, l.StreamBytes())

	// Padding below one element disables padding.
	l, err = NewLayout[float64](format.Bits64, 2, 3, 4)
	require.NoError(t, err)
	require.Equal(t, 3, l.Stride)
}

func TestNewLayout_Errors(t *testing.T) {
	_, err := NewLayout[uint8](format.BitDepth(3), 4, 4, 0)
	require.ErrorIs(t, err, errs.ErrInvalidBitDepth)
	require.ErrorIs(t, err, errs.ErrConfiguration)

	_, err = NewLayout[uint8](format.BitDepth(0), 4, 4, 0)
	require.ErrorIs(t, err, errs.ErrInvalidBitDepth)

	_, err = NewLayout[uint16](format.Bits2, 4, 4, 0)
	require.ErrorIs(t, err, errs.ErrSampleTypeMismatch)

	_, err = NewLayout[float32](format.Bits16, 4, 4, 0)
	require.ErrorIs(t, err, errs.ErrSampleTypeMismatch)

	_, err = NewLayout[uint8](format.Bits8, 0, 4, 0)
	require.ErrorIs(t, err, errs.ErrInvalidGeometry)

	_, err = NewLayout[uint8](format.Bits8, 4, 0, 0)
	require.ErrorIs(t, err, errs.ErrInvalidGeometry)
}

func TestLayoutFor(t *testing.T) {
	obs := observation.New()
	_, err := LayoutFor[uint8](obs, format.Bits8, 0)
	require.ErrorIs(t, err, errs.ErrInvalidGeometry)

	obs.SetNrBatches(3)
	obs.SetNrSamplesPerBatch(observation.Standard, 100)
	require.NoError(t, obs.SetFrequencyRange(2, 8, 1400, 0.5))

	l, err := LayoutFor[uint8](obs, format.Bits4, 16)
	require.NoError(t, err)
	require.Equal(t, 8, l.Channels)
	require.Equal(t, 100, l.Samples)
	require.Equal(t, 64, l.Stride)

	l, err = LayoutFor[int16](obs, format.Bits16, 16)
	require.NoError(t, err)
	require.Equal(t, obs.PaddedNrSamplesPerBatch(observation.Standard, 8), l.Stride)
}

func TestLayout_Buffer_Invariant(t *testing.T) {
	// buffer length == channels * pad(samplesForDepth, padding)
	for _, depth := range []format.BitDepth{format.Bits1, format.Bits2, format.Bits4, format.Bits8} {
		for samples := 1; samples < 40; samples++ {
			l, err := NewLayout[uint8](depth, 3, samples, 16)
			require.NoError(t, err)

			perByte := depth.SamplesPerByte()
			rowBytes := (samples + perByte - 1) / perByte
			require.Equal(t, 3*observation.Pad(rowBytes, 16), l.Len())
		}
	}
}

func TestRow(t *testing.T) {
	l, err := NewLayout[uint8](format.Bits8, 3, 2, 4)
	require.NoError(t, err)

	buf := make([]uint8, l.Len())
	for i := range buf {
		buf[i] = uint8(i)
	}

	row := Row(buf, l, 1)
	require.Equal(t, []uint8{4, 5, 6, 7}, row)
	require.Equal(t, 4, cap(row))
	require.Equal(t, 9, l.Index(2, 1))
}

func TestElementPadding(t *testing.T) {
	require.Equal(t, 0, ElementPadding[uint8](0))
	require.Equal(t, 0, ElementPadding[uint8](-4))
	require.Equal(t, 32, ElementPadding[uint8](32))
	require.Equal(t, 16, ElementPadding[int16](32))
	require.Equal(t, 8, ElementPadding[float32](32))
	require.Equal(t, 4, ElementPadding[float64](32))
	require.Equal(t, 0, ElementPadding[float64](7))
	require.Equal(t, 8, SizeOf[uint64]())
}
