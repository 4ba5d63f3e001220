package encoding

import (
	"fmt"

	"github.com/arloliu/astrodata/errs"
	"github.com/arloliu/astrodata/format"
	"github.com/arloliu/astrodata/observation"
)

// Layout describes the geometry of one channel-major batch buffer and of the
// matching file stream.
type Layout struct {
	// BitDepth is the number of bits per sample in the file stream.
	BitDepth format.BitDepth
	// Channels is the number of channel rows.
	Channels int
	// Samples is the number of real time samples per channel.
	Samples int
	// Stride is the padded length of a channel row, in elements.
	Stride int
}

// NewLayout validates the bit depth against the sample type T and computes the
// padded row stride. paddingBytes is the row alignment in bytes; 0 disables
// padding.
//
// Word depths require 8*sizeof(T) == bitDepth. Packed depths require a
// one-byte T.
func NewLayout[T Sample](depth format.BitDepth, channels, samples, paddingBytes int) (Layout, error) {
	if err := checkSampleType[T](depth); err != nil {
		return Layout{}, err
	}

	if channels <= 0 || samples <= 0 {
		return Layout{}, fmt.Errorf("%w: %d channels, %d samples", errs.ErrInvalidGeometry, channels, samples)
	}

	l := Layout{BitDepth: depth, Channels: channels, Samples: samples}
	l.Stride = observation.Pad(l.RowElements(), ElementPadding[T](paddingBytes))

	return l, nil
}

// LayoutFor returns the batch layout of obs for the given bit depth.
func LayoutFor[T Sample](obs *observation.Observation, depth format.BitDepth, paddingBytes int) (Layout, error) {
	if err := obs.Validate(); err != nil {
		return Layout{}, err
	}

	return NewLayout[T](depth, obs.NrChannels(), obs.NrSamplesPerBatch(observation.Standard), paddingBytes)
}

func checkSampleType[T Sample](depth format.BitDepth) error {
	if !depth.IsValid() {
		return fmt.Errorf("%w: %d", errs.ErrInvalidBitDepth, uint8(depth))
	}

	size := SizeOf[T]()
	if depth.IsPacked() {
		if size != 1 {
			return fmt.Errorf("%w: %s samples need a one-byte type, got %d bytes", errs.ErrSampleTypeMismatch, depth, size)
		}

		return nil
	}

	if size*8 != int(depth) {
		return fmt.Errorf("%w: %s samples need a %d-byte type, got %d bytes",
			errs.ErrSampleTypeMismatch, depth, depth.WordBytes(), size)
	}

	return nil
}

// RowElements returns the unpadded number of elements of a channel row:
// Samples for word depths, ceil(Samples / (8/BitDepth)) bytes for packed depths.
func (l Layout) RowElements() int {
	perByte := l.BitDepth.SamplesPerByte()

	return (l.Samples + perByte - 1) / perByte
}

// Len returns the number of elements of a batch buffer.
func (l Layout) Len() int {
	return l.Channels * l.Stride
}

// StreamBytes returns the number of file bytes that encode one batch.
func (l Layout) StreamBytes() int {
	if l.BitDepth.IsPacked() {
		bits := l.Channels * l.Samples * int(l.BitDepth)
		return (bits + 7) / 8
	}

	return l.Channels * l.Samples * l.BitDepth.WordBytes()
}

// Index returns the buffer index of (channel, sample) for word depths.
func (l Layout) Index(channel, sample int) int {
	return channel*l.Stride + sample
}

// Row returns the padded row of channel within buf.
func Row[T Sample](buf []T, l Layout, channel int) []T {
	start := channel * l.Stride
	return buf[start : start+l.Stride : start+l.Stride]
}
