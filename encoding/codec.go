package encoding

import (
	"fmt"

	"github.com/arloliu/astrodata/endian"
	"github.com/arloliu/astrodata/errs"
)

// BatchDecoder decodes one batch of a file stream into a channel-major buffer.
type BatchDecoder[T Sample] interface {
	// Layout returns the geometry shared by the stream and the buffer.
	Layout() Layout

	// Unpack decodes the first Layout().StreamBytes() bytes of src into dst.
	//
	// dst must hold exactly Layout().Len() elements. Padding elements of dst
	// are not written. Returns errs.ErrBufferSize if dst has the wrong length
	// and errs.ErrTruncatedStream if src is too short.
	Unpack(dst []T, src []byte) error
}

// BatchEncoder encodes a channel-major buffer into one batch of a file stream.
type BatchEncoder[T Sample] interface {
	// Layout returns the geometry shared by the stream and the buffer.
	Layout() Layout

	// Pack appends the file encoding of src to dst and returns the extended slice.
	//
	// src must hold exactly Layout().Len() elements; padding elements are ignored.
	// For packed depths the unused high slots of a trailing partial byte are zero.
	Pack(dst []byte, src []T) ([]byte, error)
}

// Codec converts batches between the time-major file stream and the
// channel-major in-memory buffer for one Layout.
//
// A Codec holds no mutable state and is safe for concurrent use, provided that
// concurrent calls do not share a destination buffer.
type Codec[T Sample] struct {
	layout Layout
	engine endian.EndianEngine
}

var (
	_ BatchDecoder[uint8] = (*Codec[uint8])(nil)
	_ BatchEncoder[uint8] = (*Codec[uint8])(nil)
)

// NewCodec creates a codec for layout. engine sets the byte order of word
// samples and is ignored for packed depths; nil selects little-endian.
func NewCodec[T Sample](layout Layout, engine endian.EndianEngine) (*Codec[T], error) {
	if err := checkSampleType[T](layout.BitDepth); err != nil {
		return nil, err
	}

	if layout.Channels <= 0 || layout.Samples <= 0 || layout.Stride < layout.RowElements() {
		return nil, fmt.Errorf("%w: %d channels, %d samples, stride %d",
			errs.ErrInvalidGeometry, layout.Channels, layout.Samples, layout.Stride)
	}

	if engine == nil {
		engine = endian.GetLittleEndianEngine()
	}

	return &Codec[T]{layout: layout, engine: engine}, nil
}

// Layout returns the codec layout.
func (c *Codec[T]) Layout() Layout {
	return c.layout
}

// Unpack decodes one batch. See BatchDecoder.
func (c *Codec[T]) Unpack(dst []T, src []byte) error {
	if len(dst) != c.layout.Len() {
		return fmt.Errorf("%w: buffer holds %d elements, layout needs %d", errs.ErrBufferSize, len(dst), c.layout.Len())
	}

	need := c.layout.StreamBytes()
	if len(src) < need {
		return fmt.Errorf("%w: have %d bytes, need %d", errs.ErrTruncatedStream, len(src), need)
	}

	if c.layout.BitDepth.IsPacked() {
		c.unpackPacked(dst, src[:need])
	} else {
		c.unpackWords(dst, src[:need])
	}

	return nil
}

// Pack encodes one batch. See BatchEncoder.
func (c *Codec[T]) Pack(dst []byte, src []T) ([]byte, error) {
	if len(src) != c.layout.Len() {
		return dst, fmt.Errorf("%w: buffer holds %d elements, layout needs %d", errs.ErrBufferSize, len(src), c.layout.Len())
	}

	if c.layout.BitDepth.IsPacked() {
		return c.packPacked(dst, src), nil
	}

	return c.packWords(dst, src), nil
}

// unpackWords transposes time-major, channel-descending words into
// channel-major rows.
func (c *Codec[T]) unpackWords(dst []T, src []byte) {
	l := c.layout
	width := l.BitDepth.WordBytes()
	off := 0

	for sample := 0; sample < l.Samples; sample++ {
		for channel := l.Channels - 1; channel >= 0; channel-- {
			dst[channel*l.Stride+sample] = decodeWord[T](c.engine, src[off:off+width])
			off += width
		}
	}
}

func (c *Codec[T]) packWords(dst []byte, src []T) []byte {
	l := c.layout
	dst = growBytes(dst, l.StreamBytes())

	for sample := 0; sample < l.Samples; sample++ {
		for channel := l.Channels - 1; channel >= 0; channel-- {
			dst = appendWord(c.engine, dst, src[channel*l.Stride+sample])
		}
	}

	return dst
}

// unpackPacked walks the stream byte by byte with three cursors: the channel
// (descending, wrapping to the highest channel), the time sample (advanced on
// every wrap) and the slot within the source byte. Slots past the last real
// sample are padding and are skipped.
func (c *Codec[T]) unpackPacked(dst []T, src []byte) {
	l := c.layout
	depth := uint(l.BitDepth)
	perByte := l.BitDepth.SamplesPerByte()

	channel := l.Channels - 1
	sample := 0

	for _, b := range src {
		for slot := 0; slot < perByte && sample < l.Samples; slot++ {
			PutPacked(dst, l, channel, sample, extractBits(b, uint(slot)*depth, depth))

			channel--
			if channel < 0 {
				channel = l.Channels - 1
				sample++
			}
		}
	}
}

func (c *Codec[T]) packPacked(dst []byte, src []T) []byte {
	l := c.layout
	depth := uint(l.BitDepth)
	perByte := l.BitDepth.SamplesPerByte()
	dst = growBytes(dst, l.StreamBytes())

	var cur uint8
	slot := 0

	for sample := 0; sample < l.Samples; sample++ {
		for channel := l.Channels - 1; channel >= 0; channel-- {
			cur = insertBits(cur, Packed(src, l, channel, sample), uint(slot)*depth, depth)

			slot++
			if slot == perByte {
				dst = append(dst, cur)
				cur = 0
				slot = 0
			}
		}
	}

	if slot > 0 {
		dst = append(dst, cur)
	}

	return dst
}

// growBytes ensures dst has room for n more bytes without reallocating.
func growBytes(dst []byte, n int) []byte {
	if cap(dst)-len(dst) >= n {
		return dst
	}

	grown := make([]byte, len(dst), len(dst)+n)
	copy(grown, dst)

	return grown
}
