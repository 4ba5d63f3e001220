package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"
)

// S2Compressor stores a batch stream as one S2 block.
//
// Baseline-dominated streams are encoded with the better match finder, which
// finds the long runs between pulses at a small cost in speed.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates an S2 codec.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress encodes the stream as a single S2 block.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	bound := s2.MaxEncodedLen(len(data))
	if bound < 0 {
		return nil, fmt.Errorf("s2: stream of %d bytes is too large", len(data))
	}

	return s2.EncodeBetter(make([]byte, bound), data), nil
}

// Decompress decodes a single S2 block. Blocks claiming more than
// maxStreamSize decoded bytes are rejected before any allocation.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	size, err := s2.DecodedLen(data)
	if err != nil {
		return nil, err
	}
	if size > maxStreamSize {
		return nil, fmt.Errorf("s2: decoded stream of %d bytes exceeds %d", size, maxStreamSize)
	}

	return s2.Decode(make([]byte, size), data)
}
