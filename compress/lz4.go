package compress

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"
)

const (
	// maxStreamSize bounds the decoded size of a compressed batch stream.
	maxStreamSize = 1 << 30
	// lz4MaxRatio is well above the largest expansion an LZ4 block can encode.
	lz4MaxRatio = 1024
)

var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor stores a batch stream as one LZ4 block.
//
// The frame starts with the decoded stream length as a uvarint. A frame whose
// remaining bytes equal that length holds the stream uncompressed, which is
// how noise-dominated streams that LZ4 cannot shrink are stored.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates an LZ4 codec.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress encodes the stream as a length-prefixed LZ4 block, or stores it
// as is when the block would not be smaller.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := binary.AppendUvarint(make([]byte, 0, binary.MaxVarintLen64+len(data)), uint64(len(data)))
	prefix := len(dst)

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	// A block must come out strictly smaller than the stream.
	block := dst[prefix : prefix+len(data)-1]
	n, err := lc.CompressBlock(data, block)
	if err != nil || n == 0 {
		return append(dst, data...), nil
	}

	return dst[:prefix+n], nil
}

// Decompress decodes a frame produced by Compress.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	size, prefix := binary.Uvarint(data)
	if prefix <= 0 {
		return nil, fmt.Errorf("lz4: invalid stream length prefix")
	}
	if size > maxStreamSize {
		return nil, fmt.Errorf("lz4: decoded stream of %d bytes exceeds %d", size, maxStreamSize)
	}

	body := data[prefix:]
	if uint64(len(body)) == size {
		return append([]byte(nil), body...), nil
	}

	if size > uint64(len(body))*lz4MaxRatio {
		return nil, fmt.Errorf("lz4: %d byte block cannot hold %d bytes", len(body), size)
	}

	buf := make([]byte, size)
	n, err := lz4.UncompressBlock(body, buf)
	if err != nil {
		return nil, err
	}
	if uint64(n) != size {
		return nil, fmt.Errorf("lz4: decoded %d of %d bytes", n, size)
	}

	return buf, nil
}
