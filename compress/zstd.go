package compress

// ZstdCompressor compresses payloads as single zstd frames.
//
// The backend is chosen at build time, see the package documentation.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a zstd codec with the default compression level.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
