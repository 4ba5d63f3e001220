// Package compress provides the payload codecs of compressed sample files.
//
// A compressed sample file stores its header uncompressed and the whole
// batch stream as a single compressed frame. The codec is selected by
// format.CompressionType:
//   - None: the payload is stored as is
//   - Zstd: best ratio, used for archived observations
//   - S2: fast with a moderate ratio
//   - LZ4: fastest decompression, framed with the decoded stream length
//
// Low bit-depth streams of baseline or noise-floor samples compress very well
// with any of the three algorithms; 32-bit floating point streams much less so.
//
// # Zstd backends
//
// By default Zstd is served by the pure Go github.com/klauspost/compress/zstd.
// Building with cgo enabled and the gozstd tag switches to the libzstd
// binding github.com/valyala/gozstd:
//
//	go build -tags gozstd ./...
//
// Both backends produce standard zstd frames and can read each other's output.
//
// # Thread Safety
//
// All codecs are stateless values and safe for concurrent use. Encoders and
// decoders are pooled internally.
package compress
