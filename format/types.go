package format

import "fmt"

type (
	BitDepth        uint8
	CompressionType uint8
)

const (
	Bits1  BitDepth = 1  // Bits1 packs eight samples per byte.
	Bits2  BitDepth = 2  // Bits2 packs four samples per byte.
	Bits4  BitDepth = 4  // Bits4 packs two samples per byte.
	Bits8  BitDepth = 8  // Bits8 stores one sample per byte.
	Bits16 BitDepth = 16 // Bits16 stores one sample per 16-bit word.
	Bits32 BitDepth = 32 // Bits32 stores one sample per 32-bit word.
	Bits64 BitDepth = 64 // Bits64 stores one sample per 64-bit word.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// IsValid reports whether d is a supported bit depth: a divisor of 8 for packed
// samples, or a power-of-two multiple of 8 for word samples.
func (d BitDepth) IsValid() bool {
	switch d {
	case Bits1, Bits2, Bits4, Bits8, Bits16, Bits32, Bits64:
		return true
	default:
		return false
	}
}

// IsPacked reports whether several samples share a single byte.
func (d BitDepth) IsPacked() bool {
	return d < Bits8
}

// SamplesPerByte returns how many samples one byte holds.
// It is 1 for word depths and 8/d for packed depths.
func (d BitDepth) SamplesPerByte() int {
	if d == 0 || !d.IsPacked() {
		return 1
	}

	return 8 / int(d)
}

// Mask returns the low-order bit mask selecting one packed sample.
// Word depths return 0xFF.
func (d BitDepth) Mask() uint8 {
	if !d.IsPacked() {
		return 0xFF
	}

	return uint8(1<<d) - 1
}

// WordBytes returns the number of bytes of one stored sample for word depths,
// and 1 for packed depths.
func (d BitDepth) WordBytes() int {
	if d.IsPacked() {
		return 1
	}

	return int(d) / 8
}

func (d BitDepth) String() string {
	if !d.IsValid() {
		return fmt.Sprintf("Invalid(%d)", uint8(d))
	}

	return fmt.Sprintf("%dbit", uint8(d))
}

// IsValid reports whether c names a known compression algorithm.
func (c CompressionType) IsValid() bool {
	switch c {
	case CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4:
		return true
	default:
		return false
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
