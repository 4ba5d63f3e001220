// Package platform derives memory padding defaults from the host CPU.
//
// Sample buffers are padded to the width of the widest vector register so
// that every channel row starts on an aligned boundary for SIMD consumers.
package platform

import "golang.org/x/sys/cpu"

// Vector register widths in bytes.
const (
	WidthScalar = 16 // WidthScalar is used when no wider unit is detected.
	WidthAVX    = 32 // WidthAVX covers AVX and AVX2 (256-bit).
	WidthAVX512 = 64 // WidthAVX512 covers AVX-512F (512-bit).
	WidthNEON   = 16 // WidthNEON covers ARM64 ASIMD (128-bit).
)

var vectorWidth = detectVectorWidth()

func detectVectorWidth() int {
	switch {
	case cpu.X86.HasAVX512F:
		return WidthAVX512
	case cpu.X86.HasAVX2, cpu.X86.HasAVX:
		return WidthAVX
	case cpu.ARM64.HasASIMD:
		return WidthNEON
	default:
		return WidthScalar
	}
}

// VectorWidth returns the width, in bytes, of the widest vector unit of the host.
func VectorWidth() int {
	return vectorWidth
}

// DefaultPadding returns the padding, in bytes, used when the caller does not
// supply one. It equals VectorWidth.
func DefaultPadding() int {
	return vectorWidth
}
