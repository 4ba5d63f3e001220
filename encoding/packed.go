package encoding

// extractBits returns the depth-bit field of b starting at bit first.
func extractBits(b uint8, first, depth uint) uint8 {
	return (b >> first) & (uint8(1<<depth) - 1)
}

// insertBits replaces the depth-bit field of b starting at bit first with the
// low bits of value.
func insertBits(b, value uint8, first, depth uint) uint8 {
	mask := (uint8(1<<depth) - 1) << first
	return (b &^ mask) | ((value << first) & mask)
}

// packedPos returns the buffer index and bit offset of (channel, sample).
func packedPos(l Layout, channel, sample int) (int, uint) {
	perByte := l.BitDepth.SamplesPerByte()
	idx := channel*l.Stride + sample/perByte
	first := uint(sample%perByte) * uint(l.BitDepth)

	return idx, first
}

// Packed returns the packed sample of channel at time sample in a channel-major
// buffer laid out by l. l must use a packed bit depth.
func Packed[T Sample](buf []T, l Layout, channel, sample int) uint8 {
	idx, first := packedPos(l, channel, sample)

	return extractBits(uint8(buf[idx]), first, uint(l.BitDepth))
}

// PutPacked stores the low BitDepth bits of value as the sample of channel at
// time sample, leaving the other samples sharing the byte untouched.
// l must use a packed bit depth.
func PutPacked[T Sample](buf []T, l Layout, channel, sample int, value uint8) {
	idx, first := packedPos(l, channel, sample)
	buf[idx] = T(insertBits(uint8(buf[idx]), value, first, uint(l.BitDepth)))
}
