package encoding

import (
	"testing"

	"github.com/arloliu/astrodata/format"
	"github.com/stretchr/testify/require"
)

func TestBits(t *testing.T) {
	require.Equal(t, uint8(0b11), extractBits(0b1011_0110, 1, 2))
	require.Equal(t, uint8(0b1011), extractBits(0b1011_0110, 4, 4))
	require.Equal(t, uint8(1), extractBits(0x80, 7, 1))

	require.Equal(t, uint8(0b1011_1010), insertBits(0b1011_0110, 0b10, 2, 2))
	require.Equal(t, uint8(0xF0), insertBits(0x00, 0xFF, 4, 4))
	require.Equal(t, uint8(0x0F), insertBits(0xFF, 0x00, 4, 4))
}

func TestPutPacked_PreservesNeighbours(t *testing.T) {
	l, err := NewLayout[uint8](format.Bits2, 2, 8, 0)
	require.NoError(t, err)

	buf := make([]uint8, l.Len())
	for sample := range 8 {
		PutPacked(buf, l, 1, sample, 0b11)
	}
	require.Equal(t, []uint8{0, 0, 0xFF, 0xFF}, buf)

	PutPacked(buf, l, 1, 5, 0b01)
	require.Equal(t, []uint8{0, 0, 0xFF, 0xF7}, buf)
	require.Equal(t, uint8(1), Packed(buf, l, 1, 5))
	require.Equal(t, uint8(3), Packed(buf, l, 1, 4))
	require.Equal(t, uint8(3), Packed(buf, l, 1, 6))

	// Only the low BitDepth bits of value are stored.
	PutPacked(buf, l, 0, 0, 0xFE)
	require.Equal(t, uint8(0b10), buf[0])
}

func TestPutPacked_SignedBytes(t *testing.T) {
	l, err := NewLayout[int8](format.Bits4, 1, 2, 0)
	require.NoError(t, err)

	buf := make([]int8, l.Len())
	PutPacked(buf, l, 0, 1, 0xF)
	PutPacked(buf, l, 0, 0, 0x1)
	require.Equal(t, int8(-15), buf[0])
	require.Equal(t, uint8(0xF), Packed(buf, l, 0, 1))
}
