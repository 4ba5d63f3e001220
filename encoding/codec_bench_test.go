package encoding

import (
	"fmt"
	"testing"

	"github.com/arloliu/astrodata/endian"
	"github.com/arloliu/astrodata/format"
)

// Benchmark geometries representing typical receiver configurations
var benchmarkGeometries = []struct {
	channels int
	samples  int
}{
	{channels: 64, samples: 1024},
	{channels: 1024, samples: 4096},
}

func benchmarkUnpack[T Sample](b *testing.B, depth format.BitDepth) {
	for _, g := range benchmarkGeometries {
		b.Run(fmt.Sprintf("%s/%dx%d", depth, g.channels, g.samples), func(b *testing.B) {
			l, err := NewLayout[T](depth, g.channels, g.samples, 64)
			if err != nil {
				b.Fatal(err)
			}

			c, err := NewCodec[T](l, endian.GetLittleEndianEngine())
			if err != nil {
				b.Fatal(err)
			}

			src := make([]byte, l.StreamBytes())
			for i := range src {
				src[i] = byte(i * 31)
			}
			dst := make([]T, l.Len())

			b.SetBytes(int64(len(src)))
			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				_ = c.Unpack(dst, src)
			}
		})
	}
}

func BenchmarkCodecUnpack(b *testing.B) {
	benchmarkUnpack[uint8](b, format.Bits2)
	benchmarkUnpack[uint8](b, format.Bits4)
	benchmarkUnpack[uint8](b, format.Bits8)
	benchmarkUnpack[uint16](b, format.Bits16)
	benchmarkUnpack[float32](b, format.Bits32)
}

func BenchmarkCodecPack(b *testing.B) {
	for _, depth := range []format.BitDepth{format.Bits2, format.Bits8} {
		l, err := NewLayout[uint8](depth, 256, 2048, 64)
		if err != nil {
			b.Fatal(err)
		}

		c, err := NewCodec[uint8](l, nil)
		if err != nil {
			b.Fatal(err)
		}

		src := make([]uint8, l.Len())
		for i := range src {
			src[i] = uint8(i)
		}
		dst := make([]byte, 0, l.StreamBytes())

		b.Run(depth.String(), func(b *testing.B) {
			b.SetBytes(int64(l.StreamBytes()))
			b.ReportAllocs()

			for b.Loop() {
				dst, _ = c.Pack(dst[:0], src)
			}
		})
	}
}
