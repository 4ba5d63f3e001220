package encoding

import (
	"unsafe"

	"github.com/arloliu/astrodata/endian"
)

// Sample is the set of scalar types a batch buffer can hold.
type Sample interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64 | ~float32 | ~float64
}

// SizeOf returns the size in bytes of one element of T.
func SizeOf[T Sample]() int {
	var v T
	return int(unsafe.Sizeof(v))
}

// ElementPadding converts a padding expressed in bytes into a padding expressed
// in elements of T. Paddings smaller than one element yield 0, which disables
// padding.
func ElementPadding[T Sample](paddingBytes int) int {
	if paddingBytes <= 0 {
		return 0
	}

	return paddingBytes / SizeOf[T]()
}

// decodeWord reinterprets the first sizeof(T) bytes of b, in engine byte order, as a T.
func decodeWord[T Sample](order endian.EndianEngine, b []byte) T {
	var v T

	switch unsafe.Sizeof(v) {
	case 1:
		*(*uint8)(unsafe.Pointer(&v)) = b[0]
	case 2:
		*(*uint16)(unsafe.Pointer(&v)) = order.Uint16(b)
	case 4:
		*(*uint32)(unsafe.Pointer(&v)) = order.Uint32(b)
	case 8:
		*(*uint64)(unsafe.Pointer(&v)) = order.Uint64(b)
	}

	return v
}

// appendWord appends the sizeof(T) bytes of v, in engine byte order, to dst.
func appendWord[T Sample](order endian.EndianEngine, dst []byte, v T) []byte {
	switch unsafe.Sizeof(v) {
	case 1:
		return append(dst, *(*uint8)(unsafe.Pointer(&v)))
	case 2:
		return order.AppendUint16(dst, *(*uint16)(unsafe.Pointer(&v)))
	case 4:
		return order.AppendUint32(dst, *(*uint32)(unsafe.Pointer(&v)))
	default:
		return order.AppendUint64(dst, *(*uint64)(unsafe.Pointer(&v)))
	}
}
