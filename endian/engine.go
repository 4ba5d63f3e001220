// Package endian provides byte order utilities for sample streams.
//
// Sample files store word samples (8 bits and wider) in a fixed byte order.
// The EndianEngine interface combines binary.ByteOrder and binary.AppendByteOrder
// so that codecs can both decode words in place and append encoded words to an
// output buffer with a single value.
//
// Most SIGPROC-style streams are little-endian:
//
//	engine := endian.GetLittleEndianEngine()
//
// Some telescope backends emit big-endian 32-bit words. Such streams are either
// decoded with the big-endian engine or normalized with SwapWords before any
// bit-depth unpacking takes place.
//
// All functions and methods in this package are safe for concurrent use.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness uses a fixed integer value to determine the host's byte order.
func CheckEndianness() binary.ByteOrder {
	// 0x0100 is 256. For a little-endian system, the LSB (0x00) is first.
	var i uint16 = 0x0100

	b := (*[2]byte)(unsafe.Pointer(&i))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNativeLittleEndian reports whether the host stores words little-endian.
func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// SwapWords reverses the byte order of every consecutive wordBytes-sized word
// in data, in place. A trailing partial word is left untouched.
// wordBytes of 0 or 1 is a no-op.
func SwapWords(data []byte, wordBytes int) {
	if wordBytes <= 1 {
		return
	}

	end := len(data) - len(data)%wordBytes
	for off := 0; off < end; off += wordBytes {
		word := data[off : off+wordBytes]
		for i, j := 0, wordBytes-1; i < j; i, j = i+1, j-1 {
			word[i], word[j] = word[j], word[i]
		}
	}
}
