// Package batch holds the sample buffers of an observation.
//
// A Set owns one contiguous arena sliced into equally sized batch buffers. Each
// batch buffer is channel-major and padded as described by its encoding.Layout:
// channel c occupies the Stride elements starting at c*Stride.
//
// Batches never overlap, so distinct batches may be filled or read by separate
// goroutines. A Set performs no synchronization of its own.
package batch

import (
	"bytes"
	"fmt"
	"iter"
	"unsafe"

	"github.com/arloliu/astrodata/encoding"
	"github.com/arloliu/astrodata/endian"
	"github.com/arloliu/astrodata/errs"
	"github.com/arloliu/astrodata/internal/hash"
)

// Set is a fixed number of batch buffers sharing one layout and one backing array.
type Set[T encoding.Sample] struct {
	layout  encoding.Layout
	batches int
	arena   []T
}

// NewSet allocates batches zeroed buffers for layout.
//
// Returns errs.ErrInvalidGeometry if batches is not positive or layout
// describes an empty buffer.
func NewSet[T encoding.Sample](batches int, layout encoding.Layout) (*Set[T], error) {
	if batches <= 0 {
		return nil, fmt.Errorf("%w: %d batches", errs.ErrInvalidGeometry, batches)
	}

	if layout.Len() <= 0 || layout.Stride < layout.RowElements() {
		return nil, fmt.Errorf("%w: %d channels, stride %d", errs.ErrInvalidGeometry, layout.Channels, layout.Stride)
	}

	return &Set[T]{
		layout:  layout,
		batches: batches,
		arena:   make([]T, batches*layout.Len()),
	}, nil
}

// Len returns the number of batches.
func (s *Set[T]) Len() int {
	return s.batches
}

// Layout returns the layout shared by every batch.
func (s *Set[T]) Layout() encoding.Layout {
	return s.layout
}

// Batch returns the buffer of batch i. The returned slice aliases the set and
// has exactly Layout().Len() elements; its capacity ends at the batch boundary.
//
// Panics if i is out of range.
func (s *Set[T]) Batch(i int) []T {
	if i < 0 || i >= s.batches {
		panic(fmt.Sprintf("batch: index %d out of range [0, %d)", i, s.batches))
	}

	n := s.layout.Len()
	start := i * n

	return s.arena[start : start+n : start+n]
}

// Row returns the padded row of channel in batch i.
func (s *Set[T]) Row(i, channel int) []T {
	return encoding.Row(s.Batch(i), s.layout, channel)
}

// All iterates over the batches in order.
func (s *Set[T]) All() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		for i := 0; i < s.batches; i++ {
			if !yield(i, s.Batch(i)) {
				return
			}
		}
	}
}

// Fill sets every element of every batch, padding included, to v.
func (s *Set[T]) Fill(v T) {
	for i := range s.arena {
		s.arena[i] = v
	}
}

// Bytes returns the arena reinterpreted as bytes in native byte order.
// The slice aliases the set.
func (s *Set[T]) Bytes() []byte {
	return asBytes(s.arena)
}

// Checksum returns the xxHash64 of the whole arena, padding included, with
// samples taken in little-endian byte order.
//
// Two sets built with the same layout and filled with the same samples produce
// the same checksum on every platform.
func (s *Set[T]) Checksum() uint64 {
	d := hash.New()
	for _, b := range s.All() {
		writeLittleEndian(d, b)
	}

	return d.Sum64()
}

// BatchChecksum returns the xxHash64 of batch i, computed like Checksum.
func (s *Set[T]) BatchChecksum(i int) uint64 {
	d := hash.New()
	writeLittleEndian(d, s.Batch(i))

	return d.Sum64()
}

func writeLittleEndian[T encoding.Sample](d *hash.Digest, b []T) {
	raw := asBytes(b)
	size := encoding.SizeOf[T]()
	if size > 1 && !endian.IsNativeLittleEndian() {
		raw = bytes.Clone(raw)
		endian.SwapWords(raw, size)
	}

	_, _ = d.Write(raw)
}

func asBytes[T encoding.Sample](b []T) []byte {
	if len(b) == 0 {
		return nil
	}

	return unsafe.Slice((*byte)(unsafe.Pointer(&b[0])), len(b)*encoding.SizeOf[T]())
}
