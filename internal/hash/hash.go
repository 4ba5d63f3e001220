package hash

import "github.com/cespare/xxhash/v2"

// Sum64 computes the xxHash64 of data.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Digest accumulates an xxHash64 over several writes.
type Digest = xxhash.Digest

// New returns a Digest ready for writing.
func New() *Digest {
	return xxhash.New()
}
