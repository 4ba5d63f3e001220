// Package encoding converts sample batches between the file representation and
// the in-memory representation used by numeric pipelines.
//
// # Representations
//
// The file representation is a linear stream, time-major, with channels in
// descending order: for every time step the sample of the highest channel comes
// first. Word depths (8 bits and wider) store one sample per word of
// sizeof(T) bytes. Packed depths (1, 2 and 4 bits) store 8/bitDepth samples per
// byte, filling a byte from its least significant bits upward.
//
// The in-memory representation is channel-major with channels in ascending
// order. Channel c of a batch occupies the run buf[c*Stride : c*Stride+Stride],
// where Stride is the padded row length. For packed depths the element type is a
// byte and a row holds ceil(samples / (8/bitDepth)) bytes before padding; sample
// t of the row lives in byte t/(8/bitDepth) at bit offset (t mod 8/bitDepth)*bitDepth.
//
// # Rollover
//
// A packed file byte groups consecutive samples of one time step by descending
// channel. When the channel count is not a multiple of 8/bitDepth the byte runs
// out of channels before it runs out of slots; the remaining slots continue with
// the highest channel of the next time step. Byte boundaries therefore do not
// line up with time-step boundaries, and several file bytes may contribute to
// the same in-memory byte. Every packed sample is written with a
// read-modify-write through PutPacked for that reason.
//
// # Usage
//
//	layout, err := encoding.NewLayout[uint8](format.Bits2, 3, 1000, 32)
//	if err != nil {
//	    return err
//	}
//	codec, err := encoding.NewCodec[uint8](layout, endian.GetLittleEndianEngine())
//	if err != nil {
//	    return err
//	}
//
//	batch := make([]uint8, layout.Len())
//	if err := codec.Unpack(batch, stream[:layout.StreamBytes()]); err != nil {
//	    return err
//	}
//
// The same Layout and PutPacked primitive are used by the synthetic signal
// generators, so generated and ingested batches are laid out identically.
package encoding
