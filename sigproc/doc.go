// Package sigproc reads and writes raw filterbank sample files.
//
// A sample file is an optional header followed by the batch stream: for each
// batch, for each time sample, one sample per channel from the highest channel
// down to channel 0. Samples narrower than a byte are packed LSB first and a
// batch always starts on a byte boundary. The batch stream may be stored as a
// single compressed frame (see WithCompression).
//
// Reader decodes a file into a batch.Set laid out for an observation; Writer
// performs the inverse. Both are configured with functional options:
//
//	r, err := sigproc.NewReader[uint8](obs, format.Bits2,
//	    sigproc.WithHeaderBytes(360),
//	    sigproc.WithLogger(logger),
//	)
//	set, err := r.ReadFile("obs.fil")
//
// A file that ends before the expected number of batches fails with
// errs.ErrTruncatedStream; no partial set is returned.
package sigproc
