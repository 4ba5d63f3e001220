// Package observation models the parameters of a radio-telescope time-frequency
// observation and derives every buffer dimension from them.
//
// An Observation is configured once through its setters and is read-only
// afterwards; it is safe to share between goroutines that only read it.
//
// # Padding
//
// In-memory buffers are padded so that every channel row starts on a vector
// aligned boundary. Pad rounds a count up to a multiple of an alignment measured
// in elements of the target sample type; an alignment of 0 leaves the count
// unpadded. The Padded* getters apply Pad to the corresponding raw count.
//
// The rule every consumer follows: strides used for in-memory storage are
// padded, counts used to bound loops over real samples are not.
//
//	obs := observation.New()
//	obs.SetNrBatches(10)
//	obs.SetNrSamplesPerBatch(observation.Standard, 1000)
//	if err := obs.SetFrequencyRange(1, 64, 1400.0, 0.195); err != nil {
//	    return err
//	}
//	obs.SetDMRange(observation.Standard, 128, 0.0, 0.5)
//
//	stride := obs.PaddedNrSamplesPerBatch(observation.Standard, 32) // 1024
//
// # Modes
//
// Sample counts, delay batches and the search grids exist twice: once for the
// standard pipeline and once for the subbanding pipeline. Getters and setters
// of those values take a Mode.
package observation
