// Package errs defines the error kinds returned by astrodata packages.
//
// Every specific sentinel wraps exactly one kind, so callers can match either
// the precise failure or its category:
//
//	if errors.Is(err, errs.ErrTruncatedStream) { ... }   // precise
//	if errors.Is(err, errs.ErrFormatViolation) { ... }   // category
//
// Programmer errors (out-of-range batch indices, buffers of the wrong length
// handed to low-level primitives) are not represented here; they panic.
package errs

import (
	"errors"
	"fmt"
)

// Error kinds.
var (
	// ErrConfiguration reports an invalid observation or component configuration.
	// The caller must fix the configuration before invoking the operation again.
	ErrConfiguration = errors.New("configuration error")

	// ErrIO reports a failure of the underlying file or stream.
	ErrIO = errors.New("i/o failure")

	// ErrFormatViolation reports data that does not match the expected layout,
	// most commonly a stream that ends before the expected volume of samples.
	ErrFormatViolation = errors.New("format violation")
)

// Configuration errors.
var (
	ErrInvalidBitDepth      = fmt.Errorf("%w: invalid bit depth", ErrConfiguration)
	ErrSampleTypeMismatch   = fmt.Errorf("%w: sample type does not match bit depth", ErrConfiguration)
	ErrInvalidChannelLayout = fmt.Errorf("%w: channels are not a multiple of subbands", ErrConfiguration)
	ErrInvalidGeometry      = fmt.Errorf("%w: invalid buffer geometry", ErrConfiguration)
	ErrInvalidPulse         = fmt.Errorf("%w: invalid pulse parameters", ErrConfiguration)
	ErrInvalidCompression   = fmt.Errorf("%w: invalid compression type", ErrConfiguration)
)

// Format violations.
var (
	ErrTruncatedStream = fmt.Errorf("%w: stream ended before expected data volume", ErrFormatViolation)
	ErrBufferSize      = fmt.Errorf("%w: buffer size does not match layout", ErrFormatViolation)
	ErrInvalidTable    = fmt.Errorf("%w: malformed table entry", ErrFormatViolation)
)

// I/O failures.
var (
	ErrOpenFile  = fmt.Errorf("%w: cannot open file", ErrIO)
	ErrReadFile  = fmt.Errorf("%w: cannot read file", ErrIO)
	ErrWriteFile = fmt.Errorf("%w: cannot write file", ErrIO)
)
