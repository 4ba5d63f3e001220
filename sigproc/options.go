package sigproc

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/arloliu/astrodata/endian"
	"github.com/arloliu/astrodata/errs"
	"github.com/arloliu/astrodata/format"
	"github.com/arloliu/astrodata/internal/options"
	"github.com/arloliu/astrodata/platform"
)

type config struct {
	headerBytes int64
	header      []byte
	firstBatch  int
	wordSwap    int
	engine      endian.EndianEngine
	compression format.CompressionType
	padding     int
	logger      logrus.FieldLogger
}

// Option configures a Reader or a Writer.
type Option = options.Option[*config]

func defaultConfig() *config {
	return &config{
		engine:      endian.GetLittleEndianEngine(),
		compression: format.CompressionNone,
		padding:     platform.DefaultPadding(),
		logger:      discardLogger(),
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}

// WithHeaderBytes makes the reader skip n bytes before the batch stream.
func WithHeaderBytes(n int64) Option {
	return options.New(func(c *config) error {
		if n < 0 {
			return fmt.Errorf("%w: negative header size %d", errs.ErrConfiguration, n)
		}
		c.headerBytes = n

		return nil
	})
}

// WithHeader makes the writer emit header before the batch stream.
// The header is never compressed.
func WithHeader(header []byte) Option {
	return options.NoError(func(c *config) {
		c.header = header
		c.headerBytes = int64(len(header))
	})
}

// WithFirstBatch makes the reader skip n whole batches of the stream, so that
// the first returned batch is batch n of the file.
func WithFirstBatch(n int) Option {
	return options.New(func(c *config) error {
		if n < 0 {
			return fmt.Errorf("%w: negative first batch %d", errs.ErrConfiguration, n)
		}
		c.firstBatch = n

		return nil
	})
}

// WithWordSwap reverses the bytes of every wordBytes-sized word of the batch
// stream before it is unpacked, or after it is packed when writing. Words are
// counted from the start of the stream following the header, so batches need
// not be a whole number of words. It converts streams of big-endian words,
// whatever the sample bit depth.
//
// wordBytes must be 0 (disabled), 2, 4 or 8.
func WithWordSwap(wordBytes int) Option {
	return options.New(func(c *config) error {
		switch wordBytes {
		case 0, 2, 4, 8:
			c.wordSwap = wordBytes
			return nil
		default:
			return fmt.Errorf("%w: word swap of %d bytes", errs.ErrConfiguration, wordBytes)
		}
	})
}

// WithByteOrder sets the byte order of word samples (16 bits and wider).
// Defaults to little-endian.
func WithByteOrder(engine endian.EndianEngine) Option {
	return options.NoError(func(c *config) {
		if engine != nil {
			c.engine = engine
		}
	})
}

// WithCompression sets the codec of the batch stream. Defaults to format.CompressionNone.
func WithCompression(ct format.CompressionType) Option {
	return options.New(func(c *config) error {
		if !ct.IsValid() {
			return fmt.Errorf("%w: %s", errs.ErrInvalidCompression, ct)
		}
		c.compression = ct

		return nil
	})
}

// WithPadding sets the row alignment, in bytes, of the batches returned by the
// reader. Defaults to platform.DefaultPadding().
func WithPadding(bytes int) Option {
	return options.NoError(func(c *config) {
		c.padding = bytes
	})
}

// WithLogger sets the logger receiving debug progress entries.
// By default nothing is logged.
func WithLogger(logger logrus.FieldLogger) Option {
	return options.NoError(func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	})
}
