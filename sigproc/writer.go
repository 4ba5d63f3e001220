package sigproc

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/arloliu/astrodata/batch"
	"github.com/arloliu/astrodata/compress"
	"github.com/arloliu/astrodata/encoding"
	"github.com/arloliu/astrodata/endian"
	"github.com/arloliu/astrodata/errs"
	"github.com/arloliu/astrodata/internal/options"
	"github.com/arloliu/astrodata/internal/pool"
)

// Writer encodes batch sets into sample files, the inverse of Reader.
//
// The header, compression, byte order and word swap options apply; the
// padding and first-batch options are ignored since the layout comes from
// the set being written.
type Writer[T encoding.Sample] struct {
	comp compress.Compressor
	cfg  *config
}

// NewWriter creates a writer.
func NewWriter[T encoding.Sample](opts ...Option) (*Writer[T], error) {
	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	comp, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, err
	}

	return &Writer[T]{comp: comp, cfg: cfg}, nil
}

// WriteFile creates or truncates the file at path and writes set to it.
func (w *Writer[T]) WriteFile(path string, set *batch.Set[T]) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", errs.ErrOpenFile, err)
	}

	log := w.cfg.logger.WithField("path", path)
	log.Debug("writing sample file")

	bw := bufio.NewWriter(f)
	if _, err := w.write(bw, set, log); err != nil {
		_ = f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}

	if err := bw.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: %s: %w", errs.ErrWriteFile, path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %s: %w", errs.ErrWriteFile, path, err)
	}

	return nil
}

// Encode writes the header and the encoded batch stream of set to dst and
// returns the number of bytes written.
func (w *Writer[T]) Encode(dst io.Writer, set *batch.Set[T]) (int64, error) {
	return w.write(dst, set, w.cfg.logger)
}

func (w *Writer[T]) write(dst io.Writer, set *batch.Set[T], log logrus.FieldLogger) (int64, error) {
	codec, err := encoding.NewCodec[T](set.Layout(), w.cfg.engine)
	if err != nil {
		return 0, err
	}

	payload := pool.GetStreamBuffer()
	defer pool.PutStreamBuffer(payload)

	batchBytes := set.Layout().StreamBytes()
	payload.Grow(set.Len() * batchBytes)

	for i, buf := range set.All() {
		if payload.B, err = codec.Pack(payload.B, buf); err != nil {
			return 0, err
		}

		log.WithFields(logrus.Fields{
			"batch":     i,
			"bytes":     batchBytes,
			"bit_depth": set.Layout().BitDepth.String(),
		}).Debug("batch encoded")
	}

	endian.SwapWords(payload.Bytes(), w.cfg.wordSwap)

	stream, err := w.comp.Compress(payload.Bytes())
	if err != nil {
		return 0, fmt.Errorf("%w: %s stream: %w", errs.ErrWriteFile, w.cfg.compression, err)
	}

	var written int64
	for _, part := range [][]byte{w.cfg.header, stream} {
		n, err := dst.Write(part)
		written += int64(n)
		if err != nil {
			return written, fmt.Errorf("%w: %w", errs.ErrWriteFile, err)
		}
	}

	log.WithField("bytes", written).Debug("sample stream written")

	return written, nil
}
