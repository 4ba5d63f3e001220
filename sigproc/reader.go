package sigproc

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/arloliu/astrodata/batch"
	"github.com/arloliu/astrodata/compress"
	"github.com/arloliu/astrodata/encoding"
	"github.com/arloliu/astrodata/errs"
	"github.com/arloliu/astrodata/format"
	"github.com/arloliu/astrodata/internal/options"
	"github.com/arloliu/astrodata/internal/pool"
	"github.com/arloliu/astrodata/observation"
)

const readBufferSize = 1 << 20

// Reader decodes sample files into batch sets.
//
// A Reader holds no per-read state and may be shared by concurrent readers of
// different files.
type Reader[T encoding.Sample] struct {
	nrBatches int
	codec     *encoding.Codec[T]
	decomp    compress.Decompressor
	cfg       *config
}

// NewReader creates a reader producing obs.NrBatches() batches of samples
// stored at depth.
func NewReader[T encoding.Sample](obs *observation.Observation, depth format.BitDepth, opts ...Option) (*Reader[T], error) {
	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	layout, err := encoding.LayoutFor[T](obs, depth, cfg.padding)
	if err != nil {
		return nil, err
	}

	codec, err := encoding.NewCodec[T](layout, cfg.engine)
	if err != nil {
		return nil, err
	}

	decomp, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, err
	}

	return &Reader[T]{
		nrBatches: obs.NrBatches(),
		codec:     codec,
		decomp:    decomp,
		cfg:       cfg,
	}, nil
}

// Layout returns the layout of the batches produced by the reader.
func (r *Reader[T]) Layout() encoding.Layout {
	return r.codec.Layout()
}

// ReadFile reads the sample file at path.
func (r *Reader[T]) ReadFile(path string) (*batch.Set[T], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrOpenFile, err)
	}
	defer f.Close()

	log := r.cfg.logger.WithField("path", path)
	log.Debug("reading sample file")

	set, err := r.read(bufio.NewReaderSize(f, readBufferSize), log)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return set, nil
}

// Decode reads a sample stream from src.
func (r *Reader[T]) Decode(src io.Reader) (*batch.Set[T], error) {
	return r.read(src, r.cfg.logger)
}

func (r *Reader[T]) read(src io.Reader, log logrus.FieldLogger) (*batch.Set[T], error) {
	layout := r.codec.Layout()
	batchBytes := layout.StreamBytes()

	if err := skip(src, r.cfg.headerBytes, "header"); err != nil {
		return nil, err
	}

	if r.cfg.compression != format.CompressionNone {
		payload, err := r.decompress(src)
		if err != nil {
			return nil, err
		}
		log.WithField("bytes", len(payload)).Debug("decompressed batch stream")
		src = bytes.NewReader(payload)
	}

	if r.cfg.wordSwap > 1 {
		src = newSwapReader(src, r.cfg.wordSwap)
	}

	if err := skip(src, int64(r.cfg.firstBatch)*int64(batchBytes), "skipped batches"); err != nil {
		return nil, err
	}

	set, err := batch.NewSet[T](r.nrBatches, layout)
	if err != nil {
		return nil, err
	}

	staging := pool.GetStreamBuffer()
	defer pool.PutStreamBuffer(staging)
	staging.Resize(batchBytes)
	buf := staging.Bytes()

	for i, dst := range set.All() {
		if _, err := io.ReadFull(src, buf); err != nil {
			return nil, streamError(err, fmt.Sprintf("batch %d of %d", i+r.cfg.firstBatch, r.nrBatches+r.cfg.firstBatch))
		}

		if err := r.codec.Unpack(dst, buf); err != nil {
			return nil, err
		}

		log.WithFields(logrus.Fields{
			"batch":     i,
			"bytes":     batchBytes,
			"bit_depth": layout.BitDepth.String(),
		}).Debug("batch decoded")
	}

	return set, nil
}

func (r *Reader[T]) decompress(src io.Reader) ([]byte, error) {
	compressed := pool.GetStreamBuffer()
	defer pool.PutStreamBuffer(compressed)

	if _, err := io.Copy(compressed, src); err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrReadFile, err)
	}

	payload, err := r.decomp.Decompress(compressed.Bytes())
	if err != nil {
		return nil, fmt.Errorf("%w: %s stream: %w", errs.ErrFormatViolation, r.cfg.compression, err)
	}

	return payload, nil
}

func skip(src io.Reader, n int64, what string) error {
	if n == 0 {
		return nil
	}

	copied, err := io.CopyN(io.Discard, src, n)
	if err != nil {
		return streamError(err, fmt.Sprintf("%s: %d of %d bytes", what, copied, n))
	}

	return nil
}

// streamError maps a premature end of the stream to errs.ErrTruncatedStream
// and any other failure to errs.ErrReadFile.
func streamError(err error, detail string) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %s", errs.ErrTruncatedStream, detail)
	}

	return fmt.Errorf("%w: %s: %w", errs.ErrReadFile, detail, err)
}
