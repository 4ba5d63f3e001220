package sigproc

import (
	"io"

	"github.com/arloliu/astrodata/endian"
)

const swapChunkSize = 64 * 1024

// swapReader reverses the bytes of every word of the stream read from src.
// Words are counted from the first byte read, so batch boundaries do not
// restart them. A trailing partial word is passed through unchanged.
type swapReader struct {
	src  io.Reader
	word int
	buf  []byte
	off  int
	err  error
}

func newSwapReader(src io.Reader, wordBytes int) *swapReader {
	return &swapReader{
		src:  src,
		word: wordBytes,
		buf:  make([]byte, 0, swapChunkSize-swapChunkSize%wordBytes),
	}
}

func (s *swapReader) Read(p []byte) (int, error) {
	if s.off == len(s.buf) {
		if s.err != nil {
			return 0, s.err
		}
		s.fill()
		if s.off == len(s.buf) {
			return 0, s.err
		}
	}

	n := copy(p, s.buf[s.off:])
	s.off += n

	return n, nil
}

// fill reads whole words until the chunk is full; only the end of src can
// leave a partial word behind.
func (s *swapReader) fill() {
	s.buf = s.buf[:cap(s.buf)]
	n, err := io.ReadFull(s.src, s.buf)
	s.buf = s.buf[:n]
	s.off = 0

	endian.SwapWords(s.buf, s.word)

	if err == io.ErrUnexpectedEOF {
		err = io.EOF
	}
	s.err = err
}
