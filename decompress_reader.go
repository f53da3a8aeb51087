package lz77

import "io"

// Reader decompresses a stream on first use and serves the decoded bytes.
// The whole output is held in memory, as with DecompressFromReader.
type Reader struct {
	src  io.Reader
	opts *Options
	buf  []byte
	pos  int
	err  error
	done bool
}

// NewReader returns a Reader that decompresses r. Options nil means DefaultOptions.
func NewReader(r io.Reader, opts *Options) *Reader {
	return &Reader{src: r, opts: opts}
}

// Reset discards any state and makes the Reader decompress r.
func (z *Reader) Reset(r io.Reader) {
	*z = Reader{src: r, opts: z.opts}
}

// fill decodes the source once.
func (z *Reader) fill() {
	if z.done {
		return
	}

	z.done = true
	z.buf, z.err = DecompressFromReader(z.src, z.opts)
}

// Read implements io.Reader.
func (z *Reader) Read(p []byte) (int, error) {
	z.fill()
	if z.err != nil {
		return 0, z.err
	}
	if z.pos >= len(z.buf) {
		return 0, io.EOF
	}

	n := copy(p, z.buf[z.pos:])
	z.pos += n

	return n, nil
}

// WriteTo implements io.WriterTo; it writes the remaining decoded bytes to w.
func (z *Reader) WriteTo(w io.Writer) (int64, error) {
	z.fill()
	if z.err != nil {
		return 0, z.err
	}

	n, err := w.Write(z.buf[z.pos:])
	z.pos += n
	if err == nil && z.pos < len(z.buf) {
		err = io.ErrShortWrite
	}

	return int64(n), err
}
