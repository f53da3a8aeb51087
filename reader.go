package lz77

import (
	"bufio"
	"io"
)

// byteSource is the input of the decode loop.
// It satisfies bitio's reader requirements directly, so bitio adds no buffering
// of its own and consumed() is exact at every token boundary.
type byteSource interface {
	io.Reader
	io.ByteReader
	consumed() int64
}

// sliceByteReader reads from a byte slice.
type sliceByteReader struct {
	data []byte // The byte slice to read from.
	pos  int    // The current position in the byte slice.
}

// countingByteReader reads from a buffered reader and counts the number of bytes read.
type countingByteReader struct {
	base  *bufio.Reader // The reader to read from.
	count int64         // The number of bytes read.
}

// newCountingByteReader wraps r, reusing it when it is already a *bufio.Reader.
func newCountingByteReader(r io.Reader) *countingByteReader {
	base, ok := r.(*bufio.Reader)
	if !ok {
		base = bufio.NewReader(r)
	}

	return &countingByteReader{base: base}
}

// ReadByte reads a byte from the slice.
func (r *sliceByteReader) ReadByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}

	b := r.data[r.pos]
	r.pos++

	return b, nil
}

// Read copies up to len(p) bytes from the slice.
func (r *sliceByteReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}

	n := copy(p, r.data[r.pos:])
	r.pos += n

	return n, nil
}

func (r *sliceByteReader) consumed() int64 {
	return int64(r.pos)
}

// ReadByte reads a byte from the reader and increments the count.
func (r *countingByteReader) ReadByte() (byte, error) {
	b, err := r.base.ReadByte()
	if err != nil {
		return 0, err
	}

	r.count++

	return b, nil
}

// Read reads into p and adds the number of bytes read to the count.
func (r *countingByteReader) Read(p []byte) (int, error) {
	n, err := r.base.Read(p)
	r.count += int64(n)

	return n, err
}

func (r *countingByteReader) consumed() int64 {
	return r.count
}
