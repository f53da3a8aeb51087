package lz77

import (
	"errors"
	"fmt"
	"io"
)

// dictionary is the decoded output of one decode call. It is also the search
// space for back-references: every byte written stays addressable until the call ends.
type dictionary struct {
	buf   []byte // Decoded bytes so far; grows monotonically.
	limit int    // Maximum length of buf (0 = no limit).
}

// reset prepares d for a new decode call.
func (d *dictionary) reset(opts Options) {
	d.buf = d.buf[:0]
	d.limit = opts.MaxOutputSize
	if opts.SizeHint > cap(d.buf) {
		d.buf = make([]byte, 0, opts.SizeHint)
	}
}

// Len returns the number of decoded bytes.
func (d *dictionary) Len() int {
	return len(d.buf)
}

// reserve checks that n more bytes fit under the output limit.
func (d *dictionary) reserve(n int) error {
	if d.limit > 0 && len(d.buf)+n > d.limit {
		return fmt.Errorf("%w: need %d bytes, limit %d", ErrOutputTooLarge, len(d.buf)+n, d.limit)
	}

	return nil
}

// appendLiteral reads exactly n payload bytes from in and appends them.
func (d *dictionary) appendLiteral(in io.Reader, n int) error {
	if err := d.reserve(n); err != nil {
		return err
	}

	start := len(d.buf)
	if cap(d.buf)-start < n {
		grown := make([]byte, start, 2*cap(d.buf)+n)
		copy(grown, d.buf)
		d.buf = grown
	}

	d.buf = d.buf[:start+n]
	if _, err := io.ReadFull(in, d.buf[start:]); err != nil {
		d.buf = d.buf[:start]
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return fmt.Errorf("%w: want %d bytes", ErrTruncatedLiteral, n)
		}

		return fmt.Errorf("read literal payload: %w", err)
	}

	return nil
}

// appendMatch resolves a back-reference against the bytes decoded so far and appends the result.
func (d *dictionary) appendMatch(length, offset int) error {
	if offset < 1 || offset > len(d.buf) {
		return fmt.Errorf("%w: offset=%d decoded=%d", ErrOffsetOutOfRange, offset, d.Len())
	}
	if err := d.reserve(length); err != nil {
		return err
	}

	buf, err := appendMatch(d.buf, length, offset)
	if err != nil {
		return err
	}
	d.buf = buf

	return nil
}

// detach hands the decoded bytes to the caller; d no longer references them.
func (d *dictionary) detach() []byte {
	out := d.buf
	d.buf = nil

	return out
}

// writeTo writes the whole decoded buffer to w in a single call.
func (d *dictionary) writeTo(w io.Writer) (int64, error) {
	n, err := w.Write(d.buf)
	if err == nil && n != len(d.buf) {
		err = io.ErrShortWrite
	}

	return int64(n), err
}
