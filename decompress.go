package lz77

import (
	"errors"
	"fmt"
	"io"

	"github.com/icza/bitio"
)

// Decompress decompresses src into a new buffer.
// Options nil means DefaultOptions (no output limit).
func Decompress(src []byte, opts *Options) ([]byte, error) {
	o, err := opts.normalized()
	if err != nil {
		return nil, err
	}

	if o.SizeHint == 0 {
		o.SizeHint = 2 * len(src)
		if o.MaxOutputSize > 0 && o.SizeHint > o.MaxOutputSize {
			o.SizeHint = o.MaxOutputSize
		}
	}

	return decompressDetached(&sliceByteReader{data: src}, o)
}

// DecompressFromReader decompresses the whole of r and returns the decoded bytes.
// The stream has no end marker; decoding stops when r reports io.EOF at a token boundary.
func DecompressFromReader(r io.Reader, opts *Options) ([]byte, error) {
	if r == nil {
		return nil, ErrNilReader
	}

	o, err := opts.normalized()
	if err != nil {
		return nil, err
	}

	return decompressDetached(newCountingByteReader(r), o)
}

// DecompressTo decompresses the whole of r and writes the decoded bytes to w.
// The output is written once, after decoding succeeds; nothing is written on error.
// It returns the number of bytes written.
func DecompressTo(r io.Reader, w io.Writer, opts *Options) (int64, error) {
	if r == nil {
		return 0, ErrNilReader
	}
	if w == nil {
		return 0, ErrNilWriter
	}

	o, err := opts.normalized()
	if err != nil {
		return 0, err
	}

	dict := acquireDictionary(o)
	defer releaseDictionary(dict)

	if err := decode(newCountingByteReader(r), dict); err != nil {
		return 0, err
	}

	return dict.writeTo(w)
}

// decompressDetached decodes src and hands the decoded buffer to the caller.
// The buffer escapes, so it is sized from opts rather than taken from the pool.
func decompressDetached(src byteSource, opts Options) ([]byte, error) {
	dict := &dictionary{}
	dict.reset(opts)

	if err := decode(src, dict); err != nil {
		return nil, err
	}

	out := dict.detach()
	if out == nil {
		out = []byte{}
	}

	return out, nil
}

// decode runs the token loop until src is exhausted.
// Only io.EOF on a control byte ends the stream; every other failure is fatal.
func decode(src byteSource, dict *dictionary) error {
	in := bitio.NewReader(src)

	for {
		at := src.consumed()

		tok, err := readToken(in)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}

			return errorAt(err, at)
		}

		if tok.isLiteral() {
			err = dict.appendLiteral(in, tok.length)
		} else {
			err = dict.appendMatch(tok.length, tok.offset)
		}
		if err != nil {
			return errorAt(err, at)
		}
	}
}

// formatErrors are the failures caused by the stream content rather than by the source.
var formatErrors = []error{
	ErrTruncatedLiteral,
	ErrTruncatedMatch,
	ErrOffsetOutOfRange,
	ErrMalformedControlByte,
	ErrOutputTooLarge,
	ErrInternal,
}

// errorAt adds the input offset of the failing token to err.
// Format errors keep the sentinel message first; source I/O errors get a prefix.
func errorAt(err error, at int64) error {
	for _, target := range formatErrors {
		if errors.Is(err, target) {
			return fmt.Errorf("%w: input offset %d", err, at)
		}
	}

	return fmt.Errorf("read token at input offset %d: %w", at, err)
}
