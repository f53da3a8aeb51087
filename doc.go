/*
Package lz77 implements decompression of the FastLZ level-1 LZ77 token stream.

Format: a sequence of tokens with no header and no end marker. Each token starts
with a control byte; bits 7..5 select the token category, bits 4..0 carry q.

	000qqqqq                    literal run of q+1 bytes (1..32), payload follows
	LLLqqqqq rrrrrrrr           match of length L+2 (3..8), offset (q<<8)+r+1
	111qqqqq rrrrrrrr ssssssss  match of length 9+r (9..264), offset (q<<8)+s+1

Offsets are 1-based distances back from the end of the decoded output (1..8192).
A match longer than its offset repeats the trailing offset-byte window (RLE).
The whole decoded output stays addressable for the duration of one call, so
memory use grows with the output size.

Decoding stops when the input reports io.EOF at a token boundary. Input that ends
inside a token is an error (ErrTruncatedLiteral, ErrTruncatedMatch); any other read
error is returned as is. Use errors.Is to test for the package errors.

# Examples

Decompress a byte slice:

	out, err := lz77.Decompress(compressed, nil)
	if err != nil {
		return err
	}

Decompress a stream into a writer; the output is written once, after decoding succeeds:

	n, err := lz77.DecompressTo(r, w, nil)
	if err != nil {
		return err
	}
	_ = n

Limit output size for untrusted input and preallocate the output buffer:

	opts := &lz77.Options{MaxOutputSize: 64 << 20, SizeHint: expectedLen}
	out, err := lz77.DecompressFromReader(r, opts)
	if errors.Is(err, lz77.ErrOutputTooLarge) {
		// reject
	}

Use the decoded stream as an io.Reader:

	_, err := io.Copy(dst, lz77.NewReader(r, nil))
*/
package lz77
