package lz77

import (
	"errors"
	"fmt"
	"io"

	"github.com/icza/bitio"
)

// token is one decoded control token: a literal run or a back-reference.
type token struct {
	kind   tokenKind
	length int // Literal run length or match length.
	offset int // 1-based distance back from the end of output; 0 for literals.
}

// isLiteral reports whether the token is a literal run.
func (t token) isLiteral() bool {
	return t.kind == kindLiteral
}

// lookupCategory returns the table row selected by the top three bits of a control byte.
func lookupCategory(selector uint8) (category, error) {
	if int(selector) >= len(categories) || categories[selector].kind == kindInvalid {
		return category{}, ErrMalformedControlByte
	}

	return categories[selector], nil
}

// matchOffset combines q and the low offset byte into a 1-based distance.
func matchOffset(q uint64, lo byte) int {
	return int(q)<<8 + int(lo) + 1
}

// readToken reads the next token from in.
// A clean end of input before the control byte is returned as io.EOF, unwrapped.
// Literal payload bytes are left in the stream for the caller.
func readToken(in *bitio.Reader) (token, error) {
	// Control byte: 3-bit category selector, then 5-bit q, MSB first.
	selector, err := in.ReadBits(selectorBits)
	if err != nil {
		return token{}, err
	}

	q, err := in.ReadBits(valueBits)
	if err != nil {
		return token{}, err
	}

	cat, err := lookupCategory(uint8(selector)) // #nosec G115 -- 3-bit value
	if err != nil {
		return token{}, fmt.Errorf("%w: 0x%02X", err, selector<<valueBits|q)
	}

	switch cat.kind {
	case kindLiteral:
		return token{kind: kindLiteral, length: literalBase + int(q)}, nil

	case kindShortMatch:
		lo, err := readOperand(in)
		if err != nil {
			return token{}, err
		}

		return token{kind: kindShortMatch, length: cat.length, offset: matchOffset(q, lo)}, nil

	case kindLongMatch:
		extra, err := readOperand(in)
		if err != nil {
			return token{}, err
		}
		lo, err := readOperand(in)
		if err != nil {
			return token{}, err
		}

		return token{kind: kindLongMatch, length: longMatchBase + int(extra), offset: matchOffset(q, lo)}, nil
	}

	return token{}, fmt.Errorf("%w: 0x%02X", ErrMalformedControlByte, selector<<valueBits|q)
}

// readOperand reads one follow-up byte of a back-reference.
// End of input here means the token was cut short.
func readOperand(in *bitio.Reader) (byte, error) {
	b, err := in.ReadByte()
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return 0, ErrTruncatedMatch
		}

		return 0, fmt.Errorf("read back-reference operand: %w", err)
	}

	return b, nil
}
