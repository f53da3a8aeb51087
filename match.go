package lz77

// appendMatch appends the length bytes that start offset bytes before the end of dict.
// When length > offset the trailing offset-byte window repeats cyclically (RLE), so
// output byte i equals dict[base+i%offset] with base = len(dict)-offset.
// On error dict is returned unchanged.
func appendMatch(dict []byte, length, offset int) ([]byte, error) {
	if offset < 1 || offset > len(dict) {
		return dict, ErrOffsetOutOfRange
	}
	if length <= 0 {
		return dict, nil
	}

	start := len(dict)
	base := start - offset

	if length <= offset {
		return append(dict, dict[base:base+length]...), nil
	}

	if cap(dict)-start < length {
		grown := make([]byte, start, start+length+start/4)
		copy(grown, dict)
		dict = grown
	}

	// dict[base:] is periodic with period offset and its length stays a multiple of
	// offset until the final chunk, so doubling copies of it extend the pattern.
	for remaining := length; remaining > 0; {
		n := min(len(dict)-base, remaining)
		if base+n > len(dict) {
			return dict[:start], ErrInternal
		}

		dict = append(dict, dict[base:base+n]...)
		remaining -= n
	}

	return dict, nil
}
