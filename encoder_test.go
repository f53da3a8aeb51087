package lz77

// encodeForTest is a greedy encoder producing streams for round-trip tests.
// window bounds the backward search distance (capped at MaxOffset).
func encodeForTest(src []byte, window int) []byte {
	out := make([]byte, 0, len(src)+len(src)/MaxLiteralRun+1)
	litStart := 0

	flushLiterals := func(end int) {
		for litStart < end {
			n := min(end-litStart, MaxLiteralRun)
			out = append(out, byte(n-literalBase))
			out = append(out, src[litStart:litStart+n]...)
			litStart += n
		}
	}

	i := 0
	for i < len(src) {
		bestLen := 0
		bestOff := 0

		// Find longest match up to window bytes back; the match may run into
		// the bytes it produces (offset < length).
		maxCheck := min(i, window, MaxOffset)
		for off := 1; off <= maxCheck; off++ {
			length := 0
			for length < MaxMatch && i+length < len(src) && src[i-off+length] == src[i+length] {
				length++
			}

			if length > bestLen {
				bestLen = length
				bestOff = off
				if bestLen == MaxMatch {
					break
				}
			}
		}

		if bestLen < 3 {
			i++
			continue
		}

		flushLiterals(i)

		dist := bestOff - 1
		q := byte(dist >> 8)
		if bestLen < longMatchBase {
			out = append(out, byte(bestLen-2)<<valueBits|q, byte(dist))
		} else {
			out = append(out, 0xE0|q, byte(bestLen-longMatchBase), byte(dist))
		}

		i += bestLen
		litStart = i
	}

	flushLiterals(len(src))

	return out
}
