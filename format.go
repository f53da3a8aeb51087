package lz77

// Token layout constants.
const (
	selectorBits = 3    // Control byte bits 7..5 select the token category.
	valueBits    = 5    // Control byte bits 4..0 carry q.
	valueMask    = 0x1F // Mask for q.

	literalBase   = 1 // Literal run length is q+1 (1..32).
	longMatchBase = 9 // Long match length is 9+r (9..264).

	MaxLiteralRun = literalBase + valueMask     // Longest literal run a single token carries (32).
	MaxMatch      = longMatchBase + 0xFF        // Longest back-reference a single token carries (264).
	MaxOffset     = (valueMask << 8) + 0xFF + 1 // Farthest back-reference distance (8192).
)

// tokenKind discriminates the token variants.
type tokenKind uint8

const (
	kindInvalid    tokenKind = iota // Zero value; never produced by a valid control byte.
	kindLiteral                     // Literal run: length raw bytes follow.
	kindShortMatch                  // Back-reference with fixed length, one follow-up byte.
	kindLongMatch                   // Back-reference with length 9+r, two follow-up bytes.
)

// category describes one row of the control byte table.
type category struct {
	code   int       // Category code (1, 3..9).
	kind   tokenKind // Token variant.
	length int       // Fixed match length for short matches.
}

// categories is indexed by the top three bits of a control byte.
// Probing the masks 0x1F, 0x3F, 0x5F, 0x7F, 0x9F, 0xBF, 0xDF, 0xFF in order
// and picking the first m with cb|m == m selects the same row.
var categories = [1 << selectorBits]category{
	{code: 1, kind: kindLiteral},
	{code: 3, kind: kindShortMatch, length: 3},
	{code: 4, kind: kindShortMatch, length: 4},
	{code: 5, kind: kindShortMatch, length: 5},
	{code: 6, kind: kindShortMatch, length: 6},
	{code: 7, kind: kindShortMatch, length: 7},
	{code: 8, kind: kindShortMatch, length: 8},
	{code: 9, kind: kindLongMatch},
}
