// Package myers implements online approximate (fuzzy) substring search using
// the Myers bit-parallel dynamic-programming algorithm, extended to patterns
// of arbitrary length with the Hyyrö block formulation.
//
// The conceptual edit-distance matrix (pattern positions as rows, text
// positions as columns) is never materialized. Instead, each column is encoded
// as per-block pairs of 32-bit delta words (P = positive vertical delta,
// M = negative vertical delta) and advanced one text byte at a time. Per text
// byte the scanner touches only the "active" prefix of blocks whose scores can
// still reach the error budget, so the work per byte is proportional to k/32
// rather than to the pattern length.
//
// The package provides:
//   - Profile: per-symbol bitmasks for one pattern, or superimposed masks for
//     a set of patterns (used by higher-level candidate filtering)
//   - ScanState: the per-call mutable column state driven byte by byte
//   - Search / SearchRegions: end-position scan, then match-start recovery by
//     re-running the same scan on reversed text and pattern
//
// Symbols are bytes. Multi-byte UTF-8 sequences count as multiple symbols;
// an edit that splits a multi-byte sequence is counted per byte. This is a
// documented limitation, matching the fixed-width code unit semantics of the
// scanner.
//
// All state is owned by the call that created it: two concurrent searches
// never share P/M words or score arrays, so the package is safe for
// concurrent use on immutable inputs.
package myers

// WordSize is the width in bits of one block of the edit-distance matrix.
//
// The block transition recurrence is defined over 32-bit words, including
// carry wraparound; it must not be widened without re-deriving the recurrence.
const WordSize = 32

// Match is a single approximate occurrence of a pattern in a text.
//
// End is exclusive. Start is -1 until match-start resolution has run
// (see SearchRegions, which always resolves starts before returning).
// Errors is the unit-cost edit distance between the pattern and
// text[Start:End].
type Match struct {
	Start  int
	End    int
	Errors int
}

// Len returns the length of the matched text span.
func (m Match) Len() int {
	return m.End - m.Start
}

// Region is a half-open [Start, End) sub-range of a text, used to restrict a
// scan to candidate ranges produced by a filtering pass.
type Region struct {
	Start int
	End   int
}

// Len returns the number of text bytes covered by the region.
func (r Region) Len() int {
	return r.End - r.Start
}

// Search finds all approximate occurrences of pattern in text with at most
// maxErrors single-byte insertions, deletions, or substitutions.
//
// Matches are returned in increasing end order with starts resolved. Only
// matches with the minimal achievable error count are returned: whenever the
// scan discovers a strictly better match, previously collected matches are
// discarded and the budget is ratcheted down for the remainder of the text.
//
// An empty pattern, an empty text, or a negative budget yields no matches.
// A budget larger than the pattern length is clamped to the pattern length.
//
// Example:
//
//	matches := myers.Search([]byte("three blind mice"), []byte("blnd"), 1)
//	// matches = [{Start: 6, End: 11, Errors: 1}]
func Search(text, pattern []byte, maxErrors int) []Match {
	return SearchRegions(text, pattern, maxErrors, nil)
}

// SearchRegions is Search restricted to the given candidate regions.
//
// Scan state is reset at every region boundary, so a match must lie entirely
// inside one region to be found; callers producing regions are responsible
// for padding them accordingly (see the prefilter package). A nil regions
// slice means the whole text. The error-count ratchet spans all regions of
// one call, so the result holds only the minimal-error matches across every
// region.
func SearchRegions(text, pattern []byte, maxErrors int, regions []Region) []Match {
	if len(pattern) == 0 || maxErrors < 0 {
		return nil
	}
	prof := NewProfile(pattern)
	ends := findEnds(text, prof, maxErrors, regions)
	return resolveStarts(text, pattern, ends)
}
