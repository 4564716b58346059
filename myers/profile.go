package myers

// Profile holds the precomputed per-symbol bitmasks ("peq") for a pattern, or
// the superimposed bitmasks for a set of patterns.
//
// For each symbol value c and block b, bit i of the mask is set iff pattern
// position 32*b+i equals c. For a superimposed profile, the bit is set iff
// *any* pattern has c at that position, and every position at or beyond the
// end of the shortest pattern is forced on for all symbols (trailing wildcard
// padding), including symbols absent from every pattern.
//
// A Profile is immutable once built and may be shared by concurrent scans.
type Profile struct {
	// peq maps a byte value to its per-block masks. Entries for bytes that do
	// not occur in the pattern are nil; lookups fall back to empty.
	peq [256][]uint32

	// empty is the fallback mask set for bytes absent from the pattern: all
	// zeroes for a single pattern, the wildcard padding bits for a
	// superimposed profile.
	empty []uint32

	// last holds one set bit per block marking the block's bottom row. For
	// the final block this is bit (length-1) mod 32, not necessarily bit 31.
	last []uint32

	// length is the pattern length; for a superimposed profile, the longest
	// pattern's length.
	length int

	// bMax is the index of the last block, ceil(length/32)-1.
	bMax int
}

// NewProfile builds the symbol profile for a single pattern.
// Returns nil for an empty pattern.
func NewProfile(pattern []byte) *Profile {
	if len(pattern) == 0 {
		return nil
	}

	p := newProfileShell(len(pattern))
	for r, c := range pattern {
		masks := p.peq[c]
		if masks == nil {
			masks = make([]uint32, p.bMax+1)
			p.peq[c] = masks
		}
		masks[r/WordSize] |= 1 << (r % WordSize)
	}
	return p
}

// NewCombinedProfile builds the superimposed profile for a set of patterns,
// sized to the longest pattern. Empty patterns are ignored; if every pattern
// is empty (or the set is empty), the result is nil.
//
// Positions past the end of a shorter pattern match every symbol, so the
// acceptance set of the combined profile is a superset of each individual
// pattern's. That makes a scan over this profile a sound candidate filter:
// it may flag text that matches no pattern, but never misses a real match.
func NewCombinedProfile(patterns [][]byte) *Profile {
	maxLen, minLen := 0, 0
	for _, pat := range patterns {
		if len(pat) == 0 {
			continue
		}
		if len(pat) > maxLen {
			maxLen = len(pat)
		}
		if minLen == 0 || len(pat) < minLen {
			minLen = len(pat)
		}
	}
	if maxLen == 0 {
		return nil
	}

	p := newProfileShell(maxLen)

	// Wildcard padding: positions minLen..maxLen-1 are beyond the end of at
	// least one pattern and must match every symbol, including symbols that
	// occur in no pattern. The fallback mask carries these bits too.
	wild := make([]uint32, p.bMax+1)
	for r := minLen; r < maxLen; r++ {
		wild[r/WordSize] |= 1 << (r % WordSize)
	}
	p.empty = wild

	for _, pat := range patterns {
		for r, c := range pat {
			masks := p.peq[c]
			if masks == nil {
				masks = make([]uint32, p.bMax+1)
				copy(masks, wild)
				p.peq[c] = masks
			}
			masks[r/WordSize] |= 1 << (r % WordSize)
		}
	}
	return p
}

// newProfileShell allocates a profile for the given pattern length with the
// last-row masks filled in and an all-zero fallback.
func newProfileShell(length int) *Profile {
	bMax := (length+WordSize-1)/WordSize - 1

	last := make([]uint32, bMax+1)
	for b := range last {
		last[b] = 1 << (WordSize - 1)
	}
	last[bMax] = 1 << ((length - 1) % WordSize)

	return &Profile{
		empty:  make([]uint32, bMax+1),
		last:   last,
		length: length,
		bMax:   bMax,
	}
}

// Length returns the pattern length the profile was built for (the longest
// pattern's length for a superimposed profile).
func (p *Profile) Length() int {
	return p.length
}

// Blocks returns the number of 32-row blocks covering the pattern.
func (p *Profile) Blocks() int {
	return p.bMax + 1
}

// masks returns the per-block equality masks for byte c, falling back to the
// empty profile for bytes absent from the pattern.
func (p *Profile) masks(c byte) []uint32 {
	if m := p.peq[c]; m != nil {
		return m
	}
	return p.empty
}
