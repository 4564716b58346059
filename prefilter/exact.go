package prefilter

import (
	"github.com/coregx/ahocorasick"

	"github.com/coregx/fuzzex/myers"
)

// ExactFilter flags candidate regions using an Aho-Corasick automaton built
// over the pattern set. It applies when every pattern's error budget is zero:
// the automaton finds literal occurrences of any pattern in one O(n) pass,
// and the per-pattern verification scan only has to separate the occurrences
// by pattern inside the flagged regions.
//
// An ExactFilter is immutable after construction and safe for concurrent use.
type ExactFilter struct {
	auto *ahocorasick.Automaton

	// maxLen is the longest pattern's length. Regions are padded to this
	// length on both sides of a reported start so a longer pattern's
	// occurrence overlapping the reported one is still fully covered.
	maxLen int
}

// NewExactFilter builds the automaton over all non-empty patterns.
// Returns (nil, nil) if the set contains no non-empty pattern.
func NewExactFilter(patterns [][]byte) (*ExactFilter, error) {
	builder := ahocorasick.NewBuilder()
	maxLen := 0
	count := 0
	for _, pat := range patterns {
		if len(pat) == 0 {
			continue
		}
		builder.AddPattern(pat)
		count++
		if len(pat) > maxLen {
			maxLen = len(pat)
		}
	}
	if count == 0 {
		return nil, nil
	}

	auto, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &ExactFilter{auto: auto, maxLen: maxLen}, nil
}

// Regions returns the merged candidate regions around every literal
// occurrence of any pattern in the text.
//
// The automaton is restarted one byte past each reported match start rather
// than past its end, so occurrence starts hidden inside a longer match are
// not skipped. Each region extends maxLen-1 bytes to the left of the
// reported start as well: the automaton reports the earliest-ending
// occurrence, and a longer pattern's occurrence beginning at or before that
// start would otherwise poke out of the region.
func (f *ExactFilter) Regions(text []byte) []myers.Region {
	var regions []myers.Region

	pos := 0
	for pos < len(text) {
		m := f.auto.Find(text, pos)
		if m == nil {
			break
		}

		start := m.Start - f.maxLen + 1
		if start < 0 {
			start = 0
		}
		end := m.Start + f.maxLen
		if end > len(text) {
			end = len(text)
		}
		regions = appendRegion(regions, start, end)

		pos = m.Start + 1
	}

	return regions
}
