package meta

import (
	"github.com/coregx/fuzzex/myers"
)

// Match is an approximate occurrence of one pattern: [Start, End) with the
// unit-cost edit distance in Errors. Aliased from the core package so engine
// callers never convert between the two.
type Match = myers.Match

// Region is a candidate [Start, End) text sub-range flagged by a filtering
// pass. Aliased from the core package.
type Region = myers.Region

// PatternConfig pairs one pattern with its error budget.
//
// MaxErrors is the number of single-byte insertions, deletions, or
// substitutions a match may need. It is clamped to the pattern length at
// compile time; negative values are rejected.
type PatternConfig struct {
	Pattern   []byte
	MaxErrors int
}

// Result is the outcome of one engine search.
//
// Matches holds one slice per compiled pattern, index-aligned with the
// configs the engine was compiled from; a nil slice means no match for that
// pattern. Regions holds the candidate ranges the filtering pass produced,
// for filtering-efficiency diagnostics: nil when the strategy runs no filter
// (single-pattern scan), a single full-text region when the filter was
// disabled or retired.
type Result struct {
	Matches [][]Match
	Regions []Region
}
