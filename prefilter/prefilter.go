// Package prefilter provides fast candidate filtering for multi-pattern fuzzy
// search.
//
// A filter runs one cheap pass over the text and returns candidate regions
// (merged, non-overlapping [start, end) sub-ranges) that may contain a match
// for at least one pattern. Each pattern is then verified individually by the
// myers scanner restricted to those regions, so the expensive per-pattern
// passes touch only the flagged fraction of the text.
//
// Filters are sound but imprecise: every real match for any pattern lies
// entirely inside some returned region (no false negatives), while regions
// may cover text that matches nothing. Two filters are provided:
//   - Filter: scans a superimposed profile of all patterns with the combined
//     error budget (the general case)
//   - ExactFilter: Aho-Corasick automaton over the pattern set, selected when
//     every pattern's budget is zero
//
// A Tracker can watch how much of the text the filter actually eliminates and
// retire it when the filtering pass stops paying for itself.
package prefilter

import (
	"github.com/coregx/fuzzex/myers"
)

// Filter flags candidate regions of a text using a superimposed profile of
// several patterns.
//
// The profile is built over the longest pattern's length, with positions past
// the end of shorter patterns padded as wildcards, so its acceptance set is a
// superset of every individual pattern's; that is the soundness invariant.
// The scan itself is the same adaptive column scan the verifier uses, without the
// error-count ratchet: tightening the combined budget mid-scan could drop a
// region that a higher-error individual match still needs.
//
// A Filter is immutable after construction and safe for concurrent use.
type Filter struct {
	prof      *myers.Profile
	maxErrors int

	// threshold is the column score bound a candidate must stay under. It is
	// maxErrors plus the difference between the longest and shortest pattern
	// lengths: a shorter pattern's match leaves its wildcard padding rows
	// unconsumed at the matching column, and each such row shows up in the
	// superimposed score as one extra error.
	threshold int
}

// NewFilter builds a region filter over the given patterns with the combined
// error budget (callers pass the maximum budget across patterns). Empty
// patterns are ignored. Returns nil if no non-empty pattern remains or the
// budget is negative.
func NewFilter(patterns [][]byte, maxErrors int) *Filter {
	if maxErrors < 0 {
		return nil
	}
	prof := myers.NewCombinedProfile(patterns)
	if prof == nil {
		return nil
	}
	if maxErrors > prof.Length() {
		maxErrors = prof.Length()
	}
	minLen := prof.Length()
	for _, pat := range patterns {
		if len(pat) > 0 && len(pat) < minLen {
			minLen = len(pat)
		}
	}
	threshold := maxErrors + prof.Length() - minLen
	if threshold > prof.Length() {
		// A column score never exceeds the profile length, so a larger
		// threshold would only break the scanner's window sizing.
		threshold = prof.Length()
	}
	return &Filter{
		prof:      prof,
		maxErrors: maxErrors,
		threshold: threshold,
	}
}

// MaxErrors returns the combined error budget the filter scans with.
func (f *Filter) MaxErrors() int {
	return f.maxErrors
}

// Regions scans the text once against the superimposed profile and returns
// the candidate regions in increasing order, merged and non-overlapping.
//
// A column qualifies when the superimposed score stays within the combined
// budget widened by the pattern set's length spread. A shorter pattern's
// match ends before the profile's wildcard padding is consumed, and the
// unconsumed padding inflates the score at the matching column by at most
// that spread, so the widened threshold keeps such ends visible even near
// the end of the text where no later column could catch them. Each
// qualifying column opens a region reaching back by the longest pattern's
// length plus the combined budget, so any individual match ending at the
// column lies entirely inside the region even after the verifier resets its
// scan state at the region boundary.
//
// An empty result means no pattern can match anywhere in the text.
func (f *Filter) Regions(text []byte) []myers.Region {
	var regions []myers.Region

	state := myers.NewScanState(f.prof)
	state.Reset(f.prof, f.threshold)

	for j := 0; j < len(text); j++ {
		score, atBottom := state.Next(f.prof, text[j], f.threshold)
		if !atBottom || score > f.threshold {
			continue
		}

		start := j + 1 - f.prof.Length() - f.maxErrors
		if start < 0 {
			start = 0
		}
		regions = appendRegion(regions, start, j+1)
	}

	return regions
}

// appendRegion merges [start, end) into the region list, extending the last
// region when the new one touches or overlaps it. Starts are non-decreasing
// and ends strictly increasing across calls, so merging with the last region
// keeps the list sorted and disjoint.
func appendRegion(regions []myers.Region, start, end int) []myers.Region {
	if n := len(regions); n > 0 && start <= regions[n-1].End {
		regions[n-1].End = end
		return regions
	}
	return append(regions, myers.Region{Start: start, End: end})
}
