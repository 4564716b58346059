package meta

import (
	"sync/atomic"

	"github.com/coregx/fuzzex/myers"
	"github.com/coregx/fuzzex/prefilter"
)

// Search runs the compiled pattern set against the text.
//
// The execution path depends on the selected strategy:
//
//	UseScan:         per-pattern column scan over the whole text
//	UseExact:        Aho-Corasick pass → zero-budget scans inside regions
//	UseRegionFilter: superimposed-profile pass → per-pattern scans inside regions
//	UseFullScan:     per-pattern column scans over the whole text
//
// Result.Matches is index-aligned with the compiled configs; each slice is in
// increasing end order, fully start-resolved, and holds only that pattern's
// minimal-error matches. Result.Regions carries the candidate regions of the
// filtering pass for diagnostics (nil when no filter ran).
func (e *Engine) Search(text []byte) *Result {
	atomic.AddUint64(&e.stats.Searches, 1)

	switch e.strategy {
	case UseExact:
		return e.searchExact(text)
	case UseRegionFilter:
		return e.searchFiltered(text)
	case UseScan, UseFullScan:
		return e.searchFull(text, nil)
	default:
		return e.searchFull(text, nil)
	}
}

// searchExact derives regions from the literal automaton, then verifies each
// pattern with a zero-budget scan restricted to those regions.
func (e *Engine) searchExact(text []byte) *Result {
	atomic.AddUint64(&e.stats.ExactRuns, 1)

	// exact is nil only when every pattern is empty; nothing can match then.
	if e.exact == nil {
		return &Result{Matches: make([][]Match, len(e.patterns))}
	}

	regions := e.exact.Regions(text)
	e.recordRegions(regions)
	return &Result{
		Matches: e.scanRegions(text, regions),
		Regions: regions,
	}
}

// searchFiltered runs the superimposed-profile pass, then per-pattern scans
// inside the flagged regions. A retired filter downgrades to a full scan.
func (e *Engine) searchFiltered(text []byte) *Result {
	if !e.tracker.IsActive() {
		atomic.AddUint64(&e.stats.FilterSkipped, 1)
		return e.searchFull(text, []Region{{Start: 0, End: len(text)}})
	}

	atomic.AddUint64(&e.stats.FilterRuns, 1)
	regions := e.filter.Regions(text)
	e.recordRegions(regions)
	e.tracker.Record(len(text), prefilter.RegionBytes(regions))

	return &Result{
		Matches: e.scanRegions(text, regions),
		Regions: regions,
	}
}

// searchFull scans every pattern over the whole text. diagRegions is what the
// result reports as Regions (nil for unfiltered strategies, the full text
// range when a filter was bypassed).
func (e *Engine) searchFull(text []byte, diagRegions []Region) *Result {
	matches := make([][]Match, len(e.patterns))
	for i, p := range e.patterns {
		if len(p.raw) == 0 {
			continue
		}
		atomic.AddUint64(&e.stats.Scans, 1)
		matches[i] = myers.Search(text, p.raw, p.maxErrors)
	}
	return &Result{Matches: matches, Regions: diagRegions}
}

// scanRegions verifies each pattern inside the candidate regions. An empty
// region list means the filter proved no pattern can match.
func (e *Engine) scanRegions(text []byte, regions []Region) [][]Match {
	matches := make([][]Match, len(e.patterns))
	if len(regions) == 0 {
		return matches
	}
	for i, p := range e.patterns {
		if len(p.raw) == 0 {
			continue
		}
		atomic.AddUint64(&e.stats.Scans, 1)
		matches[i] = myers.SearchRegions(text, p.raw, p.maxErrors, regions)
	}
	return matches
}

// recordRegions accumulates region statistics.
func (e *Engine) recordRegions(regions []Region) {
	atomic.AddUint64(&e.stats.RegionsFound, uint64(len(regions)))
	atomic.AddUint64(&e.stats.RegionBytes, prefilter.RegionBytes(regions))
}
