package meta

import (
	"sync/atomic"

	"github.com/coregx/fuzzex/prefilter"
)

// Engine is the compiled form of a pattern set: it owns the selected
// strategy, the filtering structures, and the execution statistics.
//
// The Engine:
//  1. Validates and clamps the pattern configurations
//  2. Selects the execution strategy (scan, exact filter, region filter)
//  3. Builds the filter artifacts (superimposed profile or automaton)
//  4. Coordinates the filtering and per-pattern verification passes
//
// Thread safety: everything built at compile time is immutable, and all
// per-search scan state (bit words, score arrays, reversed-search buffers)
// is allocated inside the call that uses it, so any number of goroutines may
// call Search on the same Engine concurrently. Statistics are atomic.
//
// Example:
//
//	// Compile a pattern set (once)
//	engine, err := meta.Compile([]meta.PatternConfig{
//	    {Pattern: []byte("needle"), MaxErrors: 1},
//	    {Pattern: []byte("naidle"), MaxErrors: 2},
//	}, meta.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//
//	// Search (safe to call from multiple goroutines)
//	result := engine.Search([]byte("a haystack with a needle in it"))
//	for i, matches := range result.Matches {
//	    fmt.Println(i, matches)
//	}
type Engine struct {
	// Statistics (useful for debugging and tuning)
	// IMPORTANT: stats MUST be first field for proper 8-byte alignment on 32-bit platforms.
	// This ensures atomic operations on uint64 fields work correctly.
	stats Stats

	patterns []pattern

	filter  *prefilter.Filter
	exact   *prefilter.ExactFilter
	tracker *prefilter.Tracker

	strategy Strategy
	config   Config
}

// pattern is one compiled pattern: its bytes (copied, so later mutation of
// the caller's slice cannot corrupt searches) and its clamped error budget.
type pattern struct {
	raw       []byte
	maxErrors int
}

// Stats tracks execution statistics for performance analysis.
type Stats struct {
	// Searches counts Engine.Search calls
	Searches uint64

	// Scans counts per-pattern verification scans
	Scans uint64

	// FilterRuns counts superimposed-profile filter passes
	FilterRuns uint64

	// ExactRuns counts Aho-Corasick filter passes
	ExactRuns uint64

	// RegionsFound counts candidate regions produced by filter passes
	RegionsFound uint64

	// RegionBytes counts text bytes covered by candidate regions
	RegionBytes uint64

	// FilterSkipped counts searches that bypassed a retired region filter
	FilterSkipped uint64
}

// Strategy returns the execution strategy selected for this engine.
//
// Note that a retired region filter makes Search behave like UseFullScan
// even while Strategy still reports UseRegionFilter; see Tracker.
func (e *Engine) Strategy() Strategy {
	return e.strategy
}

// Stats returns a snapshot of the execution statistics.
func (e *Engine) Stats() Stats {
	return Stats{
		Searches:      atomic.LoadUint64(&e.stats.Searches),
		Scans:         atomic.LoadUint64(&e.stats.Scans),
		FilterRuns:    atomic.LoadUint64(&e.stats.FilterRuns),
		ExactRuns:     atomic.LoadUint64(&e.stats.ExactRuns),
		RegionsFound:  atomic.LoadUint64(&e.stats.RegionsFound),
		RegionBytes:   atomic.LoadUint64(&e.stats.RegionBytes),
		FilterSkipped: atomic.LoadUint64(&e.stats.FilterSkipped),
	}
}

// ResetStats resets execution statistics to zero.
func (e *Engine) ResetStats() {
	e.stats = Stats{}
}

// NumPatterns returns the number of patterns the engine was compiled from,
// including empty ones (which keep their result slot but never match).
func (e *Engine) NumPatterns() int {
	return len(e.patterns)
}

// Tracker returns the region-filter effectiveness tracker, or nil when the
// strategy runs no region filter.
func (e *Engine) Tracker() *prefilter.Tracker {
	return e.tracker
}
