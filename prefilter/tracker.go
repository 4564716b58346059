package prefilter

import (
	"sync/atomic"

	"github.com/coregx/fuzzex/myers"
)

// Tracker monitors how effective a region filter is across the searches run
// on one engine.
//
// A filtering pass costs one extra scan of the whole text. It pays for itself
// only when the returned regions cover a small fraction of the text; if most
// of the text is flagged anyway, the per-pattern scans do nearly full work
// *plus* the filter pass. The tracker accumulates text and region byte counts
// and, once enough text has been observed, retires the filter when coverage
// stays above a threshold. A retired filter is never re-enabled for that
// engine.
//
// Algorithm:
//  1. Record text length and flagged region bytes after every filter run
//  2. Ignore everything until WarmupBytes of text have been observed
//  3. Once warm, disable when regionBytes/textBytes > MaxCoverage
//
// All counters are atomic; a Tracker may be shared by concurrent searches.
type Tracker struct {
	textBytes   atomic.Uint64
	regionBytes atomic.Uint64
	retired     atomic.Bool

	maxCoverage float64
	warmupBytes uint64
}

// TrackerConfig holds configuration for the effectiveness tracker.
type TrackerConfig struct {
	// MaxCoverage is the highest acceptable ratio of flagged region bytes to
	// text bytes. Above it the filter is retired.
	// Default: 0.85
	MaxCoverage float64

	// WarmupBytes is the amount of text to observe before coverage is
	// checked, preventing retirement on small unrepresentative samples.
	// Default: 64 KiB
	WarmupBytes uint64
}

// DefaultTrackerConfig returns the default tracker configuration.
func DefaultTrackerConfig() TrackerConfig {
	return TrackerConfig{
		MaxCoverage: 0.85,
		WarmupBytes: 64 << 10,
	}
}

// NewTracker creates a tracker with the given configuration. Zero-valued
// fields fall back to the defaults.
func NewTracker(config TrackerConfig) *Tracker {
	def := DefaultTrackerConfig()
	if config.MaxCoverage <= 0 {
		config.MaxCoverage = def.MaxCoverage
	}
	if config.WarmupBytes == 0 {
		config.WarmupBytes = def.WarmupBytes
	}
	return &Tracker{
		maxCoverage: config.MaxCoverage,
		warmupBytes: config.WarmupBytes,
	}
}

// Record accumulates the outcome of one filter run and re-evaluates whether
// the filter is still worth running.
func (t *Tracker) Record(textLen int, flagged uint64) {
	if textLen <= 0 {
		return
	}
	total := t.textBytes.Add(uint64(textLen))
	covered := t.regionBytes.Add(flagged)

	if total < t.warmupBytes {
		return
	}
	if float64(covered)/float64(total) > t.maxCoverage {
		t.retired.Store(true)
	}
}

// IsActive reports whether the filter should still be run. When false, the
// caller should scan every pattern over the full text instead.
func (t *Tracker) IsActive() bool {
	return !t.retired.Load()
}

// Stats returns the accumulated counters.
//
// Returns (textBytes, regionBytes, coverage, active).
func (t *Tracker) Stats() (textBytes, regionBytes uint64, coverage float64, active bool) {
	textBytes = t.textBytes.Load()
	regionBytes = t.regionBytes.Load()
	if textBytes > 0 {
		coverage = float64(regionBytes) / float64(textBytes)
	}
	active = !t.retired.Load()
	return
}

// Reset clears the counters and re-enables the filter.
func (t *Tracker) Reset() {
	t.textBytes.Store(0)
	t.regionBytes.Store(0)
	t.retired.Store(false)
}

// RegionBytes sums the lengths of the given regions. Helper for callers
// feeding Record.
func RegionBytes(regions []myers.Region) uint64 {
	var total uint64
	for _, r := range regions {
		total += uint64(r.Len())
	}
	return total
}
