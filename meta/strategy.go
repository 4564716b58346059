package meta

// Strategy represents the execution plan selected for a compiled pattern set.
//
// Selection is automatic at compile time from the pattern count, the error
// budgets, and the configuration; it only changes afterwards if the region
// filter is retired by its effectiveness tracker.
type Strategy int

const (
	// UseScan runs the single-pattern column scan over the whole text.
	// Selected for one pattern with a non-zero error budget: a filtering
	// pass over one pattern would cost exactly as much as the scan itself.
	UseScan Strategy = iota

	// UseExact runs an Aho-Corasick pass over the pattern set, then verifies
	// each pattern inside the flagged regions with a zero-budget scan.
	// Selected when every pattern's (clamped) budget is zero: literal
	// occurrences are all that can match, and the automaton finds them in
	// one pass regardless of pattern count.
	UseExact

	// UseRegionFilter runs one superimposed-profile pass with the combined
	// budget, then the per-pattern scan and start resolution restricted to
	// the flagged regions. Selected for multiple patterns when any budget is
	// non-zero.
	UseRegionFilter

	// UseFullScan scans every pattern over the whole text. Selected when
	// filtering is disabled by config, impossible (every pattern empty), or
	// retired by the effectiveness tracker.
	UseFullScan
)

// String returns a human-readable strategy name.
func (s Strategy) String() string {
	switch s {
	case UseScan:
		return "UseScan"
	case UseExact:
		return "UseExact"
	case UseRegionFilter:
		return "UseRegionFilter"
	case UseFullScan:
		return "UseFullScan"
	default:
		return "Unknown"
	}
}

// selectStrategy picks the execution plan for the compiled patterns.
// Budgets are already clamped.
func selectStrategy(patterns []pattern, config Config) Strategy {
	nonEmpty := 0
	allZero := true
	for _, p := range patterns {
		if len(p.raw) == 0 {
			continue
		}
		nonEmpty++
		if p.maxErrors > 0 {
			allZero = false
		}
	}

	if nonEmpty == 0 {
		// Nothing can ever match; the scan paths all reduce to no-ops.
		return UseFullScan
	}
	if allZero && config.EnableExactFilter {
		return UseExact
	}
	if len(patterns) == 1 {
		return UseScan
	}
	if config.EnableRegionFilter {
		return UseRegionFilter
	}
	return UseFullScan
}
