package meta

import (
	"github.com/coregx/fuzzex/prefilter"
)

// Compile validates the pattern configurations and builds an Engine.
//
// Validation:
//   - a negative MaxErrors fails with ErrNegativeBudget
//   - a pattern longer than config.MaxPatternLen fails with ErrPatternTooLong
//   - MaxErrors larger than the pattern length is silently clamped
//   - empty patterns are accepted and simply never match
//
// Both failures are wrapped in a *CompileError naming the pattern.
//
// Example:
//
//	engine, err := meta.Compile([]meta.PatternConfig{
//	    {Pattern: []byte("needle"), MaxErrors: 2},
//	}, meta.DefaultConfig())
func Compile(configs []PatternConfig, config Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	patterns := make([]pattern, len(configs))
	for i, pc := range configs {
		if pc.MaxErrors < 0 {
			return nil, &CompileError{Pattern: string(pc.Pattern), Err: ErrNegativeBudget}
		}
		if len(pc.Pattern) > config.MaxPatternLen {
			return nil, &CompileError{Pattern: truncate(pc.Pattern, 64), Err: ErrPatternTooLong}
		}

		k := pc.MaxErrors
		if k > len(pc.Pattern) {
			k = len(pc.Pattern)
		}

		raw := make([]byte, len(pc.Pattern))
		copy(raw, pc.Pattern)
		patterns[i] = pattern{raw: raw, maxErrors: k}
	}

	e := &Engine{
		patterns: patterns,
		config:   config,
		strategy: selectStrategy(patterns, config),
	}

	switch e.strategy {
	case UseExact:
		exact, err := prefilter.NewExactFilter(rawPatterns(patterns))
		if err != nil {
			return nil, &CompileError{Err: err}
		}
		e.exact = exact

	case UseRegionFilter:
		maxErrors := 0
		for _, p := range patterns {
			if p.maxErrors > maxErrors {
				maxErrors = p.maxErrors
			}
		}
		e.filter = prefilter.NewFilter(rawPatterns(patterns), maxErrors)
		if e.filter == nil {
			e.strategy = UseFullScan
			break
		}
		e.tracker = prefilter.NewTracker(config.Tracker)
	}

	return e, nil
}

// truncate renders at most n bytes of a pattern for error messages.
func truncate(pattern []byte, n int) string {
	if len(pattern) <= n {
		return string(pattern)
	}
	return string(pattern[:n]) + "..."
}

// rawPatterns collects the pattern byte slices for the filter builders.
func rawPatterns(patterns []pattern) [][]byte {
	raws := make([][]byte, len(patterns))
	for i, p := range patterns {
		raws[i] = p.raw
	}
	return raws
}
