package meta

import (
	"fmt"

	"github.com/coregx/fuzzex/prefilter"
)

// Config controls engine behavior and performance characteristics.
//
// Example:
//
//	config := meta.DefaultConfig()
//	config.EnableRegionFilter = false // scan every pattern over the full text
//	engine, err := meta.Compile(configs, config)
type Config struct {
	// EnableRegionFilter enables the superimposed-profile filtering pass for
	// multi-pattern searches. When false, every pattern scans the full text.
	// Default: true
	EnableRegionFilter bool

	// EnableExactFilter enables the Aho-Corasick filtering pass when every
	// pattern's error budget is zero.
	// Default: true
	EnableExactFilter bool

	// MaxPatternLen caps the accepted pattern length. Scan state costs
	// O(len/32) words per pattern, so the cap mainly guards against
	// accidental multi-megabyte "patterns"; raise it if you really mean it.
	// Default: 1 << 20
	MaxPatternLen int

	// Tracker configures region-filter effectiveness tracking. When the
	// flagged regions persistently cover most of the text, the filter is
	// retired for this engine and searches degrade to full per-pattern scans.
	Tracker prefilter.TrackerConfig
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		EnableRegionFilter: true,
		EnableExactFilter:  true,
		MaxPatternLen:      1 << 20,
		Tracker:            prefilter.DefaultTrackerConfig(),
	}
}

// Validate checks if the configuration is valid.
// Returns an error if any parameter is out of range.
func (c Config) Validate() error {
	if c.MaxPatternLen < 1 {
		return fmt.Errorf("%w: MaxPatternLen must be >= 1, got %d", ErrInvalidConfig, c.MaxPatternLen)
	}
	if c.Tracker.MaxCoverage < 0 || c.Tracker.MaxCoverage > 1 {
		return fmt.Errorf("%w: Tracker.MaxCoverage must be in [0, 1], got %v", ErrInvalidConfig, c.Tracker.MaxCoverage)
	}
	return nil
}
