// Package meta implements the search engine orchestrator: it validates and
// compiles pattern sets, selects the execution strategy, and coordinates the
// filtering and verification passes.
package meta

import (
	"errors"
	"fmt"
)

// Common engine errors
var (
	// ErrNegativeBudget indicates a pattern was configured with a negative
	// error budget. Budgets larger than the pattern length are clamped, but
	// negative budgets are rejected rather than producing undefined shifts.
	ErrNegativeBudget = errors.New("negative error budget")

	// ErrPatternTooLong indicates a pattern exceeds Config.MaxPatternLen
	ErrPatternTooLong = errors.New("pattern too long")

	// ErrInvalidConfig indicates invalid configuration was provided
	ErrInvalidConfig = errors.New("invalid engine configuration")
)

// CompileError wraps compilation errors with the offending pattern
type CompileError struct {
	Pattern string
	Err     error
}

// Error implements the error interface
func (e *CompileError) Error() string {
	if e.Pattern != "" {
		return fmt.Sprintf("fuzzex: cannot compile pattern %q: %v", e.Pattern, e.Err)
	}
	return fmt.Sprintf("fuzzex: compilation failed: %v", e.Err)
}

// Unwrap returns the underlying error
func (e *CompileError) Unwrap() error {
	return e.Err
}
