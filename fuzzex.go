// Package fuzzex provides online approximate (fuzzy) substring search for Go.
//
// Given a text, a pattern, and an error budget k, fuzzex finds every place
// where a substring of the text matches the pattern with at most k
// single-byte insertions, deletions, or substitutions, without preprocessing
// or indexing the text. The engine is the Myers bit-parallel edit-distance
// recurrence over 32-bit blocks with an adaptive active window, so the work
// per text byte is proportional to k/32 rather than to the pattern length.
//
// Basic usage:
//
//	// One-shot search
//	matches, err := fuzzex.SearchString("three blind mice", "blnd", 1)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(matches) // [{6 11 1}]
//
//	// Compile once, search many texts
//	p := fuzzex.MustCompile("needle", 1)
//	for _, line := range lines {
//	    if p.MatchString(line) {
//	        fmt.Println(line)
//	    }
//	}
//
// Multi-pattern usage:
//
//	result, err := fuzzex.MultiSearchString("one two three four five six",
//	    []fuzzex.PatternConfig{
//	        {Pattern: []byte("one"), MaxErrors: 2},
//	        {Pattern: []byte("twwo"), MaxErrors: 2},
//	    })
//	// result.Matches[0] → matches for "one"
//	// result.Matches[1] → matches for "twwo"
//	// result.Regions    → candidate regions from the shared filtering pass
//
// Multi-pattern searches share one cheap filtering pass (a superimposed
// profile of all patterns, or an Aho-Corasick automaton when every budget is
// zero) before each pattern is verified individually inside the flagged
// regions.
//
// Result contract:
//   - matches are reported in increasing end order, end exclusive
//   - only matches with the minimal achievable error count are returned,
//     per pattern; a search that finds an exact occurrence will not also
//     report nearby approximate ones
//   - the start of each match is the smallest (leftmost) offset achieving
//     that error count, i.e. the longest extension
//
// Limitations:
//   - the scanner counts fixed-width 8-bit code units: a multi-byte UTF-8
//     rune counts as several symbols, and an edit inside one is counted per
//     byte
//   - edits have unit cost; weighted costs are out of scope
//   - an empty pattern matches nothing (by policy, not mathematics)
package fuzzex

import (
	"github.com/coregx/fuzzex/meta"
)

// Match is a single approximate occurrence: text[Start:End] matches the
// pattern with Errors edits. End is exclusive, offsets are zero-based.
type Match = meta.Match

// Region is a candidate [Start, End) text range produced by the multi-pattern
// filtering pass.
type Region = meta.Region

// PatternConfig pairs one pattern with its error budget for MultiSearch.
type PatternConfig = meta.PatternConfig

// Result is a multi-pattern search outcome: per-pattern match lists, indexed
// like the input configs, plus the candidate regions for diagnostics.
type Result = meta.Result

// Search finds all approximate occurrences of pattern in text with at most
// maxErrors edits.
//
// Matches are returned in end order, start-resolved, holding only the
// minimal achievable error count (see the package documentation for the full
// result contract). An empty pattern or empty text yields no matches; a
// negative maxErrors is an error; maxErrors larger than the pattern is
// clamped.
//
// Example:
//
//	matches, _ := fuzzex.Search([]byte("three blind mice"), []byte("blind"), 0)
//	// matches = [{Start: 6, End: 11, Errors: 0}]
func Search(text, pattern []byte, maxErrors int) ([]Match, error) {
	engine, err := meta.Compile(
		[]PatternConfig{{Pattern: pattern, MaxErrors: maxErrors}},
		meta.DefaultConfig(),
	)
	if err != nil {
		return nil, err
	}
	return engine.Search(text).Matches[0], nil
}

// SearchString is Search for strings.
//
// Example:
//
//	matches, _ := fuzzex.SearchString("three blind mice", "blnd", 1)
//	// matches = [{Start: 6, End: 11, Errors: 1}]
func SearchString(text, pattern string, maxErrors int) ([]Match, error) {
	return Search([]byte(text), []byte(pattern), maxErrors)
}

// MultiSearch finds approximate occurrences of several patterns in one pass
// over the text.
//
// result.Matches[i] corresponds to configs[i] and carries the same contract
// as Search. result.Regions exposes the candidate ranges produced by the
// shared filtering pass, for filtering-efficiency measurement. Every match
// returned by an equivalent per-pattern Search lies entirely inside one of
// these regions.
func MultiSearch(text []byte, configs []PatternConfig) (*Result, error) {
	set, err := CompileAll(configs)
	if err != nil {
		return nil, err
	}
	return set.Search(text), nil
}

// MultiSearchString is MultiSearch for a string text.
func MultiSearchString(text string, configs []PatternConfig) (*Result, error) {
	return MultiSearch([]byte(text), configs)
}

// Pattern is a compiled single-pattern searcher.
//
// A Pattern is immutable and safe for concurrent use; all per-search state
// lives inside each call.
//
// Example:
//
//	p := fuzzex.MustCompile("recieve", 2)
//	if p.MatchString("did you receive it?") {
//	    fmt.Println("close enough")
//	}
type Pattern struct {
	engine    *meta.Engine
	pattern   string
	maxErrors int
}

// Compile compiles a pattern with the given error budget.
//
// Returns an error for a negative budget or an oversized pattern. An empty
// pattern compiles fine and never matches.
func Compile(pattern string, maxErrors int) (*Pattern, error) {
	engine, err := meta.Compile(
		[]PatternConfig{{Pattern: []byte(pattern), MaxErrors: maxErrors}},
		meta.DefaultConfig(),
	)
	if err != nil {
		return nil, err
	}
	return &Pattern{engine: engine, pattern: pattern, maxErrors: maxErrors}, nil
}

// MustCompile is Compile but panics on error.
//
// This is useful for patterns known to be valid at compile time:
//
//	var typoRecieve = fuzzex.MustCompile("recieve", 1)
func MustCompile(pattern string, maxErrors int) *Pattern {
	p, err := Compile(pattern, maxErrors)
	if err != nil {
		panic("fuzzex: Compile(" + pattern + "): " + err.Error())
	}
	return p
}

// Find returns all approximate occurrences of the pattern in text, with the
// same contract as Search.
func (p *Pattern) Find(text []byte) []Match {
	return p.engine.Search(text).Matches[0]
}

// FindString is Find for strings.
func (p *Pattern) FindString(text string) []Match {
	return p.Find([]byte(text))
}

// Match reports whether text contains at least one qualifying occurrence.
func (p *Pattern) Match(text []byte) bool {
	return len(p.Find(text)) > 0
}

// MatchString is Match for strings.
func (p *Pattern) MatchString(text string) bool {
	return p.Match([]byte(text))
}

// String returns the source pattern.
func (p *Pattern) String() string {
	return p.pattern
}

// MaxErrors returns the configured (unclamped) error budget.
func (p *Pattern) MaxErrors() int {
	return p.maxErrors
}

// PatternSet is a compiled multi-pattern searcher.
//
// Like Pattern, a PatternSet is immutable and safe for concurrent use.
type PatternSet struct {
	engine *meta.Engine
}

// CompileAll compiles a pattern set for multi-pattern search.
//
// The set shares one filtering pass per Search call; see MultiSearch.
func CompileAll(configs []PatternConfig) (*PatternSet, error) {
	engine, err := meta.Compile(configs, meta.DefaultConfig())
	if err != nil {
		return nil, err
	}
	return &PatternSet{engine: engine}, nil
}

// MustCompileAll is CompileAll but panics on error.
func MustCompileAll(configs []PatternConfig) *PatternSet {
	set, err := CompileAll(configs)
	if err != nil {
		panic("fuzzex: CompileAll: " + err.Error())
	}
	return set
}

// Search runs the set against the text; see MultiSearch for the contract.
func (s *PatternSet) Search(text []byte) *Result {
	return s.engine.Search(text)
}

// SearchString is Search for strings.
func (s *PatternSet) SearchString(text string) *Result {
	return s.Search([]byte(text))
}

// Len returns the number of patterns in the set.
func (s *PatternSet) Len() int {
	return s.engine.NumPatterns()
}

// Stats returns the engine's execution statistics, useful for measuring how
// much text the multi-pattern filtering pass eliminated.
func (s *PatternSet) Stats() meta.Stats {
	return s.engine.Stats()
}
