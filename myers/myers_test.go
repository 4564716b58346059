package myers

import (
	"reflect"
	"testing"
)

func TestSearchExact(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		pattern string
		want    []Match
	}{
		{
			name:    "single occurrence",
			text:    "three blind mice",
			pattern: "blind",
			want:    []Match{{Start: 6, End: 11, Errors: 0}},
		},
		{
			name:    "multiple occurrences",
			text:    "abc abc abc",
			pattern: "abc",
			want: []Match{
				{Start: 0, End: 3, Errors: 0},
				{Start: 4, End: 7, Errors: 0},
				{Start: 8, End: 11, Errors: 0},
			},
		},
		{
			name:    "overlapping occurrences",
			text:    "aaaa",
			pattern: "aa",
			want: []Match{
				{Start: 0, End: 2, Errors: 0},
				{Start: 1, End: 3, Errors: 0},
				{Start: 2, End: 4, Errors: 0},
			},
		},
		{
			name:    "whole text",
			text:    "abc",
			pattern: "abc",
			want:    []Match{{Start: 0, End: 3, Errors: 0}},
		},
		{
			name:    "no occurrence",
			text:    "three blind mice",
			pattern: "mole",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Search([]byte(tt.text), []byte(tt.pattern), 0)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Search(%q, %q, 0) = %v, want %v", tt.text, tt.pattern, got, tt.want)
			}
		})
	}
}

func TestSearchApproximate(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		pattern   string
		maxErrors int
		want      []Match
	}{
		{
			name:      "one substitution",
			text:      "three blind mice",
			pattern:   "blond",
			maxErrors: 1,
			want:      []Match{{Start: 6, End: 11, Errors: 1}},
		},
		{
			name:      "one deletion in text",
			text:      "three blnd mice",
			pattern:   "blind",
			maxErrors: 1,
			want:      []Match{{Start: 6, End: 10, Errors: 1}},
		},
		{
			name:      "one insertion in text",
			text:      "three bliind mice",
			pattern:   "blind",
			maxErrors: 1,
			want:      []Match{{Start: 6, End: 12, Errors: 1}},
		},
		{
			// A transposition costs two unit edits, and at that distance the
			// shorter prefixes "bln" and "blni" tie with the full "blnid".
			name:      "transposition costs two",
			text:      "three blnid mice",
			pattern:   "blind",
			maxErrors: 2,
			want: []Match{
				{Start: 6, End: 9, Errors: 2},
				{Start: 6, End: 10, Errors: 2},
				{Start: 6, End: 11, Errors: 2},
			},
		},
		{
			name:      "budget too small",
			text:      "three blind mice",
			pattern:   "bxxxd",
			maxErrors: 1,
			want:      nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Search([]byte(tt.text), []byte(tt.pattern), tt.maxErrors)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Search(%q, %q, %d) = %v, want %v",
					tt.text, tt.pattern, tt.maxErrors, got, tt.want)
			}
		})
	}
}

// An exact occurrence anywhere in the text suppresses all approximate ones,
// regardless of which comes first.
func TestSearchMinimalErrorOnly(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		pattern string
		want    []Match
	}{
		{
			name:    "exact after approximate",
			text:    "abxc then abc",
			pattern: "abc",
			want:    []Match{{Start: 10, End: 13, Errors: 0}},
		},
		{
			name:    "exact before approximate",
			text:    "abc then abxc",
			pattern: "abc",
			want:    []Match{{Start: 0, End: 3, Errors: 0}},
		},
		{
			name:    "two equally good matches both kept",
			text:    "abc and abc",
			pattern: "abc",
			want: []Match{
				{Start: 0, End: 3, Errors: 0},
				{Start: 8, End: 11, Errors: 0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Search([]byte(tt.text), []byte(tt.pattern), 2)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Search(%q, %q, 2) = %v, want %v", tt.text, tt.pattern, got, tt.want)
			}
		})
	}
}

func TestSearchDegenerateInputs(t *testing.T) {
	if got := Search(nil, []byte("abc"), 1); got != nil {
		t.Errorf("empty text: got %v, want nil", got)
	}
	if got := Search([]byte("abc"), nil, 1); got != nil {
		t.Errorf("empty pattern: got %v, want nil", got)
	}
	if got := Search([]byte("abc"), []byte("abc"), -1); got != nil {
		t.Errorf("negative budget: got %v, want nil", got)
	}
}

// A budget at or above the pattern length clamps: everything matches with at
// most len(pattern) errors, never more.
func TestSearchBudgetClamp(t *testing.T) {
	text := []byte("zzzz")
	pattern := []byte("ab")

	got := Search(text, pattern, 100)
	if len(got) == 0 {
		t.Fatal("clamped budget should still produce matches")
	}
	for _, m := range got {
		if m.Errors > len(pattern) {
			t.Errorf("match %v exceeds clamped budget %d", m, len(pattern))
		}
	}
}

func TestSearchRegions(t *testing.T) {
	text := []byte("abc middle abc")
	pattern := []byte("abc")

	tests := []struct {
		name    string
		regions []Region
		want    []Match
	}{
		{
			name:    "nil means whole text",
			regions: nil,
			want: []Match{
				{Start: 0, End: 3, Errors: 0},
				{Start: 11, End: 14, Errors: 0},
			},
		},
		{
			name:    "region restricts to first occurrence",
			regions: []Region{{Start: 0, End: 5}},
			want:    []Match{{Start: 0, End: 3, Errors: 0}},
		},
		{
			name:    "region restricts to second occurrence",
			regions: []Region{{Start: 10, End: 14}},
			want:    []Match{{Start: 11, End: 14, Errors: 0}},
		},
		{
			name:    "region excluding all occurrences",
			regions: []Region{{Start: 3, End: 10}},
			want:    nil,
		},
		{
			name:    "out of range bounds are clipped",
			regions: []Region{{Start: -5, End: 1000}},
			want: []Match{
				{Start: 0, End: 3, Errors: 0},
				{Start: 11, End: 14, Errors: 0},
			},
		},
		{
			name:    "empty region list finds nothing",
			regions: []Region{},
			want:    nil,
		},
		{
			name:    "inverted region is skipped",
			regions: []Region{{Start: 8, End: 2}},
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SearchRegions(text, pattern, 0, tt.regions)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SearchRegions(regions=%v) = %v, want %v", tt.regions, got, tt.want)
			}
		})
	}
}

// The error ratchet spans region boundaries: an exact occurrence in a later
// region suppresses an approximate one found in an earlier region.
func TestSearchRegionsRatchetAcrossRegions(t *testing.T) {
	text := []byte("abxc then abc")
	pattern := []byte("abc")
	regions := []Region{{Start: 0, End: 5}, {Start: 9, End: 13}}

	got := SearchRegions(text, pattern, 1, regions)
	want := []Match{{Start: 10, End: 13, Errors: 0}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

// Scanning inside a region must behave as if the region were the whole text:
// a match straddling the boundary is not found, matching the contract that
// callers pad regions.
func TestSearchRegionsNoStraddle(t *testing.T) {
	text := []byte("xxabcxx")
	pattern := []byte("abc")

	got := SearchRegions(text, pattern, 0, []Region{{Start: 0, End: 3}, {Start: 3, End: 7}})
	if got != nil {
		t.Errorf("straddling match should not be found, got %v", got)
	}

	got = SearchRegions(text, pattern, 0, []Region{{Start: 1, End: 6}})
	want := []Match{{Start: 2, End: 5, Errors: 0}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("covered match: got %v, want %v", got, want)
	}
}

func TestMatchLen(t *testing.T) {
	m := Match{Start: 3, End: 9, Errors: 1}
	if m.Len() != 6 {
		t.Errorf("Len() = %d, want 6", m.Len())
	}
}
