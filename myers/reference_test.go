package myers

import (
	"math/rand"
	"reflect"
	"testing"
)

// Reference implementation: the plain O(n*m) dynamic program the bit-parallel
// scanner must agree with. Row 0 is all zeroes (a match may start at any text
// position), column 0 is the pattern prefix length (an empty text prefix
// costs one deletion per pattern byte).

// refBottomRow returns, for every text prefix length j, the minimum edit
// distance between the pattern and any substring of text ending at j.
func refBottomRow(pattern, text []byte) []int {
	prev := make([]int, len(text)+1)
	cur := make([]int, len(text)+1)
	for i := 1; i <= len(pattern); i++ {
		cur[0] = i
		for j := 1; j <= len(text); j++ {
			cost := 1
			if pattern[i-1] == text[j-1] {
				cost = 0
			}
			d := prev[j-1] + cost
			if v := prev[j] + 1; v < d {
				d = v
			}
			if v := cur[j-1] + 1; v < d {
				d = v
			}
			cur[j] = d
		}
		prev, cur = cur, prev
	}
	return prev
}

// refEditDistance is the unit-cost Levenshtein distance between a and b.
func refEditDistance(a, b []byte) int {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			d := prev[j-1] + cost
			if v := prev[j] + 1; v < d {
				d = v
			}
			if v := cur[j-1] + 1; v < d {
				d = v
			}
			cur[j] = d
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}

// refSearch reproduces the Search contract with the dynamic program: all ends
// whose bottom-row score equals the global minimum within budget, each start
// the leftmost offset achieving that score.
func refSearch(text, pattern []byte, maxErrors int) []Match {
	if len(pattern) == 0 || maxErrors < 0 {
		return nil
	}
	if maxErrors > len(pattern) {
		maxErrors = len(pattern)
	}

	bottom := refBottomRow(pattern, text)
	best := maxErrors + 1
	for j := 1; j <= len(text); j++ {
		if bottom[j] < best {
			best = bottom[j]
		}
	}
	if best > maxErrors {
		return nil
	}

	var matches []Match
	for end := 1; end <= len(text); end++ {
		if bottom[end] != best {
			continue
		}
		limit := end - len(pattern) - best
		if limit < 0 {
			limit = 0
		}
		start := end
		for s := limit; s < end; s++ {
			if refEditDistance(pattern, text[s:end]) == best {
				start = s
				break
			}
		}
		matches = append(matches, Match{Start: start, End: end, Errors: best})
	}
	return matches
}

func checkAgainstReference(t *testing.T, text, pattern []byte, maxErrors int) {
	t.Helper()
	got := Search(text, pattern, maxErrors)
	want := refSearch(text, pattern, maxErrors)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Search(%q, %q, %d):\n  got  %v\n  want %v",
			text, pattern, maxErrors, got, want)
	}
}

func TestSearchAgainstReferenceFixed(t *testing.T) {
	tests := []struct {
		text      string
		pattern   string
		maxErrors int
	}{
		{"three blind mice", "blind", 0},
		{"three blind mice", "blnd", 1},
		{"three blind mice", "blnid", 2},
		{"the quick brown fox", "quikc", 2},
		{"aaaa", "aa", 0},
		{"aaaa", "aa", 1},
		{"abababab", "aba", 1},
		{"mississippi", "issip", 1},
		{"mississippi", "ssis", 2},
		{"banana", "ana", 0},
		{"banana", "anna", 1},
		{"xyz", "abc", 3},
		{"", "abc", 2},
		{"abc", "abc", 0},
		{"abcabc", "abc", 10}, // budget clamps to pattern length
	}

	for _, tt := range tests {
		checkAgainstReference(t, []byte(tt.text), []byte(tt.pattern), tt.maxErrors)
	}
}

// Patterns whose length sits at or around the 32-bit block boundary exercise
// the multi-block carry chain and the partial final block.
func TestSearchAgainstReferenceBlockBoundaries(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	alphabet := []byte("ab")

	randBytes := func(n int) []byte {
		out := make([]byte, n)
		for i := range out {
			out[i] = alphabet[rng.Intn(len(alphabet))]
		}
		return out
	}

	lengths := []int{31, 32, 33, 60, 61, 62, 63, 64, 65, 66, 67, 68, 69, 70, 96, 97}
	for _, n := range lengths {
		pattern := randBytes(n)

		// Plant a mutated copy of the pattern inside random text so matches
		// actually exist at interesting error counts.
		mutated := make([]byte, n)
		copy(mutated, pattern)
		for i := 0; i < 3; i++ {
			mutated[rng.Intn(n)] = alphabet[rng.Intn(len(alphabet))]
		}
		text := append(randBytes(50), mutated...)
		text = append(text, randBytes(50)...)

		for _, k := range []int{0, 1, 3, 5} {
			checkAgainstReference(t, text, pattern, k)
		}
	}
}

func TestSearchAgainstReferenceRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	alphabet := []byte("abc")

	randBytes := func(n int) []byte {
		out := make([]byte, n)
		for i := range out {
			out[i] = alphabet[rng.Intn(len(alphabet))]
		}
		return out
	}

	for trial := 0; trial < 300; trial++ {
		text := randBytes(1 + rng.Intn(120))
		pattern := randBytes(1 + rng.Intn(12))
		maxErrors := rng.Intn(5)
		checkAgainstReference(t, text, pattern, maxErrors)
	}
}

func TestSearchDeterministic(t *testing.T) {
	text := []byte("the quick brown fox jumps over the lazy dog")
	pattern := []byte("jmups")

	first := Search(text, pattern, 2)
	for i := 0; i < 10; i++ {
		again := Search(text, pattern, 2)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs: %v vs %v", i, again, first)
		}
	}
}
