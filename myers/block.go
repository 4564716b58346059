package myers

// ScanState is the mutable per-call state of one column scan: the P/M delta
// words and running bottom-row score for each block, plus the index y of the
// topmost active block.
//
// Only blocks 0..y are maintained; y grows when the bottom of the window
// stays within budget and shrinks when it drifts out of reach. A ScanState is
// owned by a single scan and must not be shared between goroutines; it is
// reused across regions of one call via Reset.
type ScanState struct {
	p     []uint32
	m     []uint32
	score []int
	y     int
}

// NewScanState allocates scan state sized for the given profile.
func NewScanState(prof *Profile) *ScanState {
	n := prof.Blocks()
	return &ScanState{
		p:     make([]uint32, n),
		m:     make([]uint32, n),
		score: make([]int, n),
	}
}

// Reset initializes the state for a fresh scan with the given error budget:
// the active window covers blocks 0..ceil(maxErrors/32)-1, each with P all
// ones and M zero, and block scores equal to their bottom-row distance from
// an empty text prefix. The final block's score uses the true pattern length
// since that block may be partial.
func (s *ScanState) Reset(prof *Profile, maxErrors int) {
	s.y = 0
	if y := (maxErrors+WordSize-1)/WordSize - 1; y > 0 {
		s.y = y
	}
	for b := 0; b <= s.y; b++ {
		s.p[b] = ^uint32(0)
		s.m[b] = 0
		s.score[b] = (b + 1) * WordSize
	}
	s.score[prof.bMax] = prof.length
}

// Next advances the column state by one text byte and returns the score at
// the bottom of the active window, along with whether the window currently
// reaches the pattern's final block (only then is the score the full-pattern
// edit distance and a match test meaningful).
//
// maxErrors may decrease between calls (the scanner's ratchet); it must never
// increase within one scan.
func (s *ScanState) Next(prof *Profile, c byte, maxErrors int) (score int, atBottom bool) {
	peq := prof.masks(c)

	carry := 0
	for b := 0; b <= s.y; b++ {
		carry = s.advanceBlock(prof, peq, b, carry)
		s.score[b] += carry
	}

	if s.score[s.y]-carry <= maxErrors && s.y < prof.bMax &&
		(peq[s.y+1]&1 != 0 || carry < 0) {
		// The next block down could be within budget this column: grow the
		// window and compute its score from the block above.
		s.y++
		s.p[s.y] = ^uint32(0)
		s.m[s.y] = 0

		width := WordSize
		if s.y == prof.bMax {
			if rem := prof.length % WordSize; rem != 0 {
				width = rem
			}
		}
		s.score[s.y] = s.score[s.y-1] + width - carry + s.advanceBlock(prof, peq, s.y, carry)
	} else {
		// Retire blocks whose bottom row can no longer get back under the
		// budget within one block of vertical moves.
		for s.y > 0 && s.score[s.y] >= maxErrors+WordSize {
			s.y--
		}
	}

	return s.score[s.y], s.y == prof.bMax
}

// advanceBlock advances a single 32-row block by one text byte.
//
// peq is the equality mask slice for the current byte, hIn the horizontal
// delta carried in from the block above (-1, 0 or +1). The return value is
// the horizontal delta at this block's bottom row, carried into the block
// below. P and M are updated in place.
//
// This is the Myers/Hyyrö recurrence verbatim. Every operation is over
// uint32 with wraparound; the addition inside xH is the carry chain that
// propagates matches through runs of pending deletions. Any deviation,
// including widening the words, silently corrupts scores.
func (s *ScanState) advanceBlock(prof *Profile, peq []uint32, b, hIn int) int {
	pV := s.p[b]
	mV := s.m[b]

	eq := peq[b]
	if hIn < 0 {
		eq |= 1
	}

	xV := peq[b] | mV
	xH := (((eq & pV) + pV) ^ pV) | eq

	pH := mV | ^(xH | pV)
	mH := pV & xH

	hOut := 0
	if pH&prof.last[b] != 0 {
		hOut = 1
	} else if mH&prof.last[b] != 0 {
		hOut = -1
	}

	pH <<= 1
	mH <<= 1
	if hIn < 0 {
		mH |= 1
	} else if hIn > 0 {
		pH |= 1
	}

	s.p[b] = mH | ^(xV | pH)
	s.m[b] = pH & xV

	return hOut
}
