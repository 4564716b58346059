package myers

// findEnds scans text (or the given regions of it) against the profile and
// returns all qualifying match end positions with their error counts, starts
// unresolved (-1).
//
// The scan ratchets: when a column produces a strictly lower error count than
// every match so far, the collected matches are discarded and the budget is
// tightened to that count for the rest of the call. The ratchet both bounds
// window growth for the remaining text and guarantees that the result holds
// only globally minimal-error matches whenever any match exists.
//
// A nil regions slice scans the whole text. State is reset at every region
// boundary; the ratcheted budget carries across regions.
func findEnds(text []byte, prof *Profile, maxErrors int, regions []Region) []Match {
	if prof == nil {
		return nil
	}
	if maxErrors > prof.length {
		maxErrors = prof.length
	}
	if regions == nil {
		regions = []Region{{Start: 0, End: len(text)}}
	}

	var matches []Match
	state := NewScanState(prof)

	for _, rg := range regions {
		start, end := rg.Start, rg.End
		if start < 0 {
			start = 0
		}
		if end > len(text) {
			end = len(text)
		}
		if start >= end {
			continue
		}

		state.Reset(prof, maxErrors)
		for j := start; j < end; j++ {
			score, atBottom := state.Next(prof, text[j], maxErrors)
			if !atBottom || score > maxErrors {
				continue
			}
			if score < maxErrors {
				// Strictly better match: everything collected so far is now
				// irrelevant, and the tighter budget applies from here on.
				matches = matches[:0]
				maxErrors = score
			}
			matches = append(matches, Match{Start: -1, End: j + 1, Errors: score})
		}
	}

	return matches
}
