package myers

// resolveStarts fills in the start offset of each end-position match by
// running the same column scan backwards: the text slice that can contain the
// match and the pattern are both reversed, and every reversed match end maps
// to a forward start offset. No separate backward algorithm is needed.
//
// Among the reversed candidates the smallest forward start wins, i.e. the
// longest recovered match; ties keep the first candidate encountered.
func resolveStarts(text, pattern []byte, matches []Match) []Match {
	if len(matches) == 0 {
		return nil
	}

	patRev := reverse(pattern)
	profRev := NewProfile(patRev)

	resolved := make([]Match, len(matches))
	for i, m := range matches {
		// A match with e errors spans at most len(pattern)+e text bytes.
		limit := m.End - len(pattern) - m.Errors
		if limit < 0 {
			limit = 0
		}
		textRev := reverse(text[limit:m.End])

		// textRev[0] is text[m.End-1], so a reversed match ending at rm.End
		// covers the forward range [m.End-rm.End, m.End).
		start := m.End
		for _, rm := range findEnds(textRev, profRev, m.Errors, nil) {
			if s := m.End - rm.End; s < start {
				start = s
			}
		}

		resolved[i] = Match{Start: start, End: m.End, Errors: m.Errors}
	}
	return resolved
}

// reverse returns a reversed copy of b.
func reverse(b []byte) []byte {
	out := make([]byte, len(b))
	for i, c := range b {
		out[len(b)-1-i] = c
	}
	return out
}
