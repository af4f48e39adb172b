package clash

// DetectClashes runs the broad-phase-then-classify pipeline over a single
// set of candidates, checking every unordered pair whose AABBs (expanded
// by the clearance distance, if any) overlap.
func DetectClashes(candidates []Candidate, tol Tolerances, opts FilterOptions) []Result {
	if len(candidates) < 2 {
		return nil
	}
	margin := tol.Clearance
	if margin < 0 {
		margin = 0
	}
	idx := newBroadPhaseIndex(candidates)
	posOf := make(map[string]int, len(candidates))
	byID := make(map[string]Candidate, len(candidates))
	for i, c := range candidates {
		posOf[c.ID] = i
		byID[c.ID] = c
	}

	var results []Result
	for _, a := range candidates {
		for _, bid := range idx.overlapping(a.AABB, margin) {
			if posOf[bid] <= posOf[a.ID] {
				continue // each unordered pair is visited once, from its lower-position side
			}
			b := byID[bid]
			if opts.SuppressSameType && a.TypeTag == b.TypeTag {
				continue
			}
			if r, ok := classifyPair(a, b, tol); ok {
				results = append(results, r)
			}
		}
	}
	return results
}

// DetectClashesBetween runs the same pipeline between two sets, supporting
// spec §4.K's allowed-type lists per side (A-side candidates not matching
// AllowedTypesA, or B-side not matching AllowedTypesB, are skipped before
// classification).
func DetectClashesBetween(setA, setB []Candidate, tol Tolerances, opts FilterOptions) []Result {
	if len(setA) == 0 || len(setB) == 0 {
		return nil
	}
	margin := tol.Clearance
	if margin < 0 {
		margin = 0
	}
	idxB := newBroadPhaseIndex(setB)
	byIDB := make(map[string]Candidate, len(setB))
	for _, c := range setB {
		byIDB[c.ID] = c
	}

	var results []Result
	for _, a := range setA {
		if !opts.allowsSide(opts.AllowedTypesA, a.TypeTag) {
			continue
		}
		for _, bid := range idxB.overlapping(a.AABB, margin) {
			b := byIDB[bid]
			if !opts.allowsSide(opts.AllowedTypesB, b.TypeTag) {
				continue
			}
			if opts.SuppressSameType && a.TypeTag == b.TypeTag {
				continue
			}
			if r, ok := classifyPair(a, b, tol); ok {
				results = append(results, r)
			}
		}
	}
	return results
}
