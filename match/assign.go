package match

// Author is one candidate owner for an email: the display name plus any
// compact byline spellings seen for the same person.
type Author struct {
	Full   string
	Shorts []string
}

// Candidate is one email awaiting assignment. Strict candidates came from an
// author-scoped "electronic address" field, so guessing an owner is worse
// than dropping the address.
type Candidate struct {
	Email  string
	Strict bool
}

// Pair is an assigned (email, author) result. Author indexes the input slice.
type Pair struct {
	Email  string
	Author int
}

// Assign matches each candidate email to at most one author for a single
// record. An author claims at most one email per pass, so a popular surname
// cannot absorb every address. Fallback order when no author scores above
// zero: positional pairing on equal counts, the sole author of the record,
// then the first unassigned author unless the candidate is strict.
func Assign(cands []Candidate, authors []Author) []Pair {
	if len(authors) == 0 {
		return nil
	}

	unassigned := make(map[int]bool, len(authors))
	for i := range authors {
		unassigned[i] = true
	}
	firstUnassigned := func() int {
		for i := range authors {
			if unassigned[i] {
				return i
			}
		}
		return -1
	}

	var pairs []Pair
	claim := func(email string, author int) {
		pairs = append(pairs, Pair{Email: email, Author: author})
		unassigned[author] = false
	}

	// Exclusion filtering happens before any counting, so the positional
	// fallback sees author-plausible addresses only.
	kept := make([]Candidate, 0, len(cands))
	for _, cand := range cands {
		if !IsExcluded(cand.Email) {
			kept = append(kept, cand)
		}
	}

	for i, cand := range kept {
		best, bestScore := -1, 0
		for j, a := range authors {
			if !unassigned[j] {
				continue
			}
			if s := Score(cand.Email, a.Full, a.Shorts); s > bestScore {
				best, bestScore = j, s
			}
		}
		if best >= 0 {
			claim(cand.Email, best)
			continue
		}

		// Positional fallback: parallel lists with no textual correlation.
		if len(kept) == len(authors) && unassigned[i] {
			claim(cand.Email, i)
			continue
		}

		// A sole author owns every address unconditionally.
		if len(authors) == 1 {
			claim(cand.Email, 0)
			continue
		}

		if cand.Strict {
			continue
		}
		if j := firstUnassigned(); j >= 0 {
			claim(cand.Email, j)
		}
	}

	return pairs
}
