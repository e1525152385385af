package lexicon

import "sort"

// EditDistance computes the Levenshtein distance between a and b over code points.
func EditDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	la, lb := len(ra), len(rb)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	// Use single-row DP to save memory.
	prev := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}

	for i := 1; i <= la; i++ {
		cur := make([]int, lb+1)
		cur[0] = i
		for j := 1; j <= lb; j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			del := prev[j] + 1
			ins := cur[j-1] + 1
			sub := prev[j-1] + cost
			m := del
			if ins < m {
				m = ins
			}
			if sub < m {
				m = sub
			}
			cur[j] = m
		}
		prev = cur
	}
	return prev[lb]
}

// Nearest returns the dictionary token closest to token by edit distance.
// Ties are broken lexicographically so the result is stable across runs.
// It returns false for an empty dictionary.
func (d *Dictionary) Nearest(token string) (string, bool) {
	if len(d.Entries) == 0 {
		return "", false
	}
	tokens := d.Tokens()
	sort.Strings(tokens)

	best, bestDist := "", -1
	for _, t := range tokens {
		dist := EditDistance(token, t)
		if bestDist < 0 || dist < bestDist {
			best, bestDist = t, dist
		}
	}
	return best, true
}
