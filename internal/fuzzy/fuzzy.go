// Package fuzzy suggests the closest known trigger for a mistyped one.
// Used by optmap to decorate unknown-trigger parse errors.
package fuzzy

import "strings"

// FindBestTrigger returns the compiled trigger closest to input within
// maxDistance edits, or "" when nothing is close enough. Leading dashes are
// ignored when measuring distance so "--frce" still suggests "--force" and
// "-force" suggests "--force" at distance zero; the returned value is the
// original trigger including its dashes.
func FindBestTrigger(input string, triggers []string, maxDistance int) string {
	bare := strings.TrimLeft(strings.ToLower(input), "-")
	if len(bare) < 2 {
		// Single-letter typos are ambiguous; don't guess.
		return ""
	}

	best := ""
	bestDistance := maxDistance + 1
	bestPrefix := -1
	for _, trigger := range triggers {
		if trigger == input {
			// A registered trigger never reaches the unknown-trigger path;
			// only a verbatim match is not a suggestion.
			continue
		}
		candidate := strings.TrimLeft(strings.ToLower(trigger), "-")
		d := distance(bare, candidate, maxDistance)
		if d > maxDistance {
			continue
		}
		p := commonPrefix(bare, candidate)
		if d < bestDistance || (d == bestDistance && p > bestPrefix) {
			best = trigger
			bestDistance = d
			bestPrefix = p
		}
	}
	return best
}

// distance is a two-row Levenshtein with early exit once every entry of a
// row exceeds maxDistance.
func distance(a, b string, maxDistance int) int {
	if abs(len(a)-len(b)) > maxDistance {
		return maxDistance + 1
	}
	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	cur := make([]int, len(a)+1)
	for i := range prev {
		prev[i] = i
	}

	for i := 1; i <= len(b); i++ {
		cur[0] = i
		rowMin := i
		for j := 1; j <= len(a); j++ {
			cost := 1
			if a[j-1] == b[i-1] {
				cost = 0
			}
			cur[j] = minThree(cur[j-1]+1, prev[j]+1, prev[j-1]+cost)
			if cur[j] < rowMin {
				rowMin = cur[j]
			}
		}
		if rowMin > maxDistance {
			return maxDistance + 1
		}
		prev, cur = cur, prev
	}
	return prev[len(a)]
}

func commonPrefix(a, b string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

func minThree(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
