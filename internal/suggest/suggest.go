// Package suggest finds near matches for mistyped model and field names.
package suggest

import (
	"fmt"
	"sort"
	"strings"
)

// Levenshtein returns the number of single-rune edits between a and b.
func Levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) < len(rb) {
		ra, rb = rb, ra
	}

	row := make([]int, len(rb)+1)
	next := make([]int, len(rb)+1)
	for j := range row {
		row[j] = j
	}
	for i, ca := range ra {
		next[0] = i + 1
		for j, cb := range rb {
			sub := row[j]
			if ca != cb {
				sub++
			}
			next[j+1] = min(next[j]+1, row[j+1]+1, sub)
		}
		row, next = next, row
	}
	return row[len(rb)]
}

// Closest returns the candidate nearest to input within maxDist, or "".
// Case is ignored. Ties go to the alphabetically first candidate so the
// answer does not depend on map iteration order.
func Closest(input string, candidates []string, maxDist int) string {
	sorted := append([]string(nil), candidates...)
	sort.Strings(sorted)

	best := ""
	bestDist := maxDist + 1
	folded := strings.ToLower(input)
	for _, c := range sorted {
		d := Levenshtein(folded, strings.ToLower(c))
		if d < bestDist {
			bestDist = d
			best = c
		}
	}
	return best
}

// DidYouMean formats a suggestion for input, or returns "" when nothing is close.
func DidYouMean(input string, candidates []string, maxDist int) string {
	if best := Closest(input, candidates, maxDist); best != "" {
		return fmt.Sprintf("did you mean '%s'?", best)
	}
	return ""
}
