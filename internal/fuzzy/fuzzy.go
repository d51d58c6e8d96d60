// Package fuzzy scores candidate strings against a typed query using
// case-insensitive subsequence matching.
package fuzzy

import "strings"

// Score weights. Exact beats prefix beats any combination of run and
// position bonuses: a non-exact match can accumulate at most one
// prefix bonus plus runBonus per rune plus the start bonus, which
// stays far below exactScore for any realistic candidate length.
const (
	exactScore  = 1_000_000
	prefixBonus = 100_000
	runBonus    = 16
	startBonus  = 1_000
)

// Match reports whether every rune of query appears in candidate in
// order, and how good the match is. Higher scores are better matches.
// The empty query matches everything with score zero. The function is
// pure: identical inputs always produce identical results.
func Match(candidate, query string) (score int, ok bool) {
	if query == "" {
		return 0, true
	}

	c := []rune(strings.ToLower(candidate))
	q := []rune(strings.ToLower(query))

	if string(c) == string(q) {
		return exactScore, true
	}

	// Greedy leftmost subsequence scan
	var (
		qi       int
		first    = -1
		prev     = -2
		runScore int
	)
	for ci, r := range c {
		if qi < len(q) && r == q[qi] {
			if first < 0 {
				first = ci
			}
			if ci == prev+1 {
				runScore += runBonus
			}
			prev = ci
			qi++
			if qi == len(q) {
				break
			}
		}
	}
	if qi < len(q) {
		return 0, false
	}

	score = runScore
	// A prefix is the whole query matched contiguously from index 0,
	// not merely a first hit at index 0.
	if first == 0 && prev == len(q)-1 {
		score += prefixBonus
	}
	if first < startBonus {
		score += startBonus - first
	}
	return score, true
}
