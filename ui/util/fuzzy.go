package util

import (
	"sort"
	"strings"
	"unicode"
)

// Match represents a scored fuzzy match result.
type Match struct {
	Index     int   // Original index in input slice
	Score     int   // Match quality (higher = better)
	Positions []int // Matched rune positions (for highlighting)
}

// FuzzyFilter ranks items by how well they match pattern, best first.
// Each space-separated term must match as a case-insensitive subsequence.
// An empty pattern returns every item in its original order.
func FuzzyFilter(pattern string, items []string) []Match {
	terms := strings.Fields(pattern)
	if len(terms) == 0 {
		matches := make([]Match, len(items))
		for i := range items {
			matches[i] = Match{Index: i}
		}
		return matches
	}

	var matches []Match
	for i, item := range items {
		total := 0
		var positions []int
		for _, term := range terms {
			score, pos := subsequence(term, item)
			if score == 0 {
				total = 0
				break
			}
			total += score
			positions = append(positions, pos...)
		}
		if total > 0 {
			sort.Ints(positions)
			matches = append(matches, Match{Index: i, Score: total, Positions: positions})
		}
	}

	sort.SliceStable(matches, func(a, b int) bool {
		return matches[a].Score > matches[b].Score
	})
	return matches
}

// subsequence scores term against text. Consecutive runs and matches at the
// start of a word score higher. Zero means no match.
func subsequence(term, text string) (int, []int) {
	t := []rune(strings.ToLower(term))
	runes := []rune(text)

	score := 0
	positions := make([]int, 0, len(t))
	ti := 0
	prev := -2
	for i, r := range runes {
		if ti == len(t) {
			break
		}
		if unicode.ToLower(r) != t[ti] {
			continue
		}
		score++
		if i == prev+1 {
			score += 2
		}
		if i == 0 || !unicode.IsLetter(runes[i-1]) && !unicode.IsDigit(runes[i-1]) {
			score += 3
		}
		positions = append(positions, i)
		prev = i
		ti++
	}
	if ti < len(t) {
		return 0, nil
	}
	return score, positions
}
