// Package parse converts between the comma-separated text form of a height
// sequence and its integer form.
package parse

import (
	"math/rand"
	"strconv"
	"strings"
)

// Default bounds for Random, matching the "random" action of the UI.
const (
	DefaultRandomCount = 10
	DefaultRandomMax   = 8
)

// Heights parses comma-separated integers.
//
// Each token is trimmed and its leading integer is taken, so "2.5" reads as 2
// and "3cm" as 3. Tokens without a leading integer, or whose value is negative
// or out of range, are dropped rather than zero-filled.
func Heights(text string) []int {
	if strings.TrimSpace(text) == "" {
		return []int{}
	}

	tokens := strings.Split(text, ",")
	heights := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		v, ok := leadingInt(strings.TrimSpace(tok))
		if !ok || v < 0 {
			continue
		}
		heights = append(heights, v)
	}
	return heights
}

// leadingInt parses an optionally signed run of decimal digits at the start of s.
func leadingInt(s string) (int, bool) {
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	v, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return v, true
}

// Format joins heights with commas. Heights(Format(h)) returns h for any
// non-negative h.
func Format(heights []int) string {
	parts := make([]string, len(heights))
	for i, h := range heights {
		parts[i] = strconv.Itoa(h)
	}
	return strings.Join(parts, ",")
}

// Random returns n heights drawn uniformly from [0, maxExclusive).
// Non-positive n yields an empty sequence; maxExclusive below 1 is treated as 1.
func Random(r *rand.Rand, n, maxExclusive int) []int {
	if n <= 0 {
		return []int{}
	}
	if maxExclusive < 1 {
		maxExclusive = 1
	}
	heights := make([]int, n)
	for i := range heights {
		heights[i] = r.Intn(maxExclusive)
	}
	return heights
}
