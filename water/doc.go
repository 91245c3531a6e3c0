// Package water computes how much rain a row of bars traps.
//
// Given bar heights h[0..n-1], the water standing above position i is
//
//	min(max(h[0..i]), max(h[i..n-1])) - h[i]
//
// Compute returns the per-position amounts together with their sum.
// Trap returns only the sum and needs no auxiliary slices.
// Summarize derives presentation statistics from a computed profile.
//
// Usage:
//
//	p := water.Compute([]int{3, 0, 2, 0, 4})
//	// p.Total == 7, p.WaterAt == []int{0, 3, 1, 3, 0}
//
// Complexity:
//
//   - Compute: O(n) time, O(n) memory
//   - Trap:    O(n) time, O(1) memory
//
// All functions are pure and safe for concurrent use. Inputs are never modified.
package water
