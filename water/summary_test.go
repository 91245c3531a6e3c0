package water_test

import (
	"math"
	"testing"

	"github.com/drake/rainwater/water"
	"github.com/stretchr/testify/assert"
)

func TestSummarize_Empty(t *testing.T) {
	s := water.Summarize(nil, water.Compute(nil))

	assert.Zero(t, s.Positions)
	assert.Zero(t, s.Capacity)
	assert.Zero(t, s.FillRatio)
	assert.Equal(t, -1, s.DeepestAt)
}

func TestSummarize_Basin(t *testing.T) {
	heights := []int{3, 0, 2, 0, 4}
	s := water.Summarize(heights, water.Compute(heights))

	assert.Equal(t, 5, s.Positions)
	assert.Equal(t, 4, s.MaxHeight)
	assert.Equal(t, int64(7), s.Total)
	assert.Equal(t, int64(11), s.Capacity) // 4*5 - 9
	assert.InDelta(t, 7.0/11.0, s.FillRatio, 1e-9)
	assert.Equal(t, 1, s.Basins)
	assert.Equal(t, 1, s.DeepestAt, "first of the equally deep positions wins")
	assert.InDelta(t, 7.0/3.0, s.MeanDepth, 1e-9)
}

func TestSummarize_SeparateBasins(t *testing.T) {
	heights := []int{2, 0, 2, 1, 3, 0, 3}
	s := water.Summarize(heights, water.Compute(heights))

	// water profile is [0 2 0 1 0 3 0]
	assert.Equal(t, 3, s.Basins)
	assert.Equal(t, 5, s.DeepestAt)
}

func TestSummarize_Flat(t *testing.T) {
	heights := []int{2, 2, 2}
	s := water.Summarize(heights, water.Compute(heights))

	assert.Zero(t, s.Capacity)
	assert.Zero(t, s.FillRatio)
	assert.Zero(t, s.Basins)
	assert.Equal(t, -1, s.DeepestAt)
	assert.Zero(t, s.MeanDepth)
}

func TestSummarize_HugeHeights(t *testing.T) {
	heights := []int{math.MaxInt, 0, 5}
	s := water.Summarize(heights, water.Compute(heights))

	assert.Equal(t, math.MaxInt, s.MaxHeight)
	assert.Equal(t, int64(math.MaxInt64), s.Capacity, "capacity should saturate, not wrap")
	assert.Equal(t, int64(5), s.Total)
	assert.Positive(t, s.FillRatio)
}
