package water

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Summary describes a profile in terms a chart legend can show.
type Summary struct {
	Positions int
	MaxHeight int
	Total     int64

	// Capacity is the water the bounding box of the bars could hold.
	Capacity  int64
	FillRatio float64

	// Basins counts maximal runs of positions holding water.
	Basins    int
	DeepestAt int // -1 when dry
	MeanDepth float64
}

// Summarize derives a Summary from heights and the profile Compute returned for them.
func Summarize(heights []int, p Profile) Summary {
	s := Summary{
		Positions: len(heights),
		Total:     p.Total,
		DeepestAt: -1,
	}
	if len(heights) == 0 {
		return s
	}

	for _, h := range heights {
		s.MaxHeight = max(s.MaxHeight, h)
	}
	// Capacity saturates at MaxInt64 rather than wrapping.
	for _, h := range heights {
		gap := int64(s.MaxHeight - h)
		if s.Capacity > math.MaxInt64-gap {
			s.Capacity = math.MaxInt64
			break
		}
		s.Capacity += gap
	}
	if s.Capacity > 0 {
		s.FillRatio = float64(p.Total) / float64(s.Capacity)
	}

	var depths []float64
	deepest := 0
	inBasin := false
	for i, w := range p.WaterAt {
		if w <= 0 {
			inBasin = false
			continue
		}
		if !inBasin {
			s.Basins++
			inBasin = true
		}
		if w > deepest {
			deepest = w
			s.DeepestAt = i
		}
		depths = append(depths, float64(w))
	}
	if len(depths) > 0 {
		s.MeanDepth = stat.Mean(depths, nil)
	}
	return s
}
