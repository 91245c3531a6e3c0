package water

// Profile is the result of Compute.
//
// WaterAt has one entry per input position; Total is the sum of WaterAt.
type Profile struct {
	Total   int64 `json:"total" msgpack:"total"`
	WaterAt []int `json:"waterAt" msgpack:"waterAt"`
}

// Compute returns the water trapped above each position of heights.
//
// Heights are assumed non-negative. An empty input yields a zero Total and an
// empty, non-nil WaterAt.
func Compute(heights []int) Profile {
	n := len(heights)
	if n == 0 {
		return Profile{WaterAt: []int{}}
	}

	leftMax := make([]int, n)
	leftMax[0] = heights[0]
	for i := 1; i < n; i++ {
		leftMax[i] = max(leftMax[i-1], heights[i])
	}

	rightMax := make([]int, n)
	rightMax[n-1] = heights[n-1]
	for i := n - 2; i >= 0; i-- {
		rightMax[i] = max(rightMax[i+1], heights[i])
	}

	p := Profile{WaterAt: make([]int, n)}
	for i, h := range heights {
		trapped := max(0, min(leftMax[i], rightMax[i])-h)
		p.WaterAt[i] = trapped
		p.Total += int64(trapped)
	}
	return p
}

// Trap returns the same total as Compute using two converging pointers.
func Trap(heights []int) int64 {
	left, right := 0, len(heights)-1
	leftMax, rightMax := 0, 0
	var total int64

	for left < right {
		if heights[left] < heights[right] {
			if heights[left] > leftMax {
				leftMax = heights[left]
			} else {
				total += int64(leftMax - heights[left])
			}
			left++
		} else {
			if heights[right] > rightMax {
				rightMax = heights[right]
			} else {
				total += int64(rightMax - heights[right])
			}
			right--
		}
	}
	return total
}
