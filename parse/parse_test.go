package parse_test

import (
	"math/rand"
	"testing"

	"github.com/drake/rainwater/parse"
	"github.com/stretchr/testify/assert"
)

func TestHeights(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []int
	}{
		{"empty", "", []int{}},
		{"blank", "   ", []int{}},
		{"simple", "3,0,2,0,4", []int{3, 0, 2, 0, 4}},
		{"spaces", " 3 , 0,2 ,  4 ", []int{3, 0, 2, 4}},
		{"negative dropped", "1,-2,3", []int{1, 3}},
		{"garbage dropped", "1,x,,-,4", []int{1, 4}},
		{"leading integer", "2.5,3cm, 7 px", []int{2, 3, 7}},
		{"negative zero", "-0", []int{0}},
		{"overflow dropped", "99999999999999999999999,1", []int{1}},
		{"not zero filled", "a,b,c", []int{}},
		{"trailing comma", "5,", []int{5}},
		{"plus sign", "+7", []int{7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parse.Heights(tt.in))
		})
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "", parse.Format(nil))
	assert.Equal(t, "4", parse.Format([]int{4}))
	assert.Equal(t, "3,0,2,0,4", parse.Format([]int{3, 0, 2, 0, 4}))
}

func TestFormatHeightsInverse(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		h := parse.Random(r, 1+r.Intn(15), 20)
		assert.Equal(t, h, parse.Heights(parse.Format(h)))
	}
}

func TestRandom(t *testing.T) {
	r := rand.New(rand.NewSource(3))

	h := parse.Random(r, parse.DefaultRandomCount, parse.DefaultRandomMax)
	assert.Len(t, h, parse.DefaultRandomCount)
	for _, v := range h {
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, parse.DefaultRandomMax)
	}

	assert.Empty(t, parse.Random(r, 0, 8))
	assert.Equal(t, []int{0, 0, 0}, parse.Random(r, 3, 0))
}
