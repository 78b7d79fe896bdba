package character

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeIndices(t *testing.T) {
	tests := []struct {
		name string
		in   []int
		want string
	}{
		{"empty", []int{}, ""},
		{"nil", nil, ""},
		{"single", []int{4}, "4"},
		{"run of three", []int{5, 6, 7}, "5..7"},
		{"run of two", []int{5, 6}, "5,6"},
		{"mixed", []int{0, 1, 2, 5}, "0..2,5"},
		{"several runs", []int{0, 1, 2, 3, 5, 6, 9, 10, 11}, "0..3,5,6,9..11"},
		{"unsorted", []int{3, 2, 1}, "3,2,1"},
		{"repeated", []int{1, 1, 1}, "1,1,1"},
		{"descending then run", []int{9, 0, 1, 2}, "9,0..2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EncodeIndices(tt.in))
		})
	}
}

func TestDecodeIndices(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []int
	}{
		{"empty", "", []int{}},
		{"range and single", "0..2,5", []int{0, 1, 2, 5}},
		{"reversed range", "5..3", []int{}},
		{"spaces", " 3, 4 ,x", []int{3, 4}},
		{"malformed tokens", "a,1,..,2", []int{1, 2}},
		{"extra dots", "1..2..3", []int{1, 2}},
		{"order kept", "7,3,1", []int{7, 3, 1}},
		{"leading integer", "12abc", []int{12}},
		{"huge range", "0..99999999,4", []int{4}},
		{"range ending at max int", strconv.Itoa(math.MaxInt-1) + ".." + strconv.Itoa(math.MaxInt), []int{math.MaxInt - 1, math.MaxInt}},
		{"range starting at min int", strconv.Itoa(math.MinInt) + "..1,7", []int{7}},
		{"full int range", strconv.Itoa(math.MinInt) + ".." + strconv.Itoa(math.MaxInt), []int{}},
		{"short range at min int", strconv.Itoa(math.MinInt) + ".." + strconv.Itoa(math.MinInt+2), []int{math.MinInt, math.MinInt + 1, math.MinInt + 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeIndices(tt.in))
		})
	}
}

func TestIndicesRoundTrip(t *testing.T) {
	// 0〜9 の部分集合をすべて試す
	for mask := 0; mask < 1<<10; mask++ {
		seq := []int{}
		for i := 0; i < 10; i++ {
			if mask&(1<<i) != 0 {
				seq = append(seq, i)
			}
		}
		assert.Equal(t, seq, DecodeIndices(EncodeIndices(seq)), "mask=%b", mask)
	}
}
