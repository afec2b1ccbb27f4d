package numrand

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounter4x64Increment(t *testing.T) {
	tests := []struct {
		name     string
		from, to Counter4x64
	}{
		{"zero", Counter4x64{}, Counter4x64{1, 0, 0, 0}},
		{"carry into word 1", Counter4x64{math.MaxUint64, 0, 0, 0}, Counter4x64{0, 1, 0, 0}},
		{"carry into word 3", Counter4x64{math.MaxUint64, math.MaxUint64, math.MaxUint64, 5}, Counter4x64{0, 0, 0, 6}},
		{"no carry", Counter4x64{7, math.MaxUint64, 0, 0}, Counter4x64{8, math.MaxUint64, 0, 0}},
		{"wrap", Counter4x64{math.MaxUint64, math.MaxUint64, math.MaxUint64, math.MaxUint64}, Counter4x64{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := tc.from
			c.Increment()
			assert.Equal(t, tc.to, c)
		})
	}
}

func TestCounter4x32Increment(t *testing.T) {
	tests := []struct {
		name     string
		from, to Counter4x32
	}{
		{"zero", Counter4x32{}, Counter4x32{1, 0, 0, 0}},
		{"carry into word 1", Counter4x32{math.MaxUint32, 0, 0, 0}, Counter4x32{0, 1, 0, 0}},
		{"carry into word 2", Counter4x32{math.MaxUint32, math.MaxUint32, 0, 0}, Counter4x32{0, 0, 1, 0}},
		{"wrap", Counter4x32{math.MaxUint32, math.MaxUint32, math.MaxUint32, math.MaxUint32}, Counter4x32{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := tc.from
			c.Increment()
			assert.Equal(t, tc.to, c)
		})
	}
}
