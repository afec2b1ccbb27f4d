package numrand

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestBounded32RejectsTail(t *testing.T) {
	// max = 2: scaling = floor(2^32/3) = 1431655765, range*scaling = 2^32-1
	src := &sliceSource32{words: []uint32{math.MaxUint32, 1431655765*2 + 7}}
	assert.Equal(t, uint32(2), Bounded32(src, 2))
	assert.Equal(t, 2, src.draws, "the tail word must be rejected")
}

func TestBounded32FullRangeIsRaw(t *testing.T) {
	src := &sliceSource32{words: []uint32{0xdeadbeef}}
	assert.Equal(t, uint32(0xdeadbeef), Bounded32(src, math.MaxUint32))
	assert.Equal(t, 1, src.draws)
}

func TestBoundedZeroConsumesOneDraw(t *testing.T) {
	src32 := &sliceSource32{words: []uint32{math.MaxUint32}}
	assert.Equal(t, uint32(0), Bounded32(src32, 0))
	assert.Equal(t, 1, src32.draws)

	src64 := &sliceSource64{words: []uint64{math.MaxUint64}}
	assert.Equal(t, uint64(0), Bounded64(src64, 0))
	assert.Equal(t, 1, src64.draws)
}

func TestBounded64RejectsTail(t *testing.T) {
	// max = 2^63: range = 2^63+1, scaling = 1, everything above max is rejected
	src := &sliceSource64{words: []uint64{math.MaxUint64, 1<<63 + 1, 12}}
	assert.Equal(t, uint64(12), Bounded64(src, 1<<63))
	assert.Equal(t, 3, src.draws)
}

func TestBounded64FullRangeIsRaw(t *testing.T) {
	src := &sliceSource64{words: []uint64{0x0123456789abcdef}}
	assert.Equal(t, uint64(0x0123456789abcdef), Bounded64(src, math.MaxUint64))
}

func TestBounded64From32(t *testing.T) {
	// max fits into 32 bits: one Bounded32 draw
	src := &sliceSource32{words: []uint32{math.MaxUint32}}
	assert.Equal(t, uint64(math.MaxUint32), Bounded64From32(src, math.MaxUint32))
	assert.Equal(t, 1, src.draws)

	// max = 2^32 + 5: hi in [0,1], candidates above max are rejected
	src = &sliceSource32{words: []uint32{math.MaxUint32, 6, math.MaxUint32, 5}}
	assert.Equal(t, uint64(1)<<32|5, Bounded64From32(src, 1<<32+5))
	assert.Equal(t, 4, src.draws)

	// full range equals concatenation
	src = &sliceSource32{words: []uint32{0x01234567, 0x89abcdef}}
	assert.Equal(t, uint64(0x0123456789abcdef), Bounded64From32(src, math.MaxUint64))
}

func TestU64From32HighWordFirst(t *testing.T) {
	src := &sliceSource32{words: []uint32{0xaaaaaaaa, 0x55555555}}
	assert.Equal(t, uint64(0xaaaaaaaa55555555), U64From32(src))
}

func TestU32From64KeepsHighHalf(t *testing.T) {
	src := &sliceSource64{words: []uint64{0xaaaaaaaa55555555}}
	assert.Equal(t, uint32(0xaaaaaaaa), U32From64(src))
	assert.Equal(t, 1, src.draws)
}

func TestBoundedNeverExceedsMax(t *testing.T) {
	mt := NewMersenneTwister32FromSeed(1)
	x := NewXorShiftStar(1)
	for _, max := range []uint32{1, 2, 6, 7, 1000, 1<<31 + 1} {
		for range 10_000 {
			assert.LessOrEqual(t, Bounded32(mt.Source(), max), max)
			assert.LessOrEqual(t, Bounded32From64(x.Source(), max), max)
		}
	}
	for _, max := range []uint64{1, 6, 1 << 40, 1<<63 + 1} {
		for range 10_000 {
			assert.LessOrEqual(t, Bounded64(x.Source(), max), max)
			assert.LessOrEqual(t, Bounded64From32(mt.Source(), max), max)
		}
	}
}

func TestCheckRange(t *testing.T) {
	assert.NoError(t, checkRange(uint32(3), uint32(3)))
	assert.NoError(t, checkRange(int64(-5), int64(5)))
	err := checkRange(uint64(4), uint64(3))
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	err = checkRange(int64(0), int64(-1))
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}
