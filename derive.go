package numrand

import "math"

// RawWordSource32 is implemented by generators whose native output is a uniformly distributed
// 32-bit word. NextRaw32 must never fail; all arithmetic behind it wraps.
type RawWordSource32 interface {
	NextRaw32() uint32
}

// RawWordSource64 is implemented by generators whose native output is a uniformly distributed
// 64-bit word.
type RawWordSource64 interface {
	NextRaw64() uint64
}

// U64From32 concatenates two consecutive raw words, the first one forming the high half.
func U64From32[S RawWordSource32](s S) uint64 {
	hi := s.NextRaw32()
	lo := s.NextRaw32()
	return uint64(hi)<<32 | uint64(lo)
}

// U32From64 derives a 32-bit word from a 64-bit source through Bounded64 with max 2^32-1.
// This keeps the high half of the native word; plain truncation to the low half is avoided on
// purpose.
func U32From64[S RawWordSource64](s S) uint32 {
	return uint32(Bounded64(s, math.MaxUint32))
}

// Bounded32 returns a uniformly distributed value in [0, max].
//
// With range = max+1 and scaling = floor(2^32/range), raw draws in the tail
// [range*scaling, 2^32) are rejected and accepted draws are divided by scaling. Every value
// in [0, max] is then hit by exactly scaling raw words. max = 2^32-1 returns the raw word.
// Because scaling >= 1, at least half of all raw words are accepted.
// max = 0 still consumes one raw word; its scaling of 2^32 accepts every draw.
func Bounded32[S RawWordSource32](s S, max uint32) uint32 {
	switch max {
	case math.MaxUint32:
		return s.NextRaw32()
	case 0:
		s.NextRaw32()
		return 0
	}
	scaling := uint32((1 << 32) / (uint64(max) + 1))
	for {
		// draw < range*scaling  <=>  draw/scaling <= max
		if v := s.NextRaw32() / scaling; v <= max {
			return v
		}
	}
}

// Bounded64 is the 64-bit version of Bounded32.
func Bounded64[S RawWordSource64](s S, max uint64) uint64 {
	switch max {
	case math.MaxUint64:
		return s.NextRaw64()
	case 0:
		s.NextRaw64()
		return 0
	}
	// floor(2^64/(max+1)) without a 65-bit intermediate
	scaling := (math.MaxUint64-max)/(max+1) + 1
	for {
		if v := s.NextRaw64() / scaling; v <= max {
			return v
		}
	}
}

// Bounded64From32 returns a uniformly distributed value in [0, max] from a 32-bit source.
// Ranges that fit into 32 bits take a single Bounded32 draw. Wider ranges draw the high half
// with Bounded32(max>>32) and the low half as a raw word, and reject candidates above max.
// For max = 2^64-1 this is exactly U64From32.
func Bounded64From32[S RawWordSource32](s S, max uint64) uint64 {
	if max <= math.MaxUint32 {
		return uint64(Bounded32(s, uint32(max)))
	}
	hiMax := uint32(max >> 32)
	for {
		hi := Bounded32(s, hiMax)
		lo := s.NextRaw32()
		if v := uint64(hi)<<32 | uint64(lo); v <= max {
			return v
		}
	}
}

// Bounded32From64 returns a uniformly distributed value in [0, max] from a 64-bit source.
func Bounded32From64[S RawWordSource64](s S, max uint32) uint32 {
	return uint32(Bounded64(s, uint64(max)))
}

func checkRange[T uint32 | uint64 | int64](min, max T) error {
	if max < min {
		return invalidArgument("max %d is less than min %d", max, min)
	}
	return nil
}
