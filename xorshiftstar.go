package numrand

const xorShiftStarMultiplier = 0x2545F4914F6CDD1D

// XorShiftStarSource is the 64-bit xorshift* generator
// (https://en.wikipedia.org/wiki/Xorshift#xorshift*). Every non-zero state lies on a single
// cycle of length 2^64-1, so each value has a fixed successor and predecessor.
// Each draw takes constant time. The generator is not cryptographically secure and not
// thread-safe. State must not be zero.
type XorShiftStarSource struct {
	State uint64
	Round uint64 // number of draws so far
}

// NewXorShiftStarSource returns a source with the given seed. If no seed or a seed of zero is
// given, the state is drawn from the operating system's entropy source until it is non-zero.
// Only the zero/absent seed makes the sequence non-reproducible.
func NewXorShiftStarSource(seed ...uint64) *XorShiftStarSource {
	s := &XorShiftStarSource{}
	if len(seed) > 0 {
		s.State = seed[0]
	}
	if s.State != 0 {
		return s
	}
	entropy := NewEntropySeedSequence(64)
	for s.State == 0 {
		words, err := entropy.Generate64(1)
		if err != nil {
			panic(err)
		}
		s.State = words[0]
	}
	return s
}

// NextRaw64 steps the xorshift state and returns it multiplied by the xorshift* constant.
func (s *XorShiftStarSource) NextRaw64() uint64 {
	x := s.State
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	s.State = x
	s.Round++
	return x * xorShiftStarMultiplier
}

// XorShiftStar is the Engine of the xorshift* generator.
type XorShiftStar = Engine64[*XorShiftStarSource]

// NewXorShiftStar creates an xorshift* engine, see NewXorShiftStarSource for the seed rules.
func NewXorShiftStar(seed ...uint64) *XorShiftStar {
	return NewEngine64(NewXorShiftStarSource(seed...))
}
