package numrand

import "math/bits"

const (
	pcg32Multiplier = 6364136223846793005
	pcg32MaxStream  = 1 << 63
)

// PCG32Source is PCG-XSH-RR: a 64-bit linear congruential state with a 32-bit permuted output
// (see https://www.pcg-random.org). Its output is bit-identical to pcg32_random_r after
// pcg32_srandom_r(initState, streamID).
// This random number generator is deterministic in the sequence of numbers it generates.
// It has a period of 2^64 for every stream; the increment is forced odd.
// This random number generator is not cryptographically secure.
// This random number generator is not thread-safe.
// This random number generator has a very small memory footprint (16 bytes).
type PCG32Source struct {
	state uint64
	inc   uint64
}

// NewPCG32Source selects stream streamID (< 2^63) and folds initState into the state.
func NewPCG32Source(initState, streamID uint64) (*PCG32Source, error) {
	if streamID >= pcg32MaxStream {
		return nil, invalidArgument("stream id %#x must be less than 2^63", streamID)
	}
	s := &PCG32Source{inc: streamID<<1 | 1}
	s.step()
	s.state += initState
	s.step()
	return s, nil
}

func (s *PCG32Source) step() {
	s.state = s.state*pcg32Multiplier + s.inc
}

// NextRaw32 permutes the high bits of the current state and advances the LCG.
func (s *PCG32Source) NextRaw32() uint32 {
	old := s.state
	s.step()
	xorshifted := uint32(((old >> 18) ^ old) >> 27)
	return bits.RotateLeft32(xorshifted, -int(old>>59))
}

// Advance moves the generator delta steps ahead in O(log delta). Steps wrap modulo 2^64, so
// Advance(-n) (as uint64) moves n steps back.
func (s *PCG32Source) Advance(delta uint64) {
	curMult, curPlus := uint64(pcg32Multiplier), s.inc
	accMult, accPlus := uint64(1), uint64(0)
	for delta > 0 {
		if delta&1 != 0 {
			accMult *= curMult
			accPlus = accPlus*curMult + curPlus
		}
		curPlus = (curMult + 1) * curPlus
		curMult *= curMult
		delta >>= 1
	}
	s.state = accMult*s.state + accPlus
}

// PCG32 is the Engine of PCG-XSH-RR.
type PCG32 = Engine32[*PCG32Source]

// NewPCG32 creates a PCG32 engine. streamID must be less than 2^63.
func NewPCG32(initState, streamID uint64) (*PCG32, error) {
	src, err := NewPCG32Source(initState, streamID)
	if err != nil {
		return nil, err
	}
	return NewEngine32(src), nil
}

// NewPCG32FromSeedSequence takes the initial state and the stream id from the first two words
// of seq; the stream word is shifted right by one to fit below 2^63.
func NewPCG32FromSeedSequence(seq SeedSequence64) (*PCG32, error) {
	if seq == nil {
		return nil, invalidArgument("seed sequence is nil")
	}
	words, err := seq.Generate64(2)
	if err != nil {
		return nil, err
	}
	if len(words) != 2 {
		return nil, invalidArgument("seed sequence returned %d words, need 2", len(words))
	}
	return NewPCG32(words[0], words[1]>>1)
}
