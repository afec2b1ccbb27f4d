package numrand

const (
	mt32N = 624
	mt32M = 397

	mt32MatrixA   uint32 = 0x9908b0df
	mt32UpperMask uint32 = 0x80000000 // most significant bit
	mt32LowerMask uint32 = 0x7fffffff // 31 least significant bits

	mt32TemperB uint32 = 0x9d2c5680
	mt32TemperC uint32 = 0xefc60000
)

// MT19937Source is the 32-bit Mersenne Twister (MT19937, period 2^19937-1) as a raw word source.
// Its output is bit-identical to mt19937ar.c and to std::mt19937 for the same seeding.
// This random number generator is deterministic in the sequence of numbers it generates.
// This random number generator is not cryptographically secure.
// This random number generator is not thread-safe.
// This random number generator has a memory footprint of about 2.5 KiB.
type MT19937Source struct {
	state [mt32N]uint32
	index int
}

// NewMT19937Source fills the state from seq. The first draw twists the state.
func NewMT19937Source(seq SeedSequence32) (*MT19937Source, error) {
	if seq == nil {
		return nil, invalidArgument("seed sequence is nil")
	}
	words, err := seq.Generate32(mt32N)
	if err != nil {
		return nil, err
	}
	if len(words) != mt32N {
		return nil, invalidArgument("seed sequence returned %d words, need %d", len(words), mt32N)
	}
	s := &MT19937Source{index: mt32N}
	copy(s.state[:], words)
	s.guardZeroState()
	return s, nil
}

// guardZeroState sets the top bit of state[0] when no significant state bit is set, the
// only state the recurrence cannot leave.
func (s *MT19937Source) guardZeroState() {
	if s.state[0]&mt32UpperMask != 0 {
		return
	}
	for _, w := range s.state[1:] {
		if w != 0 {
			return
		}
	}
	s.state[0] = mt32UpperMask
}

func mt32Mix(upper, lower, far uint32) uint32 {
	y := upper&mt32UpperMask | lower&mt32LowerMask
	v := far ^ y>>1
	if y&1 != 0 {
		v ^= mt32MatrixA
	}
	return v
}

// twist regenerates all N state words in place.
func (s *MT19937Source) twist() {
	st := &s.state
	i := 0
	for ; i < mt32N-mt32M; i++ {
		st[i] = mt32Mix(st[i], st[i+1], st[i+mt32M])
	}
	for ; i < mt32N-1; i++ {
		st[i] = mt32Mix(st[i], st[i+1], st[i+mt32M-mt32N])
	}
	st[mt32N-1] = mt32Mix(st[mt32N-1], st[0], st[mt32M-1])
	s.index = 0
}

// NextRaw32 returns the next tempered state word.
func (s *MT19937Source) NextRaw32() uint32 {
	if s.index >= mt32N {
		s.twist()
	}
	y := s.state[s.index]
	s.index++

	y ^= y >> 11
	y ^= (y << 7) & mt32TemperB
	y ^= (y << 15) & mt32TemperC
	y ^= y >> 18
	return y
}

// MersenneTwister32 is the Engine of the 32-bit Mersenne Twister.
type MersenneTwister32 = Engine32[*MT19937Source]

// NewMersenneTwister32 creates a 32-bit Mersenne Twister seeded by seq.
func NewMersenneTwister32(seq SeedSequence32) (*MersenneTwister32, error) {
	src, err := NewMT19937Source(seq)
	if err != nil {
		return nil, err
	}
	return NewEngine32(src), nil
}

// NewMersenneTwister32FromSeed seeds with init_genrand(seed), like std::mt19937(seed).
func NewMersenneTwister32FromSeed(seed uint32) *MersenneTwister32 {
	src := &MT19937Source{index: mt32N}
	mt32Seeding.initGenRand(src.state[:], seed)
	return NewEngine32(src)
}

// NewMersenneTwister32FromArray seeds with init_by_array(key). key must not be empty.
func NewMersenneTwister32FromArray(key []uint32) (*MersenneTwister32, error) {
	return NewMersenneTwister32(ArraySeed32(key))
}
