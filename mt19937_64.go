package numrand

const (
	mt64N = 312
	mt64M = 156

	mt64MatrixA   uint64 = 0xb5026f5aa96619e9
	mt64UpperMask uint64 = 0xffffffff80000000 // 33 most significant bits
	mt64LowerMask uint64 = 0x000000007fffffff // 31 least significant bits

	// tempering shift sizes and xor masks
	mt64TemperU     = 29
	mt64TemperUMask = 0x5555555555555555
	mt64TemperS     = 17
	mt64TemperSMask = 0x71d67fffeda60000
	mt64TemperT     = 37
	mt64TemperTMask = 0xfff7eee000000000
	mt64TemperL     = 43
)

// MT19937x64Source is the 64-bit Mersenne Twister (MT19937-64, period 2^19937-1).
// Its output is bit-identical to mt19937-64.c and to std::mt19937_64 for the same seeding.
// This random number generator is deterministic in the sequence of numbers it generates.
// This random number generator is not cryptographically secure.
// This random number generator is not thread-safe.
type MT19937x64Source struct {
	state [mt64N]uint64
	index int
}

// NewMT19937x64Source fills the state from seq. The first draw twists the state.
func NewMT19937x64Source(seq SeedSequence64) (*MT19937x64Source, error) {
	if seq == nil {
		return nil, invalidArgument("seed sequence is nil")
	}
	words, err := seq.Generate64(mt64N)
	if err != nil {
		return nil, err
	}
	if len(words) != mt64N {
		return nil, invalidArgument("seed sequence returned %d words, need %d", len(words), mt64N)
	}
	s := &MT19937x64Source{index: mt64N}
	copy(s.state[:], words)
	s.guardZeroState()
	return s, nil
}

func (s *MT19937x64Source) guardZeroState() {
	if s.state[0]&mt64UpperMask != 0 {
		return
	}
	for _, w := range s.state[1:] {
		if w != 0 {
			return
		}
	}
	s.state[0] = 1 << 63
}

func mt64Mix(upper, lower, far uint64) uint64 {
	y := upper&mt64UpperMask | lower&mt64LowerMask
	v := far ^ y>>1
	if y&1 != 0 {
		v ^= mt64MatrixA
	}
	return v
}

func (s *MT19937x64Source) twist() {
	st := &s.state
	i := 0
	for ; i < mt64N-mt64M; i++ {
		st[i] = mt64Mix(st[i], st[i+1], st[i+mt64M])
	}
	for ; i < mt64N-1; i++ {
		st[i] = mt64Mix(st[i], st[i+1], st[i+mt64M-mt64N])
	}
	st[mt64N-1] = mt64Mix(st[mt64N-1], st[0], st[mt64M-1])
	s.index = 0
}

func (s *MT19937x64Source) NextRaw64() uint64 {
	if s.index >= mt64N {
		s.twist()
	}
	x := s.state[s.index]
	s.index++

	x ^= (x >> mt64TemperU) & mt64TemperUMask
	x ^= (x << mt64TemperS) & mt64TemperSMask
	x ^= (x << mt64TemperT) & mt64TemperTMask
	x ^= x >> mt64TemperL
	return x
}

// MersenneTwister64 is the Engine of the 64-bit Mersenne Twister.
type MersenneTwister64 = Engine64[*MT19937x64Source]

// NewMersenneTwister64 creates a 64-bit Mersenne Twister seeded by seq.
func NewMersenneTwister64(seq SeedSequence64) (*MersenneTwister64, error) {
	src, err := NewMT19937x64Source(seq)
	if err != nil {
		return nil, err
	}
	return NewEngine64(src), nil
}

// NewMersenneTwister64FromSeed seeds with init_genrand64(seed), like std::mt19937_64(seed).
func NewMersenneTwister64FromSeed(seed uint64) *MersenneTwister64 {
	src := &MT19937x64Source{index: mt64N}
	mt64Seeding.initGenRand(src.state[:], seed)
	return NewEngine64(src)
}

// NewMersenneTwister64FromArray seeds with init_by_array64(key). key must not be empty.
func NewMersenneTwister64FromArray(key []uint64) (*MersenneTwister64, error) {
	return NewMersenneTwister64(ArraySeed64(key))
}
