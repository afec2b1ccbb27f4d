package numrand

import "math/bits"

const (
	philoxM0 = 0xd2511f53
	philoxM1 = 0xcd9e8d57
	philoxW0 = 0x9e3779b9 // golden ratio
	philoxW1 = 0xbb67ae85 // sqrt(3)-1

	philoxRounds = 10
)

// Philox4x32Block applies the ten rounds of Philox4x32-10 (Salmon et al., "Parallel random
// numbers: as easy as 1, 2, 3", SC11) to ctr under key. The result matches the Random123
// known-answer vectors.
func Philox4x32Block(ctr Counter4x32, key [2]uint32) [4]uint32 {
	c := ctr
	k0, k1 := key[0], key[1]
	for r := range philoxRounds {
		if r > 0 {
			k0 += philoxW0
			k1 += philoxW1
		}
		hi0, lo0 := bits.Mul32(philoxM0, c[0])
		hi1, lo1 := bits.Mul32(philoxM1, c[2])
		c = Counter4x32{hi1 ^ c[1] ^ k0, lo1, hi0 ^ c[3] ^ k1, lo0}
	}
	return [4]uint32(c)
}

// Philox4x32Source is a counter-based generator: draw i is word i%4 of
// Philox4x32Block(start+i/4, key). The block of the current counter is computed on every
// fourth draw, after which the counter is incremented.
// This random number generator is deterministic in the sequence of numbers it generates.
// It has a period of 2^130 draws per key.
// This random number generator is not cryptographically secure.
// This random number generator is not thread-safe, but distinct keys (e.g. a worker index)
// give independent streams that need no coordination.
type Philox4x32Source struct {
	key [2]uint32
	ctr Counter4x32
	buf [4]uint32
	pos int
}

// NewPhilox4x32Source starts at counter ctr.
func NewPhilox4x32Source(key [2]uint32, ctr Counter4x32) *Philox4x32Source {
	return &Philox4x32Source{key: key, ctr: ctr, pos: blockWords}
}

func (s *Philox4x32Source) NextRaw32() uint32 {
	if s.pos == blockWords {
		s.buf = Philox4x32Block(s.ctr, s.key)
		s.ctr.Increment()
		s.pos = 0
	}
	v := s.buf[s.pos]
	s.pos++
	return v
}

// Seek discards buffered words; the next draw is word 0 of the block at ctr.
func (s *Philox4x32Source) Seek(ctr Counter4x32) {
	s.ctr = ctr
	s.pos = blockWords
}

// Counter returns the counter of the next block to be computed.
func (s *Philox4x32Source) Counter() Counter4x32 { return s.ctr }

// Key returns the key.
func (s *Philox4x32Source) Key() [2]uint32 { return s.key }

// Philox4x32 is the Engine of Philox4x32-10.
type Philox4x32 = Engine32[*Philox4x32Source]

// NewPhilox4x32 creates a Philox4x32-10 engine starting at counter zero.
func NewPhilox4x32(key [2]uint32) *Philox4x32 {
	return NewEngine32(NewPhilox4x32Source(key, Counter4x32{}))
}

// NewPhilox4x32WithCounter creates a Philox4x32-10 engine starting at ctr.
func NewPhilox4x32WithCounter(key [2]uint32, ctr Counter4x32) *Philox4x32 {
	return NewEngine32(NewPhilox4x32Source(key, ctr))
}

// NewPhilox4x32FromSeedSequence takes the key from the first two words of seq.
func NewPhilox4x32FromSeedSequence(seq SeedSequence32) (*Philox4x32, error) {
	if seq == nil {
		return nil, invalidArgument("seed sequence is nil")
	}
	words, err := seq.Generate32(2)
	if err != nil {
		return nil, err
	}
	if len(words) != 2 {
		return nil, invalidArgument("seed sequence returned %d words, need 2", len(words))
	}
	return NewPhilox4x32([2]uint32{words[0], words[1]}), nil
}
