package numrand

import "math/bits"

const (
	threeFryParity = 0x1bd11bdaa9fc1a22

	// ThreeFryRounds is the round count of the standard ThreeFry4x64-20.
	ThreeFryRounds = 20
	// ThreeFryReducedRounds is the round count of the reduced variant.
	ThreeFryReducedRounds = 13
)

// rotation amounts R_64x4 of Threefish-256, indexed by round%8
var threeFryRotations = [8][2]int{
	{14, 16}, {52, 57}, {23, 40}, {5, 37},
	{25, 33}, {46, 12}, {58, 22}, {32, 32},
}

// threeFryKeySchedule extends key with the parity word.
func threeFryKeySchedule(key [4]uint64) [5]uint64 {
	ks := [5]uint64{key[0], key[1], key[2], key[3], threeFryParity}
	for _, k := range key {
		ks[4] ^= k
	}
	return ks
}

func threeFryBlock(ctr Counter4x64, ks *[5]uint64, rounds int) [4]uint64 {
	x0, x1, x2, x3 := ctr[0]+ks[0], ctr[1]+ks[1], ctr[2]+ks[2], ctr[3]+ks[3]
	for r := 0; r < rounds; r++ {
		rot := threeFryRotations[r%8]
		if r%2 == 0 {
			x0 += x1
			x1 = bits.RotateLeft64(x1, rot[0]) ^ x0
			x2 += x3
			x3 = bits.RotateLeft64(x3, rot[1]) ^ x2
		} else {
			x0 += x3
			x3 = bits.RotateLeft64(x3, rot[0]) ^ x0
			x2 += x1
			x1 = bits.RotateLeft64(x1, rot[1]) ^ x2
		}
		// key injection after every fourth round
		if (r+1)%4 == 0 {
			i := (r + 1) / 4
			x0 += ks[i%5]
			x1 += ks[(i+1)%5]
			x2 += ks[(i+2)%5]
			x3 += ks[(i+3)%5] + uint64(i)
		}
	}
	return [4]uint64{x0, x1, x2, x3}
}

// ThreeFry4x64Block applies rounds rounds of ThreeFry4x64 (the Threefish-256 round function
// without tweak) to ctr under key. With rounds = 20 and 13 the result matches the Random123
// known-answer vectors.
func ThreeFry4x64Block(ctr Counter4x64, key [4]uint64, rounds int) [4]uint64 {
	ks := threeFryKeySchedule(key)
	return threeFryBlock(ctr, &ks, rounds)
}

// ThreeFry4x64Source is a counter-based generator built on ThreeFry4x64Block.
// The standard variant runs 20 rounds over a 256-bit counter. The reduced variant runs 13
// rounds and counts in word 0 only: it wraps after 2^64 blocks (2^66 draws), where a full
// counter would carry into word 1.
// This random number generator is deterministic in the sequence of numbers it generates.
// This random number generator is not cryptographically secure.
// This random number generator is not thread-safe.
type ThreeFry4x64Source struct {
	ks     [5]uint64
	ctr    Counter4x64
	buf    [4]uint64
	pos    int
	rounds int
	narrow bool // 64-bit counter
}

func newThreeFry4x64Source(key [4]uint64, ctr Counter4x64, rounds int, narrow bool) *ThreeFry4x64Source {
	return &ThreeFry4x64Source{
		ks:     threeFryKeySchedule(key),
		ctr:    ctr,
		pos:    blockWords,
		rounds: rounds,
		narrow: narrow,
	}
}

// NewThreeFry4x64Source creates a ThreeFry4x64-20 source starting at ctr.
func NewThreeFry4x64Source(key [4]uint64, ctr Counter4x64) *ThreeFry4x64Source {
	return newThreeFry4x64Source(key, ctr, ThreeFryRounds, false)
}

func (s *ThreeFry4x64Source) NextRaw64() uint64 {
	if s.pos == blockWords {
		s.buf = threeFryBlock(s.ctr, &s.ks, s.rounds)
		if s.narrow {
			s.ctr[0]++
		} else {
			s.ctr.Increment()
		}
		s.pos = 0
	}
	v := s.buf[s.pos]
	s.pos++
	return v
}

// Seek discards buffered words; the next draw is word 0 of the block at ctr.
func (s *ThreeFry4x64Source) Seek(ctr Counter4x64) {
	s.ctr = ctr
	s.pos = blockWords
}

// Counter returns the counter of the next block to be computed.
func (s *ThreeFry4x64Source) Counter() Counter4x64 { return s.ctr }

// Rounds returns the number of rounds per block.
func (s *ThreeFry4x64Source) Rounds() int { return s.rounds }

// ThreeFry4x64 is the Engine of both ThreeFry4x64 variants.
type ThreeFry4x64 = Engine64[*ThreeFry4x64Source]

// NewThreeFry4x64 creates a ThreeFry4x64-20 engine starting at counter zero.
func NewThreeFry4x64(key [4]uint64) *ThreeFry4x64 {
	return NewEngine64(NewThreeFry4x64Source(key, Counter4x64{}))
}

// NewThreeFry4x64WithCounter creates a ThreeFry4x64-20 engine starting at ctr.
func NewThreeFry4x64WithCounter(key [4]uint64, ctr Counter4x64) *ThreeFry4x64 {
	return NewEngine64(NewThreeFry4x64Source(key, ctr))
}

// NewThreeFry4x64Reduced creates the 13-round variant with a 64-bit counter. It trades period
// (2^66 draws per key) for speed.
func NewThreeFry4x64Reduced(key [4]uint64) *ThreeFry4x64 {
	return NewEngine64(newThreeFry4x64Source(key, Counter4x64{}, ThreeFryReducedRounds, true))
}

// NewThreeFry4x64FromSeedSequence takes the key from the first four words of seq.
func NewThreeFry4x64FromSeedSequence(seq SeedSequence64) (*ThreeFry4x64, error) {
	if seq == nil {
		return nil, invalidArgument("seed sequence is nil")
	}
	words, err := seq.Generate64(4)
	if err != nil {
		return nil, err
	}
	if len(words) != 4 {
		return nil, invalidArgument("seed sequence returned %d words, need 4", len(words))
	}
	return NewThreeFry4x64([4]uint64{words[0], words[1], words[2], words[3]}), nil
}
