package numrand

// SeedSequence32 expands seed material into n 32-bit state words.
// Generate32 is a pure function of the seed material and n: calling it twice with the same n
// returns the same words (EntropySeedSequence is the only exception).
type SeedSequence32 interface {
	Generate32(n int) ([]uint32, error)
}

// SeedSequence64 expands seed material into n 64-bit state words.
type SeedSequence64 interface {
	Generate64(n int) ([]uint64, error)
}

type mtWord interface {
	~uint32 | ~uint64
}

// mtSeeding holds the constants of the Mersenne Twister seeding recurrences for one word size.
type mtSeeding[W mtWord] struct {
	shift      W // right shift inside the recurrences (30 resp. 62)
	genRandMul W // init_genrand multiplier
	arrayMul1  W // first init_by_array pass
	arrayMul2  W // second init_by_array pass
	topBit     W
}

const initByArrayBaseSeed = 19650218 // 0x12BD6AA

var (
	mt32Seeding = mtSeeding[uint32]{shift: 30, genRandMul: 1812433253, arrayMul1: 1664525, arrayMul2: 1566083941, topBit: 1 << 31}
	mt64Seeding = mtSeeding[uint64]{shift: 62, genRandMul: 6364136223846793005, arrayMul1: 3935559000370003845, arrayMul2: 2862933555777941757, topBit: 1 << 63}
)

// initGenRand fills state with state[i] = mul*(state[i-1] ^ (state[i-1] >> shift)) + i.
func (c mtSeeding[W]) initGenRand(state []W, seed W) {
	if len(state) == 0 {
		return
	}
	state[0] = seed
	for i := 1; i < len(state); i++ {
		prev := state[i-1]
		state[i] = c.genRandMul*(prev^(prev>>c.shift)) + W(i)
	}
}

// initByArray mixes key into a state previously filled by initGenRand(19650218).
// len(state) must be at least 2 and key must not be empty.
func (c mtSeeding[W]) initByArray(state []W, key []W) {
	n := len(state)
	c.initGenRand(state, initByArrayBaseSeed)
	i, j := 1, 0
	for k := max(n, len(key)); k > 0; k-- {
		prev := state[i-1]
		state[i] = (state[i] ^ ((prev ^ (prev >> c.shift)) * c.arrayMul1)) + key[j] + W(j)
		i++
		j++
		if i >= n {
			state[0] = state[n-1]
			i = 1
		}
		if j >= len(key) {
			j = 0
		}
	}
	for k := n - 1; k > 0; k-- {
		prev := state[i-1]
		state[i] = (state[i] ^ ((prev ^ (prev >> c.shift)) * c.arrayMul2)) - W(i)
		i++
		if i >= n {
			state[0] = state[n-1]
			i = 1
		}
	}
	state[0] = c.topBit
}

func checkResultSize(n int) error {
	if n < 0 {
		return invalidArgument("requested seed array length %d is negative", n)
	}
	return nil
}

func initByArray[W mtWord](c mtSeeding[W], key []W, n int) ([]W, error) {
	if err := checkResultSize(n); err != nil {
		return nil, err
	}
	if len(key) == 0 {
		return nil, invalidArgument("seed key must not be empty")
	}
	state := make([]W, n)
	if n == 0 {
		return state, nil
	}
	if n < 2 {
		return nil, invalidArgument("init_by_array needs at least 2 state words, got %d", n)
	}
	c.initByArray(state, key)
	return state, nil
}

// InitGenRand32 expands a single 32-bit seed into n words with the init_genrand recurrence
// of the 32-bit Mersenne Twister reference implementation (mt19937ar.c).
func InitGenRand32(seed uint32, n int) ([]uint32, error) {
	if err := checkResultSize(n); err != nil {
		return nil, err
	}
	state := make([]uint32, n)
	mt32Seeding.initGenRand(state, seed)
	return state, nil
}

// InitGenRand64 is the 64-bit analog of InitGenRand32 (init_genrand64 of mt19937-64.c).
func InitGenRand64(seed uint64, n int) ([]uint64, error) {
	if err := checkResultSize(n); err != nil {
		return nil, err
	}
	state := make([]uint64, n)
	mt64Seeding.initGenRand(state, seed)
	return state, nil
}

// InitByArray32 expands key into n words with init_by_array of mt19937ar.c.
// An empty key is an error, as is 0 < n < 2.
func InitByArray32(key []uint32, n int) ([]uint32, error) {
	return initByArray(mt32Seeding, key, n)
}

// InitByArray64 expands key into n words with init_by_array64 of mt19937-64.c.
func InitByArray64(key []uint64, n int) ([]uint64, error) {
	return initByArray(mt64Seeding, key, n)
}

// seedSeqSpread returns the distance t between the two scatter offsets p and q used by
// SeedSeq for an output of n words.
func seedSeqSpread(n int) int {
	switch {
	case n >= 623:
		return 11
	case n >= 68:
		return 7
	case n >= 39:
		return 5
	case n >= 7:
		return 3
	default:
		return (n - 1) / 2
	}
}

// SeedSeq implements std::seed_seq::generate as shipped with libstdc++. The result is
// bit-identical to
//
//	std::seed_seq seq(seeds.begin(), seeds.end());
//	seq.generate(out.begin(), out.end());
//
// for an output of n words. An empty seeds slice is an error.
func SeedSeq(seeds []uint32, n int) ([]uint32, error) {
	if err := checkResultSize(n); err != nil {
		return nil, err
	}
	if len(seeds) == 0 {
		return nil, invalidArgument("seed_seq needs at least one seed word")
	}
	buf := make([]uint32, n)
	if n == 0 {
		return buf, nil
	}
	for i := range buf {
		buf[i] = 0x8b8b8b8b
	}

	s := len(seeds)
	t := seedSeqSpread(n)
	p := (n - t) / 2
	q := p + t
	m := max(s+1, n)

	// (k+n-1)%n is the predecessor index; it stays in range for k == 0.
	scatter := func(k int, extra uint32) {
		kn, kp, kq := k%n, (k+p)%n, (k+q)%n
		a := buf[kn] ^ buf[kp] ^ buf[(k+n-1)%n]
		r1 := 1664525 * (a ^ (a >> 27))
		r2 := r1 + extra
		buf[kp] += r1
		buf[kq] += r2
		buf[kn] = r2
	}

	scatter(0, uint32(s))
	for k := 1; k <= s; k++ {
		scatter(k, uint32(k%n)+seeds[k-1])
	}
	for k := s + 1; k < m; k++ {
		scatter(k, uint32(k%n))
	}
	for k := m; k < m+n; k++ {
		kn, kp, kq := k%n, (k+p)%n, (k+q)%n
		a := buf[kn] + buf[kp] + buf[(k+n-1)%n]
		r3 := 1566083941 * (a ^ (a >> 27))
		r4 := r3 - uint32(kn)
		buf[kp] ^= r3
		buf[kq] ^= r4
		buf[kn] = r4
	}
	return buf, nil
}

// SingleSeed32 seeds a generator from one 32-bit word via InitGenRand32.
type SingleSeed32 uint32

func (s SingleSeed32) Generate32(n int) ([]uint32, error) {
	return InitGenRand32(uint32(s), n)
}

// SingleSeed64 seeds a generator from one 64-bit word via InitGenRand64.
type SingleSeed64 uint64

func (s SingleSeed64) Generate64(n int) ([]uint64, error) {
	return InitGenRand64(uint64(s), n)
}

// ArraySeed32 seeds a generator from a key of 32-bit words via InitByArray32.
type ArraySeed32 []uint32

func (s ArraySeed32) Generate32(n int) ([]uint32, error) {
	return InitByArray32(s, n)
}

// ArraySeed64 seeds a generator from a key of 64-bit words via InitByArray64.
type ArraySeed64 []uint64

func (s ArraySeed64) Generate64(n int) ([]uint64, error) {
	return InitByArray64(s, n)
}

// StdSeedSeq is the libstdc++ std::seed_seq over the given seed words.
// Generate64 draws 2n words and assembles each 64-bit word from two consecutive 32-bit words,
// low word first, which is how std::mt19937_64 consumes a seed_seq.
type StdSeedSeq []uint32

func (s StdSeedSeq) Generate32(n int) ([]uint32, error) {
	return SeedSeq(s, n)
}

func (s StdSeedSeq) Generate64(n int) ([]uint64, error) {
	if err := checkResultSize(n); err != nil {
		return nil, err
	}
	words, err := SeedSeq(s, 2*n)
	if err != nil {
		return nil, err
	}
	out := make([]uint64, n)
	for i := range out {
		out[i] = uint64(words[2*i]) | uint64(words[2*i+1])<<32
	}
	return out, nil
}
