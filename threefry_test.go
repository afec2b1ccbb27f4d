package numrand

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	threeFryPiCounter = Counter4x64{0x243f6a8885a308d3, 0x13198a2e03707344, 0xa4093822299f31d0, 0x082efa98ec4e6c89}
	threeFryPiKey     = [4]uint64{0x452821e638d01377, 0xbe5466cf34e90c6c, 0xc0ac29b7c97c50dd, 0x3f84d5b5b5470917}
)

func TestThreeFry4x64KnownAnswers(t *testing.T) {
	tests := []struct {
		name   string
		ctr    Counter4x64
		key    [4]uint64
		rounds int
		want   [4]uint64
	}{
		{"20 zero", Counter4x64{}, [4]uint64{}, ThreeFryRounds, [4]uint64{0x09218ebde6c85537, 0x55941f5266d86105, 0x4bd25e16282434dc, 0xee29ec846bd2e40b}},
		{"20 counter one", Counter4x64{1, 0, 0, 0}, [4]uint64{}, ThreeFryRounds, [4]uint64{0xaffbae48c21f4d17, 0x69d9911959a2be5d, 0x648fac0e8d1d2f63, 0xa90aace949ad6863}},
		{"20 pi", threeFryPiCounter, threeFryPiKey, ThreeFryRounds, [4]uint64{0xbb893fd42eac50eb, 0x7ca8b22905f3443a, 0xe204b8dcb4daace7, 0x3e1070a2327bfc09}},
		{"13 zero", Counter4x64{}, [4]uint64{}, ThreeFryReducedRounds, [4]uint64{0x4071fabee1dc8e05, 0x02ed3113695c9c62, 0x397311b5b89f9d49, 0xe21292c3258024bc}},
		{"13 counter one", Counter4x64{1, 0, 0, 0}, [4]uint64{}, ThreeFryReducedRounds, [4]uint64{0xf4433e464ed5dffb, 0x2402474751112251, 0x02acd8667b22c8c2, 0x72551ff7d94332f5}},
		{"13 counter 2^64", Counter4x64{0, 1, 0, 0}, [4]uint64{}, ThreeFryReducedRounds, [4]uint64{0xf7fca2bf6b7a4afd, 0xf34bf937a401471e, 0x88a3787a8c5227b1, 0x9bdcc2a81a46757f}},
		{"13 pi", threeFryPiCounter, threeFryPiKey, ThreeFryReducedRounds, [4]uint64{0x4361288ef9c1900c, 0x8717291521782833, 0x0d19db18c20cf47e, 0xa0b41d63ac8581e5}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ThreeFry4x64Block(tc.ctr, tc.key, tc.rounds))
		})
	}
}

func TestThreeFry4x64DrawOrder(t *testing.T) {
	rng := NewThreeFry4x64([4]uint64{})
	assert.Equal(t, ThreeFryRounds, rng.Source().Rounds())
	for _, want := range []uint64{0x09218ebde6c85537, 0x55941f5266d86105, 0x4bd25e16282434dc, 0xee29ec846bd2e40b, 0xaffbae48c21f4d17} {
		assert.Equal(t, want, rng.NextU64())
	}
	assert.Equal(t, Counter4x64{2, 0, 0, 0}, rng.Source().Counter())
}

func TestThreeFry4x64Seek(t *testing.T) {
	rng := NewThreeFry4x64WithCounter(threeFryPiKey, Counter4x64{5, 0, 0, 0})
	rng.NextU64()
	rng.Source().Seek(threeFryPiCounter)
	assert.Equal(t, uint64(0xbb893fd42eac50eb), rng.NextU64())
	assert.Equal(t, uint64(0x7ca8b22905f3443a), rng.NextU64())
}

func TestThreeFry4x64ReducedMatchesWideCounterBeforeWrap(t *testing.T) {
	key := [4]uint64{1, 2, 3, 4}
	reduced := NewThreeFry4x64Reduced(key)
	wide := NewEngine64(newThreeFry4x64Source(key, Counter4x64{}, ThreeFryReducedRounds, false))
	assert.Equal(t, ThreeFryReducedRounds, reduced.Source().Rounds())
	for i := range 4_000 {
		require.Equal(t, wide.NextU64(), reduced.NextU64(), "draw %d", i)
	}
}

func TestThreeFry4x64ReducedCounterWraps(t *testing.T) {
	last := Counter4x64{math.MaxUint64, 0, 0, 0}

	reduced := NewThreeFry4x64Reduced([4]uint64{})
	reduced.Source().Seek(last)
	reduced.Discard(4)
	assert.Equal(t, Counter4x64{}, reduced.Source().Counter())
	assert.Equal(t, uint64(0x4071fabee1dc8e05), reduced.NextU64())

	wide := NewEngine64(newThreeFry4x64Source([4]uint64{}, last, ThreeFryReducedRounds, false))
	wide.Discard(4)
	assert.Equal(t, Counter4x64{0, 1, 0, 0}, wide.Source().Counter())
	assert.Equal(t, uint64(0xf7fca2bf6b7a4afd), wide.NextU64())
}

func TestThreeFry4x64FullCounterWraps(t *testing.T) {
	top := Counter4x64{math.MaxUint64, math.MaxUint64, math.MaxUint64, math.MaxUint64}
	rng := NewThreeFry4x64WithCounter([4]uint64{}, top)
	rng.Discard(4)
	assert.Equal(t, Counter4x64{}, rng.Source().Counter())
	assert.Equal(t, uint64(0x09218ebde6c85537), rng.NextU64())
}

func TestThreeFry4x64FromSeedSequence(t *testing.T) {
	seq := StdSeedSeq{3, 1, 4, 1, 5}
	words, err := seq.Generate64(4)
	require.NoError(t, err)
	rng, err := NewThreeFry4x64FromSeedSequence(seq)
	require.NoError(t, err)
	want := ThreeFry4x64Block(Counter4x64{}, [4]uint64{words[0], words[1], words[2], words[3]}, ThreeFryRounds)
	assert.Equal(t, want[0], rng.NextU64())

	_, err = NewThreeFry4x64FromSeedSequence(nil)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	_, err = NewThreeFry4x64FromSeedSequence(shortSeq{})
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}
