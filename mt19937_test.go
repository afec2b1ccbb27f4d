package numrand

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type zeroSeq struct{}

func (zeroSeq) Generate32(n int) ([]uint32, error) { return make([]uint32, n), nil }
func (zeroSeq) Generate64(n int) ([]uint64, error) { return make([]uint64, n), nil }

type shortSeq struct{}

func (shortSeq) Generate32(n int) ([]uint32, error) { return make([]uint32, n-1), nil }
func (shortSeq) Generate64(n int) ([]uint64, error) { return make([]uint64, n-1), nil }

func assertTrace32(t *testing.T, e Engine, trace []uint64) {
	t.Helper()
	for i, want := range trace {
		if got := e.NextU32(); uint64(got) != want {
			t.Fatalf("draw %d: got %#08x, want %#08x", i, got, want)
		}
	}
}

func TestMersenneTwister32ReferenceTraces(t *testing.T) {
	fromArray, err := NewMersenneTwister32FromArray([]uint32{0x123, 0x234, 0x345, 0x456})
	require.NoError(t, err)
	fromSeedSeq, err := NewMersenneTwister32(StdSeedSeq{1, 2, 3, 4})
	require.NoError(t, err)

	tests := []struct {
		name  string
		file  string
		rng   *MersenneTwister32
		count int
	}{
		{"init_genrand", "mt19937_initgenrand_1234.txt", NewMersenneTwister32FromSeed(1234), 1400},
		{"init_by_array", "mt19937_initbyarray.txt", fromArray, 1400},
		{"seed_seq", "mt19937_seedseq.txt", fromSeedSeq, 1400},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			trace := loadTrace(t, tc.file)
			require.Len(t, trace, tc.count)
			assertTrace32(t, tc.rng, trace)
		})
	}
}

func TestMersenneTwister32InitByArrayFirstOutputs(t *testing.T) {
	rng, err := NewMersenneTwister32FromArray([]uint32{0x123, 0x234, 0x345, 0x456})
	require.NoError(t, err)
	assert.Equal(t, uint32(1067595299), rng.NextU32())
	assert.Equal(t, uint32(955945823), rng.NextU32())
	assert.Equal(t, uint32(477289528), rng.NextU32())
}

func TestMersenneTwister32TenThousandthOutput(t *testing.T) {
	rng := NewMersenneTwister32FromSeed(5489)
	rng.Discard(9999)
	assert.Equal(t, uint32(4123659995), rng.NextU32())
}

func TestMersenneTwister32LazyTwist(t *testing.T) {
	rng := NewMersenneTwister32FromSeed(42)
	src := rng.Source()
	assert.Equal(t, mt32N, src.index, "no twist before the first draw")
	seeded := src.state

	rng.NextU32()
	assert.Equal(t, 1, src.index)
	assert.NotEqual(t, seeded, src.state)

	rng.Discard(mt32N - 1)
	assert.Equal(t, mt32N, src.index)
	twisted := src.state
	rng.NextU32()
	assert.Equal(t, 1, src.index)
	assert.NotEqual(t, twisted, src.state)
}

func TestMersenneTwister32Determinism(t *testing.T) {
	a := NewMersenneTwister32FromSeed(0xC0FFEE)
	b := NewMersenneTwister32FromSeed(0xC0FFEE)
	for i := range 5_000 {
		require.Equal(t, a.NextU64(), b.NextU64(), "draw %d", i)
	}
}

func TestNewMT19937SourceErrors(t *testing.T) {
	_, err := NewMT19937Source(nil)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	_, err = NewMT19937Source(shortSeq{})
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	_, err = NewMersenneTwister32FromArray(nil)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestMT19937ZeroStateGuard(t *testing.T) {
	src, err := NewMT19937Source(zeroSeq{})
	require.NoError(t, err)
	assert.Equal(t, mt32UpperMask, src.state[0])

	seen := false
	for range 2 * mt32N {
		if src.NextRaw32() != 0 {
			seen = true
			break
		}
	}
	assert.True(t, seen, "generator is stuck at zero")
}
