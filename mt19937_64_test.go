package numrand

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMersenneTwister64ReferenceTraces(t *testing.T) {
	fromArray, err := NewMersenneTwister64FromArray([]uint64{0x12345, 0x23456, 0x34567, 0x45678})
	require.NoError(t, err)
	fromSeedSeq, err := NewMersenneTwister64(StdSeedSeq{1, 2, 3, 4})
	require.NoError(t, err)

	tests := []struct {
		name string
		file string
		rng  *MersenneTwister64
	}{
		{"init_genrand", "mt19937_64_initgenrand_5489.txt", NewMersenneTwister64FromSeed(5489)},
		{"init_by_array", "mt19937_64_initbyarray.txt", fromArray},
		{"seed_seq", "mt19937_64_seedseq.txt", fromSeedSeq},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			trace := loadTrace(t, tc.file)
			require.Len(t, trace, 700)
			for i, want := range trace {
				if got := tc.rng.NextU64(); got != want {
					t.Fatalf("draw %d: got %#016x, want %#016x", i, got, want)
				}
			}
		})
	}
}

func TestMersenneTwister64TenThousandthOutput(t *testing.T) {
	rng := NewMersenneTwister64FromSeed(5489)
	rng.Discard(9999)
	assert.Equal(t, uint64(9981545732273789042), rng.NextU64())
}

func TestMersenneTwister64LazyTwist(t *testing.T) {
	rng := NewMersenneTwister64FromSeed(42)
	src := rng.Source()
	assert.Equal(t, mt64N, src.index)
	rng.Discard(mt64N)
	assert.Equal(t, mt64N, src.index)
	rng.NextU64()
	assert.Equal(t, 1, src.index)
}

func TestMersenneTwister64U32IsHighHalf(t *testing.T) {
	a := NewMersenneTwister64FromSeed(77)
	b := NewMersenneTwister64FromSeed(77)
	for range 1_000 {
		assert.Equal(t, uint32(b.NextU64()>>32), a.NextU32())
	}
}

func TestNewMT19937x64SourceErrors(t *testing.T) {
	_, err := NewMT19937x64Source(nil)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	_, err = NewMT19937x64Source(shortSeq{})
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	_, err = NewMersenneTwister64FromArray(nil)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestMT19937x64ZeroStateGuard(t *testing.T) {
	src, err := NewMT19937x64Source(zeroSeq{})
	require.NoError(t, err)
	assert.Equal(t, uint64(1)<<63, src.state[0])
}
