package numrand

// Engine is the surface that samplers and distributions consume. Every concrete generator
// of this package is available as an Engine through Engine32 or Engine64.
//
// Engines are not safe for concurrent use. Use one instance per goroutine, e.g. one
// Philox4x32 per worker keyed by the worker index.
type Engine interface {
	NextU32() uint32
	NextU64() uint64
	NextBoundedU32(max uint32) uint32
	NextBoundedU64(max uint64) uint64
	NextBoundedU32InRange(min, max uint32) (uint32, error)
	NextBoundedU64InRange(min, max uint64) (uint64, error)
	NextBoundedIntInRange(min, max int64) (int64, error)
	NextCanonicalDouble() float64
	NextIncrementedCanonicalDouble() float64
	NextSymmetricCanonicalDouble() float64
}

var (
	_ Engine = (*Engine32[*MT19937Source])(nil)
	_ Engine = (*Engine64[*MT19937x64Source])(nil)
)

// Engine32 derives the full Engine surface from a source of raw 32-bit words.
// 64-bit words are two concatenated raw draws; canonical doubles consume one 64-bit word.
type Engine32[S RawWordSource32] struct {
	src S
}

// NewEngine32 wraps src. The engine owns src from now on; drawing from src directly
// interleaves with the engine's draws.
func NewEngine32[S RawWordSource32](src S) *Engine32[S] {
	return &Engine32[S]{src: src}
}

// Source returns the wrapped raw word source for generator specific operations
// (seeking, jumping ahead).
func (e *Engine32[S]) Source() S { return e.src }

func (e *Engine32[S]) NextU32() uint32 { return e.src.NextRaw32() }

func (e *Engine32[S]) NextU64() uint64 { return U64From32(e.src) }

// Uint64 makes the engine a math/rand/v2 Source.
func (e *Engine32[S]) Uint64() uint64 { return U64From32(e.src) }

// NextBoundedU32 returns an unbiased value in [0, max].
func (e *Engine32[S]) NextBoundedU32(max uint32) uint32 { return Bounded32(e.src, max) }

// NextBoundedU64 returns an unbiased value in [0, max].
func (e *Engine32[S]) NextBoundedU64(max uint64) uint64 { return Bounded64From32(e.src, max) }

// NextBoundedU32InRange returns an unbiased value in [min, max].
func (e *Engine32[S]) NextBoundedU32InRange(min, max uint32) (uint32, error) {
	if err := checkRange(min, max); err != nil {
		return 0, err
	}
	return min + Bounded32(e.src, max-min), nil
}

// NextBoundedU64InRange returns an unbiased value in [min, max].
func (e *Engine32[S]) NextBoundedU64InRange(min, max uint64) (uint64, error) {
	if err := checkRange(min, max); err != nil {
		return 0, err
	}
	return min + Bounded64From32(e.src, max-min), nil
}

// NextBoundedIntInRange returns an unbiased value in [min, max].
func (e *Engine32[S]) NextBoundedIntInRange(min, max int64) (int64, error) {
	if err := checkRange(min, max); err != nil {
		return 0, err
	}
	return min + int64(Bounded64From32(e.src, uint64(max)-uint64(min))), nil
}

func (e *Engine32[S]) NextCanonicalDouble() float64 { return Canonical(U64From32(e.src)) }

func (e *Engine32[S]) NextIncrementedCanonicalDouble() float64 {
	return IncrementedCanonical(U64From32(e.src))
}

func (e *Engine32[S]) NextSymmetricCanonicalDouble() float64 {
	return SymmetricCanonical(U64From32(e.src))
}

// Discard draws and drops n raw words.
func (e *Engine32[S]) Discard(n uint64) {
	for range n {
		e.src.NextRaw32()
	}
}

// Engine64 derives the full Engine surface from a source of raw 64-bit words.
// 32-bit words and 32-bit bounded values go through Bounded64, never through truncation.
type Engine64[S RawWordSource64] struct {
	src S
}

// NewEngine64 wraps src.
func NewEngine64[S RawWordSource64](src S) *Engine64[S] {
	return &Engine64[S]{src: src}
}

func (e *Engine64[S]) Source() S { return e.src }

func (e *Engine64[S]) NextU32() uint32 { return U32From64(e.src) }

func (e *Engine64[S]) NextU64() uint64 { return e.src.NextRaw64() }

// Uint64 makes the engine a math/rand/v2 Source.
func (e *Engine64[S]) Uint64() uint64 { return e.src.NextRaw64() }

func (e *Engine64[S]) NextBoundedU32(max uint32) uint32 { return Bounded32From64(e.src, max) }

func (e *Engine64[S]) NextBoundedU64(max uint64) uint64 { return Bounded64(e.src, max) }

func (e *Engine64[S]) NextBoundedU32InRange(min, max uint32) (uint32, error) {
	if err := checkRange(min, max); err != nil {
		return 0, err
	}
	return min + Bounded32From64(e.src, max-min), nil
}

func (e *Engine64[S]) NextBoundedU64InRange(min, max uint64) (uint64, error) {
	if err := checkRange(min, max); err != nil {
		return 0, err
	}
	return min + Bounded64(e.src, max-min), nil
}

func (e *Engine64[S]) NextBoundedIntInRange(min, max int64) (int64, error) {
	if err := checkRange(min, max); err != nil {
		return 0, err
	}
	return min + int64(Bounded64(e.src, uint64(max)-uint64(min))), nil
}

func (e *Engine64[S]) NextCanonicalDouble() float64 { return Canonical(e.src.NextRaw64()) }

func (e *Engine64[S]) NextIncrementedCanonicalDouble() float64 {
	return IncrementedCanonical(e.src.NextRaw64())
}

func (e *Engine64[S]) NextSymmetricCanonicalDouble() float64 {
	return SymmetricCanonical(e.src.NextRaw64())
}

func (e *Engine64[S]) Discard(n uint64) {
	for range n {
		e.src.NextRaw64()
	}
}
