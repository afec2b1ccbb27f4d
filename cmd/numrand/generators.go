package main

import (
	"math"
	"sort"

	"github.com/pkg/errors"

	"github.com/TomTonic/numrand"
)

type generator struct {
	name  string
	width int // native word size in bits
	desc  string
	new   func(seed uint64) (numrand.Engine, error)
}

var generators = map[string]generator{
	"mt32": {"mt32", 32, "32-bit Mersenne Twister, init_genrand(seed)", func(seed uint64) (numrand.Engine, error) {
		if seed > math.MaxUint32 {
			return nil, errors.Errorf("mt32 takes a 32-bit seed, got %d", seed)
		}
		return numrand.NewMersenneTwister32FromSeed(uint32(seed)), nil
	}},
	"mt64": {"mt64", 64, "64-bit Mersenne Twister, init_genrand64(seed)", func(seed uint64) (numrand.Engine, error) {
		return numrand.NewMersenneTwister64FromSeed(seed), nil
	}},
	"pcg32": {"pcg32", 32, "PCG-XSH-RR, state seed on stream 0", func(seed uint64) (numrand.Engine, error) {
		return numrand.NewPCG32(seed, 0)
	}},
	"philox": {"philox", 32, "Philox4x32-10, key (seed low, seed high)", func(seed uint64) (numrand.Engine, error) {
		return numrand.NewPhilox4x32([2]uint32{uint32(seed), uint32(seed >> 32)}), nil
	}},
	"threefry": {"threefry", 64, "ThreeFry4x64-20, key (seed, 0, 0, 0)", func(seed uint64) (numrand.Engine, error) {
		return numrand.NewThreeFry4x64([4]uint64{seed}), nil
	}},
	"threefry13": {"threefry13", 64, "ThreeFry4x64-13 with a 64-bit counter, key (seed, 0, 0, 0)", func(seed uint64) (numrand.Engine, error) {
		return numrand.NewThreeFry4x64Reduced([4]uint64{seed}), nil
	}},
	"xorshift": {"xorshift", 64, "xorshift*, seed 0 draws from the OS", func(seed uint64) (numrand.Engine, error) {
		return numrand.NewXorShiftStar(seed), nil
	}},
}

func generatorNames() []string {
	names := make([]string, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func lookupGenerator(name string) (generator, error) {
	g, ok := generators[name]
	if !ok {
		return generator{}, errors.Errorf("unknown generator %q, known: %v", name, generatorNames())
	}
	return g, nil
}

func newEngine(name string, seed uint64) (generator, numrand.Engine, error) {
	g, err := lookupGenerator(name)
	if err != nil {
		return generator{}, nil, err
	}
	e, err := g.new(seed)
	if err != nil {
		return generator{}, nil, errors.Wrapf(err, "creating %s", name)
	}
	return g, e, nil
}
