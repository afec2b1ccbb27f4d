package numrand

// blockWords is the number of output words per counter-based block.
const blockWords = 4

// Counter4x32 is the block counter of Philox4x32, a 128-bit little-endian integer
// (word 0 is least significant).
type Counter4x32 [4]uint32

// Increment adds one, carrying across all four words and wrapping to zero after 2^128-1.
func (c *Counter4x32) Increment() {
	for i := range c {
		c[i]++
		if c[i] != 0 {
			return
		}
	}
}

// Counter4x64 is the block counter of ThreeFry4x64, a 256-bit little-endian integer.
type Counter4x64 [4]uint64

// Increment adds one, carrying across all four words and wrapping to zero after 2^256-1.
func (c *Counter4x64) Increment() {
	for i := range c {
		c[i]++
		if c[i] != 0 {
			return
		}
	}
}
