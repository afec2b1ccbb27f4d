package numrand

import (
	"crypto/rand"
	"encoding/binary"

	"github.com/pkg/errors"
)

// EntropySeedSequence is a seed sequence drawing from crypto/rand.Reader. It reads random
// bytes in batches to reduce the number of calls to the underlying OS source.
// This seed sequence is not deterministic: every call to Generate32 or Generate64 returns
// fresh words. Use it to seed the deterministic generators of this package when the
// sequence does not need to be reproducible.
// This seed sequence is not thread-safe; use one instance per goroutine.
// The memory footprint can be adjusted by changing the capBytes parameter in NewEntropySeedSequence.
type EntropySeedSequence struct {
	bufPos uint32
	buf    []byte
}

// NewEntropySeedSequence creates an EntropySeedSequence with a buffer capacity of capBytes.
// The buffer is filled lazily and refilled as needed. A larger buffer reduces the number of
// operating system calls, a smaller buffer reduces memory usage.
func NewEntropySeedSequence(capBytes uint32) *EntropySeedSequence {
	if capBytes < 8 {
		capBytes = 8 // minimum buffer size to hold at least one uint64
	}
	b := &EntropySeedSequence{buf: make([]byte, capBytes)}
	b.bufPos = capBytes // empty
	return b
}

// ensure that n bytes are available, otherwise refill the buffer
func (c *EntropySeedSequence) ensure(n int) error {
	if c.bufPos+uint32(n) > uint32(len(c.buf)) {
		if _, err := rand.Read(c.buf); err != nil {
			return errors.Wrap(err, "reading entropy")
		}
		c.bufPos = 0
	}
	return nil
}

func (c *EntropySeedSequence) Generate32(n int) ([]uint32, error) {
	if err := checkResultSize(n); err != nil {
		return nil, err
	}
	out := make([]uint32, n)
	for i := range out {
		if err := c.ensure(4); err != nil {
			return nil, err
		}
		out[i] = binary.LittleEndian.Uint32(c.buf[c.bufPos : c.bufPos+4])
		c.bufPos += 4
	}
	return out, nil
}

func (c *EntropySeedSequence) Generate64(n int) ([]uint64, error) {
	if err := checkResultSize(n); err != nil {
		return nil, err
	}
	out := make([]uint64, n)
	for i := range out {
		if err := c.ensure(8); err != nil {
			return nil, err
		}
		out[i] = binary.LittleEndian.Uint64(c.buf[c.bufPos : c.bufPos+8])
		c.bufPos += 8
	}
	return out, nil
}
