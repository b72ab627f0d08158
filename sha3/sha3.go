// Package sha3 implements the SHA-3 fixed-output digests (FIPS 202):
// SHA3-224, SHA3-256, SHA3-384, and SHA3-512, built on the Keccak-f[1600]
// permutation.
//
// The sponge's rate varies per output size (144/136/104/72 bytes), so
// unlike the Merkle-Damgard family this package keeps its own small byte
// buffer rather than reusing digest.FixedBuffer64/128.
package sha3

import (
	"math/bits"

	"github.com/libOctavo/octavo/digest"
)

var roundConsts = [24]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808a, 0x8000000080008000,
	0x000000000000808b, 0x0000000080000001, 0x8000000080008081, 0x8000000000008009,
	0x000000000000008a, 0x0000000000000088, 0x0000000080008009, 0x000000008000000a,
	0x000000008000808b, 0x800000000000008b, 0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080, 0x000000000000800a, 0x800000008000000a,
	0x8000000080008081, 0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

var rotationOffsets = [5][5]int{
	{0, 36, 3, 41, 18},
	{1, 44, 10, 45, 2},
	{62, 6, 43, 15, 61},
	{28, 55, 25, 21, 56},
	{27, 20, 39, 8, 14},
}

// keccakF1600 runs all 24 rounds of the Keccak permutation over a lanes
// in row-major x + 5*y order.
func keccakF1600(a *[25]uint64) {
	for round := 0; round < 24; round++ {
		var c [5]uint64
		for x := 0; x < 5; x++ {
			c[x] = a[x] ^ a[x+5] ^ a[x+10] ^ a[x+15] ^ a[x+20]
		}
		var d [5]uint64
		for x := 0; x < 5; x++ {
			d[x] = c[(x+4)%5] ^ bits.RotateLeft64(c[(x+1)%5], 1)
		}
		for x := 0; x < 5; x++ {
			for y := 0; y < 5; y++ {
				a[x+5*y] ^= d[x]
			}
		}

		var b [25]uint64
		for x := 0; x < 5; x++ {
			for y := 0; y < 5; y++ {
				b[y+5*((2*x+3*y)%5)] = bits.RotateLeft64(a[x+5*y], rotationOffsets[x][y])
			}
		}

		for x := 0; x < 5; x++ {
			for y := 0; y < 5; y++ {
				a[x+5*y] = b[x+5*y] ^ (^b[(x+1)%5+5*y] & b[(x+2)%5+5*y])
			}
		}

		a[0] ^= roundConsts[round]
	}
}

const domainSeparator = 0b00000110

// Digest is a SHA-3 sponge hash in progress, parameterized by output size.
type Digest struct {
	state       [25]uint64
	rate        int
	buf         []byte
	pos         int
	outputBytes int
}

func newDigest(outputBytes int) *Digest {
	rate := 200 - 2*outputBytes
	return &Digest{rate: rate, buf: make([]byte, rate), outputBytes: outputBytes}
}

// New224 returns a Digest configured for SHA3-224.
func New224() *Digest { return newDigest(28) }

// New256 returns a Digest configured for SHA3-256.
func New256() *Digest { return newDigest(32) }

// New384 returns a Digest configured for SHA3-384.
func New384() *Digest { return newDigest(48) }

// New512 returns a Digest configured for SHA3-512.
func New512() *Digest { return newDigest(64) }

func (d *Digest) absorbBlock(block []byte) {
	for i := 0; i < d.rate/8; i++ {
		lane := uint64(0)
		for j := 7; j >= 0; j-- {
			lane = lane<<8 | uint64(block[i*8+j])
		}
		d.state[i] ^= lane
	}
	keccakF1600(&d.state)
}

// Update feeds more data into the running hash.
func (d *Digest) Update(p []byte) {
	if d.pos > 0 {
		n := copy(d.buf[d.pos:], p)
		d.pos += n
		p = p[n:]
		if d.pos < d.rate {
			return
		}
		d.absorbBlock(d.buf)
		d.pos = 0
	}
	for len(p) >= d.rate {
		d.absorbBlock(p[:d.rate])
		p = p[d.rate:]
	}
	if len(p) > 0 {
		d.pos = copy(d.buf, p)
	}
}

// Result writes the digest into out and consumes the receiver.
func (d *Digest) Result(out []byte) {
	if len(out) < d.outputBytes {
		panic("sha3: output buffer too small")
	}

	for i := d.pos; i < d.rate; i++ {
		d.buf[i] = 0
	}
	d.buf[d.pos] |= domainSeparator
	d.buf[d.rate-1] |= 0b10000000
	d.absorbBlock(d.buf)

	for i := 0; i < d.outputBytes; i += 8 {
		lane := d.state[i/8]
		for j := 0; j < 8 && i+j < d.outputBytes; j++ {
			out[i+j] = byte(lane)
			lane >>= 8
		}
	}
}

func (d *Digest) OutputBits() int  { return d.outputBytes * 8 }
func (d *Digest) OutputBytes() int { return d.outputBytes }
func (d *Digest) BlockSize() int   { return d.rate }

// Clone returns an independent copy of the current state.
func (d *Digest) Clone() digest.Digest {
	c := &Digest{state: d.state, rate: d.rate, pos: d.pos, outputBytes: d.outputBytes}
	c.buf = make([]byte, d.rate)
	copy(c.buf, d.buf)
	return c
}

// Write implements io.Writer / hash.Hash.
func (d *Digest) Write(p []byte) (int, error) {
	d.Update(p)
	return len(p), nil
}

// Sum appends the current digest to b without consuming the receiver.
func (d *Digest) Sum(b []byte) []byte {
	clone := d.Clone().(*Digest)
	out := make([]byte, d.outputBytes)
	clone.Result(out)
	return append(b, out...)
}

// Reset restores the digest's initial sponge state.
func (d *Digest) Reset() {
	d.state = [25]uint64{}
	d.pos = 0
}

func (d *Digest) Size() int { return d.outputBytes }
