// Package sha2 implements the SHA-2 family of message digests (FIPS 180-4):
// SHA-224, SHA-256, SHA-384, SHA-512, SHA-512/224, and SHA-512/256.
package sha2

import (
	"encoding/binary"
	"math/bits"

	"github.com/libOctavo/octavo/digest"
)

const blockSize32 = 64

var k256 = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5, 0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3, 0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc, 0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7, 0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13, 0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3, 0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5, 0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208, 0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

var iv224 = [8]uint32{0xc1059ed8, 0x367cd507, 0x3070dd17, 0xf70e5939, 0xffc00b31, 0x68581511, 0x64f98fa7, 0xbefa4fa4}
var iv256 = [8]uint32{0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a, 0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19}

type state32 struct {
	h [8]uint32
}

func ch32(x, y, z uint32) uint32  { return (x & y) ^ (^x & z) }
func maj32(x, y, z uint32) uint32 { return (x & y) ^ (x & z) ^ (y & z) }
func bigSigma0(x uint32) uint32   { return bits.RotateLeft32(x, -2) ^ bits.RotateLeft32(x, -13) ^ bits.RotateLeft32(x, -22) }
func bigSigma1(x uint32) uint32   { return bits.RotateLeft32(x, -6) ^ bits.RotateLeft32(x, -11) ^ bits.RotateLeft32(x, -25) }
func smallSigma0(x uint32) uint32 { return bits.RotateLeft32(x, -7) ^ bits.RotateLeft32(x, -18) ^ (x >> 3) }
func smallSigma1(x uint32) uint32 { return bits.RotateLeft32(x, -17) ^ bits.RotateLeft32(x, -19) ^ (x >> 10) }

func (s *state32) compress(block []byte) {
	var w [64]uint32
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(block[i*4:])
	}
	for i := 16; i < 64; i++ {
		w[i] = smallSigma1(w[i-2]) + w[i-7] + smallSigma0(w[i-15]) + w[i-16]
	}

	a, b, c, d, e, f, g, h := s.h[0], s.h[1], s.h[2], s.h[3], s.h[4], s.h[5], s.h[6], s.h[7]

	for i := 0; i < 64; i++ {
		t1 := h + bigSigma1(e) + ch32(e, f, g) + k256[i] + w[i]
		t2 := bigSigma0(a) + maj32(a, b, c)
		h, g, f, e, d, c, b, a = g, f, e, d+t1, c, b, a, t1+t2
	}

	s.h[0] += a
	s.h[1] += b
	s.h[2] += c
	s.h[3] += d
	s.h[4] += e
	s.h[5] += f
	s.h[6] += g
	s.h[7] += h
}

// digest32 is the shared driver for SHA-224 and SHA-256.
type digest32 struct {
	state       state32
	length      uint64
	buffer      digest.FixedBuffer64
	outputBytes int
}

func newDigest32(iv [8]uint32, outputBytes int) *digest32 {
	return &digest32{state: state32{h: iv}, outputBytes: outputBytes}
}

func (d *digest32) Update(p []byte) {
	d.length += uint64(len(p))
	state := &d.state
	d.buffer.Input(p, state.compress)
}

func (d *digest32) Result(out []byte) {
	if len(out) < d.outputBytes {
		panic("sha2: output buffer too small")
	}
	state := &d.state

	d.buffer.StandardPadding(8, state.compress)
	binary.BigEndian.PutUint64(d.buffer.Next(8), d.length*8)
	state.compress(d.buffer.FullBuffer())

	var full [32]byte
	for i := 0; i < 8; i++ {
		binary.BigEndian.PutUint32(full[i*4:], state.h[i])
	}
	copy(out, full[:d.outputBytes])
}

func (d *digest32) OutputBits() int  { return d.outputBytes * 8 }
func (d *digest32) OutputBytes() int { return d.outputBytes }
func (d *digest32) BlockSize() int   { return blockSize32 }

func (d *digest32) clone() *digest32 {
	c := *d
	return &c
}

func (d *digest32) Write(p []byte) (int, error) {
	d.Update(p)
	return len(p), nil
}

func (d *digest32) Sum(b []byte) []byte {
	clone := d.clone()
	out := make([]byte, d.outputBytes)
	clone.Result(out)
	return append(b, out...)
}

func (d *digest32) Size() int { return d.outputBytes }

// Sha224 is the SHA-224 variant of the SHA-2 family.
type Sha224 struct{ digest32 }

// NewSha224 returns a Digest primed with SHA-224's fixed initial state.
func NewSha224() *Sha224 { return &Sha224{*newDigest32(iv224, 28)} }

func (d *Sha224) Clone() digest.Digest { return &Sha224{*d.digest32.clone()} }
func (d *Sha224) Reset()               { *d = *NewSha224() }

// Sha256 is the SHA-256 variant of the SHA-2 family.
type Sha256 struct{ digest32 }

// NewSha256 returns a Digest primed with SHA-256's fixed initial state.
func NewSha256() *Sha256 { return &Sha256{*newDigest32(iv256, 32)} }

func (d *Sha256) Clone() digest.Digest { return &Sha256{*d.digest32.clone()} }
func (d *Sha256) Reset()               { *d = *NewSha256() }
