// Package sha1 implements the SHA-1 message digest (FIPS 180-4).
//
// SHA-1 is vulnerable to practical collision attacks; prefer sha2 or sha3
// for new work.
package sha1

import (
	"encoding/binary"
	"math/bits"

	"github.com/libOctavo/octavo/digest"
)

const (
	outputBits  = 160
	outputBytes = 20
	blockSize   = 64
)

type state struct {
	a, b, c, d, e uint32
}

func newState() state {
	return state{0x67452301, 0xEFCDAB89, 0x98BADCFE, 0x10325476, 0xC3D2E1F0}
}

const (
	k0 = 0x5a827999
	k1 = 0x6ed9eba1
	k2 = 0x8f1bbcdc
	k3 = 0xca62c1d6
)

func ff(b, c, d uint32) uint32 { return (b & c) | (^b & d) }
func gg(b, c, d uint32) uint32 { return b ^ c ^ d }
func hh(b, c, d uint32) uint32 { return (b & c) | (b & d) | (c & d) }
func ii(b, c, d uint32) uint32 { return b ^ c ^ d }

func (s *state) compress(block []byte) {
	var w [80]uint32
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(block[i*4:])
	}
	for i := 16; i < 80; i++ {
		w[i] = bits.RotateLeft32(w[i-3]^w[i-8]^w[i-14]^w[i-16], 1)
	}

	a, b, c, d, e := s.a, s.b, s.c, s.d, s.e

	for i := 0; i < 20; i++ {
		t := bits.RotateLeft32(a, 5) + ff(b, c, d) + e + k0 + w[i]
		e, d, c, b, a = d, c, bits.RotateLeft32(b, 30), a, t
	}
	for i := 20; i < 40; i++ {
		t := bits.RotateLeft32(a, 5) + gg(b, c, d) + e + k1 + w[i]
		e, d, c, b, a = d, c, bits.RotateLeft32(b, 30), a, t
	}
	for i := 40; i < 60; i++ {
		t := bits.RotateLeft32(a, 5) + hh(b, c, d) + e + k2 + w[i]
		e, d, c, b, a = d, c, bits.RotateLeft32(b, 30), a, t
	}
	for i := 60; i < 80; i++ {
		t := bits.RotateLeft32(a, 5) + ii(b, c, d) + e + k3 + w[i]
		e, d, c, b, a = d, c, bits.RotateLeft32(b, 30), a, t
	}

	s.a += a
	s.b += b
	s.c += c
	s.d += d
	s.e += e
}

// Digest is a SHA-1 hash in progress.
type Digest struct {
	state  state
	length uint64
	buffer digest.FixedBuffer64
}

// New returns a Digest primed with SHA-1's fixed initial state.
func New() *Digest {
	return &Digest{state: newState()}
}

func (d *Digest) Update(p []byte) {
	d.length += uint64(len(p))
	state := &d.state
	d.buffer.Input(p, state.compress)
}

func (d *Digest) Result(out []byte) {
	if len(out) < outputBytes {
		panic("sha1: output buffer too small")
	}
	state := &d.state

	d.buffer.StandardPadding(8, state.compress)
	binary.BigEndian.PutUint64(d.buffer.Next(8), d.length*8)
	state.compress(d.buffer.FullBuffer())

	binary.BigEndian.PutUint32(out[0:4], state.a)
	binary.BigEndian.PutUint32(out[4:8], state.b)
	binary.BigEndian.PutUint32(out[8:12], state.c)
	binary.BigEndian.PutUint32(out[12:16], state.d)
	binary.BigEndian.PutUint32(out[16:20], state.e)
}

func (d *Digest) OutputBits() int  { return outputBits }
func (d *Digest) OutputBytes() int { return outputBytes }
func (d *Digest) BlockSize() int   { return blockSize }

func (d *Digest) Clone() digest.Digest {
	c := *d
	return &c
}

func (d *Digest) Write(p []byte) (int, error) {
	d.Update(p)
	return len(p), nil
}

func (d *Digest) Sum(b []byte) []byte {
	clone := *d
	out := make([]byte, outputBytes)
	clone.Result(out)
	return append(b, out...)
}

func (d *Digest) Reset() {
	d.state = newState()
	d.length = 0
	d.buffer = digest.FixedBuffer64{}
}

func (d *Digest) Size() int { return outputBytes }
