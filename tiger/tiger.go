// Package tiger implements the Tiger hash function (Anderson & Biham) and
// its Tiger2 padding variant, both producing a 192-bit digest.
package tiger

import (
	"encoding/binary"
	"math/bits"

	"github.com/libOctavo/octavo/digest"
)

const (
	outputBits  = 192
	outputBytes = 24
	blockSize   = 64
	rounds      = 3
)

var sbox0, sbox1, sbox2, sbox3 [256]uint64

func init() {
	for i := 0; i < 256; i++ {
		sbox0[i] = tigerT1[i]
		sbox1[i] = bits.RotateLeft64(tigerT1[i], 23)
		sbox2[i] = bits.RotateLeft64(tigerT1[i], 46)
		sbox3[i] = bits.RotateLeft64(tigerT1[i], 5)
	}
}

type state struct {
	a, b, c uint64
}

func newState() state {
	return state{0x0123456789ABCDEF, 0xFEDCBA9876543210, 0xF096A5B4C3B2E187}
}

func round(a, b, c, x, mul uint64) (uint64, uint64, uint64) {
	c ^= x
	a -= sbox0[byte(c)] ^ sbox1[byte(c>>16)] ^ sbox2[byte(c>>32)] ^ sbox3[byte(c>>48)]
	b += sbox3[byte(c>>8)] ^ sbox2[byte(c>>24)] ^ sbox1[byte(c>>40)] ^ sbox0[byte(c>>56)]
	b *= mul
	return a, b, c
}

func pass(a, b, c uint64, x *[8]uint64, mul uint64) (uint64, uint64, uint64) {
	a, b, c = round(a, b, c, x[0], mul)
	b, c, a = round(b, c, a, x[1], mul)
	c, a, b = round(c, a, b, x[2], mul)
	a, b, c = round(a, b, c, x[3], mul)
	b, c, a = round(b, c, a, x[4], mul)
	c, a, b = round(c, a, b, x[5], mul)
	a, b, c = round(a, b, c, x[6], mul)
	b, c, a = round(b, c, a, x[7], mul)
	return a, b, c
}

// passMul is the per-pass multiplier Tiger's compression function uses:
// 5, 7, then 9 for passes 0, 1, 2.
var passMul = [rounds]uint64{5, 7, 9}

func keySchedule(x *[8]uint64) {
	x[0] -= x[7] ^ 0xA5A5A5A5A5A5A5A5
	x[1] ^= x[0]
	x[2] += x[1]
	x[3] -= x[2] ^ ((^x[1]) << 19)
	x[4] ^= x[3]
	x[5] += x[4]
	x[6] -= x[5] ^ ((^x[4]) >> 23)
	x[7] ^= x[6]
	x[0] += x[7]
	x[1] -= x[0] ^ ((^x[7]) << 19)
	x[2] ^= x[1]
	x[3] += x[2]
	x[4] -= x[3] ^ ((^x[2]) >> 23)
	x[5] ^= x[4]
	x[6] += x[5]
	x[7] -= x[6] ^ 0x0123456789ABCDEF
}

func (s *state) compress(block []byte) {
	var x [8]uint64
	for i := range x {
		x[i] = binary.LittleEndian.Uint64(block[i*8:])
	}

	aa, bb, cc := s.a, s.b, s.c

	for i := 0; i < rounds; i++ {
		if i != 0 {
			keySchedule(&x)
		}
		aa, bb, cc = pass(aa, bb, cc, &x, passMul[i])
		aa, bb, cc = cc, aa, bb
	}

	s.a ^= aa
	s.b = bb - s.b
	s.c += cc
}

// Digest is a Tiger hash in progress.
type Digest struct {
	state   state
	length  uint64
	buffer  digest.FixedBuffer64
	version int // 1 for Tiger (0x01 pad), 2 for Tiger2 (0x80 pad)
}

// New returns a Digest computing the original Tiger hash (0x01 pad byte).
func New() *Digest {
	return &Digest{state: newState(), version: 1}
}

// New2 returns a Digest computing Tiger2 (0x80 pad byte, otherwise
// identical to Tiger).
func New2() *Digest {
	return &Digest{state: newState(), version: 2}
}

func (d *Digest) Update(p []byte) {
	d.length += uint64(len(p))
	state := &d.state
	d.buffer.Input(p, state.compress)
}

func (d *Digest) Result(out []byte) {
	if len(out) < outputBytes {
		panic("tiger: output buffer too small")
	}
	state := &d.state

	if d.version == 2 {
		d.buffer.StandardPadding(8, state.compress)
	} else {
		d.buffer.TigerPadding(8, state.compress)
	}
	binary.LittleEndian.PutUint64(d.buffer.Next(8), d.length<<3)
	state.compress(d.buffer.FullBuffer())

	binary.LittleEndian.PutUint64(out[0:8], state.a)
	binary.LittleEndian.PutUint64(out[8:16], state.b)
	binary.LittleEndian.PutUint64(out[16:24], state.c)
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
	version := d.version
	d.state = newState()
	d.length = 0
	d.buffer = digest.FixedBuffer64{}
	d.version = version
}

func (d *Digest) Size() int { return outputBytes }
