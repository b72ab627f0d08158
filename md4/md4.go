// Package md4 implements the MD4 message digest (RFC 1320).
//
// MD4 is cryptographically broken; it exists here for legacy interop only.
package md4

import (
	"encoding/binary"
	"math/bits"

	"github.com/libOctavo/octavo/digest"
)

const (
	outputBits  = 128
	outputBytes = 16
	blockSize   = 64
)

type state struct {
	a, b, c, d uint32
}

func newState() state {
	return state{0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476}
}

func f(x, y, z uint32) uint32 { return (x & y) | (^x & z) }
func g(x, y, z uint32) uint32 { return (x & y) | (x & z) | (y & z) }
func h(x, y, z uint32) uint32 { return x ^ y ^ z }

const (
	kRound2 = 0x5a827999
	kRound3 = 0x6ed9eba1
)

var shiftsRound1 = [4]int{3, 7, 11, 19}
var shiftsRound2 = [4]int{3, 5, 9, 13}
var shiftsRound3 = [4]int{3, 9, 11, 15}

var orderRound2 = [16]int{0, 4, 8, 12, 1, 5, 9, 13, 2, 6, 10, 14, 3, 7, 11, 15}
var orderRound3 = [16]int{0, 8, 4, 12, 2, 10, 6, 14, 1, 9, 5, 13, 3, 11, 7, 15}

func (s *state) compress(block []byte) {
	a, b, c, d := s.a, s.b, s.c, s.d

	var m [16]uint32
	for i := range m {
		m[i] = binary.LittleEndian.Uint32(block[i*4:])
	}

	for i := 0; i < 16; i++ {
		a = bits.RotateLeft32(a+f(b, c, d)+m[i], shiftsRound1[i%4])
		a, b, c, d = d, a, b, c
	}
	for i := 0; i < 16; i++ {
		a = bits.RotateLeft32(a+g(b, c, d)+m[orderRound2[i]]+kRound2, shiftsRound2[i%4])
		a, b, c, d = d, a, b, c
	}
	for i := 0; i < 16; i++ {
		a = bits.RotateLeft32(a+h(b, c, d)+m[orderRound3[i]]+kRound3, shiftsRound3[i%4])
		a, b, c, d = d, a, b, c
	}

	s.a += a
	s.b += b
	s.c += c
	s.d += d
}

// Digest is an MD4 hash in progress.
type Digest struct {
	state  state
	length uint64
	buffer digest.FixedBuffer64
}

// New returns a Digest primed with MD4's fixed initial state.
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
		panic("md4: output buffer too small")
	}
	state := &d.state

	d.buffer.StandardPadding(8, state.compress)
	binary.LittleEndian.PutUint64(d.buffer.Next(8), d.length<<3)
	state.compress(d.buffer.FullBuffer())

	binary.LittleEndian.PutUint32(out[0:4], state.a)
	binary.LittleEndian.PutUint32(out[4:8], state.b)
	binary.LittleEndian.PutUint32(out[8:12], state.c)
	binary.LittleEndian.PutUint32(out[12:16], state.d)
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
