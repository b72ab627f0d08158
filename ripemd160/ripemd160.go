// Package ripemd160 implements the RIPEMD-160 message digest.
package ripemd160

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
	h0, h1, h2, h3, h4 uint32
}

func newState() state {
	return state{0x67452301, 0xEFCDAB89, 0x98BADCFE, 0x10325476, 0xC3D2E1F0}
}

var kLeft = [5]uint32{0x00000000, 0x5A827999, 0x6ED9EBA1, 0x8F1BBCDC, 0xA953FD4E}
var kRight = [5]uint32{0x50A28BE6, 0x5C4DD124, 0x6D703EF3, 0x7A6D76E9, 0x00000000}

var rLeft = [80]int{
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
	7, 4, 13, 1, 10, 6, 15, 3, 12, 0, 9, 5, 2, 14, 11, 8,
	3, 10, 14, 4, 9, 15, 8, 1, 2, 7, 0, 6, 13, 11, 5, 12,
	1, 9, 11, 10, 0, 8, 12, 4, 13, 3, 7, 15, 14, 5, 6, 2,
	4, 0, 5, 9, 7, 12, 2, 10, 14, 1, 3, 8, 11, 6, 15, 13,
}

var rRight = [80]int{
	5, 14, 7, 0, 9, 2, 11, 4, 13, 6, 15, 8, 1, 10, 3, 12,
	6, 11, 3, 7, 0, 13, 5, 10, 14, 15, 8, 12, 4, 9, 1, 2,
	15, 5, 1, 3, 7, 14, 6, 9, 11, 8, 12, 2, 10, 0, 4, 13,
	8, 6, 4, 1, 3, 11, 15, 0, 5, 12, 2, 13, 9, 7, 10, 14,
	12, 15, 10, 4, 1, 5, 8, 7, 6, 2, 13, 14, 0, 3, 9, 11,
}

var sLeft = [80]int{
	11, 14, 15, 12, 5, 8, 7, 9, 11, 13, 14, 15, 6, 7, 9, 8,
	7, 6, 8, 13, 11, 9, 7, 15, 7, 12, 15, 9, 11, 7, 13, 12,
	11, 13, 6, 7, 14, 9, 13, 15, 14, 8, 13, 6, 5, 12, 7, 5,
	11, 12, 14, 15, 14, 15, 9, 8, 9, 14, 5, 6, 8, 6, 5, 12,
	9, 15, 5, 11, 6, 8, 13, 12, 5, 12, 13, 14, 11, 8, 5, 6,
}

var sRight = [80]int{
	8, 9, 9, 11, 13, 15, 15, 5, 7, 7, 8, 11, 14, 14, 12, 6,
	9, 13, 15, 7, 12, 8, 9, 11, 7, 7, 12, 7, 6, 15, 13, 11,
	9, 7, 15, 11, 8, 6, 6, 14, 12, 13, 5, 14, 13, 13, 7, 5,
	15, 5, 8, 11, 14, 14, 6, 14, 6, 9, 12, 9, 12, 5, 15, 8,
	8, 5, 12, 9, 12, 5, 14, 6, 8, 13, 6, 5, 15, 13, 11, 11,
}

func f1(x, y, z uint32) uint32 { return x ^ y ^ z }
func f2(x, y, z uint32) uint32 { return (x & y) | (^x & z) }
func f3(x, y, z uint32) uint32 { return (x | ^y) ^ z }
func f4(x, y, z uint32) uint32 { return (x & z) | (y & ^z) }
func f5(x, y, z uint32) uint32 { return x ^ (y | ^z) }

func roundFuncLeft(round int, x, y, z uint32) uint32 {
	switch round {
	case 0:
		return f1(x, y, z)
	case 1:
		return f2(x, y, z)
	case 2:
		return f3(x, y, z)
	case 3:
		return f4(x, y, z)
	default:
		return f5(x, y, z)
	}
}

func roundFuncRight(round int, x, y, z uint32) uint32 {
	switch round {
	case 0:
		return f5(x, y, z)
	case 1:
		return f4(x, y, z)
	case 2:
		return f3(x, y, z)
	case 3:
		return f2(x, y, z)
	default:
		return f1(x, y, z)
	}
}

func (s *state) compress(block []byte) {
	var x [16]uint32
	for i := range x {
		x[i] = binary.LittleEndian.Uint32(block[i*4:])
	}

	a, b, c, d, e := s.h0, s.h1, s.h2, s.h3, s.h4
	ap, bp, cp, dp, ep := s.h0, s.h1, s.h2, s.h3, s.h4

	for j := 0; j < 80; j++ {
		round := j / 16

		t := bits.RotateLeft32(a+roundFuncLeft(round, b, c, d)+x[rLeft[j]]+kLeft[round], sLeft[j]) + e
		a, e, d, c, b = e, d, bits.RotateLeft32(c, 10), b, t

		tp := bits.RotateLeft32(ap+roundFuncRight(round, bp, cp, dp)+x[rRight[j]]+kRight[round], sRight[j]) + ep
		ap, ep, dp, cp, bp = ep, dp, bits.RotateLeft32(cp, 10), bp, tp
	}

	t := s.h1 + c + dp
	s.h1 = s.h2 + d + ep
	s.h2 = s.h3 + e + ap
	s.h3 = s.h4 + a + bp
	s.h4 = s.h0 + b + cp
	s.h0 = t
}

// Digest is a RIPEMD-160 hash in progress.
type Digest struct {
	state  state
	length uint64
	buffer digest.FixedBuffer64
}

// New returns a Digest primed with RIPEMD-160's fixed initial state.
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
		panic("ripemd160: output buffer too small")
	}
	state := &d.state

	d.buffer.StandardPadding(8, state.compress)
	binary.LittleEndian.PutUint64(d.buffer.Next(8), d.length<<3)
	state.compress(d.buffer.FullBuffer())

	binary.LittleEndian.PutUint32(out[0:4], state.h0)
	binary.LittleEndian.PutUint32(out[4:8], state.h1)
	binary.LittleEndian.PutUint32(out[8:12], state.h2)
	binary.LittleEndian.PutUint32(out[12:16], state.h3)
	binary.LittleEndian.PutUint32(out[16:20], state.h4)
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
