// Package md5 implements the MD5 message digest (RFC 1321).
//
// MD5 is severely compromised against collision attacks; use it only for
// compatibility with legacy formats, never for new security-sensitive work.
package md5

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
func g(x, y, z uint32) uint32 { return (x & z) | (y & ^z) }
func h(x, y, z uint32) uint32 { return x ^ y ^ z }
func i(x, y, z uint32) uint32 { return y ^ (x | ^z) }

var roundConsts = [4][16]uint32{
	{
		0xd76aa478, 0xe8c7b756, 0x242070db, 0xc1bdceee,
		0xf57c0faf, 0x4787c62a, 0xa8304613, 0xfd469501,
		0x698098d8, 0x8b44f7af, 0xffff5bb1, 0x895cd7be,
		0x6b901122, 0xfd987193, 0xa679438e, 0x49b40821,
	},
	{
		0xf61e2562, 0xc040b340, 0x265e5a51, 0xe9b6c7aa,
		0xd62f105d, 0x02441453, 0xd8a1e681, 0xe7d3fbc8,
		0x21e1cde6, 0xc33707d6, 0xf4d50d87, 0x455a14ed,
		0xa9e3e905, 0xfcefa3f8, 0x676f02d9, 0x8d2a4c8a,
	},
	{
		0xfffa3942, 0x8771f681, 0x6d9d6122, 0xfde5380c,
		0xa4beea44, 0x4bdecfa9, 0xf6bb4b60, 0xbebfbc70,
		0x289b7ec6, 0xeaa127fa, 0xd4ef3085, 0x04881d05,
		0xd9d4d039, 0xe6db99e5, 0x1fa27cf8, 0xc4ac5665,
	},
	{
		0xf4292244, 0x432aff97, 0xab9423a7, 0xfc93a039,
		0x655b59c3, 0x8f0ccc92, 0xffeff47d, 0x85845dd1,
		0x6fa87e4f, 0xfe2ce6e0, 0xa3014314, 0x4e0811a1,
		0xf7537e82, 0xbd3af235, 0x2ad7d2bb, 0xeb86d391,
	},
}

func process(w, x, y, z, m, s uint32, fn func(uint32, uint32, uint32) uint32) uint32 {
	return bits.RotateLeft32(w+fn(x, y, z)+m, int(s)) + x
}

func (s *state) compress(block []byte) {
	a, b, c, d := s.a, s.b, s.c, s.d

	var m [16]uint32
	for i := range m {
		m[i] = binary.LittleEndian.Uint32(block[i*4:])
	}

	shiftsF := [4]uint32{7, 12, 17, 22}
	shiftsG := [4]uint32{5, 9, 14, 20}
	shiftsH := [4]uint32{4, 11, 16, 23}
	shiftsI := [4]uint32{6, 10, 15, 21}

	for i := 0; i < 16; i++ {
		a = process(a, b, c, d, m[i]+roundConsts[0][i], shiftsF[i%4], f)
		a, b, c, d = d, a, b, c
	}
	idxG := [16]int{1, 6, 11, 0, 5, 10, 15, 4, 9, 14, 3, 8, 13, 2, 7, 12}
	for i := 0; i < 16; i++ {
		a = process(a, b, c, d, m[idxG[i]]+roundConsts[1][i], shiftsG[i%4], g)
		a, b, c, d = d, a, b, c
	}
	idxH := [16]int{5, 8, 11, 14, 1, 4, 7, 10, 13, 0, 3, 6, 9, 12, 15, 2}
	for i := 0; i < 16; i++ {
		a = process(a, b, c, d, m[idxH[i]]+roundConsts[2][i], shiftsH[i%4], h)
		a, b, c, d = d, a, b, c
	}
	idxI := [16]int{0, 7, 14, 5, 12, 3, 10, 1, 8, 15, 6, 13, 4, 11, 2, 9}
	for j := 0; j < 16; j++ {
		a = process(a, b, c, d, m[idxI[j]]+roundConsts[3][j], shiftsI[j%4], i)
		a, b, c, d = d, a, b, c
	}

	s.a += a
	s.b += b
	s.c += c
	s.d += d
}

// Digest is an MD5 hash in progress.
type Digest struct {
	state  state
	length uint64
	buffer digest.FixedBuffer64
}

// New returns a Digest primed with MD5's fixed initial state.
func New() *Digest {
	return &Digest{state: newState()}
}

// Update feeds more data into the running hash.
func (d *Digest) Update(p []byte) {
	d.length += uint64(len(p))
	state := &d.state
	d.buffer.Input(p, state.compress)
}

// Result writes the 16-byte digest into out and consumes the receiver.
func (d *Digest) Result(out []byte) {
	if len(out) < outputBytes {
		panic("md5: output buffer too small")
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

// Clone returns an independent copy of the current state.
func (d *Digest) Clone() digest.Digest {
	c := *d
	return &c
}

// Write implements io.Writer / hash.Hash.
func (d *Digest) Write(p []byte) (int, error) {
	d.Update(p)
	return len(p), nil
}

// Sum appends the current digest to b without consuming the receiver.
func (d *Digest) Sum(b []byte) []byte {
	clone := *d
	out := make([]byte, outputBytes)
	clone.Result(out)
	return append(b, out...)
}

// Reset restores the initial MD5 state.
func (d *Digest) Reset() {
	d.state = newState()
	d.length = 0
	d.buffer = digest.FixedBuffer64{}
}

func (d *Digest) Size() int { return outputBytes }
