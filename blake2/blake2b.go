// Package blake2 implements the BLAKE2 family of hash functions (RFC 7693):
// BLAKE2b, optimized for 64-bit platforms with digests up to 64 bytes, and
// BLAKE2s, optimized for 8- to 32-bit platforms with digests up to 32 bytes.
//
// Both variants share one shape: a counter-driven last-block flag takes the
// place of Merkle-Damgard byte padding, and the same sigma permutation table
// drives the mixing schedule at every word width.
package blake2

import (
	"encoding/binary"
	"errors"
	"math/bits"

	"github.com/libOctavo/octavo/digest"
)

// sigma is the message-word permutation schedule shared by every BLAKE2
// variant; only the round count that indexes into it differs (10 for
// BLAKE2s, 12 for BLAKE2b).
var sigma = [12][16]int{
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
	{14, 10, 4, 8, 9, 15, 13, 6, 1, 12, 0, 2, 11, 7, 5, 3},
	{11, 8, 12, 0, 5, 2, 15, 13, 10, 14, 3, 6, 7, 1, 9, 4},
	{7, 9, 3, 1, 13, 12, 11, 14, 2, 6, 5, 10, 4, 0, 15, 8},
	{9, 0, 5, 7, 2, 4, 10, 15, 14, 1, 11, 12, 6, 8, 3, 13},
	{2, 12, 6, 10, 0, 11, 8, 3, 4, 13, 7, 5, 15, 14, 1, 9},
	{12, 5, 1, 15, 14, 13, 4, 10, 0, 7, 6, 3, 9, 2, 8, 11},
	{13, 11, 7, 14, 12, 1, 3, 9, 5, 0, 15, 4, 8, 6, 2, 10},
	{6, 15, 14, 9, 11, 3, 0, 8, 12, 2, 13, 7, 1, 4, 10, 5},
	{10, 2, 8, 4, 7, 6, 1, 5, 15, 11, 9, 14, 3, 12, 13, 0},
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
	{14, 10, 4, 8, 9, 15, 13, 6, 1, 12, 0, 2, 11, 7, 5, 3},
}

const (
	ivB0 uint64 = 0x6a09e667f3bcc908
	ivB1 uint64 = 0xbb67ae8584caa73b
	ivB2 uint64 = 0x3c6ef372fe94f82b
	ivB3 uint64 = 0xa54ff53a5f1d36f1
	ivB4 uint64 = 0x510e527fade682d1
	ivB5 uint64 = 0x9b05688c2b3e6c1f
	ivB6 uint64 = 0x1f83d9abfb41bd6b
	ivB7 uint64 = 0x5be0cd19137e2179
)

var ivB = [8]uint64{ivB0, ivB1, ivB2, ivB3, ivB4, ivB5, ivB6, ivB7}

const (
	blockSizeB = 128
	maxKeyB    = 64
	maxOutB    = 64
	rounds2b   = 12
)

func gB(a, b, c, d, x, y uint64) (uint64, uint64, uint64, uint64) {
	a += b + x
	d = bits.RotateLeft64(d^a, -32)
	c += d
	b = bits.RotateLeft64(b^c, -24)
	a += b + y
	d = bits.RotateLeft64(d^a, -16)
	c += d
	b = bits.RotateLeft64(b^c, -63)
	return a, b, c, d
}

// Digest2b is a BLAKE2b hash in progress.
type Digest2b struct {
	h      [8]uint64
	t0, t1 uint64
	buf    [blockSizeB]byte
	offset int
	size   int
}

// New2b constructs a BLAKE2b digest of outputBytes (1-64), optionally keyed.
// key, salt, and personalization may be nil.
func New2b(key, salt, personalization []byte, outputBytes int) (*Digest2b, error) {
	if outputBytes <= 0 || outputBytes > maxOutB {
		return nil, errors.New("blake2: invalid blake2b output size")
	}
	if len(key) > maxKeyB {
		return nil, errors.New("blake2: blake2b key too large")
	}
	if len(salt) > 16 {
		return nil, errors.New("blake2: blake2b salt too large")
	}
	if len(personalization) > 16 {
		return nil, errors.New("blake2: blake2b personalization too large")
	}

	d := &Digest2b{h: ivB, size: outputBytes}
	d.h[0] ^= 0x01010000 ^ uint64(len(key))<<8 ^ uint64(outputBytes)

	if len(salt) > 0 {
		var s [16]byte
		copy(s[:], salt)
		d.h[4] ^= binary.LittleEndian.Uint64(s[0:8])
		d.h[5] ^= binary.LittleEndian.Uint64(s[8:16])
	}
	if len(personalization) > 0 {
		var p [16]byte
		copy(p[:], personalization)
		d.h[6] ^= binary.LittleEndian.Uint64(p[0:8])
		d.h[7] ^= binary.LittleEndian.Uint64(p[8:16])
	}

	if len(key) > 0 {
		var block [blockSizeB]byte
		copy(block[:], key)
		d.Update(block[:])
	}

	return d, nil
}

func (d *Digest2b) compress(block []byte, last bool) {
	var m [16]uint64
	for i := range m {
		m[i] = binary.LittleEndian.Uint64(block[i*8:])
	}

	v := [16]uint64{
		d.h[0], d.h[1], d.h[2], d.h[3], d.h[4], d.h[5], d.h[6], d.h[7],
		ivB0, ivB1, ivB2, ivB3, ivB4 ^ d.t0, ivB5 ^ d.t1, ivB6, ivB7,
	}
	if last {
		v[14] = ^v[14]
	}

	for r := 0; r < rounds2b; r++ {
		s := &sigma[r]
		v[0], v[4], v[8], v[12] = gB(v[0], v[4], v[8], v[12], m[s[0]], m[s[1]])
		v[1], v[5], v[9], v[13] = gB(v[1], v[5], v[9], v[13], m[s[2]], m[s[3]])
		v[2], v[6], v[10], v[14] = gB(v[2], v[6], v[10], v[14], m[s[4]], m[s[5]])
		v[3], v[7], v[11], v[15] = gB(v[3], v[7], v[11], v[15], m[s[6]], m[s[7]])
		v[0], v[5], v[10], v[15] = gB(v[0], v[5], v[10], v[15], m[s[8]], m[s[9]])
		v[1], v[6], v[11], v[12] = gB(v[1], v[6], v[11], v[12], m[s[10]], m[s[11]])
		v[2], v[7], v[8], v[13] = gB(v[2], v[7], v[8], v[13], m[s[12]], m[s[13]])
		v[3], v[4], v[9], v[14] = gB(v[3], v[4], v[9], v[14], m[s[14]], m[s[15]])
	}

	for i := 0; i < 8; i++ {
		d.h[i] ^= v[i] ^ v[i+8]
	}
}

// Update feeds more data into the running hash.
func (d *Digest2b) Update(p []byte) {
	for len(p) > 0 {
		free := blockSizeB - d.offset
		if len(p) <= free {
			d.offset += copy(d.buf[d.offset:], p)
			return
		}
		copy(d.buf[d.offset:], p[:free])
		p = p[free:]

		d.t0 += blockSizeB
		if d.t0 < blockSizeB {
			d.t1++
		}
		d.compress(d.buf[:], false)
		d.offset = 0
	}
}

// Result writes the digest into out and consumes the receiver.
func (d *Digest2b) Result(out []byte) {
	if len(out) < d.size {
		panic("blake2: output buffer too small")
	}

	for i := d.offset; i < blockSizeB; i++ {
		d.buf[i] = 0
	}

	d.t0 += uint64(d.offset)
	if d.t0 < uint64(d.offset) {
		d.t1++
	}
	d.compress(d.buf[:], true)

	for i := 0; i < d.size; i++ {
		out[i] = byte(d.h[i/8] >> (8 * uint(i%8)))
	}
}

func (d *Digest2b) OutputBits() int  { return d.size * 8 }
func (d *Digest2b) OutputBytes() int { return d.size }
func (d *Digest2b) BlockSize() int   { return blockSizeB }

// Clone returns an independent copy of the current state.
func (d *Digest2b) Clone() digest.Digest {
	c := *d
	return &c
}

// Write implements io.Writer / hash.Hash.
func (d *Digest2b) Write(p []byte) (int, error) {
	d.Update(p)
	return len(p), nil
}

// Sum appends the current digest to b without consuming the receiver.
func (d *Digest2b) Sum(b []byte) []byte {
	clone := *d
	out := make([]byte, d.size)
	clone.Result(out)
	return append(b, out...)
}

// Reset is unsupported: BLAKE2's keyed parameterization can't be
// reconstructed from the running state alone.
func (d *Digest2b) Reset() {
	panic("blake2: BLAKE2b cannot be reset without its original key and parameters")
}

func (d *Digest2b) Size() int { return d.size }
