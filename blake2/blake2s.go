package blake2

import (
	"encoding/binary"
	"errors"
	"math/bits"

	"github.com/libOctavo/octavo/digest"
)

const (
	ivS0 uint32 = 0x6a09e667
	ivS1 uint32 = 0xbb67ae85
	ivS2 uint32 = 0x3c6ef372
	ivS3 uint32 = 0xa54ff53a
	ivS4 uint32 = 0x510e527f
	ivS5 uint32 = 0x9b05688c
	ivS6 uint32 = 0x1f83d9ab
	ivS7 uint32 = 0x5be0cd19
)

var ivS = [8]uint32{ivS0, ivS1, ivS2, ivS3, ivS4, ivS5, ivS6, ivS7}

const (
	blockSizeS = 64
	maxKeyS    = 32
	maxOutS    = 32
	rounds2s   = 10
)

func gS(a, b, c, d, x, y uint32) (uint32, uint32, uint32, uint32) {
	a += b + x
	d = bits.RotateLeft32(d^a, -16)
	c += d
	b = bits.RotateLeft32(b^c, -12)
	a += b + y
	d = bits.RotateLeft32(d^a, -8)
	c += d
	b = bits.RotateLeft32(b^c, -7)
	return a, b, c, d
}

// Digest2s is a BLAKE2s hash in progress.
type Digest2s struct {
	h      [8]uint32
	t0, t1 uint32
	f0     uint32
	buf    [blockSizeS]byte
	offset int
	size   int
}

// New2s constructs a BLAKE2s digest of outputBytes (1-32), optionally keyed.
func New2s(key, salt, personalization []byte, outputBytes int) (*Digest2s, error) {
	if outputBytes <= 0 || outputBytes > maxOutS {
		return nil, errors.New("blake2: invalid blake2s output size")
	}
	if len(key) > maxKeyS {
		return nil, errors.New("blake2: blake2s key too large")
	}
	if len(salt) > 8 {
		return nil, errors.New("blake2: blake2s salt too large")
	}
	if len(personalization) > 8 {
		return nil, errors.New("blake2: blake2s personalization too large")
	}

	d := &Digest2s{h: ivS, size: outputBytes}
	d.h[0] ^= 0x01010000 ^ uint32(len(key))<<8 ^ uint32(outputBytes)

	if len(salt) > 0 {
		var s [8]byte
		copy(s[:], salt)
		d.h[4] ^= binary.LittleEndian.Uint32(s[0:4])
		d.h[5] ^= binary.LittleEndian.Uint32(s[4:8])
	}
	if len(personalization) > 0 {
		var p [8]byte
		copy(p[:], personalization)
		d.h[6] ^= binary.LittleEndian.Uint32(p[0:4])
		d.h[7] ^= binary.LittleEndian.Uint32(p[4:8])
	}

	if len(key) > 0 {
		var block [blockSizeS]byte
		copy(block[:], key)
		d.Update(block[:])
	}

	return d, nil
}

func (d *Digest2s) compress(block []byte, last bool) {
	var m [16]uint32
	for i := range m {
		m[i] = binary.LittleEndian.Uint32(block[i*4:])
	}

	v := [16]uint32{
		d.h[0], d.h[1], d.h[2], d.h[3], d.h[4], d.h[5], d.h[6], d.h[7],
		ivS0, ivS1, ivS2, ivS3, ivS4 ^ d.t0, ivS5 ^ d.t1, ivS6, ivS7,
	}
	if last {
		v[14] = ^v[14]
	}

	for r := 0; r < rounds2s; r++ {
		s := &sigma[r]
		v[0], v[4], v[8], v[12] = gS(v[0], v[4], v[8], v[12], m[s[0]], m[s[1]])
		v[1], v[5], v[9], v[13] = gS(v[1], v[5], v[9], v[13], m[s[2]], m[s[3]])
		v[2], v[6], v[10], v[14] = gS(v[2], v[6], v[10], v[14], m[s[4]], m[s[5]])
		v[3], v[7], v[11], v[15] = gS(v[3], v[7], v[11], v[15], m[s[6]], m[s[7]])
		v[0], v[5], v[10], v[15] = gS(v[0], v[5], v[10], v[15], m[s[8]], m[s[9]])
		v[1], v[6], v[11], v[12] = gS(v[1], v[6], v[11], v[12], m[s[10]], m[s[11]])
		v[2], v[7], v[8], v[13] = gS(v[2], v[7], v[8], v[13], m[s[12]], m[s[13]])
		v[3], v[4], v[9], v[14] = gS(v[3], v[4], v[9], v[14], m[s[14]], m[s[15]])
	}

	for i := 0; i < 8; i++ {
		d.h[i] ^= v[i] ^ v[i+8]
	}
}

// Update feeds more data into the running hash.
func (d *Digest2s) Update(p []byte) {
	for len(p) > 0 {
		free := blockSizeS - d.offset
		if len(p) <= free {
			d.offset += copy(d.buf[d.offset:], p)
			return
		}
		copy(d.buf[d.offset:], p[:free])
		p = p[free:]

		d.t0 += blockSizeS
		if d.t0 < blockSizeS {
			d.t1++
		}
		d.compress(d.buf[:], false)
		d.offset = 0
	}
}

// Result writes the digest into out and consumes the receiver.
func (d *Digest2s) Result(out []byte) {
	if len(out) < d.size {
		panic("blake2: output buffer too small")
	}

	for i := d.offset; i < blockSizeS; i++ {
		d.buf[i] = 0
	}

	d.t0 += uint32(d.offset)
	if d.t0 < uint32(d.offset) {
		d.t1++
	}
	d.compress(d.buf[:], true)

	for i := 0; i < d.size; i++ {
		out[i] = byte(d.h[i/4] >> (8 * uint(i%4)))
	}
}

func (d *Digest2s) OutputBits() int  { return d.size * 8 }
func (d *Digest2s) OutputBytes() int { return d.size }
func (d *Digest2s) BlockSize() int   { return blockSizeS }

// Clone returns an independent copy of the current state.
func (d *Digest2s) Clone() digest.Digest {
	c := *d
	return &c
}

// Write implements io.Writer / hash.Hash.
func (d *Digest2s) Write(p []byte) (int, error) {
	d.Update(p)
	return len(p), nil
}

// Sum appends the current digest to b without consuming the receiver.
func (d *Digest2s) Sum(b []byte) []byte {
	clone := *d
	out := make([]byte, d.size)
	clone.Result(out)
	return append(b, out...)
}

// Reset is unsupported: BLAKE2's keyed parameterization can't be
// reconstructed from the running state alone.
func (d *Digest2s) Reset() {
	panic("blake2: BLAKE2s cannot be reset without its original key and parameters")
}

func (d *Digest2s) Size() int { return d.size }
