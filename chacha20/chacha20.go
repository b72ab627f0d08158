// Package chacha20 implements the ChaCha20 stream cipher (RFC 7539): a
// 256-bit key, 96-bit nonce, 32-bit block counter.
package chacha20

import (
	"encoding/binary"
	"errors"
	"math/bits"
)

const (
	KeySize   = 32
	NonceSize = 12
	BlockSize = 64

	stateWords = 16
	rounds     = 20
)

func quarterRound(x *[stateWords]uint32, a, b, c, d int) {
	x[a] += x[b]
	x[d] ^= x[a]
	x[d] = bits.RotateLeft32(x[d], 16)

	x[c] += x[d]
	x[b] ^= x[c]
	x[b] = bits.RotateLeft32(x[b], 12)

	x[a] += x[b]
	x[d] ^= x[a]
	x[d] = bits.RotateLeft32(x[d], 8)

	x[c] += x[d]
	x[b] ^= x[c]
	x[b] = bits.RotateLeft32(x[b], 7)
}

func doubleRound(x *[stateWords]uint32) {
	quarterRound(x, 0, 4, 8, 12)
	quarterRound(x, 1, 5, 9, 13)
	quarterRound(x, 2, 6, 10, 14)
	quarterRound(x, 3, 7, 11, 15)

	quarterRound(x, 0, 5, 10, 15)
	quarterRound(x, 1, 6, 11, 12)
	quarterRound(x, 2, 7, 8, 13)
	quarterRound(x, 3, 4, 9, 14)
}

// Cipher is a ChaCha20 keystream generator primed with a key, nonce, and
// initial block counter. It implements crypto/cipher.Stream via
// XORKeyStream.
type Cipher struct {
	state  [stateWords]uint32
	stream [BlockSize]byte
	index  int
}

// New builds a Cipher from a 32-byte key, a 12-byte nonce, and an
// initial block counter (almost always 0 or 1; RFC 7539 reserves
// counter value 0 for the Poly1305 key in ChaCha20-Poly1305, which this
// package does not implement).
func New(key, nonce []byte, counter uint32) (*Cipher, error) {
	if len(key) != KeySize {
		return nil, errors.New("chacha20: key must be 32 bytes")
	}
	if len(nonce) != NonceSize {
		return nil, errors.New("chacha20: nonce must be 12 bytes")
	}

	c := &Cipher{index: BlockSize}
	c.state[0] = 0x61707865
	c.state[1] = 0x3320646e
	c.state[2] = 0x79622d32
	c.state[3] = 0x6b206574
	for i := 0; i < 8; i++ {
		c.state[4+i] = binary.LittleEndian.Uint32(key[4*i:])
	}
	c.state[12] = counter
	for i := 0; i < 3; i++ {
		c.state[13+i] = binary.LittleEndian.Uint32(nonce[4*i:])
	}
	return c, nil
}

// block runs the 20-round permutation over the current state, feed-
// forward adds it back into the original state, serialises the result
// into the keystream buffer, and increments the block counter.
func (c *Cipher) block() {
	x := c.state
	for i := 0; i < rounds/2; i++ {
		doubleRound(&x)
	}
	for i := 0; i < stateWords; i++ {
		binary.LittleEndian.PutUint32(c.stream[4*i:], x[i]+c.state[i])
	}
	c.state[12]++
	c.index = 0
}

// XORKeyStream XORs src with the ChaCha20 keystream into dst, which may
// be the same slice as src. A stored cursor into the last-generated
// 64-byte block lets calls of any size pick up mid-block: the tail of
// the current block drains first, then full blocks are generated and
// consumed directly, then a final partial block is buffered for the
// next call.
func (c *Cipher) XORKeyStream(dst, src []byte) {
	if len(dst) < len(src) {
		panic("chacha20: dst shorter than src")
	}

	for len(src) > 0 {
		if c.index == BlockSize {
			c.block()
		}

		n := copy(dst, src[:min(len(src), BlockSize-c.index)])
		for i := 0; i < n; i++ {
			dst[i] = src[i] ^ c.stream[c.index+i]
		}
		c.index += n
		dst = dst[n:]
		src = src[n:]
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
