// Package blowfish implements the Blowfish block cipher, used here as
// the core of bcrypt's EksBlowfishSetup rather than as a general-purpose
// cipher: the exported schedule hooks (ExpandKey, ExpandKeyWithSalt) let
// a caller drive the repeated key/salt expansion bcrypt's setup loop
// requires instead of a single one-shot key schedule.
package blowfish

import "encoding/binary"

const BlockSize = 8

// Cipher is a Blowfish state: an 18-word P-array and four 256-word
// S-boxes, initialized from the digits of pi and then mixed with a key
// (and optionally a salt) via repeated self-encryption.
type Cipher struct {
	p [18]uint32
	s [4][256]uint32
}

// New builds a Cipher whose P-array and S-boxes are the standard
// pi-derived constants, with no key mixed in yet.
func New() *Cipher {
	c := &Cipher{p: initP, s: initS}
	return c
}

// NewCipher builds a standard Blowfish cipher: the pi-derived state
// expanded once against key.
func NewCipher(key []byte) (*Cipher, error) {
	if len(key) == 0 {
		return nil, errShortKey
	}
	c := New()
	c.ExpandKey(key)
	return c, nil
}

var errShortKey = blowfishError("blowfish: key must be at least 1 byte")

type blowfishError string

func (e blowfishError) Error() string { return string(e) }

// keyWord returns the i-th 32-bit big-endian word of key, treating key
// as an infinite cyclic byte stream.
func keyWord(key []byte, i int) uint32 {
	var word uint32
	for j := 0; j < 4; j++ {
		word = word<<8 | uint32(key[(i*4+j)%len(key)])
	}
	return word
}

// ExpandKey XORs key cyclically into the P-array, then re-derives the
// entire P-array and S-boxes by repeatedly self-encrypting the running
// state. This is the standard Blowfish key schedule.
func (c *Cipher) ExpandKey(key []byte) {
	for i := range c.p {
		c.p[i] ^= keyWord(key, i)
	}
	c.mix(nil)
}

// ExpandKeyWithSalt is ExpandKey with a 128-bit salt additionally XORed,
// cyclically, into each 64-bit block before it is encrypted. This is
// bcrypt's EksBlowfishSetup "ExpandKey" step: it both folds in the
// password (via the P-array XOR, same as ExpandKey) and perturbs every
// block of the schedule with the salt.
func (c *Cipher) ExpandKeyWithSalt(salt, key []byte) {
	for i := range c.p {
		c.p[i] ^= keyWord(key, i)
	}
	c.mix(salt)
}

// mix re-derives the P-array and S-boxes by repeatedly encrypting the
// running (l, r) state, optionally XORing in two cyclically-advancing
// salt words before each encryption.
func (c *Cipher) mix(salt []byte) {
	var l, r uint32
	saltIdx := 0
	next := func() {
		if salt != nil {
			l ^= saltWord(salt, saltIdx)
			r ^= saltWord(salt, saltIdx+1)
			saltIdx = (saltIdx + 2) % (len(salt) / 4)
		}
		l, r = c.Encrypt(l, r)
	}

	for i := 0; i < 18; i += 2 {
		next()
		c.p[i], c.p[i+1] = l, r
	}
	for box := 0; box < 4; box++ {
		for i := 0; i < 256; i += 2 {
			next()
			c.s[box][i], c.s[box][i+1] = l, r
		}
	}
}

func saltWord(salt []byte, wordIdx int) uint32 {
	return binary.BigEndian.Uint32(salt[(wordIdx%(len(salt)/4))*4:])
}

func (c *Cipher) f(x uint32) uint32 {
	a := c.s[0][byte(x>>24)]
	b := c.s[1][byte(x>>16)]
	cc := c.s[2][byte(x>>8)]
	d := c.s[3][byte(x)]
	return (a+b)^cc + d
}

// Encrypt runs the full 16-round Feistel network plus the P16/P17
// output whitening on one 64-bit block (l, r).
func (c *Cipher) Encrypt(l, r uint32) (uint32, uint32) {
	for i := 0; i < 16; i++ {
		l ^= c.p[i]
		r ^= c.f(l)
		l, r = r, l
	}
	l, r = r, l
	r ^= c.p[16]
	l ^= c.p[17]
	return l, r
}

// Decrypt inverts Encrypt.
func (c *Cipher) Decrypt(l, r uint32) (uint32, uint32) {
	for i := 17; i > 1; i-- {
		l ^= c.p[i]
		r ^= c.f(l)
		l, r = r, l
	}
	l, r = r, l
	r ^= c.p[1]
	l ^= c.p[0]
	return l, r
}

// EncryptBlock encrypts one 8-byte block in place.
func (c *Cipher) EncryptBlock(dst, src []byte) {
	l := binary.BigEndian.Uint32(src[0:4])
	r := binary.BigEndian.Uint32(src[4:8])
	l, r = c.Encrypt(l, r)
	binary.BigEndian.PutUint32(dst[0:4], l)
	binary.BigEndian.PutUint32(dst[4:8], r)
}

// DecryptBlock decrypts one 8-byte block in place.
func (c *Cipher) DecryptBlock(dst, src []byte) {
	l := binary.BigEndian.Uint32(src[0:4])
	r := binary.BigEndian.Uint32(src[4:8])
	l, r = c.Decrypt(l, r)
	binary.BigEndian.PutUint32(dst[0:4], l)
	binary.BigEndian.PutUint32(dst[4:8], r)
}
