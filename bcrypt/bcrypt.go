// Package bcrypt implements the bcrypt password hashing scheme (Provos
// and Mazières, "A Future-Adaptable Password Hashing Method"), built on
// the EksBlowfishSetup key schedule and the "OrpheanBeholderScryDoubt"
// 64-round block encryption.
package bcrypt

import (
	"encoding/binary"
	"errors"

	"github.com/libOctavo/octavo/internal/blowfish"
)

const (
	// MinCost and MaxCost bound the cost parameter; 2^cost is the
	// number of key-schedule iterations run during setup.
	MinCost = 4
	MaxCost = 31

	saltSize   = 16
	outputSize = 24
)

var errCost = errors.New("bcrypt: cost must be between MinCost and MaxCost")

// magicCipherText is "OrpheanBeholderScryDoubt" read as six big-endian
// 32-bit words; bcrypt encrypts this fixed string 64 times under the
// password-and-salt-derived Blowfish schedule.
var magicCipherText = [6]uint32{
	0x4f727068, 0x65616e42, 0x65686f6c, 0x64657253, 0x63727944, 0x6f756274,
}

// setup builds the Blowfish state EksBlowfishSetup(cost, salt, key)
// specifies: one salted expansion of key and salt, then 2^cost rounds
// alternately re-expanding against key and against salt.
func setup(cost uint, salt, key []byte) *blowfish.Cipher {
	c := blowfish.New()
	c.ExpandKeyWithSalt(salt, key)

	iterations := uint64(1) << cost
	for i := uint64(0); i < iterations; i++ {
		c.ExpandKey(key)
		c.ExpandKey(salt)
	}
	return c
}

// Hash computes the raw 24-byte bcrypt digest of key under salt at the
// given cost. salt must be exactly 16 bytes and key must be 1-72 bytes,
// matching bcrypt's fixed input sizes.
func Hash(cost uint, salt, key []byte) ([]byte, error) {
	if cost < MinCost || cost > MaxCost {
		return nil, errCost
	}
	if len(salt) != saltSize {
		return nil, errors.New("bcrypt: salt must be 16 bytes")
	}
	if len(key) == 0 || len(key) > 72 {
		return nil, errors.New("bcrypt: key must be 1-72 bytes")
	}

	state := setup(cost, salt, key)

	ctext := magicCipherText
	for i := 0; i < len(ctext); i += 2 {
		for round := 0; round < 64; round++ {
			ctext[i], ctext[i+1] = state.Encrypt(ctext[i], ctext[i+1])
		}
	}

	out := make([]byte, outputSize)
	for i, word := range ctext {
		binary.BigEndian.PutUint32(out[i*4:], word)
	}
	return out, nil
}
