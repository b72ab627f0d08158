// Package dh implements Diffie-Hellman key exchange over a shared prime
// modulus and generator, including the RFC 2409 well-known Oakley groups.
package dh

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/libOctavo/octavo/bignum"
)

var one = big.NewInt(1)

// Parameters is a (modulus, generator) pair shared by every party in an
// exchange.
type Parameters struct {
	P *big.Int
	G *big.Int
}

// NewParameters builds Parameters from a prime modulus and a generator.
func NewParameters(p, g *big.Int) *Parameters {
	return &Parameters{P: new(big.Int).Set(p), G: new(big.Int).Set(g)}
}

// PrivateKey is a random exponent drawn against a fixed set of
// Parameters.
type PrivateKey struct {
	params *Parameters
	x      *big.Int
}

// PrivateKey draws a fresh random private exponent x in [2, p-2]
// against params.
func (params *Parameters) PrivateKey(rnd io.Reader) (*PrivateKey, error) {
	pMinus2 := new(big.Int).Sub(params.P, big.NewInt(2))
	span := new(big.Int).Sub(pMinus2, one)
	x, err := rand.Int(rnd, span)
	if err != nil {
		return nil, err
	}
	x.Add(x, big.NewInt(2))
	return &PrivateKey{params: params, x: x}, nil
}

// PublicKey is a party's exchange value g^x mod p.
type PublicKey struct {
	params *Parameters
	Y      *big.Int
}

// PublicKey computes priv's public exchange value, g^x mod p.
func (priv *PrivateKey) PublicKey() *PublicKey {
	y := bignum.PowMod(priv.params.G, priv.x, priv.params.P)
	return &PublicKey{params: priv.params, Y: y}
}

// Exchange computes the shared secret peer^x mod p against another
// party's public key.
func (priv *PrivateKey) Exchange(peer *PublicKey) *big.Int {
	return bignum.PowMod(peer.Y, priv.x, priv.params.P)
}
