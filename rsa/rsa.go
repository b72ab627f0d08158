// Package rsa implements textbook RSA key generation and encryption,
// with a CRT fast path for private-key operations. No padding scheme
// (PKCS#1, OAEP) is applied; callers own message framing.
package rsa

import (
	"errors"
	"io"
	"math/big"

	"github.com/libOctavo/octavo/bignum"
)

var one = big.NewInt(1)

// PublicKey is an RSA public key (n, e).
type PublicKey struct {
	N *big.Int
	E *big.Int
}

// crtParams holds the precomputed CRT quantities that let PrivateKey.Crypt
// avoid one full-size modular exponentiation.
type crtParams struct {
	P, Q   *big.Int
	Dp, Dq *big.Int
	Qinv   *big.Int
}

// PrivateKey is an RSA private key (n, d), with an optional CRT fast path.
type PrivateKey struct {
	N   *big.Int
	D   *big.Int
	crt *crtParams
}

// KeyPairFromPrimes builds a public/private key pair directly from two
// primes and a public exponent: n = p*q, d = e^-1 mod (n - (p+q-1)).
// The private key carries CRT parameters (dP, dQ, qInv) for fast
// decryption.
func KeyPairFromPrimes(p, q, e *big.Int) (*PublicKey, *PrivateKey, error) {
	n := new(big.Int).Mul(p, q)

	pPlusQMinus1 := new(big.Int).Add(p, q)
	pPlusQMinus1.Sub(pPlusQMinus1, one)
	totient := new(big.Int).Sub(n, pPlusQMinus1)

	d, ok := bignum.Inverse(e, totient)
	if !ok {
		return nil, nil, errors.New("rsa: public exponent has no inverse mod totient")
	}

	pMinus1 := new(big.Int).Sub(p, one)
	qMinus1 := new(big.Int).Sub(q, one)
	dp := new(big.Int).Mod(d, pMinus1)
	dq := new(big.Int).Mod(d, qMinus1)
	qinv, ok := bignum.Inverse(q, p)
	if !ok {
		return nil, nil, errors.New("rsa: q has no inverse mod p")
	}

	pub := &PublicKey{N: n, E: new(big.Int).Set(e)}
	priv := &PrivateKey{
		N: n,
		D: d,
		crt: &crtParams{
			P: new(big.Int).Set(p), Q: new(big.Int).Set(q),
			Dp: dp, Dq: dq, Qinv: qinv,
		},
	}
	return pub, priv, nil
}

// GenerateKeyPair draws two random bits-sized primes p and q, each
// satisfying (p-1) mod e == 1 so that e is invertible modulo the
// totient, and builds a key pair from them.
func GenerateKeyPair(rnd io.Reader, e *big.Int, bits int) (*PublicKey, *PrivateKey, error) {
	p, err := primeSuitableFor(rnd, e, bits)
	if err != nil {
		return nil, nil, err
	}
	q, err := primeSuitableFor(rnd, e, bits)
	if err != nil {
		return nil, nil, err
	}
	return KeyPairFromPrimes(p, q, e)
}

func primeSuitableFor(rnd io.Reader, e *big.Int, bits int) (*big.Int, error) {
	for {
		p, err := bignum.GeneratePrime(rnd, bits)
		if err != nil {
			return nil, err
		}
		pMinus1 := new(big.Int).Sub(p, one)
		rem := new(big.Int).Mod(pMinus1, e)
		if rem.Cmp(one) == 0 {
			return p, nil
		}
	}
}

// Crypt raises msg to the public exponent modulo n: textbook RSA
// encryption, or signature verification.
func (pub *PublicKey) Crypt(msg *big.Int) *big.Int {
	return bignum.PowMod(msg, pub.E, pub.N)
}

// Crypt raises msg to the private exponent modulo n: textbook RSA
// decryption, or signing. When CRT parameters are present it uses the
// Garner recombination fast path instead of one full-size
// exponentiation mod n.
func (priv *PrivateKey) Crypt(msg *big.Int) *big.Int {
	if priv.crt == nil {
		return bignum.PowMod(msg, priv.D, priv.N)
	}
	return chineseRemainderPower(msg, priv.crt)
}

func chineseRemainderPower(msg *big.Int, crt *crtParams) *big.Int {
	m1 := bignum.PowMod(msg, crt.Dp, crt.P)
	m2 := bignum.PowMod(msg, crt.Dq, crt.Q)

	for m1.Cmp(m2) < 0 {
		m1.Add(m1, crt.P)
	}

	h := new(big.Int).Sub(m1, m2)
	h.Mul(h, crt.Qinv)
	h.Mod(h, crt.P)

	result := new(big.Int).Mul(h, crt.Q)
	result.Add(result, m2)
	return result
}

// DefaultExponent is the conventional public exponent 65537 (0x10001),
// the same default nearly every RSA implementation picks.
func DefaultExponent() *big.Int {
	return big.NewInt(65537)
}
