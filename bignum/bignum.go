// Package bignum implements the modular-arithmetic and primality
// primitives the rest of this module's asymmetric constructions are
// built from, as hand-written algorithms over math/big.Int rather than
// delegating to big.Int's own Exp/ModInverse/ProbablyPrime: the point of
// a primitives library is to expose the textbook steps.
package bignum

import (
	"crypto/rand"
	"errors"
	"io"
	"math/big"
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// PowMod computes base^exp mod m via right-to-left binary
// square-and-multiply, reducing after every multiply and square. The
// result lies in [0, m).
func PowMod(base, exp, m *big.Int) *big.Int {
	acc := new(big.Int).Set(one)
	b := new(big.Int).Mod(base, m)
	e := new(big.Int).Set(exp)

	for e.Sign() > 0 {
		if e.Bit(0) == 1 {
			acc.Mul(acc, b)
			acc.Mod(acc, m)
		}
		b.Mul(b, b)
		b.Mod(b, m)
		e.Rsh(e, 1)
	}
	return acc
}

// Inverse returns x in [0, m) with a*x ≡ 1 (mod m) via the extended
// Euclidean algorithm, and ok=false if gcd(a, m) != 1.
func Inverse(a, m *big.Int) (x *big.Int, ok bool) {
	r, newR := new(big.Int).Set(m), new(big.Int).Set(a)
	t, newT := big.NewInt(0), big.NewInt(1)

	quo := new(big.Int)
	tmp := new(big.Int)
	for newR.Sign() != 0 {
		quo.Div(r, newR)

		tmp.Mul(quo, newR)
		tmp.Sub(r, tmp)
		r, newR = newR, tmp
		tmp = new(big.Int)

		tmp.Mul(quo, newT)
		tmp.Sub(t, tmp)
		t, newT = newT, tmp
		tmp = new(big.Int)
	}

	if r.Cmp(one) != 0 {
		return nil, false
	}
	if t.Sign() < 0 {
		t.Add(t, m)
	}
	return t, true
}

// randomInRange draws a uniform random integer in [lo, hi].
func randomInRange(rnd io.Reader, lo, hi *big.Int) (*big.Int, error) {
	span := new(big.Int).Sub(hi, lo)
	span.Add(span, one)
	n, err := rand.Int(rnd, span)
	if err != nil {
		return nil, err
	}
	return n.Add(n, lo), nil
}

// FermatTest draws a random base a in [2, n-2] and declares n composite
// if a^(n-1) mod n != 1. A "false" result means "composite"; "true"
// means "probably prime", consistent with Fermat's test having no
// false negatives but a small chance of false positives (Carmichael
// numbers).
func FermatTest(n *big.Int, rnd io.Reader) (bool, error) {
	nMinus2 := new(big.Int).Sub(n, two)
	a, err := randomInRange(rnd, two, nMinus2)
	if err != nil {
		return false, err
	}

	nMinus1 := new(big.Int).Sub(n, one)
	return PowMod(a, nMinus1, n).Cmp(one) == 0, nil
}

// greatestPowerOfTwoDivisor writes n-1 = d * 2^s with d odd.
func greatestPowerOfTwoDivisor(n *big.Int) (s int, d *big.Int) {
	d = new(big.Int).Sub(n, one)
	for d.Bit(0) == 0 {
		d.Rsh(d, 1)
		s++
	}
	return s, d
}

// MillerRabinTest draws a random base a in [2, n-2], writes n-1 = d*2^s
// with d odd, and iterates at most s squarings of a^d mod n looking for
// 1 or n-1.
func MillerRabinTest(n *big.Int, rnd io.Reader) (bool, error) {
	nMinus2 := new(big.Int).Sub(n, two)
	a, err := randomInRange(rnd, two, nMinus2)
	if err != nil {
		return false, err
	}

	s, d := greatestPowerOfTwoDivisor(n)
	nMinus1 := new(big.Int).Sub(n, one)

	x := PowMod(a, d, n)
	if x.Cmp(one) == 0 || x.Cmp(nMinus1) == 0 {
		return true, nil
	}

	for i := 0; i < s; i++ {
		x.Mul(x, x)
		x.Mod(x, n)
		if x.Cmp(one) == 0 {
			return false, nil
		}
		if x.Cmp(nMinus1) == 0 {
			return true, nil
		}
	}
	return false, nil
}

// PrimeTest is a single probabilistic primality trial: either Fermat's
// test or Miller-Rabin's.
type PrimeTest func(n *big.Int, rnd io.Reader) (bool, error)

// TestLoop runs test up to k times against n, short-circuiting on the
// first composite verdict. It reports "probably prime" only once every
// trial has passed.
func TestLoop(test PrimeTest, n *big.Int, k int, rnd io.Reader) (bool, error) {
	for i := 0; i < k; i++ {
		probablyPrime, err := test(n, rnd)
		if err != nil {
			return false, err
		}
		if !probablyPrime {
			return false, nil
		}
	}
	return true, nil
}

const primeTestCount = 20

// GeneratePrime draws random bits-bit odd candidates, running Fermat
// then Miller-Rabin (20 rounds each) against each one, redrawing a
// fresh candidate whenever either test reports composite.
func GeneratePrime(rnd io.Reader, bits int) (*big.Int, error) {
	if bits < 2 {
		return nil, errors.New("bignum: prime candidates need at least 2 bits")
	}

	for {
		buf := make([]byte, (bits+7)/8)
		if _, err := io.ReadFull(rnd, buf); err != nil {
			return nil, err
		}
		if extra := len(buf)*8 - bits; extra > 0 {
			buf[0] &= 0xff >> uint(extra)
		}
		candidate := new(big.Int).SetBytes(buf)
		candidate.SetBit(candidate, bits-1, 1)
		if candidate.Bit(0) == 0 {
			candidate.Add(candidate, one)
		}

		fermatOK, err := TestLoop(FermatTest, candidate, primeTestCount, rnd)
		if err != nil {
			return nil, err
		}
		if !fermatOK {
			continue
		}

		millerOK, err := TestLoop(MillerRabinTest, candidate, primeTestCount, rnd)
		if err != nil {
			return nil, err
		}
		if !millerOK {
			continue
		}

		return candidate, nil
	}
}
