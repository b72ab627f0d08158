package dh

import "math/big"

// RFC 2409 Appendix A well-known MODP primes, generator 2 for both.

const rfc2409Prime768Hex = "" +
	"FFFFFFFF" + "FFFFFFFF" + "C90FDAA2" + "2168C234" + "C4C6628B" + "80DC1CD1" +
	"29024E08" + "8A67CC74" + "020BBEA6" + "3B139B22" + "514A0879" + "8E3404DD" +
	"EF9519B3" + "CD3A431B" + "302B0A6D" + "F25F1437" + "4FE1356D" + "6D51C245" +
	"E485B576" + "625E7EC6" + "F44C42E9" + "A63A3620" + "FFFFFFFF" + "FFFFFFFF"

const rfc2409Prime1024Hex = "" +
	"FFFFFFFF" + "FFFFFFFF" + "C90FDAA2" + "2168C234" + "C4C6628B" + "80DC1CD1" +
	"29024E08" + "8A67CC74" + "020BBEA6" + "3B139B22" + "514A0879" + "8E3404DD" +
	"EF9519B3" + "CD3A431B" + "302B0A6D" + "F25F1437" + "4FE1356D" + "6D51C245" +
	"E485B576" + "625E7EC6" + "F44C42E9" + "A637ED6B" + "0BFF5CB6" + "F406B7ED" +
	"EE386BFB" + "5A899FA5" + "AE9F2411" + "7C4B1FE6" + "49286651" + "ECE65381" +
	"FFFFFFFF" + "FFFFFFFF"

func mustPrime(hex string) *big.Int {
	n, ok := new(big.Int).SetString(hex, 16)
	if !ok {
		panic("dh: malformed well-known prime constant")
	}
	return n
}

// Group768 is RFC 2409's first Oakley group (768-bit MODP, generator 2).
var Group768 = NewParameters(mustPrime(rfc2409Prime768Hex), big.NewInt(2))

// Group1024 is RFC 2409's second Oakley group (1024-bit MODP, generator 2).
var Group1024 = NewParameters(mustPrime(rfc2409Prime1024Hex), big.NewInt(2))
