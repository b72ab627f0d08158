package main

import (
	"fmt"
	"sort"

	"github.com/libOctavo/octavo/digest"
	"github.com/libOctavo/octavo/md4"
	"github.com/libOctavo/octavo/md5"
	"github.com/libOctavo/octavo/ripemd160"
	"github.com/libOctavo/octavo/sha1"
	"github.com/libOctavo/octavo/sha2"
	"github.com/libOctavo/octavo/sha3"
	"github.com/libOctavo/octavo/tiger"
)

// digestByName is the published name -> constructor table for the sum
// CLI, per spec.md §6's list of names the -D flag accepts.
var digestByName = map[string]func() digest.Digest{
	"MD4":        func() digest.Digest { return md4.New() },
	"MD5":        func() digest.Digest { return md5.New() },
	"RIPEMD-160": func() digest.Digest { return ripemd160.New() },
	"SHA1":       func() digest.Digest { return sha1.New() },
	"SHA-224":    func() digest.Digest { return sha2.NewSha224() },
	"SHA-256":    func() digest.Digest { return sha2.NewSha256() },
	"SHA-384":    func() digest.Digest { return sha2.NewSha384() },
	"SHA-512":    func() digest.Digest { return sha2.NewSha512() },
	"SHA3-224":   func() digest.Digest { return sha3.New224() },
	"SHA3-256":   func() digest.Digest { return sha3.New256() },
	"SHA3-384":   func() digest.Digest { return sha3.New384() },
	"SHA3-512":   func() digest.Digest { return sha3.New512() },
	"Tiger":      func() digest.Digest { return tiger.New() },
}

func digestConstructor(name string) (func() digest.Digest, error) {
	ctor, ok := digestByName[name]
	if !ok {
		return nil, fmt.Errorf("unknown digest %q (known: %s)", name, knownDigestNames())
	}
	return ctor, nil
}

func knownDigestNames() string {
	names := make([]string, 0, len(digestByName))
	for name := range digestByName {
		names = append(names, name)
	}
	sort.Strings(names)
	out := ""
	for i, n := range names {
		if i > 0 {
			out += ", "
		}
		out += n
	}
	return out
}
