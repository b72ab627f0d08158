// Package hmac implements HMAC (RFC 2104) generically over any digest
// algorithm in this module that implements digest.Digest.
package hmac

import "github.com/libOctavo/octavo/digest"

const (
	ipad = 0x36
	opad = 0x5c
)

// HMAC computes a keyed message authentication code over a running
// digest, built from two inner/outer instances of the same algorithm
// primed with the key-derived pads.
type HMAC struct {
	inner digest.Digest
	outer digest.Digest
	size  int
}

// New returns an HMAC keyed with key, using newDigest to construct fresh,
// zero-state instances of the underlying algorithm. newDigest is called
// three times: once for the inner pad, once for the outer pad, and once
// for the instance that hashes down a key longer than one block.
func New(newDigest func() digest.Digest, key []byte) *HMAC {
	inner := newDigest()
	outer := newDigest()

	expanded := expandKey(key, newDigest())

	innerBlock := make([]byte, len(expanded))
	outerBlock := make([]byte, len(expanded))
	for i, b := range expanded {
		innerBlock[i] = b ^ ipad
		outerBlock[i] = b ^ opad
	}
	inner.Update(innerBlock)
	outer.Update(outerBlock)

	return &HMAC{inner: inner, outer: outer, size: inner.OutputBytes()}
}

// expandKey reduces or zero-pads key to exactly one block, hashing it
// down first if it's longer than a block.
func expandKey(key []byte, d digest.Digest) []byte {
	blockSize := d.BlockSize()
	expanded := make([]byte, blockSize)

	if len(key) <= blockSize {
		copy(expanded, key)
		return expanded
	}

	d.Update(key)
	digested := make([]byte, d.OutputBytes())
	d.Result(digested)
	copy(expanded, digested)
	return expanded
}

// Update feeds more message bytes into the inner digest.
func (h *HMAC) Update(p []byte) {
	h.inner.Update(p)
}

// Result writes the MAC into out and consumes the receiver: the inner
// digest is finalized, then fed into the outer digest, which is in turn
// finalized into out.
func (h *HMAC) Result(out []byte) {
	inner := make([]byte, h.size)
	h.inner.Result(inner)

	h.outer.Update(inner)
	h.outer.Result(out)
}

// OutputBits returns the MAC size in bits, equal to the underlying
// digest's output size.
func (h *HMAC) OutputBits() int { return h.size * 8 }

// OutputBytes returns the MAC size in bytes.
func (h *HMAC) OutputBytes() int { return h.size }

// BlockSize returns the underlying digest's block size.
func (h *HMAC) BlockSize() int { return h.inner.BlockSize() }

// Clone returns an independent copy of h that can keep being updated and
// finalized separately.
func (h *HMAC) Clone() *HMAC {
	return &HMAC{inner: h.inner.Clone(), outer: h.outer.Clone(), size: h.size}
}

// Write implements io.Writer, feeding p into the inner digest.
func (h *HMAC) Write(p []byte) (int, error) {
	h.Update(p)
	return len(p), nil
}

// Sum appends the MAC of everything written so far to b, without
// mutating the receiver.
func (h *HMAC) Sum(b []byte) []byte {
	clone := h.Clone()
	out := make([]byte, h.size)
	clone.Result(out)
	return append(b, out...)
}

// Size implements hash.Hash.
func (h *HMAC) Size() int { return h.size }

// Reset always panics. The key-derived inner and outer pads were already
// mixed in at construction and HMAC carries no separate "unkeyed" state
// to return to: construct a fresh HMAC with New instead.
func (h *HMAC) Reset() {
	panic("hmac: cannot Reset a keyed HMAC; call New again")
}
