// Package digest defines the common hash-function contract shared by every
// compression core in octavo, plus the fixed-size input buffers that drive
// the Merkle-Damgard constructions (the SHA-3 sponge and BLAKE2 keep their
// own block buffers).
package digest

// Digest is the hash function definition every algorithm package in octavo
// implements in addition to the standard library's hash.Hash. Unlike
// hash.Hash, Result consumes the receiver: once called, the digest must not
// be used again except through a prior Clone.
type Digest interface {
	// Update feeds more data into the running hash.
	Update(p []byte)

	// Result writes the digest into out, which must be at least
	// OutputBytes() long, and consumes the receiver.
	Result(out []byte)

	// OutputBits is the digest size in bits.
	OutputBits() int
	// OutputBytes is the digest size in bytes.
	OutputBytes() int
	// BlockSize is the size, in bytes, of the compression function's input
	// block.
	BlockSize() int

	// Clone returns an independent copy of the current state, used by HMAC
	// and by any caller that wants to fork a hash mid-stream.
	Clone() Digest
}
