package digest

// FixedBuffer64 absorbs arbitrary-length input into 64-byte blocks, handing
// each full block to a caller-supplied compression callback. It backs the
// 64-byte-block algorithms in octavo: MD4, MD5, RIPEMD-160, SHA-1,
// SHA-224/256, Tiger and Whirlpool (BLAKE2s keeps its own buffer).
type FixedBuffer64 struct {
	buf [64]byte
	pos int
}

// Size is the block size in bytes.
func (b *FixedBuffer64) Size() int { return 64 }

// Position is the number of bytes currently staged in the buffer.
func (b *FixedBuffer64) Position() int { return b.pos }

// Remaining is the number of bytes still free before the buffer is full.
func (b *FixedBuffer64) Remaining() int { return 64 - b.pos }

// CurrentBuffer returns the staged prefix of the buffer.
func (b *FixedBuffer64) CurrentBuffer() []byte { return b.buf[:b.pos] }

// Input appends p, calling emit on every block that fills. Blocks that are
// fully aligned within p are handed to emit directly without being staged
// through buf first; the sequence of blocks observed by emit is identical
// either way.
func (b *FixedBuffer64) Input(p []byte, emit func([]byte)) {
	if b.pos > 0 {
		n := copy(b.buf[b.pos:], p)
		b.pos += n
		p = p[n:]
		if b.pos < 64 {
			return
		}
		emit(b.buf[:64])
		b.pos = 0
	}
	for len(p) >= 64 {
		emit(p[:64])
		p = p[64:]
	}
	if len(p) > 0 {
		b.pos = copy(b.buf[:], p)
	}
}

// ZeroUntil zeroes buf[pos:idx] and advances pos to idx.
func (b *FixedBuffer64) ZeroUntil(idx int) {
	if idx < b.pos {
		panic("digest: ZeroUntil index before current position")
	}
	for i := b.pos; i < idx; i++ {
		b.buf[i] = 0
	}
	b.pos = idx
}

// Next reserves n bytes for direct write, advancing pos by n.
func (b *FixedBuffer64) Next(n int) []byte {
	if b.pos+n > 64 {
		panic("digest: Next overruns buffer")
	}
	b.pos += n
	return b.buf[b.pos-n : b.pos]
}

// FullBuffer returns the completed block and resets pos to 0. The buffer
// must already be full.
func (b *FixedBuffer64) FullBuffer() []byte {
	if b.pos != 64 {
		panic("digest: FullBuffer called before buffer is full")
	}
	b.pos = 0
	return b.buf[:64]
}

// StandardPadding implements the Merkle-Damgard 0x80-then-zero pad shared by
// MD4, MD5, RIPEMD-160, SHA-1, SHA-2, and Whirlpool. After it returns,
// exactly rem bytes remain free for the length encoding.
func (b *FixedBuffer64) StandardPadding(rem int, emit func([]byte)) {
	b.Next(1)[0] = 0x80

	if b.Remaining() < rem {
		b.ZeroUntil(64)
		emit(b.FullBuffer())
	}
	b.ZeroUntil(64 - rem)
}

// TigerPadding is StandardPadding with Tiger's 0x01 pad byte instead of 0x80.
func (b *FixedBuffer64) TigerPadding(rem int, emit func([]byte)) {
	b.Next(1)[0] = 0x01

	if b.Remaining() < rem {
		b.ZeroUntil(64)
		emit(b.FullBuffer())
	}
	b.ZeroUntil(64 - rem)
}

// FixedBuffer128 is FixedBuffer64's twin for 128-byte-block algorithms:
// SHA-384/512/512-t and BLAKE2b.
type FixedBuffer128 struct {
	buf [128]byte
	pos int
}

func (b *FixedBuffer128) Size() int             { return 128 }
func (b *FixedBuffer128) Position() int         { return b.pos }
func (b *FixedBuffer128) Remaining() int        { return 128 - b.pos }
func (b *FixedBuffer128) CurrentBuffer() []byte { return b.buf[:b.pos] }

func (b *FixedBuffer128) Input(p []byte, emit func([]byte)) {
	if b.pos > 0 {
		n := copy(b.buf[b.pos:], p)
		b.pos += n
		p = p[n:]
		if b.pos < 128 {
			return
		}
		emit(b.buf[:128])
		b.pos = 0
	}
	for len(p) >= 128 {
		emit(p[:128])
		p = p[128:]
	}
	if len(p) > 0 {
		b.pos = copy(b.buf[:], p)
	}
}

func (b *FixedBuffer128) ZeroUntil(idx int) {
	if idx < b.pos {
		panic("digest: ZeroUntil index before current position")
	}
	for i := b.pos; i < idx; i++ {
		b.buf[i] = 0
	}
	b.pos = idx
}

func (b *FixedBuffer128) Next(n int) []byte {
	if b.pos+n > 128 {
		panic("digest: Next overruns buffer")
	}
	b.pos += n
	return b.buf[b.pos-n : b.pos]
}

func (b *FixedBuffer128) FullBuffer() []byte {
	if b.pos != 128 {
		panic("digest: FullBuffer called before buffer is full")
	}
	b.pos = 0
	return b.buf[:128]
}

// StandardPadding is FixedBuffer64.StandardPadding's twin, used by
// SHA-384/512/512-t with rem == 16.
func (b *FixedBuffer128) StandardPadding(rem int, emit func([]byte)) {
	b.Next(1)[0] = 0x80

	if b.Remaining() < rem {
		b.ZeroUntil(128)
		emit(b.FullBuffer())
	}
	b.ZeroUntil(128 - rem)
}
