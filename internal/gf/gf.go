// Package gf implements the composite-field tower GF(2)->GF(2^2)->GF(2^4)->
// GF(2^8) used to compute the AES S-box (and its inverse) by inversion and
// basis changes rather than a copied lookup table.
package gf

// gf2 is an element of GF(4) = GF(2)[x]/(x^2+x+N) in normal basis, stored
// as two single bits.
type gf2 [2]byte

func gf2Add(x, y gf2) gf2 { return gf2{x[0] ^ y[0], x[1] ^ y[1]} }

func gf2Mul(x, y gf2) gf2 {
	b, a := x[0], x[1]
	d, c := y[0], y[1]
	e := (a ^ b) & (c ^ d)
	p := (a & c) ^ e
	q := (b & d) ^ e
	return gf2{q, p}
}

func gf2SclN(x gf2) gf2  { return gf2{x[0] ^ x[1], x[0]} }
func gf2SclN2(x gf2) gf2 { return gf2{x[1], x[0] ^ x[1]} }

// every nonzero element of GF(4) has order 3, so squaring and inversion
// both reduce to swapping the normal-basis coordinates.
func gf2Sq(x gf2) gf2  { return gf2{x[1], x[0]} }
func gf2Inv(x gf2) gf2 { return gf2{x[1], x[0]} }

// gf4 is an element of GF(16) = GF(4)[y]/(y^2+y+N'), two GF(4) coordinates.
type gf4 [4]byte

func gf4Split(x gf4) (b, a gf2) { return gf2{x[0], x[1]}, gf2{x[2], x[3]} }
func gf4Join(q, p gf2) gf4      { return gf4{q[0], q[1], p[0], p[1]} }

func gf4Add(x, y gf4) gf4 {
	bx, ax := gf4Split(x)
	by, ay := gf4Split(y)
	return gf4Join(gf2Add(bx, by), gf2Add(ax, ay))
}

func gf4Mul(x, y gf4) gf4 {
	b, a := gf4Split(x)
	d, c := gf4Split(y)
	f := gf2Add(c, d)
	e := gf2SclN(gf2Mul(gf2Add(a, b), f))
	p := gf2Add(gf2Mul(a, c), e)
	q := gf2Add(gf2Mul(b, d), e)
	return gf4Join(q, p)
}

func gf4SqScl(x gf4) gf4 {
	b, a := gf4Split(x)
	p := gf2Sq(gf2Add(a, b))
	q := gf2SclN2(gf2Sq(b))
	return gf4Join(q, p)
}

func gf4Inv(x gf4) gf4 {
	b, a := gf4Split(x)
	c := gf2SclN(gf2Sq(gf2Add(a, b)))
	d := gf2Mul(a, b)
	e := gf2Inv(gf2Add(c, d))
	p := gf2Mul(e, b)
	q := gf2Mul(e, a)
	return gf4Join(q, p)
}

// gf8 is an element of GF(256) = GF(16)[z]/(z^2+z+N''), the composite-field
// basis the AES S-box's inversion is computed in.
type gf8 [8]byte

func gf8Split(x gf8) (b, a gf4) {
	return gf4{x[0], x[1], x[2], x[3]}, gf4{x[4], x[5], x[6], x[7]}
}
func gf8Join(q, p gf4) gf8 {
	return gf8{q[0], q[1], q[2], q[3], p[0], p[1], p[2], p[3]}
}

func gf8Inv(x gf8) gf8 {
	b, a := gf8Split(x)
	c := gf4SqScl(gf4Add(a, b))
	d := gf4Mul(a, b)
	e := gf4Inv(gf4Add(c, d))
	p := gf4Mul(e, b)
	q := gf4Mul(e, a)
	return gf8Join(q, p)
}

// The four basis-change maps below convert between the standard AES
// polynomial basis (A), the composite-field tower basis inversion is
// computed in (X), and the basis the affine transform's output already
// sits in (S). Each matrix folds the affine transform's linear part into
// the map itself; only the additive constant 0x63 needs applying
// separately, via xorX63.
func a2x(in gf8) gf8 {
	t06 := in[6] ^ in[0]
	t056 := in[5] ^ t06
	t0156 := t056 ^ in[1]
	t13 := in[1] ^ in[3]

	return gf8{
		in[2] ^ t06 ^ t13,
		t056,
		in[0],
		in[0] ^ in[4] ^ in[7] ^ t13,
		in[7] ^ t056,
		t0156,
		in[4] ^ t056,
		in[2] ^ in[7] ^ t0156,
	}
}

func x2a(in gf8) gf8 {
	t15 := in[1] ^ in[5]
	t36 := in[3] ^ in[6]
	t1356 := t15 ^ t36
	t07 := in[0] ^ in[7]

	return gf8{
		in[2],
		t15,
		in[4] ^ in[7] ^ t15,
		in[2] ^ in[4] ^ t1356,
		in[1] ^ in[6],
		in[2] ^ in[5] ^ t36 ^ t07,
		t1356 ^ t07,
		in[1] ^ in[4],
	}
}

func s2x(in gf8) gf8 {
	t46 := in[4] ^ in[6]
	t01 := in[0] ^ in[1]
	t0146 := t01 ^ t46

	return gf8{
		in[5] ^ t0146,
		in[0] ^ in[3] ^ in[4],
		in[2] ^ in[5] ^ in[7],
		in[7] ^ t46,
		in[3] ^ in[6] ^ t01,
		t46,
		t0146,
		in[4] ^ in[7],
	}
}

func x2s(in gf8) gf8 {
	t46 := in[4] ^ in[6]
	t35 := in[3] ^ in[5]
	t06 := in[0] ^ in[6]
	t357 := t35 ^ in[7]

	return gf8{
		in[1] ^ t46,
		in[1] ^ in[4] ^ in[5],
		in[2] ^ t35 ^ t06,
		t46 ^ t357,
		t357,
		t06,
		in[3] ^ in[7],
		t35,
	}
}

func xorX63(in gf8) gf8 {
	return gf8{in[0] ^ 1, in[1] ^ 1, in[2], in[3], in[4], in[5] ^ 1, in[6] ^ 1, in[7]}
}

func byteToGf8(b byte) gf8 {
	var g gf8
	for i := range g {
		g[i] = (b >> uint(i)) & 1
	}
	return g
}

func gf8ToByte(g gf8) byte {
	var b byte
	for i, bit := range g {
		b |= bit << uint(i)
	}
	return b
}

// SBox evaluates the AES S-box at b by converting into the composite
// field, inverting (0 maps to 0), converting into S-basis and applying
// the affine constant, instead of indexing a literal 256-entry table.
func SBox(b byte) byte {
	x := a2x(byteToGf8(b))
	inv := gf8Inv(x)
	return gf8ToByte(xorX63(x2s(inv)))
}

// InvSBox evaluates the inverse AES S-box at b, undoing SBox's stages in
// reverse order: the affine constant is its own inverse, S2X undoes X2S,
// inversion is an involution, and X2A undoes A2X.
func InvSBox(b byte) byte {
	g := xorX63(byteToGf8(b))
	x := s2x(g)
	inv := gf8Inv(x)
	return gf8ToByte(x2a(inv))
}
