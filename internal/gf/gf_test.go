package gf

import "testing"

func TestSBoxOfZeroIsAffineConstant(t *testing.T) {
	if got := SBox(0x00); got != 0x63 {
		t.Fatalf("SBox(0x00) = %#x, want 0x63", got)
	}
}

func TestSBoxKnownSamples(t *testing.T) {
	cases := map[byte]byte{
		0x00: 0x63,
		0x01: 0x7c,
		0x53: 0xed,
	}
	for in, want := range cases {
		if got := SBox(in); got != want {
			t.Errorf("SBox(%#x) = %#x, want %#x", in, got, want)
		}
	}
}

func TestSBoxInvSBoxRoundTrip(t *testing.T) {
	for i := 0; i < 256; i++ {
		b := byte(i)
		if got := InvSBox(SBox(b)); got != b {
			t.Fatalf("InvSBox(SBox(%#x)) = %#x, want %#x", b, got, b)
		}
	}
}

func TestSBoxIsPermutation(t *testing.T) {
	seen := make(map[byte]bool)
	for i := 0; i < 256; i++ {
		out := SBox(byte(i))
		if seen[out] {
			t.Fatalf("SBox is not injective: %#x repeats", out)
		}
		seen[out] = true
	}
}
