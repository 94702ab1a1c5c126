package hwy

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestBitCastRoundTrip(t *testing.T) {
	special := []uint32{
		0x00000000, 0x80000000, // ±0
		0x00000001, 0x807FFFFF, // subnormals
		0x7F800000, 0xFF800000, // ±Inf
		0x7FC00000, 0x7F800001, 0xFFFFFFFF, // quiet, signaling, negative NaN
		0x3F800000, 0x7F7FFFFF,
	}
	rng := rand.New(rand.NewPCG(1, 2))
	for range 1000 {
		special = append(special, rng.Uint32())
	}

	for i := 0; i+4 <= len(special); i += 4 {
		var in Int32x4
		for j := range in {
			in[j] = int32(special[i+j])
		}
		out := BitCastF32ToI32(BitCastI32ToF32(in))
		if out != in {
			t.Fatalf("bit cast round trip changed bits: %x -> %x", in, out)
		}
	}
}

func TestBitCastMatchesFloat32bits(t *testing.T) {
	v := Float32x4{1, -2.5, float32(math.Inf(1)), math.Float32frombits(0x7FC00001)}
	got := BitCastF32ToI32(v)
	for i := range v {
		if uint32(got[i]) != math.Float32bits(v[i]) {
			t.Errorf("lane %d: got %#x, want %#x", i, uint32(got[i]), math.Float32bits(v[i]))
		}
	}
}

func TestMaskFromBits(t *testing.T) {
	for bits := range uint8(16) {
		m := MaskFromBits(bits)
		if m.Bits() != bits {
			t.Errorf("MaskFromBits(%04b).Bits() = %04b", bits, m.Bits())
		}
		for i, lane := range m {
			if lane != 0 && lane != -1 {
				t.Errorf("MaskFromBits(%04b) lane %d = %d, want 0 or -1", bits, i, lane)
			}
		}
	}
}
