package math

import (
	stdmath "math"
	"math/rand/v2"
	"testing"

	"github.com/hwycbrt/cbrt4/hwy"
)

func checkDiv3(t *testing.T, in hwy.Int32x4) {
	t.Helper()
	got := Div3(in)
	for i, n := range in {
		if want := n / 3; got[i] != want {
			t.Fatalf("Div3(%d) lane %d = %d, want %d", n, i, got[i], want)
		}
	}
}

func TestDiv3Edges(t *testing.T) {
	edges := []int32{
		0, 1, 2, 3, 4, 5, 6,
		-1, -2, -3, -4, -5, -6,
		stdmath.MaxInt32, stdmath.MaxInt32 - 1, stdmath.MaxInt32 - 2,
		stdmath.MinInt32, stdmath.MinInt32 + 1, stdmath.MinInt32 + 2,
		0x7F7FFFFF, 0x00800000, 0x4B800000,
	}
	for len(edges)%4 != 0 {
		edges = append(edges, 0)
	}
	for i := 0; i < len(edges); i += 4 {
		checkDiv3(t, hwy.LoadInt32x4(edges[i:]))
	}
}

func TestDiv3Random(t *testing.T) {
	rng := rand.New(rand.NewPCG(0xC0FFEE, 3))
	for range 1 << 18 {
		var in hwy.Int32x4
		for i := range in {
			in[i] = int32(rng.Uint32())
		}
		checkDiv3(t, in)
	}
}

func TestDiv3AroundMultiples(t *testing.T) {
	// Every residue near the largest multiples of 3 at both ends of the range.
	for _, base := range []int64{stdmath.MinInt32, -3 * 1000003, 0, 3 * 1000003, stdmath.MaxInt32 - 11} {
		var in hwy.Int32x4
		for k := int64(0); k < 12; k += 4 {
			for i := range in {
				in[i] = int32(base + k + int64(i))
			}
			checkDiv3(t, in)
		}
	}
}

func BenchmarkDiv3(b *testing.B) {
	v := hwy.Int32x4{1 << 30, -12345, 7, stdmath.MinInt32}
	for i := 0; i < b.N; i++ {
		v = Div3(v).Add(v)
	}
	_ = v
}
